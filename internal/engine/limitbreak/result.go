package limitbreak

import "github.com/KirkDiggler/trainer-api/internal/entities/card"

// Reason explains which branch produced a Result
type Reason string

// Resolution reasons
const (
	// ReasonScaled means the card was scaled from its progression table
	ReasonScaled Reason = "scaled"
	// ReasonUnknownCard means no definition exists for the canonical name
	ReasonUnknownCard Reason = "unknown_card"
	// ReasonMaxLevel means the level was the maximum so the base card is returned
	ReasonMaxLevel Reason = "max_level"
	// ReasonNoProgression means the card has no table so the base card is returned
	ReasonNoProgression Reason = "no_progression"
)

// IsFallback reports whether the result came from anything but scaling
func (r Reason) IsFallback() bool {
	return r != ReasonScaled
}

// Result is the outcome of resolving a card at a level
type Result struct {
	// Card is nil only when Reason is ReasonUnknownCard
	Card           *card.Resolved
	RequestedName  string
	CanonicalName  string
	RequestedLevel int
	Level          int
	Reason         Reason
}

// Clamped reports whether the requested level was outside [0, 4]
func (r Result) Clamped() bool {
	return r.RequestedLevel != r.Level
}

// Renamed reports whether a legacy name was translated
func (r Result) Renamed() bool {
	return r.RequestedName != r.CanonicalName
}
