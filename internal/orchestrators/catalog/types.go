package catalog

import (
	"github.com/KirkDiggler/trainer-api/internal/engine/limitbreak"
	"github.com/KirkDiggler/trainer-api/internal/entities/card"
	"github.com/KirkDiggler/trainer-api/internal/entities/creature"
)

// NormalizeStatsInput is an ad hoc stat block to normalize
type NormalizeStatsInput struct {
	RawStats           creature.StatBlock
	EvolutionPotential creature.EvolutionPotential
}

// NormalizeStatsOutput is the normalized block with its bookkeeping
type NormalizeStatsOutput struct {
	Stats      creature.NormalizedStats
	Total      int
	Multiplier float64
	InBudget   bool
}

// GetCreatureInput identifies a creature
type GetCreatureInput struct {
	ID string
}

// GetCreatureOutput holds a creature and its normalized stats
type GetCreatureOutput struct {
	Creature *CreatureEntry
}

// ListCreaturesInput is empty; every creature is returned
type ListCreaturesInput struct{}

// ListCreaturesOutput lists creatures sorted by ID
type ListCreaturesOutput struct {
	Creatures []*CreatureEntry
}

// CreatureEntry pairs a creature definition with its normalized stats
type CreatureEntry struct {
	Definition *creature.Definition
	Stats      creature.NormalizedStats
}

// ResolveCardInput names a card and a requested limit break level. Legacy
// names and out-of-range levels are accepted.
type ResolveCardInput struct {
	CardName string
	Level    int
}

// ResolveCardOutput holds the resolved card and how it was produced
type ResolveCardOutput struct {
	Card          *card.Resolved
	CanonicalName string
	Level         int
	Reason        limitbreak.Reason
	Cached        bool
}

// AddOwnedCardInput grants a card to a player
type AddOwnedCardInput struct {
	PlayerID string
	CardName string
	Level    int
}

// AddOwnedCardOutput holds the new roster entry
type AddOwnedCardOutput struct {
	Entry *RosterEntry
}

// SetLimitBreakInput changes the level of an owned card
type SetLimitBreakInput struct {
	OwnedCardID string
	Level       int
}

// SetLimitBreakOutput holds the updated roster entry
type SetLimitBreakOutput struct {
	Entry *RosterEntry
}

// GetRosterInput identifies a player
type GetRosterInput struct {
	PlayerID string
}

// GetRosterOutput lists a player's cards, oldest first
type GetRosterOutput struct {
	Entries []*RosterEntry
}

// RemoveOwnedCardInput identifies an owned card
type RemoveOwnedCardInput struct {
	OwnedCardID string
}

// RemoveOwnedCardOutput is empty
type RemoveOwnedCardOutput struct{}

// RosterEntry is an owned card with its attributes at its current level.
// Card is nil when the card has since been removed from the game data.
type RosterEntry struct {
	OwnedCard *card.OwnedCard
	Card      *card.Resolved
}
