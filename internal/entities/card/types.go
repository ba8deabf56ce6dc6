// Package card holds collectible support card records and their limit-break
// progression tables
package card

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/trainer-api/internal/entities/creature"
)

// Limit break bounds. MaxLimitBreak is the fully unlocked state and always
// equals the card's base definition.
const (
	MinLimitBreak = 0
	MaxLimitBreak = 4

	// ProgressionLevels is the number of rows in a ProgressionTable
	ProgressionLevels = MaxLimitBreak + 1
)

// Rarity of a card
type Rarity string

// Card rarities
const (
	RarityR   Rarity = "R"
	RaritySR  Rarity = "SR"
	RaritySSR Rarity = "SSR"
)

// TrainingBonus is the set of integer training bonuses a card grants
type TrainingBonus struct {
	TypeMatch              int `json:"type_match" yaml:"type_match"`
	OtherStats             int `json:"other_stats" yaml:"other_stats"`
	MaxFriendshipTypeMatch int `json:"max_friendship_type_match" yaml:"max_friendship_type_match"`
}

// Definition is the canonical static record of a support card
type Definition struct {
	ID                  string                `json:"id"`
	Name                string                `json:"name"`
	Rarity              Rarity                `json:"rarity"`
	Type                creature.Stat         `json:"type"`
	MoveHints           []string              `json:"move_hints,omitempty"`
	BaseStats           map[creature.Stat]int `json:"base_stats"`
	TrainingBonus       TrainingBonus         `json:"training_bonus"`
	InitialFriendship   int                   `json:"initial_friendship"`
	AppearanceRate      float64               `json:"appearance_rate"`
	TypeMatchPreference float64               `json:"type_match_preference"`
	SpecialEffect       SpecialEffect         `json:"special_effect,omitempty"`
}

// GetID returns the card's ID
func (d *Definition) GetID() string {
	return d.ID
}

// GetType returns the entity type for rpg-toolkit
func (d *Definition) GetType() string {
	return "support_card"
}

var _ core.Entity = (*Definition)(nil)

// Clone returns a deep copy so callers can never mutate the authored table
func (d *Definition) Clone() Definition {
	out := *d
	if d.MoveHints != nil {
		out.MoveHints = append([]string(nil), d.MoveHints...)
	}
	if d.BaseStats != nil {
		out.BaseStats = make(map[creature.Stat]int, len(d.BaseStats))
		for k, v := range d.BaseStats {
			out.BaseStats[k] = v
		}
	}
	out.SpecialEffect = d.SpecialEffect.Clone()
	return out
}

// ProgressionEntry is one row of a progression table. BaseStats,
// TrainingBonus and SpecialEffect are factors applied to the base card; the
// other three fields replace the base card's values outright.
type ProgressionEntry struct {
	BaseStats           float64 `json:"base_stats" yaml:"base_stats"`
	TrainingBonus       float64 `json:"training_bonus" yaml:"training_bonus"`
	AppearanceRate      float64 `json:"appearance_rate" yaml:"appearance_rate"`
	TypeMatchPreference float64 `json:"type_match_preference" yaml:"type_match_preference"`
	InitialFriendship   int     `json:"initial_friendship" yaml:"initial_friendship"`
	SpecialEffect       float64 `json:"special_effect" yaml:"special_effect"`
}

// ProgressionTable holds one entry per limit break level
type ProgressionTable [ProgressionLevels]ProgressionEntry

// LegacyNames maps deprecated card identifiers to canonical ones
type LegacyNames map[string]string

// Resolved is a card definition scaled to a specific limit break level.
// IsMaxLimitBreak means the values are the unscaled base values, which holds
// at level 4 and at every level of a card without a progression table. It
// does not imply LimitBreakLevel is 4.
type Resolved struct {
	Definition
	LimitBreakLevel int  `json:"_limitBreakLevel"`
	IsMaxLimitBreak bool `json:"_isMaxLimitBreak"`
}
