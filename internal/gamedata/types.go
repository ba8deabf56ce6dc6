package gamedata

import (
	"github.com/KirkDiggler/trainer-api/internal/entities/card"
	"github.com/KirkDiggler/trainer-api/internal/entities/creature"
)

// File names inside a data directory
const (
	CreaturesFile    = "creatures.yaml"
	CardsFile        = "cards.yaml"
	ProgressionsFile = "progressions.yaml"
	LegacyNamesFile  = "legacy_names.yaml"
)

// Tables is the immutable content database the engine reads from
type Tables struct {
	// Creatures keyed by creature ID
	Creatures map[string]*creature.Definition
	// Cards keyed by canonical card name
	Cards map[string]*card.Definition
	// Progressions keyed by canonical card name. Cards without an entry are
	// treated as fully unlocked at every level.
	Progressions map[string]card.ProgressionTable
	LegacyNames  card.LegacyNames
}

type creaturesFile struct {
	Creatures []*creature.Definition `yaml:"creatures"`
}

type cardsFile struct {
	Cards []rawCard `yaml:"cards"`
}

// rawCard mirrors card.Definition with the special effect left untyped until
// it is classified
type rawCard struct {
	ID                  string                 `yaml:"id"`
	Name                string                 `yaml:"name"`
	Rarity              card.Rarity            `yaml:"rarity"`
	Type                creature.Stat          `yaml:"type"`
	MoveHints           []string               `yaml:"move_hints"`
	BaseStats           map[creature.Stat]int  `yaml:"base_stats"`
	TrainingBonus       card.TrainingBonus     `yaml:"training_bonus"`
	InitialFriendship   int                    `yaml:"initial_friendship"`
	AppearanceRate      float64                `yaml:"appearance_rate"`
	TypeMatchPreference float64                `yaml:"type_match_preference"`
	SpecialEffect       map[string]interface{} `yaml:"special_effect"`
}

func (r rawCard) toDefinition() *card.Definition {
	def := &card.Definition{
		ID:                  r.ID,
		Name:                r.Name,
		Rarity:              r.Rarity,
		Type:                r.Type,
		MoveHints:           r.MoveHints,
		BaseStats:           r.BaseStats,
		TrainingBonus:       r.TrainingBonus,
		InitialFriendship:   r.InitialFriendship,
		AppearanceRate:      r.AppearanceRate,
		TypeMatchPreference: r.TypeMatchPreference,
	}
	if len(r.SpecialEffect) > 0 {
		def.SpecialEffect = make(card.SpecialEffect, len(r.SpecialEffect))
		for name, raw := range r.SpecialEffect {
			def.SpecialEffect[name] = card.ClassifyEffect(name, raw)
		}
	}
	return def
}

type progressionsFile struct {
	Progressions map[string][]card.ProgressionEntry `yaml:"progressions"`
}

type legacyNamesFile struct {
	LegacyNames map[string]string `yaml:"legacy_names"`
}
