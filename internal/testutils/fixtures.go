package testutils

import (
	"github.com/KirkDiggler/trainer-api/internal/entities/card"
	"github.com/KirkDiggler/trainer-api/internal/entities/creature"
	"github.com/KirkDiggler/trainer-api/internal/gamedata"
)

// Synthetic card names used across tests
const (
	// CardSpeedDemon has a full progression table and three effect kinds
	CardSpeedDemon = "Speed Demon"
	// CardLuckyCharm has only a fractional effect that vanishes at level 0
	CardLuckyCharm = "Lucky Charm"
	// CardQuietMentor has no progression table and no special effect
	CardQuietMentor = "Quiet Mentor"
	// CardFaintEcho has a passthrough effect next to a small integer bonus
	CardFaintEcho = "Faint Echo"

	// LegacySpeedDemon is the deprecated name of CardSpeedDemon
	LegacySpeedDemon = "Speedy Demon"
	// LegacyLuckyCharm is the deprecated name of CardLuckyCharm
	LegacyLuckyCharm = "Lucky Clover"
	// LegacyDangling points at a card that does not exist
	LegacyDangling = "Ghost Card"

	// CreatureSprout is a first-stage creature
	CreatureSprout = "sprout"
	// CreatureTitan is a final-stage creature
	CreatureTitan = "titan"
)

// CreateTestCards returns a fresh card table
func CreateTestCards() map[string]*card.Definition {
	return map[string]*card.Definition{
		CardSpeedDemon: {
			ID:        "speed_demon",
			Name:      CardSpeedDemon,
			Rarity:    card.RaritySSR,
			Type:      creature.StatSpeed,
			MoveHints: []string{"quick_attack"},
			BaseStats: map[creature.Stat]int{
				creature.StatSpeed:    10,
				creature.StatInstinct: 5,
			},
			TrainingBonus: card.TrainingBonus{
				TypeMatch:              20,
				OtherStats:             5,
				MaxFriendshipTypeMatch: 30,
			},
			InitialFriendship:   25,
			AppearanceRate:      0.5,
			TypeMatchPreference: 0.6,
			SpecialEffect: card.SpecialEffect{
				"trainingEffectMultiplier": card.Multiplier(1.2),
				"energyRegenBonus":         card.IntegerBonus(3),
				"failRateReduction":        card.FractionalBonus(0.2),
			},
		},
		CardLuckyCharm: {
			ID:        "lucky_charm",
			Name:      CardLuckyCharm,
			Rarity:    card.RarityR,
			Type:      creature.StatInstinct,
			BaseStats: map[creature.Stat]int{creature.StatInstinct: 4},
			TrainingBonus: card.TrainingBonus{
				TypeMatch:              10,
				OtherStats:             1,
				MaxFriendshipTypeMatch: 15,
			},
			InitialFriendship:   10,
			AppearanceRate:      0.4,
			TypeMatchPreference: 0.3,
			SpecialEffect: card.SpecialEffect{
				"failRateReduction": card.FractionalBonus(0.15),
			},
		},
		CardQuietMentor: {
			ID:        "quiet_mentor",
			Name:      CardQuietMentor,
			Rarity:    card.RaritySR,
			Type:      creature.StatDefense,
			BaseStats: map[creature.Stat]int{creature.StatDefense: 8},
			TrainingBonus: card.TrainingBonus{
				TypeMatch:              15,
				OtherStats:             3,
				MaxFriendshipTypeMatch: 20,
			},
			InitialFriendship:   20,
			AppearanceRate:      0.45,
			TypeMatchPreference: 0.5,
		},
		CardFaintEcho: {
			ID:        "faint_echo",
			Name:      CardFaintEcho,
			Rarity:    card.RarityR,
			Type:      creature.StatHP,
			BaseStats: map[creature.Stat]int{creature.StatHP: 6},
			TrainingBonus: card.TrainingBonus{
				TypeMatch:              8,
				OtherStats:             2,
				MaxFriendshipTypeMatch: 12,
			},
			InitialFriendship:   5,
			AppearanceRate:      0.3,
			TypeMatchPreference: 0.2,
			SpecialEffect: card.SpecialEffect{
				"restBonus":  card.IntegerBonus(1),
				"hintTarget": card.Passthrough("HP"),
			},
		},
	}
}

// CreateTestProgressions returns progression tables for every test card
// except CardQuietMentor. Factors are powers of two so scaled values are exact.
func CreateTestProgressions() map[string]card.ProgressionTable {
	return map[string]card.ProgressionTable{
		CardSpeedDemon: {
			{BaseStats: 0.5, TrainingBonus: 0.5, AppearanceRate: 0.3, TypeMatchPreference: 0.4, InitialFriendship: 10, SpecialEffect: 0.5},
			{BaseStats: 0.625, TrainingBonus: 0.625, AppearanceRate: 0.35, TypeMatchPreference: 0.45, InitialFriendship: 15, SpecialEffect: 0.625},
			{BaseStats: 0.75, TrainingBonus: 0.75, AppearanceRate: 0.4, TypeMatchPreference: 0.5, InitialFriendship: 20, SpecialEffect: 0.75},
			{BaseStats: 0.875, TrainingBonus: 0.875, AppearanceRate: 0.45, TypeMatchPreference: 0.55, InitialFriendship: 22, SpecialEffect: 0.875},
			{BaseStats: 1, TrainingBonus: 1, AppearanceRate: 0.5, TypeMatchPreference: 0.6, InitialFriendship: 25, SpecialEffect: 1},
		},
		CardLuckyCharm: {
			{BaseStats: 0.5, TrainingBonus: 0.01, AppearanceRate: 0.2, TypeMatchPreference: 0.1, InitialFriendship: 0, SpecialEffect: 0},
			{BaseStats: 0.5, TrainingBonus: 0.5, AppearanceRate: 0.25, TypeMatchPreference: 0.15, InitialFriendship: 2, SpecialEffect: 0.5},
			{BaseStats: 0.75, TrainingBonus: 0.75, AppearanceRate: 0.3, TypeMatchPreference: 0.2, InitialFriendship: 5, SpecialEffect: 0.75},
			{BaseStats: 0.75, TrainingBonus: 0.75, AppearanceRate: 0.35, TypeMatchPreference: 0.25, InitialFriendship: 8, SpecialEffect: 0.75},
			{BaseStats: 1, TrainingBonus: 1, AppearanceRate: 0.4, TypeMatchPreference: 0.3, InitialFriendship: 10, SpecialEffect: 1},
		},
		CardFaintEcho: {
			{BaseStats: 0.5, TrainingBonus: 0.5, AppearanceRate: 0.1, TypeMatchPreference: 0.1, InitialFriendship: 1, SpecialEffect: 0.25},
			{BaseStats: 0.5, TrainingBonus: 0.5, AppearanceRate: 0.15, TypeMatchPreference: 0.1, InitialFriendship: 2, SpecialEffect: 0.25},
			{BaseStats: 0.75, TrainingBonus: 0.75, AppearanceRate: 0.2, TypeMatchPreference: 0.15, InitialFriendship: 3, SpecialEffect: 0.5},
			{BaseStats: 0.75, TrainingBonus: 0.75, AppearanceRate: 0.25, TypeMatchPreference: 0.15, InitialFriendship: 4, SpecialEffect: 0.75},
			{BaseStats: 1, TrainingBonus: 1, AppearanceRate: 0.3, TypeMatchPreference: 0.2, InitialFriendship: 5, SpecialEffect: 1},
		},
	}
}

// CreateTestLegacyNames returns a legacy name table
func CreateTestLegacyNames() card.LegacyNames {
	return card.LegacyNames{
		LegacySpeedDemon: CardSpeedDemon,
		LegacyLuckyCharm: CardLuckyCharm,
		LegacyDangling:   "Nonexistent Canon",
	}
}

// CreateTestCreatures returns a small creature table
func CreateTestCreatures() map[string]*creature.Definition {
	return map[string]*creature.Definition{
		CreatureSprout: {
			ID:   CreatureSprout,
			Name: "Sprout",
			Type: "grass",
			RawStats: creature.StatBlock{
				creature.StatHP: 10, creature.StatAttack: 10, creature.StatDefense: 10,
				creature.StatInstinct: 10, creature.StatSpeed: 10,
			},
			EvolutionPotential: creature.PotentialTwoStages,
			EvolvesTo:          CreatureTitan,
			MoveIDs:            []string{"tackle"},
		},
		CreatureTitan: {
			ID:   CreatureTitan,
			Name: "Titan",
			Type: "rock",
			RawStats: creature.StatBlock{
				creature.StatHP: 100, creature.StatAttack: 100, creature.StatDefense: 100,
				creature.StatInstinct: 100, creature.StatSpeed: 100,
			},
			EvolutionPotential: creature.PotentialFinal,
			MoveIDs:            []string{"tackle", "rock_slide"},
		},
	}
}

// CreateTestTables bundles the fixtures above. The dangling legacy name is
// kept, so the result does not pass gamedata.Validate.
func CreateTestTables() *gamedata.Tables {
	return &gamedata.Tables{
		Creatures:    CreateTestCreatures(),
		Cards:        CreateTestCards(),
		Progressions: CreateTestProgressions(),
		LegacyNames:  CreateTestLegacyNames(),
	}
}
