package gamedata

import (
	"sort"
	"strconv"

	"github.com/KirkDiggler/trainer-api/internal/entities/card"
	"github.com/KirkDiggler/trainer-api/internal/entities/creature"
	"github.com/KirkDiggler/trainer-api/internal/errors"
)

var validRarities = []string{string(card.RarityR), string(card.RaritySR), string(card.RaritySSR)}

// Validate checks value ranges and cross references between tables. All
// problems are reported together.
func Validate(t *Tables) error {
	if t == nil {
		return errors.InvalidArgument("tables are required")
	}

	vb := errors.NewValidationBuilder()

	for _, id := range sortedKeys(t.Creatures) {
		validateCreature("creatures."+id, t.Creatures[id], t.Creatures, vb)
	}

	for _, name := range sortedKeys(t.Cards) {
		validateCard("cards."+name, t.Cards[name], vb)
	}

	for _, name := range sortedKeys(t.Progressions) {
		field := "progressions." + name
		if _, ok := t.Cards[name]; !ok {
			vb.Field(field, "references unknown card")
		}
		table := t.Progressions[name]
		for level, row := range table {
			validateProgressionEntry(field, level, row, vb)
		}
	}

	for _, legacy := range sortedKeys(t.LegacyNames) {
		canonical := t.LegacyNames[legacy]
		field := "legacy_names." + legacy
		if _, ok := t.Cards[canonical]; !ok {
			vb.Fieldf(field, "references unknown card %q", canonical)
		}
		if _, ok := t.Cards[legacy]; ok {
			vb.Field(field, "shadows a canonical card name")
		}
	}

	return vb.Build()
}

func validateCreature(field string, c *creature.Definition, all map[string]*creature.Definition, vb *errors.ValidationBuilder) {
	errors.ValidateRequired(field+".name", c.Name, vb)

	for _, stat := range creature.AllStats {
		v, ok := c.RawStats[stat]
		if !ok {
			vb.RequiredField(field + ".raw_stats." + string(stat))
			continue
		}
		errors.ValidateNonNegative(field+".raw_stats."+string(stat), v, vb)
	}
	for stat := range c.RawStats {
		if !stat.IsValid() {
			vb.Field(field+".raw_stats."+string(stat), "unknown stat")
		}
	}

	errors.ValidateRange(field+".evolution_potential", int(c.EvolutionPotential),
		int(creature.PotentialFinal), int(creature.PotentialTwoStages), vb)

	if c.EvolvesTo != "" {
		if _, ok := all[c.EvolvesTo]; !ok {
			vb.Fieldf(field+".evolves_to", "references unknown creature %q", c.EvolvesTo)
		}
	}
	if c.EvolutionPotential == creature.PotentialFinal && c.EvolvesTo != "" {
		vb.Field(field+".evolves_to", "final stage creatures cannot evolve")
	}
}

func validateCard(field string, c *card.Definition, vb *errors.ValidationBuilder) {
	errors.ValidateRequired(field+".id", c.ID, vb)
	errors.ValidateEnum(field+".rarity", string(c.Rarity), validRarities, vb)
	if !c.Type.IsValid() {
		vb.Fieldf(field+".type", "unknown stat %q", c.Type)
	}

	for stat, v := range c.BaseStats {
		if !stat.IsValid() {
			vb.Field(field+".base_stats."+string(stat), "unknown stat")
		}
		errors.ValidateNonNegative(field+".base_stats."+string(stat), float64(v), vb)
	}

	errors.ValidateNonNegative(field+".training_bonus.type_match", float64(c.TrainingBonus.TypeMatch), vb)
	errors.ValidateRange(field+".training_bonus.other_stats", c.TrainingBonus.OtherStats, 1, 1<<16, vb)
	errors.ValidateNonNegative(field+".training_bonus.max_friendship_type_match",
		float64(c.TrainingBonus.MaxFriendshipTypeMatch), vb)
	errors.ValidateNonNegative(field+".initial_friendship", float64(c.InitialFriendship), vb)

	validateAppearanceRate(field+".appearance_rate", c.AppearanceRate, vb)
	errors.ValidateFloatRange(field+".type_match_preference", c.TypeMatchPreference, 0, 1, vb)
}

func validateProgressionEntry(field string, level int, row card.ProgressionEntry, vb *errors.ValidationBuilder) {
	prefix := field + "." + levelKey(level)
	errors.ValidateNonNegative(prefix+".base_stats", row.BaseStats, vb)
	errors.ValidateNonNegative(prefix+".training_bonus", row.TrainingBonus, vb)
	errors.ValidateFloatRange(prefix+".special_effect", row.SpecialEffect, 0, 1, vb)
	validateAppearanceRate(prefix+".appearance_rate", row.AppearanceRate, vb)
	errors.ValidateFloatRange(prefix+".type_match_preference", row.TypeMatchPreference, 0, 1, vb)
	errors.ValidateNonNegative(prefix+".initial_friendship", float64(row.InitialFriendship), vb)
}

// validateAppearanceRate requires a rate in (0, 1]; a card that can never
// appear is not allowed at any level
func validateAppearanceRate(field string, rate float64, vb *errors.ValidationBuilder) {
	if rate <= 0 || rate > 1 {
		vb.Field(field, "must be in (0, 1]")
	}
}

func levelKey(level int) string {
	return "level" + strconv.Itoa(level)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
