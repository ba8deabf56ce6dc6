// Package limitbreak derives a card's attributes at a given limit break level
// from its definition and progression table
package limitbreak

import (
	"github.com/KirkDiggler/trainer-api/internal/engine"
	"github.com/KirkDiggler/trainer-api/internal/entities/card"
	"github.com/KirkDiggler/trainer-api/internal/entities/creature"
	"github.com/KirkDiggler/trainer-api/internal/errors"
)

// Config holds the tables the resolver reads. The resolver never mutates them.
type Config struct {
	Cards        map[string]*card.Definition
	Progressions map[string]card.ProgressionTable
	LegacyNames  card.LegacyNames
}

// Validate ensures the card table is present. Progressions and LegacyNames
// may be empty.
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Cards == nil {
		vb.RequiredField("Cards")
	}
	return vb.Build()
}

// Resolver resolves cards against a fixed set of tables. It is safe for
// concurrent use.
type Resolver struct {
	cards        map[string]*card.Definition
	progressions map[string]card.ProgressionTable
	legacyNames  card.LegacyNames
}

// NewResolver creates a resolver over the given tables
func NewResolver(cfg *Config) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Resolver{
		cards:        cfg.Cards,
		progressions: cfg.Progressions,
		legacyNames:  cfg.LegacyNames,
	}, nil
}

// NormalizeName maps a legacy identifier to its canonical card name
func (r *Resolver) NormalizeName(name string) string {
	return NormalizeName(r.legacyNames, name)
}

// ResolveCard returns the card scaled to level, or nil when the card is
// unknown
func (r *Resolver) ResolveCard(name string, level int) *card.Resolved {
	return r.Resolve(name, level).Card
}

// Resolve scales a card to a limit break level and reports which branch was
// taken. Levels outside [0, 4] are clamped.
func (r *Resolver) Resolve(name string, level int) Result {
	canonical := r.NormalizeName(name)
	result := Result{
		RequestedName:  name,
		CanonicalName:  canonical,
		RequestedLevel: level,
		Level:          engine.ClampInt(level, card.MinLimitBreak, card.MaxLimitBreak),
	}

	def, ok := r.cards[canonical]
	if !ok || def == nil {
		result.Reason = ReasonUnknownCard
		return result
	}

	table, hasTable := r.progressions[canonical]
	switch {
	case result.Level == card.MaxLimitBreak:
		result.Reason = ReasonMaxLevel
	case !hasTable:
		result.Reason = ReasonNoProgression
	default:
		result.Reason = ReasonScaled
		result.Card = scale(def, table[result.Level], result.Level)
		return result
	}

	result.Card = &card.Resolved{
		Definition:      def.Clone(),
		LimitBreakLevel: result.Level,
		IsMaxLimitBreak: true,
	}
	return result
}

func scale(def *card.Definition, entry card.ProgressionEntry, level int) *card.Resolved {
	out := def.Clone()

	out.BaseStats = make(map[creature.Stat]int, len(def.BaseStats))
	for stat, v := range def.BaseStats {
		out.BaseStats[stat] = engine.Floor(float64(v) * entry.BaseStats)
	}

	out.TrainingBonus = card.TrainingBonus{
		TypeMatch:              engine.Floor(float64(def.TrainingBonus.TypeMatch) * entry.TrainingBonus),
		OtherStats:             max(1, engine.Floor(float64(def.TrainingBonus.OtherStats)*entry.TrainingBonus)),
		MaxFriendshipTypeMatch: engine.Floor(float64(def.TrainingBonus.MaxFriendshipTypeMatch) * entry.TrainingBonus),
	}

	out.SpecialEffect = scaleEffect(def.SpecialEffect, entry.SpecialEffect)

	out.AppearanceRate = entry.AppearanceRate
	out.TypeMatchPreference = entry.TypeMatchPreference
	out.InitialFriendship = entry.InitialFriendship

	return &card.Resolved{
		Definition:      out,
		LimitBreakLevel: level,
		IsMaxLimitBreak: false,
	}
}

// scaleEffect scales every numeric value by factor. The result is nil unless
// at least one scaled value is still significant.
func scaleEffect(base card.SpecialEffect, factor float64) card.SpecialEffect {
	if base == nil || factor <= 0 {
		return nil
	}

	out := make(card.SpecialEffect, len(base))
	for name, v := range base {
		switch v.Kind {
		case card.EffectMultiplier:
			out[name] = card.Multiplier(1.0 + (v.Number-1.0)*factor)
		case card.EffectIntegerBonus:
			out[name] = card.IntegerBonus(engine.RoundHalfUp(v.Number * factor))
		case card.EffectFractionalBonus:
			out[name] = card.FractionalBonus(v.Number * factor)
		default:
			out[name] = v
		}
	}

	if !out.AnySignificant() {
		return nil
	}
	return out
}
