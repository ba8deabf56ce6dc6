// Package stats turns raw creature stat distributions into balanced stat
// blocks
package stats

import (
	"github.com/KirkDiggler/trainer-api/internal/engine"
	"github.com/KirkDiggler/trainer-api/internal/entities/creature"
)

// Power budget for a normalized stat block
const (
	MinTotal = 300
	MaxTotal = 400
)

// Multiplier returns the evolution multiplier for a potential tier. Any tier
// other than final or one-stage gets the baseline 1.00.
func Multiplier(potential creature.EvolutionPotential) float64 {
	switch potential {
	case creature.PotentialFinal:
		return 1.30
	case creature.PotentialOneStage:
		return 1.15
	default:
		return 1.00
	}
}

// NormalizeStats applies the evolution multiplier and, when the resulting
// total falls outside [MinTotal, MaxTotal], rescales every attribute toward
// the nearest bound.
//
// There is no second pass after rescaling: rounding each attribute can leave
// the total a few points outside the band.
func NormalizeStats(raw creature.StatBlock, potential creature.EvolutionPotential) creature.NormalizedStats {
	multiplier := Multiplier(potential)

	adjusted := make(creature.NormalizedStats, len(creature.AllStats))
	total := 0
	for _, stat := range creature.AllStats {
		v := engine.RoundHalfUp(raw[stat] * multiplier)
		adjusted[stat] = v
		total += v
	}

	var target int
	switch {
	case total == 0:
		return adjusted
	case total < MinTotal:
		target = MinTotal
	case total > MaxTotal:
		target = MaxTotal
	default:
		return adjusted
	}

	scale := float64(target) / float64(total)
	for _, stat := range creature.AllStats {
		adjusted[stat] = engine.RoundHalfUp(float64(adjusted[stat]) * scale)
	}
	return adjusted
}

// InBudget reports whether a normalized block's total lies inside the band
func InBudget(n creature.NormalizedStats) bool {
	total := n.Total()
	return total >= MinTotal && total <= MaxTotal
}
