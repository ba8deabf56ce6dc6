package gamedata

import (
	"github.com/KirkDiggler/trainer-api/internal/engine/stats"
	"github.com/KirkDiggler/trainer-api/internal/entities/creature"
)

// NormalizedCreatures normalizes every creature's raw stats once. The result
// is keyed by creature ID.
func (t *Tables) NormalizedCreatures() map[string]creature.NormalizedStats {
	out := make(map[string]creature.NormalizedStats, len(t.Creatures))
	for id, c := range t.Creatures {
		out[id] = stats.NormalizeStats(c.RawStats, c.EvolutionPotential)
	}
	return out
}

// CreatureIDs returns every creature ID in sorted order
func (t *Tables) CreatureIDs() []string {
	return sortedKeys(t.Creatures)
}

// CardNames returns every canonical card name in sorted order
func (t *Tables) CardNames() []string {
	return sortedKeys(t.Cards)
}
