// Package creature holds the static creature records of the content database
package creature

import "github.com/KirkDiggler/rpg-toolkit/core"

// Stat names one of the five creature attributes
type Stat string

// The five attributes every stat block carries
const (
	StatHP       Stat = "HP"
	StatAttack   Stat = "Attack"
	StatDefense  Stat = "Defense"
	StatInstinct Stat = "Instinct"
	StatSpeed    Stat = "Speed"
)

// AllStats lists the attributes in display order
var AllStats = []Stat{StatHP, StatAttack, StatDefense, StatInstinct, StatSpeed}

// IsValid reports whether s is one of the five known attributes
func (s Stat) IsValid() bool {
	switch s {
	case StatHP, StatAttack, StatDefense, StatInstinct, StatSpeed:
		return true
	}
	return false
}

// StatBlock is a designer-authored raw stat distribution
type StatBlock map[Stat]float64

// Total sums the five attributes
func (b StatBlock) Total() float64 {
	var total float64
	for _, stat := range AllStats {
		total += b[stat]
	}
	return total
}

// NormalizedStats is a stat block after normalization: integers with a
// constrained total
type NormalizedStats map[Stat]int

// Total sums the five attributes
func (n NormalizedStats) Total() int {
	total := 0
	for _, stat := range AllStats {
		total += n[stat]
	}
	return total
}

// EvolutionPotential is how many evolution stages a creature still has ahead
// of it. Values other than the named ones are treated as PotentialTwoStages.
type EvolutionPotential int

// Evolution potential tiers
const (
	PotentialFinal     EvolutionPotential = 0
	PotentialOneStage  EvolutionPotential = 1
	PotentialTwoStages EvolutionPotential = 2
)

// Definition is the static record for one creature
type Definition struct {
	ID                 string             `json:"id" yaml:"id"`
	Name               string             `json:"name" yaml:"name"`
	Type               string             `json:"type" yaml:"type"`
	RawStats           StatBlock          `json:"raw_stats" yaml:"raw_stats"`
	EvolutionPotential EvolutionPotential `json:"evolution_potential" yaml:"evolution_potential"`
	EvolvesTo          string             `json:"evolves_to,omitempty" yaml:"evolves_to,omitempty"`
	MoveIDs            []string           `json:"move_ids,omitempty" yaml:"move_ids,omitempty"`
}

// GetID returns the creature's ID
func (d *Definition) GetID() string {
	return d.ID
}

// GetType returns the entity type for rpg-toolkit
func (d *Definition) GetType() string {
	return "creature"
}

var _ core.Entity = (*Definition)(nil)
