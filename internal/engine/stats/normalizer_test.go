package stats_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/trainer-api/internal/engine"
	"github.com/KirkDiggler/trainer-api/internal/engine/stats"
	"github.com/KirkDiggler/trainer-api/internal/entities/creature"
)

type NormalizerTestSuite struct {
	suite.Suite
}

func TestNormalizerSuite(t *testing.T) {
	suite.Run(t, new(NormalizerTestSuite))
}

func uniform(v float64) creature.StatBlock {
	return creature.StatBlock{
		creature.StatHP:       v,
		creature.StatAttack:   v,
		creature.StatDefense:  v,
		creature.StatInstinct: v,
		creature.StatSpeed:    v,
	}
}

func (s *NormalizerTestSuite) TestMultiplier() {
	s.Equal(1.30, stats.Multiplier(creature.PotentialFinal))
	s.Equal(1.15, stats.Multiplier(creature.PotentialOneStage))
	s.Equal(1.00, stats.Multiplier(creature.PotentialTwoStages))
	s.Equal(1.00, stats.Multiplier(creature.EvolutionPotential(7)), "unknown tiers fall back to baseline")
	s.Equal(1.00, stats.Multiplier(creature.EvolutionPotential(-1)))
}

func (s *NormalizerTestSuite) TestNormalizeStats() {
	testCases := []struct {
		name      string
		raw       creature.StatBlock
		potential creature.EvolutionPotential
		expected  creature.NormalizedStats
		total     int
	}{
		{
			name:      "final stage scaled down to the ceiling",
			raw:       uniform(100),
			potential: creature.PotentialFinal,
			expected: creature.NormalizedStats{
				creature.StatHP: 80, creature.StatAttack: 80, creature.StatDefense: 80,
				creature.StatInstinct: 80, creature.StatSpeed: 80,
			},
			total: 400,
		},
		{
			name:      "weak baby scaled up to the floor",
			raw:       uniform(10),
			potential: creature.PotentialTwoStages,
			expected: creature.NormalizedStats{
				creature.StatHP: 60, creature.StatAttack: 60, creature.StatDefense: 60,
				creature.StatInstinct: 60, creature.StatSpeed: 60,
			},
			total: 300,
		},
		{
			name: "inside band left alone",
			raw: creature.StatBlock{
				creature.StatHP: 70, creature.StatAttack: 60, creature.StatDefense: 60,
				creature.StatInstinct: 60, creature.StatSpeed: 60,
			},
			potential: creature.PotentialTwoStages,
			expected: creature.NormalizedStats{
				creature.StatHP: 70, creature.StatAttack: 60, creature.StatDefense: 60,
				creature.StatInstinct: 60, creature.StatSpeed: 60,
			},
			total: 310,
		},
		{
			name:      "multiplier lands inside band",
			raw:       uniform(60),
			potential: creature.PotentialFinal,
			expected: creature.NormalizedStats{
				creature.StatHP: 78, creature.StatAttack: 78, creature.StatDefense: 78,
				creature.StatInstinct: 78, creature.StatSpeed: 78,
			},
			total: 390,
		},
		{
			name: "rounding drift above the floor is kept",
			raw: creature.StatBlock{
				creature.StatHP: 1, creature.StatAttack: 1, creature.StatDefense: 1,
				creature.StatInstinct: 1, creature.StatSpeed: 3,
			},
			potential: creature.PotentialTwoStages,
			expected: creature.NormalizedStats{
				creature.StatHP: 43, creature.StatAttack: 43, creature.StatDefense: 43,
				creature.StatInstinct: 43, creature.StatSpeed: 129,
			},
			total: 301,
		},
		{
			name:      "all zero stays zero",
			raw:       uniform(0),
			potential: creature.PotentialFinal,
			expected: creature.NormalizedStats{
				creature.StatHP: 0, creature.StatAttack: 0, creature.StatDefense: 0,
				creature.StatInstinct: 0, creature.StatSpeed: 0,
			},
			total: 0,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got := stats.NormalizeStats(tc.raw, tc.potential)
			s.Equal(tc.expected, got)
			s.Equal(tc.total, got.Total())
		})
	}
}

func (s *NormalizerTestSuite) TestNormalizeStatsDoesNotMutateInput() {
	raw := uniform(100)
	_ = stats.NormalizeStats(raw, creature.PotentialFinal)
	s.Equal(uniform(100), raw)
}

func (s *NormalizerTestSuite) TestBandProperty() {
	rng := rand.New(rand.NewPCG(42, 0))
	potentials := []creature.EvolutionPotential{
		creature.PotentialFinal, creature.PotentialOneStage, creature.PotentialTwoStages,
	}

	for i := 0; i < 2000; i++ {
		raw := creature.StatBlock{}
		for _, stat := range creature.AllStats {
			raw[stat] = float64(1 + rng.IntN(200))
		}
		potential := potentials[rng.IntN(len(potentials))]
		multiplier := stats.Multiplier(potential)

		preScale := 0
		adjusted := creature.NormalizedStats{}
		for _, stat := range creature.AllStats {
			adjusted[stat] = engine.RoundHalfUp(raw[stat] * multiplier)
			preScale += adjusted[stat]
		}

		got := stats.NormalizeStats(raw, potential)
		if preScale >= stats.MinTotal && preScale <= stats.MaxTotal {
			s.Require().Equal(adjusted, got, "in-band totals must not be rescaled: %v", raw)
			continue
		}
		// each of the five attributes can drift by at most half a point
		s.Require().GreaterOrEqual(got.Total(), stats.MinTotal-2, "raw=%v", raw)
		s.Require().LessOrEqual(got.Total(), stats.MaxTotal+2, "raw=%v", raw)
	}
}

func (s *NormalizerTestSuite) TestMultiplierMonotonic() {
	rng := rand.New(rand.NewPCG(7, 0))
	for i := 0; i < 500; i++ {
		v := rng.Float64() * 250
		final := engine.RoundHalfUp(v * stats.Multiplier(creature.PotentialFinal))
		one := engine.RoundHalfUp(v * stats.Multiplier(creature.PotentialOneStage))
		two := engine.RoundHalfUp(v * stats.Multiplier(creature.PotentialTwoStages))
		s.Require().GreaterOrEqual(final, one, "v=%v", v)
		s.Require().GreaterOrEqual(one, two, "v=%v", v)
	}
}

func (s *NormalizerTestSuite) TestInBudget() {
	s.True(stats.InBudget(stats.NormalizeStats(uniform(100), creature.PotentialFinal)))
	s.False(stats.InBudget(creature.NormalizedStats{creature.StatHP: 10}))
}
