package limitbreak_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/trainer-api/internal/engine/limitbreak"
	"github.com/KirkDiggler/trainer-api/internal/entities/card"
	"github.com/KirkDiggler/trainer-api/internal/entities/creature"
	"github.com/KirkDiggler/trainer-api/internal/testutils"
)

type ResolverTestSuite struct {
	suite.Suite
	cards    map[string]*card.Definition
	resolver *limitbreak.Resolver
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func (s *ResolverTestSuite) SetupTest() {
	s.cards = testutils.CreateTestCards()
	resolver, err := limitbreak.NewResolver(&limitbreak.Config{
		Cards:        s.cards,
		Progressions: testutils.CreateTestProgressions(),
		LegacyNames:  testutils.CreateTestLegacyNames(),
	})
	s.Require().NoError(err)
	s.resolver = resolver
}

func (s *ResolverTestSuite) TestNewResolver() {
	testCases := []struct {
		name    string
		config  *limitbreak.Config
		wantErr bool
	}{
		{"nil config", nil, true},
		{"missing cards", &limitbreak.Config{}, true},
		{"cards only", &limitbreak.Config{Cards: map[string]*card.Definition{}}, false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resolver, err := limitbreak.NewResolver(tc.config)
			if tc.wantErr {
				s.Error(err)
				s.Nil(resolver)
				return
			}
			s.NoError(err)
			s.NotNil(resolver)
		})
	}
}

func (s *ResolverTestSuite) TestNormalizeName() {
	for legacy, canonical := range testutils.CreateTestLegacyNames() {
		s.Equal(canonical, s.resolver.NormalizeName(legacy))
	}
	s.Equal("Anything Else", s.resolver.NormalizeName("Anything Else"))
	s.Equal("", s.resolver.NormalizeName(""))
	s.Equal("x", limitbreak.NormalizeName(nil, "x"))
}

func (s *ResolverTestSuite) TestUnknownCard() {
	s.Nil(s.resolver.ResolveCard("NonexistentCard", 2))

	result := s.resolver.Resolve(testutils.LegacyDangling, 7)
	s.Nil(result.Card)
	s.Equal(limitbreak.ReasonUnknownCard, result.Reason)
	s.Equal("Nonexistent Canon", result.CanonicalName)
	s.True(result.Renamed())
	s.True(result.Clamped())
	s.Equal(card.MaxLimitBreak, result.Level)
}

func (s *ResolverTestSuite) TestMaxLevelIsIdentity() {
	for name, def := range s.cards {
		s.Run(name, func() {
			at4 := s.resolver.ResolveCard(name, 4)
			above := s.resolver.ResolveCard(name, 12)
			s.Require().NotNil(at4)
			s.Equal(*def, at4.Definition)
			s.Equal(at4, above)
			s.True(at4.IsMaxLimitBreak)
			s.Equal(card.MaxLimitBreak, at4.LimitBreakLevel)
		})
	}

	result := s.resolver.Resolve(testutils.CardSpeedDemon, 4)
	s.Equal(limitbreak.ReasonMaxLevel, result.Reason)
	s.True(result.Reason.IsFallback())
}

func (s *ResolverTestSuite) TestIdentityResultIsACopy() {
	resolved := s.resolver.ResolveCard(testutils.CardSpeedDemon, 4)
	resolved.BaseStats[creature.StatSpeed] = 999
	resolved.SpecialEffect["energyRegenBonus"] = card.IntegerBonus(99)

	s.Equal(10, s.cards[testutils.CardSpeedDemon].BaseStats[creature.StatSpeed])
	s.Equal(card.IntegerBonus(3), s.cards[testutils.CardSpeedDemon].SpecialEffect["energyRegenBonus"])
}

func (s *ResolverTestSuite) TestNoProgressionTable() {
	result := s.resolver.Resolve(testutils.CardQuietMentor, 1)
	s.Equal(limitbreak.ReasonNoProgression, result.Reason)
	s.Require().NotNil(result.Card)
	s.Equal(*s.cards[testutils.CardQuietMentor], result.Card.Definition)
	s.Equal(1, result.Card.LimitBreakLevel)
	s.True(result.Card.IsMaxLimitBreak)
}

func (s *ResolverTestSuite) TestScaledLevels() {
	testCases := []struct {
		name       string
		level      int
		baseStats  map[creature.Stat]int
		bonus      card.TrainingBonus
		multiplier float64
		regen      int
		failRate   float64
		appearance float64
		preference float64
		friendship int
	}{
		{
			name:       "level 0",
			level:      0,
			baseStats:  map[creature.Stat]int{creature.StatSpeed: 5, creature.StatInstinct: 2},
			bonus:      card.TrainingBonus{TypeMatch: 10, OtherStats: 2, MaxFriendshipTypeMatch: 15},
			multiplier: 1.1,
			regen:      2,
			failRate:   0.1,
			appearance: 0.3,
			preference: 0.4,
			friendship: 10,
		},
		{
			name:       "level 1",
			level:      1,
			baseStats:  map[creature.Stat]int{creature.StatSpeed: 6, creature.StatInstinct: 3},
			bonus:      card.TrainingBonus{TypeMatch: 12, OtherStats: 3, MaxFriendshipTypeMatch: 18},
			multiplier: 1.125,
			regen:      2,
			failRate:   0.125,
			appearance: 0.35,
			preference: 0.45,
			friendship: 15,
		},
		{
			name:       "level 2",
			level:      2,
			baseStats:  map[creature.Stat]int{creature.StatSpeed: 7, creature.StatInstinct: 3},
			bonus:      card.TrainingBonus{TypeMatch: 15, OtherStats: 3, MaxFriendshipTypeMatch: 22},
			multiplier: 1.15,
			regen:      2,
			failRate:   0.15,
			appearance: 0.4,
			preference: 0.5,
			friendship: 20,
		},
		{
			name:       "level 3",
			level:      3,
			baseStats:  map[creature.Stat]int{creature.StatSpeed: 8, creature.StatInstinct: 4},
			bonus:      card.TrainingBonus{TypeMatch: 17, OtherStats: 4, MaxFriendshipTypeMatch: 26},
			multiplier: 1.175,
			regen:      3,
			failRate:   0.175,
			appearance: 0.45,
			preference: 0.55,
			friendship: 22,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			result := s.resolver.Resolve(testutils.CardSpeedDemon, tc.level)
			s.Equal(limitbreak.ReasonScaled, result.Reason)
			s.False(result.Reason.IsFallback())

			resolved := result.Card
			s.Require().NotNil(resolved)
			s.Equal(tc.level, resolved.LimitBreakLevel)
			s.False(resolved.IsMaxLimitBreak)

			s.Equal(tc.baseStats, resolved.BaseStats)
			s.Equal(tc.bonus, resolved.TrainingBonus)
			s.Equal(tc.appearance, resolved.AppearanceRate)
			s.Equal(tc.preference, resolved.TypeMatchPreference)
			s.Equal(tc.friendship, resolved.InitialFriendship)

			effect := resolved.SpecialEffect
			s.Require().Len(effect, 3)
			s.Equal(card.EffectMultiplier, effect["trainingEffectMultiplier"].Kind)
			s.InDelta(tc.multiplier, effect["trainingEffectMultiplier"].Number, 1e-9)
			s.Equal(card.IntegerBonus(tc.regen), effect["energyRegenBonus"])
			s.Equal(card.EffectFractionalBonus, effect["failRateReduction"].Kind)
			s.InDelta(tc.failRate, effect["failRateReduction"].Number, 1e-9)

			s.Equal(testutils.CardSpeedDemon, resolved.Name)
			s.Equal(card.RaritySSR, resolved.Rarity)
			s.Equal([]string{"quick_attack"}, resolved.MoveHints)
		})
	}
}

func (s *ResolverTestSuite) TestNegativeLevelClampsToZero() {
	result := s.resolver.Resolve(testutils.CardSpeedDemon, -3)
	s.True(result.Clamped())
	s.Equal(0, result.Level)
	s.Equal(s.resolver.ResolveCard(testutils.CardSpeedDemon, 0), result.Card)
}

func (s *ResolverTestSuite) TestLegacyNameResolves() {
	result := s.resolver.Resolve(testutils.LegacySpeedDemon, 2)
	s.True(result.Renamed())
	s.Equal(testutils.CardSpeedDemon, result.CanonicalName)
	s.Equal(s.resolver.ResolveCard(testutils.CardSpeedDemon, 2), result.Card)
}

func (s *ResolverTestSuite) TestFractionalEffectDroppedAtZeroFactor() {
	resolved := s.resolver.ResolveCard(testutils.CardLuckyCharm, 0)
	s.Require().NotNil(resolved)
	s.Nil(resolved.SpecialEffect)

	resolved = s.resolver.ResolveCard(testutils.CardLuckyCharm, 1)
	s.Require().NotNil(resolved)
	s.Require().Contains(resolved.SpecialEffect, "failRateReduction")
	s.InDelta(0.075, resolved.SpecialEffect["failRateReduction"].Number, 1e-9)
}

func (s *ResolverTestSuite) TestOtherStatsNeverBelowOne() {
	resolved := s.resolver.ResolveCard(testutils.CardLuckyCharm, 0)
	s.Require().NotNil(resolved)
	s.Equal(card.TrainingBonus{TypeMatch: 0, OtherStats: 1, MaxFriendshipTypeMatch: 0}, resolved.TrainingBonus)

	for name := range s.cards {
		for level := card.MinLimitBreak; level <= card.MaxLimitBreak; level++ {
			resolved := s.resolver.ResolveCard(name, level)
			s.Require().NotNil(resolved)
			s.GreaterOrEqual(resolved.TrainingBonus.OtherStats, 1, "%s level %d", name, level)
		}
	}
}

func (s *ResolverTestSuite) TestPassthroughDoesNotCountAsSignificant() {
	resolved := s.resolver.ResolveCard(testutils.CardFaintEcho, 0)
	s.Require().NotNil(resolved)
	s.Nil(resolved.SpecialEffect)

	resolved = s.resolver.ResolveCard(testutils.CardFaintEcho, 2)
	s.Require().NotNil(resolved)
	s.Equal(card.SpecialEffect{
		"restBonus":  card.IntegerBonus(1),
		"hintTarget": card.Passthrough("HP"),
	}, resolved.SpecialEffect)
}

func (s *ResolverTestSuite) TestScaledEffectsAreNilOrSignificant() {
	for name := range s.cards {
		for level := card.MinLimitBreak; level < card.MaxLimitBreak; level++ {
			resolved := s.resolver.ResolveCard(name, level)
			s.Require().NotNil(resolved)
			if resolved.SpecialEffect != nil {
				s.True(resolved.SpecialEffect.AnySignificant(), "%s level %d", name, level)
			}
		}
	}
}

func (s *ResolverTestSuite) TestBaseStatKeysNeverIntroduced() {
	resolved := s.resolver.ResolveCard(testutils.CardLuckyCharm, 2)
	s.Require().NotNil(resolved)
	s.Equal(map[creature.Stat]int{creature.StatInstinct: 3}, resolved.BaseStats)
}

func (s *ResolverTestSuite) TestConcurrentResolve() {
	expected := s.resolver.ResolveCard(testutils.CardSpeedDemon, 2)

	var wg sync.WaitGroup
	results := make([]*card.Resolved, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = s.resolver.ResolveCard(testutils.CardSpeedDemon, 2)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		s.Equal(expected, got)
	}
}
