package gamedata_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/trainer-api/internal/engine/stats"
	"github.com/KirkDiggler/trainer-api/internal/entities/card"
	"github.com/KirkDiggler/trainer-api/internal/entities/creature"
	"github.com/KirkDiggler/trainer-api/internal/errors"
	"github.com/KirkDiggler/trainer-api/internal/gamedata"
)

const minimalCreatures = `
creatures:
  - id: pebble
    name: Pebble
    type: rock
    evolution_potential: 0
    raw_stats: {HP: 60, Attack: 60, Defense: 60, Instinct: 60, Speed: 60}
`

const minimalCards = `
cards:
  - id: sc_focus
    name: Focus
    rarity: R
    type: Instinct
    base_stats: {Instinct: 6}
    training_bonus: {type_match: 10, other_stats: 2, max_friendship_type_match: 15}
    initial_friendship: 5
    appearance_rate: 0.3
    type_match_preference: 0.2
    special_effect:
      restBonus: 2
      hintTarget: Instinct
      trainingEffectMultiplier: 1.1
      failRateReduction: 0.05
`

const minimalProgressions = `
progressions:
  Focus:
    - {base_stats: 0.5, training_bonus: 0.5, special_effect: 0.5, appearance_rate: 0.1, type_match_preference: 0.1, initial_friendship: 1}
    - {base_stats: 0.6, training_bonus: 0.6, special_effect: 0.6, appearance_rate: 0.15, type_match_preference: 0.12, initial_friendship: 2}
    - {base_stats: 0.7, training_bonus: 0.7, special_effect: 0.7, appearance_rate: 0.2, type_match_preference: 0.15, initial_friendship: 3}
    - {base_stats: 0.8, training_bonus: 0.8, special_effect: 0.8, appearance_rate: 0.25, type_match_preference: 0.18, initial_friendship: 4}
    - {base_stats: 1.0, training_bonus: 1.0, special_effect: 1.0, appearance_rate: 0.3, type_match_preference: 0.2, initial_friendship: 5}
`

type LoaderTestSuite struct {
	suite.Suite
}

func TestLoaderSuite(t *testing.T) {
	suite.Run(t, new(LoaderTestSuite))
}

func minimalFS() fstest.MapFS {
	return fstest.MapFS{
		gamedata.CreaturesFile:    {Data: []byte(minimalCreatures)},
		gamedata.CardsFile:        {Data: []byte(minimalCards)},
		gamedata.ProgressionsFile: {Data: []byte(minimalProgressions)},
		gamedata.LegacyNamesFile:  {Data: []byte("legacy_names:\n  Old Focus: Focus\n")},
	}
}

func (s *LoaderTestSuite) TestLoadMinimal() {
	tables, err := gamedata.Load(minimalFS())
	s.Require().NoError(err)

	s.Require().Contains(tables.Creatures, "pebble")
	s.Equal(creature.PotentialFinal, tables.Creatures["pebble"].EvolutionPotential)
	s.Equal(60.0, tables.Creatures["pebble"].RawStats[creature.StatSpeed])

	focus := tables.Cards["Focus"]
	s.Require().NotNil(focus)
	s.Equal("sc_focus", focus.ID)
	s.Equal(card.RarityR, focus.Rarity)
	s.Equal(creature.StatInstinct, focus.Type)
	s.Equal(card.SpecialEffect{
		"restBonus":                card.IntegerBonus(2),
		"hintTarget":               card.Passthrough("Instinct"),
		"trainingEffectMultiplier": card.Multiplier(1.1),
		"failRateReduction":        card.FractionalBonus(0.05),
	}, focus.SpecialEffect)

	s.Require().Contains(tables.Progressions, "Focus")
	s.Equal(0.5, tables.Progressions["Focus"][0].BaseStats)
	s.Equal(5, tables.Progressions["Focus"][4].InitialFriendship)

	s.Equal(card.LegacyNames{"Old Focus": "Focus"}, tables.LegacyNames)
}

func (s *LoaderTestSuite) TestOptionalFilesMayBeMissing() {
	fsys := minimalFS()
	delete(fsys, gamedata.ProgressionsFile)
	delete(fsys, gamedata.LegacyNamesFile)

	tables, err := gamedata.Load(fsys)
	s.Require().NoError(err)
	s.Empty(tables.Progressions)
	s.Empty(tables.LegacyNames)
}

func (s *LoaderTestSuite) TestRequiredFilesMustExist() {
	for _, name := range []string{gamedata.CreaturesFile, gamedata.CardsFile} {
		s.Run(name, func() {
			fsys := minimalFS()
			delete(fsys, name)

			_, err := gamedata.Load(fsys)
			s.Error(err)
		})
	}
}

func (s *LoaderTestSuite) TestUnknownFieldRejected() {
	fsys := minimalFS()
	fsys[gamedata.CardsFile] = &fstest.MapFile{Data: []byte("cards:\n  - name: X\n    colour: red\n")}

	_, err := gamedata.Load(fsys)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *LoaderTestSuite) TestWrongProgressionLength() {
	fsys := minimalFS()
	fsys[gamedata.ProgressionsFile] = &fstest.MapFile{Data: []byte(`
progressions:
  Focus:
    - {base_stats: 1, training_bonus: 1, special_effect: 1, appearance_rate: 0.3, type_match_preference: 0.2, initial_friendship: 5}
`)}

	_, err := gamedata.Load(fsys)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "progressions.Focus")
}

func (s *LoaderTestSuite) TestDuplicateCardName() {
	fsys := minimalFS()
	fsys[gamedata.CardsFile] = &fstest.MapFile{Data: []byte(minimalCards + `
  - id: sc_focus_2
    name: Focus
    rarity: R
    type: Instinct
    training_bonus: {type_match: 1, other_stats: 1, max_friendship_type_match: 1}
    appearance_rate: 0.3
`)}

	_, err := gamedata.Load(fsys)
	s.Require().Error(err)
	s.Contains(err.Error(), "duplicate name")
}

func (s *LoaderTestSuite) TestLoadDir() {
	dir := s.T().TempDir()
	for name, file := range minimalFS() {
		s.Require().NoError(os.WriteFile(filepath.Join(dir, name), file.Data, 0o600))
	}

	tables, err := gamedata.LoadDir(dir)
	s.Require().NoError(err)
	s.Len(tables.Cards, 1)

	_, err = gamedata.LoadDir("")
	s.True(errors.IsInvalidArgument(err))

	_, err = gamedata.LoadDir(filepath.Join(dir, "missing"))
	s.True(errors.IsNotFound(err))
}

func (s *LoaderTestSuite) TestLoadDefault() {
	tables, err := gamedata.LoadDefault()
	s.Require().NoError(err)

	s.Len(tables.Creatures, 8)
	s.Len(tables.Cards, 6)
	s.Len(tables.Progressions, 5)
	s.NotContains(tables.Progressions, "Quiet Mentor")
	s.Equal("Blazing Sprint", tables.LegacyNames["Speed Demon"])

	sprint := tables.Cards["Blazing Sprint"]
	s.Require().NotNil(sprint)
	s.Equal(card.Multiplier(1.25), sprint.SpecialEffect["trainingEffectMultiplier"])
	s.Equal(card.IntegerBonus(4), sprint.SpecialEffect["energyRegenBonus"])
	s.Equal(card.FractionalBonus(0.2), sprint.SpecialEffect["failRateReduction"])
	s.Equal(card.Passthrough("Attack"), tables.Cards["Power Surge"].SpecialEffect["hintTarget"])
	s.Nil(tables.Cards["Quiet Mentor"].SpecialEffect)
}

func (s *LoaderTestSuite) TestDefaultCreaturesNormalizeNearBudget() {
	tables, err := gamedata.LoadDefault()
	s.Require().NoError(err)

	normalized := tables.NormalizedCreatures()
	s.Len(normalized, len(tables.Creatures))
	for id, n := range normalized {
		s.GreaterOrEqual(n.Total(), stats.MinTotal-3, id)
		s.LessOrEqual(n.Total(), stats.MaxTotal+3, id)
	}

	s.Equal(tables.CreatureIDs()[0], "cindertail")
	s.Equal(tables.CardNames()[0], "Blazing Sprint")
}
