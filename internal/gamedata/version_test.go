package gamedata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/trainer-api/internal/testutils"
)

func TestCardVersion(t *testing.T) {
	base, err := testutils.CreateTestTables().CardVersion()
	require.NoError(t, err)
	assert.NotEmpty(t, base)

	t.Run("stable across identical tables", func(t *testing.T) {
		again, err := testutils.CreateTestTables().CardVersion()
		require.NoError(t, err)
		assert.Equal(t, base, again)
	})

	t.Run("changes with a progression row", func(t *testing.T) {
		tables := testutils.CreateTestTables()
		table := tables.Progressions[testutils.CardSpeedDemon]
		table[0].AppearanceRate = 0.99
		tables.Progressions[testutils.CardSpeedDemon] = table

		changed, err := tables.CardVersion()
		require.NoError(t, err)
		assert.NotEqual(t, base, changed)
	})

	t.Run("changes with a card definition", func(t *testing.T) {
		tables := testutils.CreateTestTables()
		tables.Cards[testutils.CardLuckyCharm].InitialFriendship++

		changed, err := tables.CardVersion()
		require.NoError(t, err)
		assert.NotEqual(t, base, changed)
	})

	t.Run("ignores creatures and legacy names", func(t *testing.T) {
		tables := testutils.CreateTestTables()
		tables.Creatures = nil
		tables.LegacyNames = nil

		same, err := tables.CardVersion()
		require.NoError(t, err)
		assert.Equal(t, base, same)
	})
}
