package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/trainer-api/internal/engine"
)

func TestRoundHalfUp(t *testing.T) {
	testCases := []struct {
		in       float64
		expected int
	}{
		{0, 0},
		{0.49, 0},
		{0.5, 1},
		{2.5, 3},
		{79.99999999, 80},
		{-2.5, -2},
		{-2.6, -3},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, engine.RoundHalfUp(tc.in), "RoundHalfUp(%v)", tc.in)
	}
}

func TestFloor(t *testing.T) {
	assert.Equal(t, 7, engine.Floor(7.9))
	assert.Equal(t, 0, engine.Floor(0.01))
	assert.Equal(t, -1, engine.Floor(-0.5))
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 0, engine.ClampInt(-3, 0, 4))
	assert.Equal(t, 4, engine.ClampInt(99, 0, 4))
	assert.Equal(t, 2, engine.ClampInt(2, 0, 4))
}
