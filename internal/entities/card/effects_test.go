package card_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/trainer-api/internal/entities/card"
)

func TestClassifyEffect(t *testing.T) {
	testCases := []struct {
		name     string
		effect   string
		raw      interface{}
		expected card.EffectValue
	}{
		{"multiplier suffix", "trainingEffectMultiplier", 1.1, card.Multiplier(1.1)},
		{"integer bonus from int", "maxEnergyBonus", 4, card.IntegerBonus(4)},
		{"integer bonus from float", "restBonus", 5.0, card.IntegerBonus(5)},
		{"fractional bonus", "failRateReduction", 0.15, card.FractionalBonus(0.15)},
		{"unknown numeric is fractional", "moodBoost", 2, card.FractionalBonus(2)},
		{"string passthrough", "hintTarget", "Speed", card.Passthrough("Speed")},
		{"bool passthrough", "unlocksEvent", true, card.Passthrough("true")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, card.ClassifyEffect(tc.effect, tc.raw))
		})
	}
}

func TestEffectValueSignificant(t *testing.T) {
	testCases := []struct {
		name     string
		value    card.EffectValue
		expected bool
	}{
		{"multiplier above threshold", card.Multiplier(1.006), true},
		{"multiplier at threshold", card.Multiplier(1.005), false},
		{"multiplier neutral", card.Multiplier(1.0), false},
		{"integer bonus positive", card.IntegerBonus(1), true},
		{"integer bonus zero", card.IntegerBonus(0), false},
		{"fractional above threshold", card.FractionalBonus(0.002), true},
		{"fractional at threshold", card.FractionalBonus(0.001), false},
		{"passthrough never", card.Passthrough("Speed"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.value.Significant())
		})
	}
}

func TestSpecialEffectHelpers(t *testing.T) {
	var none card.SpecialEffect
	assert.Nil(t, none.Clone())
	assert.Nil(t, none.AsMap())
	assert.False(t, none.AnySignificant())

	effect := card.SpecialEffect{
		"energyRegenBonus":  card.IntegerBonus(2),
		"failRateReduction": card.FractionalBonus(0.1),
		"hintTarget":        card.Passthrough("Speed"),
	}
	assert.True(t, effect.AnySignificant())
	assert.Equal(t, map[string]interface{}{
		"energyRegenBonus":  2,
		"failRateReduction": 0.1,
		"hintTarget":        "Speed",
	}, effect.AsMap())

	clone := effect.Clone()
	clone["energyRegenBonus"] = card.IntegerBonus(9)
	assert.Equal(t, card.IntegerBonus(2), effect["energyRegenBonus"])
}
