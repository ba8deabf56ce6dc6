package card

import (
	"fmt"
	"strings"
)

// EffectKind says how a special effect value scales with limit break
type EffectKind string

// Special effect kinds
const (
	// EffectMultiplier values are 1.0 + bonus; only the bonus scales
	EffectMultiplier EffectKind = "multiplier"
	// EffectIntegerBonus values scale and round to whole numbers
	EffectIntegerBonus EffectKind = "integer_bonus"
	// EffectFractionalBonus values scale without rounding
	EffectFractionalBonus EffectKind = "fractional_bonus"
	// EffectPassthrough values are not numeric and are copied as-is
	EffectPassthrough EffectKind = "passthrough"
)

const multiplierSuffix = "Multiplier"

// integerBonusEffects are the effect names whose magnitudes are whole numbers
var integerBonusEffects = map[string]struct{}{
	"maxEnergyBonus":      {},
	"restBonus":           {},
	"friendshipGainBonus": {},
	"energyRegenBonus":    {},
	"energyCostReduction": {},
}

// EffectValue is a single special effect magnitude tagged with its kind
type EffectValue struct {
	Kind   EffectKind `json:"kind"`
	Number float64    `json:"number,omitempty"`
	Text   string     `json:"text,omitempty"`
}

// Multiplier builds a multiplier effect value
func Multiplier(v float64) EffectValue {
	return EffectValue{Kind: EffectMultiplier, Number: v}
}

// IntegerBonus builds an integer bonus effect value
func IntegerBonus(v int) EffectValue {
	return EffectValue{Kind: EffectIntegerBonus, Number: float64(v)}
}

// FractionalBonus builds a fractional bonus effect value
func FractionalBonus(v float64) EffectValue {
	return EffectValue{Kind: EffectFractionalBonus, Number: v}
}

// Passthrough builds a non-numeric effect value
func Passthrough(text string) EffectValue {
	return EffectValue{Kind: EffectPassthrough, Text: text}
}

// ClassifyEffect decides the kind of an authored effect from its name and raw
// value. It runs once when game data is loaded.
func ClassifyEffect(name string, raw interface{}) EffectValue {
	number, ok := toFloat(raw)
	if !ok {
		return Passthrough(fmt.Sprint(raw))
	}
	if strings.HasSuffix(name, multiplierSuffix) {
		return Multiplier(number)
	}
	if _, ok := integerBonusEffects[name]; ok {
		return EffectValue{Kind: EffectIntegerBonus, Number: number}
	}
	return FractionalBonus(number)
}

// Significant reports whether the value is large enough to matter
func (v EffectValue) Significant() bool {
	switch v.Kind {
	case EffectMultiplier:
		return v.Number > 1.005
	case EffectIntegerBonus:
		return v.Number > 0
	case EffectFractionalBonus:
		return v.Number > 0.001
	default:
		return false
	}
}

// Value returns the plain value: int for integer bonuses, float64 for the
// other numeric kinds and string for passthrough
func (v EffectValue) Value() interface{} {
	switch v.Kind {
	case EffectIntegerBonus:
		return int(v.Number)
	case EffectPassthrough:
		return v.Text
	default:
		return v.Number
	}
}

// SpecialEffect maps effect names to tagged values. A nil SpecialEffect means
// the card has no special effect.
type SpecialEffect map[string]EffectValue

// Clone copies the map; nil stays nil
func (s SpecialEffect) Clone() SpecialEffect {
	if s == nil {
		return nil
	}
	out := make(SpecialEffect, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// AnySignificant reports whether at least one value is significant
func (s SpecialEffect) AnySignificant() bool {
	for _, v := range s {
		if v.Significant() {
			return true
		}
	}
	return false
}

// AsMap flattens the effect to plain values
func (s SpecialEffect) AsMap() map[string]interface{} {
	if s == nil {
		return nil
	}
	out := make(map[string]interface{}, len(s))
	for k, v := range s {
		out[k] = v.Value()
	}
	return out
}

func toFloat(raw interface{}) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
