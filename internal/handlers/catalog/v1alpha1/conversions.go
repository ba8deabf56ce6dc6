package v1alpha1

import (
	"math"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/trainer-api/internal/entities/card"
	"github.com/KirkDiggler/trainer-api/internal/entities/creature"
	"github.com/KirkDiggler/trainer-api/internal/errors"
	"github.com/KirkDiggler/trainer-api/internal/orchestrators/catalog"
)

func stringField(req *structpb.Struct, key string) (string, error) {
	v, ok := req.GetFields()[key]
	if !ok {
		return "", nil
	}
	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", errors.InvalidArgumentf("%s must be a string", key)
	}
	return s.StringValue, nil
}

// intField reads a whole number. Absent fields are zero.
func intField(req *structpb.Struct, key string) (int, error) {
	v, ok := req.GetFields()[key]
	if !ok {
		return 0, nil
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, errors.InvalidArgumentf("%s must be a number", key)
	}
	if n.NumberValue != math.Trunc(n.NumberValue) || math.Abs(n.NumberValue) > math.MaxInt32 {
		return 0, errors.InvalidArgumentf("%s must be a whole number", key)
	}
	return int(n.NumberValue), nil
}

func statBlockField(req *structpb.Struct, key string) (creature.StatBlock, error) {
	v, ok := req.GetFields()[key]
	if !ok {
		return nil, errors.InvalidArgumentf("%s is required", key)
	}
	s, ok := v.GetKind().(*structpb.Value_StructValue)
	if !ok {
		return nil, errors.InvalidArgumentf("%s must be an object", key)
	}

	block := make(creature.StatBlock, len(s.StructValue.GetFields()))
	for name, value := range s.StructValue.GetFields() {
		n, ok := value.GetKind().(*structpb.Value_NumberValue)
		if !ok {
			return nil, errors.InvalidArgumentf("%s.%s must be a number", key, name)
		}
		block[creature.Stat(name)] = n.NumberValue
	}
	return block, nil
}

func normalizedToMap(n creature.NormalizedStats) map[string]interface{} {
	out := make(map[string]interface{}, len(n))
	for stat, v := range n {
		out[string(stat)] = v
	}
	return out
}

func creatureToMap(e *catalog.CreatureEntry) map[string]interface{} {
	def := e.Definition
	raw := make(map[string]interface{}, len(def.RawStats))
	for stat, v := range def.RawStats {
		raw[string(stat)] = v
	}
	return map[string]interface{}{
		"id":                  def.ID,
		"name":                def.Name,
		"type":                def.Type,
		"evolution_potential": int(def.EvolutionPotential),
		"evolves_to":          def.EvolvesTo,
		"move_ids":            stringsToList(def.MoveIDs),
		"raw_stats":           raw,
		"stats":               normalizedToMap(e.Stats),
		"total":               e.Stats.Total(),
	}
}

// resolvedToMap flattens a resolved card. The limit break bookkeeping keys
// keep their underscore prefix so clients can tell them from card data.
func resolvedToMap(r *card.Resolved) map[string]interface{} {
	if r == nil {
		return nil
	}

	baseStats := make(map[string]interface{}, len(r.BaseStats))
	for stat, v := range r.BaseStats {
		baseStats[string(stat)] = v
	}

	var effect interface{}
	if r.SpecialEffect != nil {
		effect = r.SpecialEffect.AsMap()
	}

	return map[string]interface{}{
		"id":         r.ID,
		"name":       r.Name,
		"rarity":     string(r.Rarity),
		"type":       string(r.Type),
		"move_hints": stringsToList(r.MoveHints),
		"base_stats": baseStats,
		"training_bonus": map[string]interface{}{
			"type_match":                r.TrainingBonus.TypeMatch,
			"other_stats":               r.TrainingBonus.OtherStats,
			"max_friendship_type_match": r.TrainingBonus.MaxFriendshipTypeMatch,
		},
		"initial_friendship":    r.InitialFriendship,
		"appearance_rate":       r.AppearanceRate,
		"type_match_preference": r.TypeMatchPreference,
		"special_effect":        effect,
		"_limitBreakLevel":      r.LimitBreakLevel,
		"_isMaxLimitBreak":      r.IsMaxLimitBreak,
	}
}

func ownedCardToMap(o *card.OwnedCard) map[string]interface{} {
	return map[string]interface{}{
		"id":                o.ID,
		"player_id":         o.PlayerID,
		"card_name":         o.CardName,
		"limit_break_level": o.LimitBreakLevel,
		"acquired_at":       o.AcquiredAt.Format(time.RFC3339),
		"updated_at":        o.UpdatedAt.Format(time.RFC3339),
	}
}

func rosterEntryToMap(e *catalog.RosterEntry) map[string]interface{} {
	out := map[string]interface{}{
		"owned_card": ownedCardToMap(e.OwnedCard),
		"card":       nil,
	}
	if e.Card != nil {
		out["card"] = resolvedToMap(e.Card)
	}
	return out
}

func stringsToList(in []string) []interface{} {
	out := make([]interface{}, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}

func toStruct(fields map[string]interface{}) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to encode response")
	}
	return out, nil
}
