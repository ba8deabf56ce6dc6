// Package v1alpha1 exposes the catalog over gRPC
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/trainer-api/internal/entities/creature"
	"github.com/KirkDiggler/trainer-api/internal/errors"
	"github.com/KirkDiggler/trainer-api/internal/orchestrators/catalog"
)

// HandlerConfig holds dependencies for the catalog handler
type HandlerConfig struct {
	CatalogService catalog.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.CatalogService == nil {
		return errors.InvalidArgument("catalog service is required")
	}
	return nil
}

// Handler implements CatalogServiceServer
type Handler struct {
	catalogService catalog.Service
}

var _ CatalogServiceServer = (*Handler)(nil)

// NewHandler creates a new catalog handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Handler{catalogService: cfg.CatalogService}, nil
}

// NormalizeStats normalizes an ad hoc stat block
func (h *Handler) NormalizeStats(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	rawStats, err := statBlockField(req, "raw_stats")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	potential, err := intField(req, "evolution_potential")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.catalogService.NormalizeStats(ctx, &catalog.NormalizeStatsInput{
		RawStats:           rawStats,
		EvolutionPotential: creature.EvolutionPotential(potential),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(toStruct(map[string]interface{}{
		"stats":      normalizedToMap(out.Stats),
		"total":      out.Total,
		"multiplier": out.Multiplier,
		"in_budget":  out.InBudget,
	}))
}

// GetCreature returns one creature with its normalized stats
func (h *Handler) GetCreature(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := stringField(req, "id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.catalogService.GetCreature(ctx, &catalog.GetCreatureInput{ID: id})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(toStruct(map[string]interface{}{
		"creature": creatureToMap(out.Creature),
	}))
}

// ListCreatures returns every creature
func (h *Handler) ListCreatures(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.catalogService.ListCreatures(ctx, &catalog.ListCreaturesInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	creatures := make([]interface{}, 0, len(out.Creatures))
	for _, c := range out.Creatures {
		creatures = append(creatures, creatureToMap(c))
	}

	return respond(toStruct(map[string]interface{}{"creatures": creatures}))
}

// ResolveCard returns a card scaled to a limit break level
func (h *Handler) ResolveCard(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	name, err := stringField(req, "card_name")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	level, err := intField(req, "level")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.catalogService.ResolveCard(ctx, &catalog.ResolveCardInput{CardName: name, Level: level})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(toStruct(map[string]interface{}{
		"card":           resolvedToMap(out.Card),
		"canonical_name": out.CanonicalName,
		"level":          out.Level,
		"reason":         string(out.Reason),
		"cached":         out.Cached,
	}))
}

// AddOwnedCard grants a card to a player
func (h *Handler) AddOwnedCard(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	playerID, err := stringField(req, "player_id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	name, err := stringField(req, "card_name")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	level, err := intField(req, "level")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.catalogService.AddOwnedCard(ctx, &catalog.AddOwnedCardInput{
		PlayerID: playerID,
		CardName: name,
		Level:    level,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(toStruct(map[string]interface{}{"entry": rosterEntryToMap(out.Entry)}))
}

// SetLimitBreak changes an owned card's level
func (h *Handler) SetLimitBreak(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := stringField(req, "owned_card_id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	level, err := intField(req, "level")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.catalogService.SetLimitBreak(ctx, &catalog.SetLimitBreakInput{OwnedCardID: id, Level: level})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(toStruct(map[string]interface{}{"entry": rosterEntryToMap(out.Entry)}))
}

// GetRoster lists a player's cards at their current levels
func (h *Handler) GetRoster(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	playerID, err := stringField(req, "player_id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.catalogService.GetRoster(ctx, &catalog.GetRosterInput{PlayerID: playerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	entries := make([]interface{}, 0, len(out.Entries))
	for _, e := range out.Entries {
		entries = append(entries, rosterEntryToMap(e))
	}

	return respond(toStruct(map[string]interface{}{"entries": entries}))
}

// RemoveOwnedCard deletes an owned card
func (h *Handler) RemoveOwnedCard(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := stringField(req, "owned_card_id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	if _, err := h.catalogService.RemoveOwnedCard(ctx, &catalog.RemoveOwnedCardInput{OwnedCardID: id}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &structpb.Struct{}, nil
}

func respond(out *structpb.Struct, err error) (*structpb.Struct, error) {
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}
