// Package catalog serves creature stats and limit-break-scaled cards from the
// loaded game data, and manages the cards each player owns
package catalog

//go:generate mockgen -destination=mock/mock_service.go -package=catalogmock github.com/KirkDiggler/trainer-api/internal/orchestrators/catalog Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/trainer-api/internal/engine"
	"github.com/KirkDiggler/trainer-api/internal/engine/limitbreak"
	"github.com/KirkDiggler/trainer-api/internal/engine/stats"
	"github.com/KirkDiggler/trainer-api/internal/entities/card"
	"github.com/KirkDiggler/trainer-api/internal/entities/creature"
	"github.com/KirkDiggler/trainer-api/internal/errors"
	"github.com/KirkDiggler/trainer-api/internal/gamedata"
	"github.com/KirkDiggler/trainer-api/internal/pkg/clock"
	"github.com/KirkDiggler/trainer-api/internal/pkg/idgen"
	resolvedcard "github.com/KirkDiggler/trainer-api/internal/repositories/resolved_card"
	"github.com/KirkDiggler/trainer-api/internal/repositories/roster"
)

// Service defines the catalog operations
type Service interface {
	// Stats
	NormalizeStats(ctx context.Context, input *NormalizeStatsInput) (*NormalizeStatsOutput, error)
	GetCreature(ctx context.Context, input *GetCreatureInput) (*GetCreatureOutput, error)
	ListCreatures(ctx context.Context, input *ListCreaturesInput) (*ListCreaturesOutput, error)

	// Cards
	ResolveCard(ctx context.Context, input *ResolveCardInput) (*ResolveCardOutput, error)

	// Roster
	AddOwnedCard(ctx context.Context, input *AddOwnedCardInput) (*AddOwnedCardOutput, error)
	SetLimitBreak(ctx context.Context, input *SetLimitBreakInput) (*SetLimitBreakOutput, error)
	GetRoster(ctx context.Context, input *GetRosterInput) (*GetRosterOutput, error)
	RemoveOwnedCard(ctx context.Context, input *RemoveOwnedCardInput) (*RemoveOwnedCardOutput, error)
}

// Config holds the dependencies for the catalog orchestrator
type Config struct {
	Tables     *gamedata.Tables
	RosterRepo roster.Repository
	// CardCache is optional; without it every call resolves from the tables
	CardCache   resolvedcard.Repository
	IDGenerator idgen.Generator
	// Clock defaults to the system clock
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.Tables == nil {
		vb.RequiredField("Tables")
	}
	if c.RosterRepo == nil {
		vb.RequiredField("RosterRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	tables     *gamedata.Tables
	normalized map[string]creature.NormalizedStats
	resolver   *limitbreak.Resolver
	rosterRepo roster.Repository
	cardCache  resolvedcard.Repository
	idGen      idgen.Generator
	clock      clock.Clock
}

// NewOrchestrator creates a catalog orchestrator. Every creature is
// normalized once here.
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	resolver, err := limitbreak.NewResolver(&limitbreak.Config{
		Cards:        cfg.Tables.Cards,
		Progressions: cfg.Tables.Progressions,
		LegacyNames:  cfg.Tables.LegacyNames,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create resolver")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		tables:     cfg.Tables,
		normalized: cfg.Tables.NormalizedCreatures(),
		resolver:   resolver,
		rosterRepo: cfg.RosterRepo,
		cardCache:  cfg.CardCache,
		idGen:      cfg.IDGenerator,
		clock:      c,
	}, nil
}

func (o *orchestrator) NormalizeStats(
	_ context.Context,
	input *NormalizeStatsInput,
) (*NormalizeStatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	for stat, v := range input.RawStats {
		if !stat.IsValid() {
			vb.Field("raw_stats."+string(stat), "unknown stat")
			continue
		}
		errors.ValidateNonNegative("raw_stats."+string(stat), v, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	normalized := stats.NormalizeStats(input.RawStats, input.EvolutionPotential)

	return &NormalizeStatsOutput{
		Stats:      normalized,
		Total:      normalized.Total(),
		Multiplier: stats.Multiplier(input.EvolutionPotential),
		InBudget:   stats.InBudget(normalized),
	}, nil
}

func (o *orchestrator) GetCreature(_ context.Context, input *GetCreatureInput) (*GetCreatureOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("creature ID is required")
	}

	def, ok := o.tables.Creatures[input.ID]
	if !ok {
		return nil, errors.NotFoundf("creature %s not found", input.ID)
	}

	return &GetCreatureOutput{
		Creature: &CreatureEntry{Definition: def, Stats: o.normalized[input.ID]},
	}, nil
}

func (o *orchestrator) ListCreatures(_ context.Context, _ *ListCreaturesInput) (*ListCreaturesOutput, error) {
	ids := o.tables.CreatureIDs()
	entries := make([]*CreatureEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, &CreatureEntry{
			Definition: o.tables.Creatures[id],
			Stats:      o.normalized[id],
		})
	}
	return &ListCreaturesOutput{Creatures: entries}, nil
}

func (o *orchestrator) ResolveCard(ctx context.Context, input *ResolveCardInput) (*ResolveCardOutput, error) {
	if input == nil || strings.TrimSpace(input.CardName) == "" {
		return nil, errors.InvalidArgument("card name is required")
	}

	out := o.resolve(ctx, input.CardName, input.Level)
	if out.Card == nil {
		return nil, errors.NotFoundf("card %s not found", input.CardName).
			WithMeta("canonical_name", out.CanonicalName)
	}
	return out, nil
}

// resolve is cache-through. A nil Card means the card is unknown.
func (o *orchestrator) resolve(ctx context.Context, name string, level int) *ResolveCardOutput {
	canonical := o.resolver.NormalizeName(name)
	clamped := engine.ClampInt(level, card.MinLimitBreak, card.MaxLimitBreak)

	if o.cardCache != nil {
		if _, known := o.tables.Cards[canonical]; known {
			hit, err := o.cardCache.Get(ctx, resolvedcard.GetInput{CardName: canonical, Level: clamped})
			switch {
			case err == nil:
				result := limitbreak.Result{
					Card:           hit.Card,
					RequestedName:  name,
					CanonicalName:  canonical,
					RequestedLevel: level,
					Level:          clamped,
					Reason:         reasonFor(hit.Card),
				}
				logResolution(ctx, result)

				return &ResolveCardOutput{
					Card:          result.Card,
					CanonicalName: result.CanonicalName,
					Level:         result.Level,
					Reason:        result.Reason,
					Cached:        true,
				}
			case !errors.IsNotFound(err):
				slog.WarnContext(ctx, "card cache read failed",
					"card_name", canonical,
					"level", clamped,
					"error", err.Error())
			}
		}
	}

	result := o.resolver.Resolve(name, level)
	logResolution(ctx, result)

	out := &ResolveCardOutput{
		Card:          result.Card,
		CanonicalName: result.CanonicalName,
		Level:         result.Level,
		Reason:        result.Reason,
	}

	if result.Card != nil && o.cardCache != nil {
		if _, err := o.cardCache.Put(ctx, resolvedcard.PutInput{
			CardName: result.CanonicalName,
			Card:     result.Card,
		}); err != nil {
			slog.WarnContext(ctx, "card cache write failed",
				"card_name", result.CanonicalName,
				"level", result.Level,
				"error", err.Error())
		}
	}

	return out
}

// reasonFor recovers the resolution branch from a cached card
func reasonFor(c *card.Resolved) limitbreak.Reason {
	switch {
	case !c.IsMaxLimitBreak:
		return limitbreak.ReasonScaled
	case c.LimitBreakLevel == card.MaxLimitBreak:
		return limitbreak.ReasonMaxLevel
	default:
		return limitbreak.ReasonNoProgression
	}
}

func logResolution(ctx context.Context, result limitbreak.Result) {
	if result.Renamed() {
		slog.DebugContext(ctx, "legacy card name translated",
			"requested_name", result.RequestedName,
			"canonical_name", result.CanonicalName)
	}
	if result.Clamped() {
		slog.InfoContext(ctx, "limit break level clamped",
			"card_name", result.CanonicalName,
			"requested_level", result.RequestedLevel,
			"level", result.Level)
	}

	switch result.Reason {
	case limitbreak.ReasonUnknownCard:
		slog.WarnContext(ctx, "unknown card requested",
			"requested_name", result.RequestedName,
			"canonical_name", result.CanonicalName)
	case limitbreak.ReasonNoProgression:
		slog.DebugContext(ctx, "card has no progression table, using base values",
			"card_name", result.CanonicalName,
			"level", result.Level)
	case limitbreak.ReasonMaxLevel:
		slog.DebugContext(ctx, "card at max limit break, using base values",
			"card_name", result.CanonicalName)
	}
}

func (o *orchestrator) AddOwnedCard(ctx context.Context, input *AddOwnedCardInput) (*AddOwnedCardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateRequired("card_name", input.CardName, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	resolved := o.resolve(ctx, input.CardName, input.Level)
	if resolved.Card == nil {
		return nil, errors.NotFoundf("card %s not found", input.CardName)
	}

	createOutput, err := o.rosterRepo.Create(ctx, roster.CreateInput{
		OwnedCard: &card.OwnedCard{
			ID:              o.idGen.Generate(),
			PlayerID:        input.PlayerID,
			CardName:        resolved.CanonicalName,
			LimitBreakLevel: resolved.Level,
			AcquiredAt:      o.clock.Now(),
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add owned card")
	}

	slog.InfoContext(ctx, "card added to roster",
		"player_id", input.PlayerID,
		"owned_card_id", createOutput.OwnedCard.ID,
		"card_name", resolved.CanonicalName,
		"level", resolved.Level)

	return &AddOwnedCardOutput{
		Entry: &RosterEntry{OwnedCard: createOutput.OwnedCard, Card: resolved.Card},
	}, nil
}

func (o *orchestrator) SetLimitBreak(ctx context.Context, input *SetLimitBreakInput) (*SetLimitBreakOutput, error) {
	if input == nil || input.OwnedCardID == "" {
		return nil, errors.InvalidArgument("owned card ID is required")
	}

	level := engine.ClampInt(input.Level, card.MinLimitBreak, card.MaxLimitBreak)
	if level != input.Level {
		slog.InfoContext(ctx, "limit break level clamped",
			"owned_card_id", input.OwnedCardID,
			"requested_level", input.Level,
			"level", level)
	}

	updateOutput, err := o.rosterRepo.UpdateLevel(ctx, roster.UpdateLevelInput{
		ID:    input.OwnedCardID,
		Level: level,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to set limit break")
	}

	owned := updateOutput.OwnedCard
	return &SetLimitBreakOutput{
		Entry: &RosterEntry{
			OwnedCard: owned,
			Card:      o.resolve(ctx, owned.CardName, owned.LimitBreakLevel).Card,
		},
	}, nil
}

func (o *orchestrator) GetRoster(ctx context.Context, input *GetRosterInput) (*GetRosterOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	listOutput, err := o.rosterRepo.ListByPlayerID(ctx, roster.ListByPlayerIDInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list roster")
	}

	entries := make([]*RosterEntry, 0, len(listOutput.OwnedCards))
	for _, owned := range listOutput.OwnedCards {
		entries = append(entries, &RosterEntry{
			OwnedCard: owned,
			Card:      o.resolve(ctx, owned.CardName, owned.LimitBreakLevel).Card,
		})
	}

	return &GetRosterOutput{Entries: entries}, nil
}

func (o *orchestrator) RemoveOwnedCard(
	ctx context.Context,
	input *RemoveOwnedCardInput,
) (*RemoveOwnedCardOutput, error) {
	if input == nil || input.OwnedCardID == "" {
		return nil, errors.InvalidArgument("owned card ID is required")
	}

	if _, err := o.rosterRepo.Delete(ctx, roster.DeleteInput{ID: input.OwnedCardID}); err != nil {
		return nil, errors.Wrap(err, "failed to remove owned card")
	}

	slog.InfoContext(ctx, "card removed from roster", "owned_card_id", input.OwnedCardID)
	return &RemoveOwnedCardOutput{}, nil
}
