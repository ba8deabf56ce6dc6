package roster

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/trainer-api/internal/entities/card"
	"github.com/KirkDiggler/trainer-api/internal/errors"
	"github.com/KirkDiggler/trainer-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/trainer-api/internal/redis"
)

const (
	ownedCardKeyPrefix = "owned_card:"
	playerIndexPrefix  = "owned_card:player:"

	errOwnedCardNil  = "owned card cannot be nil"
	errIDEmpty       = "owned card ID cannot be empty"
	errPlayerIDEmpty = "player ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis roster repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a Redis-backed roster repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func validateOwnedCard(o *card.OwnedCard) error {
	if o == nil {
		return errors.InvalidArgument(errOwnedCardNil)
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", o.ID, vb)
	errors.ValidateRequired("player_id", o.PlayerID, vb)
	errors.ValidateRequired("card_name", o.CardName, vb)
	errors.ValidateRange("limit_break_level", o.LimitBreakLevel, card.MinLimitBreak, card.MaxLimitBreak, vb)
	return vb.Build()
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateOwnedCard(input.OwnedCard); err != nil {
		return nil, err
	}

	owned := *input.OwnedCard
	key := ownedCardKeyPrefix + owned.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("owned card with ID %s already exists", owned.ID)
	}

	now := r.clock.Now()
	if owned.AcquiredAt.IsZero() {
		owned.AcquiredAt = now
	}
	owned.UpdatedAt = now

	data, err := json.Marshal(&owned)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal owned card")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, playerIndexPrefix+owned.PlayerID, owned.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create owned card")
	}

	return &CreateOutput{OwnedCard: &owned}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	result, err := r.client.Get(ctx, ownedCardKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("owned card with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get owned card")
	}

	var owned card.OwnedCard
	if err := json.Unmarshal([]byte(result), &owned); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal owned card")
	}

	return &GetOutput{OwnedCard: &owned}, nil
}

func (r *redisRepository) UpdateLevel(ctx context.Context, input UpdateLevelInput) (*UpdateLevelOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}
	if input.Level < card.MinLimitBreak || input.Level > card.MaxLimitBreak {
		return nil, errors.InvalidArgumentf("level %d outside [%d, %d]", input.Level, card.MinLimitBreak, card.MaxLimitBreak)
	}

	getOutput, err := r.Get(ctx, GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	owned := getOutput.OwnedCard
	owned.LimitBreakLevel = input.Level
	owned.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(owned)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal owned card")
	}

	// Only overwrite a key that still exists
	ok, err := r.client.SetXX(ctx, ownedCardKeyPrefix+owned.ID, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update owned card")
	}
	if !ok {
		return nil, errors.NotFoundf("owned card with ID %s not found", input.ID)
	}

	return &UpdateLevelOutput{OwnedCard: owned}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, ownedCardKeyPrefix+input.ID)
	pipe.SRem(ctx, playerIndexPrefix+getOutput.OwnedCard.PlayerID, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete owned card")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByPlayerID(
	ctx context.Context,
	input ListByPlayerIDInput,
) (*ListByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	indexKey := playerIndexPrefix + input.PlayerID
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		slog.ErrorContext(ctx, "failed to read roster index",
			"player_id", input.PlayerID,
			"error", err.Error())
		return nil, errors.Wrapf(err, "failed to list roster for player %s", input.PlayerID)
	}

	owned := make([]*card.OwnedCard, 0, len(ids))
	for _, id := range ids {
		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "owned card missing, cleaning up index",
					"owned_card_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get owned card %s", id)
		}
		owned = append(owned, getOutput.OwnedCard)
	}

	sort.Slice(owned, func(i, j int) bool {
		if owned[i].AcquiredAt.Equal(owned[j].AcquiredAt) {
			return owned[i].ID < owned[j].ID
		}
		return owned[i].AcquiredAt.Before(owned[j].AcquiredAt)
	})

	slog.DebugContext(ctx, "listed roster",
		"player_id", input.PlayerID,
		"count", len(owned))

	return &ListByPlayerIDOutput{OwnedCards: owned}, nil
}
