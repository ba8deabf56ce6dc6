package resolvedcard

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/KirkDiggler/trainer-api/internal/entities/card"
	"github.com/KirkDiggler/trainer-api/internal/errors"
	redisclient "github.com/KirkDiggler/trainer-api/internal/redis"
)

const (
	keyPrefix = "resolved_card:"

	// DefaultTTL applies when RedisConfig.TTL is zero
	DefaultTTL = 15 * time.Minute

	scanBatch = 100

	errNameEmpty = "card name cannot be empty"
)

type redisRepository struct {
	client      redisclient.Client
	ttl         time.Duration
	dataVersion string
}

// RedisConfig configures the Redis cache
type RedisConfig struct {
	Client redisclient.Client
	TTL    time.Duration
	// DataVersion fingerprints the tables the cached cards were resolved
	// from. Entries written under another version are never read.
	DataVersion string
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	if cfg.TTL < 0 {
		vb.Field("TTL", "must not be negative")
	}
	errors.ValidateRequired("DataVersion", cfg.DataVersion, vb)
	return vb.Build()
}

// NewRedis creates a Redis-backed resolved card cache
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client:      cfg.Client,
		ttl:         ttl,
		dataVersion: cfg.DataVersion,
	}, nil
}

func (r *redisRepository) cacheKey(name string, level int) string {
	return fmt.Sprintf("%s%s:%s:%d", keyPrefix, r.dataVersion, name, level)
}

// allVersionsPattern matches a card's entries under every data version
func allVersionsPattern(name string) string {
	return fmt.Sprintf("%s*:%s:[0-9]", keyPrefix, globEscaper.Replace(name))
}

var globEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)

func validateLevel(level int) error {
	if level < card.MinLimitBreak || level > card.MaxLimitBreak {
		return errors.InvalidArgumentf("level %d outside [%d, %d]", level, card.MinLimitBreak, card.MaxLimitBreak)
	}
	return nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.CardName == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}
	if err := validateLevel(input.Level); err != nil {
		return nil, err
	}

	key := r.cacheKey(input.CardName, input.Level)
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("no cached card %s at level %d", input.CardName, input.Level)
		}
		return nil, errors.Wrapf(err, "failed to get cached card")
	}

	var resolved card.Resolved
	if err := json.Unmarshal([]byte(result), &resolved); err != nil {
		// A corrupt entry is dropped so the next call repopulates it
		slog.WarnContext(ctx, "dropping undecodable cache entry",
			"key", key,
			"error", err.Error())
		r.client.Del(ctx, key)
		return nil, errors.NotFoundf("no cached card %s at level %d", input.CardName, input.Level)
	}

	return &GetOutput{Card: &resolved}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.Card == nil {
		return nil, errors.InvalidArgument("card cannot be nil")
	}
	if input.CardName == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}
	if err := validateLevel(input.Card.LimitBreakLevel); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Card)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal resolved card")
	}

	key := r.cacheKey(input.CardName, input.Card.LimitBreakLevel)
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to cache card")
	}

	return &PutOutput{}, nil
}

func (r *redisRepository) Invalidate(ctx context.Context, input InvalidateInput) (*InvalidateOutput, error) {
	if input.CardName == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	var keys []string
	iter := r.client.Scan(ctx, 0, allVersionsPattern(input.CardName), scanBatch).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to scan cached card %s", input.CardName)
	}
	if len(keys) == 0 {
		return &InvalidateOutput{}, nil
	}

	removed, err := r.client.Del(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to invalidate card %s", input.CardName)
	}

	slog.DebugContext(ctx, "invalidated cached card",
		"card_name", input.CardName,
		"removed", removed)

	return &InvalidateOutput{Removed: removed}, nil
}
