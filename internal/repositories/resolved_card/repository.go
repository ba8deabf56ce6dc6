// Package resolvedcard caches cards already scaled to a limit break level
package resolvedcard

//go:generate mockgen -destination=mock/mock_repository.go -package=resolvedcardmock github.com/KirkDiggler/trainer-api/internal/repositories/resolved_card Repository

import (
	"context"

	"github.com/KirkDiggler/trainer-api/internal/entities/card"
)

// Repository stores resolved cards keyed by canonical name and level
type Repository interface {
	// Get returns the cached card
	// Returns errors.InvalidArgument for an empty name or a level outside [0, 4]
	// Returns errors.NotFound on a cache miss
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put stores a resolved card under its name and LimitBreakLevel
	// Returns errors.InvalidArgument for a nil card or empty name
	// Returns errors.Internal for storage failures
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Invalidate drops every cached level of a card under every data version
	// Returns errors.InvalidArgument for an empty name
	// Returns errors.Internal for storage failures
	Invalidate(ctx context.Context, input InvalidateInput) (*InvalidateOutput, error)
}

// GetInput identifies a cached card
type GetInput struct {
	CardName string
	Level    int
}

// GetOutput holds the cached card
type GetOutput struct {
	Card *card.Resolved
}

// PutInput holds the card to cache. CardName is the canonical name the
// caller resolved; the level comes from Card.LimitBreakLevel.
type PutInput struct {
	CardName string
	Card     *card.Resolved
}

// PutOutput is empty
type PutOutput struct{}

// InvalidateInput names the card to drop
type InvalidateInput struct {
	CardName string
}

// InvalidateOutput reports how many levels were cached
type InvalidateOutput struct {
	Removed int64
}
