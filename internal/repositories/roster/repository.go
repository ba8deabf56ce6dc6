// Package roster persists the cards each player owns
package roster

//go:generate mockgen -destination=mock/mock_repository.go -package=rostermock github.com/KirkDiggler/trainer-api/internal/repositories/roster Repository

import (
	"context"

	"github.com/KirkDiggler/trainer-api/internal/entities/card"
)

// Repository defines owned card persistence
type Repository interface {
	// Create stores a new owned card and indexes it under its player
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if the ID is taken
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves an owned card by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the card doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// UpdateLevel sets an owned card's limit break level
	// Returns errors.InvalidArgument for an empty ID or a level outside [0, 4]
	// Returns errors.NotFound if the card doesn't exist
	// Returns errors.Internal for storage failures
	UpdateLevel(ctx context.Context, input UpdateLevelInput) (*UpdateLevelOutput, error)

	// Delete removes an owned card and its index entry
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the card doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByPlayerID returns every card a player owns, oldest first
	// Returns errors.InvalidArgument for an empty player ID
	// Returns errors.Internal for storage failures
	ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error)
}

// CreateInput defines the input for creating an owned card
type CreateInput struct {
	OwnedCard *card.OwnedCard
}

// CreateOutput defines the output for creating an owned card
type CreateOutput struct {
	OwnedCard *card.OwnedCard
}

// GetInput defines the input for getting an owned card
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an owned card
type GetOutput struct {
	OwnedCard *card.OwnedCard
}

// UpdateLevelInput defines the input for changing a limit break level
type UpdateLevelInput struct {
	ID    string
	Level int
}

// UpdateLevelOutput holds the card after the update
type UpdateLevelOutput struct {
	OwnedCard *card.OwnedCard
}

// DeleteInput defines the input for deleting an owned card
type DeleteInput struct {
	ID string
}

// DeleteOutput is empty
type DeleteOutput struct{}

// ListByPlayerIDInput defines the input for listing a player's cards
type ListByPlayerIDInput struct {
	PlayerID string
}

// ListByPlayerIDOutput defines the output for listing a player's cards
type ListByPlayerIDOutput struct {
	OwnedCards []*card.OwnedCard
}
