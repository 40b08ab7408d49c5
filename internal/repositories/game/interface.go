package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/trebek/internal/repositories/game Repository

import (
	"context"

	"github.com/KirkDiggler/trebek/internal/models"
)

// Repository defines the interface for board game persistence.
//
// UpdateGame is the conditional-update primitive every in-game transition
// runs through: it re-reads the record, applies the mutation, and writes it
// back atomically, so racing commands serialize on the record rather than
// on in-process locks.
type Repository interface {
	// CreateGame persists a new game. Fails if the channel already has a
	// non-ended game.
	CreateGame(ctx context.Context, input *CreateGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// GetCurrentGame retrieves the channel's non-ended game
	GetCurrentGame(ctx context.Context, input *GetCurrentGameInput) (*models.Game, error)

	// UpdateGame applies a mutation to a game under compare-and-set
	// semantics. The mutation may abort by returning an error, in which
	// case nothing is written.
	UpdateGame(ctx context.Context, input *UpdateGameInput) (*models.Game, error)
}
