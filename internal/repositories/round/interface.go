package round

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/trebek/internal/repositories/round Repository

import (
	"context"

	"github.com/KirkDiggler/trebek/internal/models"
)

// Repository defines the interface for round persistence.
//
// ResolveRound is the concurrency-safety primitive: it flips a round's
// Active flag with compare-and-set semantics, so of two racing resolutions
// exactly one wins and the other is a logical no-op.
type Repository interface {
	// CreateRound persists a new active round. Fails if the channel
	// already has one.
	CreateRound(ctx context.Context, input *CreateRoundInput) error

	// GetRound retrieves a round by ID
	GetRound(ctx context.Context, input *GetRoundInput) (*models.Round, error)

	// GetActiveRound retrieves the channel's active round
	GetActiveRound(ctx context.Context, input *GetActiveRoundInput) (*models.Round, error)

	// ResolveRound conditionally deactivates a round that is still active
	ResolveRound(ctx context.Context, input *ResolveRoundInput) (*ResolveRoundOutput, error)

	// DeactivateAll force-resolves any active round for a channel
	DeactivateAll(ctx context.Context, input *DeactivateAllInput) error
}
