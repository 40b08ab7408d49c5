package ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/trebek/internal/repositories/ledger Repository

import (
	"context"
)

// Repository defines the interface for the answer ledger. The ledger is
// append-only history of correctly answered free-play rounds.
type Repository interface {
	// AddEntry appends an entry to the ledger
	AddEntry(ctx context.Context, input *AddEntryInput) error

	// GetEntries retrieves a channel's entries, optionally restricted to
	// those at or after a cutoff time
	GetEntries(ctx context.Context, input *GetEntriesInput) (*GetEntriesOutput, error)
}
