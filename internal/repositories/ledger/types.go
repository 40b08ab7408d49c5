package ledger

import (
	"time"

	"github.com/KirkDiggler/trebek/internal/models"
)

type AddEntryInput struct {
	Entry *models.LedgerEntry
}

type GetEntriesInput struct {
	Channel string

	// Since restricts results to entries at or after this time. Nil means
	// all history.
	Since *time.Time
}

type GetEntriesOutput struct {
	Entries []*models.LedgerEntry
}
