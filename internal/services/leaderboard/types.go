package leaderboard

import (
	"time"

	"github.com/KirkDiggler/trebek/internal/common/clock"
	"github.com/KirkDiggler/trebek/internal/models"
	ledgerRepo "github.com/KirkDiggler/trebek/internal/repositories/ledger"
)

// ServiceConfig contains configuration for the leaderboard service
type ServiceConfig struct {
	LedgerRepo ledgerRepo.Repository

	// Window bounds recent standings. Defaults to seven days.
	Window time.Duration

	Clock clock.Clock
}

// GetLeaderboardInput contains parameters for a standings request
type GetLeaderboardInput struct {
	// Channel is the chat channel to report on
	Channel string

	// Nick is the requesting player, whose line is appended when it falls
	// outside the cut. Optional.
	Nick string

	// AllTime covers all history instead of the recent window
	AllTime bool
}

// GetLeaderboardOutput contains the standings
type GetLeaderboardOutput struct {
	Board *models.Leaderboard

	// Message is the rendered standings block
	Message string
}
