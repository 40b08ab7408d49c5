package leaderboard

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/trebek/internal/services/leaderboard Service

import "context"

// Service reports channel standings built from the free-play ledger
type Service interface {
	// GetLeaderboard returns the channel's top winners, plus the
	// requester's own line when they fall outside the cut
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)
}
