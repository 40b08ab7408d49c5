package round

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/trebek/internal/services/round Service
//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/KirkDiggler/trebek/internal/services/round Notifier

import "context"

// Service manages free-play rounds: one live question per channel, answered
// by the fastest correct guess or revealed by the timeout.
type Service interface {
	// Ask starts a round, or re-shows the live question if the channel
	// already has one
	Ask(ctx context.Context, input *AskInput) (*AskOutput, error)

	// Guess evaluates a submission against the channel's live round
	Guess(ctx context.Context, input *GuessInput) (*GuessOutput, error)

	// Reset force-clears any live round for the channel
	Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error)
}

// Notifier delivers engine-initiated messages to a channel. Timer callbacks
// speak through it since no command is in flight when they fire.
type Notifier interface {
	Announce(channel string, message string)
}
