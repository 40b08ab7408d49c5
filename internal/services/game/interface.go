package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/trebek/internal/services/game Service
//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/KirkDiggler/trebek/internal/services/game Notifier

import (
	"context"

	"github.com/KirkDiggler/trebek/internal/models"
)

// Service manages multiplayer board games: a lobby per channel, a board of
// thirty clues, and turn control that follows correct answers.
type Service interface {
	// NewGame creates a lobby with a freshly built board
	NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error)

	// Join adds a player to the lobby. Joining twice is a no-op.
	Join(ctx context.Context, input *JoinInput) (*JoinOutput, error)

	// Start moves the lobby into play and hands control to a random player
	Start(ctx context.Context, input *StartInput) (*StartOutput, error)

	// SelectClue opens a board cell for answers. Only the controlling
	// player may select.
	SelectClue(ctx context.Context, input *SelectClueInput) (*SelectClueOutput, error)

	// AnswerClue evaluates a submission against the live clue
	AnswerClue(ctx context.Context, input *AnswerClueInput) (*AnswerClueOutput, error)

	// EndGame ends the channel's game. Only the host may end it, unless
	// forced.
	EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error)
}

// Notifier delivers engine-initiated messages to a channel. Timer callbacks
// speak through it since no command is in flight when they fire.
type Notifier interface {
	Announce(channel string, message string)

	// AnnounceBoard renders and sends the remaining board
	AnnounceBoard(channel string, game *models.Game)
}
