package game

import (
	"time"

	"github.com/KirkDiggler/trebek/internal/answers"
	"github.com/KirkDiggler/trebek/internal/common/clock"
	"github.com/KirkDiggler/trebek/internal/common/uuid"
	"github.com/KirkDiggler/trebek/internal/models"
	gameRepo "github.com/KirkDiggler/trebek/internal/repositories/game"
	"github.com/KirkDiggler/trebek/internal/rng"
	"github.com/KirkDiggler/trebek/internal/services/messaging"
	"github.com/KirkDiggler/trebek/internal/timer"
	"github.com/KirkDiggler/trebek/internal/trivia"
)

// ServiceConfig contains configuration for the game service
type ServiceConfig struct {
	GameRepo gameRepo.Repository

	// TriviaClient supplies the board content
	TriviaClient trivia.Client

	// Matcher decides whether an answer is correct
	Matcher *answers.Matcher

	// Messaging composes outgoing lines
	Messaging messaging.Service

	// Notifier delivers timer-driven announcements
	Notifier Notifier

	// Scheduler arms the clue and game timers
	Scheduler timer.Scheduler

	// Rand picks the opening controller
	Rand rng.Rand

	// ClueDelay is how long a selected clue stays open before the answer
	// is revealed
	ClueDelay time.Duration

	// GameTimeout force-ends a game that runs too long
	GameTimeout time.Duration

	// CategoryRetryDelay is the pause before refetching a board whose
	// content came back malformed
	CategoryRetryDelay time.Duration

	Clock clock.Clock
	UUID  uuid.UUID
}

// NewGameInput contains parameters for creating a game
type NewGameInput struct {
	// Channel is the chat channel hosting the game
	Channel string

	// HostNick is the player creating the game
	HostNick string
}

// NewGameOutput contains the result of creating a game
type NewGameOutput struct {
	Game *models.Game

	// Message is the lobby announcement
	Message string
}

// JoinInput contains parameters for joining a lobby
type JoinInput struct {
	Channel string
	Nick    string
}

// JoinOutput contains the result of joining
type JoinOutput struct {
	Game *models.Game

	// Joined is false when the player was already in the lobby
	Joined bool

	// Message is the roster announcement
	Message string
}

// StartInput contains parameters for starting a game
type StartInput struct {
	Channel string
	Nick    string
}

// StartOutput contains the result of starting
type StartOutput struct {
	Game *models.Game

	// Message names the player given opening control
	Message string
}

// SelectClueInput contains parameters for opening a board cell
type SelectClueInput struct {
	Channel string
	Nick    string

	// CategoryKey is the selection key, "cat1".."cat6"
	CategoryKey string

	// Value is the dollar value of the requested cell
	Value int
}

// SelectClueOutput contains the result of opening a cell
type SelectClueOutput struct {
	Game *models.Game

	// Clue is the now-live clue
	Clue *models.ActiveClue

	// Message is the question line to show the channel
	Message string
}

// AnswerOutcome classifies what an answer attempt did
type AnswerOutcome string

const (
	// AnswerOutcomeCorrect means the answer scored and took control
	AnswerOutcomeCorrect AnswerOutcome = "correct"

	// AnswerOutcomeIncorrect means the answer cost its value and the clue
	// stays open
	AnswerOutcomeIncorrect AnswerOutcome = "incorrect"

	// AnswerOutcomePartial means the answer hit some required tokens but
	// not enough
	AnswerOutcomePartial AnswerOutcome = "partial"

	// AnswerOutcomeIgnored means the clue was already resolved by a racing
	// answer or timeout
	AnswerOutcomeIgnored AnswerOutcome = "ignored"
)

// AnswerClueInput contains parameters for answering the live clue
type AnswerClueInput struct {
	Channel string
	Nick    string

	// Tokens is the whitespace-split answer text
	Tokens []string
}

// AnswerClueOutput contains the result of an answer attempt
type AnswerClueOutput struct {
	Outcome AnswerOutcome

	// Message is the line to show the channel. Empty for ignored attempts.
	Message string

	// Game is the game after the attempt
	Game *models.Game

	// Ended indicates the attempt exhausted the board and ended the game
	Ended bool
}

// EndGameInput contains parameters for ending a game
type EndGameInput struct {
	Channel string

	// Nick is the player asking to end the game. Ignored when Force is
	// set.
	Nick string

	// Force bypasses the host check, for administrative resets
	Force bool
}

// EndGameOutput contains the result of ending a game
type EndGameOutput struct {
	Game *models.Game

	// Message is the champion or neutral closing line
	Message string
}
