package round

import (
	"time"

	"github.com/KirkDiggler/trebek/internal/answers"
	"github.com/KirkDiggler/trebek/internal/common/clock"
	"github.com/KirkDiggler/trebek/internal/common/uuid"
	"github.com/KirkDiggler/trebek/internal/models"
	ledgerRepo "github.com/KirkDiggler/trebek/internal/repositories/ledger"
	roundRepo "github.com/KirkDiggler/trebek/internal/repositories/round"
	"github.com/KirkDiggler/trebek/internal/services/messaging"
	"github.com/KirkDiggler/trebek/internal/timer"
	"github.com/KirkDiggler/trebek/internal/trivia"
)

// ServiceConfig contains configuration for the round service
type ServiceConfig struct {
	RoundRepo  roundRepo.Repository
	LedgerRepo ledgerRepo.Repository

	// TriviaClient supplies the questions
	TriviaClient trivia.Client

	// Matcher decides whether a guess answers the question
	Matcher *answers.Matcher

	// Messaging composes outgoing lines
	Messaging messaging.Service

	// Notifier delivers the timeout reveal
	Notifier Notifier

	// Scheduler arms the reveal timer
	Scheduler timer.Scheduler

	// AnswerDelay is how long a round stays open before the answer is
	// revealed
	AnswerDelay time.Duration

	Clock clock.Clock
	UUID  uuid.UUID
}

// AskInput contains parameters for starting a round
type AskInput struct {
	// Channel is the chat channel asking for a question
	Channel string
}

// AskOutput contains the result of starting a round
type AskOutput struct {
	// Round is the live round, newly created or pre-existing
	Round *models.Round

	// AlreadyActive indicates the channel already had a live round and
	// Round is that one, re-shown
	AlreadyActive bool

	// Message is the question line to show the channel
	Message string
}

// GuessOutcome classifies what a guess did
type GuessOutcome string

const (
	// GuessOutcomeCorrect means the guess won the round
	GuessOutcomeCorrect GuessOutcome = "correct"

	// GuessOutcomePartial means the guess hit some required tokens but not
	// enough to win
	GuessOutcomePartial GuessOutcome = "partial"

	// GuessOutcomeIgnored means the guess was wrong, or lost the race to a
	// concurrent resolution
	GuessOutcomeIgnored GuessOutcome = "ignored"
)

// GuessInput contains parameters for evaluating a guess
type GuessInput struct {
	// Channel is the chat channel the guess came from
	Channel string

	// Nick is the guessing player
	Nick string

	// Tokens is the whitespace-split guess text
	Tokens []string
}

// GuessOutput contains the result of evaluating a guess
type GuessOutput struct {
	Outcome GuessOutcome

	// Message is the line to show the channel. Empty for ignored guesses.
	Message string

	// Round is the round the guess was evaluated against
	Round *models.Round
}

// ResetInput contains parameters for clearing a channel's round state
type ResetInput struct {
	Channel string
}

// ResetOutput contains the result of a reset
type ResetOutput struct{}
