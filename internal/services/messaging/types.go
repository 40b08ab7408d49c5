package messaging

import (
	"github.com/KirkDiggler/trebek/internal/rng"
)

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Rand is the source used to pick templates. A seeded default is used
	// when nil.
	Rand rng.Rand
}

// GetCorrectAnswerMessageInput contains parameters for a correct-answer line
type GetCorrectAnswerMessageInput struct {
	// Nick is the player who answered correctly
	Nick string
}

// GetCorrectAnswerMessageOutput contains the generated line
type GetCorrectAnswerMessageOutput struct {
	Message string
}

// GetControlMessageInput contains parameters for a board-control line
type GetControlMessageInput struct {
	// Nick is the scorer taking or keeping control
	Nick string

	// Maintained indicates the scorer already held control
	Maintained bool
}

// GetControlMessageOutput contains the generated line
type GetControlMessageOutput struct {
	Message string
}

// GetPartialMessageInput contains parameters for a be-more-specific prompt
type GetPartialMessageInput struct {
	// Nick is the player who gave a partial answer
	Nick string
}

// GetPartialMessageOutput contains the generated line
type GetPartialMessageOutput struct {
	Message string
}

// GetRevealMessageInput contains parameters for the timeout reveal line
type GetRevealMessageInput struct {
	// Answer is the canonical answer being revealed
	Answer string
}

// GetRevealMessageOutput contains the generated line
type GetRevealMessageOutput struct {
	Message string
}

// GetChampionMessageInput contains parameters for the end-of-game line
type GetChampionMessageInput struct {
	// Nicks holds every player with the maximal score
	Nicks []string

	// Score is the winning score
	Score int

	// NoContest indicates the game ended with nothing to score
	NoContest bool
}

// GetChampionMessageOutput contains the generated line
type GetChampionMessageOutput struct {
	Message string
}

// GetNewGameMessageInput contains parameters for the lobby announcement
type GetNewGameMessageInput struct {
	// HostNick is the player who created the game
	HostNick string
}

// GetNewGameMessageOutput contains the generated lines
type GetNewGameMessageOutput struct {
	Message string
}
