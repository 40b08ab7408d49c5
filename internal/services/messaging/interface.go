package messaging

import "context"

// Service composes the engine's outgoing chat lines. Wording comes from
// themed pools picked at random; anything with protocol meaning (the
// "New game created." acknowledgement, the reveal prefix) is fixed.
type Service interface {
	// GetCorrectAnswerMessage returns a congratulatory line for a correct
	// free-play answer
	GetCorrectAnswerMessage(ctx context.Context, input *GetCorrectAnswerMessageInput) (*GetCorrectAnswerMessageOutput, error)

	// GetControlMessage returns a line for board control passing to or
	// staying with a scorer
	GetControlMessage(ctx context.Context, input *GetControlMessageInput) (*GetControlMessageOutput, error)

	// GetPartialMessage returns a prompt for a partially correct answer
	GetPartialMessage(ctx context.Context, input *GetPartialMessageInput) (*GetPartialMessageOutput, error)

	// GetRevealMessage returns the timeout reveal line
	GetRevealMessage(ctx context.Context, input *GetRevealMessageInput) (*GetRevealMessageOutput, error)

	// GetChampionMessage returns the end-of-game standings line
	GetChampionMessage(ctx context.Context, input *GetChampionMessageInput) (*GetChampionMessageOutput, error)

	// GetNewGameMessage returns the lobby announcement
	GetNewGameMessage(ctx context.Context, input *GetNewGameMessageInput) (*GetNewGameMessageOutput, error)
}
