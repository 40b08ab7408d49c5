package messaging

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/trebek/internal/rng"
)

var correctAnswerMessages = []string{
	"look at the big brains on %s",
	"%s, you are correct.",
	"%s takes it.",
	"well played, %s.",
}

var controlTakenMessages = []string{
	"%s takes control of the board.",
	"the board is yours, %s.",
	"%s wrestles away control of the board.",
}

var controlMaintainedMessages = []string{
	"%s keeps control of the board.",
	"still your board, %s.",
	"%s holds the board.",
}

// service implements the Service interface
type service struct {
	rand rng.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	var random rng.Rand
	if config != nil && config.Rand != nil {
		random = config.Rand
	} else {
		random = rng.New(nil)
	}

	return &service{
		rand: random,
	}, nil
}

// GetCorrectAnswerMessage returns a congratulatory line for a correct
// free-play answer
func (s *service) GetCorrectAnswerMessage(ctx context.Context, input *GetCorrectAnswerMessageInput) (*GetCorrectAnswerMessageOutput, error) {
	template := correctAnswerMessages[s.rand.Intn(len(correctAnswerMessages))]

	return &GetCorrectAnswerMessageOutput{
		Message: fmt.Sprintf(template, input.Nick),
	}, nil
}

// GetControlMessage returns a line for board control passing to or staying
// with a scorer
func (s *service) GetControlMessage(ctx context.Context, input *GetControlMessageInput) (*GetControlMessageOutput, error) {
	pool := controlTakenMessages
	if input.Maintained {
		pool = controlMaintainedMessages
	}

	template := pool[s.rand.Intn(len(pool))]

	return &GetControlMessageOutput{
		Message: fmt.Sprintf(template, input.Nick),
	}, nil
}

// GetPartialMessage returns a prompt for a partially correct answer
func (s *service) GetPartialMessage(ctx context.Context, input *GetPartialMessageInput) (*GetPartialMessageOutput, error) {
	return &GetPartialMessageOutput{
		Message: fmt.Sprintf("%s, can you be more specific?", input.Nick),
	}, nil
}

// GetRevealMessage returns the timeout reveal line
func (s *service) GetRevealMessage(ctx context.Context, input *GetRevealMessageInput) (*GetRevealMessageOutput, error) {
	return &GetRevealMessageOutput{
		Message: fmt.Sprintf("the correct answer is: %s", input.Answer),
	}, nil
}

// GetChampionMessage returns the end-of-game standings line
func (s *service) GetChampionMessage(ctx context.Context, input *GetChampionMessageInput) (*GetChampionMessageOutput, error) {
	if input.NoContest || len(input.Nicks) == 0 {
		return &GetChampionMessageOutput{
			Message: "the game has been ended by the host.",
		}, nil
	}

	if len(input.Nicks) == 1 {
		return &GetChampionMessageOutput{
			Message: fmt.Sprintf("%s is the champion with %s!", input.Nicks[0], FormatMoney(input.Score)),
		}, nil
	}

	return &GetChampionMessageOutput{
		Message: fmt.Sprintf("we have a tie! %s share the crown with %s each.",
			strings.Join(input.Nicks, ", "), FormatMoney(input.Score)),
	}, nil
}

// GetNewGameMessage returns the lobby announcement. The leading
// "New game created." acknowledgement is load-bearing; keep it verbatim.
func (s *service) GetNewGameMessage(ctx context.Context, input *GetNewGameMessageInput) (*GetNewGameMessageOutput, error) {
	return &GetNewGameMessageOutput{
		Message: fmt.Sprintf("New game created. %s is hosting. Type \"game join\" to get in, then \"game start\" to play.", input.HostNick),
	}, nil
}

// FormatMoney renders a score as dollars with thousands separators.
// Negative scores keep their sign, e.g. -$1,200.
func FormatMoney(value int) string {
	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}

	digits := strconv.Itoa(value)

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	return sign + "$" + b.String()
}
