package round

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/KirkDiggler/trebek/internal/answers"
	"github.com/KirkDiggler/trebek/internal/common/clock"
	"github.com/KirkDiggler/trebek/internal/common/logging"
	"github.com/KirkDiggler/trebek/internal/common/uuid"
	"github.com/KirkDiggler/trebek/internal/models"
	ledgerRepo "github.com/KirkDiggler/trebek/internal/repositories/ledger"
	roundRepo "github.com/KirkDiggler/trebek/internal/repositories/round"
	"github.com/KirkDiggler/trebek/internal/services/messaging"
	"github.com/KirkDiggler/trebek/internal/timer"
	"github.com/KirkDiggler/trebek/internal/trivia"
)

// defaultValue is used for provider clues that come back without one
const defaultValue = 200

// maxFetchAttempts bounds how many provider clues Ask will reject before
// giving up
const maxFetchAttempts = 5

// urlPattern matches link junk some provider questions carry
var urlPattern = regexp.MustCompile(`https?://\S+`)

// ErrNoUsableClue is returned when the provider keeps serving clues with
// missing text
var ErrNoUsableClue = errors.New("provider returned no usable clue")

// service implements the Service interface
type service struct {
	roundRepo    roundRepo.Repository
	ledgerRepo   ledgerRepo.Repository
	triviaClient trivia.Client
	matcher      *answers.Matcher
	messaging    messaging.Service
	notifier     Notifier
	scheduler    timer.Scheduler
	answerDelay  time.Duration
	clock        clock.Clock
	uuider       uuid.UUID
}

// NewService creates a new round service
func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	if cfg.RoundRepo == nil {
		return nil, errors.New("round repository is required")
	}

	if cfg.LedgerRepo == nil {
		return nil, errors.New("ledger repository is required")
	}

	if cfg.TriviaClient == nil {
		return nil, errors.New("trivia client is required")
	}

	if cfg.Matcher == nil {
		return nil, errors.New("matcher is required")
	}

	if cfg.Messaging == nil {
		return nil, errors.New("messaging service is required")
	}

	if cfg.Notifier == nil {
		return nil, errors.New("notifier is required")
	}

	if cfg.Scheduler == nil {
		return nil, errors.New("scheduler is required")
	}

	answerDelay := cfg.AnswerDelay
	if answerDelay <= 0 {
		answerDelay = 30 * time.Second
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	uuider := cfg.UUID
	if uuider == nil {
		uuider = uuid.New()
	}

	return &service{
		roundRepo:    cfg.RoundRepo,
		ledgerRepo:   cfg.LedgerRepo,
		triviaClient: cfg.TriviaClient,
		matcher:      cfg.Matcher,
		messaging:    cfg.Messaging,
		notifier:     cfg.Notifier,
		scheduler:    cfg.Scheduler,
		answerDelay:  answerDelay,
		clock:        clk,
		uuider:       uuider,
	}, nil
}

// Ask starts a round for the channel, or re-shows the live question
func (s *service) Ask(ctx context.Context, input *AskInput) (*AskOutput, error) {
	existing, err := s.roundRepo.GetActiveRound(ctx, &roundRepo.GetActiveRoundInput{
		Channel: input.Channel,
	})
	if err == nil {
		return &AskOutput{
			Round:         existing,
			AlreadyActive: true,
			Message:       questionLine(existing),
		}, nil
	}

	if !errors.Is(err, roundRepo.ErrRoundNotFound) {
		return nil, err
	}

	clue, links, err := s.fetchUsableClue(ctx)
	if err != nil {
		return nil, err
	}

	round := &models.Round{
		ID:        s.uuider.NewUUID(),
		Channel:   input.Channel,
		Category:  clue.Category,
		Question:  clue.Question,
		Links:     links,
		Answer:    clue.Answer,
		Value:     clue.Value,
		Active:    true,
		CreatedAt: s.clock.Now(),
	}

	err = s.roundRepo.CreateRound(ctx, &roundRepo.CreateRoundInput{
		Round: round,
	})
	if err != nil {
		// Lost the creation race; re-show whatever claimed the slot.
		if errors.Is(err, roundRepo.ErrActiveRoundExists) {
			existing, getErr := s.roundRepo.GetActiveRound(ctx, &roundRepo.GetActiveRoundInput{
				Channel: input.Channel,
			})
			if getErr != nil {
				return nil, getErr
			}

			return &AskOutput{
				Round:         existing,
				AlreadyActive: true,
				Message:       questionLine(existing),
			}, nil
		}

		return nil, err
	}

	logging.Debug("round created", "roundID", round.ID, "channel", round.Channel, "answer", round.Answer)

	roundID := round.ID
	s.scheduler.Schedule(s.answerDelay, func() {
		s.reveal(roundID)
	})

	return &AskOutput{
		Round:   round,
		Message: questionLine(round),
	}, nil
}

// Guess evaluates a submission against the channel's live round
func (s *service) Guess(ctx context.Context, input *GuessInput) (*GuessOutput, error) {
	active, err := s.roundRepo.GetActiveRound(ctx, &roundRepo.GetActiveRoundInput{
		Channel: input.Channel,
	})
	if err != nil {
		if errors.Is(err, roundRepo.ErrRoundNotFound) {
			return &GuessOutput{Outcome: GuessOutcomeIgnored}, nil
		}

		return nil, err
	}

	result := s.matcher.Evaluate(input.Tokens, active.Answer)

	if result.Correct {
		resolved, err := s.roundRepo.ResolveRound(ctx, &roundRepo.ResolveRoundInput{
			RoundID:    active.ID,
			AnsweredBy: input.Nick,
			AnsweredAt: s.clock.Now(),
		})
		if err != nil {
			return nil, err
		}

		// Someone else resolved it first; this guess gets nothing.
		if !resolved.Won {
			return &GuessOutput{
				Outcome: GuessOutcomeIgnored,
				Round:   resolved.Round,
			}, nil
		}

		if err := s.ledgerRepo.AddEntry(ctx, &ledgerRepo.AddEntryInput{
			Entry: &models.LedgerEntry{
				ID:        s.uuider.NewUUID(),
				Channel:   input.Channel,
				Nick:      input.Nick,
				Value:     active.Value,
				Timestamp: s.clock.Now(),
			},
		}); err != nil {
			// The round is already resolved; losing the ledger entry is
			// better than telling the winner they lost.
			logging.Error("failed to record ledger entry", "roundID", active.ID, "error", err)
		}

		congrats, err := s.messaging.GetCorrectAnswerMessage(ctx, &messaging.GetCorrectAnswerMessageInput{
			Nick: input.Nick,
		})
		if err != nil {
			return nil, err
		}

		return &GuessOutput{
			Outcome: GuessOutcomeCorrect,
			Message: fmt.Sprintf("%s (+%s)", congrats.Message, messaging.FormatMoney(active.Value)),
			Round:   resolved.Round,
		}, nil
	}

	if result.Partial > 0 {
		partial, err := s.messaging.GetPartialMessage(ctx, &messaging.GetPartialMessageInput{
			Nick: input.Nick,
		})
		if err != nil {
			return nil, err
		}

		return &GuessOutput{
			Outcome: GuessOutcomePartial,
			Message: partial.Message,
			Round:   active,
		}, nil
	}

	return &GuessOutput{
		Outcome: GuessOutcomeIgnored,
		Round:   active,
	}, nil
}

// Reset force-clears any live round for the channel
func (s *service) Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error) {
	if err := s.roundRepo.DeactivateAll(ctx, &roundRepo.DeactivateAllInput{
		Channel: input.Channel,
	}); err != nil {
		return nil, err
	}

	return &ResetOutput{}, nil
}

// reveal is the timeout callback. It re-checks the round and only speaks if
// nobody answered in time.
func (s *service) reveal(roundID string) {
	ctx := context.Background()

	resolved, err := s.roundRepo.ResolveRound(ctx, &roundRepo.ResolveRoundInput{
		RoundID: roundID,
	})
	if err != nil {
		logging.Error("failed to resolve round on timeout", "roundID", roundID, "error", err)
		return
	}

	if !resolved.Won {
		return
	}

	reveal, err := s.messaging.GetRevealMessage(ctx, &messaging.GetRevealMessageInput{
		Answer: resolved.Round.Answer,
	})
	if err != nil {
		logging.Error("failed to build reveal message", "roundID", roundID, "error", err)
		return
	}

	s.notifier.Announce(resolved.Round.Channel, reveal.Message)
}

// fetchUsableClue pulls random clues until one has both question and answer
// text. Links embedded in the question come back separately so they can be
// shown as context lines before it.
func (s *service) fetchUsableClue(ctx context.Context) (*trivia.Clue, []string, error) {
	for attempt := 0; attempt < maxFetchAttempts; attempt++ {
		clue, err := s.triviaClient.FetchRandomClue(ctx)
		if err != nil {
			return nil, nil, err
		}

		var links []string
		clue.Question, links = stripLinks(clue.Question)
		clue.Answer = strings.TrimSpace(clue.Answer)

		if clue.Question == "" || clue.Answer == "" {
			continue
		}

		if clue.Value <= 0 {
			clue.Value = defaultValue
		}

		return clue, links, nil
	}

	return nil, nil, ErrNoUsableClue
}

func stripLinks(text string) (string, []string) {
	links := urlPattern.FindAllString(text, -1)
	cleaned := strings.Join(strings.Fields(urlPattern.ReplaceAllString(text, "")), " ")
	return cleaned, links
}

func questionLine(round *models.Round) string {
	lines := make([]string, 0, len(round.Links)+1)
	lines = append(lines, round.Links...)
	lines = append(lines, fmt.Sprintf("[%s] For %s: %s", round.Category, messaging.FormatMoney(round.Value), round.Question))
	return strings.Join(lines, "\n")
}
