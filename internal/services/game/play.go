package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/trebek/internal/common/logging"
	"github.com/KirkDiggler/trebek/internal/models"
	gameRepo "github.com/KirkDiggler/trebek/internal/repositories/game"
	"github.com/KirkDiggler/trebek/internal/services/messaging"
)

// SelectClue opens a board cell. Only the controlling player may select,
// and only while no other clue is live.
func (s *service) SelectClue(ctx context.Context, input *SelectClueInput) (*SelectClueOutput, error) {
	current, err := s.currentGame(ctx, input.Channel)
	if err != nil {
		return nil, err
	}

	var opened *models.ActiveClue
	var categoryTitle string

	updated, err := s.gameRepo.UpdateGame(ctx, &gameRepo.UpdateGameInput{
		GameID: current.ID,
		Mutate: func(g *models.Game) error {
			if g.Status != models.GameStatusInProgress {
				return ErrNotStarted
			}

			if g.Control != input.Nick {
				return &NotYourBoardError{Controller: g.Control}
			}

			if g.ActiveClue != nil && g.ActiveClue.Active {
				return ErrClueLive
			}

			category := g.Category(input.CategoryKey)
			if category == nil {
				return ErrUnknownCategory
			}

			clueIndex := -1
			for i, clue := range category.Clues {
				if clue.Value == input.Value {
					clueIndex = i
					break
				}
			}
			if clueIndex < 0 {
				return ErrUnknownValue
			}

			cell := category.Clues[clueIndex]
			if !cell.Active {
				return ErrCluePlayed
			}

			categoryTitle = category.Title
			opened = &models.ActiveClue{
				ID:          s.uuider.NewUUID(),
				GameID:      g.ID,
				CategoryKey: category.Key,
				ClueIndex:   clueIndex,
				Question:    cell.Question,
				Answer:      cell.Answer,
				Value:       cell.Value,
				Active:      true,
				SelectedBy:  input.Nick,
				SelectedAt:  s.clock.Now(),
			}
			g.ActiveClue = opened
			g.UpdatedAt = s.clock.Now()
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	logging.Debug("clue opened", "gameID", updated.ID, "clueID", opened.ID, "answer", opened.Answer)

	gameID := updated.ID
	clueID := opened.ID
	s.scheduler.Schedule(s.clueDelay, func() {
		s.expireClue(gameID, clueID)
	})

	return &SelectClueOutput{
		Game:    updated,
		Clue:    opened,
		Message: fmt.Sprintf("[%s] For %s: %s", categoryTitle, messaging.FormatMoney(opened.Value), opened.Question),
	}, nil
}

// AnswerClue evaluates a submission against the live clue. A correct answer
// scores the clue's value and takes control; an incorrect one costs it and
// leaves the clue open.
func (s *service) AnswerClue(ctx context.Context, input *AnswerClueInput) (*AnswerClueOutput, error) {
	current, err := s.currentGame(ctx, input.Channel)
	if err != nil {
		return nil, err
	}

	if current.Status != models.GameStatusInProgress ||
		current.ActiveClue == nil || !current.ActiveClue.Active {
		return nil, ErrNoLiveClue
	}

	if !current.HasPlayer(input.Nick) {
		return nil, ErrNotPlaying
	}

	clueID := current.ActiveClue.ID
	value := current.ActiveClue.Value
	result := s.matcher.Evaluate(input.Tokens, current.ActiveClue.Answer)

	if result.Correct {
		return s.resolveCorrect(ctx, current, input.Nick, clueID, value)
	}

	if result.Partial > 0 {
		partial, err := s.messaging.GetPartialMessage(ctx, &messaging.GetPartialMessageInput{
			Nick: input.Nick,
		})
		if err != nil {
			return nil, err
		}

		return &AnswerClueOutput{
			Outcome: AnswerOutcomePartial,
			Message: partial.Message,
			Game:    current,
		}, nil
	}

	return s.resolveIncorrect(ctx, current, input.Nick, clueID, value)
}

// resolveCorrect flips the clue, awards its value and moves control, all in
// one conditional update. Losing the race to another answer or the timeout
// downgrades the attempt to ignored.
func (s *service) resolveCorrect(ctx context.Context, current *models.Game, nick, clueID string, value int) (*AnswerClueOutput, error) {
	maintained := false
	ended := false

	updated, err := s.gameRepo.UpdateGame(ctx, &gameRepo.UpdateGameInput{
		GameID: current.ID,
		Mutate: func(g *models.Game) error {
			if g.ActiveClue == nil || g.ActiveClue.ID != clueID || !g.ActiveClue.Active {
				return errStale
			}

			maintained = g.Control == nick
			ended = false

			g.Scores[nick] += value
			g.Control = nick
			g.ActiveClue.Active = false
			deactivateCell(g, g.ActiveClue.CategoryKey, g.ActiveClue.ClueIndex)

			if g.RemainingClues() == 0 {
				g.Status = models.GameStatusEnded
				ended = true
			}

			g.UpdatedAt = s.clock.Now()
			return nil
		},
	})
	if err != nil {
		if errors.Is(err, errStale) {
			return &AnswerClueOutput{
				Outcome: AnswerOutcomeIgnored,
				Game:    current,
			}, nil
		}

		return nil, err
	}

	congrats, err := s.messaging.GetCorrectAnswerMessage(ctx, &messaging.GetCorrectAnswerMessageInput{
		Nick: nick,
	})
	if err != nil {
		return nil, err
	}

	control, err := s.messaging.GetControlMessage(ctx, &messaging.GetControlMessageInput{
		Nick:       nick,
		Maintained: maintained,
	})
	if err != nil {
		return nil, err
	}

	lines := []string{
		fmt.Sprintf("%s (+%s)", congrats.Message, messaging.FormatMoney(value)),
		control.Message,
	}

	if ended {
		closing, err := s.championMessage(ctx, updated, false)
		if err != nil {
			return nil, err
		}
		lines = append(lines, closing)
	}

	return &AnswerClueOutput{
		Outcome: AnswerOutcomeCorrect,
		Message: strings.Join(lines, "\n"),
		Game:    updated,
		Ended:   ended,
	}, nil
}

// resolveIncorrect deducts the clue's value. The clue stays open and its
// timer keeps running.
func (s *service) resolveIncorrect(ctx context.Context, current *models.Game, nick, clueID string, value int) (*AnswerClueOutput, error) {
	updated, err := s.gameRepo.UpdateGame(ctx, &gameRepo.UpdateGameInput{
		GameID: current.ID,
		Mutate: func(g *models.Game) error {
			if g.ActiveClue == nil || g.ActiveClue.ID != clueID || !g.ActiveClue.Active {
				return errStale
			}

			g.Scores[nick] -= value
			g.UpdatedAt = s.clock.Now()
			return nil
		},
	})
	if err != nil {
		if errors.Is(err, errStale) {
			return &AnswerClueOutput{
				Outcome: AnswerOutcomeIgnored,
				Game:    current,
			}, nil
		}

		return nil, err
	}

	return &AnswerClueOutput{
		Outcome: AnswerOutcomeIncorrect,
		Message: fmt.Sprintf("no, %s. (-%s)", nick, messaging.FormatMoney(value)),
		Game:    updated,
	}, nil
}

// expireClue is the per-clue timer callback. If the clue is still open it
// reveals the answer, closes the cell and redisplays the board. Scores and
// control are untouched.
func (s *service) expireClue(gameID, clueID string) {
	ctx := context.Background()

	ended := false
	answer := ""

	updated, err := s.gameRepo.UpdateGame(ctx, &gameRepo.UpdateGameInput{
		GameID: gameID,
		Mutate: func(g *models.Game) error {
			if g.ActiveClue == nil || g.ActiveClue.ID != clueID || !g.ActiveClue.Active {
				return errStale
			}

			ended = false
			answer = g.ActiveClue.Answer
			g.ActiveClue.Active = false
			deactivateCell(g, g.ActiveClue.CategoryKey, g.ActiveClue.ClueIndex)

			if g.RemainingClues() == 0 {
				g.Status = models.GameStatusEnded
				ended = true
			}

			g.UpdatedAt = s.clock.Now()
			return nil
		},
	})
	if err != nil {
		if !errors.Is(err, errStale) {
			logging.Error("failed to expire clue", "gameID", gameID, "clueID", clueID, "error", err)
		}
		return
	}

	reveal, err := s.messaging.GetRevealMessage(ctx, &messaging.GetRevealMessageInput{
		Answer: answer,
	})
	if err != nil {
		logging.Error("failed to build reveal message", "clueID", clueID, "error", err)
		return
	}

	s.notifier.Announce(updated.Channel, reveal.Message)

	if ended {
		closing, err := s.championMessage(ctx, updated, false)
		if err != nil {
			logging.Error("failed to build closing message", "gameID", gameID, "error", err)
			return
		}

		s.notifier.Announce(updated.Channel, closing)
		return
	}

	s.notifier.AnnounceBoard(updated.Channel, updated)
}

func deactivateCell(g *models.Game, categoryKey string, clueIndex int) {
	category := g.Category(categoryKey)
	if category == nil || clueIndex < 0 || clueIndex >= len(category.Clues) {
		return
	}

	category.Clues[clueIndex].Active = false
}
