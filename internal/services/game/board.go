package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/trebek/internal/common/logging"
	"github.com/KirkDiggler/trebek/internal/models"
	"github.com/KirkDiggler/trebek/internal/trivia"
)

// boardFetchAttempts bounds how many whole-board fetches NewGame will make
// when the provider serves malformed categories
const boardFetchAttempts = 3

// clueValueStep spaces the five rows of each category: 200, 400 .. 1000
const clueValueStep = 200

// buildBoard assembles a full board, refetching everything after a short
// pause when the content comes back malformed.
func (s *service) buildBoard(ctx context.Context) ([]*models.BoardCategory, error) {
	for attempt := 0; attempt < boardFetchAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(s.categoryRetryDelay):
			}
		}

		board, err := s.fetchBoard(ctx)
		if err != nil {
			if errors.Is(err, ErrMalformedContent) {
				logging.Warn("board fetch returned malformed content, retrying", "attempt", attempt+1)
				continue
			}

			return nil, err
		}

		return board, nil
	}

	return nil, ErrMalformedContent
}

// fetchBoard pulls six categories and keeps the first five well-formed
// clues of each. Any category that cannot fill its column fails the whole
// board.
func (s *service) fetchBoard(ctx context.Context) ([]*models.BoardCategory, error) {
	refs, err := s.triviaClient.FetchCategories(ctx, models.BoardCategories)
	if err != nil {
		return nil, err
	}

	if len(refs) < models.BoardCategories {
		return nil, ErrMalformedContent
	}

	board := make([]*models.BoardCategory, 0, models.BoardCategories)
	for i, ref := range refs[:models.BoardCategories] {
		detail, err := s.triviaClient.FetchCategoryDetail(ctx, ref.ID)
		if err != nil {
			return nil, err
		}

		clues := wellFormedClues(detail)
		if len(clues) < models.CluesPerCategory {
			return nil, ErrMalformedContent
		}

		clues = clues[:models.CluesPerCategory]
		for j, clue := range clues {
			clue.Value = (j + 1) * clueValueStep
			clue.Active = true
		}

		board = append(board, &models.BoardCategory{
			Key:   fmt.Sprintf("cat%d", i+1),
			Title: strings.TrimSpace(detail.Title),
			Clues: clues,
		})
	}

	return board, nil
}

func wellFormedClues(detail *trivia.CategoryDetail) []*models.BoardClue {
	clues := make([]*models.BoardClue, 0, len(detail.Clues))
	for _, c := range detail.Clues {
		question := strings.Join(strings.Fields(c.Question), " ")
		answer := strings.TrimSpace(c.Answer)

		if question == "" || answer == "" {
			continue
		}

		clues = append(clues, &models.BoardClue{
			Question: question,
			Answer:   answer,
			SourceID: c.ID,
		})
	}

	return clues
}
