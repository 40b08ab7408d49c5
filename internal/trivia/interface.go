package trivia

//go:generate mockgen -package=mocks -destination=mocks/mock_client.go github.com/KirkDiggler/trebek/internal/trivia Client

import (
	"context"
)

// Client defines the interface for the trivia content provider
type Client interface {
	// FetchRandomClue retrieves one random clue
	FetchRandomClue(ctx context.Context) (*Clue, error)

	// FetchCategories retrieves count category references
	FetchCategories(ctx context.Context, count int) ([]*CategoryRef, error)

	// FetchCategoryDetail retrieves a category with its clues
	FetchCategoryDetail(ctx context.Context, id int) (*CategoryDetail, error)
}
