package game

import "github.com/KirkDiggler/trebek/internal/models"

type CreateGameInput struct {
	Game *models.Game
}

type GetGameInput struct {
	GameID string
}

type GetCurrentGameInput struct {
	Channel string
}

type UpdateGameInput struct {
	GameID string

	// Mutate is applied to the freshly read game. Returning an error
	// aborts the update without writing.
	Mutate func(game *models.Game) error
}
