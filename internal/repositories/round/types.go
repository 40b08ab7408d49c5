package round

import (
	"time"

	"github.com/KirkDiggler/trebek/internal/models"
)

type CreateRoundInput struct {
	Round *models.Round
}

type GetRoundInput struct {
	RoundID string
}

type GetActiveRoundInput struct {
	Channel string
}

type ResolveRoundInput struct {
	RoundID string

	// AnsweredBy is the winning nick. Empty for a timeout resolution.
	AnsweredBy string

	// AnsweredAt is stamped on the round when AnsweredBy is set
	AnsweredAt time.Time
}

type ResolveRoundOutput struct {
	// Won indicates this call deactivated the round. False means someone
	// else already resolved it.
	Won bool

	// Round is the round after the attempt
	Round *models.Round
}

type DeactivateAllInput struct {
	Channel string
}
