package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/trebek/internal/models"
	"github.com/KirkDiggler/trebek/internal/services/messaging"
)

// RenderBoard formats the remaining board as a monospace block: one line
// per category with its unplayed values, then scores and control.
func RenderBoard(game *models.Game) string {
	var b strings.Builder
	b.WriteString("```\n")

	for _, cat := range game.Board {
		cells := make([]string, 0, len(cat.Clues))
		for _, clue := range cat.Clues {
			if clue.Active {
				cells = append(cells, fmt.Sprintf("%6s", messaging.FormatMoney(clue.Value)))
			} else {
				cells = append(cells, fmt.Sprintf("%6s", "----"))
			}
		}
		b.WriteString(fmt.Sprintf("%-5s %s  %s\n", cat.Key, strings.Join(cells, " "), cat.Title))
	}

	if len(game.Players) > 0 {
		scores := make([]string, 0, len(game.Players))
		for _, nick := range game.Players {
			scores = append(scores, fmt.Sprintf("%s: %s", nick, messaging.FormatMoney(game.Scores[nick])))
		}
		b.WriteString(strings.Join(scores, " | "))
		b.WriteString("\n")
	}

	if game.Control != "" {
		b.WriteString(fmt.Sprintf("control: %s\n", game.Control))
	}

	b.WriteString("```")
	return b.String()
}
