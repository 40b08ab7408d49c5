package discord

import (
	"github.com/KirkDiggler/trebek/internal/common/logging"
	"github.com/KirkDiggler/trebek/internal/models"
)

// Announcer delivers engine-initiated messages, the ones timer callbacks
// produce with no command in flight. It exists separately from the Bot so
// the services can be wired to it before the Bot is constructed.
type Announcer struct {
	sender messageSender
}

// NewAnnouncer creates a new Announcer on a Discord session
func NewAnnouncer(sender messageSender) *Announcer {
	return &Announcer{sender: sender}
}

// Announce sends a message to a channel
func (a *Announcer) Announce(channel string, message string) {
	if _, err := a.sender.ChannelMessageSend(channel, message); err != nil {
		logging.Error("failed to announce", "channel", channel, "error", err)
	}
}

// AnnounceBoard renders and sends the remaining board
func (a *Announcer) AnnounceBoard(channel string, game *models.Game) {
	a.Announce(channel, RenderBoard(game))
}
