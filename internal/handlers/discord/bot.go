package discord

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	gameService "github.com/KirkDiggler/trebek/internal/services/game"
	leaderboardService "github.com/KirkDiggler/trebek/internal/services/leaderboard"
	roundService "github.com/KirkDiggler/trebek/internal/services/round"
)

// messageSender is the slice of the Discord session the bot writes through.
// Narrowed to an interface so command handling is testable.
type messageSender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Bot represents the Discord bot instance
type Bot struct {
	session *discordgo.Session
	sender  messageSender
	prefix  string

	roundService       roundService.Service
	gameService        gameService.Service
	leaderboardService leaderboardService.Service
}

// Config holds the configuration for the bot
type Config struct {
	// Session is the Discord session. The bot registers its handler on it
	// and owns opening and closing it.
	Session *discordgo.Session

	// Prefix is the command word, e.g. "j"
	Prefix string

	RoundService       roundService.Service
	GameService        gameService.Service
	LeaderboardService leaderboardService.Service
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.Prefix == "" {
		return nil, errors.New("prefix cannot be empty")
	}

	if cfg.RoundService == nil {
		return nil, errors.New("round service cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.LeaderboardService == nil {
		return nil, errors.New("leaderboard service cannot be nil")
	}

	bot := &Bot{
		session:            cfg.Session,
		sender:             cfg.Session,
		prefix:             cfg.Prefix,
		roundService:       cfg.RoundService,
		gameService:        cfg.GameService,
		leaderboardService: cfg.LeaderboardService,
	}

	cfg.Session.AddHandler(bot.handleMessage)

	return bot, nil
}

// Start opens the Discord connection
func (b *Bot) Start() error {
	b.session.Identify.Intents |= discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	return nil
}

// Stop closes the Discord connection
func (b *Bot) Stop() error {
	return b.session.Close()
}
