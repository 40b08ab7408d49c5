package discord

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/trebek/internal/common/logging"
	gameService "github.com/KirkDiggler/trebek/internal/services/game"
	leaderboardService "github.com/KirkDiggler/trebek/internal/services/leaderboard"
	roundService "github.com/KirkDiggler/trebek/internal/services/round"
)

// selectionPattern matches board selection keys like "cat3"
var selectionPattern = regexp.MustCompile(`^cat[1-9][0-9]*$`)

func (b *Bot) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	if s.State != nil && s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	fields := strings.Fields(m.Content)
	if len(fields) == 0 || fields[0] != b.prefix {
		return
	}

	b.handleCommand(context.Background(), m.ChannelID, m.Author.Username, fields[1:])
}

// handleCommand routes one prefixed message. args excludes the prefix.
func (b *Bot) handleCommand(ctx context.Context, channel, nick string, args []string) {
	switch {
	case len(args) == 0:
		b.ask(ctx, channel)
	case args[0] == "score":
		b.score(ctx, channel, nick, len(args) > 1 && args[1] == "all")
	case args[0] == "reset":
		b.reset(ctx, channel)
	case args[0] == "game":
		b.game(ctx, channel, nick, args[1:])
	case selectionPattern.MatchString(args[0]) && len(args) > 1:
		b.selectClue(ctx, channel, nick, args[0], args[1])
	default:
		b.guess(ctx, channel, nick, args)
	}
}

func (b *Bot) ask(ctx context.Context, channel string) {
	out, err := b.roundService.Ask(ctx, &roundService.AskInput{Channel: channel})
	if err != nil {
		logging.Error("failed to start round", "channel", channel, "error", err)
		b.send(channel, "couldn't fetch a question, try again shortly.")
		return
	}

	b.send(channel, out.Message)
}

// guess routes free text to the board's live clue when a game has one, and
// to the free-play round otherwise.
func (b *Bot) guess(ctx context.Context, channel, nick string, tokens []string) {
	out, err := b.gameService.AnswerClue(ctx, &gameService.AnswerClueInput{
		Channel: channel,
		Nick:    nick,
		Tokens:  tokens,
	})
	if err == nil {
		if out.Message != "" {
			b.send(channel, out.Message)
		}
		if out.Outcome == gameService.AnswerOutcomeCorrect && !out.Ended {
			b.send(channel, RenderBoard(out.Game))
		}
		return
	}

	if errors.Is(err, gameService.ErrNotPlaying) {
		b.send(channel, fmt.Sprintf("wait for the next game, %s.", nick))
		return
	}

	if !errors.Is(err, gameService.ErrNoGame) && !errors.Is(err, gameService.ErrNoLiveClue) {
		logging.Error("failed to answer clue", "channel", channel, "error", err)
		return
	}

	roundOut, err := b.roundService.Guess(ctx, &roundService.GuessInput{
		Channel: channel,
		Nick:    nick,
		Tokens:  tokens,
	})
	if err != nil {
		logging.Error("failed to evaluate guess", "channel", channel, "error", err)
		return
	}

	if roundOut.Message != "" {
		b.send(channel, roundOut.Message)
	}
}

func (b *Bot) selectClue(ctx context.Context, channel, nick, categoryKey, rawValue string) {
	value, err := parseValue(rawValue)
	if err != nil {
		b.send(channel, fmt.Sprintf("%q is not a number.", rawValue))
		return
	}

	out, err := b.gameService.SelectClue(ctx, &gameService.SelectClueInput{
		Channel:     channel,
		Nick:        nick,
		CategoryKey: categoryKey,
		Value:       value,
	})
	if err != nil {
		b.send(channel, b.gameErrorLine(err, nick))
		return
	}

	b.send(channel, out.Message)
}

func (b *Bot) score(ctx context.Context, channel, nick string, allTime bool) {
	out, err := b.leaderboardService.GetLeaderboard(ctx, &leaderboardService.GetLeaderboardInput{
		Channel: channel,
		Nick:    nick,
		AllTime: allTime,
	})
	if err != nil {
		logging.Error("failed to build leaderboard", "channel", channel, "error", err)
		b.send(channel, "couldn't pull the scores right now.")
		return
	}

	b.send(channel, out.Message)
}

// reset force-resolves the channel's round and force-ends its game
func (b *Bot) reset(ctx context.Context, channel string) {
	if _, err := b.roundService.Reset(ctx, &roundService.ResetInput{Channel: channel}); err != nil {
		logging.Error("failed to reset round", "channel", channel, "error", err)
	}

	_, err := b.gameService.EndGame(ctx, &gameService.EndGameInput{
		Channel: channel,
		Force:   true,
	})
	if err != nil && !errors.Is(err, gameService.ErrNoGame) {
		logging.Error("failed to reset game", "channel", channel, "error", err)
	}

	b.send(channel, "cleared.")
}

func (b *Bot) game(ctx context.Context, channel, nick string, args []string) {
	if len(args) == 0 {
		b.send(channel, "usage: game new | join | start | end")
		return
	}

	switch args[0] {
	case "new":
		out, err := b.gameService.NewGame(ctx, &gameService.NewGameInput{
			Channel:  channel,
			HostNick: nick,
		})
		if err != nil {
			b.send(channel, b.gameErrorLine(err, nick))
			return
		}
		b.send(channel, out.Message)

	case "join":
		out, err := b.gameService.Join(ctx, &gameService.JoinInput{
			Channel: channel,
			Nick:    nick,
		})
		if err != nil {
			b.send(channel, b.gameErrorLine(err, nick))
			return
		}
		b.send(channel, out.Message)

	case "start":
		out, err := b.gameService.Start(ctx, &gameService.StartInput{
			Channel: channel,
			Nick:    nick,
		})
		if err != nil {
			b.send(channel, b.gameErrorLine(err, nick))
			return
		}
		b.send(channel, out.Message)
		b.send(channel, RenderBoard(out.Game))

	case "end":
		out, err := b.gameService.EndGame(ctx, &gameService.EndGameInput{
			Channel: channel,
			Nick:    nick,
		})
		if err != nil {
			b.send(channel, b.gameErrorLine(err, nick))
			return
		}
		b.send(channel, out.Message)

	default:
		b.send(channel, "usage: game new | join | start | end")
	}
}

// gameErrorLine maps game service errors to chat lines
func (b *Bot) gameErrorLine(err error, nick string) string {
	var notHost *gameService.NotHostError
	if errors.As(err, &notHost) {
		return fmt.Sprintf("%s, only %s can end the game.", nick, notHost.Host)
	}

	var notYourBoard *gameService.NotYourBoardError
	if errors.As(err, &notYourBoard) {
		return fmt.Sprintf("%s, the board is %s's.", nick, notYourBoard.Controller)
	}

	switch {
	case errors.Is(err, gameService.ErrGameExists):
		return "there's already a game in this channel."
	case errors.Is(err, gameService.ErrNoGame):
		return "no game going. \"game new\" starts one."
	case errors.Is(err, gameService.ErrNotInLobby):
		return "too late to join this one."
	case errors.Is(err, gameService.ErrNotStarted):
		return "the game hasn't started yet."
	case errors.Is(err, gameService.ErrAlreadyStarted):
		return "the game has already started."
	case errors.Is(err, gameService.ErrNoPlayers):
		return "nobody has joined yet."
	case errors.Is(err, gameService.ErrNotPlaying):
		return fmt.Sprintf("wait for the next game, %s.", nick)
	case errors.Is(err, gameService.ErrClueLive):
		return "answer the open clue first."
	case errors.Is(err, gameService.ErrCluePlayed):
		return "that clue has already been played."
	case errors.Is(err, gameService.ErrUnknownCategory):
		return "no such category."
	case errors.Is(err, gameService.ErrUnknownValue):
		return "no clue at that value."
	case errors.Is(err, gameService.ErrMalformedContent):
		return "couldn't build a board right now, try again shortly."
	default:
		logging.Error("game command failed", "error", err)
		return "something went wrong."
	}
}

// parseValue accepts "400", "$400" and "$1,000"
func parseValue(raw string) (int, error) {
	cleaned := strings.ReplaceAll(strings.TrimPrefix(raw, "$"), ",", "")
	return strconv.Atoi(cleaned)
}

func (b *Bot) send(channel, message string) {
	if _, err := b.sender.ChannelMessageSend(channel, message); err != nil {
		logging.Error("failed to send message", "channel", channel, "error", err)
	}
}
