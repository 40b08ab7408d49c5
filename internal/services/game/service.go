package game

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/KirkDiggler/trebek/internal/answers"
	"github.com/KirkDiggler/trebek/internal/common/clock"
	"github.com/KirkDiggler/trebek/internal/common/logging"
	"github.com/KirkDiggler/trebek/internal/common/uuid"
	"github.com/KirkDiggler/trebek/internal/models"
	gameRepo "github.com/KirkDiggler/trebek/internal/repositories/game"
	"github.com/KirkDiggler/trebek/internal/rng"
	"github.com/KirkDiggler/trebek/internal/services/messaging"
	"github.com/KirkDiggler/trebek/internal/timer"
	"github.com/KirkDiggler/trebek/internal/trivia"
)

// service implements the Service interface
type service struct {
	gameRepo           gameRepo.Repository
	triviaClient       trivia.Client
	matcher            *answers.Matcher
	messaging          messaging.Service
	notifier           Notifier
	scheduler          timer.Scheduler
	rand               rng.Rand
	clueDelay          time.Duration
	gameTimeout        time.Duration
	categoryRetryDelay time.Duration
	clock              clock.Clock
	uuider             uuid.UUID
}

// NewService creates a new game service
func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	if cfg.GameRepo == nil {
		return nil, errors.New("game repository is required")
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

	random := cfg.Rand
	if random == nil {
		random = rng.New(nil)
	}

	clueDelay := cfg.ClueDelay
	if clueDelay <= 0 {
		clueDelay = 10 * time.Second
	}

	gameTimeout := cfg.GameTimeout
	if gameTimeout <= 0 {
		gameTimeout = 30 * time.Minute
	}

	retryDelay := cfg.CategoryRetryDelay
	if retryDelay <= 0 {
		retryDelay = 3 * time.Second
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
		gameRepo:           cfg.GameRepo,
		triviaClient:       cfg.TriviaClient,
		matcher:            cfg.Matcher,
		messaging:          cfg.Messaging,
		notifier:           cfg.Notifier,
		scheduler:          cfg.Scheduler,
		rand:               random,
		clueDelay:          clueDelay,
		gameTimeout:        gameTimeout,
		categoryRetryDelay: retryDelay,
		clock:              clk,
		uuider:             uuider,
	}, nil
}

// NewGame creates a lobby for the channel with a freshly built board
func (s *service) NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error) {
	_, err := s.gameRepo.GetCurrentGame(ctx, &gameRepo.GetCurrentGameInput{
		Channel: input.Channel,
	})
	if err == nil {
		return nil, ErrGameExists
	}

	if !errors.Is(err, gameRepo.ErrGameNotFound) {
		return nil, err
	}

	board, err := s.buildBoard(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	game := &models.Game{
		ID:        s.uuider.NewUUID(),
		Channel:   input.Channel,
		HostNick:  input.HostNick,
		Status:    models.GameStatusLobby,
		Players:   []string{},
		Scores:    map[string]int{},
		Board:     board,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.gameRepo.CreateGame(ctx, &gameRepo.CreateGameInput{Game: game})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameAlreadyExists) {
			return nil, ErrGameExists
		}

		return nil, err
	}

	announcement, err := s.messaging.GetNewGameMessage(ctx, &messaging.GetNewGameMessageInput{
		HostNick: input.HostNick,
	})
	if err != nil {
		return nil, err
	}

	return &NewGameOutput{
		Game:    game,
		Message: announcement.Message,
	}, nil
}

// Join adds a player to the channel's lobby
func (s *service) Join(ctx context.Context, input *JoinInput) (*JoinOutput, error) {
	current, err := s.currentGame(ctx, input.Channel)
	if err != nil {
		return nil, err
	}

	joined := false
	updated, err := s.gameRepo.UpdateGame(ctx, &gameRepo.UpdateGameInput{
		GameID: current.ID,
		Mutate: func(g *models.Game) error {
			joined = false

			if g.Status != models.GameStatusLobby {
				return ErrNotInLobby
			}

			if g.HasPlayer(input.Nick) {
				return nil
			}

			g.Players = append(g.Players, input.Nick)
			g.UpdatedAt = s.clock.Now()
			joined = true
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	roster := strings.Join(updated.Players, ", ")
	message := fmt.Sprintf("%s is in. Players: %s", input.Nick, roster)
	if !joined {
		message = fmt.Sprintf("%s is already in. Players: %s", input.Nick, roster)
	}

	return &JoinOutput{
		Game:    updated,
		Joined:  joined,
		Message: message,
	}, nil
}

// Start moves the lobby into play, zeroes scores and hands control to a
// random player
func (s *service) Start(ctx context.Context, input *StartInput) (*StartOutput, error) {
	current, err := s.currentGame(ctx, input.Channel)
	if err != nil {
		return nil, err
	}

	updated, err := s.gameRepo.UpdateGame(ctx, &gameRepo.UpdateGameInput{
		GameID: current.ID,
		Mutate: func(g *models.Game) error {
			if g.Status != models.GameStatusLobby {
				return ErrAlreadyStarted
			}

			if len(g.Players) == 0 {
				return ErrNoPlayers
			}

			g.Scores = make(map[string]int, len(g.Players))
			for _, nick := range g.Players {
				g.Scores[nick] = 0
			}

			g.Control = g.Players[s.rand.Intn(len(g.Players))]
			g.Status = models.GameStatusInProgress
			g.UpdatedAt = s.clock.Now()
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	gameID := updated.ID
	s.scheduler.Schedule(s.gameTimeout, func() {
		s.expireGame(gameID)
	})

	control, err := s.messaging.GetControlMessage(ctx, &messaging.GetControlMessageInput{
		Nick: updated.Control,
	})
	if err != nil {
		return nil, err
	}

	return &StartOutput{
		Game:    updated,
		Message: control.Message,
	}, nil
}

// EndGame ends the channel's game and announces the standings
func (s *service) EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error) {
	current, err := s.currentGame(ctx, input.Channel)
	if err != nil {
		return nil, err
	}

	if !input.Force && current.HostNick != input.Nick {
		return nil, &NotHostError{Host: current.HostNick}
	}

	noContest := false
	updated, err := s.gameRepo.UpdateGame(ctx, &gameRepo.UpdateGameInput{
		GameID: current.ID,
		Mutate: func(g *models.Game) error {
			if g.Status == models.GameStatusEnded {
				return errStale
			}

			noContest = g.Status == models.GameStatusLobby

			if g.ActiveClue != nil {
				g.ActiveClue.Active = false
			}

			g.Status = models.GameStatusEnded
			g.UpdatedAt = s.clock.Now()
			return nil
		},
	})
	if err != nil {
		if errors.Is(err, errStale) {
			return nil, ErrNoGame
		}

		return nil, err
	}

	message, err := s.championMessage(ctx, updated, noContest)
	if err != nil {
		return nil, err
	}

	return &EndGameOutput{
		Game:    updated,
		Message: message,
	}, nil
}

// expireGame is the whole-game safety timer callback. It ends the game if
// it is somehow still running.
func (s *service) expireGame(gameID string) {
	ctx := context.Background()

	noContest := false
	updated, err := s.gameRepo.UpdateGame(ctx, &gameRepo.UpdateGameInput{
		GameID: gameID,
		Mutate: func(g *models.Game) error {
			if g.Status == models.GameStatusEnded {
				return errStale
			}

			noContest = g.Status == models.GameStatusLobby

			if g.ActiveClue != nil {
				g.ActiveClue.Active = false
			}

			g.Status = models.GameStatusEnded
			g.UpdatedAt = s.clock.Now()
			return nil
		},
	})
	if err != nil {
		if !errors.Is(err, errStale) {
			logging.Error("failed to expire game", "gameID", gameID, "error", err)
		}
		return
	}

	message, err := s.championMessage(ctx, updated, noContest)
	if err != nil {
		logging.Error("failed to build expiry message", "gameID", gameID, "error", err)
		return
	}

	s.notifier.Announce(updated.Channel, fmt.Sprintf("time! %s", message))
}

// championMessage builds the closing line from the final scores
func (s *service) championMessage(ctx context.Context, g *models.Game, noContest bool) (string, error) {
	winners, best := winningScores(g)

	out, err := s.messaging.GetChampionMessage(ctx, &messaging.GetChampionMessageInput{
		Nicks:     winners,
		Score:     best,
		NoContest: noContest || len(winners) == 0,
	})
	if err != nil {
		return "", err
	}

	return out.Message, nil
}

// winningScores returns the nicks holding the top score, sorted, and the
// score itself
func winningScores(g *models.Game) ([]string, int) {
	if len(g.Scores) == 0 {
		return nil, 0
	}

	best := 0
	first := true
	for _, score := range g.Scores {
		if first || score > best {
			best = score
			first = false
		}
	}

	var winners []string
	for nick, score := range g.Scores {
		if score == best {
			winners = append(winners, nick)
		}
	}
	sort.Strings(winners)

	return winners, best
}

func (s *service) currentGame(ctx context.Context, channel string) (*models.Game, error) {
	current, err := s.gameRepo.GetCurrentGame(ctx, &gameRepo.GetCurrentGameInput{
		Channel: channel,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrNoGame
		}

		return nil, err
	}

	return current, nil
}
