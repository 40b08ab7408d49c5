package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/trebek/internal/answers"
	"github.com/KirkDiggler/trebek/internal/common/logging"
	"github.com/KirkDiggler/trebek/internal/config"
	"github.com/KirkDiggler/trebek/internal/handlers/discord"
	gameRepo "github.com/KirkDiggler/trebek/internal/repositories/game"
	ledgerRepo "github.com/KirkDiggler/trebek/internal/repositories/ledger"
	roundRepo "github.com/KirkDiggler/trebek/internal/repositories/round"
	gameService "github.com/KirkDiggler/trebek/internal/services/game"
	leaderboardService "github.com/KirkDiggler/trebek/internal/services/leaderboard"
	messagingService "github.com/KirkDiggler/trebek/internal/services/messaging"
	roundService "github.com/KirkDiggler/trebek/internal/services/round"
	"github.com/KirkDiggler/trebek/internal/timer"
	"github.com/KirkDiggler/trebek/internal/trivia"
)

func main() {
	// A missing .env is fine; the environment may be set directly
	_ = godotenv.Load()

	logging.Init()
	defer logging.Sync()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("failed to load config", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logging.Fatal("failed to connect to Redis", err)
	}

	roundRepository, err := roundRepo.NewRedis(&roundRepo.Config{RedisClient: redisClient})
	if err != nil {
		logging.Fatal("failed to create round repository", err)
	}

	gameRepository, err := gameRepo.NewRedis(&gameRepo.Config{RedisClient: redisClient})
	if err != nil {
		logging.Fatal("failed to create game repository", err)
	}

	ledgerRepository, err := ledgerRepo.NewRedis(&ledgerRepo.Config{RedisClient: redisClient})
	if err != nil {
		logging.Fatal("failed to create ledger repository", err)
	}

	triviaClient, err := trivia.NewJService(&trivia.Config{BaseURL: cfg.ProviderBaseURL})
	if err != nil {
		logging.Fatal("failed to create trivia client", err)
	}

	matcher := answers.New(&answers.Config{
		SimilarityThreshold: cfg.SimilarityThreshold,
		CoverageThreshold:   cfg.CoverageThreshold,
	})

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		logging.Fatal("failed to create Discord session", err)
	}

	announcer := discord.NewAnnouncer(session)
	scheduler := timer.New()

	messaging, err := messagingService.NewService(&messagingService.ServiceConfig{})
	if err != nil {
		logging.Fatal("failed to create messaging service", err)
	}

	roundSvc, err := roundService.NewService(&roundService.ServiceConfig{
		RoundRepo:    roundRepository,
		LedgerRepo:   ledgerRepository,
		TriviaClient: triviaClient,
		Matcher:      matcher,
		Messaging:    messaging,
		Notifier:     announcer,
		Scheduler:    scheduler,
		AnswerDelay:  cfg.AnswerDelay,
	})
	if err != nil {
		logging.Fatal("failed to create round service", err)
	}

	gameSvc, err := gameService.NewService(&gameService.ServiceConfig{
		GameRepo:           gameRepository,
		TriviaClient:       triviaClient,
		Matcher:            matcher,
		Messaging:          messaging,
		Notifier:           announcer,
		Scheduler:          scheduler,
		ClueDelay:          cfg.ClueDelay,
		GameTimeout:        cfg.GameTimeout,
		CategoryRetryDelay: cfg.CategoryRetryDelay,
	})
	if err != nil {
		logging.Fatal("failed to create game service", err)
	}

	leaderboardSvc, err := leaderboardService.NewService(&leaderboardService.ServiceConfig{
		LedgerRepo: ledgerRepository,
		Window:     cfg.ScoreWindow,
	})
	if err != nil {
		logging.Fatal("failed to create leaderboard service", err)
	}

	bot, err := discord.New(&discord.Config{
		Session:            session,
		Prefix:             cfg.CommandPrefix,
		RoundService:       roundSvc,
		GameService:        gameSvc,
		LeaderboardService: leaderboardSvc,
	})
	if err != nil {
		logging.Fatal("failed to create Discord bot", err)
	}

	if err := bot.Start(); err != nil {
		logging.Fatal("failed to start Discord bot", err)
	}

	logging.Info("bot is running", "prefix", cfg.CommandPrefix)

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		logging.Error("error stopping bot", "error", err)
	}

	logging.Info("bot has been shut down")
}
