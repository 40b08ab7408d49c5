package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds the runtime configuration for the bot
type Config struct {
	// Discord
	DiscordToken  string
	ApplicationID string
	GuildID       string

	// Redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Trivia provider
	ProviderBaseURL string

	// Command surface
	CommandPrefix string

	// Round timing
	AnswerDelay time.Duration

	// Board game timing
	ClueDelay          time.Duration
	GameTimeout        time.Duration
	CategoryRetryDelay time.Duration

	// Matcher thresholds
	SimilarityThreshold float64
	CoverageThreshold   float64

	// Leaderboard
	ScoreWindow time.Duration
}

// Load builds a Config from the environment
func Load() (*Config, error) {
	cfg := &Config{
		DiscordToken:  getEnv("DISCORD_TOKEN", ""),
		ApplicationID: getEnv("APPLICATION_ID", ""),
		GuildID:       getEnv("GUILD_ID", ""),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		ProviderBaseURL: getEnv("JSERVICE_URL", "http://jservice.io/api"),

		CommandPrefix: getEnv("COMMAND_PREFIX", "j"),

		AnswerDelay:        getEnvSeconds("ANSWER_DELAY_SECONDS", 30),
		ClueDelay:          getEnvSeconds("CLUE_DELAY_SECONDS", 10),
		GameTimeout:        getEnvSeconds("GAME_TIMEOUT_SECONDS", 1800),
		CategoryRetryDelay: getEnvSeconds("CATEGORY_RETRY_SECONDS", 3),

		SimilarityThreshold: getEnvFloat("SIMILARITY_THRESHOLD", 0.75),
		CoverageThreshold:   getEnvFloat("COVERAGE_THRESHOLD", 1.0),

		ScoreWindow: getEnvSeconds("SCORE_WINDOW_SECONDS", 7*24*3600),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks required fields and sane ranges
func (c *Config) Validate() error {
	if c.DiscordToken == "" {
		return errors.New("DISCORD_TOKEN is required")
	}

	if c.ProviderBaseURL == "" {
		return errors.New("JSERVICE_URL cannot be empty")
	}

	if c.SimilarityThreshold <= 0 || c.SimilarityThreshold > 1 {
		return errors.New("SIMILARITY_THRESHOLD must be in (0, 1]")
	}

	if c.CoverageThreshold <= 0 || c.CoverageThreshold > 1 {
		return errors.New("COVERAGE_THRESHOLD must be in (0, 1]")
	}

	if c.ClueDelay >= c.GameTimeout {
		return errors.New("CLUE_DELAY_SECONDS must be shorter than GAME_TIMEOUT_SECONDS")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvSeconds(key string, defaultSeconds int) time.Duration {
	return time.Duration(getEnvInt(key, defaultSeconds)) * time.Second
}
