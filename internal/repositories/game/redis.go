package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/trebek/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	gameKeyPrefix    = "game:"
	channelKeyPrefix = "game_channel:"

	// maxTxRetries bounds optimistic transaction retries under contention
	maxTxRetries = 5
)

// ErrGameNotFound is returned when a game is not found
var ErrGameNotFound = errors.New("game not found")

// ErrGameAlreadyExists is returned when the channel already has a non-ended game
var ErrGameAlreadyExists = errors.New("channel already has a game")

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed game repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// CreateGame persists a new game. The channel's current-game index is
// claimed with SETNX, which keeps the one-game-per-channel invariant under
// racing "game new" commands.
func (r *redisRepository) CreateGame(ctx context.Context, input *CreateGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	gameJSON, err := json.Marshal(input.Game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	channelKey := fmt.Sprintf("%s%s", channelKeyPrefix, input.Game.Channel)
	claimed, err := r.client.SetNX(ctx, channelKey, input.Game.ID, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to claim channel game slot: %w", err)
	}

	if !claimed {
		return ErrGameAlreadyExists
	}

	gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, input.Game.ID)
	if err := r.client.Set(ctx, gameKey, gameJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

// GetGame retrieves a game by ID from Redis
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	return r.getGame(ctx, input.GameID)
}

// GetCurrentGame retrieves the channel's non-ended game from Redis
func (r *redisRepository) GetCurrentGame(ctx context.Context, input *GetCurrentGameInput) (*models.Game, error) {
	if input == nil || input.Channel == "" {
		return nil, errors.New("input and channel cannot be empty")
	}

	channelKey := fmt.Sprintf("%s%s", channelKeyPrefix, input.Channel)
	gameID, err := r.client.Get(ctx, channelKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game ID for channel: %w", err)
	}

	return r.getGame(ctx, gameID)
}

// UpdateGame applies a mutation under an optimistic transaction on the game
// key. The game is re-read inside the transaction, so the mutation always
// sees the latest state; a concurrent write aborts the transaction and the
// read-mutate-write cycle is retried.
func (r *redisRepository) UpdateGame(ctx context.Context, input *UpdateGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	if input.Mutate == nil {
		return nil, errors.New("mutate function cannot be nil")
	}

	gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, input.GameID)

	var updated *models.Game

	txn := func(tx *redis.Tx) error {
		gameJSON, err := tx.Get(ctx, gameKey).Result()
		if err != nil {
			if err == redis.Nil {
				return ErrGameNotFound
			}
			return err
		}

		var game models.Game
		if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
			return fmt.Errorf("failed to unmarshal game: %w", err)
		}

		if err := input.Mutate(&game); err != nil {
			return err
		}

		updatedJSON, err := json.Marshal(&game)
		if err != nil {
			return fmt.Errorf("failed to marshal game: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, gameKey, updatedJSON, 0)
			if game.Status == models.GameStatusEnded {
				channelKey := fmt.Sprintf("%s%s", channelKeyPrefix, game.Channel)
				pipe.Del(ctx, channelKey)
			}
			return nil
		})
		if err != nil {
			return err
		}

		updated = &game
		return nil
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, txn, gameKey)
		if err == nil {
			return updated, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			// Game changed under us, re-read and retry
			continue
		}
		return nil, err
	}

	return nil, errors.New("game update contention, retries exhausted")
}

func (r *redisRepository) getGame(ctx context.Context, gameID string) (*models.Game, error) {
	gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, gameID)
	gameJSON, err := r.client.Get(ctx, gameKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	var game models.Game
	if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}
