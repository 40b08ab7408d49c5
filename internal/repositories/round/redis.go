package round

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
	roundKeyPrefix  = "round:"
	activeKeyPrefix = "round_active:"

	// maxTxRetries bounds optimistic transaction retries under contention
	maxTxRetries = 5
)

// ErrRoundNotFound is returned when a round is not found
var ErrRoundNotFound = errors.New("round not found")

// ErrActiveRoundExists is returned when the channel already has an active round
var ErrActiveRoundExists = errors.New("channel already has an active round")

// Config holds configuration for the Redis round repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed round repository
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

// CreateRound persists a new active round. The channel's active-round index
// is claimed with SETNX, which guarantees at most one active round per
// channel no matter how requests interleave.
func (r *redisRepository) CreateRound(ctx context.Context, input *CreateRoundInput) error {
	if input == nil || input.Round == nil {
		return errors.New("input and round cannot be nil")
	}

	roundJSON, err := json.Marshal(input.Round)
	if err != nil {
		return fmt.Errorf("failed to marshal round: %w", err)
	}

	activeKey := fmt.Sprintf("%s%s", activeKeyPrefix, input.Round.Channel)
	claimed, err := r.client.SetNX(ctx, activeKey, input.Round.ID, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to claim active round slot: %w", err)
	}

	if !claimed {
		return ErrActiveRoundExists
	}

	roundKey := fmt.Sprintf("%s%s", roundKeyPrefix, input.Round.ID)
	if err := r.client.Set(ctx, roundKey, roundJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save round: %w", err)
	}

	return nil
}

// GetRound retrieves a round by ID from Redis
func (r *redisRepository) GetRound(ctx context.Context, input *GetRoundInput) (*models.Round, error) {
	if input == nil || input.RoundID == "" {
		return nil, errors.New("input and round ID cannot be empty")
	}

	return r.getRound(ctx, input.RoundID)
}

// GetActiveRound retrieves the channel's active round from Redis
func (r *redisRepository) GetActiveRound(ctx context.Context, input *GetActiveRoundInput) (*models.Round, error) {
	if input == nil || input.Channel == "" {
		return nil, errors.New("input and channel cannot be empty")
	}

	activeKey := fmt.Sprintf("%s%s", activeKeyPrefix, input.Channel)
	roundID, err := r.client.Get(ctx, activeKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRoundNotFound
		}
		return nil, fmt.Errorf("failed to get active round ID: %w", err)
	}

	return r.getRound(ctx, roundID)
}

// ResolveRound conditionally deactivates a round. It runs as an optimistic
// transaction on the round key: the round is re-read, and only a round still
// marked active is flipped. A lost race reports Won=false instead of an
// error.
func (r *redisRepository) ResolveRound(ctx context.Context, input *ResolveRoundInput) (*ResolveRoundOutput, error) {
	if input == nil || input.RoundID == "" {
		return nil, errors.New("input and round ID cannot be empty")
	}

	roundKey := fmt.Sprintf("%s%s", roundKeyPrefix, input.RoundID)

	var output *ResolveRoundOutput

	txn := func(tx *redis.Tx) error {
		roundJSON, err := tx.Get(ctx, roundKey).Result()
		if err != nil {
			if err == redis.Nil {
				return ErrRoundNotFound
			}
			return err
		}

		var round models.Round
		if err := json.Unmarshal([]byte(roundJSON), &round); err != nil {
			return fmt.Errorf("failed to unmarshal round: %w", err)
		}

		if !round.Active {
			// Someone else resolved it first
			output = &ResolveRoundOutput{Won: false, Round: &round}
			return nil
		}

		round.Active = false
		if input.AnsweredBy != "" {
			round.AnsweredBy = input.AnsweredBy
			answeredAt := input.AnsweredAt
			round.AnsweredAt = &answeredAt
		}

		updatedJSON, err := json.Marshal(&round)
		if err != nil {
			return fmt.Errorf("failed to marshal round: %w", err)
		}

		activeKey := fmt.Sprintf("%s%s", activeKeyPrefix, round.Channel)

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, roundKey, updatedJSON, 0)
			pipe.Del(ctx, activeKey)
			return nil
		})
		if err != nil {
			return err
		}

		output = &ResolveRoundOutput{Won: true, Round: &round}
		return nil
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, txn, roundKey)
		if err == nil {
			return output, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			// Round changed under us, re-read and retry
			continue
		}
		return nil, err
	}

	return nil, errors.New("round resolution contention, retries exhausted")
}

// DeactivateAll force-resolves any active round for a channel
func (r *redisRepository) DeactivateAll(ctx context.Context, input *DeactivateAllInput) error {
	if input == nil || input.Channel == "" {
		return errors.New("input and channel cannot be empty")
	}

	activeKey := fmt.Sprintf("%s%s", activeKeyPrefix, input.Channel)
	roundID, err := r.client.Get(ctx, activeKey).Result()
	if err != nil {
		if err == redis.Nil {
			// Nothing active
			return nil
		}
		return fmt.Errorf("failed to get active round ID: %w", err)
	}

	_, err = r.ResolveRound(ctx, &ResolveRoundInput{RoundID: roundID})
	return err
}

func (r *redisRepository) getRound(ctx context.Context, roundID string) (*models.Round, error) {
	roundKey := fmt.Sprintf("%s%s", roundKeyPrefix, roundID)
	roundJSON, err := r.client.Get(ctx, roundKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRoundNotFound
		}
		return nil, fmt.Errorf("failed to get round: %w", err)
	}

	var round models.Round
	if err := json.Unmarshal([]byte(roundJSON), &round); err != nil {
		return nil, fmt.Errorf("failed to unmarshal round: %w", err)
	}

	return &round, nil
}
