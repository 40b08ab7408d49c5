package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/trebek/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	entryKeyPrefix   = "ledger_entry:"
	channelKeyPrefix = "ledger:"
)

// Config holds configuration for the Redis ledger repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed ledger repository
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

// AddEntry appends an entry to the ledger. Entries are indexed per channel
// in a sorted set scored by timestamp so window queries are range reads.
func (r *redisRepository) AddEntry(ctx context.Context, input *AddEntryInput) error {
	if input == nil || input.Entry == nil {
		return errors.New("input and entry cannot be nil")
	}

	entry := input.Entry

	if entry.ID == "" {
		return errors.New("ledger entry ID cannot be empty")
	}

	entryJSON, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger entry: %w", err)
	}

	pipe := r.client.Pipeline()

	entryKey := fmt.Sprintf("%s%s", entryKeyPrefix, entry.ID)
	pipe.Set(ctx, entryKey, entryJSON, 0)

	channelKey := fmt.Sprintf("%s%s", channelKeyPrefix, entry.Channel)
	pipe.ZAdd(ctx, channelKey, redis.Z{
		Score:  float64(entry.Timestamp.Unix()),
		Member: entry.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add ledger entry: %w", err)
	}

	return nil
}

// GetEntries retrieves a channel's entries from Redis
func (r *redisRepository) GetEntries(ctx context.Context, input *GetEntriesInput) (*GetEntriesOutput, error) {
	if input == nil || input.Channel == "" {
		return nil, errors.New("input and channel cannot be empty")
	}

	min := "-inf"
	if input.Since != nil {
		min = strconv.FormatInt(input.Since.Unix(), 10)
	}

	channelKey := fmt.Sprintf("%s%s", channelKeyPrefix, input.Channel)
	entryIDs, err := r.client.ZRangeByScore(ctx, channelKey, &redis.ZRangeBy{
		Min: min,
		Max: "+inf",
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger entry IDs: %w", err)
	}

	if len(entryIDs) == 0 {
		return &GetEntriesOutput{
			Entries: []*models.LedgerEntry{},
		}, nil
	}

	pipe := r.client.Pipeline()
	entryCommands := make([]*redis.StringCmd, 0, len(entryIDs))

	for _, entryID := range entryIDs {
		entryKey := fmt.Sprintf("%s%s", entryKeyPrefix, entryID)
		entryCommands = append(entryCommands, pipe.Get(ctx, entryKey))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get ledger entries: %w", err)
	}

	entries := make([]*models.LedgerEntry, 0, len(entryIDs))
	for _, cmd := range entryCommands {
		entryJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Entry removed between index read and fetch
				continue
			}
			return nil, fmt.Errorf("failed to get ledger entry: %w", err)
		}

		var entry models.LedgerEntry
		if err := json.Unmarshal([]byte(entryJSON), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ledger entry: %w", err)
		}

		entries = append(entries, &entry)
	}

	return &GetEntriesOutput{
		Entries: entries,
	}, nil
}
