package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/trebek/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) addEntry(id, nick string, value int, at time.Time) {
	err := s.repo.AddEntry(context.Background(), &AddEntryInput{
		Entry: &models.LedgerEntry{
			ID:        id,
			Channel:   "test-channel",
			Nick:      nick,
			Value:     value,
			Timestamp: at,
		},
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestAddAndGetEntries() {
	s.addEntry("entry-1", "alice", 400, s.testNow)
	s.addEntry("entry-2", "bob", 200, s.testNow.Add(time.Hour))

	output, err := s.repo.GetEntries(context.Background(), &GetEntriesInput{
		Channel: "test-channel",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Entries, 2)

	s.Equal("alice", output.Entries[0].Nick)
	s.Equal(400, output.Entries[0].Value)
	s.Equal("bob", output.Entries[1].Nick)
}

func (s *RedisRepositoryTestSuite) TestGetEntriesSince() {
	s.addEntry("entry-old", "alice", 400, s.testNow.Add(-10*24*time.Hour))
	s.addEntry("entry-new", "bob", 200, s.testNow.Add(-time.Hour))

	since := s.testNow.Add(-7 * 24 * time.Hour)
	output, err := s.repo.GetEntries(context.Background(), &GetEntriesInput{
		Channel: "test-channel",
		Since:   &since,
	})
	s.Require().NoError(err)
	s.Require().Len(output.Entries, 1)
	s.Equal("bob", output.Entries[0].Nick)
}

func (s *RedisRepositoryTestSuite) TestGetEntriesEmptyChannel() {
	output, err := s.repo.GetEntries(context.Background(), &GetEntriesInput{
		Channel: "test-channel",
	})
	s.Require().NoError(err)
	s.Empty(output.Entries)
}
