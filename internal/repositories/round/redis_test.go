package round

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

func (s *RedisRepositoryTestSuite) testRound() *models.Round {
	return &models.Round{
		ID:        "test-round-id",
		Channel:   "test-channel",
		Category:  "american lit",
		Question:  "This 1925 novel features Nick Carraway",
		Answer:    "The Great Gatsby",
		Value:     400,
		Active:    true,
		CreatedAt: s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetActiveRound() {
	err := s.repo.CreateRound(context.Background(), &CreateRoundInput{
		Round: s.testRound(),
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetActiveRound(context.Background(), &GetActiveRoundInput{
		Channel: "test-channel",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("test-round-id", retrieved.ID)
	s.Equal("The Great Gatsby", retrieved.Answer)
	s.Equal(400, retrieved.Value)
	s.True(retrieved.Active)
}

func (s *RedisRepositoryTestSuite) TestCreateSecondActiveRoundRejected() {
	err := s.repo.CreateRound(context.Background(), &CreateRoundInput{
		Round: s.testRound(),
	})
	s.Require().NoError(err)

	second := s.testRound()
	second.ID = "another-round-id"

	err = s.repo.CreateRound(context.Background(), &CreateRoundInput{
		Round: second,
	})
	s.Require().ErrorIs(err, ErrActiveRoundExists)
}

func (s *RedisRepositoryTestSuite) TestGetActiveRoundNotFound() {
	_, err := s.repo.GetActiveRound(context.Background(), &GetActiveRoundInput{
		Channel: "empty-channel",
	})
	s.Require().ErrorIs(err, ErrRoundNotFound)
}

func (s *RedisRepositoryTestSuite) TestResolveRound() {
	err := s.repo.CreateRound(context.Background(), &CreateRoundInput{
		Round: s.testRound(),
	})
	s.Require().NoError(err)

	output, err := s.repo.ResolveRound(context.Background(), &ResolveRoundInput{
		RoundID:    "test-round-id",
		AnsweredBy: "alice",
		AnsweredAt: s.testNow,
	})
	s.Require().NoError(err)
	s.True(output.Won)
	s.False(output.Round.Active)
	s.Equal("alice", output.Round.AnsweredBy)
	s.Require().NotNil(output.Round.AnsweredAt)
	s.Equal(s.testNow.Unix(), output.Round.AnsweredAt.Unix())

	// The channel has no active round anymore
	_, err = s.repo.GetActiveRound(context.Background(), &GetActiveRoundInput{
		Channel: "test-channel",
	})
	s.Require().ErrorIs(err, ErrRoundNotFound)
}

func (s *RedisRepositoryTestSuite) TestResolveRoundOnlyFirstWins() {
	err := s.repo.CreateRound(context.Background(), &CreateRoundInput{
		Round: s.testRound(),
	})
	s.Require().NoError(err)

	first, err := s.repo.ResolveRound(context.Background(), &ResolveRoundInput{
		RoundID:    "test-round-id",
		AnsweredBy: "alice",
		AnsweredAt: s.testNow,
	})
	s.Require().NoError(err)
	s.True(first.Won)

	second, err := s.repo.ResolveRound(context.Background(), &ResolveRoundInput{
		RoundID:    "test-round-id",
		AnsweredBy: "bob",
		AnsweredAt: s.testNow.Add(time.Second),
	})
	s.Require().NoError(err)
	s.False(second.Won)

	// Only the first recorded winner persists
	round, err := s.repo.GetRound(context.Background(), &GetRoundInput{
		RoundID: "test-round-id",
	})
	s.Require().NoError(err)
	s.Equal("alice", round.AnsweredBy)
}

func (s *RedisRepositoryTestSuite) TestResolveRoundTimeout() {
	err := s.repo.CreateRound(context.Background(), &CreateRoundInput{
		Round: s.testRound(),
	})
	s.Require().NoError(err)

	// Timeout resolution carries no winner
	output, err := s.repo.ResolveRound(context.Background(), &ResolveRoundInput{
		RoundID: "test-round-id",
	})
	s.Require().NoError(err)
	s.True(output.Won)
	s.Empty(output.Round.AnsweredBy)
	s.Nil(output.Round.AnsweredAt)
}

func (s *RedisRepositoryTestSuite) TestDeactivateAll() {
	err := s.repo.CreateRound(context.Background(), &CreateRoundInput{
		Round: s.testRound(),
	})
	s.Require().NoError(err)

	err = s.repo.DeactivateAll(context.Background(), &DeactivateAllInput{
		Channel: "test-channel",
	})
	s.Require().NoError(err)

	_, err = s.repo.GetActiveRound(context.Background(), &GetActiveRoundInput{
		Channel: "test-channel",
	})
	s.Require().ErrorIs(err, ErrRoundNotFound)

	// A channel with nothing active is a no-op
	err = s.repo.DeactivateAll(context.Background(), &DeactivateAllInput{
		Channel: "test-channel",
	})
	s.Require().NoError(err)
}
