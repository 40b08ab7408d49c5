package game

import (
	"context"
	"errors"
	"fmt"
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

func (s *RedisRepositoryTestSuite) testGame() *models.Game {
	board := make([]*models.BoardCategory, 0, models.BoardCategories)
	for i := 1; i <= models.BoardCategories; i++ {
		category := &models.BoardCategory{
			Key:   fmt.Sprintf("cat%d", i),
			Title: fmt.Sprintf("category %d", i),
		}
		for j := 0; j < models.CluesPerCategory; j++ {
			category.Clues = append(category.Clues, &models.BoardClue{
				Question: fmt.Sprintf("question %d-%d", i, j),
				Answer:   fmt.Sprintf("answer %d-%d", i, j),
				Value:    (j + 1) * 200,
				Active:   true,
			})
		}
		board = append(board, category)
	}

	return &models.Game{
		ID:        "test-game-id",
		Channel:   "test-channel",
		HostNick:  "alice",
		Status:    models.GameStatusLobby,
		Players:   []string{},
		Scores:    map[string]int{},
		Board:     board,
		CreatedAt: s.testNow,
		UpdatedAt: s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetCurrentGame() {
	err := s.repo.CreateGame(context.Background(), &CreateGameInput{
		Game: s.testGame(),
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetCurrentGame(context.Background(), &GetCurrentGameInput{
		Channel: "test-channel",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("test-game-id", retrieved.ID)
	s.Equal("alice", retrieved.HostNick)
	s.Equal(models.GameStatusLobby, retrieved.Status)
	s.Len(retrieved.Board, models.BoardCategories)
	s.Equal(models.BoardCategories*models.CluesPerCategory, retrieved.RemainingClues())
}

func (s *RedisRepositoryTestSuite) TestCreateSecondGameRejected() {
	err := s.repo.CreateGame(context.Background(), &CreateGameInput{
		Game: s.testGame(),
	})
	s.Require().NoError(err)

	second := s.testGame()
	second.ID = "another-game-id"

	err = s.repo.CreateGame(context.Background(), &CreateGameInput{
		Game: second,
	})
	s.Require().ErrorIs(err, ErrGameAlreadyExists)
}

func (s *RedisRepositoryTestSuite) TestGetCurrentGameNotFound() {
	_, err := s.repo.GetCurrentGame(context.Background(), &GetCurrentGameInput{
		Channel: "empty-channel",
	})
	s.Require().ErrorIs(err, ErrGameNotFound)
}

func (s *RedisRepositoryTestSuite) TestUpdateGame() {
	err := s.repo.CreateGame(context.Background(), &CreateGameInput{
		Game: s.testGame(),
	})
	s.Require().NoError(err)

	updated, err := s.repo.UpdateGame(context.Background(), &UpdateGameInput{
		GameID: "test-game-id",
		Mutate: func(game *models.Game) error {
			game.Players = append(game.Players, "bob")
			return nil
		},
	})
	s.Require().NoError(err)
	s.Equal([]string{"bob"}, updated.Players)

	// Mutation is persisted
	retrieved, err := s.repo.GetGame(context.Background(), &GetGameInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)
	s.Equal([]string{"bob"}, retrieved.Players)
}

func (s *RedisRepositoryTestSuite) TestUpdateGameAbort() {
	err := s.repo.CreateGame(context.Background(), &CreateGameInput{
		Game: s.testGame(),
	})
	s.Require().NoError(err)

	abortErr := errors.New("clue already played")

	_, err = s.repo.UpdateGame(context.Background(), &UpdateGameInput{
		GameID: "test-game-id",
		Mutate: func(game *models.Game) error {
			game.Players = append(game.Players, "bob")
			return abortErr
		},
	})
	s.Require().ErrorIs(err, abortErr)

	// An aborted mutation writes nothing
	retrieved, err := s.repo.GetGame(context.Background(), &GetGameInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)
	s.Empty(retrieved.Players)
}

func (s *RedisRepositoryTestSuite) TestUpdateGameEndedClearsChannelIndex() {
	err := s.repo.CreateGame(context.Background(), &CreateGameInput{
		Game: s.testGame(),
	})
	s.Require().NoError(err)

	_, err = s.repo.UpdateGame(context.Background(), &UpdateGameInput{
		GameID: "test-game-id",
		Mutate: func(game *models.Game) error {
			game.Status = models.GameStatusEnded
			return nil
		},
	})
	s.Require().NoError(err)

	// The channel is free for a new game
	_, err = s.repo.GetCurrentGame(context.Background(), &GetCurrentGameInput{
		Channel: "test-channel",
	})
	s.Require().ErrorIs(err, ErrGameNotFound)

	next := s.testGame()
	next.ID = "next-game-id"
	err = s.repo.CreateGame(context.Background(), &CreateGameInput{
		Game: next,
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestUpdateGameNotFound() {
	_, err := s.repo.UpdateGame(context.Background(), &UpdateGameInput{
		GameID: "missing-game-id",
		Mutate: func(game *models.Game) error {
			return nil
		},
	})
	s.Require().ErrorIs(err, ErrGameNotFound)
}
