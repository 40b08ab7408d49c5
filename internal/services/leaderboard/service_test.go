package leaderboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/KirkDiggler/trebek/internal/common/clock/mocks"
	"github.com/KirkDiggler/trebek/internal/models"
	ledgerRepo "github.com/KirkDiggler/trebek/internal/repositories/ledger"
	ledgerMocks "github.com/KirkDiggler/trebek/internal/repositories/ledger/mocks"
)

type LeaderboardTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockLedger *ledgerMocks.MockRepository
	mockClock  *clockMocks.MockClock
	service    Service
	ctx        context.Context

	testTime    time.Time
	testChannel string
}

func (s *LeaderboardTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockLedger = ledgerMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	s.testChannel = "test-channel"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := NewService(&ServiceConfig{
		LedgerRepo: s.mockLedger,
		Window:     7 * 24 * time.Hour,
		Clock:      s.mockClock,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *LeaderboardTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func entry(nick string, value int) *models.LedgerEntry {
	return &models.LedgerEntry{Nick: nick, Value: value}
}

func (s *LeaderboardTestSuite) expectEntries(since *time.Time, entries ...*models.LedgerEntry) {
	s.mockLedger.EXPECT().
		GetEntries(s.ctx, &ledgerRepo.GetEntriesInput{Channel: s.testChannel, Since: since}).
		Return(&ledgerRepo.GetEntriesOutput{Entries: entries}, nil)
}

func (s *LeaderboardTestSuite) TestRecentWindowAndOrdering() {
	cutoff := s.testTime.Add(-7 * 24 * time.Hour)
	s.expectEntries(&cutoff,
		entry("alice", 400), entry("bob", 200), entry("alice", 200),
		entry("carol", 600), entry("bob", 400),
	)

	out, err := s.service.GetLeaderboard(s.ctx, &GetLeaderboardInput{
		Channel: s.testChannel,
		Nick:    "alice",
	})
	s.Require().NoError(err)

	rows := out.Board.Rows
	s.Require().Len(rows, 3)
	s.Equal("carol", rows[0].Nick)
	s.Equal(600, rows[0].Total)
	s.Equal(1, rows[0].Rank)
	// all three tie at 600; nick descending orders carol, bob, alice
	s.Equal("bob", rows[1].Nick)
	s.Equal("alice", rows[2].Nick)

	s.Contains(out.Message, "Trivia Leaderboard (Past 7 Days)")
	s.Contains(out.Message, "1. carol - $600")
}

func (s *LeaderboardTestSuite) TestAllTimeUsesWiderCut() {
	s.expectEntries(nil,
		entry("a", 1000), entry("b", 800), entry("c", 600),
		entry("d", 400), entry("e", 200), entry("f", 100),
	)

	out, err := s.service.GetLeaderboard(s.ctx, &GetLeaderboardInput{
		Channel: s.testChannel,
		AllTime: true,
	})
	s.Require().NoError(err)
	s.Len(out.Board.Rows, 5)
	s.Contains(out.Message, "Hall of Game")
	s.NotContains(out.Message, "f - ")
}

func (s *LeaderboardTestSuite) TestRequesterOutsideCutGetsOwnLine() {
	cutoff := s.testTime.Add(-7 * 24 * time.Hour)
	s.expectEntries(&cutoff,
		entry("a", 1000), entry("b", 800), entry("c", 600), entry("dave", 200),
	)

	out, err := s.service.GetLeaderboard(s.ctx, &GetLeaderboardInput{
		Channel: s.testChannel,
		Nick:    "dave",
	})
	s.Require().NoError(err)

	rows := out.Board.Rows
	s.Require().Len(rows, 4)
	s.Equal("dave", rows[3].Nick)
	s.Equal(4, rows[3].Rank)
	s.Contains(out.Message, "4. dave - $200")
}

func (s *LeaderboardTestSuite) TestEmptyNicksSkipped() {
	cutoff := s.testTime.Add(-7 * 24 * time.Hour)
	s.expectEntries(&cutoff, entry("", 400), entry("alice", 200))

	out, err := s.service.GetLeaderboard(s.ctx, &GetLeaderboardInput{
		Channel: s.testChannel,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Board.Rows, 1)
	s.Equal("alice", out.Board.Rows[0].Nick)
}

func (s *LeaderboardTestSuite) TestEmptyBoard() {
	cutoff := s.testTime.Add(-7 * 24 * time.Hour)
	s.expectEntries(&cutoff)

	out, err := s.service.GetLeaderboard(s.ctx, &GetLeaderboardInput{
		Channel: s.testChannel,
	})
	s.Require().NoError(err)
	s.Empty(out.Board.Rows)
	s.Contains(out.Message, "nothing on the board yet")
}

func TestLeaderboard(t *testing.T) {
	suite.Run(t, new(LeaderboardTestSuite))
}
