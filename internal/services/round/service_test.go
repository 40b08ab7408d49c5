package round

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/trebek/internal/answers"
	clockMocks "github.com/KirkDiggler/trebek/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/trebek/internal/common/uuid/mocks"
	"github.com/KirkDiggler/trebek/internal/models"
	ledgerRepo "github.com/KirkDiggler/trebek/internal/repositories/ledger"
	ledgerMocks "github.com/KirkDiggler/trebek/internal/repositories/ledger/mocks"
	roundRepo "github.com/KirkDiggler/trebek/internal/repositories/round"
	roundMocks "github.com/KirkDiggler/trebek/internal/repositories/round/mocks"
	"github.com/KirkDiggler/trebek/internal/rng"
	"github.com/KirkDiggler/trebek/internal/services/messaging"
	timerMocks "github.com/KirkDiggler/trebek/internal/timer/mocks"
	"github.com/KirkDiggler/trebek/internal/trivia"
	triviaMocks "github.com/KirkDiggler/trebek/internal/trivia/mocks"
)

// notifierRecorder captures engine-initiated announcements
type notifierRecorder struct {
	channels []string
	messages []string
}

func (n *notifierRecorder) Announce(channel string, message string) {
	n.channels = append(n.channels, channel)
	n.messages = append(n.messages, message)
}

type RoundServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockRoundRepo *roundMocks.MockRepository
	mockLedger    *ledgerMocks.MockRepository
	mockTrivia    *triviaMocks.MockClient
	mockScheduler *timerMocks.MockScheduler
	mockClock     *clockMocks.MockClock
	mockUUID      *uuidMocks.MockUUID
	notifier      *notifierRecorder
	service       Service
	ctx           context.Context

	testTime    time.Time
	testRoundID string
	testChannel string

	activeRound *models.Round
}

func (s *RoundServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoundRepo = roundMocks.NewMockRepository(s.mockCtrl)
	s.mockLedger = ledgerMocks.NewMockRepository(s.mockCtrl)
	s.mockTrivia = triviaMocks.NewMockClient(s.mockCtrl)
	s.mockScheduler = timerMocks.NewMockScheduler(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.notifier = &notifierRecorder{}
	s.ctx = context.Background()

	s.testTime = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	s.testRoundID = "test-round-id"
	s.testChannel = "test-channel"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return(s.testRoundID).AnyTimes()

	s.activeRound = &models.Round{
		ID:        s.testRoundID,
		Channel:   s.testChannel,
		Category:  "GEOGRAPHY",
		Question:  "The tallest mountain on Earth",
		Answer:    "Mount Everest",
		Value:     400,
		Active:    true,
		CreatedAt: s.testTime,
	}

	msgService, err := messaging.NewService(&messaging.ServiceConfig{
		Rand: rng.New(&rng.Config{Seed: 7}),
	})
	s.Require().NoError(err)

	svc, err := NewService(&ServiceConfig{
		RoundRepo:    s.mockRoundRepo,
		LedgerRepo:   s.mockLedger,
		TriviaClient: s.mockTrivia,
		Matcher:      answers.New(nil),
		Messaging:    msgService,
		Notifier:     s.notifier,
		Scheduler:    s.mockScheduler,
		AnswerDelay:  30 * time.Second,
		Clock:        s.mockClock,
		UUID:         s.mockUUID,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *RoundServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *RoundServiceTestSuite) expectNoActiveRound() {
	s.mockRoundRepo.EXPECT().
		GetActiveRound(s.ctx, &roundRepo.GetActiveRoundInput{Channel: s.testChannel}).
		Return(nil, roundRepo.ErrRoundNotFound)
}

func (s *RoundServiceTestSuite) TestAskCreatesRound() {
	s.expectNoActiveRound()

	s.mockTrivia.EXPECT().FetchRandomClue(s.ctx).Return(&trivia.Clue{
		Category: "GEOGRAPHY",
		Question: "The tallest mountain on Earth",
		Answer:   "Mount Everest",
		Value:    400,
	}, nil)

	s.mockRoundRepo.EXPECT().
		CreateRound(s.ctx, &roundRepo.CreateRoundInput{Round: s.activeRound}).
		Return(nil)

	s.mockScheduler.EXPECT().Schedule(30*time.Second, gomock.Any())

	out, err := s.service.Ask(s.ctx, &AskInput{Channel: s.testChannel})
	s.Require().NoError(err)
	s.False(out.AlreadyActive)
	s.Equal(s.testRoundID, out.Round.ID)
	s.Contains(out.Message, "The tallest mountain on Earth")
	s.Contains(out.Message, "GEOGRAPHY")
	s.Contains(out.Message, "$400")
}

func (s *RoundServiceTestSuite) TestAskReshowsActiveRound() {
	s.mockRoundRepo.EXPECT().
		GetActiveRound(s.ctx, &roundRepo.GetActiveRoundInput{Channel: s.testChannel}).
		Return(s.activeRound, nil)

	out, err := s.service.Ask(s.ctx, &AskInput{Channel: s.testChannel})
	s.Require().NoError(err)
	s.True(out.AlreadyActive)
	s.Equal(s.activeRound, out.Round)
	s.Contains(out.Message, "The tallest mountain on Earth")
}

func (s *RoundServiceTestSuite) TestAskSkipsUnusableClues() {
	s.expectNoActiveRound()

	gomock.InOrder(
		s.mockTrivia.EXPECT().FetchRandomClue(s.ctx).Return(&trivia.Clue{
			Question: "A clue with no answer",
		}, nil),
		s.mockTrivia.EXPECT().FetchRandomClue(s.ctx).Return(&trivia.Clue{
			Category: "GEOGRAPHY",
			Question: "The tallest mountain on Earth",
			Answer:   "Mount Everest",
			Value:    400,
		}, nil),
	)

	s.mockRoundRepo.EXPECT().CreateRound(s.ctx, gomock.Any()).Return(nil)
	s.mockScheduler.EXPECT().Schedule(30*time.Second, gomock.Any())

	out, err := s.service.Ask(s.ctx, &AskInput{Channel: s.testChannel})
	s.Require().NoError(err)
	s.Equal("Mount Everest", out.Round.Answer)
}

func (s *RoundServiceTestSuite) TestAskStripsLinksAndDefaultsValue() {
	s.expectNoActiveRound()

	s.mockTrivia.EXPECT().FetchRandomClue(s.ctx).Return(&trivia.Clue{
		Category: "POTPOURRI",
		Question: "Seen here http://example.com/img.jpg is a mystery object",
		Answer:   "a whisk",
	}, nil)

	var created *models.Round
	s.mockRoundRepo.EXPECT().
		CreateRound(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *roundRepo.CreateRoundInput) error {
			created = input.Round
			return nil
		})
	s.mockScheduler.EXPECT().Schedule(30*time.Second, gomock.Any())

	out, err := s.service.Ask(s.ctx, &AskInput{Channel: s.testChannel})
	s.Require().NoError(err)
	s.Equal("Seen here is a mystery object", created.Question)
	s.Equal([]string{"http://example.com/img.jpg"}, created.Links)
	s.Equal(200, created.Value)
	s.Contains(out.Message, "http://example.com/img.jpg\n")
}

func (s *RoundServiceTestSuite) TestAskLosesCreationRace() {
	s.expectNoActiveRound()

	s.mockTrivia.EXPECT().FetchRandomClue(s.ctx).Return(&trivia.Clue{
		Category: "GEOGRAPHY",
		Question: "The tallest mountain on Earth",
		Answer:   "Mount Everest",
		Value:    400,
	}, nil)

	s.mockRoundRepo.EXPECT().
		CreateRound(s.ctx, gomock.Any()).
		Return(roundRepo.ErrActiveRoundExists)

	winner := &models.Round{ID: "other-round", Channel: s.testChannel, Question: "other question", Active: true}
	s.mockRoundRepo.EXPECT().
		GetActiveRound(s.ctx, &roundRepo.GetActiveRoundInput{Channel: s.testChannel}).
		Return(winner, nil)

	out, err := s.service.Ask(s.ctx, &AskInput{Channel: s.testChannel})
	s.Require().NoError(err)
	s.True(out.AlreadyActive)
	s.Equal("other-round", out.Round.ID)
}

func (s *RoundServiceTestSuite) TestAskProviderDown() {
	s.expectNoActiveRound()

	s.mockTrivia.EXPECT().FetchRandomClue(s.ctx).Return(nil, errors.New("connection refused"))

	_, err := s.service.Ask(s.ctx, &AskInput{Channel: s.testChannel})
	s.Error(err)
}

func (s *RoundServiceTestSuite) TestGuessCorrect() {
	s.mockRoundRepo.EXPECT().
		GetActiveRound(s.ctx, &roundRepo.GetActiveRoundInput{Channel: s.testChannel}).
		Return(s.activeRound, nil)

	resolved := *s.activeRound
	resolved.Active = false
	resolved.AnsweredBy = "alice"

	s.mockRoundRepo.EXPECT().
		ResolveRound(s.ctx, &roundRepo.ResolveRoundInput{
			RoundID:    s.testRoundID,
			AnsweredBy: "alice",
			AnsweredAt: s.testTime,
		}).
		Return(&roundRepo.ResolveRoundOutput{Won: true, Round: &resolved}, nil)

	s.mockLedger.EXPECT().
		AddEntry(s.ctx, &ledgerRepo.AddEntryInput{
			Entry: &models.LedgerEntry{
				ID:        s.testRoundID,
				Channel:   s.testChannel,
				Nick:      "alice",
				Value:     400,
				Timestamp: s.testTime,
			},
		}).
		Return(nil)

	out, err := s.service.Guess(s.ctx, &GuessInput{
		Channel: s.testChannel,
		Nick:    "alice",
		Tokens:  []string{"mount", "everest"},
	})
	s.Require().NoError(err)
	s.Equal(GuessOutcomeCorrect, out.Outcome)
	s.Contains(out.Message, "alice")
	s.Contains(out.Message, "$400")
}

func (s *RoundServiceTestSuite) TestGuessLosesResolutionRace() {
	s.mockRoundRepo.EXPECT().
		GetActiveRound(s.ctx, gomock.Any()).
		Return(s.activeRound, nil)

	resolved := *s.activeRound
	resolved.Active = false
	resolved.AnsweredBy = "bob"

	s.mockRoundRepo.EXPECT().
		ResolveRound(s.ctx, gomock.Any()).
		Return(&roundRepo.ResolveRoundOutput{Won: false, Round: &resolved}, nil)

	out, err := s.service.Guess(s.ctx, &GuessInput{
		Channel: s.testChannel,
		Nick:    "alice",
		Tokens:  []string{"mount", "everest"},
	})
	s.Require().NoError(err)
	s.Equal(GuessOutcomeIgnored, out.Outcome)
	s.Empty(out.Message)
}

func (s *RoundServiceTestSuite) TestGuessPartial() {
	s.mockRoundRepo.EXPECT().
		GetActiveRound(s.ctx, gomock.Any()).
		Return(s.activeRound, nil)

	out, err := s.service.Guess(s.ctx, &GuessInput{
		Channel: s.testChannel,
		Nick:    "alice",
		Tokens:  []string{"everest"},
	})
	s.Require().NoError(err)
	s.Equal(GuessOutcomePartial, out.Outcome)
	s.Contains(out.Message, "more specific")
}

func (s *RoundServiceTestSuite) TestGuessWrongIsIgnored() {
	s.mockRoundRepo.EXPECT().
		GetActiveRound(s.ctx, gomock.Any()).
		Return(s.activeRound, nil)

	out, err := s.service.Guess(s.ctx, &GuessInput{
		Channel: s.testChannel,
		Nick:    "alice",
		Tokens:  []string{"kilimanjaro"},
	})
	s.Require().NoError(err)
	s.Equal(GuessOutcomeIgnored, out.Outcome)
	s.Empty(out.Message)
}

func (s *RoundServiceTestSuite) TestGuessWithoutActiveRound() {
	s.expectNoActiveRound()

	out, err := s.service.Guess(s.ctx, &GuessInput{
		Channel: s.testChannel,
		Nick:    "alice",
		Tokens:  []string{"anything"},
	})
	s.Require().NoError(err)
	s.Equal(GuessOutcomeIgnored, out.Outcome)
}

func (s *RoundServiceTestSuite) TestRevealAnnouncesOnTimeout() {
	s.expectNoActiveRound()

	s.mockTrivia.EXPECT().FetchRandomClue(s.ctx).Return(&trivia.Clue{
		Category: "GEOGRAPHY",
		Question: "The tallest mountain on Earth",
		Answer:   "Mount Everest",
		Value:    400,
	}, nil)
	s.mockRoundRepo.EXPECT().CreateRound(s.ctx, gomock.Any()).Return(nil)

	var revealFn func()
	s.mockScheduler.EXPECT().
		Schedule(30*time.Second, gomock.Any()).
		Do(func(_ time.Duration, fn func()) {
			revealFn = fn
		})

	_, err := s.service.Ask(s.ctx, &AskInput{Channel: s.testChannel})
	s.Require().NoError(err)
	s.Require().NotNil(revealFn)

	expired := *s.activeRound
	expired.Active = false

	s.mockRoundRepo.EXPECT().
		ResolveRound(gomock.Any(), &roundRepo.ResolveRoundInput{RoundID: s.testRoundID}).
		Return(&roundRepo.ResolveRoundOutput{Won: true, Round: &expired}, nil)

	revealFn()

	s.Require().Len(s.notifier.messages, 1)
	s.Equal(s.testChannel, s.notifier.channels[0])
	s.Equal("the correct answer is: Mount Everest", s.notifier.messages[0])
}

func (s *RoundServiceTestSuite) TestRevealStaysQuietWhenAnswered() {
	s.expectNoActiveRound()

	s.mockTrivia.EXPECT().FetchRandomClue(s.ctx).Return(&trivia.Clue{
		Category: "GEOGRAPHY",
		Question: "The tallest mountain on Earth",
		Answer:   "Mount Everest",
		Value:    400,
	}, nil)
	s.mockRoundRepo.EXPECT().CreateRound(s.ctx, gomock.Any()).Return(nil)

	var revealFn func()
	s.mockScheduler.EXPECT().
		Schedule(30*time.Second, gomock.Any()).
		Do(func(_ time.Duration, fn func()) {
			revealFn = fn
		})

	_, err := s.service.Ask(s.ctx, &AskInput{Channel: s.testChannel})
	s.Require().NoError(err)

	answered := *s.activeRound
	answered.Active = false
	answered.AnsweredBy = "alice"

	s.mockRoundRepo.EXPECT().
		ResolveRound(gomock.Any(), gomock.Any()).
		Return(&roundRepo.ResolveRoundOutput{Won: false, Round: &answered}, nil)

	revealFn()

	s.Empty(s.notifier.messages)
}

func (s *RoundServiceTestSuite) TestReset() {
	s.mockRoundRepo.EXPECT().
		DeactivateAll(s.ctx, &roundRepo.DeactivateAllInput{Channel: s.testChannel}).
		Return(nil)

	_, err := s.service.Reset(s.ctx, &ResetInput{Channel: s.testChannel})
	s.NoError(err)
}

func TestRoundService(t *testing.T) {
	suite.Run(t, new(RoundServiceTestSuite))
}
