package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/KirkDiggler/trebek/internal/common/clock"
	"github.com/KirkDiggler/trebek/internal/models"
	ledgerRepo "github.com/KirkDiggler/trebek/internal/repositories/ledger"
	"github.com/KirkDiggler/trebek/internal/services/messaging"
)

const (
	recentTitle  = "Trivia Leaderboard (Past 7 Days)"
	allTimeTitle = "Trivia Leaderboard Hall of Game"

	recentCut  = 3
	allTimeCut = 5
)

// service implements the Service interface
type service struct {
	ledgerRepo ledgerRepo.Repository
	window     time.Duration
	clock      clock.Clock
}

// NewService creates a new leaderboard service
func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	if cfg.LedgerRepo == nil {
		return nil, errors.New("ledger repository is required")
	}

	window := cfg.Window
	if window <= 0 {
		window = 7 * 24 * time.Hour
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	return &service{
		ledgerRepo: cfg.LedgerRepo,
		window:     window,
		clock:      clk,
	}, nil
}

// GetLeaderboard sums the channel's ledger by nick and reports the top
// winners
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	var since *time.Time
	if !input.AllTime {
		cutoff := s.clock.Now().Add(-s.window)
		since = &cutoff
	}

	entries, err := s.ledgerRepo.GetEntries(ctx, &ledgerRepo.GetEntriesInput{
		Channel: input.Channel,
		Since:   since,
	})
	if err != nil {
		return nil, err
	}

	ranked := rankEntries(entries.Entries)

	cut := recentCut
	if input.AllTime {
		cut = allTimeCut
	}

	rows := ranked
	if len(rows) > cut {
		rows = rows[:cut]

		// The requester still gets their own line when they fall outside
		// the cut.
		if input.Nick != "" {
			for _, row := range ranked[cut:] {
				if row.Nick == input.Nick {
					rows = append(rows, row)
					break
				}
			}
		}
	}

	board := &models.Leaderboard{
		Channel: input.Channel,
		AllTime: input.AllTime,
		Rows:    rows,
	}

	return &GetLeaderboardOutput{
		Board:   board,
		Message: renderBoard(board),
	}, nil
}

// rankEntries groups the ledger by nick and orders the totals. Ties order
// by nick descending so ranks stay stable between requests.
func rankEntries(entries []*models.LedgerEntry) []*models.LeaderboardRow {
	totals := make(map[string]int)
	for _, entry := range entries {
		if entry.Nick == "" {
			continue
		}
		totals[entry.Nick] += entry.Value
	}

	rows := make([]*models.LeaderboardRow, 0, len(totals))
	for nick, total := range totals {
		rows = append(rows, &models.LeaderboardRow{Nick: nick, Total: total})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		return rows[i].Nick > rows[j].Nick
	})

	for i, row := range rows {
		row.Rank = i + 1
	}

	return rows
}

func renderBoard(board *models.Leaderboard) string {
	title := recentTitle
	if board.AllTime {
		title = allTimeTitle
	}

	if len(board.Rows) == 0 {
		return fmt.Sprintf("%s\nnothing on the board yet.", title)
	}

	lines := make([]string, 0, len(board.Rows)+1)
	lines = append(lines, title)
	for _, row := range board.Rows {
		lines = append(lines, fmt.Sprintf("%d. %s - %s", row.Rank, row.Nick, messaging.FormatMoney(row.Total)))
	}

	return strings.Join(lines, "\n")
}
