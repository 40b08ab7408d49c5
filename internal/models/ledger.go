package models

import (
	"time"
)

// LedgerEntry records a correctly answered free-play round. Entries are
// append-only and exist solely to feed the leaderboard.
type LedgerEntry struct {
	// ID is the unique identifier for the entry
	ID string

	// Channel is the chat channel the round was played in
	Channel string

	// Nick is the player that answered correctly
	Nick string

	// Value is the dollar value won
	Value int

	// Timestamp is when the round was answered
	Timestamp time.Time
}
