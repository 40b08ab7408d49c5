package models

import (
	"time"
)

// Round represents one free-play question-and-answer cycle in a channel
type Round struct {
	// ID is the unique identifier for the round
	ID string

	// Channel is the chat channel the round belongs to
	Channel string

	// Category is the title of the category the question came from
	Category string

	// Question is the clue text shown to the channel, with any links
	// stripped out
	Question string

	// Links holds links stripped from the question text, shown as context
	// lines before it
	Links []string

	// Answer is the canonical answer used by the matcher
	Answer string

	// Value is the dollar value of the question
	Value int

	// Active indicates the round is still accepting guesses
	Active bool

	// AnsweredBy is the nick that answered correctly, if anyone did
	AnsweredBy string

	// AnsweredAt is when the round was answered correctly
	AnsweredAt *time.Time

	// CreatedAt is when the round was created
	CreatedAt time.Time
}
