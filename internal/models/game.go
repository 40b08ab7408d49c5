package models

import (
	"time"
)

// BoardCategories is the number of categories on a board
const BoardCategories = 6

// CluesPerCategory is the number of clues in each category
const CluesPerCategory = 5

// GameStatus represents the current state of a board game
type GameStatus string

const (
	// GameStatusLobby indicates a game is waiting for players to join
	GameStatusLobby GameStatus = "lobby"

	// GameStatusInProgress indicates a game is being played
	GameStatusInProgress GameStatus = "in_progress"

	// GameStatusEnded indicates a game has finished
	GameStatusEnded GameStatus = "ended"
)

// Game represents one multiplayer board game in a channel
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// Channel is the chat channel where the game is being played
	Channel string

	// HostNick is the nick that created the game
	HostNick string

	// Status is the current state of the game
	Status GameStatus

	// Players holds the nicks in the game, in join order
	Players []string

	// Scores maps nick to score. Scores may go negative.
	Scores map[string]int

	// Board holds the categories and their clues
	Board []*BoardCategory

	// Control is the nick currently allowed to select a clue
	Control string

	// ActiveClue is the clue currently accepting answers, if any
	ActiveClue *ActiveClue

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time
}

// BoardCategory is one column of the board
type BoardCategory struct {
	// Key is the selection key for the category ("cat1".."cat6")
	Key string

	// Title is the display title of the category
	Title string

	// Clues holds the five clues, ascending by value
	Clues []*BoardClue
}

// BoardClue is one cell on the board
type BoardClue struct {
	// Question is the clue text
	Question string

	// Answer is the canonical answer
	Answer string

	// Value is the dollar value of the clue
	Value int

	// SourceID is the content provider's identifier for the clue
	SourceID int

	// Active indicates the clue has not been played yet
	Active bool
}

// ActiveClue is the transient round created when a player selects a board
// clue. It lives inside the Game record so resolving it, flipping the board
// cell and adjusting scores is a single conditional update.
type ActiveClue struct {
	// ID is the unique identifier for this clue round
	ID string

	// GameID is the game this clue belongs to
	GameID string

	// CategoryKey is the selection key of the clue's category
	CategoryKey string

	// ClueIndex is the row of the clue within its category
	ClueIndex int

	// Question is the clue text
	Question string

	// Answer is the canonical answer
	Answer string

	// Value is the dollar value at stake
	Value int

	// Active indicates the clue is still accepting answers
	Active bool

	// SelectedBy is the nick that selected the clue
	SelectedBy string

	// SelectedAt is when the clue was selected
	SelectedAt time.Time
}

// HasPlayer reports whether nick has joined the game
func (g *Game) HasPlayer(nick string) bool {
	for _, p := range g.Players {
		if p == nick {
			return true
		}
	}
	return false
}

// RemainingClues counts the board cells still active
func (g *Game) RemainingClues() int {
	count := 0
	for _, cat := range g.Board {
		for _, clue := range cat.Clues {
			if clue.Active {
				count++
			}
		}
	}
	return count
}

// Category returns the category with the given selection key, or nil
func (g *Game) Category(key string) *BoardCategory {
	for _, cat := range g.Board {
		if cat.Key == key {
			return cat
		}
	}
	return nil
}
