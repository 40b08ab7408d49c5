package game

import "fmt"

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameExists       GameError = "channel already has a game"
	ErrNoGame           GameError = "no game in this channel"
	ErrNotInLobby       GameError = "game is no longer in its lobby"
	ErrNotStarted       GameError = "game has not started"
	ErrAlreadyStarted   GameError = "game has already started"
	ErrNoPlayers        GameError = "no players have joined"
	ErrNotPlaying       GameError = "player is not in this game"
	ErrClueLive         GameError = "a clue is already open"
	ErrNoLiveClue       GameError = "no clue is open"
	ErrUnknownCategory  GameError = "no such category"
	ErrUnknownValue     GameError = "no clue at that value"
	ErrCluePlayed       GameError = "clue already played"
	ErrMalformedContent GameError = "provider returned malformed categories"
)

// errStale aborts a conditional update whose precondition no longer holds.
// Callers treat it as "someone else got there first".
const errStale GameError = "state already resolved"

// NotHostError rejects an end request from anyone but the host
type NotHostError struct {
	// Host is the nick allowed to end the game
	Host string
}

func (e *NotHostError) Error() string {
	return fmt.Sprintf("only %s can end the game", e.Host)
}

// NotYourBoardError rejects a clue selection from anyone but the
// controlling player
type NotYourBoardError struct {
	// Controller is the nick holding board control
	Controller string
}

func (e *NotYourBoardError) Error() string {
	return fmt.Sprintf("the board is %s's", e.Controller)
}
