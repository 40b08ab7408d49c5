package models

// LeaderboardRow is one ranked line of the leaderboard
type LeaderboardRow struct {
	// Rank is the 1-based position of the player
	Rank int

	// Nick is the player's nick
	Nick string

	// Total is the player's summed winnings
	Total int
}

// Leaderboard represents historical standings for a channel
type Leaderboard struct {
	// Channel is the chat channel the standings are for
	Channel string

	// AllTime indicates the standings cover all history rather than the
	// recent window
	AllTime bool

	// Rows contains the reported standings
	Rows []*LeaderboardRow
}
