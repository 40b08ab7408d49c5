package trivia

// Clue is a single question with its category and value
type Clue struct {
	// Category is the title of the category the clue belongs to
	Category string

	// Question is the clue text
	Question string

	// Answer is the canonical answer
	Answer string

	// Value is the dollar value of the clue
	Value int
}

// CategoryRef identifies a category at the provider
type CategoryRef struct {
	// ID is the provider's identifier for the category
	ID int
}

// CategoryClue is one clue within a category listing
type CategoryClue struct {
	// ID is the provider's identifier for the clue
	ID int

	// Question is the clue text
	Question string

	// Answer is the canonical answer
	Answer string

	// Value is the dollar value of the clue
	Value int
}

// CategoryDetail is a category with its full clue listing
type CategoryDetail struct {
	// ID is the provider's identifier for the category
	ID int

	// Title is the display title of the category
	Title string

	// Clues holds the category's clues
	Clues []*CategoryClue
}
