package domain

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type Puzzle struct {
	ID           string     `json:"id"`
	Symbols      string     `json:"symbols"`
	Answer       string     `json:"answer"`
	Alternatives []string   `json:"alternatives,omitempty"`
	Difficulty   Difficulty `json:"difficulty"`
	Points       int        `json:"points"`
}
