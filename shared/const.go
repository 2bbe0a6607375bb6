package shared

const (
	UserID = "user_id"

	FactTypeText  = "text"
	FactTypeDate  = "date"
	FactTypePlace = "place"
	FactTypePhoto = "photo"

	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"

	SessionStatusActive    = "active"
	SessionStatusCompleted = "completed"

	MaxHintsPerFact = 3
	MinRewardWeight = 1
	MaxRewardWeight = 10
	MinPuzzleGrid   = 2
	MaxPuzzleGrid   = 6
)
