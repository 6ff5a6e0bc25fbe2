package goal

// Goal is a personal to-do owned by an account.
type Goal struct {
	ID          int     `json:"id" db:"id"`
	UserID      int     `json:"-" db:"user_id"`
	Title       string  `json:"title" db:"title"`
	Description *string `json:"description" db:"description"`
	IsCompleted bool    `json:"is_completed" db:"is_completed"`
}

type CreateGoalRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

type UpdateGoalRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsCompleted *bool   `json:"is_completed"`
}
