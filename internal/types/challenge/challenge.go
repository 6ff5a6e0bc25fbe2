package challenge

import (
	"time"

	"fitchallengeAPI/internal/apperror"
)

// DateFormat is the wire format for challenge start/end dates.
const DateFormat = "2006-01-02"

type Challenge struct {
	ID          int        `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description" db:"description"`
	Goal        *int       `json:"goal" db:"goal"`
	Unit        *string    `json:"unit" db:"unit"`
	Difficulty  *string    `json:"difficulty" db:"difficulty"`
	StartDate   *time.Time `json:"start_date" db:"start_date"`
	EndDate     *time.Time `json:"end_date" db:"end_date"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	// Creator is the Firebase UID of the author. It is a soft reference:
	// challenges may be created before an account row exists, so there is
	// no foreign key to users.
	Creator  string   `json:"creator" db:"creator"`
	GoalList []string `json:"goal_list" db:"goal_list"`
}

// Preview is the trimmed projection used on the home feed.
type Preview struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
}

type CreateChallengeRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Goal        *int     `json:"goal"`
	Unit        *string  `json:"unit"`
	Difficulty  *string  `json:"difficulty"`
	StartDate   *string  `json:"start_date"`
	EndDate     *string  `json:"end_date"`
	GoalList    []string `json:"goal_list"`
}

// Validate checks required fields and parses the optional date strings. A
// malformed date fails the whole request so nothing is persisted.
func (r *CreateChallengeRequest) Validate() (start, end *time.Time, err error) {
	if r.Title == "" {
		return nil, nil, apperror.InvalidInput("title is required")
	}

	if r.StartDate != nil && *r.StartDate != "" {
		t, perr := time.Parse(DateFormat, *r.StartDate)
		if perr != nil {
			return nil, nil, apperror.InvalidInput("start_date must be formatted YYYY-MM-DD")
		}
		start = &t
	}

	if r.EndDate != nil && *r.EndDate != "" {
		t, perr := time.Parse(DateFormat, *r.EndDate)
		if perr != nil {
			return nil, nil, apperror.InvalidInput("end_date must be formatted YYYY-MM-DD")
		}
		end = &t
	}

	return start, end, nil
}
