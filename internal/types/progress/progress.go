package progress

import "time"

// CompletionDay is the fixed weekly challenge length. Reaching it flips the
// row to completed. It is intentionally not derived from the challenge's own
// goal or duration fields; see the product note in DESIGN.md before changing.
const CompletionDay = 7

// Progress is the per (user, challenge) day counter. A missing row is the
// not-started state and is never persisted; the first advance creates the
// row at day 1.
type Progress struct {
	ID          int       `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	ChallengeID int       `json:"challenge_id" db:"challenge_id"`
	CurrentDay  int       `json:"current_day" db:"current_day"`
	Completed   bool      `json:"completed" db:"completed"`
	LastUpdated time.Time `json:"last_updated" db:"last_updated"`
}

// State is what the API reports: the stored pair, or the synthesized
// (0, false) not-started state when no row exists.
type State struct {
	CurrentDay int  `json:"current_day"`
	Completed  bool `json:"completed"`
}

// NotStarted is the synthesized state for a pair with no row.
func NotStarted() State {
	return State{CurrentDay: 0, Completed: false}
}

// Next returns the state after one advance. A completed state is terminal:
// advancing it returns it unchanged. The zero-day not-started state advances
// to day 1, and the transition to completed happens in the same step the
// counter reaches CompletionDay.
func Next(s State) State {
	if s.Completed {
		return s
	}
	day := s.CurrentDay + 1
	return State{
		CurrentDay: day,
		Completed:  day >= CompletionDay,
	}
}
