package favorite

// Favorite marks a bookmarked challenge for an account. The pair is the
// primary key, so favoriting the same challenge twice conflicts.
type Favorite struct {
	UserID      int `json:"user_id" db:"user_id"`
	ChallengeID int `json:"challenge_id" db:"challenge_id"`
}
