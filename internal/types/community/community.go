package community

import "time"

// Message is one community chat post. User is a free-text display name and
// is not checked against the users table; the chat endpoints are open.
type Message struct {
	ID        int       `json:"id" db:"id"`
	User      string    `json:"user" db:"username"`
	Text      *string   `json:"text" db:"text"`
	ImageURL  *string   `json:"image_url" db:"image_url"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

type PostMessageRequest struct {
	User     string  `json:"user"`
	Text     *string `json:"text"`
	ImageURL *string `json:"image_url"`
}
