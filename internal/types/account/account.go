package account

// User is the account row kept for an authenticated identity. FirebaseUID is
// the identity provider's subject id and is the key every protected handler
// scopes by; the numeric ID only exists for relational bookkeeping.
type User struct {
	ID           int     `json:"id" db:"id"`
	Username     string  `json:"username" db:"username"`
	Email        *string `json:"email" db:"email"`
	FirebaseUID  string  `json:"firebase_uid" db:"firebase_uid"`
	BronzeBadges int     `json:"bronze_badges" db:"bronze_badges"`
	SilverBadges int     `json:"silver_badges" db:"silver_badges"`
	GoldBadges   int     `json:"gold_badges" db:"gold_badges"`
}

type CreateAccountRequest struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// RegisterRequest is the body of the legacy username/password registration
// flow kept for pre-Firebase clients.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
