package entity

import "time"

// User is the aggregate root for the account domain.
// Password holds a bcrypt hash and must never be serialized to clients.
type User struct {
	ID        int64
	Username  string
	Email     string
	Password  string
	CreatedAt time.Time
}

// UserSummary is the externally visible view of a user.
type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Summary strips the password hash for API responses.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username, Email: u.Email}
}
