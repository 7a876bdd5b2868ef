package models

import "time"

// User represents a player account
type User struct {
	ID            int64
	Username      string
	PasswordHash  string
	Email         string
	OAuthProvider string
	OAuthSubject  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasEmail reports whether the account has an email address on file
func (u *User) HasEmail() bool {
	return u.Email != ""
}
