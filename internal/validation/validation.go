package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateUsername checks if a username is valid
func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ValidationError{Field: "username", Message: "username is required"}
	}
	if len(username) < 3 || len(username) > 50 {
		return ValidationError{Field: "username", Message: "username must be 3-50 characters"}
	}
	if !usernameRegex.MatchString(username) {
		return ValidationError{Field: "username", Message: "username may only contain letters, numbers and underscore"}
	}
	return nil
}

// ValidatePassword checks if a password meets requirements
func ValidatePassword(password string) error {
	if password == "" {
		return ValidationError{Field: "password", Message: "password is required"}
	}
	if len(password) < 8 || len(password) > 100 {
		return ValidationError{Field: "password", Message: "password must be 8-100 characters"}
	}
	return nil
}

// ValidateEmail checks if an email address is valid. An empty email is
// allowed; the address is optional on accounts.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil
	}
	if !emailRegex.MatchString(email) {
		return ValidationError{Field: "email", Message: "invalid email format"}
	}
	return nil
}

// ValidateGameName checks if a game name is valid
func ValidateGameName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ValidationError{Field: "gameName", Message: "game name cannot be empty"}
	}
	return nil
}

// ValidateTimeLimit checks if a game time limit is valid
func ValidateTimeLimit(seconds int) error {
	if seconds < 0 {
		return ValidationError{Field: "timeLimit", Message: "time limit cannot be negative"}
	}
	return nil
}

// ValidateNumberRange checks if a game number range is valid
func ValidateNumberRange(upper int) error {
	if upper < 0 {
		return ValidationError{Field: "numberRange", Message: "number range cannot be negative"}
	}
	return nil
}

// ValidateRule checks if a game rule is valid. Divisors must be positive so
// the matcher never divides by zero.
func ValidateRule(divisor int, word string) error {
	if divisor < 1 {
		return ValidationError{Field: "divisibleNumber", Message: "divisor must be a positive integer"}
	}
	if strings.TrimSpace(word) == "" {
		return ValidationError{Field: "replacedWord", Message: "word cannot be empty"}
	}
	return nil
}
