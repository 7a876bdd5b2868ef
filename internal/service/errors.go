package service

import "errors"

var (
	// ErrNotFound indicates a referenced user, game, rule, attempt or
	// question does not exist. Wrapped with context at each call site.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState indicates a record exists but a relationship it
	// depends on is broken (a question whose attempt or game is gone).
	// This is a data-integrity problem, not user error.
	ErrInvalidState = errors.New("referenced record is missing")

	// ErrQuestionAnswered indicates an answer was already recorded for the
	// question; re-submission is rejected so the score cannot double-count.
	ErrQuestionAnswered = errors.New("question already answered")

	// ErrGameNameTaken indicates a game with the same name already exists.
	ErrGameNameTaken = errors.New("game name already taken")

	// ErrUsernameTaken indicates the username is already registered.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials indicates a failed login.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
