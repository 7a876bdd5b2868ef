package models

import "time"

// Game holds the configuration for one trivia game: the inclusive upper
// bound for generated numbers and the substitution rules players answer with
type Game struct {
	ID              int64
	Name            string
	TimeLimit       int // seconds, stored for the client-side timer
	NumberRange     int // questions draw from [0, NumberRange]
	CreatedByUserID int64
	CreatedAt       time.Time
	Rules           []GameRule
}

// GameRule is a (divisor, word) pair. A question number divisible by the
// divisor must include the word in the accepted answer. Rules are kept in
// creation order and duplicates are never collapsed.
type GameRule struct {
	ID      int64
	GameID  int64
	Divisor int
	Word    string
}
