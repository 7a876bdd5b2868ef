package models

import "time"

// GameAttempt is one play session of a game by a user
type GameAttempt struct {
	ID          int64
	GameID      int64
	UserID      int64
	Score       int
	AttemptedAt time.Time
	Questions   []GameQuestion
}

// GameQuestion is a single generated number presented during an attempt,
// along with the player's answer once one has been submitted
type GameQuestion struct {
	ID         int64
	AttemptID  int64
	Number     int
	UserAnswer string
	IsCorrect  bool
	AnsweredAt *time.Time
	CreatedAt  time.Time
}

// IsAnswered reports whether an answer has been recorded for the question.
// The answer text alone cannot be used here: an empty string is a legal
// (incorrect) submission.
func (q *GameQuestion) IsAnswered() bool {
	return q.AnsweredAt != nil
}
