package repository

import (
	"database/sql"

	"fizzquiz/internal/database"
	"fizzquiz/internal/models"
)

// AttemptRepository handles game attempt database operations
type AttemptRepository struct {
	db database.DBTX
}

// NewAttemptRepository creates a new attempt repository
func NewAttemptRepository(db database.DBTX) *AttemptRepository {
	return &AttemptRepository{db: db}
}

// CreateAttempt inserts a new attempt with score 0
func (r *AttemptRepository) CreateAttempt(gameID, userID int64) (*models.GameAttempt, error) {
	query := "INSERT INTO game_attempts (game_id, user_id) VALUES (?, ?)"

	id, err := r.db.ExecReturningID(query, gameID, userID)
	if err != nil {
		return nil, err
	}

	return r.GetAttemptByID(id)
}

// GetAttemptByID retrieves an attempt by ID, or nil if none exists.
// Questions are not loaded; callers that need them use the question
// repository.
func (r *AttemptRepository) GetAttemptByID(id int64) (*models.GameAttempt, error) {
	query := `
		SELECT id, game_id, user_id, score, attempted_at
		FROM game_attempts
		WHERE id = ?
	`

	attempt := &models.GameAttempt{}
	err := r.db.QueryRow(query, id).Scan(
		&attempt.ID,
		&attempt.GameID,
		&attempt.UserID,
		&attempt.Score,
		&attempt.AttemptedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return attempt, nil
}

// IncrementScore adds one to the attempt's score. The single UPDATE keeps
// concurrent submissions from losing increments.
func (r *AttemptRepository) IncrementScore(id int64) error {
	_, err := r.db.Exec("UPDATE game_attempts SET score = score + 1 WHERE id = ?", id)
	return err
}
