package repository

import (
	"database/sql"
	"time"

	"fizzquiz/internal/database"
	"fizzquiz/internal/models"
)

// QuestionRepository handles game question database operations
type QuestionRepository struct {
	db database.DBTX
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db database.DBTX) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// CreateQuestion inserts a freshly generated, unanswered question
func (r *QuestionRepository) CreateQuestion(attemptID int64, number int) (*models.GameQuestion, error) {
	query := "INSERT INTO game_questions (attempt_id, number) VALUES (?, ?)"

	id, err := r.db.ExecReturningID(query, attemptID, number)
	if err != nil {
		return nil, err
	}

	return r.GetQuestionByID(id)
}

// GetQuestionByID retrieves a question by ID, or nil if none exists
func (r *QuestionRepository) GetQuestionByID(id int64) (*models.GameQuestion, error) {
	query := `
		SELECT id, attempt_id, number, user_answer, is_correct, answered_at, created_at
		FROM game_questions
		WHERE id = ?
	`

	question := &models.GameQuestion{}
	var answeredAt sql.NullTime

	err := r.db.QueryRow(query, id).Scan(
		&question.ID,
		&question.AttemptID,
		&question.Number,
		&question.UserAnswer,
		&question.IsCorrect,
		&answeredAt,
		&question.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if answeredAt.Valid {
		question.AnsweredAt = &answeredAt.Time
	}

	return question, nil
}

// GetAttemptQuestions retrieves all questions for an attempt in generation order
func (r *QuestionRepository) GetAttemptQuestions(attemptID int64) ([]models.GameQuestion, error) {
	query := `
		SELECT id, attempt_id, number, user_answer, is_correct, answered_at, created_at
		FROM game_questions
		WHERE attempt_id = ?
		ORDER BY id ASC
	`

	rows, err := r.db.Query(query, attemptID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []models.GameQuestion
	for rows.Next() {
		var q models.GameQuestion
		var answeredAt sql.NullTime

		err := rows.Scan(
			&q.ID,
			&q.AttemptID,
			&q.Number,
			&q.UserAnswer,
			&q.IsCorrect,
			&answeredAt,
			&q.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if answeredAt.Valid {
			q.AnsweredAt = &answeredAt.Time
		}

		questions = append(questions, q)
	}

	return questions, rows.Err()
}

// RecordAnswer stores the submitted answer and its correctness
func (r *QuestionRepository) RecordAnswer(id int64, answer string, isCorrect bool, answeredAt time.Time) (*models.GameQuestion, error) {
	query := `
		UPDATE game_questions
		SET user_answer = ?, is_correct = ?, answered_at = ?
		WHERE id = ?
	`

	if _, err := r.db.Exec(query, answer, isCorrect, answeredAt, id); err != nil {
		return nil, err
	}

	return r.GetQuestionByID(id)
}
