package service

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"fizzquiz/internal/game"
	"fizzquiz/internal/metrics"
	"fizzquiz/internal/models"
)

// AttemptStore is the attempt persistence the service depends on
type AttemptStore interface {
	CreateAttempt(gameID, userID int64) (*models.GameAttempt, error)
	GetAttemptByID(id int64) (*models.GameAttempt, error)
	IncrementScore(id int64) error
}

// QuestionStore is the question persistence the service depends on
type QuestionStore interface {
	CreateQuestion(attemptID int64, number int) (*models.GameQuestion, error)
	GetQuestionByID(id int64) (*models.GameQuestion, error)
	GetAttemptQuestions(attemptID int64) ([]models.GameQuestion, error)
	RecordAnswer(id int64, answer string, isCorrect bool, answeredAt time.Time) (*models.GameQuestion, error)
}

// GameGetter loads games with their rules
type GameGetter interface {
	GetGameByID(id int64) (*models.Game, error)
}

// AttemptService owns attempt progression: starting attempts, generating
// questions and checking submitted answers. There is no terminal state; the
// client's timer simply stops asking for questions.
type AttemptService struct {
	attempts  AttemptStore
	questions QuestionStore
	games     GameGetter
	numbers   game.NumberSource
}

// NewAttemptService creates a new attempt service
func NewAttemptService(attempts AttemptStore, questions QuestionStore, games GameGetter, numbers game.NumberSource) *AttemptService {
	return &AttemptService{
		attempts:  attempts,
		questions: questions,
		games:     games,
		numbers:   numbers,
	}
}

// StartAttempt creates a new attempt for a user playing a game
func (s *AttemptService) StartAttempt(gameID, userID int64) (*models.GameAttempt, error) {
	g, err := s.games.GetGameByID(gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	if g == nil {
		return nil, fmt.Errorf("game %d: %w", gameID, ErrNotFound)
	}

	attempt, err := s.attempts.CreateAttempt(gameID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to create attempt: %w", err)
	}

	metrics.AttemptsStarted.Inc()
	log.Info().Int64("attempt_id", attempt.ID).Int64("game_id", gameID).Int64("user_id", userID).Msg("attempt started")

	return attempt, nil
}

// GetAttempt retrieves an attempt together with its questions in generation
// order
func (s *AttemptService) GetAttempt(attemptID int64) (*models.GameAttempt, error) {
	attempt, err := s.attempts.GetAttemptByID(attemptID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attempt: %w", err)
	}
	if attempt == nil {
		return nil, fmt.Errorf("game attempt %d: %w", attemptID, ErrNotFound)
	}

	questions, err := s.questions.GetAttemptQuestions(attemptID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attempt questions: %w", err)
	}
	attempt.Questions = questions

	return attempt, nil
}

// GenerateQuestion draws a uniformly random number in [0, numberRange] for
// the attempt's game and appends a new unanswered question to the attempt
func (s *AttemptService) GenerateQuestion(attemptID int64) (*models.GameQuestion, error) {
	attempt, err := s.attempts.GetAttemptByID(attemptID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attempt: %w", err)
	}
	if attempt == nil {
		return nil, fmt.Errorf("game attempt %d: %w", attemptID, ErrNotFound)
	}

	g, err := s.games.GetGameByID(attempt.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	if g == nil {
		return nil, fmt.Errorf("game %d: %w", attempt.GameID, ErrNotFound)
	}

	number := s.numbers.IntN(g.NumberRange + 1)

	question, err := s.questions.CreateQuestion(attemptID, number)
	if err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	metrics.QuestionsGenerated.Inc()

	return question, nil
}

// SubmitAnswer validates a candidate answer for a question, records the
// result and increments the attempt score by exactly one when correct.
// Submitting twice for the same question is rejected.
func (s *AttemptService) SubmitAnswer(questionID int64, answer string) (*models.GameQuestion, error) {
	question, err := s.questions.GetQuestionByID(questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	if question == nil {
		return nil, fmt.Errorf("question %d: %w", questionID, ErrNotFound)
	}
	if question.IsAnswered() {
		return nil, fmt.Errorf("question %d: %w", questionID, ErrQuestionAnswered)
	}

	attempt, err := s.attempts.GetAttemptByID(question.AttemptID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attempt: %w", err)
	}
	if attempt == nil {
		return nil, fmt.Errorf("attempt for question %d: %w", questionID, ErrInvalidState)
	}

	g, err := s.games.GetGameByID(attempt.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	if g == nil {
		return nil, fmt.Errorf("game for attempt %d: %w", attempt.ID, ErrInvalidState)
	}

	isCorrect, err := game.IsAnswerCorrect(question.Number, answer, g.Rules)
	if err != nil {
		return nil, err
	}

	updated, err := s.questions.RecordAnswer(questionID, answer, isCorrect, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to record answer: %w", err)
	}

	if isCorrect {
		if err := s.attempts.IncrementScore(attempt.ID); err != nil {
			return nil, fmt.Errorf("failed to update score: %w", err)
		}
	}

	metrics.AnswersChecked.WithLabelValues(fmt.Sprintf("%t", isCorrect)).Inc()
	log.Debug().
		Int64("question_id", questionID).
		Int("number", question.Number).
		Bool("correct", isCorrect).
		Msg("answer checked")

	return updated, nil
}
