package handlers

import (
	"time"

	"fizzquiz/internal/models"
)

// gameRuleView is the wire shape of a substitution rule
type gameRuleView struct {
	RuleID          int64  `json:"ruleId"`
	GameID          int64  `json:"gameId"`
	DivisibleNumber int    `json:"divisibleNumber"`
	ReplacedWord    string `json:"replacedWord"`
}

// gameView is the wire shape of a game with its rules
type gameView struct {
	GameID          int64          `json:"gameId"`
	GameName        string         `json:"gameName"`
	TimeLimit       int            `json:"timeLimit"`
	NumberRange     int            `json:"numberRange"`
	CreatedByUserID int64          `json:"createdByUserId"`
	CreatedAt       time.Time      `json:"createdAt"`
	GameRules       []gameRuleView `json:"gameRules"`
}

// questionView is the wire shape of a generated question
type questionView struct {
	ID              int64  `json:"id"`
	GameAttemptID   int64  `json:"gameAttemptId"`
	QuestionNumber  int    `json:"questionNumber"`
	UserAnswer      string `json:"userAnswer"`
	IsCorrectAnswer bool   `json:"isCorrectAnswer"`
}

// attemptView is the wire shape of a game attempt
type attemptView struct {
	AttemptID       int64          `json:"attemptId"`
	GameID          int64          `json:"gameId"`
	AttemptByUserID int64          `json:"attemptByUserId"`
	Score           int            `json:"score"`
	AttemptedDate   time.Time      `json:"attemptedDate"`
	GameQuestions   []questionView `json:"gameQuestions"`
}

// userView is the wire shape of a user account. The password hash never
// leaves the server.
type userView struct {
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// loginView is the response to a successful login
type loginView struct {
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func toRuleView(r models.GameRule) gameRuleView {
	return gameRuleView{
		RuleID:          r.ID,
		GameID:          r.GameID,
		DivisibleNumber: r.Divisor,
		ReplacedWord:    r.Word,
	}
}

func toGameView(g *models.Game) gameView {
	rules := make([]gameRuleView, 0, len(g.Rules))
	for _, r := range g.Rules {
		rules = append(rules, toRuleView(r))
	}
	return gameView{
		GameID:          g.ID,
		GameName:        g.Name,
		TimeLimit:       g.TimeLimit,
		NumberRange:     g.NumberRange,
		CreatedByUserID: g.CreatedByUserID,
		CreatedAt:       g.CreatedAt,
		GameRules:       rules,
	}
}

func toQuestionView(q *models.GameQuestion) questionView {
	return questionView{
		ID:              q.ID,
		GameAttemptID:   q.AttemptID,
		QuestionNumber:  q.Number,
		UserAnswer:      q.UserAnswer,
		IsCorrectAnswer: q.IsCorrect,
	}
}

func toAttemptView(a *models.GameAttempt) attemptView {
	questions := make([]questionView, 0, len(a.Questions))
	for i := range a.Questions {
		questions = append(questions, toQuestionView(&a.Questions[i]))
	}
	return attemptView{
		AttemptID:       a.ID,
		GameID:          a.GameID,
		AttemptByUserID: a.UserID,
		Score:           a.Score,
		AttemptedDate:   a.AttemptedAt,
		GameQuestions:   questions,
	}
}

func toUserView(u *models.User) userView {
	return userView{
		UserID:    u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
