package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"fizzquiz/internal/service"
)

// AttemptHandler serves the game attempt endpoints
type AttemptHandler struct {
	attempts *service.AttemptService
}

// NewAttemptHandler creates a new attempt handler
func NewAttemptHandler(attempts *service.AttemptService) *AttemptHandler {
	return &AttemptHandler{attempts: attempts}
}

// RegisterRoutes mounts the attempt routes on the router
func (h *AttemptHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.StartAttempt)
	r.Get("/{id}", h.GetAttempt)
	r.Get("/generate-question/{id}", h.GenerateQuestion)
	r.Post("/check", h.CheckAnswer)
}

type startAttemptRequest struct {
	GameID          int64 `json:"gameId"`
	AttemptByUserID int64 `json:"attemptByUserId"`
}

// StartAttempt creates a new attempt for a user playing a game
func (h *AttemptHandler) StartAttempt(w http.ResponseWriter, r *http.Request) {
	var req startAttemptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	attempt, err := h.attempts.StartAttempt(req.GameID, req.AttemptByUserID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAttemptView(attempt))
}

// GetAttempt returns an attempt with its questions
func (h *AttemptHandler) GetAttempt(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid attempt id")
		return
	}

	attempt, err := h.attempts.GetAttempt(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toAttemptView(attempt))
}

// GenerateQuestion draws the next random question for an attempt
func (h *AttemptHandler) GenerateQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid attempt id")
		return
	}

	question, err := h.attempts.GenerateQuestion(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toQuestionView(question))
}

type checkAnswerRequest struct {
	QuestionID int64  `json:"questionId"`
	UserAnswer string `json:"userAnswer"`
}

// CheckAnswer validates a submitted answer and returns the checked question
func (h *AttemptHandler) CheckAnswer(w http.ResponseWriter, r *http.Request) {
	var req checkAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	question, err := h.attempts.SubmitAnswer(req.QuestionID, req.UserAnswer)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toQuestionView(question))
}

// parseID parses a positive integer route parameter
func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
