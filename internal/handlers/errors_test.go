package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"fizzquiz/internal/game"
	"fizzquiz/internal/service"
	"fizzquiz/internal/validation"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", fmt.Errorf("game 1: %w", service.ErrNotFound), http.StatusNotFound},
		{"validation", validation.ValidationError{Field: "gameName", Message: "empty"}, http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("add game: %w", validation.ValidationError{Field: "timeLimit", Message: "negative"}), http.StatusBadRequest},
		{"question answered", fmt.Errorf("question 3: %w", service.ErrQuestionAnswered), http.StatusConflict},
		{"negative number", game.ErrNegativeNumber, http.StatusBadRequest},
		{"too many rules", game.ErrTooManyRules, http.StatusBadRequest},
		{"game name taken", service.ErrGameNameTaken, http.StatusBadRequest},
		{"username taken", service.ErrUsernameTaken, http.StatusBadRequest},
		{"bad credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"invalid state", fmt.Errorf("attempt for question 9: %w", service.ErrInvalidState), http.StatusInternalServerError},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := classifyError(tt.err)
			if status != tt.wantStatus {
				t.Errorf("classifyError(%v) status = %d, want %d", tt.err, status, tt.wantStatus)
			}
		})
	}
}

func TestWriteErrorBody(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, fmt.Errorf("game 42: %w", service.ErrNotFound))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.StatusCode != http.StatusNotFound {
		t.Errorf("statusCode = %d, want 404", body.StatusCode)
	}
	if body.Type != "NotFound" {
		t.Errorf("type = %q, want NotFound", body.Type)
	}
}

func TestWriteErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, errors.New("pq: connection refused"))

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Message != "internal server error" {
		t.Errorf("message = %q, want generic internal server error", body.Message)
	}
}
