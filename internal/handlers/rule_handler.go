package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fizzquiz/internal/models"
	"fizzquiz/internal/service"
)

// RuleHandler serves the substitution rule endpoints
type RuleHandler struct {
	rules *service.RuleService
}

// NewRuleHandler creates a new rule handler
func NewRuleHandler(rules *service.RuleService) *RuleHandler {
	return &RuleHandler{rules: rules}
}

// RegisterRoutes mounts the rule routes on the router
func (h *RuleHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.AddRule)
	r.Patch("/{id}", h.EditRule)
	r.Delete("/{id}", h.DeleteRule)
}

type addRuleRequest struct {
	GameID          int64  `json:"gameId"`
	DivisibleNumber int    `json:"divisibleNumber"`
	ReplacedWord    string `json:"replacedWord"`
}

// AddRule attaches a new rule to an existing game
func (h *RuleHandler) AddRule(w http.ResponseWriter, r *http.Request) {
	var req addRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	created, err := h.rules.AddRule(&models.GameRule{
		GameID:  req.GameID,
		Divisor: req.DivisibleNumber,
		Word:    req.ReplacedWord,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toRuleView(*created))
}

type editRuleRequest struct {
	DivisibleNumber *int    `json:"divisibleNumber"`
	ReplacedWord    *string `json:"replacedWord"`
}

// EditRule applies a partial update to a rule
func (h *RuleHandler) EditRule(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid rule id")
		return
	}

	var req editRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	updated, err := h.rules.EditRule(id, service.RuleUpdate{
		Divisor: req.DivisibleNumber,
		Word:    req.ReplacedWord,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toRuleView(*updated))
}

// DeleteRule removes a rule
func (h *RuleHandler) DeleteRule(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid rule id")
		return
	}

	if err := h.rules.DeleteRule(id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
