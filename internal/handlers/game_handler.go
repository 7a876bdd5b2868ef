package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"fizzquiz/internal/models"
	"fizzquiz/internal/repository"
	"fizzquiz/internal/service"
)

// GameHandler serves the game configuration endpoints
type GameHandler struct {
	games *service.GameService
}

// NewGameHandler creates a new game handler
func NewGameHandler(games *service.GameService) *GameHandler {
	return &GameHandler{games: games}
}

// RegisterPublicRoutes mounts the read-only game routes
func (h *GameHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/", h.GetGames)
	r.Get("/{id}", h.GetGame)
}

// RegisterProtectedRoutes mounts the mutating game routes
func (h *GameHandler) RegisterProtectedRoutes(r chi.Router) {
	r.Post("/", h.AddGame)
	r.Patch("/{id}", h.UpdateGame)
	r.Delete("/{id}", h.DeleteGame)
}

// GetGames lists games, filtered by exact gameName and createdByUserId query
// parameters when present
func (h *GameHandler) GetGames(w http.ResponseWriter, r *http.Request) {
	filter := repository.GameFilter{Name: r.URL.Query().Get("gameName")}

	if raw := r.URL.Query().Get("createdByUserId"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeBadRequest(w, "invalid createdByUserId")
			return
		}
		filter.CreatedByUserID = userID
	}

	games, err := h.games.GetGames(filter)
	if err != nil {
		writeError(w, err)
		return
	}

	views := make([]gameView, 0, len(games))
	for i := range games {
		views = append(views, toGameView(&games[i]))
	}
	writeJSON(w, http.StatusOK, views)
}

// GetGame returns a game with its rules
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid game id")
		return
	}

	g, err := h.games.GetGame(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toGameView(g))
}

type addGameRequest struct {
	GameName    string `json:"gameName"`
	TimeLimit   int    `json:"timeLimit"`
	NumberRange int    `json:"numberRange"`
	GameRules   []struct {
		DivisibleNumber int    `json:"divisibleNumber"`
		ReplacedWord    string `json:"replacedWord"`
	} `json:"gameRules"`
}

// AddGame creates a game with its inline rules, owned by the caller
func (h *GameHandler) AddGame(w http.ResponseWriter, r *http.Request) {
	var req addGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		writeUnauthorized(w, "missing bearer token")
		return
	}

	g := &models.Game{
		Name:            req.GameName,
		TimeLimit:       req.TimeLimit,
		NumberRange:     req.NumberRange,
		CreatedByUserID: claims.UserID,
	}
	for _, rule := range req.GameRules {
		g.Rules = append(g.Rules, models.GameRule{
			Divisor: rule.DivisibleNumber,
			Word:    rule.ReplacedWord,
		})
	}

	created, err := h.games.AddGame(g)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toGameView(created))
}

type updateGameRequest struct {
	GameName    *string `json:"gameName"`
	TimeLimit   *int    `json:"timeLimit"`
	NumberRange *int    `json:"numberRange"`
}

// UpdateGame applies a partial update to a game
func (h *GameHandler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid game id")
		return
	}

	var req updateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	updated, err := h.games.UpdateGame(id, service.GameUpdate{
		Name:        req.GameName,
		TimeLimit:   req.TimeLimit,
		NumberRange: req.NumberRange,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toGameView(updated))
}

// DeleteGame removes a game
func (h *GameHandler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid game id")
		return
	}

	if err := h.games.DeleteGame(id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
