package service

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"fizzquiz/internal/models"
	"fizzquiz/internal/repository"
	"fizzquiz/internal/validation"
)

// GameStore is the game persistence the service depends on
type GameStore interface {
	CreateGame(game *models.Game) (*models.Game, error)
	GetGameByID(id int64) (*models.Game, error)
	GetGames(filter repository.GameFilter) ([]models.Game, error)
	UpdateGame(game *models.Game) (*models.Game, error)
	DeleteGame(id int64) error
}

// GameService handles game configuration business logic
type GameService struct {
	games GameStore
}

// NewGameService creates a new game service
func NewGameService(games GameStore) *GameService {
	return &GameService{games: games}
}

// GameUpdate carries the optional fields of a partial game update
type GameUpdate struct {
	Name        *string
	TimeLimit   *int
	NumberRange *int
}

// GetGames lists games matching the filter
func (s *GameService) GetGames(filter repository.GameFilter) ([]models.Game, error) {
	games, err := s.games.GetGames(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return games, nil
}

// GetGame retrieves a game with its rules
func (s *GameService) GetGame(id int64) (*models.Game, error) {
	g, err := s.games.GetGameByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	if g == nil {
		return nil, fmt.Errorf("game %d: %w", id, ErrNotFound)
	}
	return g, nil
}

// AddGame validates and creates a game, including any inline rules
func (s *GameService) AddGame(g *models.Game) (*models.Game, error) {
	if err := validation.ValidateGameName(g.Name); err != nil {
		return nil, err
	}
	if err := validation.ValidateTimeLimit(g.TimeLimit); err != nil {
		return nil, err
	}
	if err := validation.ValidateNumberRange(g.NumberRange); err != nil {
		return nil, err
	}
	for _, rule := range g.Rules {
		if err := validation.ValidateRule(rule.Divisor, rule.Word); err != nil {
			return nil, err
		}
	}

	existing, err := s.games.GetGames(repository.GameFilter{Name: g.Name})
	if err != nil {
		return nil, fmt.Errorf("failed to check game name: %w", err)
	}
	if len(existing) > 0 {
		return nil, fmt.Errorf("game %q: %w", g.Name, ErrGameNameTaken)
	}

	created, err := s.games.CreateGame(g)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	log.Info().Int64("game_id", created.ID).Str("name", created.Name).Int("rules", len(created.Rules)).Msg("game created")

	return created, nil
}

// UpdateGame applies a partial update to a game
func (s *GameService) UpdateGame(id int64, update GameUpdate) (*models.Game, error) {
	g, err := s.games.GetGameByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	if g == nil {
		return nil, fmt.Errorf("game %d: %w", id, ErrNotFound)
	}

	if update.Name != nil {
		if err := validation.ValidateGameName(*update.Name); err != nil {
			return nil, err
		}
		g.Name = *update.Name
	}
	if update.TimeLimit != nil {
		if err := validation.ValidateTimeLimit(*update.TimeLimit); err != nil {
			return nil, err
		}
		g.TimeLimit = *update.TimeLimit
	}
	if update.NumberRange != nil {
		if err := validation.ValidateNumberRange(*update.NumberRange); err != nil {
			return nil, err
		}
		g.NumberRange = *update.NumberRange
	}

	updated, err := s.games.UpdateGame(g)
	if err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}
	return updated, nil
}

// DeleteGame removes a game and everything hanging off it
func (s *GameService) DeleteGame(id int64) error {
	if err := s.games.DeleteGame(id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	return nil
}
