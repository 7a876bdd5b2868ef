package repository

import (
	"database/sql"

	"fizzquiz/internal/database"
	"fizzquiz/internal/models"
)

// GameRepository handles game database operations
type GameRepository struct {
	db database.DBTX
}

// NewGameRepository creates a new game repository
func NewGameRepository(db database.DBTX) *GameRepository {
	return &GameRepository{db: db}
}

// GameFilter narrows GetGames results. Zero values mean "no filter".
type GameFilter struct {
	Name            string
	CreatedByUserID int64
}

// CreateGame inserts a game and any inline rules
func (r *GameRepository) CreateGame(game *models.Game) (*models.Game, error) {
	query := `
		INSERT INTO games (name, time_limit, number_range, created_by_user_id)
		VALUES (?, ?, ?, ?)
	`

	id, err := r.db.ExecReturningID(query, game.Name, game.TimeLimit, game.NumberRange, game.CreatedByUserID)
	if err != nil {
		return nil, err
	}

	for _, rule := range game.Rules {
		ruleQuery := "INSERT INTO game_rules (game_id, divisor, word) VALUES (?, ?, ?)"
		if _, err := r.db.Exec(ruleQuery, id, rule.Divisor, rule.Word); err != nil {
			return nil, err
		}
	}

	return r.GetGameByID(id)
}

// GetGameByID retrieves a game with its rules, or nil if none exists
func (r *GameRepository) GetGameByID(id int64) (*models.Game, error) {
	query := `
		SELECT id, name, time_limit, number_range, created_by_user_id, created_at
		FROM games
		WHERE id = ?
	`

	game := &models.Game{}
	err := r.db.QueryRow(query, id).Scan(
		&game.ID,
		&game.Name,
		&game.TimeLimit,
		&game.NumberRange,
		&game.CreatedByUserID,
		&game.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rules, err := r.getGameRules(id)
	if err != nil {
		return nil, err
	}
	game.Rules = rules

	return game, nil
}

// GetGames retrieves games matching the filter, newest first
func (r *GameRepository) GetGames(filter GameFilter) ([]models.Game, error) {
	query := `
		SELECT id, name, time_limit, number_range, created_by_user_id, created_at
		FROM games
	`
	var conditions []string
	var args []interface{}

	if filter.Name != "" {
		conditions = append(conditions, "name = ?")
		args = append(args, filter.Name)
	}
	if filter.CreatedByUserID != 0 {
		conditions = append(conditions, "created_by_user_id = ?")
		args = append(args, filter.CreatedByUserID)
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []models.Game
	for rows.Next() {
		var g models.Game
		err := rows.Scan(
			&g.ID,
			&g.Name,
			&g.TimeLimit,
			&g.NumberRange,
			&g.CreatedByUserID,
			&g.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}

	return games, rows.Err()
}

// UpdateGame persists name, time limit and number range changes
func (r *GameRepository) UpdateGame(game *models.Game) (*models.Game, error) {
	query := `
		UPDATE games
		SET name = ?, time_limit = ?, number_range = ?
		WHERE id = ?
	`

	if _, err := r.db.Exec(query, game.Name, game.TimeLimit, game.NumberRange, game.ID); err != nil {
		return nil, err
	}

	return r.GetGameByID(game.ID)
}

// DeleteGame removes a game; rules, attempts and questions cascade
func (r *GameRepository) DeleteGame(id int64) error {
	_, err := r.db.Exec("DELETE FROM games WHERE id = ?", id)
	return err
}

// getGameRules retrieves a game's rules in creation order
func (r *GameRepository) getGameRules(gameID int64) ([]models.GameRule, error) {
	query := `
		SELECT id, game_id, divisor, word
		FROM game_rules
		WHERE game_id = ?
		ORDER BY id ASC
	`

	rows, err := r.db.Query(query, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []models.GameRule
	for rows.Next() {
		var rule models.GameRule
		if err := rows.Scan(&rule.ID, &rule.GameID, &rule.Divisor, &rule.Word); err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, rows.Err()
}
