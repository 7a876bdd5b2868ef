package repository

import (
	"database/sql"

	"fizzquiz/internal/database"
	"fizzquiz/internal/models"
)

// RuleRepository handles game rule database operations
type RuleRepository struct {
	db database.DBTX
}

// NewRuleRepository creates a new rule repository
func NewRuleRepository(db database.DBTX) *RuleRepository {
	return &RuleRepository{db: db}
}

// CreateRule inserts a rule for a game
func (r *RuleRepository) CreateRule(rule *models.GameRule) (*models.GameRule, error) {
	query := "INSERT INTO game_rules (game_id, divisor, word) VALUES (?, ?, ?)"

	id, err := r.db.ExecReturningID(query, rule.GameID, rule.Divisor, rule.Word)
	if err != nil {
		return nil, err
	}

	return r.GetRuleByID(id)
}

// GetRuleByID retrieves a rule by ID, or nil if none exists
func (r *RuleRepository) GetRuleByID(id int64) (*models.GameRule, error) {
	query := `
		SELECT id, game_id, divisor, word
		FROM game_rules
		WHERE id = ?
	`

	rule := &models.GameRule{}
	err := r.db.QueryRow(query, id).Scan(&rule.ID, &rule.GameID, &rule.Divisor, &rule.Word)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rule, nil
}

// UpdateRule persists divisor and word changes
func (r *RuleRepository) UpdateRule(rule *models.GameRule) (*models.GameRule, error) {
	query := "UPDATE game_rules SET divisor = ?, word = ? WHERE id = ?"

	if _, err := r.db.Exec(query, rule.Divisor, rule.Word, rule.ID); err != nil {
		return nil, err
	}

	return r.GetRuleByID(rule.ID)
}

// DeleteRule removes a rule
func (r *RuleRepository) DeleteRule(id int64) error {
	_, err := r.db.Exec("DELETE FROM game_rules WHERE id = ?", id)
	return err
}
