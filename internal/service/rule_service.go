package service

import (
	"fmt"

	"fizzquiz/internal/models"
	"fizzquiz/internal/validation"
)

// RuleStore is the rule persistence the service depends on
type RuleStore interface {
	CreateRule(rule *models.GameRule) (*models.GameRule, error)
	GetRuleByID(id int64) (*models.GameRule, error)
	UpdateRule(rule *models.GameRule) (*models.GameRule, error)
	DeleteRule(id int64) error
}

// RuleService handles substitution rule business logic
type RuleService struct {
	rules RuleStore
	games GameGetter
}

// NewRuleService creates a new rule service
func NewRuleService(rules RuleStore, games GameGetter) *RuleService {
	return &RuleService{rules: rules, games: games}
}

// RuleUpdate carries the optional fields of a partial rule update
type RuleUpdate struct {
	Divisor *int
	Word    *string
}

// AddRule validates and attaches a new rule to an existing game
func (s *RuleService) AddRule(rule *models.GameRule) (*models.GameRule, error) {
	g, err := s.games.GetGameByID(rule.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	if g == nil {
		return nil, fmt.Errorf("game %d: %w", rule.GameID, ErrNotFound)
	}

	if err := validation.ValidateRule(rule.Divisor, rule.Word); err != nil {
		return nil, err
	}

	created, err := s.rules.CreateRule(rule)
	if err != nil {
		return nil, fmt.Errorf("failed to create rule: %w", err)
	}
	return created, nil
}

// EditRule applies a partial update to a rule
func (s *RuleService) EditRule(id int64, update RuleUpdate) (*models.GameRule, error) {
	rule, err := s.rules.GetRuleByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get rule: %w", err)
	}
	if rule == nil {
		return nil, fmt.Errorf("rule %d: %w", id, ErrNotFound)
	}

	if update.Divisor != nil {
		rule.Divisor = *update.Divisor
	}
	if update.Word != nil {
		rule.Word = *update.Word
	}
	if err := validation.ValidateRule(rule.Divisor, rule.Word); err != nil {
		return nil, err
	}

	updated, err := s.rules.UpdateRule(rule)
	if err != nil {
		return nil, fmt.Errorf("failed to update rule: %w", err)
	}
	return updated, nil
}

// DeleteRule removes a rule
func (s *RuleService) DeleteRule(id int64) error {
	rule, err := s.rules.GetRuleByID(id)
	if err != nil {
		return fmt.Errorf("failed to get rule: %w", err)
	}
	if rule == nil {
		return fmt.Errorf("rule %d: %w", id, ErrNotFound)
	}

	if err := s.rules.DeleteRule(id); err != nil {
		return fmt.Errorf("failed to delete rule: %w", err)
	}
	return nil
}
