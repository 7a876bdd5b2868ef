package service

import (
	"errors"
	"testing"

	"fizzquiz/internal/models"
	"fizzquiz/internal/validation"
)

type fakeRuleStore struct {
	nextID int64
	rules  map[int64]*models.GameRule
}

func newFakeRuleStore() *fakeRuleStore {
	return &fakeRuleStore{nextID: 1, rules: make(map[int64]*models.GameRule)}
}

func (f *fakeRuleStore) CreateRule(rule *models.GameRule) (*models.GameRule, error) {
	r := *rule
	r.ID = f.nextID
	f.nextID++
	f.rules[r.ID] = &r
	copied := r
	return &copied, nil
}

func (f *fakeRuleStore) GetRuleByID(id int64) (*models.GameRule, error) {
	r, ok := f.rules[id]
	if !ok {
		return nil, nil
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRuleStore) UpdateRule(rule *models.GameRule) (*models.GameRule, error) {
	r := *rule
	f.rules[r.ID] = &r
	copied := r
	return &copied, nil
}

func (f *fakeRuleStore) DeleteRule(id int64) error {
	delete(f.rules, id)
	return nil
}

func newTestRuleService() *RuleService {
	games := &fakeGameGetter{games: map[int64]*models.Game{1: fizzBuzzGame()}}
	return NewRuleService(newFakeRuleStore(), games)
}

func TestAddRule(t *testing.T) {
	svc := newTestRuleService()

	created, err := svc.AddRule(&models.GameRule{GameID: 1, Divisor: 7, Word: "Bang"})
	if err != nil {
		t.Fatalf("AddRule() error = %v", err)
	}
	if created.ID == 0 {
		t.Error("created rule should have an ID")
	}
}

func TestAddRuleUnknownGame(t *testing.T) {
	svc := newTestRuleService()

	_, err := svc.AddRule(&models.GameRule{GameID: 99, Divisor: 7, Word: "Bang"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("AddRule(unknown game) error = %v, want ErrNotFound", err)
	}
}

func TestAddRuleValidation(t *testing.T) {
	svc := newTestRuleService()

	_, err := svc.AddRule(&models.GameRule{GameID: 1, Divisor: 0, Word: "Bang"})
	var verr validation.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("AddRule(zero divisor) error = %v, want ValidationError", err)
	}
}

func TestEditRulePartial(t *testing.T) {
	svc := newTestRuleService()

	created, err := svc.AddRule(&models.GameRule{GameID: 1, Divisor: 7, Word: "Bang"})
	if err != nil {
		t.Fatalf("AddRule() error = %v", err)
	}

	word := "Boom"
	updated, err := svc.EditRule(created.ID, RuleUpdate{Word: &word})
	if err != nil {
		t.Fatalf("EditRule() error = %v", err)
	}
	if updated.Word != "Boom" {
		t.Errorf("Word = %q, want Boom", updated.Word)
	}
	if updated.Divisor != 7 {
		t.Errorf("Divisor changed to %d, want 7 untouched", updated.Divisor)
	}
}

func TestEditRuleInvalidDivisor(t *testing.T) {
	svc := newTestRuleService()

	created, err := svc.AddRule(&models.GameRule{GameID: 1, Divisor: 7, Word: "Bang"})
	if err != nil {
		t.Fatalf("AddRule() error = %v", err)
	}

	divisor := -3
	_, err = svc.EditRule(created.ID, RuleUpdate{Divisor: &divisor})
	var verr validation.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("EditRule(negative divisor) error = %v, want ValidationError", err)
	}
}

func TestDeleteRuleNotFound(t *testing.T) {
	svc := newTestRuleService()

	err := svc.DeleteRule(99)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteRule(99) error = %v, want ErrNotFound", err)
	}
}
