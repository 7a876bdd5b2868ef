package service

import (
	"errors"
	"testing"
	"time"

	"fizzquiz/internal/models"
	"fizzquiz/internal/repository"
	"fizzquiz/internal/validation"
)

type fakeGameStore struct {
	nextID     int64
	nextRuleID int64
	games      map[int64]*models.Game
}

func newFakeGameStore() *fakeGameStore {
	return &fakeGameStore{nextID: 1, nextRuleID: 1, games: make(map[int64]*models.Game)}
}

func (f *fakeGameStore) CreateGame(game *models.Game) (*models.Game, error) {
	g := *game
	g.ID = f.nextID
	g.CreatedAt = time.Now()
	f.nextID++
	for i := range g.Rules {
		g.Rules[i].ID = f.nextRuleID
		g.Rules[i].GameID = g.ID
		f.nextRuleID++
	}
	f.games[g.ID] = &g
	copied := g
	return &copied, nil
}

func (f *fakeGameStore) GetGameByID(id int64) (*models.Game, error) {
	g, ok := f.games[id]
	if !ok {
		return nil, nil
	}
	copied := *g
	return &copied, nil
}

func (f *fakeGameStore) GetGames(filter repository.GameFilter) ([]models.Game, error) {
	var out []models.Game
	for id := int64(1); id < f.nextID; id++ {
		g, ok := f.games[id]
		if !ok {
			continue
		}
		if filter.Name != "" && g.Name != filter.Name {
			continue
		}
		if filter.CreatedByUserID != 0 && g.CreatedByUserID != filter.CreatedByUserID {
			continue
		}
		out = append(out, *g)
	}
	return out, nil
}

func (f *fakeGameStore) UpdateGame(game *models.Game) (*models.Game, error) {
	g := *game
	f.games[g.ID] = &g
	copied := g
	return &copied, nil
}

func (f *fakeGameStore) DeleteGame(id int64) error {
	delete(f.games, id)
	return nil
}

func validGame() *models.Game {
	return &models.Game{
		Name:        "Classic FizzBuzz",
		TimeLimit:   60,
		NumberRange: 100,
		Rules: []models.GameRule{
			{Divisor: 3, Word: "Fizz"},
			{Divisor: 5, Word: "Buzz"},
		},
	}
}

func TestAddGame(t *testing.T) {
	svc := NewGameService(newFakeGameStore())

	created, err := svc.AddGame(validGame())
	if err != nil {
		t.Fatalf("AddGame() error = %v", err)
	}
	if created.ID == 0 {
		t.Error("created game should have an ID")
	}
	if len(created.Rules) != 2 {
		t.Errorf("len(Rules) = %d, want 2", len(created.Rules))
	}
}

func TestAddGameValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Game)
	}{
		{"blank name", func(g *models.Game) { g.Name = "  " }},
		{"zero time limit", func(g *models.Game) { g.TimeLimit = 0 }},
		{"negative number range", func(g *models.Game) { g.NumberRange = -1 }},
		{"zero divisor rule", func(g *models.Game) { g.Rules[0].Divisor = 0 }},
		{"blank rule word", func(g *models.Game) { g.Rules[1].Word = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewGameService(newFakeGameStore())
			g := validGame()
			tt.mutate(g)

			_, err := svc.AddGame(g)
			var verr validation.ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("AddGame() error = %v, want ValidationError", err)
			}
		})
	}
}

func TestAddGameDuplicateName(t *testing.T) {
	svc := NewGameService(newFakeGameStore())

	if _, err := svc.AddGame(validGame()); err != nil {
		t.Fatalf("AddGame() error = %v", err)
	}

	_, err := svc.AddGame(validGame())
	if !errors.Is(err, ErrGameNameTaken) {
		t.Errorf("duplicate AddGame() error = %v, want ErrGameNameTaken", err)
	}
}

func TestUpdateGamePartial(t *testing.T) {
	svc := NewGameService(newFakeGameStore())

	created, err := svc.AddGame(validGame())
	if err != nil {
		t.Fatalf("AddGame() error = %v", err)
	}

	limit := 90
	updated, err := svc.UpdateGame(created.ID, GameUpdate{TimeLimit: &limit})
	if err != nil {
		t.Fatalf("UpdateGame() error = %v", err)
	}
	if updated.TimeLimit != 90 {
		t.Errorf("TimeLimit = %d, want 90", updated.TimeLimit)
	}
	if updated.Name != created.Name {
		t.Errorf("Name changed to %q, want %q untouched", updated.Name, created.Name)
	}
	if updated.NumberRange != created.NumberRange {
		t.Errorf("NumberRange changed to %d, want %d untouched", updated.NumberRange, created.NumberRange)
	}
}

func TestUpdateGameNotFound(t *testing.T) {
	svc := NewGameService(newFakeGameStore())

	name := "Renamed"
	_, err := svc.UpdateGame(99, GameUpdate{Name: &name})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateGame(99) error = %v, want ErrNotFound", err)
	}
}

func TestGetGamesFiltered(t *testing.T) {
	store := newFakeGameStore()
	svc := NewGameService(store)

	g1 := validGame()
	g1.CreatedByUserID = 7
	if _, err := svc.AddGame(g1); err != nil {
		t.Fatalf("AddGame() error = %v", err)
	}
	g2 := validGame()
	g2.Name = "Sevens"
	g2.CreatedByUserID = 8
	if _, err := svc.AddGame(g2); err != nil {
		t.Fatalf("AddGame() error = %v", err)
	}

	byName, err := svc.GetGames(repository.GameFilter{Name: "Sevens"})
	if err != nil {
		t.Fatalf("GetGames() error = %v", err)
	}
	if len(byName) != 1 || byName[0].Name != "Sevens" {
		t.Errorf("GetGames(name) = %+v, want single Sevens game", byName)
	}

	byUser, err := svc.GetGames(repository.GameFilter{CreatedByUserID: 7})
	if err != nil {
		t.Fatalf("GetGames() error = %v", err)
	}
	if len(byUser) != 1 || byUser[0].CreatedByUserID != 7 {
		t.Errorf("GetGames(user) = %+v, want single game by user 7", byUser)
	}
}

func TestGetGameNotFound(t *testing.T) {
	svc := NewGameService(newFakeGameStore())

	_, err := svc.GetGame(99)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetGame(99) error = %v, want ErrNotFound", err)
	}
}
