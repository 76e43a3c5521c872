package recipes

import (
	"context"
	"testing"

	"github.com/mealtable/mealtable/internal/models"
	"github.com/mealtable/mealtable/internal/testutil"
)

// recordingLogger records meals handed to the nutrition log.
type recordingLogger struct {
	meals []models.Meal
}

func (r *recordingLogger) AddMeal(_ context.Context, name string, calories, protein, carbs, fat float64) (models.Meal, error) {
	m := models.Meal{Name: name, Calories: calories, Protein: protein, Carbs: carbs, Fat: fat}
	r.meals = append(r.meals, m)
	return m, nil
}

// recordingPantry records consumption requests.
type recordingPantry struct {
	consumed map[string]float64
}

func (r *recordingPantry) Consume(_ context.Context, name string, quantity float64) bool {
	if r.consumed == nil {
		r.consumed = make(map[string]float64)
	}
	r.consumed[name] += quantity
	return true
}

func newTestService(t *testing.T) (*Service, *recordingLogger, *recordingPantry) {
	t.Helper()

	st := testutil.NewStore(t)
	log := &recordingLogger{}
	pantry := &recordingPantry{}
	return NewService(st, NewCatalog(), log, pantry), log, pantry
}

func TestCatalogLookup(t *testing.T) {
	c := NewCatalog()

	if len(c.All()) == 0 {
		t.Fatal("catalog should not be empty")
	}

	r, ok := c.Get("scrambled-eggs")
	if !ok || r.Name != "Scrambled Eggs" {
		t.Errorf("Get(scrambled-eggs) = %+v, %v", r, ok)
	}

	if _, ok := c.Get("no-such-recipe"); ok {
		t.Error("unknown id should not resolve")
	}

	r, ok = c.FindByName("scrambled eggs")
	if !ok || r.ID != "scrambled-eggs" {
		t.Errorf("FindByName should match case-insensitively, got %+v, %v", r, ok)
	}
}

func TestAddSnapshotIdempotent(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := context.Background()

	if _, err := s.Add(ctx, "beef-tacos"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := s.Add(ctx, "beef-tacos"); err != nil {
		t.Fatalf("second Add: %v", err)
	}

	added := s.Added(ctx)
	if len(added) != 1 {
		t.Fatalf("expected 1 snapshot, got %d", len(added))
	}
	if added[0].AddedAt.IsZero() {
		t.Error("snapshot should carry an add timestamp")
	}
}

func TestAddUnknownRecipe(t *testing.T) {
	s, _, _ := newTestService(t)

	if _, err := s.Add(context.Background(), "no-such-recipe"); err == nil {
		t.Error("expected error for unknown recipe id")
	}
}

func TestRemove(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := context.Background()

	s.Add(ctx, "beef-tacos")
	s.Add(ctx, "chicken-curry")

	if !s.Remove(ctx, "beef-tacos") {
		t.Fatal("Remove returned false")
	}

	added := s.Added(ctx)
	if len(added) != 1 || added[0].ID != "chicken-curry" {
		t.Errorf("unexpected list after removal: %v", added)
	}

	if s.Remove(ctx, "beef-tacos") {
		t.Error("removing an absent recipe should report false")
	}
}

func TestCookLogsAndConsumes(t *testing.T) {
	s, log, pantry := newTestService(t)
	ctx := context.Background()

	if err := s.Cook(ctx, "scrambled-eggs"); err != nil {
		t.Fatalf("Cook: %v", err)
	}

	if len(log.meals) != 1 {
		t.Fatalf("expected 1 logged meal, got %d", len(log.meals))
	}
	if log.meals[0].Name != "Scrambled Eggs" || log.meals[0].Calories != 320 {
		t.Errorf("unexpected logged meal: %+v", log.meals[0])
	}

	if pantry.consumed["Eggs"] != 3 {
		t.Errorf("expected 3 eggs consumed, got %v", pantry.consumed["Eggs"])
	}
	if pantry.consumed["Butter"] != 1 {
		t.Errorf("expected 1 butter consumed, got %v", pantry.consumed["Butter"])
	}
}

func TestCookUnknownRecipe(t *testing.T) {
	s, log, _ := newTestService(t)

	if err := s.Cook(context.Background(), "no-such-recipe"); err == nil {
		t.Error("expected error")
	}
	if len(log.meals) != 0 {
		t.Error("failed cook must not log a meal")
	}
}

func TestSnapshotSurvivesCatalogDivergence(t *testing.T) {
	s, log, _ := newTestService(t)
	ctx := context.Background()

	snap, _ := s.Add(ctx, "beef-tacos")

	// Simulate the catalog changing after the snapshot was taken
	diverged := s.catalog.byID["beef-tacos"]
	diverged.Calories = 9999
	s.catalog.byID["beef-tacos"] = diverged

	if err := s.Cook(ctx, "beef-tacos"); err != nil {
		t.Fatalf("Cook: %v", err)
	}

	if log.meals[0].Calories != snap.Calories {
		t.Errorf("cook should use the snapshot (%v), got %v", snap.Calories, log.meals[0].Calories)
	}
}
