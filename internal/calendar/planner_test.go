package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/mealtable/mealtable/internal/events"
	"github.com/mealtable/mealtable/internal/models"
	"github.com/mealtable/mealtable/internal/store"
	"github.com/mealtable/mealtable/internal/testutil"
	"github.com/mealtable/mealtable/internal/util"
)

// fakeStats is a StatsReader serving a fixed meal list.
type fakeStats struct {
	meals []models.Meal
}

func (f *fakeStats) Today(context.Context) *models.DailyStats {
	s := models.NewDailyStats(util.Today())
	s.Meals = f.meals
	s.RecomputeTotals()
	return s
}

func newTestPlanner(t *testing.T) (*Planner, *fakeStats, *store.Store, *events.Bus) {
	t.Helper()

	st := testutil.NewStore(t)
	bus := events.NewBus()
	stats := &fakeStats{}
	p := NewPlanner(context.Background(), st, bus, stats, util.NewIDGenerator())
	return p, stats, st, bus
}

func TestAddMealDedup(t *testing.T) {
	p, _, _, _ := newTestPlanner(t)
	ctx := context.Background()

	_, added := p.AddMeal(ctx, "2026-09-05", models.MealTypeDinner, "Pasta", 600, "🍝")
	if !added {
		t.Fatal("first add should succeed")
	}
	_, added = p.AddMeal(ctx, "2026-09-05", models.MealTypeDinner, "Pasta", 600, "🍝")
	if added {
		t.Error("duplicate (name, type) should be a no-op")
	}

	if got := len(p.MealsOn("2026-09-05")); got != 1 {
		t.Errorf("expected exactly 1 entry, got %d", got)
	}

	// Same name in a different slot is a distinct plan
	_, added = p.AddMeal(ctx, "2026-09-05", models.MealTypeLunch, "Pasta", 600, "🍝")
	if !added {
		t.Error("same name in a different slot should be added")
	}
}

func TestAddMealRecomputesDayTotal(t *testing.T) {
	p, _, _, _ := newTestPlanner(t)
	ctx := context.Background()

	p.AddMeal(ctx, "2026-09-05", models.MealTypeBreakfast, "Oatmeal", 300, "")
	p.AddMeal(ctx, "2026-09-05", models.MealTypeDinner, "Pasta", 600, "")

	if got := p.TotalFor("2026-09-05"); got != 900 {
		t.Errorf("day total = %v, want 900", got)
	}
}

func TestRemoveMealDeletesEmptyDay(t *testing.T) {
	p, _, _, _ := newTestPlanner(t)
	ctx := context.Background()

	meal, _ := p.AddMeal(ctx, "2026-09-05", models.MealTypeDinner, "Pasta", 600, "")

	if !p.RemoveMeal(ctx, "2026-09-05", meal.ID) {
		t.Fatal("RemoveMeal returned false")
	}

	if p.HasDay("2026-09-05") {
		t.Error("empty day key should be deleted, not retained")
	}
	if p.TotalFor("2026-09-05") != 0 {
		t.Error("totals entry should be gone")
	}
}

func TestRemoveMealUnknownIDNoOp(t *testing.T) {
	p, _, _, _ := newTestPlanner(t)
	ctx := context.Background()

	p.AddMeal(ctx, "2026-09-05", models.MealTypeDinner, "Pasta", 600, "")

	if p.RemoveMeal(ctx, "2026-09-05", "bogus") {
		t.Error("expected false for unknown id")
	}
	if len(p.MealsOn("2026-09-05")) != 1 {
		t.Error("no-op removal must not change state")
	}
}

func TestSyncWithDashboardMerges(t *testing.T) {
	p, stats, _, _ := newTestPlanner(t)
	ctx := context.Background()

	loggedAt := time.Date(2026, 9, 1, 8, 30, 0, 0, time.Local)
	stats.meals = []models.Meal{
		{ID: "m1", Name: "Eggs", Calories: 150, Timestamp: loggedAt},
	}

	p.SyncWithDashboard(ctx)

	today := util.Today()
	got := p.MealsOn(today)
	if len(got) != 1 {
		t.Fatalf("expected 1 synced entry, got %d", len(got))
	}
	if got[0].Name != "Eggs" {
		t.Errorf("name = %q", got[0].Name)
	}
	if got[0].Type != models.MealTypeBreakfast {
		t.Errorf("slot inferred from 08:30 should be breakfast, got %s", got[0].Type)
	}

	// Re-syncing must not duplicate the matched entry
	p.SyncWithDashboard(ctx)
	if got := p.MealsOn(today); len(got) != 1 {
		t.Errorf("expected sync to be idempotent, got %d entries", len(got))
	}
}

func TestSyncHourBuckets(t *testing.T) {
	tests := []struct {
		hour int
		want models.MealType
	}{
		{7, models.MealTypeBreakfast},
		{10, models.MealTypeBreakfast},
		{11, models.MealTypeLunch},
		{15, models.MealTypeLunch},
		{16, models.MealTypeDinner},
		{20, models.MealTypeDinner},
		{21, models.MealTypeSnack},
		{23, models.MealTypeSnack},
	}

	for _, tt := range tests {
		if got := models.MealTypeForHour(tt.hour); got != tt.want {
			t.Errorf("MealTypeForHour(%d) = %s, want %s", tt.hour, got, tt.want)
		}
	}
}

func TestSyncWithDashboardTeardown(t *testing.T) {
	p, stats, _, _ := newTestPlanner(t)
	ctx := context.Background()

	stats.meals = []models.Meal{
		{ID: "m1", Name: "Eggs", Calories: 150, Timestamp: time.Now()},
	}
	p.SyncWithDashboard(ctx)

	today := util.Today()
	if !p.HasDay(today) {
		t.Fatal("expected today populated after sync")
	}

	// Emptying the nutrition log wipes today's calendar state entirely
	stats.meals = nil
	p.SyncWithDashboard(ctx)

	if p.HasDay(today) {
		t.Error("expected today's key deleted, not present with zero entries")
	}
	if p.TotalFor(today) != 0 {
		t.Error("expected today's totals entry deleted")
	}
}

func TestSyncMatchWindow(t *testing.T) {
	p, stats, _, _ := newTestPlanner(t)
	ctx := context.Background()

	base := time.Now()
	stats.meals = []models.Meal{
		{ID: "m1", Name: "Eggs", Calories: 150, Timestamp: base},
	}
	p.SyncWithDashboard(ctx)

	// A second meal with the same name outside the 60s window is a
	// different meal and must be inserted too.
	stats.meals = append(stats.meals, models.Meal{
		ID: "m2", Name: "Eggs", Calories: 150, Timestamp: base.Add(2 * time.Minute),
	})
	p.SyncWithDashboard(ctx)

	if got := len(p.MealsOn(util.Today())); got != 2 {
		t.Errorf("expected 2 entries for same name outside match window, got %d", got)
	}
}

func TestRemoveDashboardMeal(t *testing.T) {
	p, stats, _, _ := newTestPlanner(t)
	ctx := context.Background()

	ts := time.Now()
	meal := models.Meal{ID: "m1", Name: "Eggs", Calories: 150, Timestamp: ts}
	stats.meals = []models.Meal{meal}
	p.SyncWithDashboard(ctx)

	p.RemoveDashboardMeal(ctx, meal)

	if p.HasDay(util.Today()) {
		t.Error("expected today deleted after removing its only entry")
	}
}

func TestPlannerPersistsAcrossInstances(t *testing.T) {
	p, stats, st, bus := newTestPlanner(t)
	ctx := context.Background()

	p.AddMeal(ctx, "2026-09-05", models.MealTypeDinner, "Pasta", 600, "")

	reloaded := NewPlanner(ctx, st, bus, stats, util.NewIDGenerator())
	if got := len(reloaded.MealsOn("2026-09-05")); got != 1 {
		t.Errorf("expected reloaded planner to have the entry, got %d", got)
	}
	if reloaded.TotalFor("2026-09-05") != 600 {
		t.Errorf("expected totals reloaded, got %v", reloaded.TotalFor("2026-09-05"))
	}
}

func TestStartResyncsOnDashboardEvents(t *testing.T) {
	p, stats, _, bus := newTestPlanner(t)
	ctx := context.Background()

	p.Start(ctx)

	meal := models.Meal{ID: "m1", Name: "Eggs", Calories: 150, Timestamp: time.Now()}
	stats.meals = []models.Meal{meal}

	calendarEvents := 0
	bus.Subscribe(events.CalendarUpdated, func(events.Event) { calendarEvents++ })

	// The stats service publishes dashboard-updated after a mutation;
	// the planner must resync and republish only calendar-updated.
	bus.Publish(events.DashboardUpdated, *stats.Today(ctx))

	if got := len(p.MealsOn(util.Today())); got != 1 {
		t.Fatalf("expected resync to insert the meal, got %d entries", got)
	}
	if calendarEvents != 1 {
		t.Errorf("expected 1 calendar-updated, got %d", calendarEvents)
	}

	// Removal event tears the matching entry down
	stats.meals = nil
	bus.Publish(events.MealRemoved, meal)

	if p.HasDay(util.Today()) {
		t.Error("expected entry removed after meal-removed event")
	}
}
