package goals

import (
	"context"
	"math"
	"testing"

	"github.com/mealtable/mealtable/internal/events"
	"github.com/mealtable/mealtable/internal/models"
	"github.com/mealtable/mealtable/internal/store"
	"github.com/mealtable/mealtable/internal/testutil"
)

// fakeHistory serves a fixed 7-day window.
type fakeHistory struct {
	days []*models.DailyStats
}

func (f *fakeHistory) History(context.Context, int) []*models.DailyStats {
	return f.days
}

func day(calories float64, meals int) *models.DailyStats {
	s := models.NewDailyStats("2026-09-01")
	for i := 0; i < meals; i++ {
		s.Meals = append(s.Meals, models.Meal{Calories: calories / float64(meals)})
	}
	s.Calories = calories
	return s
}

func newTestService(t *testing.T, hist *fakeHistory) (*Service, *store.Store, *events.Bus) {
	t.Helper()

	st := testutil.NewStore(t)
	bus := events.NewBus()
	if hist == nil {
		hist = &fakeHistory{}
	}
	return NewService(context.Background(), st, bus, hist), st, bus
}

func TestDefaultGoals(t *testing.T) {
	s, _, _ := newTestService(t, nil)

	g := s.Goals()
	if g.DailyCalories != 2000 {
		t.Errorf("default calories = %v, want 2000", g.DailyCalories)
	}
}

func TestSetGoalsValidation(t *testing.T) {
	s, _, _ := newTestService(t, nil)
	ctx := context.Background()

	tests := []struct {
		name                          string
		calories, protein, carbs, fat float64
		wantErr                       bool
	}{
		{"valid", 1800, 130, 180, 60, false},
		{"zero calories", 0, 130, 180, 60, true},
		{"negative protein", 1800, -1, 180, 60, true},
		{"zero fat", 1800, 130, 180, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.SetGoals(ctx, tt.calories, tt.protein, tt.carbs, tt.fat)
			if (err != nil) != tt.wantErr {
				t.Errorf("SetGoals error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	// The last valid set wins; invalid attempts leave state unchanged
	if got := s.Goals().DailyCalories; got != 1800 {
		t.Errorf("calories = %v, want 1800", got)
	}
}

func TestSetGoalsPersistsAndPublishes(t *testing.T) {
	s, st, bus := newTestService(t, nil)
	ctx := context.Background()

	var published models.Goals
	bus.Subscribe(events.GoalsUpdated, func(ev events.Event) {
		published = ev.Payload.(models.Goals)
	})

	if err := s.SetGoals(ctx, 2200, 150, 200, 70); err != nil {
		t.Fatalf("SetGoals: %v", err)
	}

	if published.DailyCalories != 2200 {
		t.Errorf("published calories = %v", published.DailyCalories)
	}

	reloaded := NewService(ctx, st, bus, &fakeHistory{})
	if reloaded.Goals().DailyCalories != 2200 {
		t.Error("expected goals to survive reload")
	}
}

func TestWeeklyAverageCountsEmptyDays(t *testing.T) {
	// 2 logged days (100 and 200 kcal), 5 empty days: the average is
	// 300/7, not 150.
	hist := &fakeHistory{days: []*models.DailyStats{
		day(100, 1),
		day(200, 1),
		day(0, 0), day(0, 0), day(0, 0), day(0, 0), day(0, 0),
	}}
	s, _, _ := newTestService(t, hist)

	sum := s.WeeklySummary(context.Background())

	want := math.Round(300.0 / 7.0 * 100) / 100
	if sum.AvgCalories != want {
		t.Errorf("AvgCalories = %v, want %v", sum.AvgCalories, want)
	}
	if sum.DaysLogged != 2 {
		t.Errorf("DaysLogged = %d, want 2", sum.DaysLogged)
	}
}

func TestDaysOnTrackWindow(t *testing.T) {
	s, _, _ := newTestService(t, nil)
	ctx := context.Background()
	s.SetGoals(ctx, 2000, 120, 225, 65)

	tests := []struct {
		calories float64
		onTrack  bool
	}{
		{1799, false},
		{1800, true}, // exactly 90%
		{2000, true},
		{2200, true}, // exactly 110%
		{2201, false},
		{0, false},
	}

	hist := &fakeHistory{}
	for _, tt := range tests {
		hist.days = append(hist.days, day(tt.calories, 1))
	}
	s.stats = hist

	sum := s.WeeklySummary(ctx)
	want := 0
	for _, tt := range tests {
		if tt.onTrack {
			want++
		}
	}
	if sum.DaysOnTrack != want {
		t.Errorf("DaysOnTrack = %d, want %d", sum.DaysOnTrack, want)
	}
}

func TestProfileSuggestion(t *testing.T) {
	s, _, _ := newTestService(t, nil)
	ctx := context.Background()

	if got := s.SuggestedCalories(ctx); got != 0 {
		t.Errorf("empty profile should suggest 0, got %v", got)
	}

	s.SetProfile(ctx, models.UserProfile{
		Age:      30,
		Sex:      "male",
		HeightCm: 180,
		WeightKg: 80,
		Activity: models.ActivityModerate,
	})

	// 10*80 + 6.25*180 - 5*30 + 5 = 1780; * 1.55 = 2759
	if got := s.SuggestedCalories(ctx); got != 2759 {
		t.Errorf("SuggestedCalories = %v, want 2759", got)
	}
}
