// Package goals implements the daily macro targets, the user profile
// behind the suggested calorie goal, and the 7-day rollup derived from
// the nutrition log.
package goals

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/mealtable/mealtable/internal/events"
	"github.com/mealtable/mealtable/internal/models"
	"github.com/mealtable/mealtable/internal/store"
)

// StatsHistory is the read-only view of the nutrition log the weekly
// rollup is computed from.
type StatsHistory interface {
	History(ctx context.Context, n int) []*models.DailyStats
}

// WeeklySummary is the 7-day rollup: computed on demand, never
// persisted.
type WeeklySummary struct {
	AvgCalories float64
	AvgProtein  float64
	AvgCarbs    float64
	AvgFat      float64
	DaysOnTrack int
	DaysLogged  int
}

// Service owns the current goals record and user profile.
type Service struct {
	store *store.Store
	bus   *events.Bus
	stats StatsHistory

	goals models.Goals
}

// NewService creates a goals Service, loading the persisted goals or
// falling back to defaults.
func NewService(ctx context.Context, st *store.Store, bus *events.Bus, stats StatsHistory) *Service {
	s := &Service{
		store: st,
		bus:   bus,
		stats: stats,
		goals: models.DefaultGoals(),
	}

	var loaded models.Goals
	if store.GetJSON(ctx, st, store.KeyGoals, &loaded) {
		if err := loaded.Validate(); err == nil {
			s.goals = loaded
		} else {
			slog.Warn("ignoring invalid persisted goals", "error", err)
		}
	}

	return s
}

// Goals returns the current targets.
func (s *Service) Goals() models.Goals {
	return s.goals
}

// SetGoals validates and persists new targets, then publishes
// goals-updated. Invalid targets leave state unchanged.
func (s *Service) SetGoals(ctx context.Context, calories, protein, carbs, fat float64) error {
	g := models.Goals{
		DailyCalories: calories,
		DailyProtein:  protein,
		DailyCarbs:    carbs,
		DailyFat:      fat,
	}
	if err := g.Validate(); err != nil {
		return fmt.Errorf("invalid goals: %w", err)
	}

	s.goals = g
	if !store.SetJSON(ctx, s.store, store.KeyGoals, g) {
		slog.Warn("goals not saved")
	}

	s.bus.Publish(events.GoalsUpdated, g)
	return nil
}

// WeeklySummary computes the rollup over the last 7 days, today
// inclusive. Days with no recorded stats contribute zero and still
// count in the denominator, which biases averages downward for new
// users; a deliberate simplicity trade-off.
func (s *Service) WeeklySummary(ctx context.Context) WeeklySummary {
	const window = 7

	days := s.stats.History(ctx, window)

	var sum WeeklySummary
	for _, day := range days {
		sum.AvgCalories += day.Calories
		sum.AvgProtein += day.Protein
		sum.AvgCarbs += day.Carbs
		sum.AvgFat += day.Fat

		if len(day.Meals) > 0 {
			sum.DaysLogged++
		}
		if s.onTrack(day.Calories) {
			sum.DaysOnTrack++
		}
	}

	sum.AvgCalories = round2(sum.AvgCalories / window)
	sum.AvgProtein = round2(sum.AvgProtein / window)
	sum.AvgCarbs = round2(sum.AvgCarbs / window)
	sum.AvgFat = round2(sum.AvgFat / window)

	return sum
}

// onTrack reports whether a day's calories land within 90-110% of the
// daily target.
func (s *Service) onTrack(calories float64) bool {
	target := s.goals.DailyCalories
	if target <= 0 {
		return false
	}
	return calories >= target*0.90 && calories <= target*1.10
}

// Profile returns the persisted user profile, zero if never set.
func (s *Service) Profile(ctx context.Context) models.UserProfile {
	var p models.UserProfile
	store.GetJSON(ctx, s.store, store.KeyUserProfile, &p)
	return p
}

// SetProfile persists the user profile.
func (s *Service) SetProfile(ctx context.Context, p models.UserProfile) bool {
	return store.SetJSON(ctx, s.store, store.KeyUserProfile, p)
}

// SuggestedCalories returns the profile-derived daily calorie
// suggestion, zero when the profile is incomplete.
func (s *Service) SuggestedCalories(ctx context.Context) float64 {
	p := s.Profile(ctx)
	return p.SuggestedCalories()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
