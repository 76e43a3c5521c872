// Package stats implements the daily nutrition log: the running
// calorie and macro totals plus the list of logged meals for each
// calendar date.
package stats

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mealtable/mealtable/internal/events"
	"github.com/mealtable/mealtable/internal/models"
	"github.com/mealtable/mealtable/internal/store"
	"github.com/mealtable/mealtable/internal/util"
)

// Service owns the per-date daily stats records. Totals are always
// recomputed from the meal list, never adjusted independently, so they
// cannot drift.
type Service struct {
	store *store.Store
	bus   *events.Bus
	idGen *util.IDGenerator
}

// NewService creates a stats Service.
func NewService(st *store.Store, bus *events.Bus, idGen *util.IDGenerator) *Service {
	return &Service{store: st, bus: bus, idGen: idGen}
}

// StatsFor loads the stats record for a date key, returning an empty
// record if none is persisted.
func (s *Service) StatsFor(ctx context.Context, date string) *models.DailyStats {
	stats := models.NewDailyStats(date)
	store.GetJSON(ctx, s.store, store.StatsKey(date), stats)
	stats.Date = date
	return stats
}

// Today returns the stats record for the current local calendar date.
// The date is resolved at call time so a session spanning midnight
// starts logging into the new day.
func (s *Service) Today(ctx context.Context) *models.DailyStats {
	return s.StatsFor(ctx, util.Today())
}

// AddMeal validates and appends a meal to today's log with the current
// timestamp, recomputes totals, persists, and publishes the updated
// record.
func (s *Service) AddMeal(ctx context.Context, name string, calories, protein, carbs, fat float64) (models.Meal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Meal{}, errors.New("meal name is required")
	}
	if calories < 0 || protein < 0 || carbs < 0 || fat < 0 {
		return models.Meal{}, errors.New("nutrition values must not be negative")
	}

	meal := models.Meal{
		ID:        s.idGen.NewID(),
		Name:      name,
		Calories:  calories,
		Protein:   protein,
		Carbs:     carbs,
		Fat:       fat,
		Timestamp: time.Now(),
	}

	stats := s.Today(ctx)
	stats.Meals = append(stats.Meals, meal)
	stats.RecomputeTotals()

	if !s.persist(ctx, stats) {
		return meal, fmt.Errorf("meal %q logged but not saved", name)
	}

	s.bus.Publish(events.DashboardUpdated, *stats)
	return meal, nil
}

// RemoveMeal removes the meal with the given ID from today's log. An
// unknown ID is a no-op so stale handles cannot remove the wrong
// entry. The removed meal is published on the meal-removed topic
// before the updated record goes out on dashboard-updated.
func (s *Service) RemoveMeal(ctx context.Context, id string) bool {
	stats := s.Today(ctx)

	idx := stats.MealIndex(id)
	if idx < 0 {
		slog.Debug("removal of unknown meal ignored", "id", id)
		return false
	}

	removed := stats.Meals[idx]
	stats.Meals = append(stats.Meals[:idx], stats.Meals[idx+1:]...)
	stats.RecomputeTotals()

	s.persist(ctx, stats)

	s.bus.Publish(events.MealRemoved, removed)
	s.bus.Publish(events.DashboardUpdated, *stats)
	return true
}

// Reset zeroes today's totals and clears the meal log for today only.
func (s *Service) Reset(ctx context.Context) {
	stats := models.NewDailyStats(util.Today())
	s.persist(ctx, stats)
	s.bus.Publish(events.DashboardUpdated, *stats)
}

// History returns stats records for the n dates ending today, oldest
// first. Dates with no persisted record yield empty records.
func (s *Service) History(ctx context.Context, n int) []*models.DailyStats {
	dates := util.LastNDates(time.Now(), n)
	out := make([]*models.DailyStats, 0, len(dates))
	for _, d := range dates {
		out = append(out, s.StatsFor(ctx, d))
	}
	return out
}

func (s *Service) persist(ctx context.Context, stats *models.DailyStats) bool {
	if !store.SetJSON(ctx, s.store, store.StatsKey(stats.Date), stats) {
		slog.Warn("daily stats not saved", "date", stats.Date)
		return false
	}
	return true
}
