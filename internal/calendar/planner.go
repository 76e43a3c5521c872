// Package calendar implements the monthly meal planner: per-date meal
// assignments reconciled with the daily nutrition log, and the derived
// grocery list.
package calendar

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/mealtable/mealtable/internal/events"
	"github.com/mealtable/mealtable/internal/models"
	"github.com/mealtable/mealtable/internal/store"
	"github.com/mealtable/mealtable/internal/util"
)

// StatsReader is the read-only view of the daily nutrition log the
// planner reconciles against.
type StatsReader interface {
	Today(ctx context.Context) *models.DailyStats
}

// InventoryReader is the read-only view of the pantry used for grocery
// shortage calculation.
type InventoryReader interface {
	QuantityOf(name string) float64
}

// Planner owns the mapping of date key to planned meals, plus the
// per-date calorie totals derived from it. Today's entries are kept
// consistent with the nutrition log by approximate name and timestamp
// matching, since the two stores share no primary key.
type Planner struct {
	store       *store.Store
	bus         *events.Bus
	statsReader StatsReader
	idGen       *util.IDGenerator

	meals  map[string][]models.CalendarMeal
	totals map[string]float64
}

// NewPlanner creates a Planner and loads persisted state.
func NewPlanner(ctx context.Context, st *store.Store, bus *events.Bus, stats StatsReader, idGen *util.IDGenerator) *Planner {
	p := &Planner{
		store:       st,
		bus:         bus,
		statsReader: stats,
		idGen:       idGen,
		meals:       make(map[string][]models.CalendarMeal),
		totals:      make(map[string]float64),
	}

	var meals map[string][]models.CalendarMeal
	if store.GetJSON(ctx, st, store.KeyMeals, &meals) && meals != nil {
		p.meals = meals
	}
	var totals map[string]float64
	if store.GetJSON(ctx, st, store.KeyDailyTotals, &totals) && totals != nil {
		p.totals = totals
	}

	return p
}

// Start subscribes the planner to nutrition log changes so today's
// calendar entries stay in sync. Calendar persistence publishes only
// calendar-updated, never the topics it listens on, so a change never
// cascades more than one hop.
func (p *Planner) Start(ctx context.Context) {
	p.bus.Subscribe(events.DashboardUpdated, func(events.Event) {
		p.SyncWithDashboard(ctx)
	})
	p.bus.Subscribe(events.MealRemoved, func(ev events.Event) {
		if meal, ok := ev.Payload.(models.Meal); ok {
			p.RemoveDashboardMeal(ctx, meal)
		}
	})
}

// AddMeal plans a meal on a date. A meal with the same name and slot
// already planned for that date makes the call a silent no-op.
// Returns the stored entry and whether it was newly added.
func (p *Planner) AddMeal(ctx context.Context, date string, mealType models.MealType, name string, calories float64, emoji string) (models.CalendarMeal, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		slog.Warn("rejecting unnamed calendar meal", "date", date)
		return models.CalendarMeal{}, false
	}
	if !mealType.IsValid() {
		mealType = models.MealTypeMeal
	}

	for _, existing := range p.meals[date] {
		if strings.EqualFold(existing.Name, name) && existing.Type == mealType {
			return existing, false
		}
	}

	meal := models.CalendarMeal{
		ID:        p.idGen.NewID(),
		Type:      mealType,
		Name:      name,
		Emoji:     emoji,
		Calories:  calories,
		Timestamp: time.Now(),
	}
	p.meals[date] = append(p.meals[date], meal)
	p.recomputeTotal(date)

	p.persist(ctx)
	p.publish()
	return meal, true
}

// RemoveMeal removes the planned meal with the given ID from a date.
// When the date's list becomes empty the date key is deleted along
// with its totals entry; empty placeholder days are never retained.
func (p *Planner) RemoveMeal(ctx context.Context, date, id string) bool {
	list := p.meals[date]
	idx := -1
	for i, m := range list {
		if m.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		slog.Debug("removal of unknown calendar meal ignored", "date", date, "id", id)
		return false
	}

	p.meals[date] = append(list[:idx], list[idx+1:]...)
	p.dropDayIfEmpty(date)

	p.persist(ctx)
	p.publish()
	return true
}

// MealsOn returns the planned meals for a date.
func (p *Planner) MealsOn(date string) []models.CalendarMeal {
	return p.meals[date]
}

// TotalFor returns the planned calorie total for a date, zero if the
// date has no entries.
func (p *Planner) TotalFor(date string) float64 {
	return p.totals[date]
}

// HasDay reports whether a date has any planned meals.
func (p *Planner) HasDay(date string) bool {
	_, ok := p.meals[date]
	return ok
}

// Dates returns all dates with planned meals, sorted.
func (p *Planner) Dates() []string {
	out := make([]string, 0, len(p.meals))
	for d := range p.meals {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// SyncWithDashboard reconciles today's calendar entries with the
// nutrition log, one direction only. Every logged meal missing from
// the calendar is inserted with a slot inferred from its hour. If the
// log is empty, today's calendar entry and its totals entry are
// deleted entirely; clearing the log elsewhere wipes calendar state
// for the day as an intentional cascade.
func (p *Planner) SyncWithDashboard(ctx context.Context) {
	today := util.Today()
	logged := p.statsReader.Today(ctx)

	if len(logged.Meals) == 0 {
		if !p.HasDay(today) {
			return
		}
		delete(p.meals, today)
		delete(p.totals, today)
		p.persist(ctx)
		p.publish()
		return
	}

	changed := false
	for _, meal := range logged.Meals {
		if p.findMatch(today, meal) >= 0 {
			continue
		}
		p.meals[today] = append(p.meals[today], models.CalendarMeal{
			ID:        p.idGen.NewID(),
			Type:      models.MealTypeForHour(meal.Timestamp.Hour()),
			Name:      meal.Name,
			Calories:  meal.Calories,
			Timestamp: meal.Timestamp,
		})
		changed = true
	}

	if changed {
		p.recomputeTotal(today)
		p.persist(ctx)
		p.publish()
	}
}

// RemoveDashboardMeal removes from today's calendar any entry matching
// a meal that was removed from the nutrition log; the day is deleted
// if it becomes empty.
func (p *Planner) RemoveDashboardMeal(ctx context.Context, meal models.Meal) {
	today := util.Today()

	idx := p.findMatch(today, meal)
	if idx < 0 {
		return
	}

	list := p.meals[today]
	p.meals[today] = append(list[:idx], list[idx+1:]...)
	p.dropDayIfEmpty(today)

	p.persist(ctx)
	p.publish()
}

// findMatch returns the index of the calendar entry on date matching
// the logged meal by name and timestamp proximity, or -1.
func (p *Planner) findMatch(date string, meal models.Meal) int {
	for i := range p.meals[date] {
		if p.meals[date][i].MatchesLogged(meal) {
			return i
		}
	}
	return -1
}

func (p *Planner) recomputeTotal(date string) {
	var total float64
	for _, m := range p.meals[date] {
		total += m.Calories
	}
	p.totals[date] = math.Round(total)
}

func (p *Planner) dropDayIfEmpty(date string) {
	if len(p.meals[date]) == 0 {
		delete(p.meals, date)
		delete(p.totals, date)
		return
	}
	p.recomputeTotal(date)
}

func (p *Planner) persist(ctx context.Context) {
	if !store.SetJSON(ctx, p.store, store.KeyMeals, p.meals) {
		slog.Warn("calendar meals not saved")
	}
	if !store.SetJSON(ctx, p.store, store.KeyDailyTotals, p.totals) {
		slog.Warn("calendar totals not saved")
	}
}

func (p *Planner) publish() {
	p.bus.Publish(events.CalendarUpdated, p.Dates())
}
