// Package seed generates demo data for a fresh installation.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/mealtable/mealtable/internal/calendar"
	"github.com/mealtable/mealtable/internal/database"
	"github.com/mealtable/mealtable/internal/events"
	"github.com/mealtable/mealtable/internal/inventory"
	"github.com/mealtable/mealtable/internal/models"
	"github.com/mealtable/mealtable/internal/recipes"
	"github.com/mealtable/mealtable/internal/stats"
	"github.com/mealtable/mealtable/internal/store"
	"github.com/mealtable/mealtable/internal/util"
)

// Config controls what gets generated.
type Config struct {
	// Days of nutrition history to backfill, today excluded.
	HistoryDays int
	// Days of upcoming calendar plans, today included.
	PlannedDays int
	// RandomSeed makes generation reproducible.
	RandomSeed int64
}

// DefaultConfig returns sensible demo defaults.
func DefaultConfig() Config {
	return Config{
		HistoryDays: 6,
		PlannedDays: 4,
		RandomSeed:  1,
	}
}

// Generator populates a fresh database with demo data.
type Generator struct {
	store *store.Store
	cfg   Config
	rng   *rand.Rand
}

// NewGenerator creates a seed generator over the given database.
func NewGenerator(db *database.DB, cfg Config) *Generator {
	return &Generator{
		store: store.New(db),
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(cfg.RandomSeed)),
	}
}

// pantryStaples is the demo pantry contents.
var pantryStaples = []struct {
	name     string
	quantity float64
	unit     string
}{
	{"Eggs", 12, "pieces"},
	{"Milk", 2, "l"},
	{"Oats", 500, "g"},
	{"Rice", 1, "kg"},
	{"Chicken Breast", 4, "pieces"},
	{"Olive Oil", 500, "ml"},
	{"Onion", 3, "pieces"},
	{"Garlic", 1, "pieces"},
	{"Tomato", 4, "pieces"},
	{"Butter", 1, "packs"},
}

// demoMeals is the pool the history backfill draws from.
var demoMeals = []struct {
	name     string
	calories float64
	protein  float64
	carbs    float64
	fat      float64
}{
	{"Scrambled Eggs", 320, 20, 3, 25},
	{"Overnight Oatmeal", 360, 13, 58, 9},
	{"Grilled Chicken Salad", 420, 42, 12, 22},
	{"Chicken Stir Fry", 520, 38, 45, 20},
	{"Spaghetti Bolognese", 650, 32, 74, 24},
	{"Greek Yogurt with Honey", 210, 15, 28, 4},
	{"Tuna Sandwich", 380, 26, 38, 13},
	{"Vegetable Soup", 180, 6, 28, 5},
}

// planPool is what the calendar gets filled with.
var planPool = []struct {
	mealType models.MealType
	name     string
	calories float64
	emoji    string
}{
	{models.MealTypeBreakfast, "Overnight Oatmeal", 360, "🥣"},
	{models.MealTypeBreakfast, "Scrambled Eggs", 320, "🍳"},
	{models.MealTypeLunch, "Grilled Chicken Salad", 420, "🥗"},
	{models.MealTypeLunch, "Tuna Sandwich", 380, "🥪"},
	{models.MealTypeDinner, "Chicken Stir Fry", 520, "🥘"},
	{models.MealTypeDinner, "Spaghetti Bolognese", 650, "🍝"},
	{models.MealTypeSnack, "Greek Yogurt with Honey", 210, "🍯"},
}

// Generate populates the store. It refuses to run if the pantry key
// already holds data so a reseed never clobbers user state.
func (g *Generator) Generate(ctx context.Context) error {
	if _, exists := g.store.Get(ctx, store.KeyInventory); exists {
		return fmt.Errorf("database already contains pantry data")
	}

	bus := events.NewBus()
	idGen := util.NewIDGenerator()

	ledger := inventory.NewLedger(ctx, g.store, bus)
	statsSvc := stats.NewService(g.store, bus, idGen)
	planner := calendar.NewPlanner(ctx, g.store, bus, statsSvc, idGen)
	catalog := recipes.NewCatalog()
	recipeSvc := recipes.NewService(g.store, catalog, statsSvc, ledger)

	if err := g.fillPantry(ctx, ledger); err != nil {
		return err
	}
	if err := g.backfillHistory(ctx); err != nil {
		return err
	}
	if err := g.planWeek(ctx, planner); err != nil {
		return err
	}
	if err := g.addRecipes(ctx, catalog, recipeSvc); err != nil {
		return err
	}

	return nil
}

func (g *Generator) fillPantry(ctx context.Context, ledger *inventory.Ledger) error {
	for _, s := range pantryStaples {
		if _, ok := ledger.AddIngredient(ctx, s.name, s.quantity, s.unit); !ok {
			return fmt.Errorf("seeding ingredient %q", s.name)
		}
	}
	return nil
}

func (g *Generator) backfillHistory(ctx context.Context) error {
	for day := 1; day <= g.cfg.HistoryDays; day++ {
		date := util.FormatDate(time.Now().AddDate(0, 0, -day))
		daily := models.NewDailyStats(date)

		mealsPerDay := 2 + g.rng.Intn(2)
		for i := 0; i < mealsPerDay; i++ {
			m := demoMeals[g.rng.Intn(len(demoMeals))]
			daily.Meals = append(daily.Meals, models.Meal{
				ID:        fmt.Sprintf("seed-%s-%d", date, i),
				Name:      m.name,
				Calories:  m.calories,
				Protein:   m.protein,
				Carbs:     m.carbs,
				Fat:       m.fat,
				Timestamp: time.Now().AddDate(0, 0, -day),
			})
		}
		daily.RecomputeTotals()

		if !store.SetJSON(ctx, g.store, store.StatsKey(date), daily) {
			return fmt.Errorf("seeding history for %s", date)
		}
	}
	return nil
}

func (g *Generator) planWeek(ctx context.Context, planner *calendar.Planner) error {
	for day := 0; day < g.cfg.PlannedDays; day++ {
		date := util.FormatDate(time.Now().AddDate(0, 0, day))

		// One breakfast/lunch/dinner pick per day
		for _, mealType := range []models.MealType{
			models.MealTypeBreakfast, models.MealTypeLunch, models.MealTypeDinner,
		} {
			candidates := make([]int, 0, len(planPool))
			for i, p := range planPool {
				if p.mealType == mealType {
					candidates = append(candidates, i)
				}
			}
			if len(candidates) == 0 {
				continue
			}
			p := planPool[candidates[g.rng.Intn(len(candidates))]]
			planner.AddMeal(ctx, date, p.mealType, p.name, p.calories, p.emoji)
		}
	}
	return nil
}

func (g *Generator) addRecipes(ctx context.Context, catalog *recipes.Catalog, svc *recipes.Service) error {
	// Add a couple of catalog favorites to the dashboard
	names := []string{"Overnight Oatmeal", "Chicken Stir Fry"}
	for _, name := range names {
		recipe, ok := catalog.FindByName(name)
		if !ok {
			continue
		}
		if _, err := svc.Add(ctx, recipe.ID); err != nil {
			return fmt.Errorf("seeding recipe %q: %w", name, err)
		}
	}
	return nil
}
