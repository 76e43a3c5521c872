package recipes

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mealtable/mealtable/internal/models"
	"github.com/mealtable/mealtable/internal/store"
)

// MealLogger appends a cooked recipe to the daily nutrition log.
type MealLogger interface {
	AddMeal(ctx context.Context, name string, calories, protein, carbs, fat float64) (models.Meal, error)
}

// PantryConsumer decrements pantry stock for a cooked recipe's
// ingredients.
type PantryConsumer interface {
	Consume(ctx context.Context, name string, quantity float64) bool
}

// Service owns the user's added-recipe list. Each added recipe is a
// full snapshot of the catalog entry at add time; later catalog
// changes never propagate to copies already added.
type Service struct {
	store   *store.Store
	catalog *Catalog
	log     MealLogger
	pantry  PantryConsumer
}

// NewService creates a recipes Service.
func NewService(st *store.Store, catalog *Catalog, log MealLogger, pantry PantryConsumer) *Service {
	return &Service{store: st, catalog: catalog, log: log, pantry: pantry}
}

// Catalog returns the underlying catalog for read-only browsing.
func (s *Service) Catalog() *Catalog {
	return s.catalog
}

// Added returns the user's added recipes in add order.
func (s *Service) Added(ctx context.Context) []models.AddedRecipe {
	var added []models.AddedRecipe
	store.GetJSON(ctx, s.store, store.KeyAddedRecipes, &added)
	return added
}

// Add snapshots a catalog recipe onto the user's list. Adding a recipe
// already on the list is a silent no-op.
func (s *Service) Add(ctx context.Context, recipeID string) (models.AddedRecipe, error) {
	recipe, ok := s.catalog.Get(recipeID)
	if !ok {
		return models.AddedRecipe{}, fmt.Errorf("unknown recipe %q", recipeID)
	}

	added := s.Added(ctx)
	for _, a := range added {
		if a.ID == recipeID {
			return a, nil
		}
	}

	snapshot := models.AddedRecipe{Recipe: recipe, AddedAt: time.Now()}
	added = append(added, snapshot)

	if !store.SetJSON(ctx, s.store, store.KeyAddedRecipes, added) {
		slog.Warn("added recipes not saved")
	}
	return snapshot, nil
}

// Remove takes a recipe off the user's list. An unknown id is a no-op.
func (s *Service) Remove(ctx context.Context, recipeID string) bool {
	added := s.Added(ctx)
	idx := -1
	for i, a := range added {
		if a.ID == recipeID {
			idx = i
			break
		}
	}
	if idx < 0 {
		slog.Debug("removal of recipe not on list ignored", "id", recipeID)
		return false
	}

	added = append(added[:idx], added[idx+1:]...)
	return store.SetJSON(ctx, s.store, store.KeyAddedRecipes, added)
}

// Cook logs a recipe's nutrition into today's log and decrements its
// ingredients from the pantry. The recipe may come from the added list
// or straight from the catalog.
func (s *Service) Cook(ctx context.Context, recipeID string) error {
	recipe, ok := s.findRecipe(ctx, recipeID)
	if !ok {
		return fmt.Errorf("unknown recipe %q", recipeID)
	}

	if _, err := s.log.AddMeal(ctx, recipe.Name, recipe.Calories, recipe.Protein, recipe.Carbs, recipe.Fat); err != nil {
		return fmt.Errorf("logging cooked recipe: %w", err)
	}

	for _, ing := range recipe.Ingredients {
		s.pantry.Consume(ctx, ing.Name, ing.Quantity)
	}

	return nil
}

// findRecipe prefers the user's snapshot over the catalog entry so a
// cooked recipe matches what the user actually added.
func (s *Service) findRecipe(ctx context.Context, recipeID string) (models.Recipe, bool) {
	for _, a := range s.Added(ctx) {
		if a.ID == recipeID {
			return a.Recipe, true
		}
	}
	return s.catalog.Get(recipeID)
}
