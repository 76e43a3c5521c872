package recipes

import (
	"context"
	"strings"
	"testing"

	"github.com/mealtable/mealtable/internal/models"
	"github.com/mealtable/mealtable/internal/recipes"
	"github.com/mealtable/mealtable/internal/testutil"
)

// nullLogger satisfies recipes.MealLogger without recording anything.
type nullLogger struct{}

func (nullLogger) AddMeal(ctx context.Context, name string, calories, protein, carbs, fat float64) (models.Meal, error) {
	return models.Meal{Name: name, Calories: calories}, nil
}

// nullPantry satisfies recipes.PantryConsumer.
type nullPantry struct{}

func (nullPantry) Consume(context.Context, string, float64) bool { return false }

func newTestCatalogView(t *testing.T) (*CatalogView, *recipes.Service) {
	t.Helper()

	st := testutil.NewStore(t)
	svc := recipes.NewService(st, recipes.NewCatalog(), nullLogger{}, nullPantry{})
	return NewCatalogView(svc), svc
}

func TestCatalogView_RenderList(t *testing.T) {
	view, _ := newTestCatalogView(t)
	view.Refresh(context.Background())

	output := view.Render(120, 40)
	if !strings.Contains(output, "RECIPES") {
		t.Error("expected title in output")
	}
	// Catalog is name-sorted; at least one known recipe shows
	if !strings.Contains(output, "Grilled Chicken Salad") {
		t.Error("expected catalog recipe in output")
	}
}

func TestCatalogView_SelectedRecipe(t *testing.T) {
	view, _ := newTestCatalogView(t)
	view.Refresh(context.Background())

	first := view.SelectedRecipe()
	if first == nil {
		t.Fatal("expected a selected recipe")
	}

	view.MoveDown()
	second := view.SelectedRecipe()
	if second == nil || second.ID == first.ID {
		t.Error("expected MoveDown to change selection")
	}
}

func TestCatalogView_AddedMarker(t *testing.T) {
	view, svc := newTestCatalogView(t)
	ctx := context.Background()

	view.Refresh(ctx)
	recipe := view.SelectedRecipe()
	if recipe == nil {
		t.Fatal("expected a selected recipe")
	}

	if view.IsAdded(recipe.ID) {
		t.Error("expected recipe not added initially")
	}

	if _, err := svc.Add(ctx, recipe.ID); err != nil {
		t.Fatalf("Add: %v", err)
	}
	view.Refresh(ctx)

	if !view.IsAdded(recipe.ID) {
		t.Error("expected recipe marked as added")
	}

	output := view.Render(120, 40)
	if !strings.Contains(output, "✓") {
		t.Error("expected added checkmark in output")
	}
}

func TestCatalogView_RenderDetail(t *testing.T) {
	view, _ := newTestCatalogView(t)
	view.Refresh(context.Background())

	recipe := view.SelectedRecipe()
	if recipe == nil {
		t.Fatal("expected a selected recipe")
	}

	output := view.RenderDetail(recipe)
	if !strings.Contains(output, strings.ToUpper(recipe.Name)) {
		t.Error("expected recipe name in detail")
	}
	if !strings.Contains(output, "INGREDIENTS") {
		t.Error("expected ingredients section")
	}
	if !strings.Contains(output, "INSTRUCTIONS") {
		t.Error("expected instructions section")
	}
}

func TestCatalogView_RenderDetail_Nil(t *testing.T) {
	view, _ := newTestCatalogView(t)

	output := view.RenderDetail(nil)
	if !strings.Contains(output, "No recipe selected") {
		t.Error("expected nil-recipe message")
	}
}
