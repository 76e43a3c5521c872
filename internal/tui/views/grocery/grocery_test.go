package grocery

import (
	"context"
	"strings"
	"testing"

	"github.com/mealtable/mealtable/internal/calendar"
	"github.com/mealtable/mealtable/internal/events"
	"github.com/mealtable/mealtable/internal/models"
	"github.com/mealtable/mealtable/internal/testutil"
	"github.com/mealtable/mealtable/internal/util"
)

type staticStats struct{}

func (staticStats) Today(context.Context) *models.DailyStats {
	return models.NewDailyStats(util.Today())
}

// emptyPantry reports no stock for any ingredient.
type emptyPantry struct{}

func (emptyPantry) QuantityOf(string) float64 { return 0 }

func newTestGroceryView(t *testing.T) (*GroceryView, *calendar.Planner) {
	t.Helper()

	st := testutil.NewStore(t)
	p := calendar.NewPlanner(context.Background(), st, events.NewBus(), staticStats{}, util.NewIDGenerator())
	view := NewGroceryView(p, calendar.KeywordSource{}, emptyPantry{})
	return view, p
}

func TestGroceryView_EmptyRender(t *testing.T) {
	view, _ := newTestGroceryView(t)
	view.Refresh(context.Background())

	output := view.Render(120, 40)
	if !strings.Contains(output, "GROCERY LIST") {
		t.Error("expected title in output")
	}
	if !strings.Contains(output, "Nothing to buy") {
		t.Error("expected empty state message")
	}
}

func TestGroceryView_ItemsFromPlannedMeals(t *testing.T) {
	view, p := newTestGroceryView(t)
	ctx := context.Background()

	p.AddMeal(ctx, util.Today(), models.MealTypeDinner, "Chicken Stir Fry", 520, "")
	view.Refresh(ctx)

	if view.Remaining() == 0 {
		t.Fatal("expected grocery items for planned meal")
	}

	output := view.Render(120, 40)
	if !strings.Contains(output, "[ ]") {
		t.Error("expected unchecked items in output")
	}
	if !strings.Contains(output, "remaining") {
		t.Error("expected remaining count in output")
	}
}

func TestGroceryView_ToggleSelected(t *testing.T) {
	view, p := newTestGroceryView(t)
	ctx := context.Background()

	p.AddMeal(ctx, util.Today(), models.MealTypeDinner, "Chicken Stir Fry", 520, "")
	view.Refresh(ctx)

	before := view.Remaining()
	view.ToggleSelected(ctx)
	if view.Remaining() != before-1 {
		t.Errorf("expected %d remaining after check, got %d", before-1, view.Remaining())
	}

	output := view.Render(120, 40)
	if !strings.Contains(output, "[x]") {
		t.Error("expected checked marker in output")
	}

	// Toggle back
	view.ToggleSelected(ctx)
	if view.Remaining() != before {
		t.Errorf("expected %d remaining after uncheck, got %d", before, view.Remaining())
	}
}

func TestGroceryView_ChecksPersistAcrossRefresh(t *testing.T) {
	view, p := newTestGroceryView(t)
	ctx := context.Background()

	p.AddMeal(ctx, util.Today(), models.MealTypeDinner, "Chicken Stir Fry", 520, "")
	view.Refresh(ctx)

	before := view.Remaining()
	view.ToggleSelected(ctx)
	view.Refresh(ctx)

	if view.Remaining() != before-1 {
		t.Error("expected checked state to survive a refresh")
	}
}

func TestGroceryView_SectionHeaders(t *testing.T) {
	view, p := newTestGroceryView(t)
	ctx := context.Background()

	p.AddMeal(ctx, util.Today(), models.MealTypeDinner, "Chicken Stir Fry", 520, "")
	view.Refresh(ctx)

	output := view.Render(120, 40)
	found := false
	for _, section := range models.StoreSections {
		if strings.Contains(output, strings.ToUpper(string(section))) {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected at least one store section header in output")
	}
}

func TestGroceryView_Navigation(t *testing.T) {
	view, p := newTestGroceryView(t)
	ctx := context.Background()

	p.AddMeal(ctx, util.Today(), models.MealTypeDinner, "Chicken Stir Fry", 520, "")
	view.Refresh(ctx)

	if view.SelectedItem() == nil {
		t.Fatal("expected a selected item")
	}

	first := view.SelectedItem().Name
	view.MoveDown()
	second := view.SelectedItem().Name
	if len(view.items) > 1 && first == second {
		t.Error("expected MoveDown to change selection")
	}

	view.MoveUp()
	if view.SelectedItem().Name != first {
		t.Error("expected MoveUp to restore selection")
	}
}
