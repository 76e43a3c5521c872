package pantry

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mealtable/mealtable/internal/events"
	"github.com/mealtable/mealtable/internal/inventory"
	"github.com/mealtable/mealtable/internal/testutil"
)

func newTestPantryView(t *testing.T) (*PantryView, *inventory.Ledger) {
	t.Helper()

	st := testutil.NewStore(t)
	ledger := inventory.NewLedger(context.Background(), st, events.NewBus())
	return NewPantryView(ledger), ledger
}

func TestPantryView_New(t *testing.T) {
	view, _ := newTestPantryView(t)
	if view == nil {
		t.Fatal("expected non-nil view")
	}
	if view.table == nil {
		t.Fatal("expected non-nil table")
	}
}

func TestPantryView_EmptyRender(t *testing.T) {
	view, _ := newTestPantryView(t)
	view.Refresh()

	output := view.Render(120, 40)
	if !strings.Contains(output, "PANTRY") {
		t.Error("expected title in output")
	}
	if !strings.Contains(output, "Pantry is empty") {
		t.Error("expected empty state message")
	}
}

func TestPantryView_RenderIngredients(t *testing.T) {
	view, ledger := newTestPantryView(t)
	ctx := context.Background()

	ledger.AddIngredient(ctx, "Rice", 2, "kg")
	ledger.AddIngredient(ctx, "Olive Oil", 500, "ml")
	view.Refresh()

	output := view.Render(120, 40)
	if !strings.Contains(output, "Rice") {
		t.Error("expected Rice in output")
	}
	if !strings.Contains(output, "Olive Oil") {
		t.Error("expected Olive Oil in output")
	}
	if !strings.Contains(output, "kg") {
		t.Error("expected unit in output")
	}
}

func TestPantryView_RelativeAge(t *testing.T) {
	view, ledger := newTestPantryView(t)
	ctx := context.Background()

	ledger.AddIngredient(ctx, "Butter", 1, "packs")

	// Pin "now" three days after the add
	view.now = func() time.Time { return time.Now().Add(72 * time.Hour) }
	view.Refresh()

	output := view.Render(120, 40)
	if !strings.Contains(output, "3 days ago") {
		t.Error("expected relative age in output")
	}
}

func TestPantryView_SelectedIngredient(t *testing.T) {
	view, ledger := newTestPantryView(t)
	ctx := context.Background()

	ledger.AddIngredient(ctx, "Apples", 6, "pieces")
	view.Refresh()

	ing := view.SelectedIngredient()
	if ing == nil {
		t.Fatal("expected a selected ingredient")
	}
	if ing.Name != "Apples" {
		t.Errorf("expected Apples, got %q", ing.Name)
	}
}

func TestPantryView_SelectedIngredient_Empty(t *testing.T) {
	view, _ := newTestPantryView(t)
	view.Refresh()

	if view.SelectedIngredient() != nil {
		t.Error("expected nil selection with empty pantry")
	}
}

func TestIngredientForm_SubmitValid(t *testing.T) {
	form := NewIngredientForm()

	for _, r := range "Flour" {
		form.HandleKey(string(r))
	}
	form.HandleKey("tab")
	form.HandleKey("2")
	form.HandleKey("ctrl+s")

	if !form.IsSubmitted() {
		t.Fatal("expected form submitted")
	}

	name, quantity, unit, err := form.GetData()
	if err != nil {
		t.Fatalf("GetData: %v", err)
	}
	if name != "Flour" {
		t.Errorf("expected Flour, got %q", name)
	}
	if quantity != 2 {
		t.Errorf("expected quantity 2, got %.1f", quantity)
	}
	if unit == "" {
		t.Error("expected a default unit")
	}
}

func TestIngredientForm_RejectsZeroQuantity(t *testing.T) {
	form := NewIngredientForm()

	for _, r := range "Salt" {
		form.HandleKey(string(r))
	}
	form.HandleKey("tab")
	form.HandleKey("0")
	form.HandleKey("ctrl+s")

	if form.IsSubmitted() {
		t.Error("expected submit rejected with zero quantity")
	}
}

func TestIngredientForm_Render(t *testing.T) {
	form := NewIngredientForm()
	output := form.Render()

	if !strings.Contains(output, "ADD INGREDIENT") {
		t.Error("expected form title")
	}
	if !strings.Contains(output, "Quantity") {
		t.Error("expected quantity field label")
	}
}

func TestPantryView_EnergyEstimate(t *testing.T) {
	view, ledger := newTestPantryView(t)
	ctx := context.Background()

	ledger.AddIngredient(ctx, "Oats", 500, "g")
	ledger.AddIngredient(ctx, "Milk", 2, "l")
	view.Refresh()

	if view.estKcal <= 0 {
		t.Fatalf("expected positive energy estimate for weighed oats, got %v", view.estKcal)
	}

	output := view.Render(120, 40)
	if !strings.Contains(output, "kcal in weighed items") {
		t.Error("expected energy estimate in summary line")
	}
}

func TestPantryView_NoEstimateForUnweighedItems(t *testing.T) {
	view, ledger := newTestPantryView(t)
	ctx := context.Background()

	ledger.AddIngredient(ctx, "Eggs", 12, "pieces")
	view.Refresh()

	if view.estKcal != 0 {
		t.Fatalf("expected no estimate for count units, got %v", view.estKcal)
	}

	output := view.Render(120, 40)
	if strings.Contains(output, "kcal in weighed items") {
		t.Error("summary should not show an estimate when nothing is weighed")
	}
}
