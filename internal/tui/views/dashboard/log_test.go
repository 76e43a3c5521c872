package dashboard

import (
	"context"
	"strings"
	"testing"

	"github.com/mealtable/mealtable/internal/events"
	"github.com/mealtable/mealtable/internal/stats"
	"github.com/mealtable/mealtable/internal/testutil"
	"github.com/mealtable/mealtable/internal/util"
)

func newTestLogView(t *testing.T) (*LogView, *stats.Service) {
	t.Helper()

	st := testutil.NewStore(t)
	svc := stats.NewService(st, events.NewBus(), util.NewIDGenerator())
	return NewLogView(svc), svc
}

func TestLogView_New(t *testing.T) {
	view, _ := newTestLogView(t)
	if view == nil {
		t.Fatal("expected non-nil view")
	}
	if view.table == nil {
		t.Fatal("expected non-nil table")
	}
}

func TestLogView_EmptyRender(t *testing.T) {
	view, _ := newTestLogView(t)
	view.Refresh(context.Background())

	output := view.Render(120, 40)
	if !strings.Contains(output, "No meals logged today") {
		t.Error("expected empty state message")
	}
}

func TestLogView_RenderMeals(t *testing.T) {
	view, svc := newTestLogView(t)
	ctx := context.Background()

	svc.AddMeal(ctx, "Omelette", 280, 18, 2, 20)
	svc.AddMeal(ctx, "Salad", 150, 5, 12, 9)
	view.Refresh(ctx)

	output := view.Render(120, 40)
	if !strings.Contains(output, "Omelette") {
		t.Error("expected Omelette in output")
	}
	if !strings.Contains(output, "Salad") {
		t.Error("expected Salad in output")
	}
	if !strings.Contains(output, "280") {
		t.Error("expected calories in output")
	}
}

func TestLogView_SelectedMeal(t *testing.T) {
	view, svc := newTestLogView(t)
	ctx := context.Background()

	svc.AddMeal(ctx, "First", 100, 0, 0, 0)
	svc.AddMeal(ctx, "Second", 200, 0, 0, 0)
	view.Refresh(ctx)

	meal := view.SelectedMeal()
	if meal == nil {
		t.Fatal("expected a selected meal")
	}
	if meal.Name != "First" {
		t.Errorf("expected First, got %q", meal.Name)
	}

	view.MoveDown()
	meal = view.SelectedMeal()
	if meal.Name != "Second" {
		t.Errorf("expected Second after MoveDown, got %q", meal.Name)
	}
}

func TestLogView_SelectedMeal_Empty(t *testing.T) {
	view, _ := newTestLogView(t)
	view.Refresh(context.Background())

	if view.SelectedMeal() != nil {
		t.Error("expected nil selected meal with empty log")
	}
}

func TestMealForm_SubmitValid(t *testing.T) {
	form := NewMealForm()

	for _, r := range "Pasta" {
		form.HandleKey(string(r))
	}
	form.HandleKey("tab")
	for _, r := range "540" {
		form.HandleKey(string(r))
	}
	form.HandleKey("ctrl+s")

	if !form.IsSubmitted() {
		t.Fatal("expected form submitted")
	}

	name, calories, protein, _, _, err := form.GetData()
	if err != nil {
		t.Fatalf("GetData: %v", err)
	}
	if name != "Pasta" {
		t.Errorf("expected Pasta, got %q", name)
	}
	if calories != 540 {
		t.Errorf("expected 540 calories, got %.0f", calories)
	}
	if protein != 0 {
		t.Errorf("expected blank macro to default to 0, got %.1f", protein)
	}
}

func TestMealForm_RejectsMissingCalories(t *testing.T) {
	form := NewMealForm()

	for _, r := range "Pasta" {
		form.HandleKey(string(r))
	}
	form.HandleKey("ctrl+s")

	if form.IsSubmitted() {
		t.Error("expected submit rejected without calories")
	}
}

func TestMealForm_Cancel(t *testing.T) {
	form := NewMealForm()
	form.HandleKey("esc")

	if !form.IsCancelled() {
		t.Error("expected form cancelled")
	}
}

func TestMealForm_Prefill(t *testing.T) {
	form := NewMealForm()
	form.Prefill("Curry", 600, 25, 70, 18)
	form.HandleKey("ctrl+s")

	if !form.IsSubmitted() {
		t.Fatal("expected prefilled form to submit")
	}

	name, calories, _, _, fat, err := form.GetData()
	if err != nil {
		t.Fatalf("GetData: %v", err)
	}
	if name != "Curry" || calories != 600 || fat != 18 {
		t.Errorf("unexpected prefill data: %s %.0f %.1f", name, calories, fat)
	}
}

func TestMealForm_Render(t *testing.T) {
	form := NewMealForm()
	output := form.Render()

	if !strings.Contains(output, "LOG MEAL") {
		t.Error("expected form title")
	}
	if !strings.Contains(output, "Calories") {
		t.Error("expected calories field label")
	}
}
