package planner

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mealtable/mealtable/internal/calendar"
	"github.com/mealtable/mealtable/internal/events"
	"github.com/mealtable/mealtable/internal/models"
	"github.com/mealtable/mealtable/internal/testutil"
	"github.com/mealtable/mealtable/internal/util"
)

// staticStats satisfies calendar.StatsReader with an empty day.
type staticStats struct{}

func (staticStats) Today(context.Context) *models.DailyStats {
	return models.NewDailyStats(util.Today())
}

func newTestCalendarView(t *testing.T) (*CalendarView, *calendar.Planner) {
	t.Helper()

	st := testutil.NewStore(t)
	p := calendar.NewPlanner(context.Background(), st, events.NewBus(), staticStats{}, util.NewIDGenerator())
	return NewCalendarView(p), p
}

func TestCalendarView_CursorStartsToday(t *testing.T) {
	view, _ := newTestCalendarView(t)

	if view.CursorDate() != util.FormatDate(time.Now()) {
		t.Errorf("expected cursor on today, got %s", view.CursorDate())
	}
}

func TestCalendarView_ArrowNavigation(t *testing.T) {
	view, _ := newTestCalendarView(t)
	start := view.CursorDate()

	view.MoveRight()
	if view.CursorDate() == start {
		t.Error("expected cursor moved right")
	}

	view.MoveLeft()
	if view.CursorDate() != start {
		t.Error("expected cursor back on start")
	}

	view.MoveDown()
	down := view.CursorDate()
	view.MoveUp()
	if view.CursorDate() != start || down == start {
		t.Error("expected up/down to move by a week")
	}
}

func TestCalendarView_WeekJump(t *testing.T) {
	view, _ := newTestCalendarView(t)

	start, _ := time.Parse("2006-01-02", view.CursorDate())
	view.MoveDown()
	next, _ := time.Parse("2006-01-02", view.CursorDate())

	if int(next.Sub(start).Hours()) != 7*24 {
		t.Errorf("expected 7 day jump, got %v", next.Sub(start))
	}
}

func TestCalendarView_MonthNavigation(t *testing.T) {
	view, _ := newTestCalendarView(t)
	start := view.CursorDate()

	view.NextMonth()
	if view.CursorDate() == start {
		t.Error("expected cursor in next month")
	}

	view.PrevMonth()
	view.GoToToday()
	if view.CursorDate() != start {
		t.Error("expected GoToToday to restore cursor")
	}
}

func TestCalendarView_Render(t *testing.T) {
	view, _ := newTestCalendarView(t)

	output := view.Render(120, 40)
	if !strings.Contains(output, "MEAL CALENDAR") {
		t.Error("expected title in output")
	}
	// Uppercase month name in the header
	month := strings.ToUpper(time.Now().Format("January 2006"))
	if !strings.Contains(output, month) {
		t.Errorf("expected %q in output", month)
	}
	if !strings.Contains(output, "Mo") {
		t.Error("expected weekday header in output")
	}
}

func TestCalendarView_RenderPlannedMeals(t *testing.T) {
	view, p := newTestCalendarView(t)
	ctx := context.Background()

	p.AddMeal(ctx, view.CursorDate(), models.MealTypeDinner, "Lasagna", 700, "🍝")

	output := view.Render(120, 40)
	if !strings.Contains(output, "Lasagna") {
		t.Error("expected planned meal in day detail")
	}
	if !strings.Contains(output, "Day total: 700") {
		t.Error("expected day total in detail")
	}
}

func TestCalendarView_SelectedMeal(t *testing.T) {
	view, p := newTestCalendarView(t)
	ctx := context.Background()

	if view.SelectedMeal() != nil {
		t.Error("expected nil selection with no planned meals")
	}

	p.AddMeal(ctx, view.CursorDate(), models.MealTypeLunch, "Soup", 250, "")
	p.AddMeal(ctx, view.CursorDate(), models.MealTypeDinner, "Steak", 500, "")

	first := view.SelectedMeal()
	if first == nil {
		t.Fatal("expected a selected meal")
	}

	view.NextMeal()
	second := view.SelectedMeal()
	if second == nil || second.ID == first.ID {
		t.Error("expected NextMeal to cycle to the other meal")
	}
}

func TestCalendarView_NarrowRender(t *testing.T) {
	view, _ := newTestCalendarView(t)

	output := view.Render(50, 24)
	if !strings.Contains(output, "MEAL CALENDAR") {
		t.Error("expected calendar to render on narrow terminal")
	}
}

func TestPlanForm_SubmitValid(t *testing.T) {
	form := NewPlanForm("2026-09-05")

	for _, r := range "Burrito" {
		form.HandleKey(string(r))
	}
	form.HandleKey("ctrl+s")

	if !form.IsSubmitted() {
		t.Fatal("expected form submitted")
	}
	if form.Date() != "2026-09-05" {
		t.Errorf("expected stored date, got %s", form.Date())
	}

	name, mealType, _, err := form.GetData()
	if err != nil {
		t.Fatalf("GetData: %v", err)
	}
	if name != "Burrito" {
		t.Errorf("expected Burrito, got %q", name)
	}
	if !mealType.IsValid() {
		t.Errorf("expected valid meal type, got %q", mealType)
	}
}

func TestPlanForm_RejectsEmptyName(t *testing.T) {
	form := NewPlanForm("2026-09-05")
	form.HandleKey("ctrl+s")

	if form.IsSubmitted() {
		t.Error("expected submit rejected without a name")
	}
}

func TestPlanForm_Render(t *testing.T) {
	form := NewPlanForm("2026-09-05")
	output := form.Render()

	if !strings.Contains(output, "PLAN MEAL") {
		t.Error("expected form title")
	}
	if !strings.Contains(output, "2026-09-05") {
		t.Error("expected target date in output")
	}
}
