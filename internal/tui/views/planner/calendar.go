// Package planner provides TUI views for the monthly meal calendar.
package planner

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mealtable/mealtable/internal/calendar"
	"github.com/mealtable/mealtable/internal/models"
	"github.com/mealtable/mealtable/internal/util"
)

// CalendarView displays the monthly meal calendar with a day detail
// panel below the grid.
type CalendarView struct {
	planner *calendar.Planner
	cursor  time.Time
	now     func() time.Time

	// Index into the cursor day's meal list, for removal.
	selectedMeal int
}

// NewCalendarView creates a new calendar view positioned on today.
func NewCalendarView(p *calendar.Planner) *CalendarView {
	v := &CalendarView{
		planner: p,
		now:     time.Now,
	}
	v.cursor = util.StartOfDay(v.now())
	return v
}

// CursorDate returns the selected date key.
func (v *CalendarView) CursorDate() string {
	return util.FormatDate(v.cursor)
}

// GoToToday moves the cursor back to the current date.
func (v *CalendarView) GoToToday() {
	v.cursor = util.StartOfDay(v.now())
	v.selectedMeal = 0
}

// MoveLeft moves the cursor one day back.
func (v *CalendarView) MoveLeft() {
	v.cursor = v.cursor.AddDate(0, 0, -1)
	v.selectedMeal = 0
}

// MoveRight moves the cursor one day forward.
func (v *CalendarView) MoveRight() {
	v.cursor = v.cursor.AddDate(0, 0, 1)
	v.selectedMeal = 0
}

// MoveUp moves the cursor one week back.
func (v *CalendarView) MoveUp() {
	v.cursor = v.cursor.AddDate(0, 0, -7)
	v.selectedMeal = 0
}

// MoveDown moves the cursor one week forward.
func (v *CalendarView) MoveDown() {
	v.cursor = v.cursor.AddDate(0, 0, 7)
	v.selectedMeal = 0
}

// PrevMonth moves the cursor one month back.
func (v *CalendarView) PrevMonth() {
	v.cursor = v.cursor.AddDate(0, -1, 0)
	v.selectedMeal = 0
}

// NextMonth moves the cursor one month forward.
func (v *CalendarView) NextMonth() {
	v.cursor = v.cursor.AddDate(0, 1, 0)
	v.selectedMeal = 0
}

// NextMeal cycles the meal selection within the cursor day.
func (v *CalendarView) NextMeal() {
	meals := v.planner.MealsOn(v.CursorDate())
	if len(meals) == 0 {
		v.selectedMeal = 0
		return
	}
	v.selectedMeal = (v.selectedMeal + 1) % len(meals)
}

// SelectedMeal returns the selected meal on the cursor day, or nil.
func (v *CalendarView) SelectedMeal() *models.CalendarMeal {
	meals := v.planner.MealsOn(v.CursorDate())
	if len(meals) == 0 {
		return nil
	}
	if v.selectedMeal >= len(meals) {
		v.selectedMeal = len(meals) - 1
	}
	return &meals[v.selectedMeal]
}

// Render renders the calendar view.
func (v *CalendarView) Render(width, height int) string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	headerStyle := lipgloss.NewStyle().Faint(true)
	helpStyle := lipgloss.NewStyle().Faint(true)

	var b strings.Builder

	b.WriteString(titleStyle.Render("═══ MEAL CALENDAR ═══"))
	b.WriteString("\n\n")

	month := strings.ToUpper(v.cursor.Format("January 2006"))
	b.WriteString(titleStyle.Render(month))
	b.WriteString("\n\n")

	cellWidth := (width - 8) / 7
	if cellWidth < 6 {
		cellWidth = 6
	}
	if cellWidth > 14 {
		cellWidth = 14
	}

	// Weekday header, Monday first
	for i, day := range []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"} {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(headerStyle.Render(padCenter(day, cellWidth)))
	}
	b.WriteString("\n")

	b.WriteString(v.renderGrid(cellWidth))

	b.WriteString("\n")
	b.WriteString(v.renderDayDetail())

	b.WriteString("\n")
	if width < 60 {
		b.WriteString(helpStyle.Render("Arrows:Move  a:Add  d:Del  t:Today"))
	} else {
		b.WriteString(helpStyle.Render("Arrows:Move Day  PgUp/Dn:Month  t:Today  a:Add Meal  n:Next Meal  d:Remove"))
	}

	return b.String()
}

// renderGrid renders the month as rows of week cells.
func (v *CalendarView) renderGrid(cellWidth int) string {
	selectedStyle := lipgloss.NewStyle().Reverse(true).Bold(true)
	todayStyle := lipgloss.NewStyle().Bold(true).Underline(true)
	plannedStyle := lipgloss.NewStyle()
	emptyStyle := lipgloss.NewStyle().Faint(true)

	first := util.StartOfMonth(v.cursor)
	days := util.DaysInMonth(v.cursor)
	today := util.Today()

	// Leading blanks before the first of the month, Monday first.
	lead := (int(first.Weekday()) + 6) % 7

	var b strings.Builder
	col := 0

	writeCell := func(s string) {
		if col > 0 {
			b.WriteString(" ")
		}
		b.WriteString(s)
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}

	for i := 0; i < lead; i++ {
		writeCell(strings.Repeat(" ", cellWidth))
	}

	for day := 1; day <= days; day++ {
		date := time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, first.Location())
		key := util.FormatDate(date)

		cell := fmt.Sprintf("%2d", day)
		if v.planner.HasDay(key) {
			n := len(v.planner.MealsOn(key))
			cell += fmt.Sprintf(" %d•", n)
		}
		cell = padCenter(cell, cellWidth)

		switch {
		case key == v.CursorDate():
			cell = selectedStyle.Render(cell)
		case key == today:
			cell = todayStyle.Render(cell)
		case v.planner.HasDay(key):
			cell = plannedStyle.Render(cell)
		default:
			cell = emptyStyle.Render(cell)
		}

		writeCell(cell)
	}

	if col != 0 {
		b.WriteString("\n")
	}

	return b.String()
}

// renderDayDetail renders the meal list for the cursor day.
func (v *CalendarView) renderDayDetail() string {
	subtitleStyle := lipgloss.NewStyle().Bold(true)
	labelStyle := lipgloss.NewStyle().Faint(true)
	selectedStyle := lipgloss.NewStyle().Reverse(true)

	date := v.CursorDate()
	meals := v.planner.MealsOn(date)

	var b strings.Builder

	b.WriteString(subtitleStyle.Render(v.cursor.Format("Monday, January 2")))
	b.WriteString("\n")

	if len(meals) == 0 {
		b.WriteString(labelStyle.Render("  No meals planned. Press 'a' to add one."))
		b.WriteString("\n")
		return b.String()
	}

	if v.selectedMeal >= len(meals) {
		v.selectedMeal = len(meals) - 1
	}

	for i, m := range meals {
		line := fmt.Sprintf("  %-10s %s %s (%.0f cal)",
			strings.ToUpper(string(m.Type)), m.Emoji, m.Name, m.Calories)
		if i == v.selectedMeal {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(labelStyle.Render(fmt.Sprintf("  Day total: %.0f cal", v.planner.TotalFor(date))))
	b.WriteString("\n")

	return b.String()
}

func padCenter(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	padding := width - len(s)
	left := padding / 2
	right := padding - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
