package planner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mealtable/mealtable/internal/models"
	"github.com/mealtable/mealtable/internal/tui/components"
)

// PlanForm is a form for planning a meal on a calendar day.
type PlanForm struct {
	date string

	name     *components.Input
	mealType *components.Select
	calories *components.Input

	focusIndex int
	fields     []components.FormField
	submitted  bool
	cancelled  bool
	err        string
}

var mealTypeOptions = []string{"breakfast", "lunch", "dinner", "snack"}

// NewPlanForm creates a new plan form for the given date key.
func NewPlanForm(date string) *PlanForm {
	f := &PlanForm{
		date:     date,
		name:     components.NewInput("Meal").SetRequired(true).SetWidth(30),
		mealType: components.NewSelect("Type", mealTypeOptions),
		calories: components.NewInput("Calories").SetWidth(8).SetNumeric(true).SetPlaceholder("0"),
	}

	f.fields = []components.FormField{
		f.name,
		f.mealType,
		f.calories,
	}

	f.fields[0].Focus(true)

	return f
}

// Date returns the date key the form targets.
func (f *PlanForm) Date() string {
	return f.date
}

// HandleKey handles key input.
func (f *PlanForm) HandleKey(key string) {
	switch key {
	case "tab", "down":
		f.nextField()
	case "shift+tab", "up":
		f.prevField()
	case "ctrl+s":
		f.submit()
	case "esc":
		f.cancelled = true
	case "enter":
		if f.focusIndex == len(f.fields)-1 {
			f.submit()
		} else {
			f.nextField()
		}
	default:
		f.fields[f.focusIndex].HandleKey(key)
	}
}

func (f *PlanForm) nextField() {
	f.fields[f.focusIndex].Focus(false)
	f.focusIndex++
	if f.focusIndex >= len(f.fields) {
		f.focusIndex = 0
	}
	f.fields[f.focusIndex].Focus(true)
}

func (f *PlanForm) prevField() {
	f.fields[f.focusIndex].Focus(false)
	f.focusIndex--
	if f.focusIndex < 0 {
		f.focusIndex = len(f.fields) - 1
	}
	f.fields[f.focusIndex].Focus(true)
}

func (f *PlanForm) submit() {
	f.err = ""

	if !f.name.Validate() {
		f.err = "Meal name is required"
		return
	}

	f.submitted = true
}

// IsSubmitted returns true if the form was submitted.
func (f *PlanForm) IsSubmitted() bool {
	return f.submitted
}

// IsCancelled returns true if the form was cancelled.
func (f *PlanForm) IsCancelled() bool {
	return f.cancelled
}

// GetData returns the entered meal values. Calories left blank default
// to zero.
func (f *PlanForm) GetData() (name string, mealType models.MealType, calories float64, err error) {
	name = strings.TrimSpace(f.name.Value())
	if name == "" {
		return "", "", 0, fmt.Errorf("meal name is required")
	}

	mealType = models.MealType(f.mealType.Value())

	calories, _ = strconv.ParseFloat(f.calories.Value(), 64)

	return name, mealType, calories, nil
}

// Render renders the form.
func (f *PlanForm) Render() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	labelStyle := lipgloss.NewStyle().Faint(true)
	helpStyle := lipgloss.NewStyle().Faint(true)
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171"))

	var b strings.Builder

	b.WriteString(titleStyle.Render("═══ PLAN MEAL ═══"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("For " + f.date))
	b.WriteString("\n\n")

	for _, field := range f.fields {
		b.WriteString(field.Render())
		b.WriteString("\n")
	}

	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render("Error: " + f.err))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Tab/Down:Next  Shift+Tab/Up:Prev  Ctrl+S:Save  Esc:Cancel"))

	return b.String()
}
