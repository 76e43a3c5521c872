package goals

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mealtable/mealtable/internal/models"
	"github.com/mealtable/mealtable/internal/tui/components"
)

// GoalsForm is a form for editing the daily targets.
type GoalsForm struct {
	calories *components.Input
	protein  *components.Input
	carbs    *components.Input
	fat      *components.Input

	focusIndex int
	fields     []components.FormField
	submitted  bool
	cancelled  bool
	err        string
}

// NewGoalsForm creates a goals form prefilled with the current targets.
func NewGoalsForm(current models.Goals) *GoalsForm {
	f := &GoalsForm{
		calories: components.NewInput("Calories").SetRequired(true).SetWidth(8).SetNumeric(true).SetValue(fmt.Sprintf("%.0f", current.DailyCalories)),
		protein:  components.NewInput("Protein (g)").SetRequired(true).SetWidth(8).SetNumeric(true).SetValue(fmt.Sprintf("%.0f", current.DailyProtein)),
		carbs:    components.NewInput("Carbs (g)").SetRequired(true).SetWidth(8).SetNumeric(true).SetValue(fmt.Sprintf("%.0f", current.DailyCarbs)),
		fat:      components.NewInput("Fat (g)").SetRequired(true).SetWidth(8).SetNumeric(true).SetValue(fmt.Sprintf("%.0f", current.DailyFat)),
	}

	f.fields = []components.FormField{
		f.calories,
		f.protein,
		f.carbs,
		f.fat,
	}

	f.fields[0].Focus(true)

	return f
}

// HandleKey handles key input.
func (f *GoalsForm) HandleKey(key string) {
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

func (f *GoalsForm) nextField() {
	f.fields[f.focusIndex].Focus(false)
	f.focusIndex++
	if f.focusIndex >= len(f.fields) {
		f.focusIndex = 0
	}
	f.fields[f.focusIndex].Focus(true)
}

func (f *GoalsForm) prevField() {
	f.fields[f.focusIndex].Focus(false)
	f.focusIndex--
	if f.focusIndex < 0 {
		f.focusIndex = len(f.fields) - 1
	}
	f.fields[f.focusIndex].Focus(true)
}

func (f *GoalsForm) submit() {
	f.err = ""

	for _, in := range []*components.Input{f.calories, f.protein, f.carbs, f.fat} {
		v, err := strconv.ParseFloat(in.Value(), 64)
		if err != nil || v <= 0 {
			f.err = "All targets must be positive numbers"
			return
		}
	}

	f.submitted = true
}

// IsSubmitted returns true if the form was submitted.
func (f *GoalsForm) IsSubmitted() bool {
	return f.submitted
}

// IsCancelled returns true if the form was cancelled.
func (f *GoalsForm) IsCancelled() bool {
	return f.cancelled
}

// GetData returns the entered targets.
func (f *GoalsForm) GetData() (calories, protein, carbs, fat float64, err error) {
	calories, err = strconv.ParseFloat(f.calories.Value(), 64)
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("invalid calories: %w", err)
	}
	protein, err = strconv.ParseFloat(f.protein.Value(), 64)
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("invalid protein: %w", err)
	}
	carbs, err = strconv.ParseFloat(f.carbs.Value(), 64)
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("invalid carbs: %w", err)
	}
	fat, err = strconv.ParseFloat(f.fat.Value(), 64)
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("invalid fat: %w", err)
	}
	return calories, protein, carbs, fat, nil
}

// Render renders the form.
func (f *GoalsForm) Render() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	helpStyle := lipgloss.NewStyle().Faint(true)
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171"))

	var b strings.Builder

	b.WriteString(titleStyle.Render("═══ EDIT TARGETS ═══"))
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
