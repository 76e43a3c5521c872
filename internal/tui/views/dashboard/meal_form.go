package dashboard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mealtable/mealtable/internal/tui/components"
)

// MealForm is a form for logging a meal on the dashboard.
type MealForm struct {
	name     *components.Input
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

// NewMealForm creates a new meal form.
func NewMealForm() *MealForm {
	f := &MealForm{
		name:     components.NewInput("Meal").SetRequired(true).SetWidth(30),
		calories: components.NewInput("Calories").SetRequired(true).SetWidth(8).SetNumeric(true),
		protein:  components.NewInput("Protein (g)").SetWidth(8).SetNumeric(true).SetPlaceholder("0"),
		carbs:    components.NewInput("Carbs (g)").SetWidth(8).SetNumeric(true).SetPlaceholder("0"),
		fat:      components.NewInput("Fat (g)").SetWidth(8).SetNumeric(true).SetPlaceholder("0"),
	}

	f.fields = []components.FormField{
		f.name,
		f.calories,
		f.protein,
		f.carbs,
		f.fat,
	}

	f.fields[0].Focus(true)

	return f
}

// Prefill populates the form, used when logging a known recipe.
func (f *MealForm) Prefill(name string, calories, protein, carbs, fat float64) {
	f.name.SetValue(name)
	f.calories.SetValue(fmt.Sprintf("%.0f", calories))
	f.protein.SetValue(fmt.Sprintf("%.1f", protein))
	f.carbs.SetValue(fmt.Sprintf("%.1f", carbs))
	f.fat.SetValue(fmt.Sprintf("%.1f", fat))
}

// HandleKey handles key input.
func (f *MealForm) HandleKey(key string) {
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

func (f *MealForm) nextField() {
	f.fields[f.focusIndex].Focus(false)
	f.focusIndex++
	if f.focusIndex >= len(f.fields) {
		f.focusIndex = 0
	}
	f.fields[f.focusIndex].Focus(true)
}

func (f *MealForm) prevField() {
	f.fields[f.focusIndex].Focus(false)
	f.focusIndex--
	if f.focusIndex < 0 {
		f.focusIndex = len(f.fields) - 1
	}
	f.fields[f.focusIndex].Focus(true)
}

func (f *MealForm) submit() {
	f.err = ""

	valid := f.name.Validate()
	if _, err := strconv.ParseFloat(f.calories.Value(), 64); err != nil {
		f.err = "Calories must be a number"
		valid = false
	}

	if !valid {
		if f.err == "" {
			f.err = "Please fill in all required fields"
		}
		return
	}

	f.submitted = true
}

// IsSubmitted returns true if the form was submitted.
func (f *MealForm) IsSubmitted() bool {
	return f.submitted
}

// IsCancelled returns true if the form was cancelled.
func (f *MealForm) IsCancelled() bool {
	return f.cancelled
}

// GetData returns the entered meal values. Macro fields left blank
// default to zero.
func (f *MealForm) GetData() (name string, calories, protein, carbs, fat float64, err error) {
	name = strings.TrimSpace(f.name.Value())
	if name == "" {
		return "", 0, 0, 0, 0, fmt.Errorf("meal name is required")
	}

	calories, err = strconv.ParseFloat(f.calories.Value(), 64)
	if err != nil {
		return "", 0, 0, 0, 0, fmt.Errorf("invalid calories: %w", err)
	}

	protein = parseOrZero(f.protein.Value())
	carbs = parseOrZero(f.carbs.Value())
	fat = parseOrZero(f.fat.Value())

	return name, calories, protein, carbs, fat, nil
}

func parseOrZero(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// Render renders the form.
func (f *MealForm) Render() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	helpStyle := lipgloss.NewStyle().Faint(true)
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171"))

	var b strings.Builder

	b.WriteString(titleStyle.Render("═══ LOG MEAL ═══"))
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
