package pantry

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mealtable/mealtable/internal/tui/components"
)

// IngredientForm is a form for adding a pantry ingredient.
type IngredientForm struct {
	name     *components.Input
	quantity *components.Input
	unit     *components.Select

	focusIndex int
	fields     []components.FormField
	submitted  bool
	cancelled  bool
	err        string
}

// ingredientUnits are the measurement units offered by the form.
var ingredientUnits = []string{"pieces", "g", "kg", "ml", "l", "cups", "tbsp", "tsp", "cans", "packs"}

// NewIngredientForm creates a new ingredient form.
func NewIngredientForm() *IngredientForm {
	f := &IngredientForm{
		name:     components.NewInput("Ingredient").SetRequired(true).SetWidth(30),
		quantity: components.NewInput("Quantity").SetRequired(true).SetWidth(8).SetNumeric(true),
		unit:     components.NewSelect("Unit", ingredientUnits),
	}

	f.fields = []components.FormField{
		f.name,
		f.quantity,
		f.unit,
	}

	f.fields[0].Focus(true)

	return f
}

// HandleKey handles key input.
func (f *IngredientForm) HandleKey(key string) {
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

func (f *IngredientForm) nextField() {
	f.fields[f.focusIndex].Focus(false)
	f.focusIndex++
	if f.focusIndex >= len(f.fields) {
		f.focusIndex = 0
	}
	f.fields[f.focusIndex].Focus(true)
}

func (f *IngredientForm) prevField() {
	f.fields[f.focusIndex].Focus(false)
	f.focusIndex--
	if f.focusIndex < 0 {
		f.focusIndex = len(f.fields) - 1
	}
	f.fields[f.focusIndex].Focus(true)
}

func (f *IngredientForm) submit() {
	f.err = ""

	valid := f.name.Validate()
	qty, err := strconv.ParseFloat(f.quantity.Value(), 64)
	if err != nil || qty <= 0 {
		f.err = "Quantity must be a positive number"
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
func (f *IngredientForm) IsSubmitted() bool {
	return f.submitted
}

// IsCancelled returns true if the form was cancelled.
func (f *IngredientForm) IsCancelled() bool {
	return f.cancelled
}

// GetData returns the entered ingredient values.
func (f *IngredientForm) GetData() (name string, quantity float64, unit string, err error) {
	name = strings.TrimSpace(f.name.Value())
	if name == "" {
		return "", 0, "", fmt.Errorf("ingredient name is required")
	}

	quantity, err = strconv.ParseFloat(f.quantity.Value(), 64)
	if err != nil {
		return "", 0, "", fmt.Errorf("invalid quantity: %w", err)
	}
	if quantity <= 0 {
		return "", 0, "", fmt.Errorf("quantity must be positive")
	}

	return name, quantity, f.unit.Value(), nil
}

// Render renders the form.
func (f *IngredientForm) Render() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	helpStyle := lipgloss.NewStyle().Faint(true)
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171"))

	var b strings.Builder

	b.WriteString(titleStyle.Render("═══ ADD INGREDIENT ═══"))
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
