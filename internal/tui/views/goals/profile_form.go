package goals

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mealtable/mealtable/internal/models"
	"github.com/mealtable/mealtable/internal/tui/components"
)

// ProfileForm is a form for editing the user profile.
type ProfileForm struct {
	name     *components.Input
	age      *components.Input
	sex      *components.Select
	height   *components.Input
	weight   *components.Input
	activity *components.Select

	focusIndex int
	fields     []components.FormField
	submitted  bool
	cancelled  bool
	err        string
}

var activityOptions = []string{"sedentary", "light", "moderate", "active", "very_active"}

// NewProfileForm creates a profile form prefilled with the current profile.
func NewProfileForm(current models.UserProfile) *ProfileForm {
	f := &ProfileForm{
		name:     components.NewInput("Name").SetWidth(25),
		age:      components.NewInput("Age").SetRequired(true).SetWidth(4).SetMaxLength(3).SetNumeric(true),
		sex:      components.NewSelect("Sex", []string{"female", "male"}),
		height:   components.NewInput("Height (cm)").SetRequired(true).SetWidth(6).SetNumeric(true),
		weight:   components.NewInput("Weight (kg)").SetRequired(true).SetWidth(6).SetNumeric(true),
		activity: components.NewSelect("Activity", activityOptions),
	}

	if current.Name != "" {
		f.name.SetValue(current.Name)
	}
	if current.Age > 0 {
		f.age.SetValue(strconv.Itoa(current.Age))
	}
	if strings.EqualFold(current.Sex, "male") {
		f.sex.SetSelected(1)
	}
	if current.HeightCm > 0 {
		f.height.SetValue(fmt.Sprintf("%.0f", current.HeightCm))
	}
	if current.WeightKg > 0 {
		f.weight.SetValue(fmt.Sprintf("%.1f", current.WeightKg))
	}
	for i, opt := range activityOptions {
		if opt == string(current.Activity) {
			f.activity.SetSelected(i)
			break
		}
	}

	f.fields = []components.FormField{
		f.name,
		f.age,
		f.sex,
		f.height,
		f.weight,
		f.activity,
	}

	f.fields[0].Focus(true)

	return f
}

// HandleKey handles key input.
func (f *ProfileForm) HandleKey(key string) {
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

func (f *ProfileForm) nextField() {
	f.fields[f.focusIndex].Focus(false)
	f.focusIndex++
	if f.focusIndex >= len(f.fields) {
		f.focusIndex = 0
	}
	f.fields[f.focusIndex].Focus(true)
}

func (f *ProfileForm) prevField() {
	f.fields[f.focusIndex].Focus(false)
	f.focusIndex--
	if f.focusIndex < 0 {
		f.focusIndex = len(f.fields) - 1
	}
	f.fields[f.focusIndex].Focus(true)
}

func (f *ProfileForm) submit() {
	f.err = ""

	age, err := strconv.Atoi(f.age.Value())
	if err != nil || age <= 0 {
		f.err = "Age must be a positive number"
		return
	}
	if h, err := strconv.ParseFloat(f.height.Value(), 64); err != nil || h <= 0 {
		f.err = "Height must be a positive number"
		return
	}
	if w, err := strconv.ParseFloat(f.weight.Value(), 64); err != nil || w <= 0 {
		f.err = "Weight must be a positive number"
		return
	}

	f.submitted = true
}

// IsSubmitted returns true if the form was submitted.
func (f *ProfileForm) IsSubmitted() bool {
	return f.submitted
}

// IsCancelled returns true if the form was cancelled.
func (f *ProfileForm) IsCancelled() bool {
	return f.cancelled
}

// GetData returns the entered profile.
func (f *ProfileForm) GetData() (models.UserProfile, error) {
	age, err := strconv.Atoi(f.age.Value())
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("invalid age: %w", err)
	}
	height, err := strconv.ParseFloat(f.height.Value(), 64)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("invalid height: %w", err)
	}
	weight, err := strconv.ParseFloat(f.weight.Value(), 64)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("invalid weight: %w", err)
	}

	return models.UserProfile{
		Name:     strings.TrimSpace(f.name.Value()),
		Age:      age,
		Sex:      f.sex.Value(),
		HeightCm: height,
		WeightKg: weight,
		Activity: models.ActivityLevel(f.activity.Value()),
	}, nil
}

// Render renders the form.
func (f *ProfileForm) Render() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	helpStyle := lipgloss.NewStyle().Faint(true)
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171"))

	var b strings.Builder

	b.WriteString(titleStyle.Render("═══ EDIT PROFILE ═══"))
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
