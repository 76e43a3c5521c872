// Package tui provides the terminal user interface for MealTable.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mealtable/mealtable/internal/config"
)

// Theme contains all style definitions for the TUI.
type Theme struct {
	// Colors (raw values for reference)
	PrimaryColor    lipgloss.Color
	SecondaryColor  lipgloss.Color
	AccentColor     lipgloss.Color
	BackgroundColor lipgloss.Color
	ForegroundColor lipgloss.Color
	ErrorColor      lipgloss.Color
	WarningColor    lipgloss.Color
	SuccessColor    lipgloss.Color
	MutedColor      lipgloss.Color

	// Base styles
	Base lipgloss.Style
	Bold lipgloss.Style

	// Color styles (for direct use)
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Accent    lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Success   lipgloss.Style
	Muted     lipgloss.Style

	// Component styles
	Header    lipgloss.Style
	Footer    lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Box       lipgloss.Style
	Selected  lipgloss.Style
	Focused   lipgloss.Style
	Disabled  lipgloss.Style
	Alert     lipgloss.Style
	AlertWarn lipgloss.Style
	AlertCrit lipgloss.Style

	// Table styles
	TableHeader lipgloss.Style
	TableRow    lipgloss.Style
	TableRowAlt lipgloss.Style

	// Form styles
	FormLabel lipgloss.Style
	FormInput lipgloss.Style
	FormError lipgloss.Style

	// Status bar
	StatusBar     lipgloss.Style
	StatusKey     lipgloss.Style
	StatusValue   lipgloss.Style
	StatusDivider lipgloss.Style
}

// NewTheme creates a new theme based on the color scheme configuration.
func NewTheme(scheme config.ColorScheme) *Theme {
	switch scheme {
	case config.ColorSchemeDark:
		return newDarkTheme()
	case config.ColorSchemeLight:
		return newLightTheme()
	default:
		return newDefaultTheme()
	}
}

// newDefaultTheme creates the standard teal and cream theme.
func newDefaultTheme() *Theme {
	primary := lipgloss.Color("#2DD4BF")
	secondary := lipgloss.Color("#14B8A6")
	accent := lipgloss.Color("#99F6E4")
	background := lipgloss.Color("#000000")
	foreground := lipgloss.Color("#E7E5E4")
	muted := lipgloss.Color("#57534E")
	errorColor := lipgloss.Color("#F87171")
	warningColor := lipgloss.Color("#FBBF24")
	successColor := lipgloss.Color("#4ADE80")

	return buildTheme(primary, secondary, accent, background, foreground, muted, errorColor, warningColor, successColor)
}

// newDarkTheme creates a low-contrast theme for dark terminals.
func newDarkTheme() *Theme {
	primary := lipgloss.Color("#A78BFA")
	secondary := lipgloss.Color("#7C3AED")
	accent := lipgloss.Color("#DDD6FE")
	background := lipgloss.Color("#000000")
	foreground := lipgloss.Color("#D4D4D8")
	muted := lipgloss.Color("#52525B")
	errorColor := lipgloss.Color("#F87171")
	warningColor := lipgloss.Color("#FACC15")
	successColor := lipgloss.Color("#86EFAC")

	return buildTheme(primary, secondary, accent, background, foreground, muted, errorColor, warningColor, successColor)
}

// newLightTheme creates a theme for light terminal backgrounds.
func newLightTheme() *Theme {
	primary := lipgloss.Color("#0F766E")
	secondary := lipgloss.Color("#115E59")
	accent := lipgloss.Color("#0D9488")
	background := lipgloss.Color("#FFFFFF")
	foreground := lipgloss.Color("#1C1917")
	muted := lipgloss.Color("#A8A29E")
	errorColor := lipgloss.Color("#DC2626")
	warningColor := lipgloss.Color("#D97706")
	successColor := lipgloss.Color("#16A34A")

	return buildTheme(primary, secondary, accent, background, foreground, muted, errorColor, warningColor, successColor)
}

func buildTheme(primary, secondary, accent, background, foreground, muted, errorColor, warningColor, successColor lipgloss.Color) *Theme {
	t := &Theme{
		PrimaryColor:    primary,
		SecondaryColor:  secondary,
		AccentColor:     accent,
		BackgroundColor: background,
		ForegroundColor: foreground,
		MutedColor:      muted,
		ErrorColor:      errorColor,
		WarningColor:    warningColor,
		SuccessColor:    successColor,
	}

	// Base styles
	t.Base = lipgloss.NewStyle().
		Foreground(foreground)

	t.Bold = t.Base.Bold(true)

	// Color styles for direct use
	t.Primary = lipgloss.NewStyle().Foreground(primary)
	t.Secondary = lipgloss.NewStyle().Foreground(secondary)
	t.Accent = lipgloss.NewStyle().Foreground(accent)
	t.Error = lipgloss.NewStyle().Foreground(errorColor)
	t.Warning = lipgloss.NewStyle().Foreground(warningColor)
	t.Success = lipgloss.NewStyle().Foreground(successColor)
	t.Muted = lipgloss.NewStyle().Foreground(muted)

	// Header - top bar with app info
	t.Header = lipgloss.NewStyle().
		Foreground(primary).
		Bold(true).
		Padding(0, 1)

	// Footer - bottom status bar
	t.Footer = lipgloss.NewStyle().
		Foreground(secondary).
		Padding(0, 1)

	// Title - main headings
	t.Title = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true).
		Padding(0, 1)

	// Subtitle - secondary headings
	t.Subtitle = lipgloss.NewStyle().
		Foreground(primary).
		Padding(0, 1)

	// Label - field labels
	t.Label = lipgloss.NewStyle().
		Foreground(secondary)

	// Value - field values
	t.Value = lipgloss.NewStyle().
		Foreground(primary)

	// Box - bordered container
	t.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(secondary).
		Padding(0, 1)

	// Selected - highlighted item
	t.Selected = lipgloss.NewStyle().
		Foreground(background).
		Background(primary).
		Bold(true)

	// Focused - focused input
	t.Focused = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true)

	// Disabled - inactive elements
	t.Disabled = lipgloss.NewStyle().
		Foreground(muted)

	// Alerts
	t.Alert = lipgloss.NewStyle().
		Foreground(primary).
		Bold(true)

	t.AlertWarn = lipgloss.NewStyle().
		Foreground(warningColor).
		Bold(true)

	t.AlertCrit = lipgloss.NewStyle().
		Foreground(errorColor).
		Bold(true)

	// Table styles
	t.TableHeader = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true).
		Padding(0, 1)

	t.TableRow = lipgloss.NewStyle().
		Foreground(primary).
		Padding(0, 1)

	t.TableRowAlt = lipgloss.NewStyle().
		Foreground(secondary).
		Padding(0, 1)

	// Form styles
	t.FormLabel = lipgloss.NewStyle().
		Foreground(secondary).
		Width(20)

	t.FormInput = lipgloss.NewStyle().
		Foreground(primary).
		Border(lipgloss.NormalBorder()).
		BorderForeground(secondary).
		Padding(0, 1)

	t.FormError = lipgloss.NewStyle().
		Foreground(errorColor)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Foreground(secondary).
		Padding(0, 1)

	t.StatusKey = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true)

	t.StatusValue = lipgloss.NewStyle().
		Foreground(primary)

	t.StatusDivider = lipgloss.NewStyle().
		Foreground(muted).
		SetString(" │ ")

	return t
}

// Box characters for drawing
const (
	BoxHorizontal = "─"
	BoxVertical   = "│"

	// Double box characters
	BoxDoubleHorizontal = "═"
)

// DrawBox draws a box with the given content.
func (t *Theme) DrawBox(content string, width int) string {
	return t.Box.Width(width).Render(content)
}

// DrawHorizontalLine draws a horizontal line.
func (t *Theme) DrawHorizontalLine(width int) string {
	line := ""
	for i := 0; i < width; i++ {
		line += BoxHorizontal
	}
	return t.Secondary.Render(line)
}

// DrawDoubleLine draws a double horizontal line.
func (t *Theme) DrawDoubleLine(width int) string {
	line := ""
	for i := 0; i < width; i++ {
		line += BoxDoubleHorizontal
	}
	return t.Primary.Render(line)
}
