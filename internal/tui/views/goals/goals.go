// Package goals provides TUI views for nutrition targets and the
// user profile.
package goals

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mealtable/mealtable/internal/goals"
	"github.com/mealtable/mealtable/internal/models"
)

// GoalsView displays the current targets, the weekly summary, and the
// user profile.
type GoalsView struct {
	service *goals.Service

	current   models.Goals
	summary   goals.WeeklySummary
	profile   models.UserProfile
	suggested float64
}

// NewGoalsView creates a new goals view.
func NewGoalsView(service *goals.Service) *GoalsView {
	return &GoalsView{service: service}
}

// Refresh reloads targets, summary, and profile from the service.
func (v *GoalsView) Refresh(ctx context.Context) {
	v.current = v.service.Goals()
	v.summary = v.service.WeeklySummary(ctx)
	v.profile = v.service.Profile(ctx)
	v.suggested = v.service.SuggestedCalories(ctx)
}

// Render renders the goals view.
func (v *GoalsView) Render(width, height int) string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	sectionStyle := lipgloss.NewStyle().Bold(true)
	labelStyle := lipgloss.NewStyle().Faint(true).Width(20)
	valueStyle := lipgloss.NewStyle()
	mutedStyle := lipgloss.NewStyle().Faint(true)
	helpStyle := lipgloss.NewStyle().Faint(true)

	var b strings.Builder

	b.WriteString(titleStyle.Render("═══ NUTRITION GOALS ═══"))
	b.WriteString("\n\n")

	// Current targets
	b.WriteString(sectionStyle.Render("DAILY TARGETS"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Calories:") + " " + valueStyle.Render(fmt.Sprintf("%.0f", v.current.DailyCalories)) + "\n")
	b.WriteString(labelStyle.Render("Protein:") + " " + valueStyle.Render(fmt.Sprintf("%.0fg", v.current.DailyProtein)) + "\n")
	b.WriteString(labelStyle.Render("Carbs:") + " " + valueStyle.Render(fmt.Sprintf("%.0fg", v.current.DailyCarbs)) + "\n")
	b.WriteString(labelStyle.Render("Fat:") + " " + valueStyle.Render(fmt.Sprintf("%.0fg", v.current.DailyFat)) + "\n")
	b.WriteString("\n")

	// Weekly summary
	b.WriteString(sectionStyle.Render("LAST 7 DAYS"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Avg Calories:") + " " + valueStyle.Render(fmt.Sprintf("%.0f", v.summary.AvgCalories)) + "\n")
	b.WriteString(labelStyle.Render("Avg Protein:") + " " + valueStyle.Render(fmt.Sprintf("%.1fg", v.summary.AvgProtein)) + "\n")
	b.WriteString(labelStyle.Render("Avg Carbs:") + " " + valueStyle.Render(fmt.Sprintf("%.1fg", v.summary.AvgCarbs)) + "\n")
	b.WriteString(labelStyle.Render("Avg Fat:") + " " + valueStyle.Render(fmt.Sprintf("%.1fg", v.summary.AvgFat)) + "\n")
	b.WriteString(labelStyle.Render("Days Logged:") + " " + valueStyle.Render(fmt.Sprintf("%d of 7", v.summary.DaysLogged)) + "\n")
	b.WriteString(labelStyle.Render("Days On Track:") + " " + valueStyle.Render(fmt.Sprintf("%d", v.summary.DaysOnTrack)) + "\n")
	b.WriteString("\n")

	// Profile
	b.WriteString(sectionStyle.Render("PROFILE"))
	b.WriteString("\n")
	if v.profile.Age <= 0 {
		b.WriteString(mutedStyle.Render("No profile set. Press 'p' to add one for a calorie suggestion."))
		b.WriteString("\n")
	} else {
		if v.profile.Name != "" {
			b.WriteString(labelStyle.Render("Name:") + " " + valueStyle.Render(v.profile.Name) + "\n")
		}
		b.WriteString(labelStyle.Render("Age:") + " " + valueStyle.Render(fmt.Sprintf("%d", v.profile.Age)) + "\n")
		b.WriteString(labelStyle.Render("Height:") + " " + valueStyle.Render(fmt.Sprintf("%.0f cm", v.profile.HeightCm)) + "\n")
		b.WriteString(labelStyle.Render("Weight:") + " " + valueStyle.Render(fmt.Sprintf("%.1f kg", v.profile.WeightKg)) + "\n")
		b.WriteString(labelStyle.Render("Activity:") + " " + valueStyle.Render(string(v.profile.Activity)) + "\n")
		if v.suggested > 0 {
			b.WriteString(labelStyle.Render("Suggested Calories:") + " " + valueStyle.Render(fmt.Sprintf("%.0f", v.suggested)) + "\n")
		}
	}

	b.WriteString("\n")
	if width < 60 {
		b.WriteString(helpStyle.Render("e:Edit  p:Profile"))
	} else {
		b.WriteString(helpStyle.Render("e:Edit Targets  p:Edit Profile  s:Use Suggested Calories"))
	}

	return b.String()
}
