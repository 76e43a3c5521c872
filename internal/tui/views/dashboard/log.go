// Package dashboard provides TUI views for the daily nutrition log.
package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mealtable/mealtable/internal/models"
	"github.com/mealtable/mealtable/internal/stats"
	"github.com/mealtable/mealtable/internal/tui/components"
)

// LogView displays the meal log for the current day.
type LogView struct {
	service *stats.Service
	table   *components.Table
	today   *models.DailyStats
}

// NewLogView creates a new meal log view.
func NewLogView(service *stats.Service) *LogView {
	columns := []components.Column{
		{Title: "Time", Width: 6},
		{Title: "Meal", Width: 28},
		{Title: "Calories", Width: 9, Align: lipgloss.Right},
		{Title: "Protein", Width: 8, Align: lipgloss.Right},
		{Title: "Carbs", Width: 8, Align: lipgloss.Right},
		{Title: "Fat", Width: 8, Align: lipgloss.Right},
	}

	table := components.NewTable(columns)
	table.SetVisibleRows(12)
	table.Focus(true)

	return &LogView{
		service: service,
		table:   table,
	}
}

// Refresh reloads the current day's log from the stats service.
func (v *LogView) Refresh(ctx context.Context) {
	v.today = v.service.Today(ctx)

	rows := make([][]string, len(v.today.Meals))
	for i, m := range v.today.Meals {
		rows[i] = []string{
			m.Timestamp.Local().Format("15:04"),
			m.Name,
			fmt.Sprintf("%.0f", m.Calories),
			fmt.Sprintf("%.1fg", m.Protein),
			fmt.Sprintf("%.1fg", m.Carbs),
			fmt.Sprintf("%.1fg", m.Fat),
		}
	}

	v.table.SetRows(rows)
}

// Today returns the most recently loaded day record.
func (v *LogView) Today() *models.DailyStats {
	return v.today
}

// SetVisibleRows sets how many log rows are shown at once.
func (v *LogView) SetVisibleRows(n int) {
	v.table.SetVisibleRows(n)
}

// MoveUp moves the selection up.
func (v *LogView) MoveUp() {
	v.table.MoveUp()
}

// MoveDown moves the selection down.
func (v *LogView) MoveDown() {
	v.table.MoveDown()
}

// SelectedMeal returns the currently selected meal, or nil.
func (v *LogView) SelectedMeal() *models.Meal {
	if v.today == nil {
		return nil
	}
	idx := v.table.Selected()
	if idx >= 0 && idx < len(v.today.Meals) {
		return &v.today.Meals[idx]
	}
	return nil
}

// Render renders the meal log list.
func (v *LogView) Render(width, height int) string {
	labelStyle := lipgloss.NewStyle().Faint(true)
	helpStyle := lipgloss.NewStyle().Faint(true)

	var b strings.Builder

	if v.table.Empty() {
		b.WriteString(labelStyle.Render("No meals logged today."))
		b.WriteString("\n")
	} else {
		b.WriteString(v.table.Render())
	}

	b.WriteString("\n")
	if width < 60 {
		b.WriteString(helpStyle.Render("a:Log  d:Remove  r:Reset"))
	} else {
		b.WriteString(helpStyle.Render("Up/Down:Select  a:Log Meal  d:Remove  r:Reset Day"))
	}

	return b.String()
}
