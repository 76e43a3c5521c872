// Package pantry provides TUI views for the pantry inventory.
package pantry

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mealtable/mealtable/internal/inventory"
	"github.com/mealtable/mealtable/internal/models"
	"github.com/mealtable/mealtable/internal/nutrition"
	"github.com/mealtable/mealtable/internal/tui/components"
	"github.com/mealtable/mealtable/internal/util"
)

// PantryView displays the pantry ingredient list.
type PantryView struct {
	ledger  *inventory.Ledger
	table   *components.Table
	items   []models.Ingredient
	estKcal float64
	now     func() time.Time
}

// NewPantryView creates a new pantry view.
func NewPantryView(ledger *inventory.Ledger) *PantryView {
	columns := []components.Column{
		{Title: "Ingredient", Width: 28},
		{Title: "Quantity", Width: 10, Align: lipgloss.Right},
		{Title: "Unit", Width: 10},
		{Title: "Added", Width: 14},
	}

	table := components.NewTable(columns)
	table.SetVisibleRows(16)
	table.Focus(true)

	return &PantryView{
		ledger: ledger,
		table:  table,
		now:    time.Now,
	}
}

// Refresh reloads the ingredient list from the ledger.
func (v *PantryView) Refresh() {
	v.items = v.ledger.GetAllIngredients()
	v.estKcal = 0

	now := v.now()
	rows := make([][]string, len(v.items))
	for i, ing := range v.items {
		rows[i] = []string{
			ing.Name,
			fmt.Sprintf("%.1f", ing.Quantity),
			ing.Unit,
			util.RelativeTimeString(ing.DateAdded, now),
		}

		if grams := gramsOf(ing); grams > 0 {
			est := nutrition.Estimate(nutrition.CategoryFor(ing.Name), grams)
			v.estKcal += est.Calories
		}
	}

	v.table.SetRows(rows)
}

// gramsOf converts an ingredient quantity to grams for items tracked
// by weight. Count and volume units return 0 and are left out of the
// energy estimate.
func gramsOf(ing models.Ingredient) float64 {
	switch strings.ToLower(ing.Unit) {
	case "g", "gram", "grams":
		return ing.Quantity
	case "kg":
		return ing.Quantity * 1000
	default:
		return 0
	}
}

// SetVisibleRows sets how many rows are shown at once.
func (v *PantryView) SetVisibleRows(n int) {
	v.table.SetVisibleRows(n)
}

// MoveUp moves the selection up.
func (v *PantryView) MoveUp() {
	v.table.MoveUp()
}

// MoveDown moves the selection down.
func (v *PantryView) MoveDown() {
	v.table.MoveDown()
}

// PageUp moves up one page.
func (v *PantryView) PageUp() {
	v.table.PageUp()
}

// PageDown moves down one page.
func (v *PantryView) PageDown() {
	v.table.PageDown()
}

// SelectedIngredient returns the currently selected ingredient, or nil.
func (v *PantryView) SelectedIngredient() *models.Ingredient {
	idx := v.table.Selected()
	if idx >= 0 && idx < len(v.items) {
		return &v.items[idx]
	}
	return nil
}

// Render renders the pantry view.
func (v *PantryView) Render(width, height int) string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	labelStyle := lipgloss.NewStyle().Faint(true)
	helpStyle := lipgloss.NewStyle().Faint(true)

	var b strings.Builder

	b.WriteString(titleStyle.Render("═══ PANTRY ═══"))
	b.WriteString("\n\n")

	if v.table.Empty() {
		b.WriteString(labelStyle.Render("Pantry is empty. Press 'a' to add an ingredient."))
		b.WriteString("\n")
	} else {
		summary := fmt.Sprintf("%d ingredients on hand", len(v.items))
		if v.estKcal > 0 {
			summary += fmt.Sprintf("  (roughly %.0f kcal in weighed items)", v.estKcal)
		}
		b.WriteString(labelStyle.Render(summary))
		b.WriteString("\n\n")
		b.WriteString(v.table.Render())
	}

	b.WriteString("\n")
	if width < 60 {
		b.WriteString(helpStyle.Render("a:Add  +/-:Adjust  d:Del"))
	} else {
		b.WriteString(helpStyle.Render("Up/Down:Select  a:Add  +/-:Adjust Quantity  d:Delete  PgUp/Dn:Page"))
	}

	return b.String()
}
