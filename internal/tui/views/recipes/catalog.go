// Package recipes provides TUI views for the recipe catalog.
package recipes

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mealtable/mealtable/internal/models"
	"github.com/mealtable/mealtable/internal/recipes"
	"github.com/mealtable/mealtable/internal/tui/components"
)

// CatalogView displays the recipe catalog with the user's added
// recipes marked.
type CatalogView struct {
	service *recipes.Service
	table   *components.Table
	list    []models.Recipe
	added   map[string]bool
}

// NewCatalogView creates a new catalog view.
func NewCatalogView(service *recipes.Service) *CatalogView {
	columns := []components.Column{
		{Title: "Recipe", Width: 30},
		{Title: "Calories", Width: 9, Align: lipgloss.Right},
		{Title: "Protein", Width: 8, Align: lipgloss.Right},
		{Title: "Carbs", Width: 8, Align: lipgloss.Right},
		{Title: "Fat", Width: 8, Align: lipgloss.Right},
		{Title: "Added", Width: 6, Align: lipgloss.Center},
	}

	table := components.NewTable(columns)
	table.SetVisibleRows(14)
	table.Focus(true)

	return &CatalogView{
		service: service,
		table:   table,
		added:   map[string]bool{},
	}
}

// Refresh reloads the catalog and added-state from the service.
func (v *CatalogView) Refresh(ctx context.Context) {
	v.list = v.service.Catalog().All()

	v.added = map[string]bool{}
	for _, r := range v.service.Added(ctx) {
		v.added[r.ID] = true
	}

	rows := make([][]string, len(v.list))
	for i, r := range v.list {
		addedMark := ""
		if v.added[r.ID] {
			addedMark = "✓"
		}
		rows[i] = []string{
			r.Emoji + " " + r.Name,
			fmt.Sprintf("%.0f", r.Calories),
			fmt.Sprintf("%.0fg", r.Protein),
			fmt.Sprintf("%.0fg", r.Carbs),
			fmt.Sprintf("%.0fg", r.Fat),
			addedMark,
		}
	}

	v.table.SetRows(rows)
}

// SetVisibleRows sets how many rows are shown at once.
func (v *CatalogView) SetVisibleRows(n int) {
	v.table.SetVisibleRows(n)
}

// MoveUp moves the selection up.
func (v *CatalogView) MoveUp() {
	v.table.MoveUp()
}

// MoveDown moves the selection down.
func (v *CatalogView) MoveDown() {
	v.table.MoveDown()
}

// SelectedRecipe returns the currently selected recipe, or nil.
func (v *CatalogView) SelectedRecipe() *models.Recipe {
	idx := v.table.Selected()
	if idx >= 0 && idx < len(v.list) {
		return &v.list[idx]
	}
	return nil
}

// IsAdded reports whether the recipe is on the user's dashboard.
func (v *CatalogView) IsAdded(id string) bool {
	return v.added[id]
}

// Render renders the catalog list.
func (v *CatalogView) Render(width, height int) string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	labelStyle := lipgloss.NewStyle().Faint(true)
	helpStyle := lipgloss.NewStyle().Faint(true)

	var b strings.Builder

	b.WriteString(titleStyle.Render("═══ RECIPES ═══"))
	b.WriteString("\n\n")

	if v.table.Empty() {
		b.WriteString(labelStyle.Render("No recipes in the catalog."))
		b.WriteString("\n")
	} else {
		b.WriteString(v.table.Render())
	}

	b.WriteString("\n")
	if width < 60 {
		b.WriteString(helpStyle.Render("Enter:View  a:Add  c:Cook"))
	} else {
		b.WriteString(helpStyle.Render("Up/Down:Select  Enter:Details  a:Add  r:Remove  c:Cook"))
	}

	return b.String()
}

// RenderDetail renders the detail view for a recipe.
func (v *CatalogView) RenderDetail(recipe *models.Recipe) string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	sectionStyle := lipgloss.NewStyle().Bold(true)
	labelStyle := lipgloss.NewStyle().Faint(true).Width(12)
	valueStyle := lipgloss.NewStyle()
	helpStyle := lipgloss.NewStyle().Faint(true)

	if recipe == nil {
		return labelStyle.Render("No recipe selected")
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("═══ " + strings.ToUpper(recipe.Name) + " " + recipe.Emoji + " ═══"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("PER SERVING"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Calories:") + " " + valueStyle.Render(fmt.Sprintf("%.0f", recipe.Calories)) + "\n")
	b.WriteString(labelStyle.Render("Protein:") + " " + valueStyle.Render(fmt.Sprintf("%.0fg", recipe.Protein)) + "\n")
	b.WriteString(labelStyle.Render("Carbs:") + " " + valueStyle.Render(fmt.Sprintf("%.0fg", recipe.Carbs)) + "\n")
	b.WriteString(labelStyle.Render("Fat:") + " " + valueStyle.Render(fmt.Sprintf("%.0fg", recipe.Fat)) + "\n")
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("INGREDIENTS"))
	b.WriteString("\n")
	for _, ing := range recipe.Ingredients {
		b.WriteString(valueStyle.Render(fmt.Sprintf("  %.1f %s %s", ing.Quantity, ing.Unit, ing.Name)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("INSTRUCTIONS"))
	b.WriteString("\n")
	for i, step := range recipe.Instructions {
		b.WriteString(valueStyle.Render(fmt.Sprintf("  %d. %s", i+1, step)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Esc:Back  a:Add  r:Remove  c:Cook"))

	return b.String()
}
