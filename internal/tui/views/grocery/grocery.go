// Package grocery provides the TUI view for the derived shopping list.
package grocery

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mealtable/mealtable/internal/calendar"
	"github.com/mealtable/mealtable/internal/models"
	"github.com/mealtable/mealtable/internal/util"
)

// GroceryView displays the shopping list derived from the meal
// calendar and the pantry, grouped by store section.
type GroceryView struct {
	planner *calendar.Planner
	source  calendar.IngredientSource
	pantry  calendar.InventoryReader

	items   []models.GroceryItem
	checked map[string]bool
	cursor  int
}

// NewGroceryView creates a new grocery view.
func NewGroceryView(p *calendar.Planner, src calendar.IngredientSource, pantry calendar.InventoryReader) *GroceryView {
	return &GroceryView{
		planner: p,
		source:  src,
		pantry:  pantry,
		checked: map[string]bool{},
	}
}

// Refresh recomputes the shopping list and reloads checked state.
func (v *GroceryView) Refresh(ctx context.Context) {
	v.items = v.planner.GroceryList(v.source, v.pantry)
	v.checked = v.planner.GroceryChecked(ctx)

	if v.cursor >= len(v.items) {
		v.cursor = len(v.items) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

// MoveUp moves the cursor up.
func (v *GroceryView) MoveUp() {
	if v.cursor > 0 {
		v.cursor--
	}
}

// MoveDown moves the cursor down.
func (v *GroceryView) MoveDown() {
	if v.cursor < len(v.items)-1 {
		v.cursor++
	}
}

// SelectedItem returns the item under the cursor, or nil.
func (v *GroceryView) SelectedItem() *models.GroceryItem {
	if v.cursor >= 0 && v.cursor < len(v.items) {
		return &v.items[v.cursor]
	}
	return nil
}

// ToggleSelected flips the checked state of the item under the cursor.
func (v *GroceryView) ToggleSelected(ctx context.Context) {
	item := v.SelectedItem()
	if item == nil {
		return
	}
	current := v.planner.IsGroceryChecked(ctx, item.Name)
	v.planner.SetGroceryChecked(ctx, item.Name, !current)
	v.Refresh(ctx)
}

// Remaining returns how many items are still unchecked.
func (v *GroceryView) Remaining() int {
	remaining := 0
	for _, item := range v.items {
		if !v.isChecked(item.Name) {
			remaining++
		}
	}
	return remaining
}

func (v *GroceryView) isChecked(name string) bool {
	return v.checked[util.Slugify(name)]
}

// Render renders the grocery view.
func (v *GroceryView) Render(width, height int) string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	sectionStyle := lipgloss.NewStyle().Bold(true)
	labelStyle := lipgloss.NewStyle().Faint(true)
	checkedStyle := lipgloss.NewStyle().Faint(true).Strikethrough(true)
	selectedStyle := lipgloss.NewStyle().Reverse(true)
	helpStyle := lipgloss.NewStyle().Faint(true)

	var b strings.Builder

	b.WriteString(titleStyle.Render("═══ GROCERY LIST ═══"))
	b.WriteString("\n\n")

	if len(v.items) == 0 {
		b.WriteString(labelStyle.Render("Nothing to buy. Plan some meals on the calendar first."))
		b.WriteString("\n")
	} else {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%d items, %d remaining", len(v.items), v.Remaining())))
		b.WriteString("\n\n")

		var lastSection models.StoreSection
		for i, item := range v.items {
			if item.Section != lastSection {
				if lastSection != "" {
					b.WriteString("\n")
				}
				b.WriteString(sectionStyle.Render(strings.ToUpper(item.Section.String())))
				b.WriteString("\n")
				lastSection = item.Section
			}

			box := "[ ]"
			if v.isChecked(item.Name) {
				box = "[x]"
			}

			line := fmt.Sprintf("  %s %s", box, item.Name)
			if item.Quantity > 0 {
				line += fmt.Sprintf("  %.1f %s", item.Quantity, item.Unit)
			}

			if i == v.cursor {
				line = selectedStyle.Render(line)
			} else if v.isChecked(item.Name) {
				line = checkedStyle.Render(line)
			}

			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if width < 60 {
		b.WriteString(helpStyle.Render("Up/Down:Move  Space:Check"))
	} else {
		b.WriteString(helpStyle.Render("Up/Down:Move  Space/Enter:Toggle Checked"))
	}

	return b.String()
}
