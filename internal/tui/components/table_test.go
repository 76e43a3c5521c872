package components

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNewTable(t *testing.T) {
	cols := []Column{
		{Title: "ID", Width: 5},
		{Title: "Name", Width: 20},
	}

	table := NewTable(cols)
	if table == nil {
		t.Fatal("Expected non-nil table")
	}
	if !table.Empty() {
		t.Error("New table should be empty")
	}
	if table.RowCount() != 0 {
		t.Errorf("Expected 0 rows, got %d", table.RowCount())
	}
}

func TestTable_SetRows(t *testing.T) {
	cols := []Column{
		{Title: "ID", Width: 5},
		{Title: "Name", Width: 20},
	}

	table := NewTable(cols)
	rows := [][]string{
		{"1", "Alice"},
		{"2", "Bob"},
		{"3", "Charlie"},
	}
	table.SetRows(rows)

	if table.RowCount() != 3 {
		t.Errorf("Expected 3 rows, got %d", table.RowCount())
	}
	if table.Empty() {
		t.Error("Table should not be empty after setting rows")
	}
}

func TestTable_SetRows_ClampsSelection(t *testing.T) {
	cols := []Column{{Title: "ID", Width: 5}}
	table := NewTable(cols)
	table.SetRows([][]string{{"1"}, {"2"}, {"3"}, {"4"}})
	table.GoToBottom()

	// Shrinking the data must pull the selection back in range
	table.SetRows([][]string{{"1"}, {"2"}})
	if table.Selected() != 1 {
		t.Errorf("Expected selected=1 after shrink, got %d", table.Selected())
	}

	table.SetRows([][]string{})
	if table.Selected() != 0 {
		t.Errorf("Expected selected=0 for empty table, got %d", table.Selected())
	}
}

func TestTable_Navigation(t *testing.T) {
	cols := []Column{{Title: "ID", Width: 5}}
	table := NewTable(cols)
	table.SetRows([][]string{{"1"}, {"2"}, {"3"}, {"4"}, {"5"}})

	// Initially at row 0
	if table.Selected() != 0 {
		t.Errorf("Expected selected=0, got %d", table.Selected())
	}

	// Move down
	table.MoveDown()
	if table.Selected() != 1 {
		t.Errorf("Expected selected=1, got %d", table.Selected())
	}

	// Move up
	table.MoveUp()
	if table.Selected() != 0 {
		t.Errorf("Expected selected=0, got %d", table.Selected())
	}

	// Can't move above 0
	table.MoveUp()
	if table.Selected() != 0 {
		t.Errorf("Expected selected=0, got %d", table.Selected())
	}

	// GoToBottom
	table.GoToBottom()
	if table.Selected() != 4 {
		t.Errorf("Expected selected=4, got %d", table.Selected())
	}

	// Can't move below last
	table.MoveDown()
	if table.Selected() != 4 {
		t.Errorf("Expected selected=4, got %d", table.Selected())
	}

	// GoToTop
	table.GoToTop()
	if table.Selected() != 0 {
		t.Errorf("Expected selected=0, got %d", table.Selected())
	}
}

func TestTable_SelectedRow(t *testing.T) {
	cols := []Column{{Title: "ID", Width: 5}, {Title: "Name", Width: 10}}
	table := NewTable(cols)
	table.SetRows([][]string{{"1", "Alice"}, {"2", "Bob"}})

	row := table.SelectedRow()
	if row == nil {
		t.Fatal("Expected non-nil selected row")
	}
	if row[0] != "1" || row[1] != "Alice" {
		t.Errorf("Expected [1, Alice], got %v", row)
	}

	table.MoveDown()
	row = table.SelectedRow()
	if row[0] != "2" || row[1] != "Bob" {
		t.Errorf("Expected [2, Bob], got %v", row)
	}
}

func TestTable_EmptySelectedRow(t *testing.T) {
	cols := []Column{{Title: "ID", Width: 5}}
	table := NewTable(cols)

	row := table.SelectedRow()
	if row != nil {
		t.Errorf("Expected nil for empty table selected row, got %v", row)
	}
}

func TestTable_PageNavigation(t *testing.T) {
	cols := []Column{{Title: "ID", Width: 5}}
	table := NewTable(cols)
	table.SetVisibleRows(3)

	rows := make([][]string, 10)
	for i := range rows {
		rows[i] = []string{string(rune('A' + i))}
	}
	table.SetRows(rows)

	// PageDown should jump by visible rows
	table.PageDown()
	if table.Selected() != 3 {
		t.Errorf("After PageDown expected selected=3, got %d", table.Selected())
	}

	// PageUp should jump back
	table.PageUp()
	if table.Selected() != 0 {
		t.Errorf("After PageUp expected selected=0, got %d", table.Selected())
	}

	// PageDown past the end clamps to the last row
	for i := 0; i < 5; i++ {
		table.PageDown()
	}
	if table.Selected() != 9 {
		t.Errorf("Expected selected=9 at end, got %d", table.Selected())
	}
}

func TestTable_Render_ContainsHeaders(t *testing.T) {
	cols := []Column{
		{Title: "ID", Width: 5},
		{Title: "Name", Width: 10},
	}

	table := NewTable(cols)
	table.SetRows([][]string{{"1", "Alice"}, {"2", "Bob"}})

	output := table.Render()

	if !strings.Contains(output, "ID") {
		t.Error("Expected header 'ID' in output")
	}
	if !strings.Contains(output, "Name") {
		t.Error("Expected header 'Name' in output")
	}
	if !strings.Contains(output, "Alice") {
		t.Error("Expected row data 'Alice' in output")
	}
}

func TestTable_Render_TruncatesLongCells(t *testing.T) {
	cols := []Column{{Title: "Name", Width: 8}}
	table := NewTable(cols)
	table.SetRows([][]string{{"a very long value"}})

	output := table.Render()
	if strings.Contains(output, "a very long value") {
		t.Error("Expected long cell to be truncated")
	}
	if !strings.Contains(output, "…") {
		t.Error("Expected ellipsis on truncated cell")
	}
}

func TestTable_Render_ScrollIndicator(t *testing.T) {
	cols := []Column{{Title: "ID", Width: 5}}
	table := NewTable(cols)
	table.SetVisibleRows(3)

	rows := make([][]string, 12)
	for i := range rows {
		rows[i] = []string{fmt.Sprintf("%d", i+1)}
	}
	table.SetRows(rows)

	output := table.Render()
	if !strings.Contains(output, "1-3 of 12") {
		t.Error("Expected scroll position indicator in output")
	}
}

func TestTable_Render_NoIndicatorWhenAllVisible(t *testing.T) {
	cols := []Column{{Title: "ID", Width: 5}}
	table := NewTable(cols)
	table.SetVisibleRows(10)
	table.SetRows([][]string{{"1"}, {"2"}})

	output := table.Render()
	if strings.Contains(output, "of 2") {
		t.Error("Did not expect scroll indicator when all rows fit")
	}
}

func TestTable_Render_RightAligned(t *testing.T) {
	cols := []Column{
		{Title: "Value", Width: 10, Align: lipgloss.Right},
	}

	table := NewTable(cols)
	table.SetRows([][]string{{"42"}})
	table.Focus(true)

	output := table.Render()
	if !strings.Contains(output, "42") {
		t.Error("Expected '42' in output")
	}
	// Right-aligned cells are padded on the left
	if !strings.Contains(output, "        42") {
		t.Error("Expected right-aligned padding before '42'")
	}
}

func TestTable_ScrollKeepsSelectionVisible(t *testing.T) {
	cols := []Column{{Title: "ID", Width: 5}}
	table := NewTable(cols)
	table.SetVisibleRows(3)

	rows := make([][]string, 8)
	for i := range rows {
		rows[i] = []string{fmt.Sprintf("%d", i+1)}
	}
	table.SetRows(rows)
	table.Focus(true)

	// Move past the visible window; the rendered slice should follow
	for i := 0; i < 5; i++ {
		table.MoveDown()
	}

	output := table.Render()
	if !strings.Contains(output, "6") {
		t.Error("Expected selected row 6 to be rendered after scrolling")
	}
}
