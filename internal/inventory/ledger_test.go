package inventory

import (
	"context"
	"testing"

	"github.com/mealtable/mealtable/internal/events"
	"github.com/mealtable/mealtable/internal/models"
	"github.com/mealtable/mealtable/internal/store"
	"github.com/mealtable/mealtable/internal/testutil"
)

func newTestLedger(t *testing.T) (*Ledger, *store.Store, *events.Bus) {
	t.Helper()

	st := testutil.NewStore(t)
	bus := events.NewBus()
	return NewLedger(context.Background(), st, bus), st, bus
}

func TestAddIngredientAccumulates(t *testing.T) {
	l, _, _ := newTestLedger(t)
	ctx := context.Background()

	l.AddIngredient(ctx, "Eggs", 6, "pieces")
	l.AddIngredient(ctx, "Eggs", 6, "pieces")

	items := l.GetAllIngredients()
	if len(items) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(items))
	}
	if items[0].Quantity != 12 {
		t.Errorf("expected quantity 12, got %v", items[0].Quantity)
	}
}

func TestAddIngredientSlugID(t *testing.T) {
	l, _, _ := newTestLedger(t)

	item, ok := l.AddIngredient(context.Background(), "Olive Oil (extra virgin)", 1, "bottle")
	if !ok {
		t.Fatal("AddIngredient failed")
	}
	if item.ID != "olive-oil-extra-virgin" {
		t.Errorf("unexpected id %q", item.ID)
	}
}

func TestAddIngredientRejectsInvalid(t *testing.T) {
	l, _, _ := newTestLedger(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		ingName  string
		quantity float64
	}{
		{"empty name", "", 1},
		{"zero quantity", "Eggs", 0},
		{"negative quantity", "Eggs", -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := l.AddIngredient(ctx, tt.ingName, tt.quantity, "pieces"); ok {
				t.Error("expected rejection")
			}
			if len(l.GetAllIngredients()) != 0 {
				t.Error("expected no state change")
			}
		})
	}
}

func TestUpdateQuantityFloor(t *testing.T) {
	l, _, _ := newTestLedger(t)
	ctx := context.Background()

	item, _ := l.AddIngredient(ctx, "Milk", 2, "liters")

	tests := []struct {
		name     string
		quantity float64
		present  bool
		want     float64
	}{
		{"positive replaces", 5, true, 5},
		{"zero deletes", 0, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l.UpdateQuantity(ctx, item.ID, tt.quantity)
			got, exists := l.Get(item.ID)
			if exists != tt.present {
				t.Fatalf("present = %v, want %v", exists, tt.present)
			}
			if exists && got.Quantity != tt.want {
				t.Errorf("quantity = %v, want %v", got.Quantity, tt.want)
			}
		})
	}
}

func TestUpdateQuantityNegativeDeletes(t *testing.T) {
	l, _, _ := newTestLedger(t)
	ctx := context.Background()

	item, _ := l.AddIngredient(ctx, "Butter", 1, "pack")
	l.UpdateQuantity(ctx, item.ID, -3)

	if l.HasIngredient("Butter") {
		t.Error("expected ingredient gone after negative quantity update")
	}
}

func TestRemoveIngredient(t *testing.T) {
	l, _, _ := newTestLedger(t)
	ctx := context.Background()

	item, _ := l.AddIngredient(ctx, "Rice", 1, "kg")
	l.RemoveIngredient(ctx, item.ID)

	if len(l.GetAllIngredients()) != 0 {
		t.Error("expected empty pantry after remove")
	}
}

func TestHasIngredientFuzzyMatch(t *testing.T) {
	l, _, _ := newTestLedger(t)
	l.AddIngredient(context.Background(), "Eggplant", 2, "pieces")

	tests := []struct {
		query string
		want  bool
	}{
		{"eggplant", true},
		{"EGGPLANT", true},
		{"plant", true},
		// Substring matching in both directions is deliberately fuzzy
		{"egg", true},
		{"tofu", false},
	}

	for _, tt := range tests {
		if got := l.HasIngredient(tt.query); got != tt.want {
			t.Errorf("HasIngredient(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestLedgerPersistsAcrossInstances(t *testing.T) {
	l, st, bus := newTestLedger(t)
	ctx := context.Background()

	l.AddIngredient(ctx, "Flour", 1, "kg")

	reloaded := NewLedger(ctx, st, bus)
	items := reloaded.GetAllIngredients()
	if len(items) != 1 || items[0].Name != "Flour" {
		t.Errorf("expected reloaded pantry to contain Flour, got %v", items)
	}
}

func TestLedgerPublishesInventoryUpdated(t *testing.T) {
	l, _, bus := newTestLedger(t)

	var got []models.Ingredient
	calls := 0
	bus.Subscribe(events.InventoryUpdated, func(ev events.Event) {
		calls++
		got = ev.Payload.([]models.Ingredient)
	})

	l.AddIngredient(context.Background(), "Eggs", 6, "pieces")

	if calls != 1 {
		t.Fatalf("expected 1 publish, got %d", calls)
	}
	if len(got) != 1 || got[0].Name != "Eggs" {
		t.Errorf("unexpected payload: %v", got)
	}
}

func TestConsumeDecrementsAndDeletes(t *testing.T) {
	l, _, _ := newTestLedger(t)
	ctx := context.Background()

	l.AddIngredient(ctx, "Eggs", 6, "pieces")

	l.Consume(ctx, "eggs", 2)
	if q := l.QuantityOf("Eggs"); q != 4 {
		t.Errorf("expected 4 remaining, got %v", q)
	}

	l.Consume(ctx, "Eggs", 10)
	if l.HasIngredient("Eggs") {
		t.Error("expected entry deleted once consumed past zero")
	}
}
