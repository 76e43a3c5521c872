// Package inventory implements the pantry ledger: ingredient
// quantities on hand, keyed by a slug of the ingredient name.
package inventory

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/mealtable/mealtable/internal/events"
	"github.com/mealtable/mealtable/internal/models"
	"github.com/mealtable/mealtable/internal/store"
	"github.com/mealtable/mealtable/internal/util"
)

// Ledger owns the mapping of ingredient id to Ingredient record. It is
// the only component that reads or writes the inventory store key.
type Ledger struct {
	store *store.Store
	bus   *events.Bus

	items map[string]models.Ingredient
}

// NewLedger creates a Ledger and loads persisted state.
func NewLedger(ctx context.Context, st *store.Store, bus *events.Bus) *Ledger {
	l := &Ledger{
		store: st,
		bus:   bus,
		items: make(map[string]models.Ingredient),
	}

	var loaded map[string]models.Ingredient
	if store.GetJSON(ctx, st, store.KeyInventory, &loaded) && loaded != nil {
		l.items = loaded
	}

	return l
}

// AddIngredient adds quantity of the named ingredient. If an entry
// with the same id already exists its quantity accumulates; the stored
// unit and dateAdded are kept from the first add. Returns the stored
// record and whether persistence succeeded.
func (l *Ledger) AddIngredient(ctx context.Context, name string, quantity float64, unit string) (models.Ingredient, bool) {
	name = strings.TrimSpace(name)
	if name == "" || quantity <= 0 {
		slog.Warn("rejecting invalid ingredient", "name", name, "quantity", quantity)
		return models.Ingredient{}, false
	}

	id := util.Slugify(name)

	item, exists := l.items[id]
	if exists {
		item.Quantity += quantity
	} else {
		item = models.Ingredient{
			ID:        id,
			Name:      name,
			Quantity:  quantity,
			Unit:      unit,
			DateAdded: time.Now(),
		}
	}
	l.items[id] = item

	ok := l.persist(ctx)
	l.publish()
	return item, ok
}

// UpdateQuantity replaces the quantity of an ingredient. A quantity of
// zero or less deletes the record; zero stock is never retained.
func (l *Ledger) UpdateQuantity(ctx context.Context, id string, quantity float64) bool {
	item, exists := l.items[id]
	if !exists {
		slog.Debug("update of unknown ingredient ignored", "id", id)
		return true
	}

	if quantity <= 0 {
		delete(l.items, id)
	} else {
		item.Quantity = quantity
		l.items[id] = item
	}

	ok := l.persist(ctx)
	l.publish()
	return ok
}

// RemoveIngredient deletes an ingredient unconditionally.
func (l *Ledger) RemoveIngredient(ctx context.Context, id string) bool {
	delete(l.items, id)

	ok := l.persist(ctx)
	l.publish()
	return ok
}

// HasIngredient reports whether any pantry entry matches the query by
// case-insensitive substring in either direction. The fuzziness
// tolerates naming variance between recipe text and pantry entries.
func (l *Ledger) HasIngredient(query string) bool {
	for _, item := range l.items {
		if item.MatchesName(query) {
			return true
		}
	}
	return false
}

// QuantityOf returns the on-hand quantity for an exact lowercase name
// match, or zero if absent.
func (l *Ledger) QuantityOf(name string) float64 {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, item := range l.items {
		if strings.ToLower(item.Name) == lower {
			return item.Quantity
		}
	}
	return 0
}

// GetAllIngredients returns all pantry entries sorted by name.
func (l *Ledger) GetAllIngredients() []models.Ingredient {
	out := make([]models.Ingredient, 0, len(l.items))
	for _, item := range l.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// Get returns the ingredient with the given id.
func (l *Ledger) Get(id string) (models.Ingredient, bool) {
	item, ok := l.items[id]
	return item, ok
}

// Consume decrements the quantity of every pantry entry matching the
// given requirement by exact lowercase name, deleting entries that
// reach zero. Used when a recipe is cooked.
func (l *Ledger) Consume(ctx context.Context, name string, quantity float64) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	for id, item := range l.items {
		if strings.ToLower(item.Name) != lower {
			continue
		}
		item.Quantity -= quantity
		if item.Quantity <= 0 {
			delete(l.items, id)
		} else {
			l.items[id] = item
		}
		ok := l.persist(ctx)
		l.publish()
		return ok
	}
	return true
}

func (l *Ledger) persist(ctx context.Context) bool {
	if !store.SetJSON(ctx, l.store, store.KeyInventory, l.items) {
		slog.Warn("pantry changes not saved")
		return false
	}
	return true
}

func (l *Ledger) publish() {
	l.bus.Publish(events.InventoryUpdated, l.GetAllIngredients())
}
