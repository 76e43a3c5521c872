package calendar

import (
	"context"
	"sort"
	"strings"

	"github.com/mealtable/mealtable/internal/models"
	"github.com/mealtable/mealtable/internal/store"
	"github.com/mealtable/mealtable/internal/util"
)

// IngredientSource resolves a planned meal name to the ingredients it
// requires. Isolated as a strategy so the keyword heuristic can be
// swapped for a structured recipe lookup without touching the
// aggregation below.
type IngredientSource interface {
	IngredientsFor(mealName string) []models.RecipeIngredient
}

// GroceryList derives the shopping shortage from every planned meal:
// required quantities summed per ingredient name, minus the pantry
// quantity on hand matched by exact lowercase name. Only positive
// shortages survive, bucketed by store section for display order.
func (p *Planner) GroceryList(src IngredientSource, inv InventoryReader) []models.GroceryItem {
	type demand struct {
		name     string
		quantity float64
		unit     string
	}
	required := make(map[string]*demand)

	for _, date := range p.Dates() {
		for _, meal := range p.meals[date] {
			for _, ing := range src.IngredientsFor(meal.Name) {
				key := strings.ToLower(ing.Name)
				if d, ok := required[key]; ok {
					d.quantity += ing.Quantity
				} else {
					required[key] = &demand{name: ing.Name, quantity: ing.Quantity, unit: ing.Unit}
				}
			}
		}
	}

	var items []models.GroceryItem
	for key, d := range required {
		shortage := d.quantity - inv.QuantityOf(key)
		if shortage <= 0 {
			continue
		}
		items = append(items, models.GroceryItem{
			Name:     d.name,
			Quantity: shortage,
			Unit:     d.unit,
			Section:  SectionFor(d.name),
		})
	}

	sectionRank := make(map[models.StoreSection]int, len(models.StoreSections))
	for i, s := range models.StoreSections {
		sectionRank[s] = i
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Section != items[j].Section {
			return sectionRank[items[i].Section] < sectionRank[items[j].Section]
		}
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})

	return items
}

// GroceryChecked returns the persisted checked-off state of the
// grocery list, keyed by normalized ingredient name.
func (p *Planner) GroceryChecked(ctx context.Context) map[string]bool {
	checked := make(map[string]bool)
	store.GetJSON(ctx, p.store, store.KeyGroceryChecked, &checked)
	return checked
}

// SetGroceryChecked persists the checked state of one grocery item.
func (p *Planner) SetGroceryChecked(ctx context.Context, name string, isChecked bool) bool {
	checked := p.GroceryChecked(ctx)
	key := util.Slugify(name)
	if isChecked {
		checked[key] = true
	} else {
		delete(checked, key)
	}
	return store.SetJSON(ctx, p.store, store.KeyGroceryChecked, checked)
}

// IsGroceryChecked reports whether a grocery item is checked off.
func (p *Planner) IsGroceryChecked(ctx context.Context, name string) bool {
	return p.GroceryChecked(ctx)[util.Slugify(name)]
}

// SectionFor buckets an ingredient name into a store section. The
// keyword list is ordered so an ambiguous name like "Tomato Sauce"
// always lands in the same section.
func SectionFor(name string) models.StoreSection {
	lower := strings.ToLower(name)
	for _, entry := range sectionKeywords {
		if strings.Contains(lower, entry.keyword) {
			return entry.section
		}
	}
	return models.SectionOther
}

var sectionKeywords = []struct {
	keyword string
	section models.StoreSection
}{
	{"sauce", models.SectionPantry},
	{"broth", models.SectionPantry},

	{"lettuce", models.SectionProduce},
	{"tomato", models.SectionProduce},
	{"onion", models.SectionProduce},
	{"garlic", models.SectionProduce},
	{"pepper", models.SectionProduce},
	{"spinach", models.SectionProduce},
	{"broccoli", models.SectionProduce},
	{"carrot", models.SectionProduce},
	{"cucumber", models.SectionProduce},
	{"avocado", models.SectionProduce},
	{"banana", models.SectionProduce},
	{"berries", models.SectionProduce},
	{"lemon", models.SectionProduce},
	{"potato", models.SectionProduce},
	{"mushroom", models.SectionProduce},

	{"chicken", models.SectionMeat},
	{"beef", models.SectionMeat},
	{"pork", models.SectionMeat},
	{"turkey", models.SectionMeat},
	{"bacon", models.SectionMeat},

	{"salmon", models.SectionSeafood},
	{"shrimp", models.SectionSeafood},
	{"tuna", models.SectionSeafood},
	{"cod", models.SectionSeafood},

	{"milk", models.SectionDairy},
	{"cheese", models.SectionDairy},
	{"yogurt", models.SectionDairy},
	{"butter", models.SectionDairy},
	{"egg", models.SectionDairy},
	{"cream", models.SectionDairy},

	{"rice", models.SectionPantry},
	{"pasta", models.SectionPantry},
	{"bread", models.SectionPantry},
	{"flour", models.SectionPantry},
	{"oats", models.SectionPantry},
	{"oil", models.SectionPantry},
	{"beans", models.SectionPantry},
	{"lentils", models.SectionPantry},
	{"tortilla", models.SectionPantry},
	{"quinoa", models.SectionPantry},
}
