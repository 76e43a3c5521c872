// Package recipes provides the fixed recipe catalog and the user's
// added-recipe list, including cooking a recipe into the nutrition log
// and pantry.
package recipes

import (
	"sort"
	"strings"

	"github.com/mealtable/mealtable/internal/models"
)

// Catalog is the built-in recipe reference data. Entries are fixed at
// compile time; user customization happens through added-recipe
// snapshots, never by editing the catalog.
type Catalog struct {
	byID map[string]models.Recipe
}

// NewCatalog returns the built-in catalog.
func NewCatalog() *Catalog {
	c := &Catalog{byID: make(map[string]models.Recipe, len(builtinRecipes))}
	for _, r := range builtinRecipes {
		c.byID[r.ID] = r
	}
	return c
}

// All returns every catalog recipe sorted by name.
func (c *Catalog) All() []models.Recipe {
	out := make([]models.Recipe, 0, len(c.byID))
	for _, r := range c.byID {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Get returns the recipe with the given id.
func (c *Catalog) Get(id string) (models.Recipe, bool) {
	r, ok := c.byID[id]
	return r, ok
}

// FindByName returns the recipe whose name matches case-insensitively.
func (c *Catalog) FindByName(name string) (models.Recipe, bool) {
	for _, r := range c.byID {
		if strings.EqualFold(r.Name, name) {
			return r, true
		}
	}
	return models.Recipe{}, false
}

var builtinRecipes = []models.Recipe{
	{
		ID:    "scrambled-eggs",
		Name:  "Scrambled Eggs",
		Emoji: "🍳",
		Ingredients: []models.RecipeIngredient{
			{Name: "Eggs", Quantity: 3, Unit: "pieces"},
			{Name: "Butter", Quantity: 1, Unit: "tbsp"},
			{Name: "Milk", Quantity: 2, Unit: "tbsp"},
		},
		Instructions: []string{
			"Whisk the eggs with the milk and a pinch of salt.",
			"Melt the butter in a pan over medium-low heat.",
			"Add the eggs and stir gently until just set.",
		},
		Calories: 320, Protein: 19, Carbs: 2, Fat: 26,
	},
	{
		ID:    "overnight-oatmeal",
		Name:  "Overnight Oatmeal",
		Emoji: "🥣",
		Ingredients: []models.RecipeIngredient{
			{Name: "Oats", Quantity: 80, Unit: "g"},
			{Name: "Milk", Quantity: 1, Unit: "cup"},
			{Name: "Berries", Quantity: 100, Unit: "g"},
		},
		Instructions: []string{
			"Combine oats and milk in a jar.",
			"Refrigerate overnight.",
			"Top with berries before serving.",
		},
		Calories: 420, Protein: 16, Carbs: 68, Fat: 9,
	},
	{
		ID:    "grilled-chicken-salad",
		Name:  "Grilled Chicken Salad",
		Emoji: "🥗",
		Ingredients: []models.RecipeIngredient{
			{Name: "Chicken Breast", Quantity: 1, Unit: "pieces"},
			{Name: "Lettuce", Quantity: 1, Unit: "head"},
			{Name: "Tomato", Quantity: 2, Unit: "pieces"},
			{Name: "Olive Oil", Quantity: 1, Unit: "tbsp"},
		},
		Instructions: []string{
			"Season and grill the chicken until cooked through.",
			"Chop the lettuce and tomatoes.",
			"Slice the chicken, toss everything with olive oil.",
		},
		Calories: 380, Protein: 42, Carbs: 10, Fat: 18,
	},
	{
		ID:    "salmon-rice-bowl",
		Name:  "Salmon Rice Bowl",
		Emoji: "🍣",
		Ingredients: []models.RecipeIngredient{
			{Name: "Salmon Fillet", Quantity: 1, Unit: "pieces"},
			{Name: "Rice", Quantity: 150, Unit: "g"},
			{Name: "Cucumber", Quantity: 1, Unit: "pieces"},
		},
		Instructions: []string{
			"Cook the rice.",
			"Pan-sear the salmon, 3-4 minutes per side.",
			"Serve over rice with sliced cucumber.",
		},
		Calories: 560, Protein: 38, Carbs: 58, Fat: 19,
	},
	{
		ID:    "beef-tacos",
		Name:  "Beef Tacos",
		Emoji: "🌮",
		Ingredients: []models.RecipeIngredient{
			{Name: "Ground Beef", Quantity: 250, Unit: "g"},
			{Name: "Tortilla", Quantity: 4, Unit: "pieces"},
			{Name: "Cheese", Quantity: 50, Unit: "g"},
			{Name: "Lettuce", Quantity: 4, Unit: "leaves"},
		},
		Instructions: []string{
			"Brown the beef with taco seasoning.",
			"Warm the tortillas.",
			"Assemble with cheese and lettuce.",
		},
		Calories: 650, Protein: 35, Carbs: 45, Fat: 35,
	},
	{
		ID:    "veggie-stir-fry",
		Name:  "Veggie Stir Fry",
		Emoji: "🥦",
		Ingredients: []models.RecipeIngredient{
			{Name: "Broccoli", Quantity: 1, Unit: "head"},
			{Name: "Carrot", Quantity: 2, Unit: "pieces"},
			{Name: "Rice", Quantity: 150, Unit: "g"},
			{Name: "Soy Sauce", Quantity: 2, Unit: "tbsp"},
		},
		Instructions: []string{
			"Cook the rice.",
			"Stir-fry the vegetables over high heat.",
			"Toss with soy sauce and serve over rice.",
		},
		Calories: 410, Protein: 11, Carbs: 78, Fat: 6,
	},
	{
		ID:    "greek-yogurt-parfait",
		Name:  "Greek Yogurt Parfait",
		Emoji: "🫐",
		Ingredients: []models.RecipeIngredient{
			{Name: "Greek Yogurt", Quantity: 1, Unit: "cup"},
			{Name: "Berries", Quantity: 100, Unit: "g"},
			{Name: "Oats", Quantity: 30, Unit: "g"},
		},
		Instructions: []string{
			"Layer yogurt, berries, and oats in a glass.",
		},
		Calories: 280, Protein: 20, Carbs: 38, Fat: 5,
	},
	{
		ID:    "chicken-curry",
		Name:  "Chicken Curry",
		Emoji: "🍛",
		Ingredients: []models.RecipeIngredient{
			{Name: "Chicken Breast", Quantity: 2, Unit: "pieces"},
			{Name: "Coconut Milk", Quantity: 1, Unit: "can"},
			{Name: "Onion", Quantity: 1, Unit: "pieces"},
			{Name: "Rice", Quantity: 150, Unit: "g"},
		},
		Instructions: []string{
			"Saute the onion, add curry paste.",
			"Add diced chicken and brown.",
			"Pour in coconut milk, simmer 15 minutes, serve with rice.",
		},
		Calories: 720, Protein: 45, Carbs: 62, Fat: 30,
	},
}
