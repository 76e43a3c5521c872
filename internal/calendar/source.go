package calendar

import (
	"strings"

	"github.com/mealtable/mealtable/internal/models"
)

// KeywordSource infers required ingredients from keywords in a meal
// name using a fixed lookup table. A known heuristic: it does not
// parse real recipe data, so "Thai Chicken Curry" and "Chicken Soup"
// both demand the chicken staples.
type KeywordSource struct{}

// IngredientsFor returns the ingredient demands for every keyword the
// meal name contains.
func (KeywordSource) IngredientsFor(mealName string) []models.RecipeIngredient {
	lower := strings.ToLower(mealName)

	var out []models.RecipeIngredient
	for _, entry := range keywordIngredients {
		if strings.Contains(lower, entry.keyword) {
			out = append(out, entry.ingredients...)
		}
	}
	return out
}

// CatalogSource resolves ingredients from a recipe catalog by exact
// name match, falling back to the keyword table for meals the catalog
// does not know.
type CatalogSource struct {
	Catalog  RecipeFinder
	Fallback KeywordSource
}

// RecipeFinder looks up a catalog recipe by name.
type RecipeFinder interface {
	FindByName(name string) (models.Recipe, bool)
}

// IngredientsFor returns the catalog recipe's ingredient list when the
// meal name matches a recipe, otherwise the keyword inference.
func (s CatalogSource) IngredientsFor(mealName string) []models.RecipeIngredient {
	if s.Catalog != nil {
		if recipe, ok := s.Catalog.FindByName(mealName); ok {
			return recipe.Ingredients
		}
	}
	return s.Fallback.IngredientsFor(mealName)
}

type keywordEntry struct {
	keyword     string
	ingredients []models.RecipeIngredient
}

var keywordIngredients = []keywordEntry{
	{"chicken", []models.RecipeIngredient{
		{Name: "Chicken Breast", Quantity: 2, Unit: "pieces"},
		{Name: "Olive Oil", Quantity: 1, Unit: "tbsp"},
		{Name: "Garlic", Quantity: 2, Unit: "cloves"},
	}},
	{"beef", []models.RecipeIngredient{
		{Name: "Ground Beef", Quantity: 250, Unit: "g"},
		{Name: "Onion", Quantity: 1, Unit: "pieces"},
	}},
	{"salmon", []models.RecipeIngredient{
		{Name: "Salmon Fillet", Quantity: 1, Unit: "pieces"},
		{Name: "Lemon", Quantity: 1, Unit: "pieces"},
	}},
	{"shrimp", []models.RecipeIngredient{
		{Name: "Shrimp", Quantity: 200, Unit: "g"},
		{Name: "Garlic", Quantity: 2, Unit: "cloves"},
	}},
	{"egg", []models.RecipeIngredient{
		{Name: "Eggs", Quantity: 3, Unit: "pieces"},
		{Name: "Butter", Quantity: 1, Unit: "tbsp"},
	}},
	{"omelet", []models.RecipeIngredient{
		{Name: "Eggs", Quantity: 3, Unit: "pieces"},
		{Name: "Cheese", Quantity: 30, Unit: "g"},
	}},
	{"salad", []models.RecipeIngredient{
		{Name: "Lettuce", Quantity: 1, Unit: "head"},
		{Name: "Tomato", Quantity: 2, Unit: "pieces"},
		{Name: "Cucumber", Quantity: 1, Unit: "pieces"},
	}},
	{"pasta", []models.RecipeIngredient{
		{Name: "Pasta", Quantity: 200, Unit: "g"},
		{Name: "Tomato Sauce", Quantity: 1, Unit: "cup"},
	}},
	{"rice", []models.RecipeIngredient{
		{Name: "Rice", Quantity: 200, Unit: "g"},
	}},
	{"oatmeal", []models.RecipeIngredient{
		{Name: "Oats", Quantity: 80, Unit: "g"},
		{Name: "Milk", Quantity: 1, Unit: "cup"},
	}},
	{"yogurt", []models.RecipeIngredient{
		{Name: "Greek Yogurt", Quantity: 1, Unit: "cup"},
		{Name: "Berries", Quantity: 100, Unit: "g"},
	}},
	{"smoothie", []models.RecipeIngredient{
		{Name: "Banana", Quantity: 1, Unit: "pieces"},
		{Name: "Berries", Quantity: 100, Unit: "g"},
		{Name: "Milk", Quantity: 1, Unit: "cup"},
	}},
	{"sandwich", []models.RecipeIngredient{
		{Name: "Bread", Quantity: 2, Unit: "slices"},
		{Name: "Cheese", Quantity: 2, Unit: "slices"},
		{Name: "Lettuce", Quantity: 2, Unit: "leaves"},
	}},
	{"toast", []models.RecipeIngredient{
		{Name: "Bread", Quantity: 2, Unit: "slices"},
		{Name: "Avocado", Quantity: 1, Unit: "pieces"},
	}},
	{"soup", []models.RecipeIngredient{
		{Name: "Vegetable Broth", Quantity: 1, Unit: "liter"},
		{Name: "Carrot", Quantity: 2, Unit: "pieces"},
		{Name: "Onion", Quantity: 1, Unit: "pieces"},
	}},
	{"taco", []models.RecipeIngredient{
		{Name: "Tortilla", Quantity: 4, Unit: "pieces"},
		{Name: "Ground Beef", Quantity: 250, Unit: "g"},
		{Name: "Cheese", Quantity: 50, Unit: "g"},
	}},
	{"burger", []models.RecipeIngredient{
		{Name: "Ground Beef", Quantity: 200, Unit: "g"},
		{Name: "Bread", Quantity: 1, Unit: "bun"},
		{Name: "Lettuce", Quantity: 2, Unit: "leaves"},
	}},
	{"stir fry", []models.RecipeIngredient{
		{Name: "Broccoli", Quantity: 1, Unit: "head"},
		{Name: "Carrot", Quantity: 2, Unit: "pieces"},
		{Name: "Rice", Quantity: 150, Unit: "g"},
	}},
	{"curry", []models.RecipeIngredient{
		{Name: "Coconut Milk", Quantity: 1, Unit: "can"},
		{Name: "Onion", Quantity: 1, Unit: "pieces"},
		{Name: "Rice", Quantity: 150, Unit: "g"},
	}},
	{"pancake", []models.RecipeIngredient{
		{Name: "Flour", Quantity: 150, Unit: "g"},
		{Name: "Eggs", Quantity: 2, Unit: "pieces"},
		{Name: "Milk", Quantity: 1, Unit: "cup"},
	}},
	{"quinoa", []models.RecipeIngredient{
		{Name: "Quinoa", Quantity: 150, Unit: "g"},
	}},
}
