package models

import "time"

// RecipeIngredient is one line of a recipe's ingredient list.
type RecipeIngredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Recipe is a catalog entry: ingredients, instructions, and per-serving
// nutrition.
type Recipe struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Emoji        string             `json:"emoji,omitempty"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
	Instructions []string           `json:"instructions"`
	Calories     float64            `json:"calories"`
	Protein      float64            `json:"protein"`
	Carbs        float64            `json:"carbs"`
	Fat          float64            `json:"fat"`
}

// AddedRecipe is a denormalized snapshot of a catalog recipe copied onto
// the user's dashboard. Later edits to the catalog do not propagate to
// copies already added; the copy is deliberately a snapshot.
type AddedRecipe struct {
	Recipe
	AddedAt time.Time `json:"addedAt"`
}
