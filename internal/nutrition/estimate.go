package nutrition

import "strings"

// categoryPer100g holds heuristic nutrition per 100 g of food in each
// broad category. Used only when no explicit nutrition is known for an
// item; the values are rough reference data, not measurements.
var categoryPer100g = map[string]Record{
	"vegetable": {Calories: 35, Protein: 2, Carbs: 7, Fat: 0.3},
	"fruit":     {Calories: 60, Protein: 0.8, Carbs: 15, Fat: 0.2},
	"grain":     {Calories: 350, Protein: 10, Carbs: 72, Fat: 2},
	"meat":      {Calories: 220, Protein: 26, Carbs: 0, Fat: 12},
	"poultry":   {Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6},
	"seafood":   {Calories: 150, Protein: 24, Carbs: 0, Fat: 5},
	"dairy":     {Calories: 120, Protein: 7, Carbs: 5, Fat: 8},
	"egg":       {Calories: 155, Protein: 13, Carbs: 1.1, Fat: 11},
	"legume":    {Calories: 130, Protein: 9, Carbs: 22, Fat: 0.5},
	"nut":       {Calories: 600, Protein: 20, Carbs: 20, Fat: 50},
	"oil":       {Calories: 884, Protein: 0, Carbs: 0, Fat: 100},
	"sweet":     {Calories: 400, Protein: 4, Carbs: 60, Fat: 16},
	"beverage":  {Calories: 40, Protein: 0, Carbs: 10, Fat: 0},
}

// Estimate returns heuristic nutrition for portionGrams of food in the
// given category, scaled from the per-100g reference table. Unknown
// categories and non-positive portions yield a zero Record.
func Estimate(category string, portionGrams float64) Record {
	if portionGrams <= 0 {
		return Record{}
	}

	ref, ok := categoryPer100g[strings.ToLower(strings.TrimSpace(category))]
	if !ok {
		return Record{}
	}

	return Scale(ref, portionGrams/100)
}

// Categories lists the food categories the estimator knows about.
func Categories() []string {
	names := make([]string, 0, len(categoryPer100g))
	for name := range categoryPer100g {
		names = append(names, name)
	}
	return names
}

// categoryKeywords maps common ingredient words to estimator
// categories. Ordered so more specific words win over generic ones.
var categoryKeywords = []struct {
	word     string
	category string
}{
	{"chicken", "poultry"},
	{"turkey", "poultry"},
	{"beef", "meat"},
	{"pork", "meat"},
	{"lamb", "meat"},
	{"salmon", "seafood"},
	{"tuna", "seafood"},
	{"shrimp", "seafood"},
	{"fish", "seafood"},
	{"egg", "egg"},
	{"milk", "dairy"},
	{"cheese", "dairy"},
	{"yogurt", "dairy"},
	{"butter", "dairy"},
	{"oat", "grain"},
	{"rice", "grain"},
	{"pasta", "grain"},
	{"bread", "grain"},
	{"flour", "grain"},
	{"quinoa", "grain"},
	{"bean", "legume"},
	{"lentil", "legume"},
	{"chickpea", "legume"},
	{"tofu", "legume"},
	{"almond", "nut"},
	{"peanut", "nut"},
	{"walnut", "nut"},
	{"oil", "oil"},
	{"sugar", "sweet"},
	{"honey", "sweet"},
	{"chocolate", "sweet"},
	{"juice", "beverage"},
	{"apple", "fruit"},
	{"banana", "fruit"},
	{"orange", "fruit"},
	{"berr", "fruit"},
	{"onion", "vegetable"},
	{"garlic", "vegetable"},
	{"tomato", "vegetable"},
	{"pepper", "vegetable"},
	{"carrot", "vegetable"},
	{"spinach", "vegetable"},
	{"broccoli", "vegetable"},
	{"lettuce", "vegetable"},
	{"potato", "vegetable"},
}

// CategoryFor guesses an estimator category from an ingredient name.
// Returns the empty string when no keyword matches.
func CategoryFor(name string) string {
	lower := strings.ToLower(name)
	for _, kw := range categoryKeywords {
		if strings.Contains(lower, kw.word) {
			return kw.category
		}
	}
	return ""
}
