package store

// Well-known store keys. All application state lives under the
// mtable_ prefix so other tools sharing the database stay out of the
// way.
const (
	// KeyInventory holds the pantry ingredient list.
	KeyInventory = "mtable_inventory"

	// KeyGoals holds the daily nutrition goals.
	KeyGoals = "mtable_goals"

	// KeyMeals holds the calendar meal plan, a map of date string to
	// meal list.
	KeyMeals = "mtable_meals"

	// KeyDailyTotals holds per-day calorie totals for the calendar, a
	// map of date string to calories.
	KeyDailyTotals = "mtable_daily_totals"

	// KeyAddedRecipes holds recipes the user saved from the catalog.
	KeyAddedRecipes = "mtable_added_recipes"

	// KeyGroceryChecked holds the checked-off state of the grocery list.
	KeyGroceryChecked = "mtable_grocery_checked"

	// KeyUserProfile holds the user profile used for goal suggestions.
	KeyUserProfile = "mtable_user_profile"

	// statsKeyPrefix prefixes the per-day nutrition log keys.
	statsKeyPrefix = "mtable_stats_"
)

// StatsKey returns the store key for the nutrition log of the given
// date, formatted YYYY-MM-DD.
func StatsKey(date string) string {
	return statsKeyPrefix + date
}

// StatsKeyPrefix returns the prefix shared by all per-day nutrition
// log keys, for use with Keys.
func StatsKeyPrefix() string {
	return statsKeyPrefix
}
