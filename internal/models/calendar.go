package models

import (
	"strings"
	"time"
)

// MealType classifies a planned meal by slot.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
	MealTypeMeal      MealType = "meal"
)

func (t MealType) String() string {
	return string(t)
}

// IsValid reports whether t is one of the known meal slots.
func (t MealType) IsValid() bool {
	switch t {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack, MealTypeMeal:
		return true
	}
	return false
}

// MealTypeForHour infers a meal slot from the hour of day a meal was
// logged: before 11:00 breakfast, before 16:00 lunch, before 21:00
// dinner, otherwise snack.
func MealTypeForHour(hour int) MealType {
	switch {
	case hour < 11:
		return MealTypeBreakfast
	case hour < 16:
		return MealTypeLunch
	case hour < 21:
		return MealTypeDinner
	default:
		return MealTypeSnack
	}
}

// MatchWindow is the maximum timestamp distance at which a calendar meal
// and a dashboard meal with the same name are considered the same meal.
// The two stores share no primary key, so reconciliation matches by
// approximate identity.
const MatchWindow = 60 * time.Second

// CalendarMeal is one planned or logged meal on the monthly calendar.
// Stored per date, distinct from the daily stats meal log.
type CalendarMeal struct {
	ID        string    `json:"id"`
	Type      MealType  `json:"type"`
	Name      string    `json:"name"`
	Emoji     string    `json:"emoji,omitempty"`
	Calories  float64   `json:"calories"`
	Timestamp time.Time `json:"timestamp"`
}

// MatchesLogged reports whether this calendar entry corresponds to a
// dashboard meal, by exact name and timestamp proximity within MatchWindow.
func (c *CalendarMeal) MatchesLogged(m Meal) bool {
	if !strings.EqualFold(c.Name, m.Name) {
		return false
	}
	diff := c.Timestamp.Sub(m.Timestamp)
	if diff < 0 {
		diff = -diff
	}
	return diff <= MatchWindow
}
