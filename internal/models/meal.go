package models

import (
	"math"
	"time"
)

// Meal is a single logged meal in the daily stats record.
// ID is a stable UUIDv7 so removal never depends on list positions.
type Meal struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Calories  float64   `json:"calories"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fat       float64   `json:"fat"`
	Timestamp time.Time `json:"timestamp"`
}

// DailyStats is the running nutrition total and meal log for one calendar
// date. The four totals always equal the field-wise sum over Meals; callers
// mutate Meals and call RecomputeTotals rather than touching totals directly.
type DailyStats struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Meals    []Meal  `json:"meals"`
}

// NewDailyStats returns an empty stats record for the given date key.
func NewDailyStats(date string) *DailyStats {
	return &DailyStats{Date: date, Meals: []Meal{}}
}

// RecomputeTotals rebuilds the four totals from the meal list.
func (s *DailyStats) RecomputeTotals() {
	s.Calories, s.Protein, s.Carbs, s.Fat = 0, 0, 0, 0
	for _, m := range s.Meals {
		s.Calories += m.Calories
		s.Protein += m.Protein
		s.Carbs += m.Carbs
		s.Fat += m.Fat
	}
	s.Calories = math.Round(s.Calories)
	s.Protein = round1(s.Protein)
	s.Carbs = round1(s.Carbs)
	s.Fat = round1(s.Fat)
}

// MealIndex returns the position of the meal with the given ID, or -1.
func (s *DailyStats) MealIndex(id string) int {
	for i, m := range s.Meals {
		if m.ID == id {
			return i
		}
	}
	return -1
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
