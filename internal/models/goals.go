package models

import (
	"errors"
	"math"
	"strings"
)

// Goals holds the current daily macro targets. Only the current target is
// retained; no history.
type Goals struct {
	DailyCalories float64 `json:"dailyCalories"`
	DailyProtein  float64 `json:"dailyProtein"`
	DailyCarbs    float64 `json:"dailyCarbs"`
	DailyFat      float64 `json:"dailyFat"`
}

// Validate checks that all four targets are positive.
func (g *Goals) Validate() error {
	var errs []error

	if g.DailyCalories <= 0 {
		errs = append(errs, errors.New("daily calorie target must be positive"))
	}
	if g.DailyProtein <= 0 {
		errs = append(errs, errors.New("daily protein target must be positive"))
	}
	if g.DailyCarbs <= 0 {
		errs = append(errs, errors.New("daily carb target must be positive"))
	}
	if g.DailyFat <= 0 {
		errs = append(errs, errors.New("daily fat target must be positive"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// DefaultGoals returns a generic maintenance target used before the user
// sets their own.
func DefaultGoals() Goals {
	return Goals{
		DailyCalories: 2000,
		DailyProtein:  120,
		DailyCarbs:    225,
		DailyFat:      65,
	}
}

// ActivityLevel scales the resting energy estimate in the calorie
// suggestion.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// Multiplier returns the activity factor applied to resting energy.
func (a ActivityLevel) Multiplier() float64 {
	switch a {
	case ActivitySedentary:
		return 1.2
	case ActivityLight:
		return 1.375
	case ActivityModerate:
		return 1.55
	case ActivityActive:
		return 1.725
	case ActivityVeryActive:
		return 1.9
	default:
		return 1.2
	}
}

// UserProfile holds the user's physical profile, used only to suggest a
// calorie goal.
type UserProfile struct {
	Name     string        `json:"name"`
	Age      int           `json:"age"`
	Sex      string        `json:"sex"` // "male" or "female"
	HeightCm float64       `json:"heightCm"`
	WeightKg float64       `json:"weightKg"`
	Activity ActivityLevel `json:"activity"`
}

// SuggestedCalories estimates a daily calorie goal from the profile using
// the Mifflin-St Jeor resting energy equation scaled by activity level.
// Returns 0 when the profile is missing required fields.
func (p *UserProfile) SuggestedCalories() float64 {
	if p.Age <= 0 || p.HeightCm <= 0 || p.WeightKg <= 0 {
		return 0
	}

	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if strings.EqualFold(p.Sex, "male") {
		bmr += 5
	} else {
		bmr -= 161
	}

	return math.Round(bmr * p.Activity.Multiplier())
}
