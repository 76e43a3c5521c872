// Package nutrition provides pure functions for computing and classifying
// nutrition totals. Nothing here touches storage or holds state; missing
// input degrades to zero rather than failing.
package nutrition

import "math"

// Record holds one set of macro values. A zero Record is a valid empty
// record.
type Record struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Alcohol  float64 `json:"alcohol,omitempty"`
}

// Calorie densities in kcal per gram.
const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
	kcalPerGramAlcohol = 7
)

// CaloriesFromMacros estimates total calories from macro grams, rounded to
// the nearest whole calorie.
func CaloriesFromMacros(protein, carbs, fat, alcohol float64) float64 {
	return math.Round(kcalPerGramProtein*protein +
		kcalPerGramCarbs*carbs +
		kcalPerGramFat*fat +
		kcalPerGramAlcohol*alcohol)
}

// Combine sums records field-wise. An empty input yields a zero Record.
func Combine(records []Record) Record {
	var total Record
	for _, r := range records {
		total.Calories += r.Calories
		total.Protein += r.Protein
		total.Carbs += r.Carbs
		total.Fat += r.Fat
		total.Alcohol += r.Alcohol
	}
	return total
}

// Scale multiplies a record field-wise by factor. Macros are rounded to
// one decimal; calories to a whole number.
func Scale(r Record, factor float64) Record {
	return Record{
		Calories: math.Round(r.Calories * factor),
		Protein:  round1(r.Protein * factor),
		Carbs:    round1(r.Carbs * factor),
		Fat:      round1(r.Fat * factor),
		Alcohol:  round1(r.Alcohol * factor),
	}
}

// Level classifies a current value against a target.
type Level string

const (
	LevelLow       Level = "low"       // under 50% of target
	LevelModerate  Level = "moderate"  // under 80%
	LevelGood      Level = "good"      // up to 110%
	LevelHigh      Level = "high"      // up to 130%
	LevelExcessive Level = "excessive" // over 130%
	LevelUnknown   Level = "unknown"   // no target set
)

func (l Level) String() string {
	return string(l)
}

// Classify buckets current against target. A zero or negative target
// yields LevelUnknown.
func Classify(current, target float64) Level {
	if target <= 0 {
		return LevelUnknown
	}

	ratio := current / target
	switch {
	case ratio < 0.5:
		return LevelLow
	case ratio < 0.8:
		return LevelModerate
	case ratio <= 1.10:
		return LevelGood
	case ratio <= 1.30:
		return LevelHigh
	default:
		return LevelExcessive
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
