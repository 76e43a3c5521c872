package nutrition

import "testing"

func TestCaloriesFromMacros(t *testing.T) {
	tests := []struct {
		name                          string
		protein, carbs, fat, alcohol float64
		want                          float64
	}{
		{"zeroes", 0, 0, 0, 0, 0},
		{"protein only", 10, 0, 0, 0, 40},
		{"mixed", 30, 40, 20, 0, 460},
		{"with alcohol", 0, 0, 0, 10, 70},
		{"rounded", 1.1, 0, 0, 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CaloriesFromMacros(tt.protein, tt.carbs, tt.fat, tt.alcohol)
			if got != tt.want {
				t.Errorf("CaloriesFromMacros = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCombine(t *testing.T) {
	got := Combine([]Record{
		{Calories: 100, Protein: 10, Carbs: 5, Fat: 2},
		{Calories: 200, Carbs: 30},
		{},
	})

	want := Record{Calories: 300, Protein: 10, Carbs: 35, Fat: 2}
	if got != want {
		t.Errorf("Combine = %+v, want %+v", got, want)
	}
}

func TestCombineEmpty(t *testing.T) {
	if got := Combine(nil); got != (Record{}) {
		t.Errorf("Combine(nil) = %+v, want zero record", got)
	}
}

func TestScale(t *testing.T) {
	r := Record{Calories: 333, Protein: 10.04, Carbs: 21.3, Fat: 7.77}

	got := Scale(r, 0.5)

	if got.Calories != 167 {
		t.Errorf("calories = %v, want integer 167", got.Calories)
	}
	if got.Protein != 5 || got.Carbs != 10.7 {
		t.Errorf("macros should round to 1 decimal: %+v", got)
	}
	if got.Fat != 3.9 {
		t.Errorf("fat = %v, want 3.9", got.Fat)
	}
}

func TestScaleZeroFactor(t *testing.T) {
	r := Record{Calories: 100, Protein: 10}
	if got := Scale(r, 0); got != (Record{}) {
		t.Errorf("Scale by 0 = %+v, want zero record", got)
	}
}

func TestClassifyBoundaries(t *testing.T) {
	const target = 100.0

	tests := []struct {
		current float64
		want    Level
	}{
		{0, LevelLow},
		{49.9, LevelLow},
		{50, LevelModerate},
		{79.9, LevelModerate},
		{80, LevelGood},
		{110, LevelGood}, // exactly 110% is still good
		{111, LevelHigh},
		{130, LevelHigh},
		{130.1, LevelExcessive},
	}

	for _, tt := range tests {
		if got := Classify(tt.current, target); got != tt.want {
			t.Errorf("Classify(%v, %v) = %s, want %s", tt.current, target, got, tt.want)
		}
	}
}

func TestClassifyZeroTarget(t *testing.T) {
	if got := Classify(50, 0); got != LevelUnknown {
		t.Errorf("Classify with zero target = %s, want unknown", got)
	}
}

func TestEstimate(t *testing.T) {
	got := Estimate("vegetable", 200)
	if got.Calories <= 0 {
		t.Errorf("expected positive calories for 200g vegetables, got %+v", got)
	}

	per100 := Estimate("vegetable", 100)
	if got.Calories != per100.Calories*2 {
		t.Errorf("200g should be double 100g: %v vs %v", got.Calories, per100.Calories)
	}
}

func TestEstimateDegradesToZero(t *testing.T) {
	if got := Estimate("unobtainium", 100); got != (Record{}) {
		t.Errorf("unknown category = %+v, want zero record", got)
	}
	if got := Estimate("vegetable", 0); got != (Record{}) {
		t.Errorf("zero portion = %+v, want zero record", got)
	}
	if got := Estimate("vegetable", -50); got != (Record{}) {
		t.Errorf("negative portion = %+v, want zero record", got)
	}
}

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Chicken Breast", "poultry"},
		{"rolled oats", "grain"},
		{"Olive Oil", "oil"},
		{"Cherry Tomato", "vegetable"},
		{"Mystery Paste", ""},
	}

	for _, tt := range tests {
		if got := CategoryFor(tt.name); got != tt.want {
			t.Errorf("CategoryFor(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
