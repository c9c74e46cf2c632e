package nutrition

// Energy per gram of each macronutrient, in kcal.
const (
	ProteinKcalPerGram = 4
	CarbsKcalPerGram   = 4
	FatKcalPerGram     = 9
)

// CaloriesFromMacros returns protein*4 + carbs*4 + fat*9.
func CaloriesFromMacros(protein, carbs, fat float64) float64 {
	return protein*ProteinKcalPerGram + carbs*CarbsKcalPerGram + fat*FatKcalPerGram
}

// MacroRatios are the shares of total calories, in percent.
type MacroRatios struct {
	ProteinPercentage float64 `json:"proteinPercentage"`
	CarbsPercentage   float64 `json:"carbsPercentage"`
	FatPercentage     float64 `json:"fatPercentage"`
}

// NutritionRatios splits totalCalories by macro. All ratios are zero when
// totalCalories is not positive.
func NutritionRatios(totalCalories, protein, carbs, fat float64) MacroRatios {
	if totalCalories <= 0 {
		return MacroRatios{}
	}
	return MacroRatios{
		ProteinPercentage: protein * ProteinKcalPerGram / totalCalories * 100,
		CarbsPercentage:   carbs * CarbsKcalPerGram / totalCalories * 100,
		FatPercentage:     fat * FatKcalPerGram / totalCalories * 100,
	}
}

// Totals sums the macros of logged foods scaled by quantity.
func Totals(logged []LoggedFood) MacroTotals {
	var t MacroTotals
	for _, l := range logged {
		t.Calories += l.FoodItem.Calories * l.Quantity
		t.Protein += l.FoodItem.Protein * l.Quantity
		t.Carbs += l.FoodItem.Carbs * l.Quantity
		t.Fat += l.FoodItem.Fat * l.Quantity
	}
	return t
}
