package nutrition

// MockFoods returns the fixed development catalogue.
func MockFoods() []FoodItem {
	return []FoodItem{
		{ID: "1", Name: "Grilled Chicken Breast", Nutrients: Nutrients{
			Brand: "Generic", ServingSize: "100", ServingUnit: "g",
			Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6,
			Fiber: grams(0), Sugar: grams(0), Sodium: grams(74),
		}},
		{ID: "2", Name: "Brown Rice", Nutrients: Nutrients{
			Brand: "Generic", ServingSize: "100", ServingUnit: "g",
			Calories: 123, Protein: 2.6, Carbs: 25, Fat: 0.9,
			Fiber: grams(1.8), Sugar: grams(0.4), Sodium: grams(1),
		}},
		{ID: "3", Name: "Avocado", Nutrients: Nutrients{
			Brand: "Generic", ServingSize: "100", ServingUnit: "g",
			Calories: 160, Protein: 2, Carbs: 9, Fat: 15,
			Fiber: grams(7), Sugar: grams(0.7), Sodium: grams(7),
		}},
		{ID: "4", Name: "Greek Yogurt", Nutrients: Nutrients{
			Brand: "Fage", ServingSize: "170", ServingUnit: "g",
			Calories: 100, Protein: 18, Carbs: 6, Fat: 0,
			Fiber: grams(0), Sugar: grams(6), Sodium: grams(65),
		}},
		{ID: "5", Name: "Banana", Nutrients: Nutrients{
			Brand: "Generic", ServingSize: "1", ServingUnit: "medium",
			Calories: 105, Protein: 1.3, Carbs: 27, Fat: 0.4,
			Fiber: grams(3.1), Sugar: grams(14), Sodium: grams(1),
		}},
	}
}

// MockAnalysis is the canned result of analysing a meal photo.
func MockAnalysis() FoodAnalysisResult {
	return FoodAnalysisResult{
		Foods: []AnalyzedFood{
			{Name: "Grilled Chicken Breast", Quantity: "150g", Confidence: 0.92, Nutrition: Nutrients{
				Brand: "Generic", ServingSize: "150", ServingUnit: "g",
				Calories: 248, Protein: 46.5, Carbs: 0, Fat: 5.4,
				Fiber: grams(0), Sugar: grams(0), Sodium: grams(111),
			}},
			{Name: "Brown Rice", Quantity: "100g", Confidence: 0.87, Nutrition: Nutrients{
				Brand: "Generic", ServingSize: "100", ServingUnit: "g",
				Calories: 123, Protein: 2.6, Carbs: 25, Fat: 0.9,
				Fiber: grams(1.8), Sugar: grams(0.4), Sodium: grams(1),
			}},
		},
		TotalNutrition: MacroTotals{Calories: 371, Protein: 49.1, Carbs: 25, Fat: 6.3},
	}
}

// MockBarcodeProduct is returned for every scanned barcode in mock mode.
func MockBarcodeProduct(barcode string) FoodItem {
	return FoodItem{ID: "barcode_" + barcode, Name: "Organic Greek Yogurt", Nutrients: Nutrients{
		Brand: "Chobani", Barcode: barcode, ServingSize: "170", ServingUnit: "g",
		Calories: 100, Protein: 18, Carbs: 6, Fat: 0,
		Fiber: grams(0), Sugar: grams(6), Sodium: grams(65),
	}}
}
