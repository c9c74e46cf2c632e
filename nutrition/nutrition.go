// Package nutrition provides food search, image analysis, barcode lookup and meal
// logging on top of a mock or networked Source.
package nutrition

import (
	"time"

	"github.com/jrsteele09/wellbe/internal/utils"
)

type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
	Snack     MealType = "snack"
)

func (m MealType) Valid() bool {
	switch m {
	case Breakfast, Lunch, Dinner, Snack:
		return true
	}
	return false
}

// Nutrients are the per-serving values shared by catalogue items and analysed foods.
type Nutrients struct {
	Brand       string   `json:"brand,omitempty"`
	Barcode     string   `json:"barcode,omitempty"`
	ServingSize string   `json:"servingSize"`
	ServingUnit string   `json:"servingUnit"`
	Calories    float64  `json:"calories"`
	Protein     float64  `json:"protein"` // grams
	Carbs       float64  `json:"carbs"`   // grams
	Fat         float64  `json:"fat"`     // grams
	Fiber       *float64 `json:"fiber,omitempty"`
	Sugar       *float64 `json:"sugar,omitempty"`
	Sodium      *float64 `json:"sodium,omitempty"` // milligrams
}

type FoodItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Nutrients
}

type LoggedFood struct {
	ID       string    `json:"id"`
	FoodItem FoodItem  `json:"foodItem"`
	Quantity float64   `json:"quantity"`
	MealType MealType  `json:"mealType"`
	LoggedAt time.Time `json:"loggedAt"`
	UserID   string    `json:"userId"`
}

type AnalyzedFood struct {
	Name       string    `json:"name"`
	Quantity   string    `json:"quantity"`
	Confidence float64   `json:"confidence"`
	Nutrition  Nutrients `json:"nutrition"`
}

type MacroTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type FoodAnalysisResult struct {
	Foods          []AnalyzedFood `json:"foods"`
	TotalNutrition MacroTotals    `json:"totalNutrition"`
}

type Meals struct {
	Breakfast []LoggedFood `json:"breakfast"`
	Lunch     []LoggedFood `json:"lunch"`
	Dinner    []LoggedFood `json:"dinner"`
	Snack     []LoggedFood `json:"snack"`
}

func (m *Meals) add(l LoggedFood) {
	switch l.MealType {
	case Breakfast:
		m.Breakfast = append(m.Breakfast, l)
	case Lunch:
		m.Lunch = append(m.Lunch, l)
	case Dinner:
		m.Dinner = append(m.Dinner, l)
	default:
		m.Snack = append(m.Snack, l)
	}
}

type DailyNutrition struct {
	Date          string  `json:"date"` // YYYY-MM-DD
	TotalCalories float64 `json:"totalCalories"`
	TotalProtein  float64 `json:"totalProtein"`
	TotalCarbs    float64 `json:"totalCarbs"`
	TotalFat      float64 `json:"totalFat"`
	Meals         Meals   `json:"meals"`
}

// DateLayout is the calendar-day format used for daily summaries.
const DateLayout = "2006-01-02"

func grams(v float64) *float64 { return utils.Ptr(v) }
