package nutrition

import (
	"context"
	"io"
	"time"

	"github.com/jrsteele09/wellbe/api"
)

// DefaultSearchLimit caps search results when the request sets no limit.
const DefaultSearchLimit = 20

type FoodSearchRequest struct {
	Query  string `json:"query"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

type AnalyzeImageRequest struct {
	Image    io.Reader
	Progress func(percent int)
}

type LogFoodRequest struct {
	FoodID   string     `json:"foodId"`
	Quantity float64    `json:"quantity"`
	MealType MealType   `json:"mealType"`
	Date     *time.Time `json:"date,omitempty"`
}

// Source serves nutrition data either from the in-memory catalogue or the API.
type Source interface {
	SearchFood(ctx context.Context, req FoodSearchRequest) api.Response[[]FoodItem]
	AnalyzeImage(ctx context.Context, req AnalyzeImageRequest) api.Response[FoodAnalysisResult]
	ScanBarcode(ctx context.Context, barcode string) api.Response[FoodItem]
	LogFood(ctx context.Context, req LogFoodRequest) api.Response[LoggedFood]
	DailyNutrition(ctx context.Context, date string) api.Response[DailyNutrition]
	FoodDetails(ctx context.Context, foodID string) api.Response[FoodItem]
}
