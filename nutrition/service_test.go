package nutrition_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/wellbe/internal/delay"
	"github.com/jrsteele09/wellbe/nutrition"
)

func setupTestFixture(t *testing.T, opts ...nutrition.MockOption) *nutrition.Service {
	t.Helper()
	svc, err := nutrition.NewService(nutrition.NewMockSource(delay.None, opts...))
	require.NoError(t, err)
	return svc
}

func TestSearchFoodChicken(t *testing.T) {
	svc := setupTestFixture(t)

	resp := svc.SearchFood(context.Background(), nutrition.FoodSearchRequest{Query: "chicken"})
	require.True(t, resp.Success)
	require.Len(t, resp.Data, 1)
	require.Equal(t, "1", resp.Data[0].ID)
	require.Equal(t, "Grilled Chicken Breast", resp.Data[0].Name)
}

func TestSearchFoodMatchesBrandAndPaginates(t *testing.T) {
	svc := setupTestFixture(t)
	ctx := context.Background()

	resp := svc.SearchFood(ctx, nutrition.FoodSearchRequest{Query: "FAGE"})
	require.True(t, resp.Success)
	require.Len(t, resp.Data, 1)
	require.Equal(t, "Greek Yogurt", resp.Data[0].Name)

	resp = svc.SearchFood(ctx, nutrition.FoodSearchRequest{Query: "generic", Limit: 2, Offset: 1})
	require.True(t, resp.Success)
	require.Len(t, resp.Data, 2)
	require.Equal(t, "Brown Rice", resp.Data[0].Name)
	require.Equal(t, "Avocado", resp.Data[1].Name)

	resp = svc.SearchFood(ctx, nutrition.FoodSearchRequest{Query: "pizza"})
	require.True(t, resp.Success)
	require.Empty(t, resp.Data)

	resp = svc.SearchFood(ctx, nutrition.FoodSearchRequest{Offset: -1})
	require.False(t, resp.Success)
}

func TestAnalyzeImage(t *testing.T) {
	svc := setupTestFixture(t)

	var progress []int
	resp := svc.AnalyzeImage(context.Background(), nutrition.AnalyzeImageRequest{
		Image:    strings.NewReader("jpeg"),
		Progress: func(p int) { progress = append(progress, p) },
	})
	require.True(t, resp.Success)
	require.Len(t, resp.Data.Foods, 2)
	require.Equal(t, "Grilled Chicken Breast", resp.Data.Foods[0].Name)
	require.InDelta(t, 0.92, resp.Data.Foods[0].Confidence, 1e-9)
	require.Equal(t, "Brown Rice", resp.Data.Foods[1].Name)
	require.InDelta(t, 371, resp.Data.TotalNutrition.Calories, 1e-9)
	require.Equal(t, []int{100}, progress)
}

func TestAnalyzeImageHonoursContext(t *testing.T) {
	svc, err := nutrition.NewService(nutrition.NewMockSource(delay.Simulator{Scale: 1}))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	resp := svc.AnalyzeImage(ctx, nutrition.AnalyzeImageRequest{})
	require.False(t, resp.Success)
	require.Equal(t, context.DeadlineExceeded.Error(), resp.Error)
}

func TestScanBarcode(t *testing.T) {
	svc := setupTestFixture(t)

	resp := svc.ScanBarcode(context.Background(), "0123456789")
	require.True(t, resp.Success)
	require.Equal(t, "barcode_0123456789", resp.Data.ID)
	require.Equal(t, "Organic Greek Yogurt", resp.Data.Name)
	require.Equal(t, "Chobani", resp.Data.Brand)
	require.Equal(t, "0123456789", resp.Data.Barcode)

	require.False(t, svc.ScanBarcode(context.Background(), " ").Success)
}

func TestLogFoodAndDailySummary(t *testing.T) {
	defer func() { nutrition.NowTimeFunc = time.Now }()
	nutrition.NowTimeFunc = func() time.Time { return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC) }

	svc := setupTestFixture(t, nutrition.WithUserResolver(func(context.Context) string { return "2" }))
	ctx := context.Background()

	logged := svc.LogFood(ctx, nutrition.LogFoodRequest{FoodID: "1", Quantity: 2, MealType: nutrition.Lunch})
	require.True(t, logged.Success, logged.Error)
	require.True(t, strings.HasPrefix(logged.Data.ID, "log_"))
	require.Equal(t, "2", logged.Data.UserID)
	require.Equal(t, "Grilled Chicken Breast", logged.Data.FoodItem.Name)

	second := svc.LogFood(ctx, nutrition.LogFoodRequest{FoodID: "5", Quantity: 1, MealType: nutrition.Snack})
	require.True(t, second.Success)
	require.NotEqual(t, logged.Data.ID, second.Data.ID)

	yesterday := time.Date(2024, 3, 9, 8, 0, 0, 0, time.UTC)
	require.True(t, svc.LogFood(ctx, nutrition.LogFoodRequest{FoodID: "3", Quantity: 1, MealType: nutrition.Breakfast, Date: &yesterday}).Success)

	daily := svc.DailyNutrition(ctx, "")
	require.True(t, daily.Success)
	require.Equal(t, "2024-03-10", daily.Data.Date)
	require.InDelta(t, 165*2+105, daily.Data.TotalCalories, 1e-9)
	require.InDelta(t, 31*2+1.3, daily.Data.TotalProtein, 1e-9)
	require.Len(t, daily.Data.Meals.Lunch, 1)
	require.Len(t, daily.Data.Meals.Snack, 1)
	require.Empty(t, daily.Data.Meals.Breakfast)

	prev := svc.DailyNutrition(ctx, "2024-03-09")
	require.True(t, prev.Success)
	require.Len(t, prev.Data.Meals.Breakfast, 1)

	require.False(t, svc.DailyNutrition(ctx, "10/03/2024").Success)
}

func TestLogFoodErrors(t *testing.T) {
	svc := setupTestFixture(t)
	ctx := context.Background()

	resp := svc.LogFood(ctx, nutrition.LogFoodRequest{FoodID: "999", Quantity: 1, MealType: nutrition.Dinner})
	require.False(t, resp.Success)
	require.Equal(t, "Food item not found", resp.Error)

	resp = svc.LogFood(ctx, nutrition.LogFoodRequest{FoodID: "1", Quantity: 1, MealType: "brunch"})
	require.False(t, resp.Success)

	resp = svc.LogFood(ctx, nutrition.LogFoodRequest{FoodID: "1", Quantity: 0, MealType: nutrition.Dinner})
	require.False(t, resp.Success)
}

func TestFoodDetails(t *testing.T) {
	svc := setupTestFixture(t)
	ctx := context.Background()

	resp := svc.FoodDetails(ctx, "3")
	require.True(t, resp.Success)
	require.Equal(t, "Avocado", resp.Data.Name)
	require.InDelta(t, 7, *resp.Data.Fiber, 1e-9)

	resp = svc.FoodDetails(ctx, "missing")
	require.False(t, resp.Success)
	require.Equal(t, "Food not found", resp.Error)
}
