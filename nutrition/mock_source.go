package nutrition

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/wellbe/api"
	"github.com/jrsteele09/wellbe/internal/delay"
	wellbeerrors "github.com/jrsteele09/wellbe/internal/errors"
	"github.com/jrsteele09/wellbe/internal/query"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// MockUserID owns logged records when no user resolver is configured.
const MockUserID = "1"

const (
	searchLatency  = 500 * time.Millisecond
	analyzeLatency = 2000 * time.Millisecond
	barcodeLatency = 800 * time.Millisecond
	logLatency     = 300 * time.Millisecond
	dailyLatency   = 400 * time.Millisecond
	detailsLatency = 200 * time.Millisecond
)

const foodNotFoundMsg = "Food not found"

var _ Source = (*MockSource)(nil)

// MockSource serves the fixed catalogue and keeps logged foods in memory.
type MockSource struct {
	foods   []FoodItem
	latency delay.Simulator
	userID  func(ctx context.Context) string
	mu      sync.RWMutex
	logged  []LoggedFood
}

type MockOption func(*MockSource)

// WithUserResolver sets how the owner of a logged record is determined.
func WithUserResolver(fn func(ctx context.Context) string) MockOption {
	return func(s *MockSource) { s.userID = fn }
}

// WithFoods replaces the fixture catalogue.
func WithFoods(foods []FoodItem) MockOption {
	return func(s *MockSource) { s.foods = foods }
}

func NewMockSource(latency delay.Simulator, opts ...MockOption) *MockSource {
	s := &MockSource{
		foods:   MockFoods(),
		latency: latency,
		userID:  func(context.Context) string { return MockUserID },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FoodMatches matches a case-insensitive substring of the name or brand.
func FoodMatches(q string) query.Predicate[FoodItem] {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil
	}
	return query.Any[FoodItem](
		func(f FoodItem) bool { return query.ContainsFold(f.Name, q) },
		func(f FoodItem) bool { return f.Brand != "" && query.ContainsFold(f.Brand, q) },
	)
}

func (s *MockSource) SearchFood(ctx context.Context, req FoodSearchRequest) api.Response[[]FoodItem] {
	if err := s.latency.Wait(ctx, searchLatency); err != nil {
		return api.Fail[[]FoodItem](err, "Failed to search food")
	}
	limit := req.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	results := query.Filter(s.foods, query.All(FoodMatches(req.Query)), req.Offset, limit)
	log.Debug().Str("query", req.Query).Int("results", len(results)).Msg("Mock food search")
	return api.OK(results)
}

func (s *MockSource) AnalyzeImage(ctx context.Context, req AnalyzeImageRequest) api.Response[FoodAnalysisResult] {
	if err := s.latency.Wait(ctx, analyzeLatency); err != nil {
		return api.Fail[FoodAnalysisResult](err, "Failed to analyze image")
	}
	if req.Progress != nil {
		req.Progress(100)
	}
	log.Debug().Msg("Mock image analysis completed")
	return api.OK(MockAnalysis())
}

func (s *MockSource) ScanBarcode(ctx context.Context, barcode string) api.Response[FoodItem] {
	if err := s.latency.Wait(ctx, barcodeLatency); err != nil {
		return api.Fail[FoodItem](err, "Failed to scan barcode")
	}
	log.Debug().Str("barcode", barcode).Msg("Mock barcode scan")
	return api.OK(MockBarcodeProduct(barcode))
}

func (s *MockSource) LogFood(ctx context.Context, req LogFoodRequest) api.Response[LoggedFood] {
	if err := s.latency.Wait(ctx, logLatency); err != nil {
		return api.Fail[LoggedFood](err, "Failed to log food")
	}
	food, ok := s.find(req.FoodID)
	if !ok {
		return api.Failed[LoggedFood](wellbeerrors.ErrFoodNotFound.Error())
	}

	loggedAt := NowTimeFunc().UTC()
	if req.Date != nil && !req.Date.IsZero() {
		loggedAt = req.Date.UTC()
	}
	entry := LoggedFood{
		ID:       "log_" + ulid.Make().String(),
		FoodItem: food,
		Quantity: req.Quantity,
		MealType: req.MealType,
		LoggedAt: loggedAt,
		UserID:   s.userID(ctx),
	}

	s.mu.Lock()
	s.logged = append(s.logged, entry)
	s.mu.Unlock()

	log.Debug().Str("food", food.Name).Float64("quantity", req.Quantity).Str("meal", string(req.MealType)).Msg("Mock food logged")
	return api.OK(entry)
}

// DailyNutrition totals the current user's logged foods for date (YYYY-MM-DD, today when empty).
func (s *MockSource) DailyNutrition(ctx context.Context, date string) api.Response[DailyNutrition] {
	if err := s.latency.Wait(ctx, dailyLatency); err != nil {
		return api.Fail[DailyNutrition](err, "Failed to get daily nutrition")
	}
	day, err := ParseDate(date)
	if err != nil {
		return api.Failed[DailyNutrition](err.Error())
	}
	userID := s.userID(ctx)

	s.mu.RLock()
	entries := query.Filter(s.logged, func(l LoggedFood) bool {
		return l.UserID == userID && l.LoggedAt.Format(DateLayout) == day
	}, 0, 0)
	s.mu.RUnlock()

	return api.OK(Summarize(day, entries))
}

func (s *MockSource) FoodDetails(ctx context.Context, foodID string) api.Response[FoodItem] {
	if err := s.latency.Wait(ctx, detailsLatency); err != nil {
		return api.Fail[FoodItem](err, "Failed to get food details")
	}
	food, ok := s.find(foodID)
	if !ok {
		return api.Failed[FoodItem](foodNotFoundMsg)
	}
	return api.OK(food)
}

func (s *MockSource) find(id string) (FoodItem, bool) {
	for _, f := range s.foods {
		if f.ID == id {
			return f, true
		}
	}
	return FoodItem{}, false
}

// ParseDate normalises date to YYYY-MM-DD, defaulting to today.
func ParseDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return NowTimeFunc().UTC().Format(DateLayout), nil
	}
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", wellbeerrors.Wrapf(wellbeerrors.ErrInvalidRequest, "date %q must be YYYY-MM-DD", date)
	}
	return t.Format(DateLayout), nil
}

// Summarize groups entries by meal and totals their macros.
func Summarize(day string, entries []LoggedFood) DailyNutrition {
	d := DailyNutrition{
		Date: day,
		Meals: Meals{
			Breakfast: []LoggedFood{},
			Lunch:     []LoggedFood{},
			Dinner:    []LoggedFood{},
			Snack:     []LoggedFood{},
		},
	}
	for _, e := range entries {
		d.Meals.add(e)
	}
	t := Totals(entries)
	d.TotalCalories, d.TotalProtein, d.TotalCarbs, d.TotalFat = t.Calories, t.Protein, t.Carbs, t.Fat
	return d
}
