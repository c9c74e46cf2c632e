package nutrition

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/wellbe/api"
	wellbeerrors "github.com/jrsteele09/wellbe/internal/errors"
)

// Service is the nutrition entry point used by consumers. The Source is fixed at
// construction.
type Service struct {
	source Source
}

func NewService(source Source) (*Service, error) {
	if source == nil {
		return nil, fmt.Errorf("[nutrition.NewService] source is required")
	}
	return &Service{source: source}, nil
}

func (s *Service) SearchFood(ctx context.Context, req FoodSearchRequest) api.Response[[]FoodItem] {
	if req.Offset < 0 || req.Limit < 0 {
		return api.Failed[[]FoodItem](wellbeerrors.ErrInvalidRequest.Error())
	}
	return logFailure("Food search error", s.source.SearchFood(ctx, req))
}

func (s *Service) AnalyzeImage(ctx context.Context, req AnalyzeImageRequest) api.Response[FoodAnalysisResult] {
	return logFailure("Image analysis error", s.source.AnalyzeImage(ctx, req))
}

func (s *Service) ScanBarcode(ctx context.Context, barcode string) api.Response[FoodItem] {
	if strings.TrimSpace(barcode) == "" {
		return api.Failed[FoodItem]("Barcode is required")
	}
	return logFailure("Barcode scan error", s.source.ScanBarcode(ctx, barcode))
}

func (s *Service) LogFood(ctx context.Context, req LogFoodRequest) api.Response[LoggedFood] {
	if !req.MealType.Valid() {
		return api.Failed[LoggedFood](fmt.Sprintf("Invalid meal type %q", req.MealType))
	}
	if req.Quantity <= 0 {
		return api.Failed[LoggedFood]("Quantity must be greater than zero")
	}
	return logFailure("Food logging error", s.source.LogFood(ctx, req))
}

// DailyNutrition returns the summary for date (YYYY-MM-DD), or today when empty.
func (s *Service) DailyNutrition(ctx context.Context, date string) api.Response[DailyNutrition] {
	return logFailure("Get daily nutrition error", s.source.DailyNutrition(ctx, date))
}

func (s *Service) FoodDetails(ctx context.Context, foodID string) api.Response[FoodItem] {
	return logFailure("Get food details error", s.source.FoodDetails(ctx, foodID))
}

func logFailure[T any](msg string, resp api.Response[T]) api.Response[T] {
	if !resp.Success {
		log.Warn().Str("error", resp.Error).Msg(msg)
	}
	return resp
}
