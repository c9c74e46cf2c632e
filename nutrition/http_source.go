package nutrition

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/jrsteele09/wellbe/api"
	"github.com/jrsteele09/wellbe/internal/config"
	"github.com/jrsteele09/wellbe/transport"
)

var _ Source = (*HTTPSource)(nil)

// HTTPSource calls the wellbe nutrition endpoints.
type HTTPSource struct {
	client    *transport.Client
	endpoints config.NutritionEndpoints
}

func NewHTTPSource(client *transport.Client, endpoints config.NutritionEndpoints) (*HTTPSource, error) {
	if client == nil {
		return nil, fmt.Errorf("[nutrition.NewHTTPSource] client is required")
	}
	return &HTTPSource{client: client, endpoints: endpoints}, nil
}

func (s *HTTPSource) SearchFood(ctx context.Context, req FoodSearchRequest) api.Response[[]FoodItem] {
	params := url.Values{"query": {req.Query}}
	if req.Limit > 0 {
		params.Set("limit", strconv.Itoa(req.Limit))
	}
	if req.Offset > 0 {
		params.Set("offset", strconv.Itoa(req.Offset))
	}
	return transport.Get[[]FoodItem](ctx, s.client, s.endpoints.FoodSearch, transport.WithParams(params))
}

func (s *HTTPSource) AnalyzeImage(ctx context.Context, req AnalyzeImageRequest) api.Response[FoodAnalysisResult] {
	return transport.Upload[FoodAnalysisResult](ctx, s.client, s.endpoints.AnalyzeImage, req.Image, req.Progress)
}

func (s *HTTPSource) ScanBarcode(ctx context.Context, barcode string) api.Response[FoodItem] {
	return transport.Get[FoodItem](ctx, s.client, s.endpoints.BarcodeScan+"/"+url.PathEscape(barcode))
}

func (s *HTTPSource) LogFood(ctx context.Context, req LogFoodRequest) api.Response[LoggedFood] {
	return transport.Post[LoggedFood](ctx, s.client, s.endpoints.LogFood, req)
}

func (s *HTTPSource) DailyNutrition(ctx context.Context, date string) api.Response[DailyNutrition] {
	day, err := ParseDate(date)
	if err != nil {
		return api.Failed[DailyNutrition](err.Error())
	}
	return transport.Get[DailyNutrition](ctx, s.client, s.endpoints.DailyLog, transport.WithParams(url.Values{"date": {day}}))
}

func (s *HTTPSource) FoodDetails(ctx context.Context, foodID string) api.Response[FoodItem] {
	return transport.Get[FoodItem](ctx, s.client, s.endpoints.FoodDetails+"/"+url.PathEscape(foodID))
}
