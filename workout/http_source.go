package workout

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

// HTTPSource calls the wellbe exercise and workout endpoints.
type HTTPSource struct {
	client    *transport.Client
	exercise  config.ExerciseEndpoints
	endpoints config.WorkoutEndpoints
}

func NewHTTPSource(client *transport.Client, exercise config.ExerciseEndpoints, endpoints config.WorkoutEndpoints) (*HTTPSource, error) {
	if client == nil {
		return nil, fmt.Errorf("[workout.NewHTTPSource] client is required")
	}
	return &HTTPSource{client: client, exercise: exercise, endpoints: endpoints}, nil
}

func (s *HTTPSource) SearchExercises(ctx context.Context, req ExerciseSearchRequest) api.Response[[]Exercise] {
	params := url.Values{}
	set := func(key, value string) {
		if value != "" {
			params.Set(key, value)
		}
	}
	set("query", req.Query)
	set("muscle", req.Muscle)
	set("equipment", req.Equipment)
	set("difficulty", string(req.Difficulty))
	set("category", string(req.Category))
	if req.Limit > 0 {
		params.Set("limit", strconv.Itoa(req.Limit))
	}
	return transport.Get[[]Exercise](ctx, s.client, s.exercise.Search, transport.WithParams(params))
}

func (s *HTTPSource) GenerateWorkout(ctx context.Context, req GenerateRequest) api.Response[Workout] {
	return transport.Post[Workout](ctx, s.client, s.endpoints.Generate, req)
}

func (s *HTTPSource) Programs(ctx context.Context) api.Response[[]Program] {
	return transport.Get[[]Program](ctx, s.client, s.endpoints.Programs)
}

func (s *HTTPSource) LogWorkout(ctx context.Context, req LogRequest) api.Response[Workout] {
	return transport.Post[Workout](ctx, s.client, s.endpoints.LogSession, req)
}

func (s *HTTPSource) WorkoutHistory(ctx context.Context) api.Response[History] {
	return transport.Get[History](ctx, s.client, s.endpoints.History)
}

func (s *HTTPSource) ExerciseDetails(ctx context.Context, exerciseID string) api.Response[Exercise] {
	return transport.Get[Exercise](ctx, s.client, s.exercise.Details+"/"+url.PathEscape(exerciseID))
}

func (s *HTTPSource) WorkoutDetails(ctx context.Context, workoutID string) api.Response[Workout] {
	return transport.Get[Workout](ctx, s.client, s.endpoints.Save+"/"+url.PathEscape(workoutID))
}
