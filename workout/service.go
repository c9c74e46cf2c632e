package workout

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/wellbe/api"
	wellbeerrors "github.com/jrsteele09/wellbe/internal/errors"
)

// Service is the workout entry point used by consumers. The Source is fixed at
// construction.
type Service struct {
	source Source
}

func NewService(source Source) (*Service, error) {
	if source == nil {
		return nil, fmt.Errorf("[workout.NewService] source is required")
	}
	return &Service{source: source}, nil
}

func (s *Service) SearchExercises(ctx context.Context, req ExerciseSearchRequest) api.Response[[]Exercise] {
	if req.Limit < 0 {
		return api.Failed[[]Exercise](wellbeerrors.ErrInvalidRequest.Error())
	}
	if req.Difficulty != "" && !req.Difficulty.Valid() {
		return api.Failed[[]Exercise](fmt.Sprintf("Invalid difficulty %q", req.Difficulty))
	}
	return logFailure("Exercise search error", s.source.SearchExercises(ctx, req))
}

func (s *Service) GenerateWorkout(ctx context.Context, req GenerateRequest) api.Response[Workout] {
	switch {
	case !req.Goal.Valid():
		return api.Failed[Workout](fmt.Sprintf("Invalid goal %q", req.Goal))
	case !req.Difficulty.Valid():
		return api.Failed[Workout](fmt.Sprintf("Invalid difficulty %q", req.Difficulty))
	case req.Duration <= 0:
		return api.Failed[Workout]("Duration must be greater than zero")
	}
	return logFailure("Workout generation error", s.source.GenerateWorkout(ctx, req))
}

func (s *Service) Programs(ctx context.Context) api.Response[[]Program] {
	return logFailure("Get programs error", s.source.Programs(ctx))
}

func (s *Service) LogWorkout(ctx context.Context, req LogRequest) api.Response[Workout] {
	if strings.TrimSpace(req.WorkoutID) == "" {
		return api.Failed[Workout]("Workout ID is required")
	}
	return logFailure("Log workout error", s.source.LogWorkout(ctx, req))
}

func (s *Service) WorkoutHistory(ctx context.Context) api.Response[History] {
	return logFailure("Get workout history error", s.source.WorkoutHistory(ctx))
}

func (s *Service) ExerciseDetails(ctx context.Context, exerciseID string) api.Response[Exercise] {
	return logFailure("Get exercise details error", s.source.ExerciseDetails(ctx, exerciseID))
}

func (s *Service) WorkoutDetails(ctx context.Context, workoutID string) api.Response[Workout] {
	return logFailure("Get workout details error", s.source.WorkoutDetails(ctx, workoutID))
}

func (s *Service) Volume(w Workout) float64 { return Volume(w) }

func (s *Service) Intensity(w Workout) Intensity { return IntensityOf(w) }

func (s *Service) MuscleGroupDistribution(w Workout) map[string]int {
	return MuscleGroupDistribution(w)
}

func logFailure[T any](msg string, resp api.Response[T]) api.Response[T] {
	if !resp.Success {
		log.Warn().Str("error", resp.Error).Msg(msg)
	}
	return resp
}
