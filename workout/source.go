package workout

import (
	"context"
	"time"

	"github.com/jrsteele09/wellbe/api"
)

// DefaultSearchLimit caps search results when the request sets no limit.
const DefaultSearchLimit = 20

type ExerciseSearchRequest struct {
	Query      string     `json:"query,omitempty"`
	Muscle     string     `json:"muscle,omitempty"`
	Equipment  string     `json:"equipment,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Category   Category   `json:"category,omitempty"`
	Limit      int        `json:"limit,omitempty"`
}

type GenerateRequest struct {
	Goal             Goal       `json:"goal"`
	Duration         int        `json:"duration"` // minutes
	Equipment        []string   `json:"equipment"`
	MuscleGroups     []string   `json:"muscleGroups,omitempty"`
	Difficulty       Difficulty `json:"difficulty"`
	PreviousWorkouts []string   `json:"previousWorkouts,omitempty"`
}

// LoggedExercise carries the sets performed for one exercise. Set IDs are assigned
// when the session is recorded.
type LoggedExercise struct {
	ExerciseID string `json:"exerciseId"`
	Sets       []Set  `json:"sets"`
}

type LogRequest struct {
	WorkoutID   string           `json:"workoutId"`
	Exercises   []LoggedExercise `json:"exercises"`
	Duration    *int             `json:"duration,omitempty"`
	Notes       string           `json:"notes,omitempty"`
	CompletedAt *time.Time       `json:"completedAt,omitempty"`
}

// Source serves workout data either from the in-memory catalogue or the API.
type Source interface {
	SearchExercises(ctx context.Context, req ExerciseSearchRequest) api.Response[[]Exercise]
	GenerateWorkout(ctx context.Context, req GenerateRequest) api.Response[Workout]
	Programs(ctx context.Context) api.Response[[]Program]
	LogWorkout(ctx context.Context, req LogRequest) api.Response[Workout]
	WorkoutHistory(ctx context.Context) api.Response[History]
	ExerciseDetails(ctx context.Context, exerciseID string) api.Response[Exercise]
	WorkoutDetails(ctx context.Context, workoutID string) api.Response[Workout]
}
