package workout

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/wellbe/api"
	"github.com/jrsteele09/wellbe/internal/delay"
	wellbeerrors "github.com/jrsteele09/wellbe/internal/errors"
	"github.com/jrsteele09/wellbe/internal/query"
	"github.com/jrsteele09/wellbe/internal/utils"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// MockUserID owns generated and logged workouts when no user resolver is configured.
const MockUserID = "1"

const (
	searchLatency   = 400 * time.Millisecond
	generateLatency = 1500 * time.Millisecond
	programsLatency = 300 * time.Millisecond
	logLatency      = 500 * time.Millisecond
	historyLatency  = 400 * time.Millisecond
	detailsLatency  = 200 * time.Millisecond
)

const week = 7 * 24 * time.Hour

var _ Source = (*MockSource)(nil)

// MockSource serves the fixture catalogue. Generated workouts can be logged and
// logged sessions make up the history.
type MockSource struct {
	exercises []Exercise
	programs  []Program
	generator *Generator
	latency   delay.Simulator
	userID    func(ctx context.Context) string

	mu       sync.RWMutex
	workouts []Workout
	logged   []Workout
}

type MockOption func(*MockSource)

// WithUserResolver sets how the owner of a generated or logged workout is determined.
func WithUserResolver(fn func(ctx context.Context) string) MockOption {
	return func(s *MockSource) { s.userID = fn }
}

// WithRandom replaces the random source used for generated sets.
func WithRandom(intn func(n int) int) MockOption {
	return func(s *MockSource) { s.generator = NewGenerator(s.exercises, intn) }
}

func NewMockSource(latency delay.Simulator, opts ...MockOption) *MockSource {
	exercises := MockExercises()
	s := &MockSource{
		exercises: exercises,
		programs:  MockPrograms(),
		generator: NewGenerator(exercises, nil),
		latency:   latency,
		userID:    func(context.Context) string { return MockUserID },
		workouts:  MockWorkouts(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ExerciseMatches builds the predicate for a search request.
func ExerciseMatches(req ExerciseSearchRequest) query.Predicate[Exercise] {
	var preds []query.Predicate[Exercise]
	if q := strings.TrimSpace(req.Query); q != "" {
		preds = append(preds, func(e Exercise) bool {
			return query.ContainsFold(e.Name, q) || query.ContainsFold(e.TargetMuscle, q)
		})
	}
	if req.Muscle != "" {
		preds = append(preds, func(e Exercise) bool { return strings.EqualFold(e.TargetMuscle, req.Muscle) })
	}
	if req.Difficulty != "" {
		preds = append(preds, func(e Exercise) bool { return e.Difficulty == req.Difficulty })
	}
	if req.Category != "" {
		preds = append(preds, func(e Exercise) bool { return e.Category == req.Category })
	}
	if req.Equipment != "" {
		preds = append(preds, func(e Exercise) bool {
			for _, eq := range e.Equipment {
				if query.ContainsFold(eq, req.Equipment) {
					return true
				}
			}
			return false
		})
	}
	return query.All(preds...)
}

func (s *MockSource) SearchExercises(ctx context.Context, req ExerciseSearchRequest) api.Response[[]Exercise] {
	if err := s.latency.Wait(ctx, searchLatency); err != nil {
		return api.Fail[[]Exercise](err, "Failed to search exercises")
	}
	limit := req.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	results := query.Filter(s.exercises, ExerciseMatches(req), 0, limit)
	log.Debug().Int("results", len(results)).Msg("Mock exercise search")
	return api.OK(results)
}

func (s *MockSource) GenerateWorkout(ctx context.Context, req GenerateRequest) api.Response[Workout] {
	if err := s.latency.Wait(ctx, generateLatency); err != nil {
		return api.Fail[Workout](err, "Failed to generate workout")
	}
	w := s.generator.Generate(req, s.userID(ctx))

	s.mu.Lock()
	s.workouts = append(s.workouts, w.Clone())
	s.mu.Unlock()

	log.Debug().Str("workout", w.Name).Int("exercises", len(w.Exercises)).Msg("Mock workout generated")
	return api.OK(w)
}

func (s *MockSource) Programs(ctx context.Context) api.Response[[]Program] {
	if err := s.latency.Wait(ctx, programsLatency); err != nil {
		return api.Fail[[]Program](err, "Failed to get workout programs")
	}
	return api.OK(append([]Program(nil), s.programs...))
}

// LogWorkout records a completed session of a known workout. Exercises named in the
// request take the logged sets; the rest keep their planned sets.
func (s *MockSource) LogWorkout(ctx context.Context, req LogRequest) api.Response[Workout] {
	if err := s.latency.Wait(ctx, logLatency); err != nil {
		return api.Fail[Workout](err, "Failed to log workout")
	}
	planned, ok := s.findWorkout(req.WorkoutID)
	if !ok {
		return api.Failed[Workout](wellbeerrors.ErrWorkoutNotFound.Error())
	}

	id := ulid.Make().String()
	done := planned.Clone()
	for i, we := range done.Exercises {
		logged, ok := findLogged(req.Exercises, we.Exercise.ID)
		if !ok {
			continue
		}
		sets := make([]Set, len(logged.Sets))
		for j, set := range logged.Sets {
			set.ID = fmt.Sprintf("logged_%s_%d_%d", id, i, j)
			set.ExerciseID = we.Exercise.ID
			set.IsCompleted = true
			sets[j] = set
		}
		done.Exercises[i].Sets = sets
	}

	completedAt := NowTimeFunc().UTC()
	if req.CompletedAt != nil && !req.CompletedAt.IsZero() {
		completedAt = req.CompletedAt.UTC()
	}
	done.ID = "log_" + id
	done.UserID = s.userID(ctx)
	done.IsCompleted = true
	done.CompletedAt = &completedAt
	if req.Duration != nil {
		done.Duration = utils.Ptr(*req.Duration)
	}
	done.TotalVolume = utils.Ptr(Volume(done))

	s.mu.Lock()
	s.logged = append(s.logged, done.Clone())
	s.mu.Unlock()

	log.Debug().Str("workout", done.Name).Str("id", done.ID).Msg("Mock workout logged")
	return api.OK(done)
}

// WorkoutHistory summarises the current user's completed workouts. The weekly
// average spans from the earliest completion to now, at least one week.
func (s *MockSource) WorkoutHistory(ctx context.Context) api.Response[History] {
	if err := s.latency.Wait(ctx, historyLatency); err != nil {
		return api.Fail[History](err, "Failed to get workout history")
	}
	userID := s.userID(ctx)
	completed := func(w Workout) bool { return w.IsCompleted && w.UserID == userID }

	s.mu.RLock()
	workouts := append(query.Filter(s.workouts, completed, 0, 0), query.Filter(s.logged, completed, 0, 0)...)
	s.mu.RUnlock()

	return api.OK(Summarize(workouts, NowTimeFunc()))
}

func (s *MockSource) ExerciseDetails(ctx context.Context, exerciseID string) api.Response[Exercise] {
	if err := s.latency.Wait(ctx, detailsLatency); err != nil {
		return api.Fail[Exercise](err, "Failed to get exercise details")
	}
	for _, e := range s.exercises {
		if e.ID == exerciseID {
			return api.OK(e)
		}
	}
	return api.Failed[Exercise](wellbeerrors.ErrExerciseNotFound.Error())
}

func (s *MockSource) WorkoutDetails(ctx context.Context, workoutID string) api.Response[Workout] {
	if err := s.latency.Wait(ctx, detailsLatency); err != nil {
		return api.Fail[Workout](err, "Failed to get workout details")
	}
	w, ok := s.findWorkout(workoutID)
	if !ok {
		return api.Failed[Workout](wellbeerrors.ErrWorkoutNotFound.Error())
	}
	return api.OK(w)
}

func (s *MockSource) findWorkout(id string) (Workout, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, w := range s.workouts {
		if w.ID == id {
			return w.Clone(), true
		}
	}
	for _, w := range s.logged {
		if w.ID == id {
			return w.Clone(), true
		}
	}
	return Workout{}, false
}

func findLogged(exercises []LoggedExercise, exerciseID string) (LoggedExercise, bool) {
	for _, e := range exercises {
		if e.ExerciseID == exerciseID {
			return e, true
		}
	}
	return LoggedExercise{}, false
}

// Summarize totals completed workouts as of now.
func Summarize(workouts []Workout, now time.Time) History {
	h := History{Workouts: workouts, TotalWorkouts: len(workouts)}
	if h.Workouts == nil {
		h.Workouts = []Workout{}
	}
	var earliest time.Time
	for _, w := range workouts {
		h.TotalDuration += utils.Value(w.Duration)
		if w.TotalVolume != nil {
			h.TotalVolume += *w.TotalVolume
		} else {
			h.TotalVolume += Volume(w)
		}
		if w.CompletedAt != nil && (earliest.IsZero() || w.CompletedAt.Before(earliest)) {
			earliest = *w.CompletedAt
		}
	}
	if len(workouts) == 0 {
		return h
	}
	weeks := 1.0
	if !earliest.IsZero() {
		if span := now.Sub(earliest); span > week {
			weeks = float64(span) / float64(week)
		}
	}
	h.AverageWorkoutsPerWeek = float64(len(workouts)) / weeks
	return h
}
