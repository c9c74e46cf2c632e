package workout

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/jrsteele09/wellbe/internal/query"
	"github.com/jrsteele09/wellbe/internal/utils"
)

const (
	setsPerExercise = 3
	longSessionMins = 30
	shortSelection  = 4
	longSelection   = 6
)

// Generator builds workouts from an exercise catalogue. Intn returns a value in
// [0, n) and defaults to math/rand.
type Generator struct {
	exercises []Exercise
	intn      func(n int) int
}

func NewGenerator(exercises []Exercise, intn func(n int) int) *Generator {
	if intn == nil {
		intn = rand.IntN
	}
	return &Generator{exercises: exercises, intn: intn}
}

// EquipmentCompatible matches exercises usable with the given equipment. An empty
// list accepts everything; bodyweight exercises are always accepted otherwise.
func EquipmentCompatible(equipment []string) query.Predicate[Exercise] {
	if len(equipment) == 0 {
		return nil
	}
	return func(e Exercise) bool {
		for _, eq := range e.Equipment {
			if eq == Bodyweight {
				return true
			}
			for _, have := range equipment {
				if eq == have {
					return true
				}
			}
		}
		return false
	}
}

// AtMost matches exercises at difficulty d or at beginner level.
func AtMost(d Difficulty) query.Predicate[Exercise] {
	return func(e Exercise) bool { return e.Difficulty == d || e.Difficulty == Beginner }
}

func (g *Generator) Generate(req GenerateRequest, userID string) Workout {
	count := shortSelection
	if req.Duration > longSessionMins {
		count = longSelection
	}
	selected := query.Filter(g.exercises, query.All(EquipmentCompatible(req.Equipment), AtMost(req.Difficulty)), 0, count)

	id := ulid.Make().String()
	now := NowTimeFunc().UTC()
	w := Workout{
		ID:            "generated_" + id,
		Name:          fmt.Sprintf("AI Generated %s Workout", strings.ReplaceAll(string(req.Goal), "_", " ")),
		Description:   fmt.Sprintf("Personalized %d-minute workout for %s", req.Duration, req.Goal),
		Exercises:     make([]WorkoutExercise, 0, len(selected)),
		Duration:      utils.Ptr(req.Duration),
		ScheduledDate: &now,
		UserID:        userID,
	}
	for i, ex := range selected {
		we := WorkoutExercise{Exercise: ex, Sets: make([]Set, setsPerExercise)}
		for j := range we.Sets {
			we.Sets[j] = g.set(fmt.Sprintf("set_%s_%d_%d", id, i, j), ex)
		}
		w.Exercises = append(w.Exercises, we)
	}
	return w
}

func (g *Generator) set(id string, ex Exercise) Set {
	s := Set{
		ID:         id,
		ExerciseID: ex.ID,
		RestTime:   utils.Ptr(60 + g.intn(30)),
	}
	switch ex.Category {
	case Strength:
		s.Reps = utils.Ptr(8 + g.intn(5))
	case Cardio:
		s.Duration = utils.Ptr(30 + g.intn(30))
	}
	if ex.Uses(Barbell) {
		s.Weight = utils.Ptr(float64(40 + g.intn(20)))
	}
	return s
}
