// Package workout provides exercise search, workout generation and session logging on
// top of a mock or networked Source.
package workout

import "time"

type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

func (d Difficulty) Valid() bool {
	switch d {
	case Beginner, Intermediate, Advanced:
		return true
	}
	return false
}

type Category string

const (
	Strength    Category = "strength"
	Cardio      Category = "cardio"
	Flexibility Category = "flexibility"
	Balance     Category = "balance"
)

type Goal string

const (
	GoalStrength       Goal = "strength"
	GoalMuscleBuilding Goal = "muscle_building"
	GoalEndurance      Goal = "endurance"
	GoalWeightLoss     Goal = "weight_loss"
)

func (g Goal) Valid() bool {
	switch g {
	case GoalStrength, GoalMuscleBuilding, GoalEndurance, GoalWeightLoss:
		return true
	}
	return false
}

// Equipment names with special meaning during generation.
const (
	Bodyweight = "Bodyweight"
	Barbell    = "Barbell"
)

type Exercise struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	TargetMuscle string     `json:"targetMuscle"`
	Equipment    []string   `json:"equipment"`
	Instructions []string   `json:"instructions"`
	GifURL       string     `json:"gifUrl,omitempty"`
	VideoURL     string     `json:"videoUrl,omitempty"`
	Difficulty   Difficulty `json:"difficulty"`
	Category     Category   `json:"category"`
}

func (e Exercise) Uses(equipment string) bool {
	for _, eq := range e.Equipment {
		if eq == equipment {
			return true
		}
	}
	return false
}

// Set is one prescribed or performed set. Absent measurements are nil.
type Set struct {
	ID          string   `json:"id"`
	ExerciseID  string   `json:"exerciseId"`
	Weight      *float64 `json:"weight,omitempty"` // kg
	Reps        *int     `json:"reps,omitempty"`
	Duration    *int     `json:"duration,omitempty"` // seconds
	Distance    *float64 `json:"distance,omitempty"` // metres
	RestTime    *int     `json:"restTime,omitempty"` // seconds
	IsCompleted bool     `json:"isCompleted"`
}

type WorkoutExercise struct {
	Exercise Exercise `json:"exercise"`
	Sets     []Set    `json:"sets"`
	Notes    string   `json:"notes,omitempty"`
}

type Workout struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description,omitempty"`
	Exercises     []WorkoutExercise `json:"exercises"`
	Duration      *int              `json:"duration,omitempty"` // minutes
	TotalVolume   *float64          `json:"totalVolume,omitempty"`
	IsCompleted   bool              `json:"isCompleted"`
	ScheduledDate *time.Time        `json:"scheduledDate,omitempty"`
	CompletedAt   *time.Time        `json:"completedAt,omitempty"`
	UserID        string            `json:"userId"`
}

// Clone copies w deeply enough that edits to the copy's exercises and sets do not
// leak back.
func (w Workout) Clone() Workout {
	out := w
	out.Exercises = make([]WorkoutExercise, len(w.Exercises))
	for i, ex := range w.Exercises {
		ex.Sets = append([]Set(nil), ex.Sets...)
		out.Exercises[i] = ex
	}
	return out
}

type Program struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Duration    int        `json:"duration"` // weeks
	Difficulty  Difficulty `json:"difficulty"`
	Workouts    []Workout  `json:"workouts"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	CreatedBy   string     `json:"createdBy"`
	IsPopular   bool       `json:"isPopular"`
}

type History struct {
	Workouts               []Workout `json:"workouts"`
	TotalWorkouts          int       `json:"totalWorkouts"`
	TotalDuration          int       `json:"totalDuration"`
	TotalVolume            float64   `json:"totalVolume"`
	AverageWorkoutsPerWeek float64   `json:"averageWorkoutsPerWeek"`
}
