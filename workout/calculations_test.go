package workout_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/wellbe/internal/utils"
	"github.com/jrsteele09/wellbe/workout"
)

func sets(n, rest int) []workout.Set {
	out := make([]workout.Set, n)
	for i := range out {
		out[i] = workout.Set{RestTime: utils.Ptr(rest)}
	}
	return out
}

func TestVolume(t *testing.T) {
	w := workout.MockWorkouts()[0]
	require.InDelta(t, 60*8+60*6+55*8, workout.Volume(w), 1e-9)

	w.Exercises[1].Sets[0].Reps = nil
	require.InDelta(t, 60*6+55*8, workout.Volume(w), 1e-9)

	require.Zero(t, workout.Volume(workout.Workout{}))
}

func TestIntensity(t *testing.T) {
	tests := []struct {
		name      string
		exercises []workout.WorkoutExercise
		want      workout.Intensity
	}{
		{"empty", nil, workout.IntensityLow},
		{"exercises without sets", []workout.WorkoutExercise{{}, {}}, workout.IntensityLow},
		{"few sets long rest", []workout.WorkoutExercise{{Sets: sets(3, 90)}, {Sets: sets(3, 120)}}, workout.IntensityLow},
		{"twenty sets", []workout.WorkoutExercise{{Sets: sets(10, 120)}, {Sets: sets(10, 120)}}, workout.IntensityHigh},
		{"short rest", []workout.WorkoutExercise{{Sets: sets(2, 30)}}, workout.IntensityHigh},
		{"twelve sets", []workout.WorkoutExercise{{Sets: sets(6, 120)}, {Sets: sets(6, 120)}}, workout.IntensityModerate},
		{"medium rest", []workout.WorkoutExercise{{Sets: sets(3, 70)}}, workout.IntensityModerate},
		{"missing rest counts as sixty", []workout.WorkoutExercise{{Sets: make([]workout.Set, 3)}}, workout.IntensityModerate},
		{"zero rest counts as sixty", []workout.WorkoutExercise{{Sets: sets(3, 0)}}, workout.IntensityModerate},
		{"zero rest mixed with long rest", []workout.WorkoutExercise{{Sets: append(sets(1, 0), sets(2, 90)...)}}, workout.IntensityLow},
		{"empty exercise ignored", []workout.WorkoutExercise{{}, {Sets: sets(3, 100)}}, workout.IntensityLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, workout.IntensityOf(workout.Workout{Exercises: tt.exercises}))
		})
	}

	require.Equal(t, workout.IntensityLow, workout.IntensityOf(workout.MockWorkouts()[0]))
}

func TestMuscleGroupDistribution(t *testing.T) {
	dist := workout.MuscleGroupDistribution(workout.MockWorkouts()[0])
	require.Equal(t, map[string]int{"Chest": 6}, dist)

	require.Empty(t, workout.MuscleGroupDistribution(workout.Workout{}))
}
