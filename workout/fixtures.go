package workout

import "github.com/jrsteele09/wellbe/internal/utils"

// MockExercises returns the development exercise catalogue.
func MockExercises() []Exercise {
	return []Exercise{
		{
			ID: "1", Name: "Push-ups", TargetMuscle: "Chest", Equipment: []string{Bodyweight},
			Instructions: []string{
				"Start in a plank position with hands slightly wider than shoulders",
				"Lower your body until chest nearly touches the floor",
				"Push back up to starting position",
				"Keep your body in a straight line throughout",
			},
			GifURL: "https://example.com/pushups.gif", Difficulty: Beginner, Category: Strength,
		},
		{
			ID: "2", Name: "Squats", TargetMuscle: "Legs", Equipment: []string{Bodyweight},
			Instructions: []string{
				"Stand with feet shoulder-width apart",
				"Lower down as if sitting back into a chair",
				"Keep knees behind toes and chest up",
				"Return to starting position",
			},
			GifURL: "https://example.com/squats.gif", Difficulty: Beginner, Category: Strength,
		},
		{
			ID: "3", Name: "Bench Press", TargetMuscle: "Chest", Equipment: []string{Barbell, "Bench"},
			Instructions: []string{
				"Lie on bench with feet flat on floor",
				"Grip bar slightly wider than shoulder width",
				"Lower bar to chest with control",
				"Press bar back up to starting position",
			},
			GifURL: "https://example.com/benchpress.gif", Difficulty: Intermediate, Category: Strength,
		},
		{
			ID: "4", Name: "Deadlift", TargetMuscle: "Back", Equipment: []string{Barbell},
			Instructions: []string{
				"Stand with feet hip-width apart, bar over midfoot",
				"Bend at hips and knees to grip bar",
				"Keep chest up and back straight",
				"Drive through heels to stand up straight",
			},
			GifURL: "https://example.com/deadlift.gif", Difficulty: Advanced, Category: Strength,
		},
		{
			ID: "5", Name: "Running", TargetMuscle: "Cardio", Equipment: []string{"None"},
			Instructions: []string{
				"Start with a gentle warm-up walk",
				"Gradually increase pace to comfortable running speed",
				"Maintain steady breathing rhythm",
				"Cool down with walking",
			},
			Difficulty: Beginner, Category: Cardio,
		},
		{
			ID: "6", Name: "Plank", TargetMuscle: "Core", Equipment: []string{Bodyweight},
			Instructions: []string{
				"Rest on forearms and toes with elbows under shoulders",
				"Keep your body in a straight line from head to heels",
				"Brace your core and hold the position",
			},
			Difficulty: Beginner, Category: Strength,
		},
		{
			ID: "7", Name: "Lunges", TargetMuscle: "Legs", Equipment: []string{Bodyweight},
			Instructions: []string{
				"Stand tall with feet hip-width apart",
				"Step forward and lower until both knees are bent at 90 degrees",
				"Push through the front heel to return",
				"Alternate legs",
			},
			Difficulty: Beginner, Category: Strength,
		},
		{
			ID: "8", Name: "Jumping Jacks", TargetMuscle: "Cardio", Equipment: []string{Bodyweight},
			Instructions: []string{
				"Stand with feet together and arms at your sides",
				"Jump feet apart while raising arms overhead",
				"Jump back to the starting position",
			},
			Difficulty: Beginner, Category: Cardio,
		},
	}
}

// MockWorkouts returns the development workouts, scheduled for now.
func MockWorkouts() []Workout {
	exercises := MockExercises()
	scheduled := NowTimeFunc().UTC()
	set := func(id, exerciseID string, weight float64, reps, rest int, done bool) Set {
		s := Set{ID: id, ExerciseID: exerciseID, Reps: utils.Ptr(reps), RestTime: utils.Ptr(rest), IsCompleted: done}
		if weight > 0 {
			s.Weight = utils.Ptr(weight)
		}
		return s
	}
	return []Workout{
		{
			ID:          "1",
			Name:        "Upper Body Push",
			Description: "Focus on pushing muscles: chest, shoulders, triceps",
			Exercises: []WorkoutExercise{
				{Exercise: exercises[0], Sets: []Set{
					set("1", "1", 0, 12, 60, true),
					set("2", "1", 0, 10, 60, true),
					set("3", "1", 0, 8, 60, false),
				}},
				{Exercise: exercises[2], Sets: []Set{
					set("4", "3", 60, 8, 90, true),
					set("5", "3", 60, 6, 90, false),
					set("6", "3", 55, 8, 90, false),
				}},
			},
			Duration:      utils.Ptr(45),
			TotalVolume:   utils.Ptr(1280.0),
			ScheduledDate: &scheduled,
			UserID:        "1",
		},
	}
}

// MockPrograms returns the development programme catalogue.
func MockPrograms() []Program {
	return []Program{
		{
			ID:          "1",
			Name:        "Beginner Strength Foundation",
			Description: "Perfect for those new to strength training. Builds fundamental movement patterns and strength.",
			Duration:    8,
			Difficulty:  Beginner,
			Workouts:    MockWorkouts(),
			ImageURL:    "https://example.com/program1.jpg",
			CreatedBy:   "WellBe Team",
			IsPopular:   true,
		},
		{
			ID:          "2",
			Name:        "Muscle Building Intensive",
			Description: "Intermediate program focused on muscle hypertrophy and strength gains.",
			Duration:    12,
			Difficulty:  Intermediate,
			Workouts:    []Workout{},
			ImageURL:    "https://example.com/program2.jpg",
			CreatedBy:   "WellBe Team",
			IsPopular:   true,
		},
		{
			ID:          "3",
			Name:        "Athletic Performance",
			Description: "Advanced training for athletes looking to improve power, speed, and agility.",
			Duration:    16,
			Difficulty:  Advanced,
			Workouts:    []Workout{},
			ImageURL:    "https://example.com/program3.jpg",
			CreatedBy:   "Elite Coach",
			IsPopular:   false,
		},
	}
}
