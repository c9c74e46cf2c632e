package command

import (
	"encoding/json"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/jrsteele09/wellbe/workout"
)

func ExerciseCommand() *cli.Command {
	return &cli.Command{
		Name:  "exercise",
		Usage: "Browse the exercise catalogue",
		Subcommands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Search exercises",
				ArgsUsage: "[QUERY]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "muscle", Usage: "Target muscle, e.g. Chest"},
					&cli.StringFlag{Name: "equipment", Usage: "Equipment name or part of it"},
					&cli.StringFlag{Name: "difficulty", Usage: "beginner, intermediate or advanced"},
					&cli.StringFlag{Name: "category", Usage: "strength, cardio, flexibility or balance"},
					&cli.IntFlag{Name: "limit", Aliases: []string{"l"}},
				},
				Action: exerciseSearch,
			},
			{
				Name:      "details",
				Usage:     "Show an exercise",
				ArgsUsage: "EXERCISE_ID",
				Action:    exerciseDetails,
			},
		},
	}
}

func WorkoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "workout",
		Usage: "Generate, log and review workouts",
		Subcommands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "Generate a workout",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "goal", Usage: "strength, muscle_building, endurance or weight_loss", Value: string(workout.GoalStrength)},
					&cli.IntFlag{Name: "duration", Aliases: []string{"d"}, Usage: "Minutes", Value: 45},
					&cli.StringSliceFlag{Name: "equipment", Usage: "Available equipment (repeatable)"},
					&cli.StringSliceFlag{Name: "muscle", Usage: "Muscle groups to focus on (repeatable)"},
					&cli.StringFlag{Name: "difficulty", Value: string(workout.Beginner)},
				},
				Action: workoutGenerate,
			},
			{
				Name:   "programs",
				Usage:  "List workout programs",
				Action: workoutPrograms,
			},
			{
				Name:      "log",
				Usage:     "Log a completed workout",
				ArgsUsage: "WORKOUT_ID",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "duration", Aliases: []string{"d"}, Usage: "Minutes, overrides the planned duration"},
					&cli.StringFlag{Name: "notes"},
					&cli.StringFlag{Name: "exercises", Usage: `Performed sets as JSON, e.g. [{"exerciseId":"1","sets":[{"reps":10}]}]`},
				},
				Action: workoutLog,
			},
			{
				Name:   "history",
				Usage:  "Show completed workouts and totals",
				Action: workoutHistory,
			},
			{
				Name:      "details",
				Usage:     "Show a workout",
				ArgsUsage: "WORKOUT_ID",
				Action:    workoutDetails,
			},
		},
	}
}

func exerciseSearch(c *cli.Context) error {
	return emit(c, fromContext(c).Workout.SearchExercises(c.Context, workout.ExerciseSearchRequest{
		Query:      strings.Join(c.Args().Slice(), " "),
		Muscle:     c.String("muscle"),
		Equipment:  c.String("equipment"),
		Difficulty: workout.Difficulty(strings.ToLower(c.String("difficulty"))),
		Category:   workout.Category(strings.ToLower(c.String("category"))),
		Limit:      c.Int("limit"),
	}))
}

func exerciseDetails(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: wellbe exercise details EXERCISE_ID", 2)
	}
	return emit(c, fromContext(c).Workout.ExerciseDetails(c.Context, c.Args().First()))
}

func workoutGenerate(c *cli.Context) error {
	equipment := c.StringSlice("equipment")
	if equipment == nil {
		equipment = []string{}
	}
	return emit(c, fromContext(c).Workout.GenerateWorkout(c.Context, workout.GenerateRequest{
		Goal:         workout.Goal(strings.ToLower(c.String("goal"))),
		Duration:     c.Int("duration"),
		Equipment:    equipment,
		MuscleGroups: c.StringSlice("muscle"),
		Difficulty:   workout.Difficulty(strings.ToLower(c.String("difficulty"))),
	}))
}

func workoutPrograms(c *cli.Context) error {
	return emit(c, fromContext(c).Workout.Programs(c.Context))
}

func workoutLog(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: wellbe workout log WORKOUT_ID", 2)
	}
	req := workout.LogRequest{WorkoutID: c.Args().First(), Notes: c.String("notes")}
	if c.IsSet("duration") {
		d := c.Int("duration")
		req.Duration = &d
	}
	if raw := c.String("exercises"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Exercises); err != nil {
			return cli.Exit("invalid --exercises: "+err.Error(), 2)
		}
	}
	return emit(c, fromContext(c).Workout.LogWorkout(c.Context, req))
}

func workoutHistory(c *cli.Context) error {
	return emit(c, fromContext(c).Workout.WorkoutHistory(c.Context))
}

func workoutDetails(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: wellbe workout details WORKOUT_ID", 2)
	}
	return emit(c, fromContext(c).Workout.WorkoutDetails(c.Context, c.Args().First()))
}
