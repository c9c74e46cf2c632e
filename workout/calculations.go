package workout

type Intensity string

const (
	IntensityLow      Intensity = "low"
	IntensityModerate Intensity = "moderate"
	IntensityHigh     Intensity = "high"
)

// DefaultRestTime stands in for sets without a recorded rest, in seconds.
const DefaultRestTime = 60

// Volume is the sum of weight*reps over every set that has both.
func Volume(w Workout) float64 {
	var total float64
	for _, ex := range w.Exercises {
		for _, s := range ex.Sets {
			if s.Weight != nil && s.Reps != nil {
				total += *s.Weight * float64(*s.Reps)
			}
		}
	}
	return total
}

// IntensityOf classifies w by total set count and the mean of per-exercise average
// rest. A set with no rest or zero rest counts as DefaultRestTime. Exercises
// without sets are ignored; a workout with none is low.
func IntensityOf(w Workout) Intensity {
	var (
		totalSets int
		restSum   float64
		counted   int
	)
	for _, ex := range w.Exercises {
		if len(ex.Sets) == 0 {
			continue
		}
		var rest int
		for _, s := range ex.Sets {
			if s.RestTime != nil && *s.RestTime > 0 {
				rest += *s.RestTime
			} else {
				rest += DefaultRestTime
			}
		}
		totalSets += len(ex.Sets)
		restSum += float64(rest) / float64(len(ex.Sets))
		counted++
	}
	if counted == 0 {
		return IntensityLow
	}
	avgRest := restSum / float64(counted)

	switch {
	case totalSets >= 20 || avgRest < 45:
		return IntensityHigh
	case totalSets >= 12 || avgRest < 75:
		return IntensityModerate
	default:
		return IntensityLow
	}
}

// MuscleGroupDistribution counts sets per target muscle.
func MuscleGroupDistribution(w Workout) map[string]int {
	dist := make(map[string]int)
	for _, ex := range w.Exercises {
		dist[ex.Exercise.TargetMuscle] += len(ex.Sets)
	}
	return dist
}
