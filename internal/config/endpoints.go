package config

// Endpoints is the per-domain path table, relative to the API base URL.
type Endpoints struct {
	Auth      AuthEndpoints      `koanf:"auth"`
	User      UserEndpoints      `koanf:"user"`
	Nutrition NutritionEndpoints `koanf:"nutrition"`
	Exercise  ExerciseEndpoints  `koanf:"exercise"`
	Workout   WorkoutEndpoints   `koanf:"workout"`
	Progress  ProgressEndpoints  `koanf:"progress"`
	Location  LocationEndpoints  `koanf:"location"`
}

type AuthEndpoints struct {
	Login          string `koanf:"login"`
	Register       string `koanf:"register"`
	Refresh        string `koanf:"refresh"`
	Logout         string `koanf:"logout"`
	ForgotPassword string `koanf:"forgot_password"`
	ResetPassword  string `koanf:"reset_password"`
}

type UserEndpoints struct {
	Profile       string `koanf:"profile"`
	UpdateProfile string `koanf:"update_profile"`
	Preferences   string `koanf:"preferences"`
}

type NutritionEndpoints struct {
	FoodSearch       string `koanf:"food_search"`
	FoodDetails      string `koanf:"food_details"`
	AnalyzeImage     string `koanf:"analyze_image"`
	BarcodeScan      string `koanf:"barcode_scan"`
	LogFood          string `koanf:"log_food"`
	DailyLog         string `koanf:"daily_log"`
	NutritionHistory string `koanf:"nutrition_history"`
}

type ExerciseEndpoints struct {
	Search     string `koanf:"search"`
	Details    string `koanf:"details"`
	Categories string `koanf:"categories"`
	ByMuscle   string `koanf:"by_muscle"`
}

type WorkoutEndpoints struct {
	Generate   string `koanf:"generate"`
	Save       string `koanf:"save"`
	History    string `koanf:"history"`
	Programs   string `koanf:"programs"`
	LogSession string `koanf:"log_session"`
}

type ProgressEndpoints struct {
	Weight       string `koanf:"weight"`
	Measurements string `koanf:"measurements"`
	Stats        string `koanf:"stats"`
}

type LocationEndpoints struct {
	Gyms string `koanf:"gyms"`
}

func DefaultEndpoints() Endpoints {
	return Endpoints{
		Auth: AuthEndpoints{
			Login:          "/auth/login",
			Register:       "/auth/register",
			Refresh:        "/auth/refresh",
			Logout:         "/auth/logout",
			ForgotPassword: "/auth/forgot-password",
			ResetPassword:  "/auth/reset-password",
		},
		User: UserEndpoints{
			Profile:       "/user/profile",
			UpdateProfile: "/user/profile",
			Preferences:   "/user/preferences",
		},
		Nutrition: NutritionEndpoints{
			FoodSearch:       "/nutrition/food/search",
			FoodDetails:      "/nutrition/food",
			AnalyzeImage:     "/nutrition/analyze-image",
			BarcodeScan:      "/nutrition/barcode",
			LogFood:          "/nutrition/log",
			DailyLog:         "/nutrition/daily",
			NutritionHistory: "/nutrition/history",
		},
		Exercise: ExerciseEndpoints{
			Search:     "/exercise/search",
			Details:    "/exercise",
			Categories: "/exercise/categories",
			ByMuscle:   "/exercise/muscle",
		},
		Workout: WorkoutEndpoints{
			Generate:   "/workout/generate",
			Save:       "/workout/save",
			History:    "/workout/history",
			Programs:   "/workout/programs",
			LogSession: "/workout/log",
		},
		Progress: ProgressEndpoints{
			Weight:       "/progress/weight",
			Measurements: "/progress/measurements",
			Stats:        "/progress/stats",
		},
		Location: LocationEndpoints{
			Gyms: "/location/gyms",
		},
	}
}
