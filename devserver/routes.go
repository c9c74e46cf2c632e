package devserver

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jrsteele09/wellbe/internal/config"
)

func (s *Server) initRoutes(e config.Endpoints) {
	s.handle(s.router, http.MethodGet, RouteHealth, s.HealthHandler())
	s.router.Handle(RouteMetrics, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	s.routes = append(s.routes, http.MethodGet+" "+RouteMetrics)

	// Auth
	s.handle(s.api, http.MethodPost, e.Auth.Login, s.LoginHandler())
	s.handle(s.api, http.MethodPost, e.Auth.Register, s.RegisterHandler())
	s.handle(s.api, http.MethodPost, e.Auth.Refresh, s.RefreshHandler())
	s.handle(s.api, http.MethodPost, e.Auth.Logout, s.LogoutHandler())
	s.handle(s.api, http.MethodPost, e.Auth.ForgotPassword, s.ForgotPasswordHandler())
	s.handle(s.api, http.MethodPost, e.Auth.ResetPassword, s.ResetPasswordHandler())

	// Nutrition. Fixed paths are registered before their {id} siblings.
	s.handle(s.api, http.MethodGet, e.Nutrition.FoodSearch, s.SearchFoodHandler(), s.RequireAuth)
	s.handle(s.api, http.MethodGet, e.Nutrition.FoodDetails+"/{"+varID+"}", s.FoodDetailsHandler(), s.RequireAuth)
	s.handle(s.api, http.MethodPost, e.Nutrition.AnalyzeImage, s.AnalyzeImageHandler(), s.RequireAuth)
	s.handle(s.api, http.MethodGet, e.Nutrition.BarcodeScan+"/{"+varBarcode+"}", s.ScanBarcodeHandler(), s.RequireAuth)
	s.handle(s.api, http.MethodPost, e.Nutrition.LogFood, s.LogFoodHandler(), s.RequireAuth)
	s.handle(s.api, http.MethodGet, e.Nutrition.DailyLog, s.DailyNutritionHandler(), s.RequireAuth)

	// Exercise and workout
	s.handle(s.api, http.MethodGet, e.Exercise.Search, s.SearchExercisesHandler(), s.RequireAuth)
	s.handle(s.api, http.MethodGet, e.Exercise.Details+"/{"+varID+"}", s.ExerciseDetailsHandler(), s.RequireAuth)
	s.handle(s.api, http.MethodPost, e.Workout.Generate, s.GenerateWorkoutHandler(), s.RequireAuth)
	s.handle(s.api, http.MethodGet, e.Workout.Programs, s.ProgramsHandler(), s.RequireAuth)
	s.handle(s.api, http.MethodPost, e.Workout.LogSession, s.LogWorkoutHandler(), s.RequireAuth)
	s.handle(s.api, http.MethodGet, e.Workout.History, s.WorkoutHistoryHandler(), s.RequireAuth)
	s.handle(s.api, http.MethodGet, e.Workout.Save+"/{"+varID+"}", s.WorkoutDetailsHandler(), s.RequireAuth)
}
