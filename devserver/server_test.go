package devserver_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/wellbe/devserver"
	"github.com/jrsteele09/wellbe/internal/app"
	"github.com/jrsteele09/wellbe/internal/config"
	"github.com/jrsteele09/wellbe/internal/delay"
	wellbeerrors "github.com/jrsteele09/wellbe/internal/errors"
	"github.com/jrsteele09/wellbe/nutrition"
	"github.com/jrsteele09/wellbe/session"
	"github.com/jrsteele09/wellbe/token"
	"github.com/jrsteele09/wellbe/tokenstore"
	tokenstorefake "github.com/jrsteele09/wellbe/tokenstore/repofake"
	"github.com/jrsteele09/wellbe/transport"
	"github.com/jrsteele09/wellbe/workout"
)

type testFixture struct {
	server *devserver.Server
	http   *httptest.Server
	app    *app.App
	store  *tokenstorefake.FakeStore
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()
	sv := config.Defaults()
	sv.Mock.LatencyScale = 0
	srv, err := devserver.New(config.FromValues(sv))
	require.NoError(t, err)

	f := &testFixture{server: srv, http: httptest.NewServer(srv), store: tokenstorefake.NewFakeStore()}
	t.Cleanup(f.http.Close)

	cv := config.Defaults()
	cv.API.UseMockServices = false
	cv.API.BaseURL = f.http.URL + "/api"
	f.app, err = app.New(context.Background(), config.FromValues(cv),
		app.WithStore(f.store),
		app.WithConnectivity(transport.AlwaysOnline{}),
		app.WithLatency(delay.None),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.app.Close() })
	return f
}

func (f *testFixture) login(t *testing.T) session.AuthResponse {
	t.Helper()
	resp := f.app.Session.Login(context.Background(), "john@example.com", "password123")
	require.True(t, resp.Success, resp.Error)
	return resp.Data
}

func (f *testFixture) get(t *testing.T, path, bearer string) (int, string) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, f.http.URL+path, nil)
	require.NoError(t, err)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestLiveLoginAndNutrition(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()

	auth := f.login(t)
	require.Equal(t, "1", auth.User.ID)
	require.True(t, f.store.Has(tokenstore.RefreshTokenKey))
	require.True(t, f.app.Session.IsAuthenticated(ctx))

	search := f.app.Nutrition.SearchFood(ctx, nutrition.FoodSearchRequest{Query: "chicken"})
	require.True(t, search.Success, search.Error)
	require.Len(t, search.Data, 1)
	require.Equal(t, "Grilled Chicken Breast", search.Data[0].Name)

	logged := f.app.Nutrition.LogFood(ctx, nutrition.LogFoodRequest{FoodID: "1", Quantity: 1.5, MealType: nutrition.Lunch})
	require.True(t, logged.Success, logged.Error)
	require.Equal(t, "1", logged.Data.UserID)
	require.True(t, strings.HasPrefix(logged.Data.ID, "log_"))

	daily := f.app.Nutrition.DailyNutrition(ctx, "")
	require.True(t, daily.Success, daily.Error)
	require.InDelta(t, 165*1.5, daily.Data.TotalCalories, 1e-9)
	require.Len(t, daily.Data.Meals.Lunch, 1)

	missing := f.app.Nutrition.LogFood(ctx, nutrition.LogFoodRequest{FoodID: "999", Quantity: 1, MealType: nutrition.Lunch})
	require.False(t, missing.Success)
	require.Equal(t, wellbeerrors.ErrFoodNotFound.Error(), missing.Error)

	details := f.app.Nutrition.FoodDetails(ctx, "nope")
	require.False(t, details.Success)
	require.Equal(t, "Food not found", details.Error)

	barcode := f.app.Nutrition.ScanBarcode(ctx, "5000")
	require.True(t, barcode.Success, barcode.Error)
	require.Equal(t, "barcode_5000", barcode.Data.ID)

	var progress int
	analysis := f.app.Nutrition.AnalyzeImage(ctx, nutrition.AnalyzeImageRequest{
		Image:    strings.NewReader(strings.Repeat("j", 2048)),
		Progress: func(p int) { progress = p },
	})
	require.True(t, analysis.Success, analysis.Error)
	require.Len(t, analysis.Data.Foods, 2)
	require.Equal(t, 100, progress)
}

func TestLiveWorkouts(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()
	f.login(t)

	exercises := f.app.Workout.SearchExercises(ctx, workout.ExerciseSearchRequest{Muscle: "legs"})
	require.True(t, exercises.Success, exercises.Error)
	require.Len(t, exercises.Data, 2)

	generated := f.app.Workout.GenerateWorkout(ctx, workout.GenerateRequest{
		Goal:       workout.GoalStrength,
		Duration:   45,
		Equipment:  []string{},
		Difficulty: workout.Beginner,
	})
	require.True(t, generated.Success, generated.Error)
	require.Len(t, generated.Data.Exercises, 6)
	require.Equal(t, "1", generated.Data.UserID)

	logged := f.app.Workout.LogWorkout(ctx, workout.LogRequest{WorkoutID: generated.Data.ID})
	require.True(t, logged.Success, logged.Error)
	require.True(t, logged.Data.IsCompleted)

	history := f.app.Workout.WorkoutHistory(ctx)
	require.True(t, history.Success, history.Error)
	require.Equal(t, 1, history.Data.TotalWorkouts)
	require.Equal(t, 45, history.Data.TotalDuration)

	require.Len(t, f.app.Workout.Programs(ctx).Data, 3)
	require.Equal(t, "Squats", f.app.Workout.ExerciseDetails(ctx, "2").Data.Name)
	require.Equal(t, "Upper Body Push", f.app.Workout.WorkoutDetails(ctx, "1").Data.Name)

	missing := f.app.Workout.LogWorkout(ctx, workout.LogRequest{WorkoutID: "404"})
	require.False(t, missing.Success)
	require.Equal(t, wellbeerrors.ErrWorkoutNotFound.Error(), missing.Error)
}

func TestLiveAuthErrors(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()

	bad := f.app.Session.Login(ctx, "john@example.com", "short")
	require.False(t, bad.Success)
	require.Equal(t, wellbeerrors.ErrInvalidCredentials.Error(), bad.Error)

	dup := f.app.Session.Register(ctx, session.RegisterRequest{Email: "jane@example.com", Password: "secret12"})
	require.False(t, dup.Success)
	require.Equal(t, wellbeerrors.ErrDuplicateEmail.Error(), dup.Error)

	unauth := f.app.Nutrition.SearchFood(ctx, nutrition.FoodSearchRequest{Query: "rice"})
	require.False(t, unauth.Success)
	require.Equal(t, wellbeerrors.ErrUnauthorized.Error(), unauth.Error)

	require.False(t, f.app.Session.LoginAsDefaultUser(ctx).Success)

	created := f.app.Session.Register(ctx, session.RegisterRequest{Email: "sam@example.com", Password: "secret12", FirstName: "Sam"})
	require.True(t, created.Success, created.Error)
	require.False(t, created.Data.User.IsOnboardingComplete)
	require.False(t, f.app.Session.CheckOnboardingStatus(ctx))
}

func TestExpiredAccessTokenIsRefreshed(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()
	first := f.login(t)

	defer func() { token.NowTimeFunc = time.Now }()
	token.NowTimeFunc = func() time.Time { return time.Now().Add(2 * time.Hour) }

	resp := f.app.Nutrition.SearchFood(ctx, nutrition.FoodSearchRequest{Query: "rice"})
	require.True(t, resp.Success, resp.Error)

	access, err := f.store.Get(ctx, tokenstore.AuthTokenKey)
	require.NoError(t, err)
	require.NotEqual(t, first.AccessToken, access)
	refresh, err := f.store.Get(ctx, tokenstore.RefreshTokenKey)
	require.NoError(t, err)
	require.NotEqual(t, first.RefreshToken, refresh)

	status, _ := f.get(t, "/api/nutrition/food/1", first.AccessToken)
	require.Equal(t, http.StatusUnauthorized, status)
}

func TestLogoutRevokesTokens(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()
	auth := f.login(t)

	status, _ := f.get(t, "/api/nutrition/food/1", auth.AccessToken)
	require.Equal(t, http.StatusOK, status)

	f.app.Session.Logout(ctx)
	require.False(t, f.app.Session.IsAuthenticated(ctx))
	require.False(t, f.store.Has(tokenstore.AuthTokenKey))

	status, body := f.get(t, "/api/nutrition/food/1", auth.AccessToken)
	require.Equal(t, http.StatusUnauthorized, status)
	require.Contains(t, body, wellbeerrors.ErrUnauthorized.Error())
}

func TestPasswordReset(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()

	unknown := f.app.Session.ForgotPassword(ctx, "nobody@example.com")
	require.False(t, unknown.Success)
	require.Equal(t, wellbeerrors.ErrResetRequest.Error(), unknown.Error)

	sent := f.app.Session.ForgotPassword(ctx, "john@example.com")
	require.True(t, sent.Success, sent.Error)
	require.Equal(t, session.ResetEmailSentMessage, sent.Data.Message)

	resetToken, ok := f.server.Authenticator().PendingResetToken("john@example.com")
	require.True(t, ok)

	reset := f.app.Session.ResetPassword(ctx, resetToken, "newpass1")
	require.True(t, reset.Success, reset.Error)
	require.Equal(t, session.PasswordResetMessage, reset.Data.Message)

	again := f.app.Session.ResetPassword(ctx, resetToken, "newpass1")
	require.False(t, again.Success)
	require.Equal(t, wellbeerrors.ErrInvalidResetToken.Error(), again.Error)
}

func TestHealthAndMetrics(t *testing.T) {
	f := setupTestFixture(t)

	status, body := f.get(t, devserver.RouteHealth, "")
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body, `"success":true`)

	status, body = f.get(t, devserver.RouteMetrics, "")
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body, `wellbe_devserver_requests_total{code="200",method="GET",route="/health"} 1`)
}

func TestBadRequests(t *testing.T) {
	f := setupTestFixture(t)
	auth := f.login(t)

	status, _ := f.get(t, "/api/nutrition/food/search?limit=-1", auth.AccessToken)
	require.Equal(t, http.StatusBadRequest, status)

	status, _ = f.get(t, "/api/exercise/search?limit=abc", auth.AccessToken)
	require.Equal(t, http.StatusBadRequest, status)

	req, err := http.NewRequest(http.MethodPost, f.http.URL+"/api/auth/login", strings.NewReader("{"))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCORS(t *testing.T) {
	sv := config.Defaults()
	sv.Mock.LatencyScale = 0
	sv.Server.AllowedOrigins = []string{"http://localhost:8081"}
	srv, err := devserver.New(config.FromValues(sv))
	require.NoError(t, err)

	preflight := httptest.NewRequest(http.MethodOptions, "/api/auth/login", nil)
	preflight.Header.Set("Origin", "http://localhost:8081")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, preflight)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "http://localhost:8081", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")

	other := httptest.NewRequest(http.MethodGet, devserver.RouteHealth, nil)
	other.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, other)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
