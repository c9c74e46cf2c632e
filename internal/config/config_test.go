package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jrsteele09/wellbe/internal/config"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := config.Default()

	require.Equal(t, config.EnvDev, c.GetEnv())
	require.Equal(t, "http://localhost:3000/api", c.GetBaseURL())
	require.Equal(t, 10*time.Second, c.GetRequestTimeout())
	require.True(t, c.GetUseMockServices())
	require.Equal(t, "/auth/refresh", c.GetEndpoints().Auth.Refresh)
	require.Equal(t, "/nutrition/analyze-image", c.GetEndpoints().Nutrition.AnalyzeImage)
	require.Equal(t, "demo-key", c.GetAPIKeys().LogMeal)
	require.Equal(t, ":3000", c.GetPort())
	require.True(t, c.GetAllowedOrigins().IsAllowedOrigin("*"))
}

func TestAllowedOrigins(t *testing.T) {
	v := config.Defaults()
	v.Server.AllowedOrigins = []string{" http://localhost:8081 ", ""}
	origins := config.FromValues(v).GetAllowedOrigins()
	require.True(t, origins.IsAllowedOrigin("http://localhost:8081"))
	require.False(t, origins.IsAllowedOrigin("*"))
	require.Equal(t, "http://localhost:8081", origins.String())
}

func TestBaseURLFollowsEnvironment(t *testing.T) {
	v := config.Defaults()
	v.Env = "PROD"
	require.Equal(t, "https://api.wellbe.app", config.FromValues(v).GetBaseURL())

	v.API.BaseURL = "http://127.0.0.1:9999"
	require.Equal(t, "http://127.0.0.1:9999", config.FromValues(v).GetBaseURL())
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wellbe.yaml")
	content := `
env: PROD
api:
  timeout_ms: 2500
  use_mock_services: false
storage:
  backend: badger
endpoints:
  auth:
    login: /v2/auth/login
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("WELLBE_API_BASE_URL", "http://example.test/api")
	t.Setenv("WELLBE_LOG_LEVEL", "debug")
	t.Setenv("WELLBE_APP_NAME", "wellbe-test")
	t.Setenv("WELLBE_ENDPOINTS_AUTH_FORGOT_PASSWORD", "/v2/forgot")

	c, err := config.New(config.WithConfigFile(path))
	require.NoError(t, err)

	require.Equal(t, "PROD", c.GetEnv())
	require.Equal(t, "wellbe-test", c.GetAppName())
	require.Equal(t, 2500*time.Millisecond, c.GetRequestTimeout())
	require.False(t, c.GetUseMockServices())
	require.Equal(t, config.StorageBadger, c.GetStorageBackend())
	require.Equal(t, "http://example.test/api", c.GetBaseURL())
	require.Equal(t, "debug", c.GetLogLevel())
	require.Equal(t, "/v2/auth/login", c.GetEndpoints().Auth.Login)
	require.Equal(t, "/v2/forgot", c.GetEndpoints().Auth.ForgotPassword)
	// untouched entries keep their defaults
	require.Equal(t, "/auth/register", c.GetEndpoints().Auth.Register)
}

func TestMissingConfigFile(t *testing.T) {
	_, err := config.New(config.WithConfigFile(filepath.Join(t.TempDir(), "nope.yaml")))
	require.Error(t, err)
}
