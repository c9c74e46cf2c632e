package config

import (
	"time"
)

type Config interface {
	EnvConfig
	APIConfig
	EndpointConfig
	MockConfig
	StorageConfig
	LogConfig
	AuthConfig
	ServerConfig
}

type EnvConfig interface {
	GetEnv() string
	GetAppName() string
	GetAppVersion() string
}

type APIConfig interface {
	GetBaseURL() string
	GetRequestTimeout() time.Duration
	GetUseMockServices() bool
	GetRateLimit() (rps float64, burst int)
	GetAPIKeys() APIKeys
}

type EndpointConfig interface {
	GetEndpoints() Endpoints
}

type MockConfig interface {
	GetMockLatencyScale() float64
}

type StorageConfig interface {
	GetStorageBackend() string
	GetStorageDir() string
	GetStoragePassphrase() string
}

type LogConfig interface {
	GetLogLevel() string
	GetLogFormat() string
}

type AuthConfig interface {
	GetJWTSecret() string
	GetAccessTokenExpiry() time.Duration
	GetRefreshTokenLength() int
}

type ServerConfig interface {
	GetPort() string
	GetAllowedOrigins() AllowedOrigins
}

const (
	EnvDev        = "DEV"
	devBaseURL    = "http://localhost:3000/api"
	prodBaseURL   = "https://api.wellbe.app"
	StorageMemory = "memory"
	StorageBadger = "badger"
)

// APIKeys are third-party credentials handed to consumers. The core never reads them.
type APIKeys struct {
	LogMeal      string `koanf:"logmeal" yaml:"logmeal"`
	FatSecret    string `koanf:"fatsecret" yaml:"fatsecret"`
	ExerciseDB   string `koanf:"exercisedb" yaml:"exercisedb"`
	GooglePlaces string `koanf:"google_places" yaml:"google_places"`
}

// Values is the raw configuration tree as loaded from defaults, file and environment.
type Values struct {
	Env        string `koanf:"env"`
	AppName    string `koanf:"app_name"`
	AppVersion string `koanf:"app_version"`

	API struct {
		BaseURL         string  `koanf:"base_url"`
		TimeoutMS       int     `koanf:"timeout_ms"`
		UseMockServices bool    `koanf:"use_mock_services"`
		RateLimitRPS    float64 `koanf:"rate_limit_rps"`
		RateLimitBurst  int     `koanf:"rate_limit_burst"`
	} `koanf:"api"`

	Mock struct {
		LatencyScale float64 `koanf:"latency_scale"`
	} `koanf:"mock"`

	Storage struct {
		Backend    string `koanf:"backend"`
		Dir        string `koanf:"dir"`
		Passphrase string `koanf:"passphrase"`
	} `koanf:"storage"`

	Log struct {
		Level  string `koanf:"level"`
		Format string `koanf:"format"`
	} `koanf:"log"`

	Auth struct {
		JWTSecret          string        `koanf:"jwt_secret"`
		AccessTokenExpiry  time.Duration `koanf:"access_token_expiry"`
		RefreshTokenLength int           `koanf:"refresh_token_length"`
	} `koanf:"auth"`

	Server struct {
		Port           string   `koanf:"port"`
		AllowedOrigins []string `koanf:"allowed_origins"`
	} `koanf:"server"`

	Endpoints Endpoints `koanf:"endpoints"`
	APIKeys   APIKeys   `koanf:"api_keys"`
}

// Defaults returns the built-in configuration.
func Defaults() Values {
	var v Values
	v.Env = EnvDev
	v.AppName = "wellbe"
	v.AppVersion = "1.0.0"
	v.API.TimeoutMS = 10000
	v.API.UseMockServices = true
	v.Mock.LatencyScale = 1
	v.Storage.Backend = StorageMemory
	v.Storage.Dir = "./data"
	v.Log.Level = "info"
	v.Log.Format = "console"
	v.Auth.JWTSecret = "wellbe-dev-secret"
	v.Auth.AccessTokenExpiry = time.Hour
	v.Auth.RefreshTokenLength = 32
	v.Server.Port = "3000"
	v.Server.AllowedOrigins = []string{"*"}
	v.Endpoints = DefaultEndpoints()
	v.APIKeys = APIKeys{
		LogMeal:      "demo-key",
		FatSecret:    "demo-key",
		ExerciseDB:   "demo-key",
		GooglePlaces: "demo-key",
	}
	return v
}

type mainConfig struct {
	v Values
}

var _ Config = mainConfig{}

// FromValues wraps already loaded values.
func FromValues(v Values) Config {
	return mainConfig{v: v}
}

// Default returns the built-in configuration without reading file or environment.
func Default() Config {
	return FromValues(Defaults())
}

func (c mainConfig) GetEnv() string {
	if c.v.Env == "" {
		return EnvDev
	}
	return c.v.Env
}

func (c mainConfig) GetAppName() string {
	return c.v.AppName
}

func (c mainConfig) GetAppVersion() string {
	return c.v.AppVersion
}

// GetBaseURL returns the configured API base URL, falling back to the
// environment default (local dev server in DEV, production otherwise).
func (c mainConfig) GetBaseURL() string {
	if c.v.API.BaseURL != "" {
		return c.v.API.BaseURL
	}
	if c.GetEnv() == EnvDev {
		return devBaseURL
	}
	return prodBaseURL
}

func (c mainConfig) GetRequestTimeout() time.Duration {
	if c.v.API.TimeoutMS <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.v.API.TimeoutMS) * time.Millisecond
}

func (c mainConfig) GetUseMockServices() bool {
	return c.v.API.UseMockServices
}

func (c mainConfig) GetRateLimit() (float64, int) {
	return c.v.API.RateLimitRPS, c.v.API.RateLimitBurst
}

func (c mainConfig) GetAPIKeys() APIKeys {
	return c.v.APIKeys
}

func (c mainConfig) GetEndpoints() Endpoints {
	return c.v.Endpoints
}

func (c mainConfig) GetMockLatencyScale() float64 {
	if c.v.Mock.LatencyScale < 0 {
		return 0
	}
	return c.v.Mock.LatencyScale
}

func (c mainConfig) GetStorageBackend() string {
	if c.v.Storage.Backend == "" {
		return StorageMemory
	}
	return c.v.Storage.Backend
}

func (c mainConfig) GetStorageDir() string {
	return c.v.Storage.Dir
}

func (c mainConfig) GetStoragePassphrase() string {
	return c.v.Storage.Passphrase
}

func (c mainConfig) GetLogLevel() string {
	return c.v.Log.Level
}

func (c mainConfig) GetLogFormat() string {
	return c.v.Log.Format
}

func (c mainConfig) GetJWTSecret() string {
	return c.v.Auth.JWTSecret
}

func (c mainConfig) GetAccessTokenExpiry() time.Duration {
	if c.v.Auth.AccessTokenExpiry <= 0 {
		return time.Hour
	}
	return c.v.Auth.AccessTokenExpiry
}

func (c mainConfig) GetRefreshTokenLength() int {
	if c.v.Auth.RefreshTokenLength <= 0 {
		return 32 // 32 bytes = 256 bits
	}
	return c.v.Auth.RefreshTokenLength
}

func (c mainConfig) GetPort() string {
	port := c.v.Server.Port
	if port == "" {
		port = "3000"
	}
	if port[0] != ':' {
		port = ":" + port
	}
	return port
}

func (c mainConfig) GetAllowedOrigins() AllowedOrigins {
	return NewAllowedOrigins(c.v.Server.AllowedOrigins...)
}
