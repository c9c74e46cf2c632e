package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultEnvPrefix is the environment variable prefix, e.g. WELLBE_API_BASE_URL.
const DefaultEnvPrefix = "WELLBE_"

// Keys at the root of the tree that contain an underscore and so can't be split
// on the first "_" of the variable name.
var rootKeys = map[string]struct{}{
	"env":         {},
	"app_name":    {},
	"app_version": {},
}

type loader struct {
	k         *koanf.Koanf
	envPrefix string
	filePath  string
}

// Option configures Load.
type Option func(*loader)

// WithConfigFile reads a YAML file before the environment.
func WithConfigFile(path string) Option {
	return func(l *loader) {
		l.filePath = path
	}
}

// WithEnvPrefix changes the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(l *loader) {
		l.envPrefix = prefix
	}
}

// New loads configuration with priority Env > File > Defaults.
func New(options ...Option) (Config, error) {
	l := &loader{
		k:         koanf.New("."),
		envPrefix: DefaultEnvPrefix,
	}
	for _, opt := range options {
		opt(l)
	}

	if l.filePath != "" {
		if _, err := os.Stat(l.filePath); err != nil {
			return nil, fmt.Errorf("[config.New] config file: %w", err)
		}
		if err := l.k.Load(file.Provider(l.filePath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("[config.New] load file %s: %w", l.filePath, err)
		}
	}

	if err := l.k.Load(env.Provider(l.envPrefix, ".", l.envKey), nil); err != nil {
		return nil, fmt.Errorf("[config.New] load env: %w", err)
	}

	v := Defaults()
	if err := l.k.Unmarshal("", &v); err != nil {
		return nil, fmt.Errorf("[config.New] unmarshal: %w", err)
	}
	return FromValues(v), nil
}

// envKey maps WELLBE_API_BASE_URL to api.base_url and
// WELLBE_ENDPOINTS_AUTH_LOGIN to endpoints.auth.login.
func (l *loader) envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, l.envPrefix))
	if _, ok := rootKeys[s]; ok {
		return s
	}
	parts := strings.SplitN(s, "_", 2)
	if len(parts) == 1 {
		return s
	}
	if parts[0] == "endpoints" {
		sub := strings.SplitN(parts[1], "_", 2)
		if len(sub) == 2 {
			return "endpoints." + sub[0] + "." + sub[1]
		}
	}
	if parts[0] == "api" && strings.HasPrefix(parts[1], "keys_") {
		return "api_keys." + strings.TrimPrefix(parts[1], "keys_")
	}
	return parts[0] + "." + parts[1]
}
