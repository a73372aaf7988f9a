package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix namespaces the environment overrides: ASTROX_PORT -> port
const EnvPrefix = "ASTROX_"

// RedisURLKey is the key that enables the page cache
const RedisURLKey = "redis_url"

// EnvVar returns the environment variable that overrides key
func EnvVar(key string) string {
	return EnvPrefix + strings.ToUpper(key)
}

// DefaultFile is the optional YAML file read on startup
const DefaultFile = "astrox.yml"

type Config struct {
	Port     string `koanf:"port"`
	Env      string `koanf:"env"`
	LogLevel string `koanf:"log_level"`

	// MediaDir holds the two background videos
	MediaDir string `koanf:"media_dir"`
	// WasmDir holds astrox.wasm and wasm_exec.js. Empty disables the bundle.
	WasmDir string `koanf:"wasm_dir"`

	BackgroundVideo string `koanf:"background_video"`
	MissionVideo    string `koanf:"mission_video"`

	RedisURL     string        `koanf:"redis_url"`
	PageCacheTTL time.Duration `koanf:"page_cache_ttl"`
}

func DefaultConfig() *Config {
	return &Config{
		Port:            "8080",
		Env:             "development",
		LogLevel:        "info",
		MediaDir:        "web/media",
		WasmDir:         "web/wasm",
		BackgroundVideo: "/video.mp4",
		MissionVideo:    "/asteroid-video.mp4",
		PageCacheTTL:    10 * time.Minute,
	}
}

// Load reads .env if present, then layers the YAML file at path and the
// ASTROX_* environment over the defaults.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	k := koanf.New(".")
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// PaaS platforms only set PORT. It outranks the file, but not ASTROX_PORT.
	if port := os.Getenv("PORT"); port != "" && os.Getenv(EnvPrefix+"PORT") == "" {
		cfg.Port = port
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
	"off":   true,
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error, off", c.LogLevel)
	}
	if c.PageCacheTTL < 0 {
		return fmt.Errorf("page_cache_ttl must be non-negative")
	}
	for key, p := range map[string]string{"background_video": c.BackgroundVideo, "mission_video": c.MissionVideo} {
		if !strings.HasPrefix(p, "/") {
			return fmt.Errorf("%s must be an absolute URL path, got %q", key, p)
		}
	}
	return nil
}

// Addr is the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
