package config

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config is the explicit context object handed to every component at
// construction: backend and collaborator endpoints, credentials, the segment
// lookup table and logging settings.
type Config struct {
	APIBase         string
	GeocodeURL      string
	GeocodeKey      string
	IPInfoURL       string
	IPInfoToken     string
	DefaultDistance float64
	RequestTimeout  time.Duration
	HealthInterval  time.Duration
	LogPath         string
	LogLevel        string
	LogFormat       string
	Hyperlinks      bool
	Segments        map[string]string
}

const (
	defaultConfigPath     = "~/.config/eventscout/config.toml"
	defaultAPIBase        = "http://127.0.0.1:5000"
	defaultGeocodeURL     = "https://maps.googleapis.com/maps/api/geocode/json"
	defaultIPInfoURL      = "https://ipinfo.io/json"
	defaultDistance       = 10
	defaultHealthInterval = 15 * time.Second
	defaultLogPath        = "~/.local/state/eventscout/eventscout.log"
	defaultLogLevel       = "info"
	defaultLogFormat      = "console"

	// DefaultCategory is the category sentinel meaning "no segment filter".
	DefaultCategory = "Default"
)

// Environment overrides, applied after the config file.
const (
	EnvAPIBase     = "EVENTSCOUT_API_BASE"
	EnvGeocodeKey  = "EVENTSCOUT_GEOCODE_KEY"
	EnvIPInfoToken = "EVENTSCOUT_IPINFO_TOKEN"
)

var segmentOrder = []string{"Music", "Sports", "Arts & Theatre", "Film", "Miscellaneous"}

// DefaultSegments returns a fresh copy of the built-in category to segment id table.
func DefaultSegments() map[string]string {
	return map[string]string{
		"Music":          "KZFzniwnSyZfZ7v7nJ",
		"Sports":         "KZFzniwnSyZfZ7v7nE",
		"Arts & Theatre": "KZFzniwnSyZfZ7v7na",
		"Film":           "KZFzniwnSyZfZ7v7nn",
		"Miscellaneous":  "KZFzniwnSyZfZ7v7n1",
	}
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIBase:         defaultAPIBase,
		GeocodeURL:      defaultGeocodeURL,
		IPInfoURL:       defaultIPInfoURL,
		DefaultDistance: defaultDistance,
		HealthInterval:  defaultHealthInterval,
		LogPath:         mustExpand(defaultLogPath),
		LogLevel:        defaultLogLevel,
		LogFormat:       defaultLogFormat,
		Hyperlinks:      true,
		Segments:        DefaultSegments(),
	}
}

type fileConfig struct {
	APIBase         string            `toml:"api_base"`
	GeocodeURL      string            `toml:"geocode_url"`
	GeocodeKey      string            `toml:"geocode_key"`
	IPInfoURL       string            `toml:"ipinfo_url"`
	IPInfoToken     string            `toml:"ipinfo_token"`
	DefaultDistance *float64          `toml:"default_distance"`
	RequestTimeout  string            `toml:"request_timeout"`
	HealthInterval  string            `toml:"health_interval"`
	LogPath         string            `toml:"log_path"`
	LogLevel        string            `toml:"log_level"`
	LogFormat       string            `toml:"log_format"`
	Hyperlinks      *bool             `toml:"hyperlinks"`
	Segments        map[string]string `toml:"segments"`
}

// Load reads the TOML config at path (or the default location), falls back to
// defaults when the file is missing, then applies environment overrides.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("open config: %w", err)
		}
		cfg.applyEnv()
		return cfg, cfg.Validate()
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw fileConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.merge(raw); err != nil {
		return Config{}, err
	}
	cfg.applyEnv()
	return cfg, cfg.Validate()
}

// LoadDotenv loads KEY=VALUE pairs from a .env file into the process
// environment without overriding variables that are already set. A missing
// file is not an error.
func LoadDotenv(path string) error {
	if strings.TrimSpace(path) == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

func (c *Config) merge(raw fileConfig) error {
	setString(&c.APIBase, raw.APIBase)
	setString(&c.GeocodeURL, raw.GeocodeURL)
	setString(&c.GeocodeKey, raw.GeocodeKey)
	setString(&c.IPInfoURL, raw.IPInfoURL)
	setString(&c.IPInfoToken, raw.IPInfoToken)
	setString(&c.LogLevel, raw.LogLevel)
	setString(&c.LogFormat, raw.LogFormat)
	if raw.DefaultDistance != nil {
		c.DefaultDistance = *raw.DefaultDistance
	}
	if raw.Hyperlinks != nil {
		c.Hyperlinks = *raw.Hyperlinks
	}
	if v := strings.TrimSpace(raw.RequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse config: request_timeout: %w", err)
		}
		c.RequestTimeout = d
	}
	if v := strings.TrimSpace(raw.HealthInterval); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse config: health_interval: %w", err)
		}
		c.HealthInterval = d
	}
	if v := strings.TrimSpace(raw.LogPath); v != "" {
		c.LogPath = mustExpand(v)
	}
	for label, id := range raw.Segments {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		c.Segments[label] = strings.TrimSpace(id)
	}
	return nil
}

func (c *Config) applyEnv() {
	setString(&c.APIBase, os.Getenv(EnvAPIBase))
	setString(&c.GeocodeKey, os.Getenv(EnvGeocodeKey))
	setString(&c.IPInfoToken, os.Getenv(EnvIPInfoToken))
}

// Validate reports the first configuration value that cannot be used.
func (c Config) Validate() error {
	base := strings.TrimSpace(c.APIBase)
	if base == "" {
		return errors.New("config: api_base is empty")
	}
	if _, err := url.Parse(base); err != nil {
		return fmt.Errorf("config: api_base: %w", err)
	}
	if c.DefaultDistance <= 0 {
		return fmt.Errorf("config: default_distance must be positive, got %v", c.DefaultDistance)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("config: request_timeout must not be negative, got %s", c.RequestTimeout)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}
	for label, id := range c.Segments {
		if id == "" {
			return fmt.Errorf("config: segment %q has no id", label)
		}
	}
	return nil
}

// Categories lists the category selector options: the sentinel first, the
// built-in segments in their fixed order, then any extra labels sorted.
func (c Config) Categories() []string {
	out := []string{DefaultCategory}
	seen := map[string]bool{}
	for _, label := range segmentOrder {
		if _, ok := c.Segments[label]; ok {
			out = append(out, label)
			seen[label] = true
		}
	}
	var extra []string
	for label := range c.Segments {
		if !seen[label] && label != DefaultCategory {
			extra = append(extra, label)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading tilde and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
