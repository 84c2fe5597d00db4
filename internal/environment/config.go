package environment

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/programme-lv/exsubs/internal/xdg"
)

const appName = "exsubs"

type Config struct {
	APIURL    string
	Token     string
	Separator string
	LogLevel  string
	// zero means no timeout
	Timeout time.Duration
}

// fileConfig mirrors config.toml. Unset keys keep the previous value.
type fileConfig struct {
	APIURL    string `toml:"api_url"`
	Token     string `toml:"token"`
	Separator string `toml:"separator"`
	LogLevel  string `toml:"log_level"`
	Timeout   string `toml:"timeout"`
}

func defaults() *Config {
	return &Config{
		APIURL:    "https://exercism.org/api/v2",
		Separator: ",",
		LogLevel:  "warn",
	}
}

// ReadConfig loads defaults, then the XDG config.toml, then .env and the
// process environment.
func ReadConfig() (*Config, error) {
	return ReadConfigFrom(xdg.New().FindConfigFile(appName, "config.toml"), ".env")
}

// ReadConfigFrom is ReadConfig with explicit file locations. Missing files are skipped.
func ReadConfigFrom(tomlPath, dotenvPath string) (*Config, error) {
	cfg := defaults()

	fc := fileConfig{}
	data, err := os.ReadFile(tomlPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := toml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", tomlPath, err)
		}
	}
	if err := cfg.apply(fc); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", tomlPath, err)
	}

	if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", dotenvPath, err)
	}
	env := fileConfig{
		APIURL:    os.Getenv("EXSUBS_API_URL"),
		Token:     os.Getenv("EXERCISM_TOKEN"),
		Separator: os.Getenv("EXSUBS_SEPARATOR"),
		LogLevel:  os.Getenv("EXSUBS_LOG_LEVEL"),
		Timeout:   os.Getenv("EXSUBS_TIMEOUT"),
	}
	if err := cfg.apply(env); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}

	return cfg, nil
}

func (c *Config) apply(fc fileConfig) error {
	if fc.APIURL != "" {
		c.APIURL = fc.APIURL
	}
	if fc.Token != "" {
		c.Token = fc.Token
	}
	if fc.Separator != "" {
		if utf8.RuneCountInString(fc.Separator) != 1 {
			return fmt.Errorf("separator must be a single character, got %q", fc.Separator)
		}
		c.Separator = fc.Separator
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return fmt.Errorf("failed to parse timeout: %w", err)
		}
		if d < 0 {
			return fmt.Errorf("timeout must not be negative, got %s", d)
		}
		c.Timeout = d
	}
	return nil
}
