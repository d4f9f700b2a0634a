package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env             string `mapstructure:"env"`               // current application environment (local, dev, production etc)
	LessonsJSONPath string `mapstructure:"lessons_json_path"` // optional JSON file replacing the built-in lessons
	UI              UI     `mapstructure:"ui"`                // terminal presentation section
	Log             Log    `mapstructure:"log"`               // logging section
}

// UI contains terminal presentation parameters.
type UI struct {
	TypingDelay time.Duration `mapstructure:"typing_delay"` // pause after each printed character, 0 disables pacing
	ClearScreen bool          `mapstructure:"clear_screen"` // whether screens are cleared between sections
}

// Log contains logger parameters.
type Log struct {
	Level  string `mapstructure:"level"`  // zap level name
	Output string `mapstructure:"output"` // zap output path, stderr by default
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// A .env file is optional.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("lessons_json_path", "")
	v.SetDefault("ui.typing_delay", "3ms")
	v.SetDefault("ui.clear_screen", true)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.output", "stderr")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that cannot be expressed through defaults.
func (c *Config) Validate() error {
	if c.UI.TypingDelay < 0 {
		return fmt.Errorf("%w: ui.typing_delay must not be negative, got %s", ErrInvalidConfig, c.UI.TypingDelay)
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}

	if c.Log.Output == "" {
		return fmt.Errorf("%w: log.output must not be empty", ErrInvalidConfig)
	}

	return nil
}

// IsProduction reports whether the application runs in production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
