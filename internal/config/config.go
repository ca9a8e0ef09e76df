package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Gesture  GestureConfig
	Trace    TraceConfig
	Log      LogConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path           string `mapstructure:"path"`
	MigrationsPath string `mapstructure:"migrations_path"`
}

// GestureConfig holds the interaction thresholds. Units follow the gesture
// package; zero values fall through to that package's defaults.
type GestureConfig struct {
	SafeZone            float64 `mapstructure:"safe_zone"`
	ScrollUpThreshold   float64 `mapstructure:"scroll_up_threshold"`
	SwipeThreshold      float64 `mapstructure:"swipe_threshold"`
	VelocityThreshold   float64 `mapstructure:"velocity_threshold"`
	MaxVerticalMovement float64 `mapstructure:"max_vertical_movement"`
	ChromeAutoHide      bool    `mapstructure:"chrome_auto_hide"`
}

// TraceConfig controls the interaction trace recorder.
type TraceConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Keep    int  `mapstructure:"keep"`
}

// LogConfig holds zap settings.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Debug bool   `mapstructure:"debug"`
}

// Load reads configuration from file and env. Env var overrides use prefix MOMENTUM_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "momentum", "momentum.db"))
	v.SetDefault("database.migrations_path", "internal/database/migrations")
	v.SetDefault("gesture.safe_zone", 100)
	v.SetDefault("gesture.scroll_up_threshold", 150)
	v.SetDefault("gesture.swipe_threshold", 50)
	v.SetDefault("gesture.velocity_threshold", 0.3)
	v.SetDefault("gesture.max_vertical_movement", 30)
	v.SetDefault("gesture.chrome_auto_hide", true)
	v.SetDefault("trace.enabled", false)
	v.SetDefault("trace.keep", 5000)
	v.SetDefault("log.path", "")
	v.SetDefault("log.debug", false)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("MOMENTUM_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "momentum"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MOMENTUM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
