package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/username/cyclecal/internal/report"
	"github.com/username/cyclecal/pkg/dateutil"
)

// Config represents application configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Week   WeekConfig   `mapstructure:"week"`
	Year   YearConfig   `mapstructure:"year"`
	Output OutputConfig `mapstructure:"output"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"` // Empty logs to the console
	Level string `mapstructure:"level"`
}

// WeekConfig represents how weeks are listed
type WeekConfig struct {
	FirstDay dateutil.Weekday `mapstructure:"first_day"`
}

// YearConfig represents how years are listed
type YearConfig struct {
	FirstMonth dateutil.Month `mapstructure:"first_month"`
}

// OutputConfig represents report output configuration
type OutputConfig struct {
	Format string `mapstructure:"format"` // "table", "json" or "yaml"
}

// Load loads configuration from file.
// A missing config file is not an error when no explicit path is given.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("week.first_day", dateutil.Monday.String())
	v.SetDefault("year.first_month", dateutil.January.String())
	v.SetDefault("output.format", string(report.FormatTable))

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.cyclecal")
		v.AddConfigPath("/etc/cyclecal")
	}

	// Read environment variables, e.g. CYCLECAL_WEEK_FIRST_DAY
	v.SetEnvPrefix("cyclecal")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := v.Unmarshal(&config, decodeHook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if !c.Week.FirstDay.IsValid() {
		return fmt.Errorf("week.first_day must be a weekday name, got %d", c.Week.FirstDay)
	}
	if !c.Year.FirstMonth.IsValid() {
		return fmt.Errorf("year.first_month must be a month name, got %d", c.Year.FirstMonth)
	}

	if _, err := report.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}

	if _, err := c.Log.ZapLevel(); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	return nil
}

// ZapLevel returns the configured log level
func (c *LogConfig) ZapLevel() (zapcore.Level, error) {
	if c.Level == "" {
		return zapcore.InfoLevel, nil
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return zapcore.InfoLevel, err
	}
	return level, nil
}
