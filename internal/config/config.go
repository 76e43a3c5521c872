// Package config provides configuration management for MealTable.
// Configurations are loaded from TOML files with XDG-compliant paths.
package config

import (
	"errors"
	"fmt"
)

// Config holds the complete application configuration.
type Config struct {
	App      AppConfig      `toml:"app"`
	Goals    GoalsConfig    `toml:"goals"`
	Display  DisplayConfig  `toml:"display"`
	Logging  LoggingConfig  `toml:"logging"`
	Database DatabaseConfig `toml:"database"`
}

// AppConfig contains top-level application settings.
type AppConfig struct {
	// UserName is shown in the dashboard greeting. Optional.
	UserName string `toml:"user_name"`
	// SeedDemoData populates example pantry and meal data on first run.
	SeedDemoData bool `toml:"seed_demo_data"`
}

// GoalsConfig holds the default daily nutrition targets used until the
// user sets their own.
type GoalsConfig struct {
	DailyCalories float64 `toml:"daily_calories"`
	DailyProtein  float64 `toml:"daily_protein"`
	DailyCarbs    float64 `toml:"daily_carbs"`
	DailyFat      float64 `toml:"daily_fat"`
}

// DisplayConfig controls TUI appearance.
type DisplayConfig struct {
	ColorScheme ColorScheme `toml:"color_scheme"`
	DateFormat  string      `toml:"date_format"`
	TimeFormat  string      `toml:"time_format"`
	// CompactTables hides macro columns in narrow terminals.
	CompactTables bool `toml:"compact_tables"`
}

// ColorScheme defines the terminal color palette.
type ColorScheme string

const (
	ColorSchemeDefault ColorScheme = "default"
	ColorSchemeDark    ColorScheme = "dark"
	ColorSchemeLight   ColorScheme = "light"
)

// LoggingConfig controls application logging.
type LoggingConfig struct {
	Level      LogLevel `toml:"level"`
	File       string   `toml:"file"`
	MaxSizeMB  int      `toml:"max_size_mb"`
	MaxBackups int      `toml:"max_backups"`
}

// LogLevel defines logging verbosity.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// DatabaseConfig controls SQLite database settings.
type DatabaseConfig struct {
	Path                string `toml:"path"`
	BackupIntervalHours int    `toml:"backup_interval_hours"`
	BackupRetentionDays int    `toml:"backup_retention_days"`
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Goals.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("goals: %w", err))
	}

	if err := c.Display.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("display: %w", err))
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}

	if err := c.Database.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("database: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Validate checks that the default goals are valid.
func (g *GoalsConfig) Validate() error {
	var errs []error

	if g.DailyCalories <= 0 {
		errs = append(errs, errors.New("daily_calories must be positive"))
	}

	if g.DailyProtein <= 0 {
		errs = append(errs, errors.New("daily_protein must be positive"))
	}

	if g.DailyCarbs <= 0 {
		errs = append(errs, errors.New("daily_carbs must be positive"))
	}

	if g.DailyFat <= 0 {
		errs = append(errs, errors.New("daily_fat must be positive"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Validate checks that the display configuration is valid.
func (d *DisplayConfig) Validate() error {
	var errs []error

	validSchemes := map[ColorScheme]bool{
		ColorSchemeDefault: true,
		ColorSchemeDark:    true,
		ColorSchemeLight:   true,
	}

	if !validSchemes[d.ColorScheme] && d.ColorScheme != "" {
		errs = append(errs, fmt.Errorf("invalid color_scheme: %s", d.ColorScheme))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Validate checks that the logging configuration is valid.
func (l *LoggingConfig) Validate() error {
	var errs []error

	validLevels := map[LogLevel]bool{
		LogLevelDebug: true,
		LogLevelInfo:  true,
		LogLevelWarn:  true,
		LogLevelError: true,
	}

	if !validLevels[l.Level] && l.Level != "" {
		errs = append(errs, fmt.Errorf("invalid log level: %s", l.Level))
	}

	if l.MaxSizeMB < 0 {
		errs = append(errs, errors.New("max_size_mb must be non-negative"))
	}

	if l.MaxBackups < 0 {
		errs = append(errs, errors.New("max_backups must be non-negative"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Validate checks that the database configuration is valid.
func (d *DatabaseConfig) Validate() error {
	var errs []error

	if d.Path == "" {
		errs = append(errs, errors.New("path is required"))
	}

	if d.BackupIntervalHours < 0 {
		errs = append(errs, errors.New("backup_interval_hours must be non-negative"))
	}

	if d.BackupRetentionDays < 0 {
		errs = append(errs, errors.New("backup_retention_days must be non-negative"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Default returns a configuration with sensible default values.
func Default() *Config {
	return &Config{
		App: AppConfig{
			UserName:     "",
			SeedDemoData: false,
		},
		Goals: GoalsConfig{
			DailyCalories: 2000,
			DailyProtein:  120,
			DailyCarbs:    225,
			DailyFat:      65,
		},
		Display: DisplayConfig{
			ColorScheme:   ColorSchemeDefault,
			DateFormat:    "2006-01-02",
			TimeFormat:    "15:04",
			CompactTables: false,
		},
		Logging: LoggingConfig{
			Level:      LogLevelInfo,
			File:       "logs/mealtable.log",
			MaxSizeMB:  10,
			MaxBackups: 5,
		},
		Database: DatabaseConfig{
			Path:                "mealtable.db",
			BackupIntervalHours: 24,
			BackupRetentionDays: 30,
		},
	}
}
