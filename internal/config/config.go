package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	UI       UIConfig       `mapstructure:"ui"`
	Picker   PickerConfig   `mapstructure:"picker"`
	Log      LogConfig      `mapstructure:"log"`
	Presets  []PresetConfig `mapstructure:"presets"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat  string `mapstructure:"date_format"`
	ShowPresets bool   `mapstructure:"show_presets"`
}

// PickerConfig holds the initial selection as YYYY-MM-DD. Empty values fall
// back to the last stored selection, then today.
type PickerConfig struct {
	Start string `mapstructure:"start"`
	End   string `mapstructure:"end"`
}

// LogConfig controls the debug log. The TUI owns the terminal, so logs only go
// to a file.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// PresetConfig is one configured preset: either Relative names a computed
// range (see package presets) or Start and End are YYYY-MM-DD.
type PresetConfig struct {
	Label    string `mapstructure:"label"`
	Relative string `mapstructure:"relative"`
	Start    string `mapstructure:"start"`
	End      string `mapstructure:"end"`
}

// DefaultPath is where Load looks when neither path nor RANGEPICKER_CONFIG is
// set.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "rangepicker", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix
// RANGEPICKER_. path overrides RANGEPICKER_CONFIG; a missing default file is
// not an error, a missing explicit file is.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "rangepicker", "rangepicker.db"))
	v.SetDefault("ui.date_format", "02 Jan 2006")
	v.SetDefault("ui.show_presets", true)
	v.SetDefault("picker.start", "")
	v.SetDefault("picker.end", "")
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("RANGEPICKER_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("RANGEPICKER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to path (DefaultPath when empty), creating
// the config directory if needed.
func Save(cfg Config, path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.date_format", cfg.UI.DateFormat)
	v.Set("ui.show_presets", cfg.UI.ShowPresets)
	v.Set("picker.start", cfg.Picker.Start)
	v.Set("picker.end", cfg.Picker.End)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	presets := make([]map[string]any, 0, len(cfg.Presets))
	for _, p := range cfg.Presets {
		entry := map[string]any{"label": p.Label}
		if p.Relative != "" {
			entry["relative"] = p.Relative
		} else {
			entry["start"] = p.Start
			entry["end"] = p.End
		}
		presets = append(presets, entry)
	}
	v.Set("presets", presets)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
