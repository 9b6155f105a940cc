// Package config loads abxdash settings from a TOML file and the
// environment. Env var overrides use the prefix ABXDASH_, with dots in key
// names replaced by underscores (ABXDASH_UI_DEFAULT_VIEW).
package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides.
const EnvPrefix = "ABXDASH"

// Config holds application configuration.
type Config struct {
	Content ContentConfig `mapstructure:"content"`
	UI      UIConfig      `mapstructure:"ui"`
	Log     LogConfig     `mapstructure:"log"`
}

// ContentConfig selects where datasets and views come from. With both
// fields empty the embedded content is used.
type ContentConfig struct {
	Dir string `mapstructure:"dir"`
	DB  string `mapstructure:"db"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DefaultView string `mapstructure:"default_view"`
	AltScreen   bool   `mapstructure:"alt_screen"`
	FooterYear  int    `mapstructure:"footer_year"` // 0 means the current year
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		UI:  UIConfig{AltScreen: true},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads configuration. path, when non-empty, names the config file
// and must exist; otherwise ABXDASH_CONFIG is consulted, then
// ~/.config/abxdash/config.toml, and a missing default file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("content.dir", def.Content.Dir)
	v.SetDefault("content.db", def.Content.DB)
	v.SetDefault("ui.default_view", def.UI.DefaultView)
	v.SetDefault("ui.alt_screen", def.UI.AltScreen)
	v.SetDefault("ui.footer_year", def.UI.FooterYear)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.file", def.Log.File)

	v.SetConfigType("toml")

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvPrefix + "_CONFIG")
		explicit = path != ""
	}
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "abxdash"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !stderrors.As(err, &notFound) {
			return Config{}, errors.Wrap(err, "reading config")
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}
	return c, nil
}
