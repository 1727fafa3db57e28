// Package settings discovers CLI configuration from .spbar config files
// and SPBAR_* environment variables.
package settings

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/spbar/pkg/bar"
)

// Settings is the resolved configuration.
type Settings struct {
	HistoryPath string
	Bar         bar.Config
}

// Load reads configuration. Search order: SPBAR_CONFIG_PATH, the current
// directory, then the home directory; a missing config file is fine.
func Load() (*Settings, error) {
	def := bar.DefaultConfig()
	viper.SetDefault("history", "~/.spbar.db")
	viper.SetDefault("bar.width", def.Width)
	viper.SetDefault("bar.fill", def.FillGlyph)
	viper.SetDefault("bar.empty", def.EmptyGlyph)
	viper.SetDefault("bar.start-color", def.StartColor)
	viper.SetDefault("bar.end-color", def.EndColor)

	viper.SetConfigName(".spbar") // .yaml is implicit
	viper.SetEnvPrefix("SPBAR")
	viper.AutomaticEnv()

	if override := os.Getenv("SPBAR_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	history, err := homedir.Expand(viper.GetString("history"))
	if err != nil {
		history = viper.GetString("history")
	}

	return &Settings{
		HistoryPath: history,
		Bar: bar.Config{
			Width:      viper.GetInt("bar.width"),
			FillGlyph:  viper.GetString("bar.fill"),
			EmptyGlyph: viper.GetString("bar.empty"),
			StartColor: viper.GetString("bar.start-color"),
			EndColor:   viper.GetString("bar.end-color"),
		},
	}, nil
}
