// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"
	"os"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct and is a mix of settings
// available in a settings file and those available from the command line.
type Config struct {
	// how much detail reports carry
	// 0: category counts, 1: counts and length stats, 2: per-category ID lists
	Verbosity int `mapstructure:"verbosity"`

	// characters read as gaps in alignment rows
	GapChars string `mapstructure:"gap-chars"`

	// mismatches allowed per primer placement when locating primers
	LocateMismatches int `mapstructure:"locate-mismatches"`

	// number of bins in the amplicon length histogram
	HistBins int `mapstructure:"hist-bins"`
}

// Setup points Viper at the settings file named by the bound "settings"
// flag, if that file exists. Runs once before any command.
func Setup() {
	file := viper.GetString("settings")
	if file == "" {
		return
	}
	if _, err := os.Stat(file); os.IsNotExist(err) {
		return
	}

	viper.SetConfigFile(file)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("failed to read settings file %s: %v", file, err)
	}
}

// New returns a Config populated by Viper settings (from the optional
// settings file) and/or command line arguments.
func New() *Config {
	viper.SetDefault("verbosity", 1)
	viper.SetDefault("gap-chars", "-.~")
	viper.SetDefault("locate-mismatches", 0)
	viper.SetDefault("hist-bins", 20)

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		log.Fatalf("failed to decode settings: %v", err)
	}

	return c
}
