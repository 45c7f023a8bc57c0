// Package cmd is for command line interactions with the amplengths application
package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/walshaw/amplengths/config"
)

// RootCmd represents the base command when called without any subcommands.
// Exported for the documentation generator.
var RootCmd = &cobra.Command{
	Use: "amplengths",
	Short: `Classify sequencing reads by the PCR primers found in them and infer
the amplicon lengths their primer hits imply`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// set flags
func init() {
	cobra.OnInitialize(config.Setup)

	// settings is an optional parameter for a settings file (that overrides the defaults)
	RootCmd.PersistentFlags().StringP("settings", "s", "", "settings file with default flag values")
	RootCmd.PersistentFlags().IntP("verbosity", "v", 1, "report detail. 0: counts, 1: length stats, 2: ID lists")
	viper.BindPFlag("settings", RootCmd.PersistentFlags().Lookup("settings"))
	viper.BindPFlag("verbosity", RootCmd.PersistentFlags().Lookup("verbosity"))
}
