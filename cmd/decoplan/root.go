package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "decoplan",
	Short: "Bühlmann ZH-L16/GF decompression planner",
	Long: `Decoplan computes staged decompression schedules for square dive
profiles using the Bühlmann ZH-L16 model (variants B and C) with
Gradient Factor conservatism, keeps a local SQLite logbook of saved
plans, and bundles a few field physiology calculators.

Decoplan is a research and education tool. It is not a dive computer
and must not be used to conduct actual dives.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("db", "", "logbook database path (default $HOME/.decoplan/dives.db)")
	_ = viper.BindPFlag("db", rootCmd.PersistentFlags().Lookup("db"))
}

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.decoplan")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetEnvPrefix("DECOPLAN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// Config file is optional.
	_ = viper.ReadInConfig()
}
