package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nsxbet/sql-advisor/pkg/logger"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sql-advisor",
	Short: "A heuristic SQL query optimization advisor",
	Long: `SQL Advisor analyzes SQL queries and reports optimization suggestions,
a complexity score, execution-plan tips and dialect-compatibility warnings.

It supports MySQL, PostgreSQL, Oracle and SQL Server dialects. The checks
are pattern-based heuristics, not a query planner: they point at likely
problems without computing cost estimates.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.sql-advisor.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable verbose output")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug output")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".sql-advisor" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".sql-advisor")
	}

	viper.SetEnvPrefix("SQL_ADVISOR")
	viper.AutomaticEnv() // read in environment variables that match

	// A missing config file is fine; flags and defaults cover everything.
	_ = viper.ReadInConfig()

	setupLogging()
}

func setupLogging() {
	level := slog.LevelWarn
	if viper.GetBool("debug") {
		level = slog.LevelDebug
	} else if viper.GetBool("verbose") {
		level = slog.LevelInfo
	}
	slog.SetDefault(logger.NewPretty(level).GetSlogLogger())
}
