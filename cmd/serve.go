package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nsxbet/sql-advisor/pkg/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP analysis API",
	Long: `Start an HTTP server exposing the analyzer.

POST /analyze accepts {"query": "...", "database_type": "mysql"} and
returns the full analysis report; GET /health reports liveness.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8000", "listen address")
	_ = viper.BindPFlag("addr", serveCmd.Flags().Lookup("addr"))
}

func runServe(_ *cobra.Command, _ []string) error {
	return server.New().ListenAndServe(viper.GetString("addr"))
}
