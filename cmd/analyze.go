package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/nsxbet/sql-advisor/pkg/analyzer"
	"github.com/nsxbet/sql-advisor/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [flags] <sql-file>",
	Short: "Analyze a SQL query and report optimization suggestions",
	Long: `Analyze a SQL query against the optimization detectors for the chosen
dialect and print the findings, syntax issues, complexity score and
execution-plan tips.

The query is read from the given file, from stdin when the argument is "-",
or from the --query flag.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("query", "q", "", "SQL query text (alternative to a file argument)")
	analyzeCmd.Flags().StringP("dialect", "d", "mysql", "database dialect (mysql, postgresql, oracle, sqlserver)")
	analyzeCmd.Flags().StringP("output", "o", "text", "output format (text, json, yaml)")
	analyzeCmd.Flags().StringP("rules", "r", "", "path to detector configuration file")
	analyzeCmd.Flags().Bool("fail-on-high", false, "exit with non-zero code if high-severity findings exist")

	_ = viper.BindPFlag("dialect", analyzeCmd.Flags().Lookup("dialect"))
	_ = viper.BindPFlag("output", analyzeCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("rules", analyzeCmd.Flags().Lookup("rules"))
	_ = viper.BindPFlag("fail-on-high", analyzeCmd.Flags().Lookup("fail-on-high"))
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	query, err := readQuery(cmd, args)
	if err != nil {
		return err
	}

	a := analyzer.NewForName(viper.GetString("dialect"))
	if rulesFile := viper.GetString("rules"); rulesFile != "" {
		if err := a.WithConfig(rulesFile); err != nil {
			return err
		}
	}

	report, err := a.Analyze(cmd.Context(), query)
	if err != nil {
		return err
	}

	if err := printReport(cmd.OutOrStdout(), report, viper.GetString("output")); err != nil {
		return err
	}

	if viper.GetBool("fail-on-high") && report.HasHighSeverity() {
		return errors.New("high-severity findings present")
	}
	return nil
}

func readQuery(cmd *cobra.Command, args []string) (string, error) {
	if q, _ := cmd.Flags().GetString("query"); q != "" {
		return q, nil
	}
	if len(args) == 0 {
		return "", errors.New("provide a SQL file argument, \"-\" for stdin, or --query")
	}
	if args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", errors.Wrap(err, "failed to read stdin")
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", errors.Wrapf(err, "failed to read SQL file: %s", args[0])
	}
	return string(data), nil
}

func printReport(out io.Writer, report *types.Report, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		return yaml.NewEncoder(out).Encode(report)
	case "text":
		printTextReport(out, report)
		return nil
	default:
		return errors.Errorf("unknown output format: %s", format)
	}
}

func printTextReport(out io.Writer, report *types.Report) {
	fmt.Fprintf(out, "Dialect: %s\n", report.Dialect)
	fmt.Fprintf(out, "Complexity: %d/100\n\n", report.ComplexityScore)

	if len(report.SyntaxIssues) > 0 {
		fmt.Fprintln(out, color.RedString("Syntax issues:"))
		for _, issue := range report.SyntaxIssues {
			fmt.Fprintf(out, "  %s %s\n", color.RedString("✘"), issue)
		}
		fmt.Fprintln(out)
	}

	if len(report.Findings) == 0 {
		fmt.Fprintln(out, color.GreenString("✔ No optimization findings"))
	}
	for _, f := range report.Findings {
		fmt.Fprintf(out, "[%s] %s (%s)\n", severityColor(f.Severity).Sprint(strings.ToUpper(string(f.Severity))), f.Title, f.Category)
		fmt.Fprintf(out, "  %s\n", f.Description)
		fmt.Fprintf(out, "  Suggestion: %s\n", f.Suggestion)
		if f.Example != "" {
			fmt.Fprintf(out, "  Example: %s\n", color.CyanString(f.Example))
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "Execution plan tips:")
	for _, tip := range report.Tips {
		fmt.Fprintf(out, "  - %s\n", tip)
	}
}

func severityColor(s types.Severity) *color.Color {
	switch s {
	case types.SeverityHigh:
		return color.New(color.FgRed, color.Bold)
	case types.SeverityMedium:
		return color.New(color.FgYellow, color.Bold)
	case types.SeverityLow:
		return color.New(color.FgBlue, color.Bold)
	default:
		return color.New(color.FgWhite)
	}
}
