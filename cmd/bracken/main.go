package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFormat string
	flagTables string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "bracken",
	Short:         "Local-scope completion for tree-sitter syntax trees",
	Long:          "Bracken parses a source file with tree-sitter and reports the completion candidates visible at a position: locally defined variables, functions and classes from every enclosing scope, plus builtin and snippet tables.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return validateFormat(flagFormat)
	},
	// No Run — prints help by default.
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "json", "output format: json|text")
	rootCmd.PersistentFlags().StringVar(&flagTables, "tables", "", "YAML file with extra builtin/snippet candidates")

	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(scopesCmd)
}

func validateFormat(format string) error {
	switch format {
	case "json", "text":
		return nil
	default:
		return fmt.Errorf("invalid format %q (want json or text)", format)
	}
}
