package main

import (
	"os"

	"github.com/spf13/cobra"
)

var scopesCmd = &cobra.Command{
	Use:   "scopes <file>",
	Short: "Dump every scope in a file with its candidates",
	Long:  "Parses the file and prints each scope-introducing node in document order together with the candidates defined directly inside it. Useful for debugging extractor coverage.",
	Args:  cobra.ExactArgs(1),
	RunE:  runScopes,
}

func runScopes(cmd *cobra.Command, args []string) error {
	doc, _, err := openDocument(args[0])
	if err != nil {
		return err
	}
	defer doc.Close()

	scopes := doc.ScopeTree()
	if flagFormat == "text" {
		formatScopesText(os.Stdout, scopes)
		return nil
	}
	return outputJSON(scopes)
}
