package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/jward/bracken"
)

// outputJSON writes v as indented JSON to stdout.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// formatResultText prints a completion result as aligned columns.
func formatResultText(w io.Writer, res *bracken.Result) {
	fmt.Fprintf(w, "replace [%d, %d)\n", res.From, res.To)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tDETAIL")
	for _, c := range res.Candidates {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Name, c.Kind, c.Detail)
	}
	tw.Flush()
}

// formatScopesText prints the scope tree as aligned columns.
func formatScopesText(w io.Writer, scopes []bracken.ScopeInfo) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tFROM\tTO\tCANDIDATES")
	for _, s := range scopes {
		names := ""
		for i, c := range s.Candidates {
			if i > 0 {
				names += " "
			}
			names += c.Name
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", s.Kind, s.From, s.To, names)
	}
	tw.Flush()
}
