package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jward/bracken"
	"github.com/spf13/cobra"
)

var (
	flagOffset   int
	flagLine     int
	flagCol      int
	flagExplicit bool
	flagLocals   bool
)

var completeCmd = &cobra.Command{
	Use:   "complete <file>",
	Short: "List completion candidates at a position",
	Long:  "Parses the file and prints the candidates visible at the given position, innermost scope first, followed by builtin and snippet candidates unless --locals-only is set.",
	Args:  cobra.ExactArgs(1),
	RunE:  runComplete,
}

func init() {
	completeCmd.Flags().IntVar(&flagOffset, "offset", -1, "byte offset of the cursor")
	completeCmd.Flags().IntVar(&flagLine, "line", 0, "1-based cursor line (alternative to --offset)")
	completeCmd.Flags().IntVar(&flagCol, "col", 0, "1-based cursor column in bytes (used with --line)")
	completeCmd.Flags().BoolVar(&flagExplicit, "explicit", false, "treat the request as explicitly user-invoked")
	completeCmd.Flags().BoolVar(&flagLocals, "locals-only", false, "omit builtin and snippet candidates")
}

func runComplete(cmd *cobra.Command, args []string) error {
	doc, src, err := openDocument(args[0])
	if err != nil {
		return err
	}
	defer doc.Close()

	offset, err := resolveOffset(src)
	if err != nil {
		return err
	}

	req := bracken.Request{Offset: offset, Explicit: flagExplicit}
	var res *bracken.Result
	if flagLocals {
		res = doc.Complete(req)
	} else {
		res = doc.CompleteAll(req)
	}

	if res == nil {
		if flagFormat == "text" {
			fmt.Fprintln(os.Stderr, "no completions")
			return nil
		}
		return outputJSON(nil)
	}
	if flagFormat == "text" {
		formatResultText(os.Stdout, res)
		return nil
	}
	return outputJSON(res)
}

// openDocument reads the file and builds a PHP Document, extended with the
// --tables file when given.
func openDocument(path string) (*bracken.Document, []byte, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}

	lang := bracken.PHP()
	if flagTables != "" {
		tables, err := bracken.LoadTablesFile(flagTables)
		if err != nil {
			return nil, nil, err
		}
		lang = tables.Extend(lang)
	}

	doc, err := bracken.NewDocument(lang, src)
	if err != nil {
		return nil, nil, err
	}
	return doc, src, nil
}

// resolveOffset turns --offset or --line/--col into a byte offset.
func resolveOffset(src []byte) (uint, error) {
	if flagOffset >= 0 {
		if flagOffset > len(src) {
			return 0, fmt.Errorf("--offset %d past end of %d-byte file", flagOffset, len(src))
		}
		return uint(flagOffset), nil
	}
	if flagLine < 1 {
		return 0, fmt.Errorf("either --offset or --line/--col is required")
	}

	start := 0
	for line := 1; line < flagLine; line++ {
		i := bytes.IndexByte(src[start:], '\n')
		if i < 0 {
			return 0, fmt.Errorf("--line %d past end of file", flagLine)
		}
		start += i + 1
	}
	col := flagCol
	if col < 1 {
		col = 1
	}
	lineEnd := len(src)
	if i := bytes.IndexByte(src[start:], '\n'); i >= 0 {
		lineEnd = start + i
	}
	off := start + col - 1
	if off > lineEnd {
		off = lineEnd
	}
	return uint(off), nil
}
