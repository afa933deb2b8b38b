// Command bracken-lsp serves bracken completions over the Language Server
// Protocol on stdin/stdout. It implements document sync (incremental) and
// textDocument/completion; everything else is politely declined.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sourcegraph/jsonrpc2"
	"go.uber.org/zap"
)

var version = "dev"

func main() {
	flagTables := flag.String("tables", "", "YAML file with extra builtin/snippet candidates")
	flagDebug := flag.Bool("debug", false, "log at debug level")
	flag.Parse()

	// stdout carries the protocol; all logging goes to stderr.
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if *flagDebug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "bracken-lsp: %s\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	srv, err := newServer(logger, *flagTables)
	if err != nil {
		logger.Fatal("startup", zap.Error(err))
	}

	stream := jsonrpc2.NewBufferedStream(stdrwc{}, jsonrpc2.VSCodeObjectCodec{})
	conn := jsonrpc2.NewConn(context.Background(), stream, jsonrpc2.HandlerWithError(srv.handle))
	logger.Info("bracken-lsp listening on stdio", zap.String("version", version))
	<-conn.DisconnectNotify()
	srv.close()
	logger.Info("connection closed")
}

// stdrwc adapts stdin/stdout into the io.ReadWriteCloser jsonrpc2 wants.
type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdrwc) Write(p []byte) (int, error) { return os.Stdout.Write(p) }

func (stdrwc) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}
