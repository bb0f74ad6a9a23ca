package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/genricoloni/clickloop/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLogFile = "data/logs/clickloop.log"

func main() {
	// Handle graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	os.Exit(execute(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit code
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	c := &cli{settings: Settings{Out: stdout}, stderr: stderr}
	root := c.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	c.closeLogger()
	return exitCode(err, stderr)
}

// exitCode maps the outcome to a status: cancellation by the user is not a failure
func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return 0
	case domain.IsCancellation(err):
		fmt.Fprintln(stderr, "Interrupted by user")
		return 0
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}

// newLogger builds a logger writing human readable lines to console and JSON
// lines to file. An empty file disables the file output.
func newLogger(level, file string, console io.Writer) (*zap.Logger, func(), error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "invalid log level %q", level)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	consoleCfg := encCfg
	consoleCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.Lock(zapcore.AddSync(console)), lvl),
	}

	closeFile := func() {}
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
			return nil, nil, errors.Wrap(err, "failed to create log directory")
		}
		sink, closeSink, err := zap.Open(file)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "failed to open log file %s", file)
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), sink, lvl))
		closeFile = closeSink
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	cleanup := func() {
		_ = logger.Sync()
		closeFile()
	}
	return logger, cleanup, nil
}
