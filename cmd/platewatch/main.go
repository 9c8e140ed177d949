package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jfalkner/platewatch/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	return cli.NewRootCmd(logger).Execute()
}

// newLogger builds the process logger. The TUI owns stdout, so debug
// logging goes to the file named by PLATEWATCH_LOG, or nowhere.
func newLogger() (*slog.Logger, func(), error) {
	path := os.Getenv("PLATEWATCH_LOG")
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}
