package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/terminal-bench/payledger/internal/csvio"
	"github.com/terminal-bench/payledger/internal/engine"
	"github.com/terminal-bench/payledger/internal/ledger"
)

func main() {
	if len(os.Args) != 2 {
		printUsage()
		os.Exit(1)
	}

	logger := newLogger()
	defer logger.Sync()

	if err := run(os.Args[1], logger); err != nil {
		logger.Error("batch failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(path string, logger *zap.Logger) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	reader, err := csvio.NewReader(file)
	if err != nil {
		return err
	}

	book := ledger.New()
	if err := engine.New(book, logger).Run(context.Background(), reader); err != nil {
		return err
	}

	return csvio.WriteAccounts(os.Stdout, book.Accounts())
}

// newLogger builds the diagnostic logger. Everything goes to stderr so the
// account report on stdout stays machine-readable.
func newLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true

	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}

func printUsage() {
	fmt.Println("Usage: payledger <csv file>")
	fmt.Println()
	fmt.Println("The file must be a valid csv with the columns type,client,tx,amount")
}
