package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vk/readmegen/internal/app"
	"github.com/vk/readmegen/internal/cli"
	"github.com/vk/readmegen/internal/hclconf"
)

// main is the entrypoint for the readmegen application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) (err error) {
	appConfig, shouldExit, parseErr := cli.Parse(args, outW)
	if parseErr != nil {
		return parseErr
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical config errors, so we recover here to provide
	// a clean exit message to the user.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked | %v", r)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Instantiate the concrete HCL loader to pass to the app.
	loader := hclconf.NewLoader()
	readmegenApp := app.NewApp(outW, appConfig, loader)

	return readmegenApp.Run(ctx)
}
