package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/readmegen/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("readmegen", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
readmegen - Generates a GitHub profile README and commits it back.

Usage:
  readmegen [options] [CONFIG_PATH]

Arguments:
  CONFIG_PATH
    Path to a single .hcl file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to the config file or directory.")
	cFlag := flagSet.String("c", "", "Path to the config file or directory (shorthand).")
	outFlag := flagSet.String("out", "", "Override the output path from the config.")
	dryRunFlag := flagSet.Bool("dry-run", false, "Render to stdout without writing or publishing.")
	daemonFlag := flagSet.Bool("daemon", false, "Keep running and regenerate on the configured cron schedule.")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health check server. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	workersFlag := flagSet.Int("workers", 4, "Number of concurrent workers for API fan-out.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *configFlag != "" {
		path = *configFlag
	} else if *cFlag != "" {
		path = *cFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Config path determined.", "path", path)

	if path == "" {
		slog.Debug("No config path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ConfigPath:      path,
		OutputPath:      *outFlag,
		DryRun:          *dryRunFlag,
		Daemon:          *daemonFlag,
		HealthcheckPort: *healthPortFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
		WorkerCount:     *workersFlag,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
