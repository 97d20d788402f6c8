package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/framejump/internal/actions"
	"github.com/vk/framejump/internal/app"
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

// Parse processes command-line arguments. It returns a populated app config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("framejump", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
FrameJump - review-panel actions against a Unity-style editor.

Usage:
  framejump [options] ENTITY_PATH

Arguments:
  ENTITY_PATH
    Path to a JSON file holding the entity record to enumerate actions for.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "framejump.hcl", "Path to the panel configuration file.")
	executeFlag := flagSet.String("execute", "", "Execute the named action instead of listing.")
	uiAreaFlag := flagSet.String("ui-area", actions.AreaMain, "UI area hint passed to the hooks. Options: 'main' or 'details'.")
	actionsFlag := flagSet.String("actions", "", "Comma-separated action names to request, overriding the configured mapping.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 {
		slog.Debug("No entity path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "expected exactly one ENTITY_PATH argument"}
	}

	uiArea := strings.ToLower(*uiAreaFlag)
	if uiArea != actions.AreaMain && uiArea != actions.AreaDetails {
		return nil, false, &ExitError{Code: 2, Message: "invalid ui-area: must be 'main' or 'details'"}
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

	var requested []string
	if *actionsFlag != "" {
		for _, name := range strings.Split(*actionsFlag, ",") {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				requested = append(requested, trimmed)
			}
		}
	}

	return &app.Config{
		ConfigPath: *configFlag,
		EntityPath: flagSet.Arg(0),
		Execute:    *executeFlag,
		UIArea:     uiArea,
		Actions:    requested,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	}, false, nil
}
