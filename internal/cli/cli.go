package cli

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vk/unitgridgo/internal/app"
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
	flagSet := flag.NewFlagSet("unitgridgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
unitgridgo - unit conversion over a user-defined relation graph.

Usage:
  unitgridgo [options] <value> <from_unit> <to_unit>

Run without arguments to list the allowed units from the active
definition file.

Options:
`)
		flagSet.PrintDefaults()
	}

	defsFlag := flagSet.String("defs", "", "Path to the unit definition file.")
	fFlag := flagSet.String("f", "", "Path to the unit definition file (shorthand).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	defsPath := *defsFlag
	if defsPath == "" {
		defsPath = *fFlag
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

	cfg := app.Config{
		DefsPath:  defsPath,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	}

	// Fewer than three positional arguments means "list the units".
	// Arguments beyond the third are ignored, as the original tool did.
	if flagSet.NArg() < 3 {
		cfg.List = true
	} else {
		value, err := strconv.ParseFloat(flagSet.Arg(0), 64)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid value %q: not a number", flagSet.Arg(0))}
		}
		cfg.Value = value
		cfg.FromUnit = flagSet.Arg(1)
		cfg.ToUnit = flagSet.Arg(2)
	}

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
