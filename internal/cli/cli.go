package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/vk/cmdgrid/internal/app"
	"github.com/vk/cmdgrid/internal/configvars"
	"github.com/vk/cmdgrid/internal/help"
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

// Invocation is everything a single process run needs.
type Invocation struct {
	Config  *app.Config
	Command string
	// Vars holds --set assignments and key=value arguments given after the command.
	Vars configvars.Map
}

// Parse processes command-line arguments on top of the settings found in
// environ. It returns the Invocation, a boolean indicating if the program
// should exit cleanly, or an ExitError.
func Parse(args []string, environ []string, output io.Writer) (*Invocation, bool, error) {
	slog.Debug("CLI parser started.")

	cfg, err := app.ConfigFromEnv(environMap(environ))
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	flagSet := pflag.NewFlagSet(cfg.Host, pflag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprintf(output, `
cmdgrid - run a registered command with layered configuration.

Usage:
  %s [options] [COMMAND] [key=value ...]

Arguments:
  COMMAND
    Name of the command to run (case-insensitive). Defaults to "help".
  key=value
    Variables for the command. Use Commands:<command>:<key> to scope a value.

Options:
`, cfg.Host)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.StringArrayP("config", "c", nil, "Config file or directory (.hcl, .yaml, .yml, .json). Repeatable; later files win.")
	setFlag := flagSet.StringArrayP("set", "s", nil, "Set a variable as key=value. Repeatable.")
	logFormatFlag := flagSet.String("log-format", cfg.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", cfg.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	hostFlag := flagSet.String("host", cfg.Host, "Program name shown in usage lines.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.Changed("config") {
		cfg.ConfigPaths = append(cfg.ConfigPaths, *configFlag...)
	}
	cfg.LogFormat = strings.ToLower(*logFormatFlag)
	cfg.LogLevel = strings.ToLower(*logLevelFlag)
	cfg.Host = *hostFlag

	cfg, err = app.NewConfig(*cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	commandName := help.Name
	positional := flagSet.Args()
	if len(positional) > 0 {
		commandName = positional[0]
		positional = positional[1:]
	}
	slog.Debug("Command determined.", "command", commandName)

	// --set comes first so that arguments after the command override it.
	vars, err := configvars.ParseAssignments(append(append([]string{}, *setFlag...), positional...))
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return &Invocation{Config: cfg, Command: commandName, Vars: vars}, false, nil
}

func environMap(environ []string) map[string]string {
	out := make(map[string]string, len(environ))
	for _, e := range environ {
		if k, v, ok := strings.Cut(e, "="); ok {
			out[k] = v
		}
	}
	return out
}
