package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/cmdgrid/internal/app"
	"github.com/vk/cmdgrid/internal/cli"
	"github.com/vk/cmdgrid/internal/output"
)

// main is the entrypoint for the cmdgrid application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:], os.Environ()); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(stdout, stderr io.Writer, args, environ []string) error {
	inv, shouldExit, err := cli.Parse(args, environ, stdout)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	ctx := context.Background()
	vars, err := app.LoadVariables(ctx, inv.Config, inv.Vars, environ)
	if err != nil {
		return err
	}

	cmdApp := app.NewApp(stderr, inv.Config, vars, output.Console(stdout, stderr))
	res := cmdApp.Run(ctx, inv.Command)
	if !res.Succeed {
		return &cli.ExitError{Code: 1, Message: res.Error}
	}
	return nil
}
