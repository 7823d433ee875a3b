package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/vk/cmdgrid/internal/command"
	"github.com/vk/cmdgrid/internal/configvars"
	"github.com/vk/cmdgrid/internal/ctxlog"
	"github.com/vk/cmdgrid/internal/help"
	"github.com/vk/cmdgrid/internal/output"
	"github.com/vk/cmdgrid/internal/registry"
	"github.com/vk/cmdgrid/internal/runner"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	logger *slog.Logger
	config *Config
	repo   *registry.Repository
	runner *runner.Runner
}

// NewApp is the constructor for the main application. Logs go to logW; command
// output goes to out. When no modules are given the core modules are used.
// The help command is always registered first.
func NewApp(logW io.Writer, cfg *Config, vars configvars.Variables, out output.Output, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	a := &App{logger: logger, config: cfg}

	reg := registry.New()
	reg.Register(help.New(cfg.Host, func() []command.Command { return a.repo.All() }))
	if len(modules) == 0 {
		modules = coreModules
	}
	reg.RegisterModules(modules...)
	logger.Debug("All modules registered.", "count", len(modules))

	a.repo = reg.Repository()
	a.runner = runner.New(a.repo, vars, out)
	logger.Debug("Runner ready.", "commands", a.repo.Names())

	return a
}

// Repository returns the registered commands. This is primarily for testing.
func (a *App) Repository() *registry.Repository {
	return a.repo
}

// Runner returns the application's command runner.
func (a *App) Runner() *runner.Runner {
	return a.runner
}

// Logger returns the application's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Run dispatches the named command.
func (a *App) Run(ctx context.Context, commandName string) *runner.Result {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	res := a.runner.Run(ctx, commandName)
	a.logger.Debug("Run complete.", "command", commandName, "succeed", res.Succeed, "kind", res.Kind.String())
	return res
}
