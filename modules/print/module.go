package print

import (
	"context"
	"fmt"

	"github.com/vk/cmdgrid/internal/command"
	"github.com/vk/cmdgrid/internal/ctxlog"
	"github.com/vk/cmdgrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Command is the 'print' command: it writes a message to the info sink.
type Command struct{}

// Definition implements command.Command.
func (Command) Definition() command.Definition {
	return command.NewDefinition("print", "prints a message",
		command.Required("message", "text to print"),
		command.Optional("prefix", "", "text written before the message"),
	)
}

// Run implements command.Command.
func (Command) Run(ctx context.Context, rc *command.RunContext) error {
	ctxlog.FromContext(ctx).Debug("Printing message.")

	_, err := fmt.Fprintf(rc.Info, "%s%s\n", rc.Var("prefix"), rc.Var("message"))
	return err
}

// Register registers the command with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(Command{})
}
