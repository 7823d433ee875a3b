// Package help implements the built-in help command, which prints the help
// block of every registered command, itself included.
package help

import (
	"context"
	"fmt"

	"github.com/vk/cmdgrid/internal/command"
)

// Name is the name the help command registers under.
const Name = "help"

// Command prints usage and the definition of every available command.
type Command struct {
	host     string
	commands func() []command.Command
}

// New returns the help command. host names the program in the usage line.
// commands is called on every run, so it may refer to a repository that is
// only built after the help command itself was registered.
func New(host string, commands func() []command.Command) *Command {
	return &Command{host: host, commands: commands}
}

// Definition implements command.Command.
func (c *Command) Definition() command.Definition {
	return command.NewDefinition(Name, "prints help info")
}

// Run implements command.Command.
func (c *Command) Run(_ context.Context, rc *command.RunContext) error {
	fmt.Fprintf(rc.Info, "Usage: %s <command> [parameters]\n", c.host)
	fmt.Fprintln(rc.Info, "Available commands: ")
	fmt.Fprintln(rc.Info)

	for _, cmd := range c.commands() {
		command.PrintHelp(rc.Info, cmd.Definition())
	}
	return nil
}
