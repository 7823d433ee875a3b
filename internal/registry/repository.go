package registry

import "github.com/vk/cmdgrid/internal/command"

// Repository is an immutable, ordered collection of commands.
type Repository struct {
	commands []command.Command
}

// NewRepository copies commands into a new Repository, keeping their order.
func NewRepository(commands ...command.Command) *Repository {
	cp := make([]command.Command, len(commands))
	copy(cp, commands)
	return &Repository{commands: cp}
}

// All returns the commands in registration order. The returned slice is a
// copy and may be modified by the caller.
func (r *Repository) All() []command.Command {
	cp := make([]command.Command, len(r.commands))
	copy(cp, r.commands)
	return cp
}

// Len returns the number of commands.
func (r *Repository) Len() int {
	return len(r.commands)
}

// Names returns every command name in registration order.
func (r *Repository) Names() []string {
	names := make([]string, len(r.commands))
	for i, c := range r.commands {
		names[i] = c.Definition().Name
	}
	return names
}
