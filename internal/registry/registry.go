package registry

import (
	"fmt"
	"log/slog"

	"github.com/vk/cmdgrid/internal/command"
)

// Module is the interface that all command modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// ModuleFunc adapts a plain function to the Module interface.
type ModuleFunc func(r *Registry)

// Register implements Module.
func (f ModuleFunc) Register(r *Registry) { f(r) }

// Registry accumulates commands in registration order.
type Registry struct {
	commands []command.Command
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{}
}

// Register appends cmd. Names are not deduplicated here.
// It panics if cmd is nil or its definition has no name.
func (r *Registry) Register(cmd command.Command) {
	if cmd == nil {
		panic("registry: nil command")
	}
	name := cmd.Definition().Name
	if name == "" {
		panic(fmt.Sprintf("registry: command %T has an empty name", cmd))
	}
	slog.Debug("Registering command.", "name", name)
	r.commands = append(r.commands, cmd)
}

// RegisterModules lets every module register its commands, in order.
func (r *Registry) RegisterModules(modules ...Module) {
	for _, m := range modules {
		m.Register(r)
	}
}

// Repository freezes the commands registered so far.
func (r *Registry) Repository() *Repository {
	return NewRepository(r.commands...)
}
