package testutil

import (
	"github.com/vk/cmdgrid/internal/command"
	"github.com/vk/cmdgrid/internal/registry"
)

// SimpleModule is a test helper for easily creating a mock module that
// registers a fixed list of commands.
type SimpleModule struct {
	Commands []command.Command
}

// Register implements the registry.Module interface.
func (m *SimpleModule) Register(r *registry.Registry) {
	for _, c := range m.Commands {
		r.Register(c)
	}
}

// Module wraps commands in a SimpleModule.
func Module(cmds ...command.Command) *SimpleModule {
	return &SimpleModule{Commands: cmds}
}
