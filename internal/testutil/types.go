// Package testutil holds helpers shared by the package tests.
package testutil

import (
	"context"

	"github.com/vk/cmdgrid/internal/command"
)

// SimpleCommand is a command assembled from a definition and a function.
// A nil RunFn does nothing and succeeds.
type SimpleCommand struct {
	Def   command.Definition
	RunFn func(ctx context.Context, rc *command.RunContext) error
}

// Definition implements command.Command.
func (c *SimpleCommand) Definition() command.Definition {
	return c.Def
}

// Run implements command.Command.
func (c *SimpleCommand) Run(ctx context.Context, rc *command.RunContext) error {
	if c.RunFn == nil {
		return nil
	}
	return c.RunFn(ctx, rc)
}

// CaptureVars returns a SimpleCommand that records the value every listed key
// resolves to inside the run, storing it in into.
func CaptureVars(def command.Definition, into map[string]string, keys ...string) *SimpleCommand {
	return &SimpleCommand{
		Def: def,
		RunFn: func(_ context.Context, rc *command.RunContext) error {
			for _, k := range keys {
				if v, ok := rc.Vars.Get(k); ok {
					into[k] = v
				}
			}
			return nil
		},
	}
}
