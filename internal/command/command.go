package command

import (
	"context"
	"io"

	"github.com/vk/cmdgrid/internal/configvars"
)

// Command is a named unit of work with a declared parameter schema.
type Command interface {
	// Definition describes the command. It must be pure: repeated calls return
	// equal values and have no side effects.
	Definition() Definition

	// Run executes the command. A returned error, or a panic, marks the run as failed.
	Run(ctx context.Context, rc *RunContext) error
}

// RunContext is what a single command invocation sees.
type RunContext struct {
	// Vars resolves parameters: command-scoped values first, then global
	// values, then the declared defaults.
	Vars  configvars.Variables
	Info  io.Writer
	Error io.Writer
}

// NewRunContext returns a RunContext bound to vars and the two writers.
func NewRunContext(vars configvars.Variables, info, errW io.Writer) *RunContext {
	return &RunContext{Vars: vars, Info: info, Error: errW}
}

// Var returns the resolved value of a parameter, or "" when it has none.
func (rc *RunContext) Var(name string) string {
	v, _ := rc.Vars.Get(name)
	return v
}
