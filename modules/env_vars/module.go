package env_vars

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/vk/cmdgrid/internal/command"
	"github.com/vk/cmdgrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Command is the 'env' command. It reports how a set of keys resolve for
// this command, which makes it handy for checking layered configuration.
type Command struct{}

// Definition implements command.Command.
func (Command) Definition() command.Definition {
	return command.NewDefinition("env", "shows the resolved value of configuration keys",
		command.Required("keys", "comma-separated list of keys to show"),
		command.Optional("missing", "(null)", "text shown for keys without a value"),
	)
}

// Run implements command.Command.
func (Command) Run(_ context.Context, rc *command.RunContext) error {
	var keys []string
	for _, k := range strings.Split(rc.Var("keys"), ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return fmt.Errorf("no keys given")
	}

	// Sort keys for consistent output
	sort.Strings(keys)

	for _, k := range keys {
		v, ok := rc.Vars.Get(k)
		if !ok {
			fmt.Fprintf(rc.Info, "%s = %s\n", k, rc.Var("missing"))
			continue
		}
		fmt.Fprintf(rc.Info, "%s = %q\n", k, v)
	}
	return nil
}

// Register registers the command with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(Command{})
}
