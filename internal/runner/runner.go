package runner

import (
	"context"
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"github.com/vk/cmdgrid/internal/command"
	"github.com/vk/cmdgrid/internal/configvars"
	"github.com/vk/cmdgrid/internal/ctxlog"
	"github.com/vk/cmdgrid/internal/output"
	"github.com/vk/cmdgrid/internal/registry"
	"golang.org/x/text/cases"
)

// CommandsSection is the root of the keys scoped to a single command.
const CommandsSection = "Commands"

// CommandPrefix returns the key prefix under which values scoped to the named
// command live, e.g. "Commands:deploy:".
func CommandPrefix(name string) string {
	return CommandsSection + configvars.Separator + name + configvars.Separator
}

// Runner resolves and executes commands. It is immutable after New and safe
// for concurrent use.
type Runner struct {
	names  []string
	lookup map[string][]command.Command
	vars   configvars.Variables
	output output.Output
}

// New builds a Runner over the commands of repo. A nil vars behaves as an
// empty source and a nil out as output.Null().
func New(repo *registry.Repository, vars configvars.Variables, out output.Output) *Runner {
	if vars == nil {
		vars = configvars.Empty
	}
	if out == nil {
		out = output.Null()
	}

	r := &Runner{
		lookup: make(map[string][]command.Command),
		vars:   vars,
		output: out,
	}
	for _, cmd := range repo.All() {
		name := cmd.Definition().Name
		r.names = append(r.names, name)
		key := foldName(name)
		r.lookup[key] = append(r.lookup[key], cmd)
	}
	return r
}

// foldName returns the case-folded form used as lookup key. A Caser keeps
// state, so each call gets its own.
func foldName(name string) string {
	return cases.Fold().String(name)
}

// Find returns the command that a run of name would execute.
func (r *Runner) Find(name string) (command.Command, bool) {
	cmds := r.lookup[foldName(name)]
	if len(cmds) == 0 {
		return nil, false
	}
	return cmds[0], true
}

// Run resolves, validates and executes the named command.
func (r *Runner) Run(ctx context.Context, commandName string) *Result {
	logger := ctxlog.FromContext(ctx).With("command", commandName)
	logger.Debug("Dispatching command.")

	cmd, ok := r.Find(commandName)
	if !ok {
		logger.Warn("Command not found.")
		return Fail(KindNotFound, fmt.Sprintf("Command %s not found. Available commands: [%s]",
			commandName, strings.Join(r.names, ", ")))
	}

	def := cmd.Definition()
	taskVars := configvars.Merge(
		configvars.WithPrefix(r.vars, CommandPrefix(def.Name)),
		r.vars,
	)

	infoLog, errorLog := &output.SafeBuffer{}, &output.SafeBuffer{}
	info := io.MultiWriter(infoLog, r.output.InfoWriter())
	errW := io.MultiWriter(errorLog, r.output.ErrorWriter())
	finish := func(res *Result) *Result {
		res.InfoLog = infoLog.String()
		res.ErrorLog = errorLog.String()
		return res
	}

	if missing := def.MissingRequired(taskVars); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, p := range missing {
			names[i] = "<" + p.Name + ">"
		}
		fmt.Fprintf(errW, "Missing required parameters %s\n", strings.Join(names, ", "))
		command.PrintHelp(info, def)
		logger.Warn("Missing required parameters.", "missing", names)
		return finish(Fail(KindValidation, ""))
	}

	rc := command.NewRunContext(configvars.Merge(taskVars, def.Defaults()), info, errW)
	if err := execute(ctx, cmd, rc); err != nil {
		fmt.Fprintln(info, "Exception occurred:")
		fmt.Fprintln(info, err.Error())
		logger.Error("Command failed.", "error", err)
		return finish(Fail(KindExecution, ""))
	}

	logger.Debug("Command finished.")
	return finish(Ok())
}

func execute(ctx context.Context, cmd command.Command, rc *command.RunContext) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &PanicError{Value: p, Stack: debug.Stack()}
		}
	}()
	return cmd.Run(ctx, rc)
}
