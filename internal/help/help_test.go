package help

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/cmdgrid/internal/command"
	"github.com/vk/cmdgrid/internal/configvars"
)

type stub struct{ def command.Definition }

func (s stub) Definition() command.Definition { return s.def }
func (s stub) Run(context.Context, *command.RunContext) error { return nil }

func TestHelp_PrintsEveryCommandIncludingItself(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var cmds []command.Command
	h := New("tool", func() []command.Command { return cmds })
	cmds = []command.Command{
		h,
		stub{def: command.NewDefinition("deploy", "ships it", command.Optional("region", "eu", "where to"))},
	}
	var info bytes.Buffer

	// --- Act ---
	err := h.Run(context.Background(), command.NewRunContext(configvars.Empty, &info, &bytes.Buffer{}))

	// --- Assert ---
	require.NoError(t, err)
	want := "" +
		"Usage: tool <command> [parameters]\n" +
		"Available commands: \n" +
		"\n" +
		"  help:\n" +
		"    prints help info\n" +
		"  Command Parameters:\n" +
		"\n" +
		"  deploy:\n" +
		"    ships it\n" +
		"  Command Parameters:\n" +
		"    <region>:\n" +
		"      where to\n" +
		"      Optional, DefaultValue: eu\n" +
		"\n"
	require.Equal(t, want, info.String())
}

func TestHelp_Definition(t *testing.T) {
	t.Parallel()

	def := New("tool", nil).Definition()

	require.Equal(t, Name, def.Name)
	require.Equal(t, "prints help info", def.Help)
	require.Empty(t, def.Parameters)
}
