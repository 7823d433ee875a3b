package command

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrintHelp(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	PrintHelp(&buf, testDefinition())

	want := "" +
		"  Test1:\n" +
		"    does some amazing stuff\n" +
		"  Command Parameters:\n" +
		"    <p1>:\n" +
		"      some required parameter\n" +
		"      Required!, DefaultValue: <empty>\n" +
		"    <p2>:\n" +
		"      optional value\n" +
		"      Optional, DefaultValue: v2\n" +
		"\n"
	require.Equal(t, want, buf.String())
}

func TestPrintHelp_NoParameters(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	PrintHelp(&buf, NewDefinition("bare", "nothing to declare"))

	require.Equal(t, "  bare:\n    nothing to declare\n  Command Parameters:\n\n", buf.String())
}
