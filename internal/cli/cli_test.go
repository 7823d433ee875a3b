package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/cmdgrid/internal/configvars"
)

func TestParse_CommandAndAssignments(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"--set", "a=from-flag", "-s", "b=from-flag", "print", "a=from-arg", "Commands:print:message=hi"}
	out := &bytes.Buffer{}

	// --- Act ---
	inv, shouldExit, err := Parse(args, nil, out)

	// --- Assert ---
	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, "print", inv.Command)
	require.Equal(t, configvars.Map{
		"a":                      "from-arg",
		"b":                      "from-flag",
		"Commands:print:message": "hi",
	}, inv.Vars)
	require.Equal(t, "info", inv.Config.LogLevel)
	require.Equal(t, "text", inv.Config.LogFormat)
	require.Equal(t, "cmdgrid", inv.Config.Host)
}

func TestParse_DefaultsToHelp(t *testing.T) {
	t.Parallel()

	inv, shouldExit, err := Parse(nil, nil, &bytes.Buffer{})

	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, "help", inv.Command)
	require.Empty(t, inv.Vars)
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	inv, shouldExit, err := Parse([]string{"-h"}, nil, out)

	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Nil(t, inv)
	require.Contains(t, out.String(), "Usage:")
	require.Contains(t, out.String(), "--log-level")
}

func TestParse_EnvironmentAndFlagsCombine(t *testing.T) {
	t.Parallel()

	environ := []string{
		"CMDGRID_LOG_LEVEL=debug",
		"CMDGRID_LOG_FORMAT=json",
		"CMDGRID_CONFIG=base.hcl",
	}
	args := []string{"--log-level", "WARN", "-c", "extra.yaml", "--config", "conf.d", "env"}

	inv, _, err := Parse(args, environ, &bytes.Buffer{})

	require.NoError(t, err)
	require.Equal(t, "warn", inv.Config.LogLevel, "flags override the environment")
	require.Equal(t, "json", inv.Config.LogFormat, "environment applies when no flag is given")
	require.Equal(t, []string{"base.hcl", "extra.yaml", "conf.d"}, inv.Config.ConfigPaths)
	require.Equal(t, "env", inv.Command)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		args    []string
		environ []string
		want    string
	}{
		{name: "unknown flag", args: []string{"--this-is-not-a-valid-flag"}, want: "unknown flag: --this-is-not-a-valid-flag"},
		{name: "bad log level", args: []string{"--log-level", "loud"}, want: "invalid log level"},
		{name: "bad log format", args: []string{"--log-format", "xml"}, want: "invalid log format"},
		{name: "bad env log level", environ: []string{"CMDGRID_LOG_LEVEL=loud"}, want: "invalid log level"},
		{name: "argument without equals", args: []string{"print", "oops"}, want: "expected key=value"},
		{name: "bad --set", args: []string{"--set", "=x"}, want: "empty key"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := Parse(tc.args, tc.environ, &bytes.Buffer{})

			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr), "expected ExitError, got %v", err)
			require.Equal(t, 2, exitErr.Code)
			require.Contains(t, exitErr.Message, tc.want)
		})
	}
}
