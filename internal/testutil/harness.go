package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/cmdgrid/internal/app"
	"github.com/vk/cmdgrid/internal/configvars"
	"github.com/vk/cmdgrid/internal/output"
	"github.com/vk/cmdgrid/internal/registry"
	"github.com/vk/cmdgrid/internal/runner"
)

// HarnessResult holds the outcomes of a harness run.
type HarnessResult struct {
	*runner.Result
	LogOutput string
	App       *app.App
}

// NewTestApp creates an App with debug logging captured in a buffer and
// output discarded. When modules is empty the core modules are registered.
func NewTestApp(t *testing.T, vars map[string]string, modules ...registry.Module) (*app.App, *output.SafeBuffer) {
	t.Helper()

	cfg, err := app.NewConfig(app.Config{LogLevel: "debug", LogFormat: "text", Host: "cmdgrid"})
	require.NoError(t, err)

	logBuffer := &output.SafeBuffer{}
	testApp := app.NewApp(logBuffer, cfg, configvars.Map(vars), output.Null(), modules...)

	t.Cleanup(func() {
		if os.Getenv("CMDGRID_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, logBuffer
}

// RunCommand builds a fresh App over vars and modules and runs the named command.
func RunCommand(t *testing.T, name string, vars map[string]string, modules ...registry.Module) *HarnessResult {
	t.Helper()

	testApp, logBuffer := NewTestApp(t, vars, modules...)
	res := testApp.Run(context.Background(), name)

	return &HarnessResult{
		Result:    res,
		LogOutput: logBuffer.String(),
		App:       testApp,
	}
}
