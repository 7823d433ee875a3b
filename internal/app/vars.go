package app

import (
	"context"
	"fmt"

	"github.com/vk/cmdgrid/internal/configvars"
)

// LoadVariables assembles the command variables for a run. The first source
// that has a key wins: overrides, then the environment (filtered by
// cfg.VarsPrefix), then the config files named in cfg.ConfigPaths.
func LoadVariables(ctx context.Context, cfg *Config, overrides configvars.Map, environ []string) (configvars.Variables, error) {
	files, err := configvars.LoadPaths(ctx, cfg.ConfigPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load config variables: %w", err)
	}

	return configvars.NewBuilder().
		Add(overrides).
		Add(configvars.FromEnviron(cfg.VarsPrefix, environ)).
		Add(files).
		Build(), nil
}
