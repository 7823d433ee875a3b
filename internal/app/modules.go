package app

import (
	"github.com/vk/cmdgrid/internal/registry"
	"github.com/vk/cmdgrid/modules/env_vars"
	"github.com/vk/cmdgrid/modules/print"
)

// coreModules is the definitive list of all modules that are compiled into
// the cmdgrid binary.
var coreModules = []registry.Module{
	&print.Module{},
	&env_vars.Module{},
}
