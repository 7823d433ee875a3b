package command

import "github.com/vk/cmdgrid/internal/configvars"

// Definition is the static metadata of a command.
type Definition struct {
	// Name identifies the command. Lookups compare names case-insensitively.
	Name       string
	Help       string
	Parameters []Parameter
}

// Parameter describes one named input of a command.
type Parameter struct {
	Name     string
	Required bool
	// Default is used when no configured value exists. Empty means no default.
	Default string
	Help    string
}

// NewDefinition builds a Definition.
func NewDefinition(name, help string, params ...Parameter) Definition {
	return Definition{Name: name, Help: help, Parameters: params}
}

// Required declares a parameter that must resolve to a value before the command runs.
func Required(name, help string) Parameter {
	return Parameter{Name: name, Required: true, Help: help}
}

// Optional declares a parameter that falls back to def when unset.
func Optional(name, def, help string) Parameter {
	return Parameter{Name: name, Default: def, Help: help}
}

// Parameter returns the first parameter declared under name.
func (d Definition) Parameter(name string) (Parameter, bool) {
	for _, p := range d.Parameters {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}

// MissingRequired returns the required parameters that have no value in
// vars, in declaration order.
func (d Definition) MissingRequired(vars configvars.Variables) []Parameter {
	var missing []Parameter
	for _, p := range d.Parameters {
		if !p.Required {
			continue
		}
		if _, ok := vars.Get(p.Name); !ok {
			missing = append(missing, p)
		}
	}
	return missing
}

// Defaults exposes the declared default of every parameter as a Variables
// source. Required parameters without a default are absent. When a name is
// declared twice the first declaration wins.
func (d Definition) Defaults() configvars.Variables {
	out := make(configvars.Map, len(d.Parameters))
	seen := make(map[string]struct{}, len(d.Parameters))
	for _, p := range d.Parameters {
		if _, ok := seen[p.Name]; ok {
			continue
		}
		seen[p.Name] = struct{}{}
		if p.Required && p.Default == "" {
			continue
		}
		out[p.Name] = p.Default
	}
	return out
}
