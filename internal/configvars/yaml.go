package configvars

import (
	"encoding/json"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// LoadYAMLFile reads a YAML (or JSON) document whose top level is a mapping
// and flattens it into a Map. An empty document yields an empty Map.
func LoadYAMLFile(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc, useNumber); err != nil {
		return nil, fmt.Errorf("failed to parse YAML file %s: %w", path, err)
	}

	out := make(Map)
	switch doc.(type) {
	case nil:
		return out, nil
	case map[string]any:
	default:
		return nil, fmt.Errorf("failed to decode YAML file %s: top level must be a mapping, got %T", path, doc)
	}

	if err := flattenGeneric(out, "", doc); err != nil {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
	}
	return out, nil
}

// useNumber keeps numbers as written so large integers survive decoding.
func useNumber(d *json.Decoder) *json.Decoder {
	d.UseNumber()
	return d
}
