package configvars

import (
	"fmt"
	"strings"
)

// ParseAssignment splits a single "key=value" string. The key must not be
// empty; the value may be.
func ParseAssignment(s string) (key, value string, err error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok {
		return "", "", fmt.Errorf("invalid assignment %q: expected key=value", s)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", fmt.Errorf("invalid assignment %q: empty key", s)
	}
	return key, value, nil
}

// ParseAssignments builds a Map from "key=value" strings. When a key repeats,
// the last assignment wins, matching how repeated flags usually behave.
func ParseAssignments(pairs []string) (Map, error) {
	out := make(Map, len(pairs))
	for _, p := range pairs {
		k, v, err := ParseAssignment(p)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}
