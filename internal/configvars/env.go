package configvars

import "strings"

// FromEnviron builds a Map from "NAME=value" entries such as os.Environ()
// returns. When prefix is non-empty only names starting with it are kept and
// the prefix is stripped. A double underscore in a name becomes the key
// separator, so Commands__deploy__region is read as Commands:deploy:region.
func FromEnviron(prefix string, environ []string) Map {
	out := make(Map)
	for _, e := range environ {
		name, value, ok := strings.Cut(e, "=")
		if !ok || name == "" {
			continue
		}
		if prefix != "" {
			if !strings.HasPrefix(name, prefix) {
				continue
			}
			name = strings.TrimPrefix(name, prefix)
			if name == "" {
				continue
			}
		}
		out[strings.ReplaceAll(name, "__", Separator)] = value
	}
	return out
}
