package configvars

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// joinKey appends a segment to a hierarchical key.
func joinKey(parent, child string) string {
	if parent == "" {
		return child
	}
	return parent + Separator + child
}

// flattenGeneric walks values produced by a generic decoder (maps, slices and
// scalars) and stores every leaf under its ':'-joined path. Nil leaves are skipped.
func flattenGeneric(out Map, key string, v any) error {
	switch t := v.(type) {
	case nil:
		return nil
	case map[string]any:
		for k, child := range t {
			if err := flattenGeneric(out, joinKey(key, k), child); err != nil {
				return err
			}
		}
	case []any:
		for i, child := range t {
			if err := flattenGeneric(out, joinKey(key, strconv.Itoa(i)), child); err != nil {
				return err
			}
		}
	case string:
		out[key] = t
	case bool:
		out[key] = strconv.FormatBool(t)
	case json.Number:
		out[key] = t.String()
	case float64:
		out[key] = strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		out[key] = strconv.Itoa(t)
	case int64:
		out[key] = strconv.FormatInt(t, 10)
	default:
		return fmt.Errorf("key %q: unsupported value of type %T", key, v)
	}
	return nil
}
