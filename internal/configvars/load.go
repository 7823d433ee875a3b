package configvars

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vk/cmdgrid/internal/ctxlog"
	"github.com/vk/cmdgrid/internal/fsutil"
)

// FileExtensions lists the file types LoadPaths understands.
var FileExtensions = []string{".hcl", ".yaml", ".yml", ".json"}

// LoadFile loads a single config file, choosing the decoder by extension.
func LoadFile(path string) (Map, error) {
	switch filepath.Ext(path) {
	case ".hcl":
		return LoadHCLFile(path)
	case ".yaml", ".yml", ".json":
		return LoadYAMLFile(path)
	default:
		return nil, fmt.Errorf("unsupported config file type: %s", path)
	}
}

// LoadPaths loads every config file found at the given paths. A path may be a
// file or a directory, which is searched recursively for FileExtensions. A
// file named directly is always loaded, so an unsupported type is an error.
// Paths that do not exist are skipped with a warning.
//
// Files discovered later override files discovered earlier for the same key.
func LoadPaths(ctx context.Context, paths ...string) (Variables, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading config variables.", "path_count", len(paths))

	var files []string
	seen := make(map[string]struct{})
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logger.Warn("Config path does not exist, skipping.", "path", path)
				continue
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		found := []string{path}
		if info.IsDir() {
			found, err = fsutil.FindFilesByExtension(path, FileExtensions...)
			if err != nil {
				return nil, fmt.Errorf("error searching path %s: %w", path, err)
			}
		}
		for _, f := range found {
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			files = append(files, f)
		}
	}

	b := NewBuilder()
	for i := len(files) - 1; i >= 0; i-- {
		m, err := LoadFile(files[i])
		if err != nil {
			return nil, err
		}
		logger.Debug("Loaded config file.", "file", files[i], "keys", len(m))
		b.Add(m)
	}

	logger.Debug("Config variables loaded.", "files", len(files))
	return b.Build(), nil
}
