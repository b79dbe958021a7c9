// Package fsutil resolves which definition file an invocation should read.
package fsutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/unitgridgo/internal/ctxlog"
)

// DefaultNames lists the definition file names probed during discovery, in
// priority order. The extension picks the loader.
var DefaultNames = []string{"units.def", "units.hcl", "units.yaml", "units.yml"}

// homeDirName is the per-user fallback directory under $HOME.
const homeDirName = ".unitgridgo"

// LocateDefinitions resolves the active definition file. An explicit
// override path is used as-is and its absence is an error; otherwise the
// current directory is probed first, then $HOME/.unitgridgo.
func LocateDefinitions(ctx context.Context, override string) (string, error) {
	logger := ctxlog.FromContext(ctx)

	if override != "" {
		if _, err := os.Stat(override); err != nil {
			return "", fmt.Errorf("cannot read definition file %s: %w", override, err)
		}
		logger.Debug("Using definition file from flag.", "path", override)
		return override, nil
	}

	var searched []string
	for _, name := range DefaultNames {
		searched = append(searched, name)
		if _, err := os.Stat(name); err == nil {
			logger.Debug("Found definition file in current directory.", "path", name)
			return name, nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("no definition file in current directory and home directory is unknown: %w", err)
	}
	for _, name := range DefaultNames {
		path := filepath.Join(home, homeDirName, name)
		searched = append(searched, path)
		if _, err := os.Stat(path); err == nil {
			logger.Debug("Found definition file in home directory.", "path", path)
			return path, nil
		}
	}

	return "", fmt.Errorf("no definition file found, searched: %s", strings.Join(searched, ", "))
}
