package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// configFileNames are the project config file names we search for, in
// order of preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var configFileNames = []string{
	".htmlfix.yml",
	".htmlfix.yaml",
	"htmlfix.yml",
	"htmlfix.yaml",
}

// vcsRootMarkers stop the upward search at a repository root.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// FindProjectConfig searches upward from workDir for a project config
// file. The search stops at a VCS root or the filesystem root. A
// missing config is reported as an empty string, not an error.
func FindProjectConfig(ctx context.Context, workDir string) (string, error) {
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("find project config: %w", ctx.Err())
	default:
	}

	dir, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}

	for {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}

		if isVCSRoot(dir) {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}
