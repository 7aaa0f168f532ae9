package security

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidateConfigPath rejects config file paths containing directory
// traversal components. Absolute paths are allowed since the config file is
// operator supplied.
func ValidateConfigPath(path string) error {
	if path == "" {
		return fmt.Errorf("file path cannot be empty")
	}

	cleanPath := filepath.Clean(path)
	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path contains directory traversal: %s", path)
	}

	return nil
}

// ValidateStaticDir validates the dashboard static directory setting. The
// directory must be a plain relative or absolute path without traversal
// components so the file server cannot be pointed above its root.
func ValidateStaticDir(dir string) error {
	if dir == "" {
		return nil
	}

	cleanDir := filepath.Clean(dir)
	if strings.Contains(cleanDir, "..") {
		return fmt.Errorf("static dir contains directory traversal: %s", dir)
	}

	return nil
}
