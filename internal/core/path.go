package core

import (
	"fmt"
	"path/filepath"
	"strings"
)

func NormalizePath(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if path != "/" && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

// ValidateAssetPath guards the image inliner: only plain relative paths
// inside the project directory may be read and embedded.
func ValidateAssetPath(path string) error {
	if path == "" {
		return fmt.Errorf("asset path cannot be empty")
	}

	if strings.Contains(path, "://") || strings.HasPrefix(path, "//") {
		return fmt.Errorf("asset path cannot be a URL")
	}

	if strings.HasPrefix(path, "/") || filepath.IsAbs(path) {
		return fmt.Errorf("asset path must be relative to the project directory")
	}

	if strings.Contains(path, "..") {
		return fmt.Errorf("asset path cannot contain parent directory references")
	}

	if strings.Contains(path, "?") || strings.Contains(path, "#") {
		return fmt.Errorf("asset path cannot contain query string or fragment")
	}

	return nil
}

// ResolveInDir joins a project-relative path onto the project directory.
// Absolute paths pass through untouched.
func ResolveInDir(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if dir == "" || dir == "." {
		return path
	}
	return filepath.Join(dir, path)
}
