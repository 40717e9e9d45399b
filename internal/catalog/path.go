package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrPathNotExist = errors.New("path does not exist")
	ErrNotDirectory = errors.New("path is not a directory")
)

type PathStatus int

const (
	PathOK PathStatus = iota
	PathMissing
	PathNotDirectory
)

func (s PathStatus) String() string {
	switch s {
	case PathMissing:
		return "path not found"
	case PathNotDirectory:
		return "not a directory"
	}
	return ""
}

// ResolvePath never touches the filesystem.
func (c *Catalog) ResolvePath(p Project) string {
	return c.resolve(c.projectsDir, p.Path)
}

// ResolveVenv resolves a relative virtualenv against the project directory.
func (c *Catalog) ResolveVenv(p Project) string {
	if p.Venv == "" {
		return ""
	}
	return c.resolve(c.ResolvePath(p), p.Venv)
}

func (c *Catalog) resolve(base, path string) string {
	switch {
	case path == "~":
		return c.home
	case strings.HasPrefix(path, "~/"):
		return filepath.Join(c.home, path[2:])
	case filepath.IsAbs(path):
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}

func CheckPath(path string) PathStatus {
	info, err := os.Stat(path)
	if err != nil {
		return PathMissing
	}
	if !info.IsDir() {
		return PathNotDirectory
	}
	return PathOK
}

// ValidateDir fails when the project directory is missing or is a file.
func ValidateDir(name, path string) error {
	switch CheckPath(path) {
	case PathMissing:
		return fmt.Errorf("project %q: %w: %s", name, ErrPathNotExist, path)
	case PathNotDirectory:
		return fmt.Errorf("project %q: %w: %s", name, ErrNotDirectory, path)
	}
	return nil
}
