// Package resource resolves asset paths against a root directory.
package resource

import (
	"os"
	"path/filepath"
)

// RootEnv names the environment variable consulted when no root is
// configured.
const RootEnv = "COURTYARD_ROOT"

type Resolver struct {
	Root string
}

// NewResolver picks root, then $COURTYARD_ROOT, then the working directory.
func NewResolver(root string) (*Resolver, error) {
	if root == "" {
		root = os.Getenv(RootEnv)
	}
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		root = wd
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	return &Resolver{Root: abs}, nil
}

// Path joins rel onto the root. Absolute paths pass through.
func (r *Resolver) Path(rel string) string {
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel)
	}
	return filepath.Join(r.Root, filepath.FromSlash(rel))
}

// Paths resolves each face of a cubemap.
func (r *Resolver) Paths(rel [6]string) [6]string {
	var out [6]string
	for i, p := range rel {
		out[i] = r.Path(p)
	}
	return out
}
