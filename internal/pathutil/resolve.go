// Package pathutil derives canonical cache keys from raw file paths.
//
// The same logical file must always map to the same key, whether the
// caller addresses it with an absolute path, a base-relative path, or a
// spelling with redundant segments. Cache correctness depends on this.
package pathutil

import (
	"os"
	"path/filepath"
)

// Resolver normalizes raw paths against a base directory.
type Resolver struct {
	baseDir string
}

// NewResolver creates a resolver rooted at baseDir. An empty baseDir
// resolves relative paths against the process working directory.
func NewResolver(baseDir string) (*Resolver, error) {
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, &BaseDirError{Dir: baseDir, Cause: err}
		}
		baseDir = wd
	}

	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, &BaseDirError{Dir: baseDir, Cause: err}
	}

	// Resolve symlinks so keys built from this base match keys built
	// from the physical path. Best effort: the directory may not exist yet.
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	return &Resolver{baseDir: abs}, nil
}

// BaseDir returns the canonical base directory of the resolver.
func (r *Resolver) BaseDir() string {
	return r.baseDir
}

// Canonical resolves raw to the canonical absolute form used as a cache
// key. Relative paths are joined to the base directory first; "." and
// ".." segments are collapsed and symlinks are resolved, so a symlink
// and its target share one key. The file itself does not need to exist:
// for a missing file only the parent directory is canonicalized.
func (r *Resolver) Canonical(raw string) (string, error) {
	if raw == "" {
		return "", ErrEmptyPath
	}

	p := raw
	if !filepath.IsAbs(p) {
		p = filepath.Join(r.baseDir, p)
	}
	p = filepath.Clean(p)

	// Resolve the full path, final element included, when it exists.
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		return resolved, nil
	}

	// Canonicalize the parent directory; keep the final element as-is so
	// keys for not-yet-created files still resolve.
	dir, name := filepath.Split(p)
	if resolved, err := filepath.EvalSymlinks(filepath.Clean(dir)); err == nil {
		p = filepath.Join(resolved, name)
	}

	return p, nil
}
