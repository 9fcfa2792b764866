package checksumcache

import (
	"context"
	"errors"
	"io/fs"

	"github.com/hashgate/checksumcache/internal/hashutil"
	"github.com/hashgate/checksumcache/internal/pathutil"
	"github.com/hashgate/checksumcache/internal/store"
)

// DefaultCacheFile is the backing store filename used when the caller
// does not supply one. Relative to the base directory.
const DefaultCacheFile = "checksum_cache.json"

// Cache detects file changes by comparing content fingerprints against a
// persisted store. It is safe for concurrent use: store mutations are
// serialized while fingerprints of distinct files may be computed in
// parallel.
type Cache struct {
	resolver *pathutil.Resolver
	store    *store.Store
}

// New creates a cache backed by the JSON file at cacheFile (default
// DefaultCacheFile). Relative paths, including cacheFile itself, resolve
// against baseDir; an empty baseDir means the process working directory.
// A missing or corrupt backing file starts the cache empty.
func New(cacheFile, baseDir string) (*Cache, error) {
	resolver, err := pathutil.NewResolver(baseDir)
	if err != nil {
		return nil, err
	}

	if cacheFile == "" {
		cacheFile = DefaultCacheFile
	}
	storePath, err := resolver.Canonical(cacheFile)
	if err != nil {
		return nil, err
	}

	return &Cache{
		resolver: resolver,
		store:    store.Open(storePath),
	}, nil
}

// CacheFile returns the canonical path of the backing store file.
func (c *Cache) CacheFile() string {
	return c.store.Path()
}

// BaseDir returns the canonical base directory for relative paths.
func (c *Cache) BaseDir() string {
	return c.resolver.BaseDir()
}

// Key returns the canonical store key for a raw path.
func (c *Cache) Key(path string) (string, error) {
	return c.resolver.Canonical(path)
}

// Fingerprint computes the current digest of the file at path without
// touching the store.
func (c *Cache) Fingerprint(path string) (string, error) {
	return c.FingerprintContext(context.Background(), path)
}

// FingerprintContext is the cancellable variant of Fingerprint.
func (c *Cache) FingerprintContext(ctx context.Context, path string) (string, error) {
	key, err := c.resolver.Canonical(path)
	if err != nil {
		return "", err
	}
	return hashutil.FileContext(ctx, key)
}

// HasChanged reports whether the file at path is new or has changed since
// the last check. On a true result the store has already been updated
// with the new digest and persisted, so an immediate second call on an
// unmodified file reports false. An unreadable file is an error, never
// "unchanged".
func (c *Cache) HasChanged(path string) (bool, error) {
	return c.HasChangedContext(context.Background(), path)
}

// HasChangedContext is the cancellable variant of HasChanged.
func (c *Cache) HasChangedContext(ctx context.Context, path string) (bool, error) {
	key, err := c.resolver.Canonical(path)
	if err != nil {
		return false, err
	}

	current, err := hashutil.FileContext(ctx, key)
	if err != nil {
		return false, err
	}

	previous, ok := c.store.Get(key)
	if ok && previous == current {
		return false, nil
	}

	c.store.Put(key, current)
	if err := c.store.Save(); err != nil {
		return false, err
	}
	return true, nil
}

// AnyChanged reports whether any of the given files changed. Every path
// is checked even after a change is found, so all store entries are
// refreshed, not just the first changed one.
func (c *Cache) AnyChanged(paths []string) (bool, error) {
	return c.AnyChangedContext(context.Background(), paths)
}

// AnyChangedContext is the cancellable variant of AnyChanged.
func (c *Cache) AnyChangedContext(ctx context.Context, paths []string) (bool, error) {
	changed := false
	var errs []error
	for _, p := range paths {
		ch, err := c.HasChangedContext(ctx, p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		changed = changed || ch
	}
	if len(errs) > 0 {
		return false, errors.Join(errs...)
	}
	return changed, nil
}

// AllChanged reports whether every one of the given files changed. Like
// AnyChanged it never short-circuits.
func (c *Cache) AllChanged(paths []string) (bool, error) {
	return c.AllChangedContext(context.Background(), paths)
}

// AllChangedContext is the cancellable variant of AllChanged.
func (c *Cache) AllChangedContext(ctx context.Context, paths []string) (bool, error) {
	all := true
	var errs []error
	for _, p := range paths {
		ch, err := c.HasChangedContext(ctx, p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		all = all && ch
	}
	if len(errs) > 0 {
		return false, errors.Join(errs...)
	}
	return all, nil
}

// Refresh recomputes the digest for path and stores it without reporting
// a change. If the file no longer exists its entry is dropped instead.
func (c *Cache) Refresh(path string) error {
	return c.RefreshContext(context.Background(), path)
}

// RefreshContext is the cancellable variant of Refresh.
func (c *Cache) RefreshContext(ctx context.Context, path string) error {
	key, err := c.resolver.Canonical(path)
	if err != nil {
		return err
	}

	digest, err := hashutil.FileContext(ctx, key)
	switch {
	case err == nil:
		c.store.Put(key, digest)
	case errors.Is(err, fs.ErrNotExist):
		c.store.Remove(key)
	default:
		return err
	}

	return c.store.Save()
}

// RefreshAll recomputes digests for every tracked file, dropping entries
// whose files have disappeared.
func (c *Cache) RefreshAll() error {
	return c.RefreshAllContext(context.Background())
}

// RefreshAllContext is the cancellable variant of RefreshAll.
func (c *Cache) RefreshAllContext(ctx context.Context) error {
	for _, key := range c.store.Keys() {
		digest, err := hashutil.FileContext(ctx, key)
		switch {
		case err == nil:
			c.store.Put(key, digest)
		case errors.Is(err, fs.ErrNotExist):
			c.store.Remove(key)
		default:
			return err
		}
	}
	return c.store.Save()
}

// Remove deletes the store entry for path, forcing the next check to
// report a change. Removing an untracked path is a no-op.
func (c *Cache) Remove(path string) error {
	key, err := c.resolver.Canonical(path)
	if err != nil {
		return err
	}
	if !c.store.Remove(key) {
		return nil
	}
	return c.store.Save()
}

// Clear drops every entry and persists the empty store.
func (c *Cache) Clear() error {
	c.store.Clear()
	return c.store.Save()
}

// Len returns the number of tracked files.
func (c *Cache) Len() int {
	return c.store.Len()
}

// Entries returns a copy of the current key to digest mapping.
func (c *Cache) Entries() map[string]string {
	return c.store.Snapshot()
}
