package pathutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCanonicalRelativeAndAbsoluteAgree(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "c.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	r, err := NewResolver(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fromRel, err := r.Canonical("c.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fromAbs, err := r.Canonical(file)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fromRel != fromAbs {
		t.Errorf("relative and absolute spellings resolved differently: %s vs %s", fromRel, fromAbs)
	}
}

func TestCanonicalCollapsesRedundantSegments(t *testing.T) {
	dir := t.TempDir()
	r, err := NewResolver(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	plain, err := r.Canonical("sub/c.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	redundant, err := r.Canonical("./sub/../sub/c.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plain != redundant {
		t.Errorf("redundant segments produced a different key: %s vs %s", plain, redundant)
	}
}

func TestCanonicalEmptyPath(t *testing.T) {
	r, err := NewResolver(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.Canonical(""); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("expected ErrEmptyPath, got %v", err)
	}
}

func TestEmptyBaseDirUsesWorkingDirectory(t *testing.T) {
	r, err := NewResolver("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filepath.IsAbs(r.BaseDir()) {
		t.Errorf("base dir should be absolute, got %s", r.BaseDir())
	}
}

func TestCanonicalResolvesSymlinkedFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.txt")
	if err := os.WriteFile(target, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	link := filepath.Join(dir, "alias.txt")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	r, err := NewResolver(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	viaTarget, err := r.Canonical(target)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	viaLink, err := r.Canonical(link)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if viaTarget != viaLink {
		t.Errorf("symlink and target produced different keys: %s vs %s", viaLink, viaTarget)
	}
}

func TestCanonicalResolvesSymlinkedDir(t *testing.T) {
	dir := t.TempDir()
	real := filepath.Join(dir, "real")
	if err := os.Mkdir(real, 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	link := filepath.Join(dir, "link")
	if err := os.Symlink(real, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	r, err := NewResolver(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	viaReal, err := r.Canonical(filepath.Join(real, "f.txt"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	viaLink, err := r.Canonical(filepath.Join(link, "f.txt"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if viaReal != viaLink {
		t.Errorf("symlinked dir produced a different key: %s vs %s", viaReal, viaLink)
	}
}
