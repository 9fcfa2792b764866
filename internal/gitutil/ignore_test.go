package gitutil

import (
	"os"
	"path/filepath"
	"testing"
)

func setupTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return root
}

func TestIgnoreMatcherNoGitignore(t *testing.T) {
	root := setupTree(t, map[string]string{"a.txt": "x"})

	m, err := NewIgnoreMatcher(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ShouldIgnore("a.txt", false) {
		t.Error("without a .gitignore nothing should be ignored")
	}
}

func TestIgnoreMatcherPatterns(t *testing.T) {
	root := setupTree(t, map[string]string{
		".gitignore": "*.log\nbuild/\n# a comment\n",
	})

	m, err := NewIgnoreMatcher(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !m.ShouldIgnore("debug.log", false) {
		t.Error("*.log should be ignored")
	}
	if !m.ShouldIgnore("build", true) {
		t.Error("build/ should be ignored")
	}
	if m.ShouldIgnore("main.go", false) {
		t.Error("main.go should not be ignored")
	}
}

func TestCollectFiles(t *testing.T) {
	root := setupTree(t, map[string]string{
		".gitignore":     "*.log\nout/\n",
		"a.txt":          "a",
		"sub/b.txt":      "b",
		"debug.log":      "noise",
		"out/c.txt":      "generated",
		".git/HEAD":      "ref: refs/heads/main",
		"sub/inner.log":  "noise",
		"sub/deep/d.txt": "d",
	})

	files, err := CollectFiles(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := make(map[string]bool)
	for _, f := range files {
		rel, err := filepath.Rel(root, f)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got[filepath.ToSlash(rel)] = true
	}

	for _, want := range []string{".gitignore", "a.txt", "sub/b.txt", "sub/deep/d.txt"} {
		if !got[want] {
			t.Errorf("expected %s in collected files, got %v", want, got)
		}
	}
	for _, skip := range []string{"debug.log", "out/c.txt", ".git/HEAD", "sub/inner.log"} {
		if got[skip] {
			t.Errorf("%s should have been skipped", skip)
		}
	}
}
