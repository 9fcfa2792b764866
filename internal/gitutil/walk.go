package gitutil

import (
	"io/fs"
	"path/filepath"
)

// CollectFiles walks root and returns every regular file that is not
// excluded by root's .gitignore. The .git directory is always skipped.
// Paths are returned in lexical walk order.
func CollectFiles(root string) ([]string, error) {
	matcher, err := NewIgnoreMatcher(root)
	if err != nil {
		return nil, err
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if d.Name() == ".git" || matcher.ShouldIgnore(rel, true) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if matcher.ShouldIgnore(rel, false) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
