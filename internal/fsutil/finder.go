// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// CollectFiles resolves each given path to a flat, de-duplicated list of
// files with the specified extension. Directories are walked recursively;
// plain files are included when their name matches. Paths that do not exist
// are skipped silently.
func CollectFiles(paths []string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	var files []string
	seen := make(map[string]struct{})

	add := func(p string) {
		if _, ok := seen[p]; !ok {
			files = append(files, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if !info.IsDir() {
			if strings.HasSuffix(info.Name(), extension) {
				add(path)
			}
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}
