package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-errors/errors"
)

// ResolveInputs expands a mix of file paths and directories into the sorted,
// deduplicated list of log files to scan. Directories are walked recursively
// for .txt files; explicit file paths are taken as-is. Paths that do not
// exist become skip records, not errors, and an empty result is valid.
func ResolveInputs(inputs []string) ([]string, []SkippedFile) {
	seen := make(map[string]bool)
	var files []string
	var skipped []SkippedFile

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, in := range inputs {
		info, err := os.Stat(in)
		if err != nil {
			skipped = append(skipped, SkippedFile{Path: in, Err: errors.Errorf("input not found: %w", err)})
			continue
		}
		if !info.IsDir() {
			add(in)
			continue
		}
		walkErr := filepath.WalkDir(in, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".txt") {
				add(path)
			}
			return nil
		})
		if walkErr != nil {
			skipped = append(skipped, SkippedFile{Path: in, Err: errors.Errorf("walk directory: %w", walkErr)})
		}
	}

	sort.Strings(files)
	return files, skipped
}
