package util

import (
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar"
)

// Glob returns the names of the files below root that match pattern. The pattern is relative to
// root, uses slash as separator and may contain `**` to match any number of directories. The
// result is sorted lexically.
func Glob(root string, pattern string) ([]string, error) {
	matches, err := doublestar.Glob(filepath.Join(root, filepath.FromSlash(pattern)))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}
