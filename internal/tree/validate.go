package tree

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidateName checks that name is a single path segment: not empty, not "."
// or "..", without separators and not absolute.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("empty name")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("invalid name %q", name)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("name %q must not contain path separators", name)
	}
	if filepath.IsAbs(name) {
		return fmt.Errorf("absolute paths are not allowed: %q", name)
	}
	return nil
}

// Validate checks every name in node and rejects a path that is declared both
// as a directory and as a file.
func Validate(node Node) error {
	dirs := make(map[string]bool)
	return Walk(node, func(v Visit) error {
		if err := ValidateName(v.Name); err != nil {
			return fmt.Errorf("%s: %w", v.Path, err)
		}
		isDir := v.Kind == EntryDir
		if prev, ok := dirs[v.Path]; ok && prev != isDir {
			return fmt.Errorf("%s: declared both as a file and as a directory", v.Path)
		}
		dirs[v.Path] = isDir
		return nil
	})
}
