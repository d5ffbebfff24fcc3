// Package fsutil provides file system utility functions.
package fsutil

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
)

// ListDirSorted returns the full paths of all entries directly inside dir,
// lexicographically sorted by name. Generation and reconstruction both rely
// on this ordering for reproducible output and for positional pairing of
// codomain and problem files.
func ListDirSorted(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// WriteFile creates (or truncates) path, hands a buffered writer to write,
// and closes the handle on every exit path. The first error encountered is
// returned.
func WriteFile(path string, write func(w *bufio.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := write(w); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
