package binder

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gitlocal.dev/gitlocal/internal/git"
)

// Entry is one *.git directory found in local storage.
type Entry struct {
	Name string
	Path string
	Info *git.BareInfo
	Err  error
}

// Valid reports whether the entry opened as a bare repository.
func (e Entry) Valid() bool {
	return e.Err == nil && e.Info != nil && e.Info.Bare
}

// List returns the repositories under root sorted by name. A missing root is
// an empty storage, not an error.
func (b *Binder) List(root string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			b.splog.Warn("storage root %s does not exist yet", root)
			return nil, nil
		}
		return nil, fmt.Errorf("reading storage root %s: %w", root, err)
	}

	var entries []Entry
	for _, d := range dirEntries {
		if !d.IsDir() || !strings.HasSuffix(d.Name(), BareSuffix) {
			continue
		}
		path := filepath.Join(root, d.Name())
		info, err := git.InspectBare(path)
		if err != nil {
			b.splog.Debug("%v", err)
		}
		entries = append(entries, Entry{
			Name: strings.TrimSuffix(d.Name(), BareSuffix),
			Path: path,
			Info: info,
			Err:  err,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}
