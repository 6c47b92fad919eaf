// SPDX-License-Identifier: Unlicense OR MIT

// Package statefile persists toolbar layout state between runs.
//
// The on-disk format is the pair of counters from the last layout,
// encoded as TOML:
//
//	total_items = 7
//	visible_items = 4
//
// There is no versioning beyond the pair. A missing file restores the
// zero state, so first runs need no special casing.
package statefile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"

	"gioui.org/x/toolbar"
)

// record is the on-disk format.
type record struct {
	TotalItems   int `toml:"total_items"`
	VisibleItems int `toml:"visible_items"`
}

// File stores the state of one toolbar in a TOML file.
type File struct {
	mu   sync.Mutex
	path string
}

// New returns a store backed by path. The parent directory is created
// on first save.
func New(path string) *File {
	return &File{path: path}
}

// Default returns a store under the user configuration directory for
// the named application.
func Default(app string) (*File, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}
	return New(filepath.Join(dir, app, "toolbar.toml")), nil
}

// Path returns the file path backing the store.
func (f *File) Path() string {
	return f.path
}

// Load restores st from the file. A missing file leaves st untouched
// and returns nil. Out-of-range persisted values are clamped by
// State.Restore rather than rejected.
func (f *File) Load(st *toolbar.State) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var rec record
	if _, err := toml.DecodeFile(f.path, &rec); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("decode state file: %w", err)
	}
	st.Restore(rec.TotalItems, rec.VisibleItems)
	return nil
}

// Save writes st to the file, creating the parent directory if needed.
func (f *File) Save(st *toolbar.State) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	total, visible := st.Store()
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(record{
		TotalItems:   total,
		VisibleItems: visible,
	}); err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := os.WriteFile(f.path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}
