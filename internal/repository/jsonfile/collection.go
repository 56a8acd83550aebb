// Package jsonfile implements the flat-file record store backend: one
// JSON document per collection, fully read and rewritten on every
// mutation. Writers are serialized by a per-collection mutex and commit
// with an atomic rename so the file stays valid JSON at all times.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Collection manages one JSON array file of records.
type Collection[T any] struct {
	path string
	mu   sync.Mutex
}

// NewCollection returns a handle for the given file path.
func NewCollection[T any](path string) *Collection[T] {
	return &Collection[T]{path: path}
}

// Load reads the full collection. A missing file is an error; seeded
// collections are expected to exist.
func (c *Collection[T]) Load() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.read()
}

// LoadOrEmpty reads the full collection, treating a missing file as an
// empty collection.
func (c *Collection[T]) LoadOrEmpty() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.read()
	if os.IsNotExist(err) {
		return []T{}, nil
	}
	return items, err
}

// Mutate applies fn to the collection under the write lock and persists
// the result. When fn returns an error nothing is written.
func (c *Collection[T]) Mutate(fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.read()
	if os.IsNotExist(err) {
		items = []T{}
	} else if err != nil {
		return err
	}

	updated, err := fn(items)
	if err != nil {
		return err
	}
	return c.write(updated)
}

func (c *Collection[T]) read() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, err
	}
	items := []T{}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(c.path), err)
	}
	return items, nil
}

// write replaces the file contents via a temp file and rename, so a
// concurrent reader never observes a partially written document.
func (c *Collection[T]) write(items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(c.path), err)
	}
	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("prepare data directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", filepath.Base(c.path), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		return fmt.Errorf("replace %s: %w", filepath.Base(c.path), err)
	}
	return nil
}
