package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// KV is the durable key-value substrate collections are persisted to. It is
// the localStorage-shaped contract the record store wraps: string keys,
// string values, absence distinguished from emptiness.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}

// FileKV stores each key as <dir>/<key>.json.
type FileKV struct {
	dir string
}

// NewFileKV creates the backing directory if needed.
func NewFileKV(dir string) (*FileKV, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("data directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileKV{dir: dir}, nil
}

func (f *FileKV) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileKV) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(data), true, nil
}

func (f *FileKV) Set(key, value string) error {
	return os.WriteFile(f.path(key), []byte(value), 0o644)
}

func (f *FileKV) Delete(key string) error {
	err := os.Remove(f.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// MemKV is an in-memory substrate for tests.
type MemKV struct {
	values map[string]string
}

func NewMemKV() *MemKV {
	return &MemKV{values: make(map[string]string)}
}

func (m *MemKV) Get(key string) (string, bool, error) {
	value, ok := m.values[key]
	return value, ok, nil
}

func (m *MemKV) Set(key, value string) error {
	m.values[key] = value
	return nil
}

func (m *MemKV) Delete(key string) error {
	delete(m.values, key)
	return nil
}
