// Package store persists named, ordered collections of records on a plain
// key-value substrate. Reads return independent snapshots; the only mutation
// primitives are whole-collection Save and load-modify-save Upsert.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Collection names used by the marketplace.
const (
	CollectionUsers        = "users"
	CollectionJobs         = "jobs"
	CollectionApplications = "applications"
	CollectionProfileViews = "profile-views"
	KeySession             = "current-user"
)

// DeserializationError reports a collection whose persisted bytes no longer
// parse, e.g. after external tampering with the data files.
type DeserializationError struct {
	Collection string
	Err        error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("decode collection %q: %v", e.Collection, e.Err)
}

func (e *DeserializationError) Unwrap() error { return e.Err }

// Collection is a named record list bound to a substrate.
type Collection[T any] struct {
	kv     KV
	name   string
	logger zerolog.Logger
}

func NewCollection[T any](kv KV, name string, logger zerolog.Logger) *Collection[T] {
	return &Collection[T]{kv: kv, name: name, logger: logger}
}

// Load returns the persisted records. A collection that has never been
// written is empty, not an error.
func (c *Collection[T]) Load() ([]T, error) {
	raw, ok, err := c.kv.Get(c.name)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.name, err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, &DeserializationError{Collection: c.name, Err: err}
	}
	if records == nil {
		return []T{}, nil
	}
	return records, nil
}

// LoadOrEmpty degrades an unreadable collection to an empty one, logging a
// warning instead of surfacing the failure. Availability over strictness:
// there is no backend to re-fetch from, so an empty view keeps the rest of
// the app usable.
func (c *Collection[T]) LoadOrEmpty() []T {
	records, err := c.Load()
	if err != nil {
		c.logger.Warn().Str("collection", c.name).Err(err).
			Msg("collection unreadable, treating as empty")
		return []T{}
	}
	return records
}

// Save replaces the persisted records in a single substrate write.
func (c *Collection[T]) Save(records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.name, err)
	}
	if err := c.kv.Set(c.name, string(data)+"\n"); err != nil {
		return fmt.Errorf("save %s: %w", c.name, err)
	}
	return nil
}

// Upsert replaces the first record whose key matches, or appends when no
// record matches. Record order is otherwise preserved. An unreadable
// collection is rebuilt from scratch rather than blocking the write.
func (c *Collection[T]) Upsert(record T, key func(T) string) error {
	records, err := c.Load()
	if err != nil {
		var derr *DeserializationError
		if !errors.As(err, &derr) {
			return err
		}
		c.logger.Warn().Str("collection", c.name).Err(err).
			Msg("collection unreadable, rewriting")
		records = []T{}
	}

	target := key(record)
	replaced := false
	for i := range records {
		if key(records[i]) == target {
			records[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, record)
	}

	return c.Save(records)
}

// Document is a single-record slot, used for the session pointer.
type Document[T any] struct {
	kv   KV
	name string
}

func NewDocument[T any](kv KV, name string) *Document[T] {
	return &Document[T]{kv: kv, name: name}
}

// Load returns nil when the slot is empty.
func (d *Document[T]) Load() (*T, error) {
	raw, ok, err := d.kv.Get(d.name)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", d.name, err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return nil, &DeserializationError{Collection: d.name, Err: err}
	}
	return &value, nil
}

func (d *Document[T]) Save(value T) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", d.name, err)
	}
	if err := d.kv.Set(d.name, string(data)+"\n"); err != nil {
		return fmt.Errorf("save %s: %w", d.name, err)
	}
	return nil
}

// Clear empties the slot; clearing an already-empty slot is a no-op.
func (d *Document[T]) Clear() error {
	return d.kv.Delete(d.name)
}
