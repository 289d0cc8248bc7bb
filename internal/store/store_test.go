package store

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func recordKey(r record) string { return r.ID }

func TestLoadMissingCollection(t *testing.T) {
	c := NewCollection[record](NewMemKV(), "things", zerolog.Nop())

	got, err := c.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty collection, got %d records", len(got))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	c := NewCollection[record](NewMemKV(), "things", zerolog.Nop())

	want := []record{{ID: "1", Name: "first"}, {ID: "2", Name: "second"}}
	if err := c.Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := c.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("unexpected records: %+v", got)
	}
}

func TestLoadCorruptCollection(t *testing.T) {
	kv := NewMemKV()
	if err := kv.Set("things", "{not json"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	c := NewCollection[record](kv, "things", zerolog.Nop())

	_, err := c.Load()
	var derr *DeserializationError
	if !errors.As(err, &derr) {
		t.Fatalf("Load() error = %v, want DeserializationError", err)
	}
	if derr.Collection != "things" {
		t.Fatalf("Collection = %q, want %q", derr.Collection, "things")
	}

	if got := c.LoadOrEmpty(); len(got) != 0 {
		t.Fatalf("LoadOrEmpty() = %d records, want 0", len(got))
	}
}

func TestUpsertReplacesInPlace(t *testing.T) {
	c := NewCollection[record](NewMemKV(), "things", zerolog.Nop())
	seed := []record{{ID: "1", Name: "first"}, {ID: "2", Name: "second"}, {ID: "3", Name: "third"}}
	if err := c.Save(seed); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if err := c.Upsert(record{ID: "2", Name: "updated"}, recordKey); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	got, err := c.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected len=3, got %d", len(got))
	}
	if got[1].Name != "updated" {
		t.Fatalf("got[1] = %+v, want updated record in place", got[1])
	}
	if got[0].ID != "1" || got[2].ID != "3" {
		t.Fatalf("record order changed: %+v", got)
	}
}

func TestUpsertAppendsWhenAbsent(t *testing.T) {
	c := NewCollection[record](NewMemKV(), "things", zerolog.Nop())

	if err := c.Upsert(record{ID: "1", Name: "first"}, recordKey); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if err := c.Upsert(record{ID: "2", Name: "second"}, recordKey); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	got, err := c.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 2 || got[1].ID != "2" {
		t.Fatalf("unexpected records: %+v", got)
	}
}

func TestDocumentLifecycle(t *testing.T) {
	d := NewDocument[record](NewMemKV(), "slot")

	got, err := d.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != nil {
		t.Fatalf("expected empty slot, got %+v", got)
	}

	if err := d.Save(record{ID: "1", Name: "current"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err = d.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got == nil || got.ID != "1" {
		t.Fatalf("unexpected slot value: %+v", got)
	}

	if err := d.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if err := d.Clear(); err != nil {
		t.Fatalf("second Clear() error = %v", err)
	}
	got, err = d.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != nil {
		t.Fatalf("expected cleared slot, got %+v", got)
	}
}

func TestFileKV(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileKV() error = %v", err)
	}

	if _, ok, err := kv.Get("absent"); err != nil || ok {
		t.Fatalf("Get(absent) = ok=%v err=%v, want absent", ok, err)
	}

	if err := kv.Set("key", "value"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, ok, err := kv.Get("key")
	if err != nil || !ok {
		t.Fatalf("Get() = ok=%v err=%v", ok, err)
	}
	if got != "value" {
		t.Fatalf("Get() = %q, want %q", got, "value")
	}

	if err := kv.Delete("key"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := kv.Delete("key"); err != nil {
		t.Fatalf("Delete() of absent key error = %v", err)
	}
	if _, ok, _ := kv.Get("key"); ok {
		t.Fatalf("expected key gone after Delete")
	}
}
