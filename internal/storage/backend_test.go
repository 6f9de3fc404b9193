package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFileBackend(t *testing.T) {
	dir := t.TempDir()
	b, err := NewFileBackend(dir)
	if err != nil {
		t.Fatalf("NewFileBackend() error = %v", err)
	}

	if _, ok, err := b.Get("missing"); ok || err != nil {
		t.Errorf("Get(missing) = %v, %v, want absent with no error", ok, err)
	}

	if err := b.Set("mood_entries", []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	data, ok, err := b.Get("mood_entries")
	if err != nil || !ok {
		t.Fatalf("Get() = %v, %v", ok, err)
	}
	if string(data) != `[{"id":1}]` {
		t.Errorf("Get() data = %s", data)
	}

	if _, err := os.Stat(filepath.Join(dir, "mood_entries.json")); err != nil {
		t.Errorf("expected one file per key: %v", err)
	}

	if err := b.Set("meal_entries", []byte(`[]`)); err != nil {
		t.Fatal(err)
	}
	keys, err := b.Keys()
	if err != nil {
		t.Fatalf("Keys() error = %v", err)
	}
	if want := []string{"meal_entries", "mood_entries"}; !reflect.DeepEqual(keys, want) {
		t.Errorf("Keys() = %v, want %v", keys, want)
	}

	if err := b.Delete("mood_entries"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok, _ := b.Get("mood_entries"); ok {
		t.Error("key still present after Delete")
	}
	// Deleting an absent key is not an error.
	if err := b.Delete("mood_entries"); err != nil {
		t.Errorf("Delete(absent) error = %v", err)
	}
}

func TestSQLiteBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "neuropulse.db")
	b, err := NewSQLiteBackend(path)
	if err != nil {
		t.Fatalf("NewSQLiteBackend() error = %v", err)
	}
	defer b.Close()

	if _, ok, err := b.Get("missing"); ok || err != nil {
		t.Errorf("Get(missing) = %v, %v, want absent with no error", ok, err)
	}

	if err := b.Set("recovery_entries", []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	// Upsert replaces.
	if err := b.Set("recovery_entries", []byte(`[{"id":2}]`)); err != nil {
		t.Fatalf("second Set() error = %v", err)
	}
	data, ok, err := b.Get("recovery_entries")
	if err != nil || !ok {
		t.Fatalf("Get() = %v, %v", ok, err)
	}
	if string(data) != `[{"id":2}]` {
		t.Errorf("Get() data = %s, want upserted value", data)
	}

	keys, err := b.Keys()
	if err != nil {
		t.Fatalf("Keys() error = %v", err)
	}
	if len(keys) != 1 || keys[0] != "recovery_entries" {
		t.Errorf("Keys() = %v", keys)
	}

	if err := b.Delete("recovery_entries"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok, _ := b.Get("recovery_entries"); ok {
		t.Error("key still present after Delete")
	}
}
