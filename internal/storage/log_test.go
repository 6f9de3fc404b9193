package storage

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/neuropulse/neuropulse/internal/errors"
)

type testEntry struct {
	ID   int    `json:"id"`
	Date string `json:"date"`
	Time string `json:"time"`
	Note string `json:"note"`
}

func (e testEntry) EntryID() int            { return e.ID }
func (e testEntry) WithID(id int) testEntry { e.ID = id; return e }
func (e testEntry) EntryDate() string       { return e.Date }
func (e testEntry) EntryTime() string       { return e.Time }
func (e testEntry) SearchText() string      { return strings.ToLower(e.Note) }

func seedEntries() []testEntry {
	return []testEntry{
		{ID: 2, Date: "2026-08-20", Time: "10:00", Note: "seed two"},
		{ID: 1, Date: "2026-08-19", Time: "09:00", Note: "seed one"},
	}
}

func openTestLog(t *testing.T, backend Backend) *Log[testEntry] {
	t.Helper()
	l := NewLog(backend, "test_entries", seedEntries)
	if err := l.Open(); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return l
}

func TestLogSeedsWhenMissing(t *testing.T) {
	l := openTestLog(t, NewMemoryBackend())
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 seed entries", l.Len())
	}
}

func TestLogSeedsOnMalformedData(t *testing.T) {
	backend := NewMemoryBackend()
	if err := backend.Set("test_entries", []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	l := openTestLog(t, backend)
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want seed fallback on corrupt data", l.Len())
	}
}

func TestLogSeedsOnEmptyArray(t *testing.T) {
	backend := NewMemoryBackend()
	if err := backend.Set("test_entries", []byte("[]")); err != nil {
		t.Fatal(err)
	}
	l := openTestLog(t, backend)
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want seed fallback on empty data", l.Len())
	}
}

func TestLogAddAssignsIncreasingIDs(t *testing.T) {
	l := openTestLog(t, NewMemoryBackend())

	first, err := l.Add(testEntry{Date: "2026-08-21", Time: "12:00", Note: "a"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	second, err := l.Add(testEntry{Date: "2026-08-21", Time: "13:00", Note: "b"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if first.ID != 3 || second.ID != 4 {
		t.Errorf("ids = %d, %d, want 3, 4 (seed max is 2)", first.ID, second.ID)
	}
	if got := l.All()[0].ID; got != second.ID {
		t.Errorf("newest entry id = %d, want %d (newest-first order)", got, second.ID)
	}
}

func TestLogAddWritesThrough(t *testing.T) {
	backend := NewMemoryBackend()
	l := openTestLog(t, backend)
	if _, err := l.Add(testEntry{Date: "2026-08-21", Time: "12:00", Note: "persisted"}); err != nil {
		t.Fatal(err)
	}

	data, ok, err := backend.Get("test_entries")
	if err != nil || !ok {
		t.Fatalf("Get() = %v, %v after Add", ok, err)
	}
	var persisted []testEntry
	if err := json.Unmarshal(data, &persisted); err != nil {
		t.Fatalf("persisted data is not valid JSON: %v", err)
	}
	if len(persisted) != 3 {
		t.Errorf("persisted %d entries, want 3", len(persisted))
	}
}

func TestLogGetUpdateRemove(t *testing.T) {
	l := openTestLog(t, NewMemoryBackend())

	entry, err := l.Get(1)
	if err != nil {
		t.Fatalf("Get(1) error = %v", err)
	}
	if entry.Note != "seed one" {
		t.Errorf("Get(1).Note = %q", entry.Note)
	}

	entry.Note = "updated"
	if _, err := l.Update(1, entry); err != nil {
		t.Fatalf("Update(1) error = %v", err)
	}
	entry, _ = l.Get(1)
	if entry.Note != "updated" {
		t.Errorf("after Update, Note = %q", entry.Note)
	}

	if err := l.Remove(1); err != nil {
		t.Fatalf("Remove(1) error = %v", err)
	}
	if _, err := l.Get(1); !errors.IsNotFound(err) {
		t.Errorf("Get(1) after Remove error = %v, want not found", err)
	}
}

func TestLogNotFound(t *testing.T) {
	l := openTestLog(t, NewMemoryBackend())

	if _, err := l.Get(99); !errors.IsNotFound(err) {
		t.Errorf("Get(99) error = %v, want ErrNotFound", err)
	}
	if _, err := l.Update(99, testEntry{Date: "2026-08-21", Time: "12:00"}); !errors.IsNotFound(err) {
		t.Errorf("Update(99) error = %v, want ErrNotFound", err)
	}
	if err := l.Remove(99); !errors.IsNotFound(err) {
		t.Errorf("Remove(99) error = %v, want ErrNotFound", err)
	}
}

func TestLogRemoveWhere(t *testing.T) {
	l := openTestLog(t, NewMemoryBackend())
	removed, err := l.RemoveWhere(func(e testEntry) bool { return e.ID == 2 })
	if err != nil {
		t.Fatalf("RemoveWhere() error = %v", err)
	}
	if removed != 1 || l.Len() != 1 {
		t.Errorf("removed = %d, len = %d, want 1 and 1", removed, l.Len())
	}
}

func TestLogEntriesFilter(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	l := openTestLog(t, NewMemoryBackend())
	mustAdd := func(e testEntry) {
		t.Helper()
		if _, err := l.Add(e); err != nil {
			t.Fatal(err)
		}
	}
	mustAdd(testEntry{Date: "2026-08-27", Time: "08:00", Note: "fresh walk"})
	mustAdd(testEntry{Date: "2026-07-01", Time: "08:00", Note: "old walk"})

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"all", Filter{Now: now}, 4},
		{"search", Filter{Search: "walk", Now: now}, 2},
		{"search case insensitive", Filter{Search: "WALK", Now: now}, 2},
		{"week", Filter{Period: PeriodWeek, Now: now}, 1},
		{"month", Filter{Period: PeriodMonth, Now: now}, 3},
		{"search and week", Filter{Search: "walk", Period: PeriodWeek, Now: now}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.Entries(tt.filter)
			if len(got) != tt.want {
				t.Errorf("Entries(%+v) returned %d entries, want %d", tt.filter, len(got), tt.want)
			}
		})
	}
}

func TestLogEntriesSortedNewestFirst(t *testing.T) {
	l := openTestLog(t, NewMemoryBackend())
	got := l.Entries(Filter{})
	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		if prev.Date < cur.Date || (prev.Date == cur.Date && prev.Time < cur.Time) {
			t.Fatalf("entries out of order at %d: %s %s before %s %s",
				i, prev.Date, prev.Time, cur.Date, cur.Time)
		}
	}
}

func TestLogMergeFirstWriteWins(t *testing.T) {
	l := openTestLog(t, NewMemoryBackend())

	incoming := []testEntry{
		{ID: 1, Date: "2026-08-25", Time: "10:00", Note: "conflicting import"},
		{ID: 10, Date: "2026-08-25", Time: "11:00", Note: "new import"},
		{ID: 0, Date: "2026-08-25", Time: "12:00", Note: "unset id"},
	}
	added, err := l.Merge(incoming)
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	if added != 1 {
		t.Errorf("Merge() added = %d, want 1", added)
	}

	existing, _ := l.Get(1)
	if existing.Note != "seed one" {
		t.Errorf("existing entry overwritten by import: %q", existing.Note)
	}

	// A second identical import must be a no-op.
	added, err = l.Merge(incoming)
	if err != nil {
		t.Fatalf("second Merge() error = %v", err)
	}
	if added != 0 {
		t.Errorf("second Merge() added = %d, want 0", added)
	}

	// New ids continue above the imported maximum.
	e, err := l.Add(testEntry{Date: "2026-08-26", Time: "09:00"})
	if err != nil {
		t.Fatal(err)
	}
	if e.ID != 11 {
		t.Errorf("Add after merge id = %d, want 11", e.ID)
	}
}

func TestLogClearRestoresSeedsOnReopen(t *testing.T) {
	backend := NewMemoryBackend()
	l := openTestLog(t, backend)
	if _, err := l.Add(testEntry{Date: "2026-08-21", Time: "12:00"}); err != nil {
		t.Fatal(err)
	}
	if err := l.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", l.Len())
	}

	reopened := openTestLog(t, backend)
	if reopened.Len() != 2 {
		t.Errorf("reopened Len() = %d, want seeds back", reopened.Len())
	}
}

func TestLogFileBackendRoundTrip(t *testing.T) {
	dir := t.TempDir()
	backend, err := NewFileBackend(dir)
	if err != nil {
		t.Fatal(err)
	}

	l := openTestLog(t, backend)
	if _, err := l.Add(testEntry{Date: "2026-08-21", Time: "12:00", Note: "roundtrip"}); err != nil {
		t.Fatal(err)
	}

	second, err := NewFileBackend(dir)
	if err != nil {
		t.Fatal(err)
	}
	reopened := openTestLog(t, second)
	if reopened.Len() != 3 {
		t.Errorf("reopened Len() = %d, want 3", reopened.Len())
	}
	if _, err := reopened.Get(3); err != nil {
		t.Errorf("Get(3) after reopen error = %v", err)
	}
}
