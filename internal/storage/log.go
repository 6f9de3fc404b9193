package storage

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/neuropulse/neuropulse/internal/constants"
	"github.com/neuropulse/neuropulse/internal/errors"
	"github.com/neuropulse/neuropulse/internal/logger"
)

// Entry is implemented by every tracker record type held in a Log.
type Entry[E any] interface {
	EntryID() int
	// WithID returns a copy of the entry with the given id.
	WithID(id int) E
	// EntryDate returns the record's calendar date (YYYY-MM-DD), or ""
	// for undated records.
	EntryDate() string
	// EntryTime returns the record's wall-clock time (HH:MM), or "".
	EntryTime() string
	// SearchText returns the lowercase haystack used for substring search.
	SearchText() string
}

// Period bounds a filter to a trailing time window, computed against
// wall-clock now at call time.
type Period string

const (
	PeriodAll   Period = "all"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// Label returns the display name for a period.
func (p Period) Label() string {
	switch p {
	case PeriodWeek:
		return "Last 7 days"
	case PeriodMonth:
		return "Last 30 days"
	default:
		return "All time"
	}
}

// Filter selects entries by free-text substring match and time window.
type Filter struct {
	Search string
	Period Period
	// Now overrides the wall clock for the period bound. Zero means
	// time.Now().
	Now time.Time
}

func (f Filter) now() time.Time {
	if f.Now.IsZero() {
		return time.Now()
	}
	return f.Now
}

// Log is an ordered, persisted collection of entries for one tracker.
// Entries are kept newest-first. Every mutation writes the whole collection
// through to the backend under the log's fixed key.
type Log[E Entry[E]] struct {
	backend Backend
	key     string
	seed    func() []E
	entries []E
	nextID  int
	loaded  bool
}

// NewLog creates a log over the given backend key. seed supplies the
// fallback dataset used when the persisted value is missing, empty, or
// malformed; it may return an empty slice.
func NewLog[E Entry[E]](backend Backend, key string, seed func() []E) *Log[E] {
	return &Log[E]{backend: backend, key: key, seed: seed}
}

// Open loads the persisted collection. Malformed persisted data is
// discarded in favor of the seed: local state must never make the tool
// unusable.
func (l *Log[E]) Open() error {
	data, ok, err := l.backend.Get(l.key)
	if err != nil {
		return err
	}

	if ok {
		var entries []E
		if err := json.Unmarshal(data, &entries); err != nil {
			logger.Warn("Discarding malformed persisted data", "key", l.key, "error", err)
		} else if len(entries) > 0 {
			l.entries = entries
			l.resetNextID()
			l.loaded = true
			return nil
		}
	}

	l.entries = l.seed()
	l.resetNextID()
	l.loaded = true
	return nil
}

func (l *Log[E]) resetNextID() {
	l.nextID = 1
	for _, e := range l.entries {
		if e.EntryID() >= l.nextID {
			l.nextID = e.EntryID() + 1
		}
	}
}

func (l *Log[E]) persist() error {
	data, err := json.MarshalIndent(l.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", l.key, err)
	}
	if err := l.backend.Set(l.key, data); err != nil {
		logger.Error("Write-through failed", "key", l.key, "error", err)
		return err
	}
	return nil
}

// Len returns the number of entries.
func (l *Log[E]) Len() int { return len(l.entries) }

// Add assigns the next id, prepends the entry, and writes through.
func (l *Log[E]) Add(entry E) (E, error) {
	entry = entry.WithID(l.nextID)
	l.nextID++
	l.entries = append([]E{entry}, l.entries...)
	if err := l.persist(); err != nil {
		return entry, err
	}
	return entry, nil
}

// Get returns the entry with the given id, or ErrNotFound.
func (l *Log[E]) Get(id int) (E, error) {
	for _, e := range l.entries {
		if e.EntryID() == id {
			return e, nil
		}
	}
	var zero E
	return zero, fmt.Errorf("entry %d: %w", id, errors.ErrNotFound)
}

// Update replaces the whole record with the given id and writes through.
func (l *Log[E]) Update(id int, entry E) (E, error) {
	for i, e := range l.entries {
		if e.EntryID() == id {
			entry = entry.WithID(id)
			l.entries[i] = entry
			if err := l.persist(); err != nil {
				return entry, err
			}
			return entry, nil
		}
	}
	var zero E
	return zero, fmt.Errorf("entry %d: %w", id, errors.ErrNotFound)
}

// Remove deletes the entry with the given id and writes through. There is
// no soft delete; removal is irreversible.
func (l *Log[E]) Remove(id int) error {
	for i, e := range l.entries {
		if e.EntryID() == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return l.persist()
		}
	}
	return fmt.Errorf("entry %d: %w", id, errors.ErrNotFound)
}

// RemoveWhere deletes every entry matching the predicate and writes
// through. It returns the number of entries removed.
func (l *Log[E]) RemoveWhere(match func(E) bool) (int, error) {
	kept := l.entries[:0:0]
	removed := 0
	for _, e := range l.entries {
		if match(e) {
			removed++
		} else {
			kept = append(kept, e)
		}
	}
	if removed == 0 {
		return 0, nil
	}
	l.entries = kept
	return removed, l.persist()
}

// All returns a copy of the collection in store order (newest-first).
func (l *Log[E]) All() []E {
	out := make([]E, len(l.entries))
	copy(out, l.entries)
	return out
}

// Entries returns a fresh slice of entries matching the filter, sorted by
// (date, time) descending. The underlying store order is not touched.
func (l *Log[E]) Entries(f Filter) []E {
	out := make([]E, 0, len(l.entries))

	term := strings.ToLower(f.Search)
	var cutoff time.Time
	if f.Period == PeriodWeek {
		cutoff = f.now().AddDate(0, 0, -7)
	} else if f.Period == PeriodMonth {
		cutoff = f.now().AddDate(0, -1, 0)
	}

	for _, e := range l.entries {
		if term != "" && !strings.Contains(e.SearchText(), term) {
			continue
		}
		if !cutoff.IsZero() {
			d, err := time.Parse(constants.DateFormat, e.EntryDate())
			if err != nil || d.Before(cutoff) {
				continue
			}
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].EntryDate() != out[j].EntryDate() {
			return out[i].EntryDate() > out[j].EntryDate()
		}
		return out[i].EntryTime() > out[j].EntryTime()
	})
	return out
}

// Merge imports entries, skipping any whose id already exists (or is
// unset). First write wins; existing entries are never overwritten. It
// returns how many entries were added.
func (l *Log[E]) Merge(incoming []E) (int, error) {
	existing := make(map[int]bool, len(l.entries))
	for _, e := range l.entries {
		existing[e.EntryID()] = true
	}

	added := 0
	for _, e := range incoming {
		id := e.EntryID()
		if id <= 0 || existing[id] {
			continue
		}
		existing[id] = true
		l.entries = append(l.entries, e)
		added++
	}

	if added == 0 {
		return 0, nil
	}
	l.resetNextID()
	return added, l.persist()
}

// Clear removes all entries and deletes the persisted key. The seed
// dataset returns on the next Open.
func (l *Log[E]) Clear() error {
	l.entries = nil
	l.nextID = 1
	return l.backend.Delete(l.key)
}
