package backup

import (
	"strings"
	"testing"

	"github.com/neuropulse/neuropulse/internal/storage"
)

func seededBackend(t *testing.T) storage.Backend {
	t.Helper()
	backend := storage.NewMemoryBackend()
	if err := backend.Set("mood-entries", []byte(`[{"id":1}]`)); err != nil {
		t.Fatal(err)
	}
	if err := backend.Set("medications", []byte(`[{"id":1},{"id":2}]`)); err != nil {
		t.Fatal(err)
	}
	return backend
}

func TestCreateAndList(t *testing.T) {
	backend := seededBackend(t)
	mgr := NewManager(backend, t.TempDir())

	path, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !strings.HasPrefix(path, mgr.Dir()) {
		t.Errorf("snapshot %s not under %s", path, mgr.Dir())
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("List() = %d backups, want 1", len(backups))
	}
	if backups[0].Keys != 2 {
		t.Errorf("Keys = %d, want 2", backups[0].Keys)
	}
}

func TestCreateEmptyStore(t *testing.T) {
	mgr := NewManager(storage.NewMemoryBackend(), t.TempDir())
	if _, err := mgr.Create(); err == nil {
		t.Error("Create() = nil error for an empty store")
	}
}

func TestListEmptyDir(t *testing.T) {
	mgr := NewManager(storage.NewMemoryBackend(), t.TempDir())
	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("List() = %d backups, want 0", len(backups))
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	backend := seededBackend(t)
	mgr := NewManager(backend, t.TempDir())

	path, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Mutate the live data, then restore the snapshot over it.
	if err := backend.Set("mood-entries", []byte(`[]`)); err != nil {
		t.Fatal(err)
	}
	if err := backend.Delete("medications"); err != nil {
		t.Fatal(err)
	}

	if err := mgr.Restore(path); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	data, ok, err := backend.Get("mood-entries")
	if err != nil || !ok {
		t.Fatalf("Get(mood-entries) = %v, %v", ok, err)
	}
	if string(data) != `[{"id":1}]` {
		t.Errorf("mood-entries = %s after restore", data)
	}
	if _, ok, _ := backend.Get("medications"); !ok {
		t.Error("medications missing after restore")
	}
}

func TestRestoreMissingSnapshot(t *testing.T) {
	mgr := NewManager(seededBackend(t), t.TempDir())
	if err := mgr.Restore(mgr.Dir() + "/no-such-snapshot"); err == nil {
		t.Error("Restore() = nil error for a missing snapshot")
	}
}

func TestRestoreTakesSafetySnapshot(t *testing.T) {
	backend := seededBackend(t)
	mgr := NewManager(backend, t.TempDir())

	path, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := mgr.Restore(path); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(backups) < 2 {
		t.Errorf("List() = %d backups, want the pre-restore safety snapshot too", len(backups))
	}
}
