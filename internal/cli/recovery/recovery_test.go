package recovery

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/neuropulse/neuropulse/internal/cli"
	"github.com/neuropulse/neuropulse/internal/constants"
	"github.com/neuropulse/neuropulse/internal/models"
	"github.com/neuropulse/neuropulse/internal/storage"
)

func newContext(t *testing.T, entries []models.RecoveryEntry) *cli.Context {
	t.Helper()
	backend := storage.NewMemoryBackend()
	data, err := json.Marshal(entries)
	if err != nil {
		t.Fatal(err)
	}
	if err := backend.Set(constants.KeyRecoveryEntries, data); err != nil {
		t.Fatal(err)
	}
	return &cli.Context{Backend: backend, DataDir: t.TempDir()}
}

func TestLogStampsStreakSnapshot(t *testing.T) {
	relapseDate := time.Now().AddDate(0, 0, -10).Format(constants.DateFormat)
	ctx := newContext(t, []models.RecoveryEntry{
		{ID: 1, Date: relapseDate, Time: "12:00", Kind: models.KindRelapse},
	})

	cmd := LogCmd{Kind: "urge_resisted", Urge: 5, Resistance: 6}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("log: %v", err)
	}

	log, err := ctx.RecoveryLog()
	if err != nil {
		t.Fatal(err)
	}
	newest := log.All()[0]
	if newest.Kind != models.KindUrgeResisted {
		t.Fatalf("newest entry kind = %s, want urge_resisted", newest.Kind)
	}
	if newest.DaysClean != 10 {
		t.Errorf("DaysClean = %d, want 10 (streak at creation time)", newest.DaysClean)
	}
}

func TestLogRelapseStampsZero(t *testing.T) {
	cleanSince := time.Now().AddDate(0, 0, -5).Format(constants.DateFormat)
	ctx := newContext(t, []models.RecoveryEntry{
		{ID: 1, Date: cleanSince, Time: "12:00", Kind: models.KindUrgeResisted,
			UrgeIntensity: 4, ResistanceStrength: 7, DaysClean: 3},
	})

	cmd := LogCmd{Kind: "relapse", Lost: 500}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("log: %v", err)
	}

	log, err := ctx.RecoveryLog()
	if err != nil {
		t.Fatal(err)
	}
	if newest := log.All()[0]; newest.DaysClean != 0 {
		t.Errorf("relapse DaysClean = %d, want 0", newest.DaysClean)
	}
}

func TestEditKeepsStreakSnapshot(t *testing.T) {
	entryDate := time.Now().AddDate(0, 0, -2).Format(constants.DateFormat)
	ctx := newContext(t, []models.RecoveryEntry{
		{ID: 1, Date: entryDate, Time: "12:00", Kind: models.KindUrgeResisted,
			UrgeIntensity: 4, ResistanceStrength: 7, DaysClean: 14},
	})

	notes := "updated later"
	cmd := EditCmd{ID: 1, Urge: -1, Resistance: -1, Saved: -1, Lost: -1, Notes: &notes}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("edit: %v", err)
	}

	log, err := ctx.RecoveryLog()
	if err != nil {
		t.Fatal(err)
	}
	entry, err := log.Get(1)
	if err != nil {
		t.Fatal(err)
	}
	if entry.Notes != "updated later" {
		t.Errorf("Notes = %q, edit did not apply", entry.Notes)
	}
	// The stored streak snapshot is never recomputed, even through an edit.
	if entry.DaysClean != 14 {
		t.Errorf("DaysClean = %d after edit, want the stored 14", entry.DaysClean)
	}
}
