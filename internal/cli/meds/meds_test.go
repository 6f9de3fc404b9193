package meds

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/neuropulse/neuropulse/internal/cli"
	"github.com/neuropulse/neuropulse/internal/constants"
	"github.com/neuropulse/neuropulse/internal/errors"
	"github.com/neuropulse/neuropulse/internal/models"
	"github.com/neuropulse/neuropulse/internal/storage"
)

func newContext(t *testing.T, meds []models.Medication, doses []models.DoseRecord) *cli.Context {
	t.Helper()
	backend := storage.NewMemoryBackend()
	set := func(key string, v any) {
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatal(err)
		}
		if err := backend.Set(key, data); err != nil {
			t.Fatal(err)
		}
	}
	set(constants.KeyMedications, meds)
	set(constants.KeyDoseHistory, doses)
	return &cli.Context{Backend: backend, DataDir: t.TempDir()}
}

func testMed(id int, name string) models.Medication {
	return models.Medication{
		ID: id, Name: name, Dosage: "50mg", Form: models.FormTablet,
		Frequency: models.FreqDaily, Times: []string{"09:00"},
		StartDate: "2026-01-15", Active: true,
	}
}

func TestDoseRelogReplacesSlot(t *testing.T) {
	unrelated := models.DoseRecord{
		ID: 1, MedicationID: 9, MedicationName: "Other", ScheduledTime: "09:00",
		Date: "2026-01-20", Status: models.DoseMissed,
	}
	ctx := newContext(t, []models.Medication{testMed(1, "Sertraline")},
		[]models.DoseRecord{unrelated})

	taken := DoseCmd{Medication: 1, Status: "taken"}
	if err := taken.Run(ctx); err != nil {
		t.Fatalf("dose taken: %v", err)
	}
	missed := DoseCmd{Medication: 1, Status: "missed", Time: "09:00"}
	if err := missed.Run(ctx); err != nil {
		t.Fatalf("dose missed: %v", err)
	}

	doses, err := ctx.DoseLog()
	if err != nil {
		t.Fatal(err)
	}
	today := time.Now().Format(constants.DateFormat)
	var matches []models.DoseRecord
	for _, d := range doses.All() {
		if d.MedicationID == 1 && d.Date == today && d.ScheduledTime == "09:00" {
			matches = append(matches, d)
		}
	}
	if len(matches) != 1 {
		t.Fatalf("slot has %d records, want 1 (re-log replaces)", len(matches))
	}
	if matches[0].Status != models.DoseMissed {
		t.Errorf("Status = %s, want missed (latest log wins)", matches[0].Status)
	}
	if matches[0].TakenTime != nil {
		t.Errorf("TakenTime = %q, want nil for a missed dose", *matches[0].TakenTime)
	}
}

func TestDeleteCascadesDoseHistory(t *testing.T) {
	meds := []models.Medication{testMed(1, "Sertraline"), testMed(2, "Melatonin")}
	doses := []models.DoseRecord{
		{ID: 1, MedicationID: 1, MedicationName: "Sertraline", ScheduledTime: "09:00",
			Date: "2026-08-01", Status: models.DoseTaken},
		{ID: 2, MedicationID: 1, MedicationName: "Sertraline", ScheduledTime: "09:00",
			Date: "2026-08-02", Status: models.DoseMissed},
		{ID: 3, MedicationID: 2, MedicationName: "Melatonin", ScheduledTime: "09:00",
			Date: "2026-08-01", Status: models.DoseTaken},
	}
	ctx := newContext(t, meds, doses)

	del := DeleteCmd{ID: 1, Yes: true}
	if err := del.Run(ctx); err != nil {
		t.Fatalf("delete: %v", err)
	}

	medsLog, err := ctx.MedsLog()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := medsLog.Get(1); !errors.IsNotFound(err) {
		t.Errorf("Get(1) error = %v, want not-found", err)
	}

	doseLog, err := ctx.DoseLog()
	if err != nil {
		t.Fatal(err)
	}
	remaining := doseLog.All()
	if len(remaining) != 1 {
		t.Fatalf("len(doses) = %d after cascade, want 1", len(remaining))
	}
	if remaining[0].MedicationID != 2 {
		t.Errorf("surviving record belongs to medication %d, want 2", remaining[0].MedicationID)
	}
}
