package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/neuropulse/neuropulse/internal/constants"
	"github.com/neuropulse/neuropulse/internal/models"
	"github.com/neuropulse/neuropulse/internal/storage"
)

var reportNow = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func TestFilenames(t *testing.T) {
	tests := []struct {
		tracker constants.Tracker
		report  string
		data    string
	}{
		{constants.TrackerMood, "neuropulse-mood-report-2026-08-28.txt", "neuropulse-mood-entries-2026-08-28.json"},
		{constants.TrackerMeds, "medication-report-2026-08-28.txt", "medication-data-2026-08-28.json"},
		{constants.TrackerRecovery, "gambling-recovery-report-2026-08-28.txt", "gambling-recovery-data-2026-08-28.json"},
		{constants.TrackerVitals, "vitals-report-2026-08-28.txt", "vitals-data-2026-08-28.json"},
	}
	for _, tt := range tests {
		if got := Filename(tt.tracker, reportNow); got != tt.report {
			t.Errorf("Filename(%s) = %q, want %q", tt.tracker, got, tt.report)
		}
		if got := DataFilename(tt.tracker, reportNow); got != tt.data {
			t.Errorf("DataFilename(%s) = %q, want %q", tt.tracker, got, tt.data)
		}
	}
}

func TestDecodeArrayRejectsNonArray(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"object", `{"entries": []}`},
		{"string", `"hello"`},
		{"number", `42`},
		{"garbage", `not json at all`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeArray[models.MoodEntry]([]byte(tt.data)); err == nil {
				t.Error("DecodeArray() = nil error, want rejection")
			}
		})
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	entries := models.SeedMoodEntries()
	data, err := ExportJSON(entries)
	if err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}

	decoded, err := DecodeArray[models.MoodEntry](data)
	if err != nil {
		t.Fatalf("DecodeArray() error = %v", err)
	}
	if len(decoded) != len(entries) {
		t.Fatalf("round trip lost entries: %d != %d", len(decoded), len(entries))
	}
	if decoded[0].ID != entries[0].ID || decoded[0].MoodScore != entries[0].MoodScore {
		t.Errorf("round trip changed data: %+v != %+v", decoded[0], entries[0])
	}
}

func TestExportUsesWebFieldNames(t *testing.T) {
	data, err := ExportJSON(models.SeedMoodEntries())
	if err != nil {
		t.Fatal(err)
	}
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{"moodScore", "moodLabel", "moodEmoji"} {
		if _, ok := raw[0][field]; !ok {
			t.Errorf("export missing field %q", field)
		}
	}
}

func TestMoodReportSections(t *testing.T) {
	text := Mood(models.SeedMoodEntries(), storage.PeriodAll, reportNow)

	for _, want := range []string{
		"NEUROPULSE MOOD TRACKER REPORT",
		"Report Date: 2026-08-28",
		"Period: All time",
		"STATISTICS",
		"Average Mood Score:",
		"Mood Trend:",
		"TOP ACTIVITIES",
		"TOP TRIGGERS",
		"MOOD ENTRIES",
		strings.Repeat("=", 60),
	} {
		if !strings.Contains(text, want) {
			t.Errorf("mood report missing %q", want)
		}
	}
}

func TestMoodReportEmptyEntrySet(t *testing.T) {
	text := Mood(nil, storage.PeriodWeek, reportNow)
	if !strings.Contains(text, "Total Entries: 0") {
		t.Error("empty report should state zero entries")
	}
	if !strings.Contains(text, "No activities tracked") {
		t.Error("empty report should note missing activities")
	}
	if !strings.Contains(text, "Period: Last 7 days") {
		t.Error("report should carry the selected period label")
	}
}

func TestRecoveryReportSections(t *testing.T) {
	text := Recovery(models.SeedRecoveryEntries(), storage.PeriodAll, reportNow)

	for _, want := range []string{
		"NEUROPULSE GAMBLING ADDICTION RECOVERY TRACKER",
		"RECOVERY STATISTICS",
		"Days Clean:",
		"FINANCIAL IMPACT",
		"Net Savings:",
		"TOP TRIGGERS",
		"MOST EFFECTIVE COPING STRATEGIES",
		"DETAILED ENTRIES",
		"EMERGENCY RESOURCES",
		"988",
		strings.Repeat("=", 70),
	} {
		if !strings.Contains(text, want) {
			t.Errorf("recovery report missing %q", want)
		}
	}
}

func TestMedicationReportSections(t *testing.T) {
	text := Medication(models.SeedMedications(), models.SeedDoseHistory(), reportNow)

	for _, want := range []string{
		"NEUROPULSE MEDICATION TRACKER REPORT",
		"Total Medications:",
		"CURRENT MEDICATIONS",
		"RECENT DOSE HISTORY (Last 7 Days)",
		"ADHERENCE SUMMARY",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("medication report missing %q", want)
		}
	}
	for _, med := range models.SeedMedications() {
		if med.Active && !strings.Contains(text, med.Name) {
			t.Errorf("active medication %s missing from report", med.Name)
		}
	}
}

func TestVitalsReportClassifiesReadings(t *testing.T) {
	glucose := []models.GlucoseReading{
		{ID: 1, Date: "2026-08-28", Time: "08:00", Value: 250},
	}
	bp := []models.BPReading{
		{ID: 1, Date: "2026-08-28", Time: "08:05", Systolic: 118, Diastolic: 76},
	}
	text := Vitals(glucose, bp, reportNow)
	if !strings.Contains(text, "250 mg/dL") || !strings.Contains(text, "high") {
		t.Error("glucose reading or band missing")
	}
	if !strings.Contains(text, "118/76") || !strings.Contains(text, "normal") {
		t.Error("bp reading or band missing")
	}
}
