package stats

import (
	"testing"

	"github.com/neuropulse/neuropulse/internal/models"
)

func TestVitalsStats(t *testing.T) {
	glucose := []models.GlucoseReading{
		{ID: 3, Date: "2026-08-28", Time: "08:00", Value: 150},
		{ID: 2, Date: "2026-08-27", Time: "08:00", Value: 100},
		{ID: 1, Date: "2026-08-26", Time: "08:00", Value: 110},
	}
	bp := []models.BPReading{
		{ID: 2, Date: "2026-08-28", Time: "08:05", Systolic: 142, Diastolic: 92},
		{ID: 1, Date: "2026-08-27", Time: "08:05", Systolic: 118, Diastolic: 78},
	}

	s := Vitals(glucose, bp)
	if s.LatestGlucose == nil || s.LatestGlucose.ID != 3 {
		t.Fatalf("LatestGlucose = %+v, want the newest reading", s.LatestGlucose)
	}
	if s.GlucoseBand != models.GlucoseElevated {
		t.Errorf("GlucoseBand = %v, want elevated", s.GlucoseBand)
	}
	if s.AvgGlucose != 120.0 {
		t.Errorf("AvgGlucose = %v, want 120.0", s.AvgGlucose)
	}
	if s.LatestBP == nil || s.LatestBP.ID != 2 {
		t.Fatalf("LatestBP = %+v, want the newest reading", s.LatestBP)
	}
	if s.BPBand != models.BPStage2 {
		t.Errorf("BPBand = %v, want stage2", s.BPBand)
	}
	if s.AvgSystolic != 130.0 || s.AvgDiastolic != 85.0 {
		t.Errorf("averages = %v/%v, want 130.0/85.0", s.AvgSystolic, s.AvgDiastolic)
	}
}

func TestVitalsStatsEmpty(t *testing.T) {
	s := Vitals(nil, nil)
	if s.LatestGlucose != nil || s.LatestBP != nil {
		t.Errorf("empty stats carry latest readings: %+v", s)
	}
	if s.AvgGlucose != 0 || s.AvgSystolic != 0 {
		t.Errorf("empty stats carry averages: %+v", s)
	}
}
