package stats

import (
	"testing"
	"time"

	"github.com/neuropulse/neuropulse/internal/models"
)

var recoveryNow = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func TestDaysClean(t *testing.T) {
	tests := []struct {
		name    string
		entries []models.RecoveryEntry
		want    int
	}{
		{"no entries", nil, 0},
		{
			"since last relapse",
			[]models.RecoveryEntry{
				{ID: 1, Date: "2026-08-25", Time: "10:00", Kind: models.KindUrgeResisted},
				{ID: 2, Date: "2026-08-18", Time: "22:00", Kind: models.KindRelapse},
				{ID: 3, Date: "2026-08-10", Time: "09:00", Kind: models.KindRelapse},
			},
			10,
		},
		{
			"no relapse counts from earliest entry",
			[]models.RecoveryEntry{
				{ID: 1, Date: "2026-08-26", Time: "10:00", Kind: models.KindUrgeResisted},
				{ID: 2, Date: "2026-08-21", Time: "10:00", Kind: models.KindCloseCall},
			},
			7,
		},
		{
			"relapse today",
			[]models.RecoveryEntry{
				{ID: 1, Date: "2026-08-28", Time: "09:00", Kind: models.KindRelapse},
			},
			0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysClean(tt.entries, recoveryNow); got != tt.want {
				t.Errorf("DaysClean() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRecoveryStats(t *testing.T) {
	entries := []models.RecoveryEntry{
		{ID: 1, Date: "2026-08-27", Time: "10:00", Kind: models.KindUrgeResisted,
			UrgeIntensity: 8, MoneyNotSpent: 5000},
		{ID: 2, Date: "2026-08-25", Time: "22:00", Kind: models.KindRelapse,
			AmountLost: 8000, AmountWon: 1000},
		{ID: 3, Date: "2026-08-24", Time: "15:00", Kind: models.KindUrgeResisted,
			UrgeIntensity: 6, MoneyNotSpent: 10000},
		{ID: 4, Date: "2026-08-23", Time: "12:00", Kind: models.KindCloseCall,
			UrgeIntensity: 4},
	}

	s := Recovery(entries, recoveryNow)
	if s.TotalResisted != 2 || s.TotalRelapses != 1 || s.TotalCloseCalls != 1 {
		t.Errorf("counts = %d/%d/%d, want 2/1/1", s.TotalResisted, s.TotalRelapses, s.TotalCloseCalls)
	}
	if s.MoneySaved != 15000 {
		t.Errorf("MoneySaved = %d, want 15000", s.MoneySaved)
	}
	// Winnings do not offset losses in the financial summary.
	if s.MoneyLost != 8000 {
		t.Errorf("MoneyLost = %d, want 8000", s.MoneyLost)
	}
	if s.Net != 7000 {
		t.Errorf("Net = %d, want 7000", s.Net)
	}
	if want := 66.7; s.ResistanceRate != want {
		t.Errorf("ResistanceRate = %v, want %v (close calls excluded)", s.ResistanceRate, want)
	}
	if want := 6.0; s.AvgUrgeIntensity != want {
		t.Errorf("AvgUrgeIntensity = %v, want %v", s.AvgUrgeIntensity, want)
	}
	if s.DaysClean != 3 {
		t.Errorf("DaysClean = %d, want 3 (relapse on the 25th)", s.DaysClean)
	}
}

func TestRecoveryStatsEmpty(t *testing.T) {
	s := Recovery(nil, recoveryNow)
	if s.ResistanceRate != 0 || s.AvgUrgeIntensity != 0 || s.DaysClean != 0 {
		t.Errorf("empty stats = %+v, want zeros", s)
	}
}
