package stats

import (
	"sort"
	"time"

	"github.com/neuropulse/neuropulse/internal/constants"
	"github.com/neuropulse/neuropulse/internal/models"
)

// RecoveryStats summarizes a gambling-recovery entry set.
type RecoveryStats struct {
	DaysClean        int
	TotalResisted    int
	TotalRelapses    int
	TotalCloseCalls  int
	MoneySaved       int
	MoneyLost        int
	Net              int
	AvgUrgeIntensity float64
	// ResistanceRate is resisted / (resisted + relapses) as a percentage,
	// one decimal. Close calls do not count either way.
	ResistanceRate float64
}

// DaysClean returns whole days elapsed since the most recent relapse, or
// since the earliest entry when no relapse has ever been logged. No
// entries means 0.
func DaysClean(entries []models.RecoveryEntry, now time.Time) int {
	if len(entries) == 0 {
		return 0
	}

	sorted := make([]models.RecoveryEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date > sorted[j].Date
		}
		return sorted[i].Time > sorted[j].Time
	})

	since := sorted[len(sorted)-1].Date
	for _, e := range sorted {
		if e.Kind == models.KindRelapse {
			since = e.Date
			break
		}
	}

	d, err := time.Parse(constants.DateFormat, since)
	if err != nil {
		return 0
	}
	days := int(now.Sub(d).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// Recovery computes summary stats over a recovery entry set.
func Recovery(entries []models.RecoveryEntry, now time.Time) RecoveryStats {
	s := RecoveryStats{DaysClean: DaysClean(entries, now)}

	urgeSum, urgeCount := 0, 0
	for _, e := range entries {
		switch e.Kind {
		case models.KindUrgeResisted:
			s.TotalResisted++
		case models.KindRelapse:
			s.TotalRelapses++
		case models.KindCloseCall:
			s.TotalCloseCalls++
		}
		s.MoneySaved += e.MoneyNotSpent
		s.MoneyLost += e.AmountLost
		if e.UrgeIntensity > 0 {
			urgeSum += e.UrgeIntensity
			urgeCount++
		}
	}
	s.Net = s.MoneySaved - s.MoneyLost

	if urgeCount > 0 {
		s.AvgUrgeIntensity = Round1(float64(urgeSum) / float64(urgeCount))
	}
	if total := s.TotalResisted + s.TotalRelapses; total > 0 {
		s.ResistanceRate = Round1(float64(s.TotalResisted) / float64(total) * 100)
	}
	return s
}
