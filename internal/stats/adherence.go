package stats

import (
	"sort"
	"time"

	"github.com/neuropulse/neuropulse/internal/constants"
	"github.com/neuropulse/neuropulse/internal/models"
)

// AdherenceStats summarizes medication adherence.
type AdherenceStats struct {
	ActiveMeds int
	TotalMeds  int
	// Rate is the trailing 7-day adherence percentage, one decimal.
	Rate float64
	// TodayTaken / TodayTotal / TodayRate cover today's schedule only.
	TodayTaken int
	TodayTotal int
	TodayRate  float64
}

// DayAdherence is one day's schedule breakdown, chart-ready.
type DayAdherence struct {
	Date    string
	Taken   int
	Missed  int
	Pending int
}

// scheduledPerDay is the number of dose slots all active medications
// produce on any one day.
func scheduledPerDay(meds []models.Medication) int {
	n := 0
	for _, m := range meds {
		if m.Active {
			n += len(m.Times)
		}
	}
	return n
}

// TodaySlots expands active medications into today's expected dose slots
// and matches them against dose history (same medication, date, and
// scheduled time). Unmatched slots are pending. Slots are ordered by
// scheduled time.
func TodaySlots(meds []models.Medication, doses []models.DoseRecord, now time.Time) []models.DoseSlot {
	today := now.Format(constants.DateFormat)

	var slots []models.DoseSlot
	for _, m := range meds {
		if !m.Active {
			continue
		}
		for _, t := range m.Times {
			slot := models.DoseSlot{
				MedicationID:   m.ID,
				MedicationName: m.Name,
				ScheduledTime:  t,
				Date:           today,
				Color:          m.Color,
				Status:         models.DosePending,
			}
			for _, d := range doses {
				if d.MedicationID == m.ID && d.Date == today && d.ScheduledTime == t {
					slot.Status = d.Status
					slot.TakenTime = d.TakenTime
					slot.Notes = d.Notes
					slot.DoseID = d.ID
					break
				}
			}
			slots = append(slots, slot)
		}
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].ScheduledTime < slots[j].ScheduledTime
	})
	return slots
}

// Adherence computes the trailing 7-day adherence rate plus today's
// progress. scheduled counts the current active roster's daily slots for
// each of the 7 days; taken counts history rows with status taken on that
// day. Rate is 0 when nothing is scheduled.
func Adherence(meds []models.Medication, doses []models.DoseRecord, now time.Time) AdherenceStats {
	s := AdherenceStats{TotalMeds: len(meds)}
	for _, m := range meds {
		if m.Active {
			s.ActiveMeds++
		}
	}

	perDay := scheduledPerDay(meds)
	scheduled, taken := 0, 0
	for i := 0; i < 7; i++ {
		day := now.AddDate(0, 0, -i).Format(constants.DateFormat)
		scheduled += perDay
		for _, d := range doses {
			if d.Date == day && d.Status == models.DoseTaken {
				taken++
			}
		}
	}
	if scheduled > 0 {
		s.Rate = Round1(float64(taken) / float64(scheduled) * 100)
	}

	slots := TodaySlots(meds, doses, now)
	s.TodayTotal = len(slots)
	for _, slot := range slots {
		if slot.Status == models.DoseTaken {
			s.TodayTaken++
		}
	}
	if s.TodayTotal > 0 {
		s.TodayRate = Round1(float64(s.TodayTaken) / float64(s.TodayTotal) * 100)
	}
	return s
}

// AdherenceSeries breaks the last 7 days into taken/missed/pending counts,
// oldest day first.
func AdherenceSeries(meds []models.Medication, doses []models.DoseRecord, now time.Time) []DayAdherence {
	perDay := scheduledPerDay(meds)

	out := make([]DayAdherence, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format(constants.DateFormat)
		row := DayAdherence{Date: day}
		for _, d := range doses {
			if d.Date != day {
				continue
			}
			switch d.Status {
			case models.DoseTaken:
				row.Taken++
			case models.DoseMissed:
				row.Missed++
			}
		}
		if pending := perDay - row.Taken - row.Missed; pending > 0 {
			row.Pending = pending
		}
		out = append(out, row)
	}
	return out
}
