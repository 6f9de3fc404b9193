package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/neuropulse/neuropulse/internal/models"
	"github.com/neuropulse/neuropulse/internal/stats"
	"github.com/neuropulse/neuropulse/internal/storage"
)

// Stims renders the stimming tracker report.
func Stims(types []models.StimType, events []models.StimEvent, period storage.Period, now time.Time) string {
	s := stats.Stims(events, now)

	var b strings.Builder
	fmt.Fprintf(&b, "NEUROPULSE STIMMING TRACKER REPORT\n%s\n", sep('=', 60))
	fmt.Fprintf(&b, "Report Date: %s\n", now.Format("2006-01-02"))
	fmt.Fprintf(&b, "Period: %s\n", period.Label())
	fmt.Fprintf(&b, "Total Events: %d\n", s.Events)
	fmt.Fprintf(&b, "Average Intensity: %.1f/10\n\n", s.AvgIntensity)

	fmt.Fprintf(&b, "TRACKED STIMS\n%s\n", sep('-', 60))
	for _, t := range types {
		fmt.Fprintf(&b, "%s (%s)\n", t.Name, t.Category)
	}

	fmt.Fprintf(&b, "\nEVENTS BY STIM\n%s\n%s\n\n", sep('-', 60),
		tagLines(s.ByStim, "No events logged"))

	fmt.Fprintf(&b, "EVENTS BY CATEGORY\n%s\n%s\n\n", sep('-', 60),
		tagLines(stats.StimCategories(types, events), "No events logged"))

	fmt.Fprintf(&b, "EVENT LOG\n%s\n", sep('=', 60))
	blocks := make([]string, len(events))
	for i, e := range events {
		blocks[i] = fmt.Sprintf("\nDate: %s at %s\nStim: %s\nIntensity: %d/10\nContext: %s\n",
			e.Date, e.Time, e.StimName, e.Intensity, orNone(e.Context, "None"))
	}
	b.WriteString(strings.Join(blocks, "\n"+sep('-', 60)+"\n"))
	b.WriteString("\n")
	return b.String()
}

// Vitals renders the vitals report over glucose and blood pressure history.
func Vitals(glucose []models.GlucoseReading, bp []models.BPReading, now time.Time) string {
	s := stats.Vitals(glucose, bp)

	var b strings.Builder
	fmt.Fprintf(&b, "NEUROPULSE VITALS REPORT\n%s\n", sep('=', 60))
	fmt.Fprintf(&b, "Report Date: %s\n\n", now.Format("2006-01-02"))

	fmt.Fprintf(&b, "BLOOD GLUCOSE\n%s\n", sep('-', 60))
	if s.LatestGlucose != nil {
		fmt.Fprintf(&b, "Latest: %d mg/dL (%s) at %s %s\n",
			s.LatestGlucose.Value, s.GlucoseBand, s.LatestGlucose.Date, s.LatestGlucose.Time)
		fmt.Fprintf(&b, "Average: %.1f mg/dL over %d readings\n", s.AvgGlucose, len(glucose))
	} else {
		b.WriteString("No readings\n")
	}
	for _, r := range glucose {
		fmt.Fprintf(&b, "%s %s  %d mg/dL  %s  %s\n",
			r.Date, r.Time, r.Value, models.ClassifyGlucose(r.Value), r.Notes)
	}

	fmt.Fprintf(&b, "\nBLOOD PRESSURE\n%s\n", sep('-', 60))
	if s.LatestBP != nil {
		fmt.Fprintf(&b, "Latest: %d/%d mmHg (%s) at %s %s\n",
			s.LatestBP.Systolic, s.LatestBP.Diastolic, s.BPBand, s.LatestBP.Date, s.LatestBP.Time)
		fmt.Fprintf(&b, "Average: %.1f/%.1f mmHg over %d readings\n", s.AvgSystolic, s.AvgDiastolic, len(bp))
	} else {
		b.WriteString("No readings\n")
	}
	for _, r := range bp {
		fmt.Fprintf(&b, "%s %s  %d/%d mmHg  %s  %s\n",
			r.Date, r.Time, r.Systolic, r.Diastolic, models.ClassifyBP(r.Systolic, r.Diastolic), r.Notes)
	}
	return b.String()
}

// Meals renders the meal tracker report.
func Meals(entries []models.MealEntry, period storage.Period, now time.Time) string {
	s := stats.Meals(entries, now)

	var b strings.Builder
	fmt.Fprintf(&b, "NEUROPULSE MEAL TRACKER REPORT\n%s\n", sep('=', 60))
	fmt.Fprintf(&b, "Report Date: %s\n", now.Format("2006-01-02"))
	fmt.Fprintf(&b, "Period: %s\n", period.Label())
	fmt.Fprintf(&b, "Total Entries: %d\n", s.Entries)
	fmt.Fprintf(&b, "Today: %d meals, %d kcal\n", s.TodayMeals, s.TodayCalories)
	fmt.Fprintf(&b, "Average Calories (logged meals): %.1f\n\n", s.AvgCalories)

	fmt.Fprintf(&b, "MEALS BY TYPE\n%s\n", sep('-', 60))
	for _, t := range models.MealTypes {
		fmt.Fprintf(&b, "%s: %d\n", t, s.ByType[t])
	}

	fmt.Fprintf(&b, "\nMEAL LOG\n%s\n", sep('=', 60))
	blocks := make([]string, len(entries))
	for i, e := range entries {
		var eb strings.Builder
		fmt.Fprintf(&eb, "\nDate: %s at %s\n", e.Date, e.Time)
		fmt.Fprintf(&eb, "Meal: %s (%s)\n", e.Name, e.Type)
		if e.Calories > 0 {
			fmt.Fprintf(&eb, "Calories: %d\n", e.Calories)
		}
		fmt.Fprintf(&eb, "Tags: %s\n", joinOr(e.Tags, "None"))
		fmt.Fprintf(&eb, "Notes: %s\n", orNone(e.Notes, "No notes"))
		blocks[i] = eb.String()
	}
	b.WriteString(strings.Join(blocks, "\n"+sep('-', 60)+"\n"))
	b.WriteString("\n")
	return b.String()
}
