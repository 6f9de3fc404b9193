package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/neuropulse/neuropulse/internal/constants"
	"github.com/neuropulse/neuropulse/internal/models"
	"github.com/neuropulse/neuropulse/internal/stats"
)

// MedicationExport is the combined export shape: roster plus dose history
// plus the export timestamp, matching the web app's JSON export.
type MedicationExport struct {
	Medications []models.Medication `json:"medications"`
	DoseHistory []models.DoseRecord `json:"doseHistory"`
	ExportDate  string              `json:"exportDate"`
}

// Medication renders the medication tracker report: active roster, the last
// 7 days of dose history, and the adherence summary.
func Medication(meds []models.Medication, doses []models.DoseRecord, now time.Time) string {
	s := stats.Adherence(meds, doses, now)

	var b strings.Builder
	fmt.Fprintf(&b, "NEUROPULSE MEDICATION TRACKER REPORT\n%s\n", sep('=', 70))
	fmt.Fprintf(&b, "Report Date: %s\n", now.Format("2006-01-02"))
	fmt.Fprintf(&b, "Total Medications: %d\n", s.TotalMeds)
	fmt.Fprintf(&b, "Active Medications: %d\n", s.ActiveMeds)
	fmt.Fprintf(&b, "7-Day Adherence Rate: %.1f%%\n\n", s.Rate)

	fmt.Fprintf(&b, "CURRENT MEDICATIONS\n%s\n", sep('-', 70))
	var blocks []string
	for _, m := range meds {
		if !m.Active {
			continue
		}
		withFood := "No"
		if m.WithFood {
			withFood = "Yes"
		}
		blocks = append(blocks, fmt.Sprintf(`
Medication: %s %s
Form: %s
Frequency: %s
Times: %s
Purpose: %s
Prescribed By: %s
Start Date: %s
With Food: %s
Side Effects: %s
Notes: %s
`,
			m.Name, m.Dosage,
			m.Form,
			models.FrequencyLabel(m.Frequency),
			strings.Join(m.Times, ", "),
			m.Purpose,
			m.PrescribedBy,
			m.StartDate,
			withFood,
			joinOr(m.SideEffects, "None reported"),
			orNone(m.Notes, "None")))
	}
	b.WriteString(strings.Join(blocks, "\n"+sep('-', 70)+"\n"))

	fmt.Fprintf(&b, "\nRECENT DOSE HISTORY (Last 7 Days)\n%s\n", sep('-', 70))
	weekAgo := now.AddDate(0, 0, -7)
	var recent []models.DoseRecord
	for _, d := range doses {
		day, err := time.Parse(constants.DateFormat, d.Date)
		if err != nil || day.Before(weekAgo) {
			continue
		}
		recent = append(recent, d)
	}
	sort.SliceStable(recent, func(i, j int) bool {
		if recent[i].Date != recent[j].Date {
			return recent[i].Date > recent[j].Date
		}
		return recent[i].ScheduledTime > recent[j].ScheduledTime
	})
	blocks = blocks[:0]
	for _, d := range recent {
		var eb strings.Builder
		fmt.Fprintf(&eb, "\nDate: %s\n", d.Date)
		fmt.Fprintf(&eb, "Medication: %s\n", d.MedicationName)
		fmt.Fprintf(&eb, "Scheduled: %s\n", d.ScheduledTime)
		fmt.Fprintf(&eb, "Status: %s\n", strings.ToUpper(string(d.Status)))
		if d.TakenTime != nil {
			fmt.Fprintf(&eb, "Taken At: %s\n", *d.TakenTime)
		}
		if d.Notes != "" {
			fmt.Fprintf(&eb, "Notes: %s\n", d.Notes)
		}
		blocks = append(blocks, eb.String())
	}
	b.WriteString(strings.Join(blocks, "\n"+sep('-', 70)+"\n"))

	fmt.Fprintf(&b, "\nADHERENCE SUMMARY\n%s\n", sep('-', 70))
	fmt.Fprintf(&b, "Today: %d/%d doses taken (%.1f%%)\n", s.TodayTaken, s.TodayTotal, s.TodayRate)
	fmt.Fprintf(&b, "Last 7 Days: %.1f%% adherence rate\n", s.Rate)
	b.WriteString("\nStay consistent with your medication routine!\n")
	return b.String()
}
