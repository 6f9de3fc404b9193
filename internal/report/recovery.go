package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/neuropulse/neuropulse/internal/models"
	"github.com/neuropulse/neuropulse/internal/stats"
	"github.com/neuropulse/neuropulse/internal/storage"
)

// Recovery renders the gambling-recovery report over an already-filtered
// entry set. Amounts are naira, matching the data the web app recorded.
func Recovery(entries []models.RecoveryEntry, period storage.Period, now time.Time) string {
	s := stats.Recovery(entries, now)

	triggers := make([][]string, 0, len(entries))
	coping := make([][]string, 0, len(entries))
	for _, e := range entries {
		triggers = append(triggers, e.Triggers)
		if e.Kind == models.KindUrgeResisted {
			coping = append(coping, e.CopingStrategies)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "NEUROPULSE GAMBLING ADDICTION RECOVERY TRACKER\n%s\n", sep('=', 70))
	fmt.Fprintf(&b, "Report Date: %s\n", now.Format("2006-01-02"))
	fmt.Fprintf(&b, "Period: %s\n\n", period.Label())

	fmt.Fprintf(&b, "RECOVERY STATISTICS\n%s\n", sep('-', 70))
	fmt.Fprintf(&b, "Days Clean: %d days\n", s.DaysClean)
	fmt.Fprintf(&b, "Total Urges Resisted: %d\n", s.TotalResisted)
	fmt.Fprintf(&b, "Total Relapses: %d\n", s.TotalRelapses)
	fmt.Fprintf(&b, "Resistance Rate: %.1f%%\n", s.ResistanceRate)
	fmt.Fprintf(&b, "Average Urge Intensity: %.1f/10\n\n", s.AvgUrgeIntensity)

	fmt.Fprintf(&b, "FINANCIAL IMPACT\n%s\n", sep('-', 70))
	fmt.Fprintf(&b, "Money Saved (urges resisted): ₦%d\n", s.MoneySaved)
	fmt.Fprintf(&b, "Money Lost (relapses): ₦%d\n", s.MoneyLost)
	fmt.Fprintf(&b, "Net Savings: ₦%d\n\n", s.Net)

	fmt.Fprintf(&b, "TOP TRIGGERS\n%s\n%s\n\n", sep('-', 70),
		tagLines(stats.TopTags(triggers, 5), "No triggers tracked"))
	fmt.Fprintf(&b, "MOST EFFECTIVE COPING STRATEGIES\n%s\n%s\n\n", sep('-', 70),
		tagLines(stats.TopTags(coping, 5), "No strategies tracked"))

	fmt.Fprintf(&b, "DETAILED ENTRIES\n%s\n", sep('=', 70))
	blocks := make([]string, len(entries))
	for i, e := range entries {
		var eb strings.Builder
		fmt.Fprintf(&eb, "\nDate: %s at %s\n", e.Date, e.Time)
		fmt.Fprintf(&eb, "Type: %s\n", strings.ToUpper(strings.ReplaceAll(string(e.Kind), "_", " ")))
		if e.UrgeIntensity > 0 {
			fmt.Fprintf(&eb, "Urge Intensity: %d/10\n", e.UrgeIntensity)
		}
		if e.ResistanceStrength > 0 {
			fmt.Fprintf(&eb, "Resistance Strength: %d/10\n", e.ResistanceStrength)
		}
		if e.AmountLost > 0 {
			fmt.Fprintf(&eb, "Amount Lost: ₦%d\n", e.AmountLost)
		}
		if e.MoneyNotSpent > 0 {
			fmt.Fprintf(&eb, "Money Not Spent: ₦%d\n", e.MoneyNotSpent)
		}
		fmt.Fprintf(&eb, "Triggers: %s\n", joinOr(e.Triggers, "None"))
		fmt.Fprintf(&eb, "Coping Strategies: %s\n", joinOr(e.CopingStrategies, "None"))
		fmt.Fprintf(&eb, "Mood: %s\n", e.Mood)
		fmt.Fprintf(&eb, "Notes: %s\n", orNone(e.Notes, "No notes"))
		blocks[i] = eb.String()
	}
	b.WriteString(strings.Join(blocks, "\n"+sep('-', 70)+"\n"))

	fmt.Fprintf(&b, "\nEMERGENCY RESOURCES\n%s\n", sep('-', 70))
	for _, h := range models.EmergencyHotlines {
		fmt.Fprintf(&b, "%s: %s\n", h.Name, h.Number)
	}
	b.WriteString("\nStay strong! Every day clean is a victory.\n")
	return b.String()
}
