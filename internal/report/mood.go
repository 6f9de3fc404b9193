package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/neuropulse/neuropulse/internal/models"
	"github.com/neuropulse/neuropulse/internal/stats"
	"github.com/neuropulse/neuropulse/internal/storage"
)

// Mood renders the mood tracker report over an already-filtered entry set.
func Mood(entries []models.MoodEntry, period storage.Period, now time.Time) string {
	s := stats.Mood(entries)

	activities := make([][]string, len(entries))
	triggers := make([][]string, len(entries))
	for i, e := range entries {
		activities[i] = e.Activities
		triggers[i] = e.Triggers
	}

	var b strings.Builder
	fmt.Fprintf(&b, "NEUROPULSE MOOD TRACKER REPORT\n%s\n", sep('=', 60))
	fmt.Fprintf(&b, "Report Date: %s\n", now.Format("2006-01-02"))
	fmt.Fprintf(&b, "Period: %s\n", period.Label())
	fmt.Fprintf(&b, "Total Entries: %d\n\n", len(entries))

	fmt.Fprintf(&b, "STATISTICS\n%s\n", sep('-', 60))
	fmt.Fprintf(&b, "Average Mood Score: %.1f/10\n", s.AvgMood)
	fmt.Fprintf(&b, "Average Energy Level: %.1f/10\n", s.AvgEnergy)
	fmt.Fprintf(&b, "Average Stress Level: %.1f/10\n", s.AvgStress)
	fmt.Fprintf(&b, "Mood Trend: %s\n\n", s.Trend)

	fmt.Fprintf(&b, "TOP ACTIVITIES\n%s\n%s\n\n", sep('-', 60),
		tagLines(stats.CountTags(activities), "No activities tracked"))
	fmt.Fprintf(&b, "TOP TRIGGERS\n%s\n%s\n\n", sep('-', 60),
		tagLines(stats.CountTags(triggers), "No triggers tracked"))

	fmt.Fprintf(&b, "MOOD ENTRIES\n%s\n", sep('=', 60))
	blocks := make([]string, len(entries))
	for i, e := range entries {
		blocks[i] = fmt.Sprintf(`
Date: %s at %s
Mood: %s (%d/10) %s
Energy: %d/10 | Stress: %d/10 | Sleep: %d/10
Weather: %s
Activities: %s
Triggers: %s
Notes: %s
`,
			e.Date, e.Time,
			e.MoodLabel, e.MoodScore, e.MoodEmoji,
			e.Energy, e.Stress, e.Sleep,
			e.Weather,
			joinOr(e.Activities, "None"),
			joinOr(e.Triggers, "None"),
			orNone(e.Notes, "No notes"))
	}
	b.WriteString(strings.Join(blocks, "\n"+sep('-', 60)+"\n"))
	b.WriteString("\n")
	return b.String()
}
