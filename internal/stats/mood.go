package stats

import "github.com/neuropulse/neuropulse/internal/models"

// Trend classifies the short-term direction of mood scores.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// MoodStats summarizes a filtered mood entry set.
type MoodStats struct {
	AvgMood   float64
	AvgEnergy float64
	AvgStress float64
	Trend     Trend
	Entries   int
}

// TrendOf compares the mean of the 3 most recent scores against the mean of
// the next 3. More than 0.5 above is improving, more than 0.5 below is
// declining. Fewer than 6 scores is always stable. scores must be ordered
// newest-first.
func TrendOf(scores []float64) Trend {
	if len(scores) < 6 {
		return TrendStable
	}
	recent := Mean(scores[0:3])
	previous := Mean(scores[3:6])
	switch {
	case recent > previous+0.5:
		return TrendImproving
	case recent < previous-0.5:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// Mood computes summary stats over a filtered entry set, newest-first.
func Mood(entries []models.MoodEntry) MoodStats {
	moods := make([]float64, len(entries))
	energy := make([]float64, len(entries))
	stress := make([]float64, len(entries))
	for i, e := range entries {
		moods[i] = float64(e.MoodScore)
		energy[i] = float64(e.Energy)
		stress[i] = float64(e.Stress)
	}
	return MoodStats{
		AvgMood:   Round1(Mean(moods)),
		AvgEnergy: Round1(Mean(energy)),
		AvgStress: Round1(Mean(stress)),
		Trend:     TrendOf(moods),
		Entries:   len(entries),
	}
}
