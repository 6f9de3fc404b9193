package stats

import (
	"time"

	"github.com/neuropulse/neuropulse/internal/constants"
	"github.com/neuropulse/neuropulse/internal/models"
)

// MealStats summarizes a meal entry set.
type MealStats struct {
	Entries       int
	TodayCalories int
	TodayMeals    int
	// ByType counts entries per meal type in the canonical type order.
	ByType map[models.MealType]int
	// AvgCalories averages only entries that recorded calories.
	AvgCalories float64
}

func Meals(entries []models.MealEntry, now time.Time) MealStats {
	s := MealStats{
		Entries: len(entries),
		ByType:  make(map[models.MealType]int, len(models.MealTypes)),
	}
	today := now.Format(constants.DateFormat)

	calSum, calCount := 0, 0
	for _, e := range entries {
		s.ByType[e.Type]++
		if e.Date == today {
			s.TodayMeals++
			s.TodayCalories += e.Calories
		}
		if e.Calories > 0 {
			calSum += e.Calories
			calCount++
		}
	}
	if calCount > 0 {
		s.AvgCalories = Round1(float64(calSum) / float64(calCount))
	}
	return s
}

// StimStats summarizes stim events, overall and for today.
type StimStats struct {
	Events       int
	TodayEvents  int
	AvgIntensity float64
	// ByStim counts events per stim name, most frequent first.
	ByStim []TagCount
}

func Stims(events []models.StimEvent, now time.Time) StimStats {
	s := StimStats{Events: len(events)}
	today := now.Format(constants.DateFormat)

	names := make([][]string, 0, len(events))
	intensities := make([]float64, 0, len(events))
	for _, e := range events {
		if e.Date == today {
			s.TodayEvents++
		}
		names = append(names, []string{e.StimName})
		intensities = append(intensities, float64(e.Intensity))
	}
	s.AvgIntensity = Round1(Mean(intensities))
	s.ByStim = CountTags(names)
	return s
}

// StimCategories counts events per stim category, most frequent first.
// Events whose stim type is no longer tracked count under "other".
func StimCategories(types []models.StimType, events []models.StimEvent) []TagCount {
	byID := make(map[int]models.StimCategory, len(types))
	for _, t := range types {
		byID[t.ID] = t.Category
	}
	cats := make([][]string, 0, len(events))
	for _, e := range events {
		cat, ok := byID[e.StimID]
		if !ok {
			cat = models.StimOther
		}
		cats = append(cats, []string{string(cat)})
	}
	return CountTags(cats)
}
