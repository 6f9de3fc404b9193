package stats

import (
	"testing"
	"time"

	"github.com/neuropulse/neuropulse/internal/models"
)

var mealsNow = time.Date(2026, 8, 28, 18, 0, 0, 0, time.UTC)

func TestMealStats(t *testing.T) {
	entries := []models.MealEntry{
		{ID: 4, Date: "2026-08-28", Time: "12:30", Type: models.MealLunch, Name: "Jollof rice", Calories: 650},
		{ID: 3, Date: "2026-08-28", Time: "08:00", Type: models.MealBreakfast, Name: "Oatmeal", Calories: 350},
		{ID: 2, Date: "2026-08-27", Time: "19:00", Type: models.MealDinner, Name: "Egusi soup", Calories: 700},
		{ID: 1, Date: "2026-08-27", Time: "15:00", Type: models.MealSnack, Name: "Plantain chips"},
	}

	s := Meals(entries, mealsNow)
	if s.Entries != 4 {
		t.Errorf("Entries = %d, want 4", s.Entries)
	}
	if s.TodayMeals != 2 || s.TodayCalories != 1000 {
		t.Errorf("today = %d meals / %d kcal, want 2 / 1000", s.TodayMeals, s.TodayCalories)
	}
	if s.ByType[models.MealLunch] != 1 || s.ByType[models.MealSnack] != 1 {
		t.Errorf("ByType = %v", s.ByType)
	}
	// The snack logged no calories and is excluded from the average.
	if want := 566.7; s.AvgCalories != want {
		t.Errorf("AvgCalories = %v, want %v", s.AvgCalories, want)
	}
}

func TestMealStatsEmpty(t *testing.T) {
	s := Meals(nil, mealsNow)
	if s.Entries != 0 || s.AvgCalories != 0 || s.TodayCalories != 0 {
		t.Errorf("empty stats = %+v, want zeros", s)
	}
}

func TestStimStats(t *testing.T) {
	events := []models.StimEvent{
		{ID: 3, StimID: 1, StimName: "Rocking", Date: "2026-08-28", Time: "14:00", Intensity: 6},
		{ID: 2, StimID: 2, StimName: "Hand flapping", Date: "2026-08-27", Time: "10:00", Intensity: 4},
		{ID: 1, StimID: 1, StimName: "Rocking", Date: "2026-08-26", Time: "16:00", Intensity: 5},
	}

	s := Stims(events, mealsNow)
	if s.Events != 3 || s.TodayEvents != 1 {
		t.Errorf("events = %d total / %d today, want 3 / 1", s.Events, s.TodayEvents)
	}
	if s.AvgIntensity != 5.0 {
		t.Errorf("AvgIntensity = %v, want 5.0", s.AvgIntensity)
	}
	if len(s.ByStim) != 2 || s.ByStim[0].Tag != "Rocking" || s.ByStim[0].Count != 2 {
		t.Errorf("ByStim = %+v, want Rocking first with 2", s.ByStim)
	}
}

func TestStimCategories(t *testing.T) {
	types := []models.StimType{
		{ID: 1, Name: "Rocking", Category: models.StimMotor},
		{ID: 2, Name: "Humming", Category: models.StimVocal},
	}
	events := []models.StimEvent{
		{ID: 1, StimID: 1, StimName: "Rocking", Date: "2026-08-28", Time: "14:00", Intensity: 5},
		{ID: 2, StimID: 1, StimName: "Rocking", Date: "2026-08-27", Time: "10:00", Intensity: 6},
		{ID: 3, StimID: 2, StimName: "Humming", Date: "2026-08-27", Time: "09:00", Intensity: 3},
		{ID: 4, StimID: 9, StimName: "Deleted stim", Date: "2026-08-26", Time: "08:00", Intensity: 4},
	}

	cats := StimCategories(types, events)
	if len(cats) != 3 {
		t.Fatalf("StimCategories() = %+v, want 3 categories", cats)
	}
	if cats[0].Tag != "motor" || cats[0].Count != 2 {
		t.Errorf("top category = %+v, want motor with 2", cats[0])
	}
	// An event whose stim type was deleted falls back to "other".
	found := false
	for _, c := range cats {
		if c.Tag == "other" && c.Count == 1 {
			found = true
		}
	}
	if !found {
		t.Errorf("StimCategories() = %+v, want orphaned event counted as other", cats)
	}
}
