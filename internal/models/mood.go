package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/neuropulse/neuropulse/internal/constants"
)

type Weather string

const (
	WeatherSunny  Weather = "sunny"
	WeatherCloudy Weather = "cloudy"
	WeatherRainy  Weather = "rainy"
	WeatherWindy  Weather = "windy"
)

// MoodOption maps a 1-10 mood score to its display label and emoji.
type MoodOption struct {
	Score int
	Label string
	Emoji string
}

var MoodOptions = []MoodOption{
	{1, "Very Sad", "😢"},
	{2, "Sad", "😔"},
	{3, "Bad", "😞"},
	{4, "Poor", "😕"},
	{5, "Neutral", "😐"},
	{6, "Good", "🙂"},
	{7, "Happy", "😊"},
	{8, "Very Happy", "😄"},
	{9, "Excited", "🤩"},
	{10, "Elated", "🥳"},
}

// MoodOptionFor returns the option for the given score, defaulting to
// Neutral for out-of-range values.
func MoodOptionFor(score int) MoodOption {
	for _, opt := range MoodOptions {
		if opt.Score == score {
			return opt
		}
	}
	return MoodOptions[4]
}

// MoodEntry is one logged mood record. JSON field names match the format
// the web exports used, so backups stay importable in both directions.
type MoodEntry struct {
	ID          int      `json:"id"`
	Date        string   `json:"date"` // YYYY-MM-DD
	Time        string   `json:"time"` // HH:MM
	MoodScore   int      `json:"moodScore"`
	MoodLabel   string   `json:"moodLabel"`
	MoodEmoji   string   `json:"moodEmoji"`
	Energy      int      `json:"energy"`
	Stress      int      `json:"stress"`
	Sleep       int      `json:"sleep"`
	Weather     Weather  `json:"weather"`
	Activities  []string `json:"activities"`
	Triggers    []string `json:"triggers"`
	Notes       string   `json:"notes"`
	Medications []string `json:"medications"`
	Symptoms    []string `json:"symptoms"`
}

func (e MoodEntry) EntryID() int            { return e.ID }
func (e MoodEntry) WithID(id int) MoodEntry { e.ID = id; return e }
func (e MoodEntry) EntryDate() string       { return e.Date }
func (e MoodEntry) EntryTime() string       { return e.Time }

func (e MoodEntry) SearchText() string {
	parts := []string{e.Notes, e.MoodLabel}
	parts = append(parts, e.Activities...)
	parts = append(parts, e.Triggers...)
	return strings.ToLower(strings.Join(parts, " "))
}

func (e MoodEntry) Validate() error {
	if _, err := time.Parse(constants.DateFormat, e.Date); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", e.Date)
	}
	if _, err := time.Parse(constants.TimeFormat, e.Time); err != nil {
		return fmt.Errorf("invalid time %q (expected HH:MM)", e.Time)
	}
	if e.MoodScore < 1 || e.MoodScore > 10 {
		return fmt.Errorf("mood score must be between 1 and 10")
	}
	for name, v := range map[string]int{"energy": e.Energy, "stress": e.Stress, "sleep": e.Sleep} {
		if v < 1 || v > 10 {
			return fmt.Errorf("%s must be between 1 and 10", name)
		}
	}
	switch e.Weather {
	case WeatherSunny, WeatherCloudy, WeatherRainy, WeatherWindy:
	default:
		return fmt.Errorf("invalid weather %q", e.Weather)
	}
	return nil
}
