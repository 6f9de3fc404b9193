package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/neuropulse/neuropulse/internal/constants"
)

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

// MealEntry is one logged meal.
type MealEntry struct {
	ID       int      `json:"id"`
	Date     string   `json:"date"`
	Time     string   `json:"time"`
	Type     MealType `json:"mealType"`
	Name     string   `json:"name"`
	Calories int      `json:"calories,omitempty"`
	Tags     []string `json:"tags"`
	Notes    string   `json:"notes"`
}

func (e MealEntry) EntryID() int            { return e.ID }
func (e MealEntry) WithID(id int) MealEntry { e.ID = id; return e }
func (e MealEntry) EntryDate() string       { return e.Date }
func (e MealEntry) EntryTime() string       { return e.Time }

func (e MealEntry) SearchText() string {
	parts := []string{e.Name, e.Notes}
	parts = append(parts, e.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}

func (e MealEntry) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("meal name is required")
	}
	if _, err := time.Parse(constants.DateFormat, e.Date); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", e.Date)
	}
	if _, err := time.Parse(constants.TimeFormat, e.Time); err != nil {
		return fmt.Errorf("invalid time %q (expected HH:MM)", e.Time)
	}
	for _, t := range MealTypes {
		if e.Type == t {
			return nil
		}
	}
	return fmt.Errorf("invalid meal type %q", e.Type)
}
