package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/neuropulse/neuropulse/internal/constants"
)

type StimCategory string

const (
	StimMotor   StimCategory = "motor"
	StimVocal   StimCategory = "vocal"
	StimSensory StimCategory = "sensory"
	StimOther   StimCategory = "other"
)

var StimCategories = []StimCategory{StimMotor, StimVocal, StimSensory, StimOther}

// StimType is a named stim being tracked (e.g. "Hand Flapping").
type StimType struct {
	ID       int          `json:"id"`
	Name     string       `json:"name"`
	Category StimCategory `json:"category"`
}

func (s StimType) EntryID() int           { return s.ID }
func (s StimType) WithID(id int) StimType { s.ID = id; return s }
func (s StimType) EntryDate() string      { return "" }
func (s StimType) EntryTime() string      { return "" }
func (s StimType) SearchText() string     { return strings.ToLower(s.Name + " " + string(s.Category)) }

func (s StimType) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("stim name is required")
	}
	for _, c := range StimCategories {
		if s.Category == c {
			return nil
		}
	}
	return fmt.Errorf("invalid stim category %q", s.Category)
}

// StimEvent is one logged stim occurrence.
type StimEvent struct {
	ID        int    `json:"id"`
	StimID    int    `json:"stimId"`
	StimName  string `json:"stimName"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Intensity int    `json:"intensity"`
	Context   string `json:"context"`
}

func (e StimEvent) EntryID() int            { return e.ID }
func (e StimEvent) WithID(id int) StimEvent { e.ID = id; return e }
func (e StimEvent) EntryDate() string       { return e.Date }
func (e StimEvent) EntryTime() string       { return e.Time }
func (e StimEvent) SearchText() string      { return strings.ToLower(e.StimName + " " + e.Context) }

func (e StimEvent) Validate() error {
	if _, err := time.Parse(constants.DateFormat, e.Date); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", e.Date)
	}
	if _, err := time.Parse(constants.TimeFormat, e.Time); err != nil {
		return fmt.Errorf("invalid time %q (expected HH:MM)", e.Time)
	}
	if e.Intensity < 1 || e.Intensity > 10 {
		return fmt.Errorf("intensity must be between 1 and 10")
	}
	return nil
}
