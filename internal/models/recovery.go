package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/neuropulse/neuropulse/internal/constants"
)

type RecoveryKind string

const (
	KindUrgeResisted RecoveryKind = "urge_resisted"
	KindRelapse      RecoveryKind = "relapse"
	KindCloseCall    RecoveryKind = "close_call"
)

// KindLabel returns the display label for a recovery entry kind.
func KindLabel(k RecoveryKind) string {
	switch k {
	case KindUrgeResisted:
		return "Resisted Urge"
	case KindRelapse:
		return "Relapse"
	case KindCloseCall:
		return "Close Call"
	default:
		return strings.ToUpper(strings.ReplaceAll(string(k), "_", " "))
	}
}

// RecoveryEntry is one logged gambling-recovery event.
//
// DaysClean is a snapshot stamped at creation time: 0 for a relapse,
// otherwise the streak as computed at that moment. It is displayed as
// stored and never recomputed afterwards.
type RecoveryEntry struct {
	ID                 int          `json:"id"`
	Date               string       `json:"date"`
	Time               string       `json:"time"`
	Kind               RecoveryKind `json:"type"`
	UrgeIntensity      int          `json:"urgeIntensity,omitempty"`
	ResistanceStrength int          `json:"resistanceStrength,omitempty"`
	AmountLost         int          `json:"amountLost,omitempty"`
	AmountWon          int          `json:"amountWon,omitempty"`
	DurationMin        int          `json:"duration,omitempty"`
	Triggers           []string     `json:"triggers"`
	CopingStrategies   []string     `json:"copingStrategies,omitempty"`
	Mood               string       `json:"mood"`
	Notes              string       `json:"notes"`
	MoneyNotSpent      int          `json:"moneyNotSpent,omitempty"`
	DaysClean          int          `json:"daysClean"`
}

func (e RecoveryEntry) EntryID() int                { return e.ID }
func (e RecoveryEntry) WithID(id int) RecoveryEntry { e.ID = id; return e }
func (e RecoveryEntry) EntryDate() string           { return e.Date }
func (e RecoveryEntry) EntryTime() string           { return e.Time }

func (e RecoveryEntry) SearchText() string {
	parts := []string{e.Notes}
	parts = append(parts, e.Triggers...)
	parts = append(parts, e.CopingStrategies...)
	return strings.ToLower(strings.Join(parts, " "))
}

func (e RecoveryEntry) Validate() error {
	if _, err := time.Parse(constants.DateFormat, e.Date); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", e.Date)
	}
	if _, err := time.Parse(constants.TimeFormat, e.Time); err != nil {
		return fmt.Errorf("invalid time %q (expected HH:MM)", e.Time)
	}
	switch e.Kind {
	case KindUrgeResisted, KindRelapse, KindCloseCall:
	default:
		return fmt.Errorf("invalid entry type %q", e.Kind)
	}
	if e.Kind != KindRelapse {
		if e.UrgeIntensity < 1 || e.UrgeIntensity > 10 {
			return fmt.Errorf("urge intensity must be between 1 and 10")
		}
	}
	if e.Kind == KindUrgeResisted {
		if e.ResistanceStrength < 1 || e.ResistanceStrength > 10 {
			return fmt.Errorf("resistance strength must be between 1 and 10")
		}
	}
	if e.AmountLost < 0 || e.AmountWon < 0 || e.MoneyNotSpent < 0 {
		return fmt.Errorf("money amounts cannot be negative")
	}
	return nil
}

// Hotline is an emergency contact shown in recovery reports and in crisis
// chat responses.
type Hotline struct {
	Name    string `json:"name"`
	Number  string `json:"number"`
	Country string `json:"country"`
}

// EmergencyHotlines is the built-in hotline list, matching what the Arvin
// backend serves from its resources endpoint.
var EmergencyHotlines = []Hotline{
	{Name: "Mentally Aware Nigeria Initiative", Number: "09010000000", Country: "Nigeria"},
	{Name: "Suicide & Crisis Lifeline", Number: "988", Country: "Global"},
	{Name: "Emergency Services", Number: "112", Country: "Nigeria"},
}
