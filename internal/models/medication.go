package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/neuropulse/neuropulse/internal/constants"
)

type MedicationForm string

const (
	FormTablet      MedicationForm = "tablet"
	FormCapsule     MedicationForm = "capsule"
	FormLiquid      MedicationForm = "liquid"
	FormInjection   MedicationForm = "injection"
	FormInhaler     MedicationForm = "inhaler"
	FormPatch       MedicationForm = "patch"
	FormCream       MedicationForm = "cream"
	FormDrops       MedicationForm = "drops"
	FormSpray       MedicationForm = "spray"
	FormSuppository MedicationForm = "suppository"
)

var MedicationForms = []MedicationForm{
	FormTablet, FormCapsule, FormLiquid, FormInjection, FormInhaler,
	FormPatch, FormCream, FormDrops, FormSpray, FormSuppository,
}

type Frequency string

const (
	FreqDaily           Frequency = "daily"
	FreqTwiceDaily      Frequency = "twice_daily"
	FreqThreeTimesDaily Frequency = "three_times_daily"
	FreqFourTimesDaily  Frequency = "four_times_daily"
	FreqEveryOtherDay   Frequency = "every_other_day"
	FreqWeekly          Frequency = "weekly"
	FreqAsNeeded        Frequency = "as_needed"
)

// FrequencyLabel returns the human-readable label for a frequency value.
func FrequencyLabel(f Frequency) string {
	switch f {
	case FreqDaily:
		return "Once Daily"
	case FreqTwiceDaily:
		return "Twice Daily"
	case FreqThreeTimesDaily:
		return "Three Times Daily"
	case FreqFourTimesDaily:
		return "Four Times Daily"
	case FreqEveryOtherDay:
		return "Every Other Day"
	case FreqWeekly:
		return "Weekly"
	case FreqAsNeeded:
		return "As Needed"
	default:
		return string(f)
	}
}

// DefaultTimes returns the default dose times for a frequency.
func DefaultTimes(f Frequency) []string {
	switch f {
	case FreqTwiceDaily:
		return []string{"09:00", "21:00"}
	case FreqThreeTimesDaily:
		return []string{"09:00", "14:00", "21:00"}
	case FreqFourTimesDaily:
		return []string{"09:00", "13:00", "17:00", "21:00"}
	default:
		return []string{"09:00"}
	}
}

// Medication is one entry in the medication roster.
type Medication struct {
	ID           int            `json:"id"`
	Name         string         `json:"name"`
	Dosage       string         `json:"dosage"`
	Form         MedicationForm `json:"form"`
	Frequency    Frequency      `json:"frequency"`
	Times        []string       `json:"times"` // HH:MM, one per daily dose
	Purpose      string         `json:"purpose"`
	PrescribedBy string         `json:"prescribedBy"`
	StartDate    string         `json:"startDate"`
	EndDate      *string        `json:"endDate"`
	Active       bool           `json:"active"`
	WithFood     bool           `json:"withFood"`
	SideEffects  []string       `json:"sideEffects"`
	Notes        string         `json:"notes"`
	Color        string         `json:"color"`
}

func (m Medication) EntryID() int             { return m.ID }
func (m Medication) WithID(id int) Medication { m.ID = id; return m }
func (m Medication) EntryDate() string        { return m.StartDate }
func (m Medication) EntryTime() string        { return "" }

func (m Medication) SearchText() string {
	return strings.ToLower(strings.Join([]string{m.Name, m.Purpose, m.PrescribedBy}, " "))
}

func (m Medication) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("medication name is required")
	}
	valid := false
	for _, f := range MedicationForms {
		if m.Form == f {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid medication form %q", m.Form)
	}
	if len(m.Times) == 0 {
		return fmt.Errorf("at least one dose time is required")
	}
	for _, t := range m.Times {
		if _, err := time.Parse(constants.TimeFormat, t); err != nil {
			return fmt.Errorf("invalid dose time %q (expected HH:MM)", t)
		}
	}
	if _, err := time.Parse(constants.DateFormat, m.StartDate); err != nil {
		return fmt.Errorf("invalid start date %q (expected YYYY-MM-DD)", m.StartDate)
	}
	return nil
}

type DoseStatus string

const (
	DoseTaken  DoseStatus = "taken"
	DoseMissed DoseStatus = "missed"
	// DosePending is never persisted; it marks schedule slots with no
	// matching history record yet.
	DosePending DoseStatus = "pending"
)

// DoseRecord is one row of dose history. MedicationName is a denormalized
// copy of the roster name at logging time; it is not reconciled if the
// medication is later renamed.
type DoseRecord struct {
	ID             int        `json:"id"`
	MedicationID   int        `json:"medicationId"`
	MedicationName string     `json:"medicationName"`
	ScheduledTime  string     `json:"scheduledTime"`
	TakenTime      *string    `json:"takenTime"`
	Date           string     `json:"date"`
	Status         DoseStatus `json:"status"`
	Notes          string     `json:"notes"`
}

func (d DoseRecord) EntryID() int             { return d.ID }
func (d DoseRecord) WithID(id int) DoseRecord { d.ID = id; return d }
func (d DoseRecord) EntryDate() string        { return d.Date }
func (d DoseRecord) EntryTime() string        { return d.ScheduledTime }

func (d DoseRecord) SearchText() string {
	return strings.ToLower(d.MedicationName + " " + d.Notes)
}

func (d DoseRecord) Validate() error {
	if d.Status != DoseTaken && d.Status != DoseMissed {
		return fmt.Errorf("dose status must be %q or %q", DoseTaken, DoseMissed)
	}
	if _, err := time.Parse(constants.DateFormat, d.Date); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", d.Date)
	}
	if _, err := time.Parse(constants.TimeFormat, d.ScheduledTime); err != nil {
		return fmt.Errorf("invalid scheduled time %q (expected HH:MM)", d.ScheduledTime)
	}
	return nil
}

// DoseSlot is a derived schedule slot for one day: the cartesian product of
// active medications and their configured times, matched against history.
type DoseSlot struct {
	MedicationID   int
	MedicationName string
	ScheduledTime  string
	Date           string
	Color          string
	Status         DoseStatus
	TakenTime      *string
	Notes          string
	DoseID         int // 0 when no history record matches
}
