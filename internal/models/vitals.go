package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/neuropulse/neuropulse/internal/constants"
)

// GlucoseBand classifies a blood glucose reading in mg/dL.
type GlucoseBand string

const (
	GlucoseLow      GlucoseBand = "low"
	GlucoseNormal   GlucoseBand = "normal"
	GlucoseElevated GlucoseBand = "elevated"
	GlucoseHigh     GlucoseBand = "high"
)

// ClassifyGlucose maps a mg/dL value to its band: <70 low, <=140 normal,
// <=199 elevated, otherwise high.
func ClassifyGlucose(value int) GlucoseBand {
	switch {
	case value < 70:
		return GlucoseLow
	case value <= 140:
		return GlucoseNormal
	case value <= 199:
		return GlucoseElevated
	default:
		return GlucoseHigh
	}
}

type GlucoseReading struct {
	ID    int    `json:"id"`
	Date  string `json:"date"`
	Time  string `json:"time"`
	Value int    `json:"value"` // mg/dL
	Notes string `json:"notes"`
}

func (r GlucoseReading) EntryID() int                 { return r.ID }
func (r GlucoseReading) WithID(id int) GlucoseReading { r.ID = id; return r }
func (r GlucoseReading) EntryDate() string            { return r.Date }
func (r GlucoseReading) EntryTime() string            { return r.Time }
func (r GlucoseReading) SearchText() string {
	return strings.ToLower(r.Notes + " " + string(ClassifyGlucose(r.Value)))
}

func (r GlucoseReading) Validate() error {
	if _, err := time.Parse(constants.DateFormat, r.Date); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", r.Date)
	}
	if _, err := time.Parse(constants.TimeFormat, r.Time); err != nil {
		return fmt.Errorf("invalid time %q (expected HH:MM)", r.Time)
	}
	if r.Value <= 0 || r.Value > 600 {
		return fmt.Errorf("glucose value must be between 1 and 600 mg/dL")
	}
	return nil
}

// BPBand classifies a blood pressure reading.
type BPBand string

const (
	BPNormal   BPBand = "normal"
	BPElevated BPBand = "elevated"
	BPStage1   BPBand = "stage1"
	BPStage2   BPBand = "stage2"
)

// ClassifyBP maps systolic/diastolic mmHg to a band: <120/<80 normal,
// <130/<80 elevated, <140 or <90 stage1, otherwise stage2.
func ClassifyBP(systolic, diastolic int) BPBand {
	switch {
	case systolic < 120 && diastolic < 80:
		return BPNormal
	case systolic < 130 && diastolic < 80:
		return BPElevated
	case systolic < 140 || diastolic < 90:
		return BPStage1
	default:
		return BPStage2
	}
}

type BPReading struct {
	ID        int    `json:"id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Systolic  int    `json:"systolic"`
	Diastolic int    `json:"diastolic"`
	Notes     string `json:"notes"`
}

func (r BPReading) EntryID() int            { return r.ID }
func (r BPReading) WithID(id int) BPReading { r.ID = id; return r }
func (r BPReading) EntryDate() string       { return r.Date }
func (r BPReading) EntryTime() string       { return r.Time }
func (r BPReading) SearchText() string {
	return strings.ToLower(r.Notes + " " + strconv.Itoa(r.Systolic) + "/" + strconv.Itoa(r.Diastolic))
}

func (r BPReading) Validate() error {
	if _, err := time.Parse(constants.DateFormat, r.Date); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", r.Date)
	}
	if _, err := time.Parse(constants.TimeFormat, r.Time); err != nil {
		return fmt.Errorf("invalid time %q (expected HH:MM)", r.Time)
	}
	if r.Systolic < 50 || r.Systolic > 300 {
		return fmt.Errorf("systolic must be between 50 and 300 mmHg")
	}
	if r.Diastolic < 30 || r.Diastolic > 200 {
		return fmt.Errorf("diastolic must be between 30 and 200 mmHg")
	}
	if r.Diastolic >= r.Systolic {
		return fmt.Errorf("diastolic must be lower than systolic")
	}
	return nil
}
