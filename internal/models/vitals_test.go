package models

import "testing"

func TestClassifyGlucose(t *testing.T) {
	tests := []struct {
		value int
		want  GlucoseBand
	}{
		{50, GlucoseLow},
		{69, GlucoseLow},
		{70, GlucoseNormal},
		{140, GlucoseNormal},
		{141, GlucoseElevated},
		{199, GlucoseElevated},
		{200, GlucoseHigh},
		{350, GlucoseHigh},
	}
	for _, tt := range tests {
		if got := ClassifyGlucose(tt.value); got != tt.want {
			t.Errorf("ClassifyGlucose(%d) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestClassifyBP(t *testing.T) {
	tests := []struct {
		systolic, diastolic int
		want                BPBand
	}{
		{110, 70, BPNormal},
		{119, 79, BPNormal},
		{125, 79, BPElevated},
		{129, 75, BPElevated},
		{120, 80, BPStage1},
		{135, 85, BPStage1},
		{139, 89, BPStage1},
		{145, 85, BPStage1}, // diastolic still below 90
		{145, 95, BPStage2},
		{160, 100, BPStage2},
	}
	for _, tt := range tests {
		if got := ClassifyBP(tt.systolic, tt.diastolic); got != tt.want {
			t.Errorf("ClassifyBP(%d, %d) = %v, want %v", tt.systolic, tt.diastolic, got, tt.want)
		}
	}
}

func TestGlucoseReadingValidate(t *testing.T) {
	valid := GlucoseReading{Date: "2026-08-28", Time: "08:30", Value: 95}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid reading rejected: %v", err)
	}

	tests := []struct {
		name string
		r    GlucoseReading
	}{
		{"bad date", GlucoseReading{Date: "28/08/2026", Time: "08:30", Value: 95}},
		{"bad time", GlucoseReading{Date: "2026-08-28", Time: "8.30am", Value: 95}},
		{"zero value", GlucoseReading{Date: "2026-08-28", Time: "08:30", Value: 0}},
		{"absurd value", GlucoseReading{Date: "2026-08-28", Time: "08:30", Value: 900}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.r.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestBPReadingValidate(t *testing.T) {
	valid := BPReading{Date: "2026-08-28", Time: "08:30", Systolic: 120, Diastolic: 80}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid reading rejected: %v", err)
	}

	inverted := BPReading{Date: "2026-08-28", Time: "08:30", Systolic: 80, Diastolic: 120}
	if err := inverted.Validate(); err == nil {
		t.Error("diastolic above systolic accepted")
	}
}
