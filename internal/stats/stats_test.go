package stats

import (
	"reflect"
	"testing"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"single", []float64{7}, 7},
		{"several", []float64{1, 2, 3, 4}, 2.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mean(tt.values); got != tt.want {
				t.Errorf("Mean(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestRound1(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{7.25, 7.3},
		{7.24, 7.2},
		{7.0, 7.0},
		{66.666666, 66.7},
	}
	for _, tt := range tests {
		if got := Round1(tt.in); got != tt.want {
			t.Errorf("Round1(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCountTagsOrdering(t *testing.T) {
	sets := [][]string{
		{"work", "family"},
		{"work", "stress"},
		{"family"},
		{"work"},
	}
	got := CountTags(sets)
	want := []TagCount{
		{Tag: "work", Count: 3},
		{Tag: "family", Count: 2},
		{Tag: "stress", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CountTags() = %v, want %v", got, want)
	}
}

func TestCountTagsTiesKeepFirstEncounteredOrder(t *testing.T) {
	sets := [][]string{{"beta", "alpha"}, {"alpha", "beta"}}
	got := CountTags(sets)
	if got[0].Tag != "beta" || got[1].Tag != "alpha" {
		t.Errorf("tie order = %v, want first-encountered beta before alpha", got)
	}
}

func TestTopTags(t *testing.T) {
	sets := [][]string{{"a", "b", "c"}, {"a", "b"}, {"a"}}
	got := TopTags(sets, 2)
	if len(got) != 2 || got[0].Tag != "a" || got[1].Tag != "b" {
		t.Errorf("TopTags(2) = %v", got)
	}
	if all := TopTags(sets, 0); len(all) != 3 {
		t.Errorf("TopTags(0) len = %d, want all", len(all))
	}
}
