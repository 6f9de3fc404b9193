package stats

import "github.com/neuropulse/neuropulse/internal/models"

// VitalsStats summarizes glucose and blood pressure readings. Latest
// pointers are nil when no readings exist. Inputs must be newest-first.
type VitalsStats struct {
	LatestGlucose *models.GlucoseReading
	GlucoseBand   models.GlucoseBand
	AvgGlucose    float64
	LatestBP      *models.BPReading
	BPBand        models.BPBand
	AvgSystolic   float64
	AvgDiastolic  float64
}

func Vitals(glucose []models.GlucoseReading, bp []models.BPReading) VitalsStats {
	var s VitalsStats

	if len(glucose) > 0 {
		g := glucose[0]
		s.LatestGlucose = &g
		s.GlucoseBand = models.ClassifyGlucose(g.Value)
		values := make([]float64, len(glucose))
		for i, r := range glucose {
			values[i] = float64(r.Value)
		}
		s.AvgGlucose = Round1(Mean(values))
	}

	if len(bp) > 0 {
		b := bp[0]
		s.LatestBP = &b
		s.BPBand = models.ClassifyBP(b.Systolic, b.Diastolic)
		sys := make([]float64, len(bp))
		dia := make([]float64, len(bp))
		for i, r := range bp {
			sys[i] = float64(r.Systolic)
			dia[i] = float64(r.Diastolic)
		}
		s.AvgSystolic = Round1(Mean(sys))
		s.AvgDiastolic = Round1(Mean(dia))
	}
	return s
}
