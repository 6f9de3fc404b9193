// Package vitals implements the glucose and blood pressure commands.
package vitals

import (
	"fmt"
	"time"

	"github.com/neuropulse/neuropulse/internal/cli"
	"github.com/neuropulse/neuropulse/internal/constants"
	"github.com/neuropulse/neuropulse/internal/models"
	"github.com/neuropulse/neuropulse/internal/report"
	"github.com/neuropulse/neuropulse/internal/stats"
	"github.com/neuropulse/neuropulse/internal/storage"
)

type VitalsCmd struct {
	Glucose GlucoseCmd `cmd:"" help:"Log a blood glucose reading (mg/dL)."`
	BP      BPCmd      `cmd:"" help:"Log a blood pressure reading (mmHg)."`
	List    ListCmd    `cmd:"" help:"List readings."`
	Edit    EditCmd    `cmd:"" help:"Edit a reading."`
	Delete  DeleteCmd  `cmd:"" help:"Delete a reading."`
	Stats   StatsCmd   `cmd:"" help:"Show latest readings and averages."`
	Report  ReportCmd  `cmd:"" help:"Write a plain-text vitals report."`
	Export  ExportCmd  `cmd:"" help:"Export readings as JSON."`
	Clear   ClearCmd   `cmd:"" help:"Delete all readings."`
}

func bandStyle(band string) string {
	switch band {
	case "normal":
		return cli.GoodStyle.Render(band)
	case "elevated", "stage1":
		return cli.WarnStyle.Render(band)
	default:
		return cli.AlertStyle.Render(band)
	}
}

type GlucoseCmd struct {
	Value int    `arg:"" help:"Glucose in mg/dL."`
	Date  string `help:"Reading date (YYYY-MM-DD, default today)."`
	Time  string `help:"Reading time (HH:MM, default now)."`
	Notes string `help:"Optional notes (e.g. fasting, after meal)."`
}

func (c *GlucoseCmd) Run(ctx *cli.Context) error {
	date, err := cli.DefaultDate(c.Date)
	if err != nil {
		return err
	}
	tm, err := cli.DefaultTime(c.Time)
	if err != nil {
		return err
	}

	r := models.GlucoseReading{Date: date, Time: tm, Value: c.Value, Notes: c.Notes}
	if err := r.Validate(); err != nil {
		return err
	}

	log, err := ctx.GlucoseLog()
	if err != nil {
		return err
	}
	saved, err := log.Add(r)
	if err != nil {
		return err
	}
	fmt.Printf("Logged glucose #%d: %d mg/dL (%s)\n", saved.ID, saved.Value,
		bandStyle(string(models.ClassifyGlucose(saved.Value))))
	return nil
}

type BPCmd struct {
	Systolic  int    `arg:"" help:"Systolic pressure in mmHg."`
	Diastolic int    `arg:"" help:"Diastolic pressure in mmHg."`
	Date      string `help:"Reading date (YYYY-MM-DD, default today)."`
	Time      string `help:"Reading time (HH:MM, default now)."`
	Notes     string `help:"Optional notes."`
}

func (c *BPCmd) Run(ctx *cli.Context) error {
	date, err := cli.DefaultDate(c.Date)
	if err != nil {
		return err
	}
	tm, err := cli.DefaultTime(c.Time)
	if err != nil {
		return err
	}

	r := models.BPReading{Date: date, Time: tm, Systolic: c.Systolic, Diastolic: c.Diastolic, Notes: c.Notes}
	if err := r.Validate(); err != nil {
		return err
	}

	log, err := ctx.BPLog()
	if err != nil {
		return err
	}
	saved, err := log.Add(r)
	if err != nil {
		return err
	}
	fmt.Printf("Logged blood pressure #%d: %d/%d mmHg (%s)\n", saved.ID, saved.Systolic, saved.Diastolic,
		bandStyle(string(models.ClassifyBP(saved.Systolic, saved.Diastolic))))
	return nil
}

type ListCmd struct {
	cli.ListFlags
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	glucose, err := ctx.GlucoseLog()
	if err != nil {
		return err
	}
	bp, err := ctx.BPLog()
	if err != nil {
		return err
	}

	fmt.Println("Blood Glucose")
	for _, r := range glucose.Entries(c.Filter()) {
		fmt.Printf("#%d  %s %s  %d mg/dL  %s  %s\n", r.ID, r.Date, r.Time, r.Value,
			bandStyle(string(models.ClassifyGlucose(r.Value))), r.Notes)
	}
	fmt.Println("\nBlood Pressure")
	for _, r := range bp.Entries(c.Filter()) {
		fmt.Printf("#%d  %s %s  %d/%d mmHg  %s  %s\n", r.ID, r.Date, r.Time, r.Systolic, r.Diastolic,
			bandStyle(string(models.ClassifyBP(r.Systolic, r.Diastolic))), r.Notes)
	}
	return nil
}

type EditCmd struct {
	Kind      string  `arg:"" help:"Reading kind: glucose or bp." enum:"glucose,bp"`
	ID        int     `arg:"" help:"Reading id."`
	Value     int     `help:"Glucose value in mg/dL (glucose only)." default:"-1"`
	Systolic  int     `help:"Systolic pressure (bp only)." default:"-1"`
	Diastolic int     `help:"Diastolic pressure (bp only)." default:"-1"`
	Notes     *string `help:"Replace notes."`
}

func (c *EditCmd) Run(ctx *cli.Context) error {
	if c.Kind == "glucose" {
		log, err := ctx.GlucoseLog()
		if err != nil {
			return err
		}
		r, err := log.Get(c.ID)
		if err != nil {
			return err
		}
		if c.Value >= 0 {
			r.Value = c.Value
		}
		if c.Notes != nil {
			r.Notes = *c.Notes
		}
		if err := r.Validate(); err != nil {
			return err
		}
		if _, err := log.Update(c.ID, r); err != nil {
			return err
		}
	} else {
		log, err := ctx.BPLog()
		if err != nil {
			return err
		}
		r, err := log.Get(c.ID)
		if err != nil {
			return err
		}
		if c.Systolic >= 0 {
			r.Systolic = c.Systolic
		}
		if c.Diastolic >= 0 {
			r.Diastolic = c.Diastolic
		}
		if c.Notes != nil {
			r.Notes = *c.Notes
		}
		if err := r.Validate(); err != nil {
			return err
		}
		if _, err := log.Update(c.ID, r); err != nil {
			return err
		}
	}
	fmt.Printf("Updated %s reading #%d\n", c.Kind, c.ID)
	return nil
}

type DeleteCmd struct {
	Kind string `arg:"" help:"Reading kind: glucose or bp." enum:"glucose,bp"`
	ID   int    `arg:"" help:"Reading id."`
	Yes  bool   `help:"Skip confirmation." short:"y"`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		ok, err := cli.Confirm(fmt.Sprintf("Delete %s reading #%d?", c.Kind, c.ID))
		if err != nil || !ok {
			return err
		}
	}
	if c.Kind == "glucose" {
		log, err := ctx.GlucoseLog()
		if err != nil {
			return err
		}
		if err := log.Remove(c.ID); err != nil {
			return err
		}
	} else {
		log, err := ctx.BPLog()
		if err != nil {
			return err
		}
		if err := log.Remove(c.ID); err != nil {
			return err
		}
	}
	fmt.Printf("Deleted %s reading #%d\n", c.Kind, c.ID)
	return nil
}

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	glucose, err := ctx.GlucoseLog()
	if err != nil {
		return err
	}
	bp, err := ctx.BPLog()
	if err != nil {
		return err
	}
	s := stats.Vitals(glucose.Entries(storage.Filter{}), bp.Entries(storage.Filter{}))

	cli.PrintTitle("Vitals")
	if s.LatestGlucose != nil {
		fmt.Println(cli.StatRow(
			cli.StatCard("Glucose", fmt.Sprintf("%d mg/dL", s.LatestGlucose.Value)),
			cli.StatCard("Band", bandStyle(string(s.GlucoseBand))),
			cli.StatCard("Average", fmt.Sprintf("%.1f mg/dL", s.AvgGlucose)),
		))
	} else {
		fmt.Println("No glucose readings.")
	}
	if s.LatestBP != nil {
		fmt.Println(cli.StatRow(
			cli.StatCard("Blood Pressure", fmt.Sprintf("%d/%d", s.LatestBP.Systolic, s.LatestBP.Diastolic)),
			cli.StatCard("Band", bandStyle(string(s.BPBand))),
			cli.StatCard("Average", fmt.Sprintf("%.1f/%.1f", s.AvgSystolic, s.AvgDiastolic)),
		))
	} else {
		fmt.Println("No blood pressure readings.")
	}
	return nil
}

type ReportCmd struct {
	Output string `help:"Output file (default vitals-report-<date>.txt, \"-\" for stdout)." short:"o"`
}

func (c *ReportCmd) Run(ctx *cli.Context) error {
	glucose, err := ctx.GlucoseLog()
	if err != nil {
		return err
	}
	bp, err := ctx.BPLog()
	if err != nil {
		return err
	}
	now := time.Now()
	text := report.Vitals(glucose.Entries(storage.Filter{}), bp.Entries(storage.Filter{}), now)
	path := c.Output
	if path == "" {
		path = report.Filename(constants.TrackerVitals, now)
	}
	return cli.WriteOutput(path, []byte(text))
}

type vitalsExport struct {
	Glucose    []models.GlucoseReading `json:"glucose"`
	BP         []models.BPReading      `json:"bloodPressure"`
	ExportDate string                  `json:"exportDate"`
}

type ExportCmd struct {
	Output string `help:"Output file (default vitals-data-<date>.json, \"-\" for stdout)." short:"o"`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	glucose, err := ctx.GlucoseLog()
	if err != nil {
		return err
	}
	bp, err := ctx.BPLog()
	if err != nil {
		return err
	}
	now := time.Now()
	data, err := report.ExportJSON(vitalsExport{
		Glucose:    glucose.All(),
		BP:         bp.All(),
		ExportDate: now.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	path := c.Output
	if path == "" {
		path = report.DataFilename(constants.TrackerVitals, now)
	}
	return cli.WriteOutput(path, data)
}

type ClearCmd struct {
	Yes bool `help:"Skip confirmation." short:"y"`
}

func (c *ClearCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		ok, err := cli.Confirm("Delete ALL vitals readings? Sample data returns on next run.")
		if err != nil || !ok {
			return err
		}
	}
	glucose, err := ctx.GlucoseLog()
	if err != nil {
		return err
	}
	bp, err := ctx.BPLog()
	if err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	if err := glucose.Clear(); err != nil {
		return err
	}
	if err := bp.Clear(); err != nil {
		return err
	}
	fmt.Println("Cleared vitals readings.")
	return nil
}
