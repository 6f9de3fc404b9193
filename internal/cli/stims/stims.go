// Package stims implements the stimming tracker commands.
package stims

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/neuropulse/neuropulse/internal/cli"
	"github.com/neuropulse/neuropulse/internal/constants"
	"github.com/neuropulse/neuropulse/internal/models"
	"github.com/neuropulse/neuropulse/internal/report"
	"github.com/neuropulse/neuropulse/internal/stats"
)

type StimsCmd struct {
	Add    AddCmd    `cmd:"" help:"Add a stim type to track."`
	Log    LogCmd    `cmd:"" help:"Log a stim occurrence."`
	List   ListCmd   `cmd:"" help:"List stim events."`
	Edit   EditCmd   `cmd:"" help:"Edit a stim event."`
	Types  TypesCmd  `cmd:"" help:"List tracked stim types."`
	Delete DeleteCmd `cmd:"" help:"Delete a stim event."`
	Stats  StatsCmd  `cmd:"" help:"Show stimming statistics."`
	Report ReportCmd `cmd:"" help:"Write a plain-text stimming report."`
	Export ExportCmd `cmd:"" help:"Export stim events as JSON."`
	Import ImportCmd `cmd:"" help:"Import stim events from a JSON export."`
	Clear  ClearCmd  `cmd:"" help:"Delete all stim events."`
}

type AddCmd struct {
	Name     string `arg:"" help:"Stim name, e.g. \"Hand Flapping\"."`
	Category string `help:"Category: motor, vocal, sensory, other." enum:"motor,vocal,sensory,other" default:"motor"`
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	t := models.StimType{Name: c.Name, Category: models.StimCategory(c.Category)}
	if err := t.Validate(); err != nil {
		return err
	}
	log, err := ctx.StimTypeLog()
	if err != nil {
		return err
	}
	saved, err := log.Add(t)
	if err != nil {
		return err
	}
	fmt.Printf("Added stim type #%d: %s (%s)\n", saved.ID, saved.Name, saved.Category)
	return nil
}

type LogCmd struct {
	Stim        int    `arg:"" help:"Stim type id."`
	Interactive bool   `help:"Fill the event in an interactive form." short:"i"`
	Intensity   int    `help:"Intensity 1-10." default:"5"`
	Date        string `help:"Event date (YYYY-MM-DD, default today)."`
	Time        string `help:"Event time (HH:MM, default now)."`
	Context     string `help:"Where/what was happening."`
}

func (c *LogCmd) Run(ctx *cli.Context) error {
	types, err := ctx.StimTypeLog()
	if err != nil {
		return err
	}
	stim, err := types.Get(c.Stim)
	if err != nil {
		return err
	}

	date, err := cli.DefaultDate(c.Date)
	if err != nil {
		return err
	}
	tm, err := cli.DefaultTime(c.Time)
	if err != nil {
		return err
	}

	event := models.StimEvent{
		StimID:    stim.ID,
		StimName:  stim.Name,
		Date:      date,
		Time:      tm,
		Intensity: c.Intensity,
		Context:   c.Context,
	}

	if c.Interactive {
		if err := stimForm(&event); err != nil {
			return err
		}
	}
	if err := event.Validate(); err != nil {
		return err
	}

	log, err := ctx.StimEventLog()
	if err != nil {
		return err
	}
	saved, err := log.Add(event)
	if err != nil {
		return err
	}
	fmt.Printf("Logged %s #%d (intensity %d/10)\n", saved.StimName, saved.ID, saved.Intensity)
	return nil
}

func stimForm(e *models.StimEvent) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().Title(fmt.Sprintf("Intensity of %s", e.StimName)).
				Options(cli.ScaleOptions()...).Value(&e.Intensity),
			huh.NewInput().Title("Context (where, what was happening)").Value(&e.Context),
		),
	)
	return form.Run()
}

type ListCmd struct {
	cli.ListFlags
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	log, err := ctx.StimEventLog()
	if err != nil {
		return err
	}
	events := log.Entries(c.Filter())
	if len(events) == 0 {
		fmt.Println("No stim events found.")
		return nil
	}
	for _, e := range events {
		fmt.Printf("#%d  %s %s  %s  intensity %d/10", e.ID, e.Date, e.Time, e.StimName, e.Intensity)
		if e.Context != "" {
			fmt.Printf("  (%s)", e.Context)
		}
		fmt.Println()
	}
	return nil
}

type EditCmd struct {
	ID        int     `arg:"" help:"Event id."`
	Intensity int     `help:"Intensity 1-10." default:"-1"`
	Context   *string `help:"Replace context note."`
}

func (c *EditCmd) Run(ctx *cli.Context) error {
	log, err := ctx.StimEventLog()
	if err != nil {
		return err
	}
	event, err := log.Get(c.ID)
	if err != nil {
		return err
	}
	if c.Intensity >= 0 {
		event.Intensity = c.Intensity
	}
	if c.Context != nil {
		event.Context = *c.Context
	}
	if err := event.Validate(); err != nil {
		return err
	}
	if _, err := log.Update(c.ID, event); err != nil {
		return err
	}
	fmt.Printf("Updated stim event #%d\n", c.ID)
	return nil
}

type TypesCmd struct{}

func (c *TypesCmd) Run(ctx *cli.Context) error {
	log, err := ctx.StimTypeLog()
	if err != nil {
		return err
	}
	for _, t := range log.All() {
		fmt.Printf("#%d  %s (%s)\n", t.ID, t.Name, t.Category)
	}
	return nil
}

type DeleteCmd struct {
	ID  int  `arg:"" help:"Event id."`
	Yes bool `help:"Skip confirmation." short:"y"`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		ok, err := cli.Confirm(fmt.Sprintf("Delete stim event #%d?", c.ID))
		if err != nil || !ok {
			return err
		}
	}
	log, err := ctx.StimEventLog()
	if err != nil {
		return err
	}
	if err := log.Remove(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted stim event #%d\n", c.ID)
	return nil
}

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	types, err := ctx.StimTypeLog()
	if err != nil {
		return err
	}
	log, err := ctx.StimEventLog()
	if err != nil {
		return err
	}
	s := stats.Stims(log.All(), time.Now())

	cli.PrintTitle("Stimming")
	fmt.Println(cli.StatRow(
		cli.StatCard("Events", fmt.Sprintf("%d", s.Events)),
		cli.StatCard("Today", fmt.Sprintf("%d", s.TodayEvents)),
		cli.StatCard("Avg Intensity", fmt.Sprintf("%.1f/10", s.AvgIntensity)),
	))
	for _, row := range s.ByStim {
		fmt.Printf("%s: %d\n", row.Tag, row.Count)
	}
	if cats := stats.StimCategories(types.All(), log.All()); len(cats) > 0 {
		cli.Rule(30)
		for _, row := range cats {
			fmt.Printf("%s: %d\n", row.Tag, row.Count)
		}
	}
	return nil
}

type ReportCmd struct {
	cli.ListFlags
	Output string `help:"Output file (default stimming-report-<date>.txt, \"-\" for stdout)." short:"o"`
}

func (c *ReportCmd) Run(ctx *cli.Context) error {
	types, err := ctx.StimTypeLog()
	if err != nil {
		return err
	}
	events, err := ctx.StimEventLog()
	if err != nil {
		return err
	}
	now := time.Now()
	text := report.Stims(types.All(), events.Entries(c.Filter()), c.PeriodValue(), now)
	path := c.Output
	if path == "" {
		path = report.Filename(constants.TrackerStims, now)
	}
	return cli.WriteOutput(path, []byte(text))
}

type ExportCmd struct {
	Output string `help:"Output file (default stimming-data-<date>.json, \"-\" for stdout)." short:"o"`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	log, err := ctx.StimEventLog()
	if err != nil {
		return err
	}
	data, err := report.ExportJSON(log.All())
	if err != nil {
		return err
	}
	path := c.Output
	if path == "" {
		path = report.DataFilename(constants.TrackerStims, time.Now())
	}
	return cli.WriteOutput(path, data)
}

type ImportCmd struct {
	File string `arg:"" help:"JSON export to import." type:"existingfile"`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	data, err := cli.ReadFile(c.File)
	if err != nil {
		return err
	}
	incoming, err := report.DecodeArray[models.StimEvent](data)
	if err != nil {
		return err
	}
	log, err := ctx.StimEventLog()
	if err != nil {
		return err
	}
	added, err := log.Merge(incoming)
	if err != nil {
		return err
	}
	fmt.Printf("Imported %d new events (%d skipped as duplicates)\n", added, len(incoming)-added)
	return nil
}

type ClearCmd struct {
	Yes bool `help:"Skip confirmation." short:"y"`
}

func (c *ClearCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		ok, err := cli.Confirm("Delete ALL stim events? Sample data returns on next run.")
		if err != nil || !ok {
			return err
		}
	}
	log, err := ctx.StimEventLog()
	if err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	if err := log.Clear(); err != nil {
		return err
	}
	fmt.Println("Cleared stim events.")
	return nil
}
