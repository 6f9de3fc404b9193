// Package meds implements the medication tracker commands: the roster,
// today's dose schedule, dose logging, and adherence reporting.
package meds

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/neuropulse/neuropulse/internal/cli"
	"github.com/neuropulse/neuropulse/internal/constants"
	"github.com/neuropulse/neuropulse/internal/models"
	"github.com/neuropulse/neuropulse/internal/report"
	"github.com/neuropulse/neuropulse/internal/stats"
)

type MedsCmd struct {
	Add    AddCmd    `cmd:"" help:"Add a medication to the roster."`
	List   ListCmd   `cmd:"" help:"List medications."`
	Edit   EditCmd   `cmd:"" help:"Edit a medication."`
	Delete DeleteCmd `cmd:"" help:"Delete a medication and its dose history."`
	Today  TodayCmd  `cmd:"" help:"Show today's dose schedule."`
	Dose   DoseCmd   `cmd:"" help:"Log a dose as taken or missed."`
	Stats  StatsCmd  `cmd:"" help:"Show adherence statistics."`
	Report ReportCmd `cmd:"" help:"Write a plain-text medication report."`
	Export ExportCmd `cmd:"" help:"Export medications and dose history as JSON."`
	Clear  ClearCmd  `cmd:"" help:"Delete all medications and dose history."`
}

type AddCmd struct {
	Name         string `arg:"" help:"Medication name."`
	Interactive  bool   `help:"Fill the details in an interactive form." short:"i"`
	Dosage       string `help:"Dosage, e.g. \"50mg\"."`
	Form         string `help:"Form: tablet, capsule, liquid, injection, inhaler, patch, cream, drops, spray, suppository." default:"tablet"`
	Frequency    string `help:"Frequency: daily, twice_daily, three_times_daily, four_times_daily, every_other_day, weekly, as_needed." default:"daily"`
	Times        string `help:"Comma-separated dose times (HH:MM, defaults per frequency)."`
	Purpose      string `help:"What the medication is for."`
	PrescribedBy string `help:"Prescriber name."`
	StartDate    string `help:"Start date (YYYY-MM-DD, default today)."`
	WithFood     bool   `help:"Take with food."`
	SideEffects  string `help:"Comma-separated side effects."`
	Notes        string `help:"Free-form notes."`
	Color        string `help:"Display color." default:"#6b8e7f"`
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	startDate, err := cli.DefaultDate(c.StartDate)
	if err != nil {
		return err
	}

	times := cli.SplitList(c.Times)
	if len(times) == 0 {
		times = models.DefaultTimes(models.Frequency(c.Frequency))
	}

	med := models.Medication{
		Name:         c.Name,
		Dosage:       c.Dosage,
		Form:         models.MedicationForm(c.Form),
		Frequency:    models.Frequency(c.Frequency),
		Times:        times,
		Purpose:      c.Purpose,
		PrescribedBy: c.PrescribedBy,
		StartDate:    startDate,
		Active:       true,
		WithFood:     c.WithFood,
		SideEffects:  cli.SplitList(c.SideEffects),
		Notes:        c.Notes,
		Color:        c.Color,
	}

	if c.Interactive {
		if err := medForm(&med); err != nil {
			return err
		}
	}
	if strings.TrimSpace(med.Dosage) == "" {
		return fmt.Errorf("dosage is required (set --dosage or use --interactive)")
	}
	if err := med.Validate(); err != nil {
		return err
	}

	log, err := ctx.MedsLog()
	if err != nil {
		return err
	}
	saved, err := log.Add(med)
	if err != nil {
		return err
	}
	fmt.Printf("Added medication #%d: %s %s (%s)\n", saved.ID, saved.Name, saved.Dosage,
		models.FrequencyLabel(saved.Frequency))
	return nil
}

// medForm edits the medication in place via a huh form.
func medForm(m *models.Medication) error {
	formOptions := make([]huh.Option[models.MedicationForm], len(models.MedicationForms))
	for i, f := range models.MedicationForms {
		formOptions[i] = huh.NewOption(string(f), f)
	}
	frequencies := []models.Frequency{
		models.FreqDaily, models.FreqTwiceDaily, models.FreqThreeTimesDaily,
		models.FreqFourTimesDaily, models.FreqEveryOtherDay, models.FreqWeekly,
		models.FreqAsNeeded,
	}
	freqOptions := make([]huh.Option[models.Frequency], len(frequencies))
	for i, f := range frequencies {
		freqOptions[i] = huh.NewOption(models.FrequencyLabel(f), f)
	}

	prevFrequency := m.Frequency
	times := strings.Join(m.Times, ", ")
	sideEffects := strings.Join(m.SideEffects, ", ")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&m.Name),
			huh.NewInput().Title("Dosage (e.g. 50mg)").Value(&m.Dosage),
			huh.NewSelect[models.MedicationForm]().Title("Form").Options(formOptions...).Value(&m.Form),
			huh.NewSelect[models.Frequency]().Title("Frequency").Options(freqOptions...).Value(&m.Frequency),
		),
		huh.NewGroup(
			huh.NewInput().Title("Dose times (comma-separated HH:MM)").Value(&times),
			huh.NewInput().Title("Purpose").Value(&m.Purpose),
			huh.NewInput().Title("Prescribed by").Value(&m.PrescribedBy),
			huh.NewConfirm().Title("Take with food?").Value(&m.WithFood),
			huh.NewInput().Title("Side effects (comma-separated)").Value(&sideEffects),
			huh.NewText().Title("Notes").Value(&m.Notes),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	if t := cli.SplitList(times); len(t) > 0 {
		m.Times = t
	}
	if m.Frequency != prevFrequency && times == strings.Join(models.DefaultTimes(prevFrequency), ", ") {
		// The times field still held the old frequency's defaults.
		m.Times = models.DefaultTimes(m.Frequency)
	}
	m.SideEffects = cli.SplitList(sideEffects)
	return nil
}

type ListCmd struct {
	cli.ListFlags
	All bool `help:"Include inactive medications." short:"a"`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	log, err := ctx.MedsLog()
	if err != nil {
		return err
	}
	meds := log.Entries(c.Filter())
	shown := 0
	for _, m := range meds {
		if !m.Active && !c.All {
			continue
		}
		status := ""
		if !m.Active {
			status = "  [INACTIVE]"
		}
		fmt.Printf("#%d  %s %s  %s  %s%s\n", m.ID, m.Name, m.Dosage,
			models.FrequencyLabel(m.Frequency), strings.Join(m.Times, ", "), status)
		if m.Purpose != "" {
			fmt.Printf("     %s\n", m.Purpose)
		}
		shown++
	}
	if shown == 0 {
		fmt.Println("No medications found.")
	}
	return nil
}

type EditCmd struct {
	ID       int     `arg:"" help:"Medication id."`
	Dosage   string  `help:"Replace dosage."`
	Times    string  `help:"Replace dose times (comma-separated HH:MM)."`
	Active   string  `help:"Set active state: true or false." enum:"true,false," default:""`
	Notes    *string `help:"Replace notes."`
	WithFood string  `help:"Set with-food flag: true or false." enum:"true,false," default:""`
}

func (c *EditCmd) Run(ctx *cli.Context) error {
	log, err := ctx.MedsLog()
	if err != nil {
		return err
	}
	med, err := log.Get(c.ID)
	if err != nil {
		return err
	}

	if c.Dosage != "" {
		med.Dosage = c.Dosage
	}
	if times := cli.SplitList(c.Times); len(times) > 0 {
		med.Times = times
	}
	if c.Active != "" {
		med.Active = c.Active == "true"
	}
	if c.WithFood != "" {
		med.WithFood = c.WithFood == "true"
	}
	if c.Notes != nil {
		med.Notes = *c.Notes
	}

	if err := med.Validate(); err != nil {
		return err
	}
	if _, err := log.Update(c.ID, med); err != nil {
		return err
	}
	fmt.Printf("Updated medication #%d\n", c.ID)
	return nil
}

type DeleteCmd struct {
	ID  int  `arg:"" help:"Medication id."`
	Yes bool `help:"Skip confirmation." short:"y"`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	log, err := ctx.MedsLog()
	if err != nil {
		return err
	}
	med, err := log.Get(c.ID)
	if err != nil {
		return err
	}

	if !c.Yes {
		ok, err := cli.Confirm(fmt.Sprintf("Delete %s and all its dose history?", med.Name))
		if err != nil || !ok {
			return err
		}
	}

	ctx.PerformAutomaticBackup()
	if err := log.Remove(c.ID); err != nil {
		return err
	}

	// Dose history for a deleted medication is meaningless, drop it too.
	doses, err := ctx.DoseLog()
	if err != nil {
		return err
	}
	removed, err := doses.RemoveWhere(func(d models.DoseRecord) bool {
		return d.MedicationID == c.ID
	})
	if err != nil {
		return err
	}
	fmt.Printf("Deleted %s and %d dose records\n", med.Name, removed)
	return nil
}

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	meds, err := ctx.MedsLog()
	if err != nil {
		return err
	}
	doses, err := ctx.DoseLog()
	if err != nil {
		return err
	}

	now := time.Now()
	slots := stats.TodaySlots(meds.All(), doses.All(), now)
	if len(slots) == 0 {
		fmt.Println("No doses scheduled for today.")
		return nil
	}

	cli.PrintTitle("Today's Schedule  ·  " + now.Format(constants.DateFormat))
	for _, s := range slots {
		mark := "·"
		switch s.Status {
		case models.DoseTaken:
			mark = cli.GoodStyle.Render("✓")
		case models.DoseMissed:
			mark = cli.AlertStyle.Render("✗")
		}
		line := fmt.Sprintf("%s  %s  %s", mark, s.ScheduledTime, s.MedicationName)
		if s.TakenTime != nil {
			line += cli.DimStyle.Render("  taken at " + *s.TakenTime)
		}
		fmt.Println(line)
	}
	return nil
}

type DoseCmd struct {
	Medication int    `arg:"" help:"Medication id."`
	Status     string `arg:"" help:"taken or missed." enum:"taken,missed"`
	Time       string `help:"Scheduled slot time (HH:MM, default the first pending slot)."`
	Date       string `help:"Dose date (YYYY-MM-DD, default today)."`
	Notes      string `help:"Optional notes."`
}

func (c *DoseCmd) Run(ctx *cli.Context) error {
	meds, err := ctx.MedsLog()
	if err != nil {
		return err
	}
	med, err := meds.Get(c.Medication)
	if err != nil {
		return err
	}

	date, err := cli.DefaultDate(c.Date)
	if err != nil {
		return err
	}

	doses, err := ctx.DoseLog()
	if err != nil {
		return err
	}

	now := time.Now()
	scheduled := c.Time
	if scheduled == "" {
		// Default to the first slot of this medication with no record today.
		for _, s := range stats.TodaySlots([]models.Medication{med}, doses.All(), now) {
			if s.Status == models.DosePending {
				scheduled = s.ScheduledTime
				break
			}
		}
		if scheduled == "" && len(med.Times) > 0 {
			scheduled = med.Times[0]
		}
	}

	record := models.DoseRecord{
		MedicationID:   med.ID,
		MedicationName: med.Name,
		ScheduledTime:  scheduled,
		Date:           date,
		Status:         models.DoseStatus(c.Status),
		Notes:          c.Notes,
	}
	if record.Status == models.DoseTaken {
		t := now.Format(constants.TimeFormat)
		record.TakenTime = &t
	}
	if err := record.Validate(); err != nil {
		return err
	}

	// Re-logging a slot replaces the previous record for that slot.
	if _, err := doses.RemoveWhere(func(d models.DoseRecord) bool {
		return d.MedicationID == med.ID && d.Date == date && d.ScheduledTime == scheduled
	}); err != nil {
		return err
	}
	saved, err := doses.Add(record)
	if err != nil {
		return err
	}
	fmt.Printf("Logged %s %s as %s (#%d)\n", med.Name, scheduled, saved.Status, saved.ID)
	return nil
}

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	meds, err := ctx.MedsLog()
	if err != nil {
		return err
	}
	doses, err := ctx.DoseLog()
	if err != nil {
		return err
	}

	now := time.Now()
	s := stats.Adherence(meds.All(), doses.All(), now)

	cli.PrintTitle("Medication Adherence")
	fmt.Println(cli.StatRow(
		cli.StatCard("Active Meds", fmt.Sprintf("%d of %d", s.ActiveMeds, s.TotalMeds)),
		cli.StatCard("7-Day Rate", fmt.Sprintf("%.1f%%", s.Rate)),
		cli.StatCard("Today", fmt.Sprintf("%d/%d (%.1f%%)", s.TodayTaken, s.TodayTotal, s.TodayRate)),
	))

	for _, day := range stats.AdherenceSeries(meds.All(), doses.All(), now) {
		fmt.Printf("%s  taken %d  missed %d  pending %d\n", day.Date, day.Taken, day.Missed, day.Pending)
	}
	return nil
}

type ReportCmd struct {
	Output string `help:"Output file (default medication-report-<date>.txt, \"-\" for stdout)." short:"o"`
}

func (c *ReportCmd) Run(ctx *cli.Context) error {
	meds, err := ctx.MedsLog()
	if err != nil {
		return err
	}
	doses, err := ctx.DoseLog()
	if err != nil {
		return err
	}

	now := time.Now()
	text := report.Medication(meds.All(), doses.All(), now)
	path := c.Output
	if path == "" {
		path = report.Filename(constants.TrackerMeds, now)
	}
	return cli.WriteOutput(path, []byte(text))
}

type ExportCmd struct {
	Output string `help:"Output file (default medication-data-<date>.json, \"-\" for stdout)." short:"o"`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	meds, err := ctx.MedsLog()
	if err != nil {
		return err
	}
	doses, err := ctx.DoseLog()
	if err != nil {
		return err
	}

	now := time.Now()
	data, err := report.ExportJSON(report.MedicationExport{
		Medications: meds.All(),
		DoseHistory: doses.All(),
		ExportDate:  now.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	path := c.Output
	if path == "" {
		path = report.DataFilename(constants.TrackerMeds, now)
	}
	return cli.WriteOutput(path, data)
}

type ClearCmd struct {
	Yes bool `help:"Skip confirmation." short:"y"`
}

func (c *ClearCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		ok, err := cli.Confirm("Delete ALL medications and dose history? Sample data returns on next run.")
		if err != nil || !ok {
			return err
		}
	}
	meds, err := ctx.MedsLog()
	if err != nil {
		return err
	}
	doses, err := ctx.DoseLog()
	if err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	if err := meds.Clear(); err != nil {
		return err
	}
	if err := doses.Clear(); err != nil {
		return err
	}
	fmt.Println("Cleared medications and dose history.")
	return nil
}
