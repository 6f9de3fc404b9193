// Package recovery implements the gambling-recovery tracker commands.
package recovery

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/neuropulse/neuropulse/internal/cli"
	"github.com/neuropulse/neuropulse/internal/constants"
	"github.com/neuropulse/neuropulse/internal/models"
	"github.com/neuropulse/neuropulse/internal/report"
	"github.com/neuropulse/neuropulse/internal/stats"
)

type RecoveryCmd struct {
	Log      LogCmd      `cmd:"" help:"Log a recovery entry (resisted urge, relapse, or close call)."`
	List     ListCmd     `cmd:"" help:"List recovery entries."`
	Edit     EditCmd     `cmd:"" help:"Edit a recovery entry."`
	Delete   DeleteCmd   `cmd:"" help:"Delete a recovery entry."`
	Stats    StatsCmd    `cmd:"" help:"Show recovery statistics."`
	Report   ReportCmd   `cmd:"" help:"Write a plain-text recovery report."`
	Export   ExportCmd   `cmd:"" help:"Export recovery entries as JSON."`
	Import   ImportCmd   `cmd:"" help:"Import recovery entries from a JSON export."`
	Hotlines HotlinesCmd `cmd:"" help:"Show emergency hotlines."`
	Clear    ClearCmd    `cmd:"" help:"Delete all recovery entries."`
}

type LogCmd struct {
	Kind        string `arg:"" help:"Entry type: urge_resisted, relapse, or close_call." enum:"urge_resisted,relapse,close_call"`
	Interactive bool   `help:"Fill the entry in an interactive form." short:"i"`
	Date        string `help:"Entry date (YYYY-MM-DD, default today)."`
	Time        string `help:"Entry time (HH:MM, default now)."`
	Urge        int    `help:"Urge intensity 1-10 (required unless relapse)."`
	Resistance  int    `help:"Resistance strength 1-10 (urge_resisted only)."`
	Saved       int    `help:"Money not spent on the urge (naira)."`
	Lost        int    `help:"Amount lost (relapse only, naira)."`
	Won         int    `help:"Amount won (relapse only, naira)."`
	Duration    int    `help:"Gambling duration in minutes (relapse only)."`
	Triggers    string `help:"Comma-separated triggers."`
	Coping      string `help:"Comma-separated coping strategies."`
	Mood        string `help:"Mood after the event."`
	Notes       string `help:"Free-form notes."`
}

func (c *LogCmd) Run(ctx *cli.Context) error {
	date, err := cli.DefaultDate(c.Date)
	if err != nil {
		return err
	}
	tm, err := cli.DefaultTime(c.Time)
	if err != nil {
		return err
	}

	log, err := ctx.RecoveryLog()
	if err != nil {
		return err
	}

	entry := models.RecoveryEntry{
		Date:               date,
		Time:               tm,
		Kind:               models.RecoveryKind(c.Kind),
		UrgeIntensity:      c.Urge,
		ResistanceStrength: c.Resistance,
		AmountLost:         c.Lost,
		AmountWon:          c.Won,
		DurationMin:        c.Duration,
		Triggers:           cli.SplitList(c.Triggers),
		CopingStrategies:   cli.SplitList(c.Coping),
		Mood:               c.Mood,
		Notes:              c.Notes,
		MoneyNotSpent:      c.Saved,
	}

	if c.Interactive {
		if err := recoveryForm(&entry); err != nil {
			return err
		}
	}

	// The streak is stamped at creation and never recomputed; a relapse
	// resets it to 0.
	if entry.Kind != models.KindRelapse {
		entry.DaysClean = stats.DaysClean(log.All(), time.Now())
	}

	if err := entry.Validate(); err != nil {
		return err
	}
	saved, err := log.Add(entry)
	if err != nil {
		return err
	}

	switch saved.Kind {
	case models.KindUrgeResisted:
		fmt.Printf("Logged resisted urge #%d. %d days clean, keep going!\n", saved.ID, saved.DaysClean)
	case models.KindRelapse:
		fmt.Printf("Logged relapse #%d. A relapse is a setback, not the end of recovery.\n", saved.ID)
		fmt.Println("\nIf you need to talk to someone:")
		for _, h := range models.EmergencyHotlines {
			fmt.Printf("  %s: %s\n", h.Name, h.Number)
		}
	default:
		fmt.Printf("Logged close call #%d. Noticing it is progress.\n", saved.ID)
	}
	return nil
}

// recoveryForm edits the entry in place via a huh form. The field set
// follows the entry kind, which is fixed before the form opens.
func recoveryForm(e *models.RecoveryEntry) error {
	triggers := strings.Join(e.Triggers, ", ")
	coping := strings.Join(e.CopingStrategies, ", ")
	lost := optInt(e.AmountLost)
	won := optInt(e.AmountWon)
	duration := optInt(e.DurationMin)
	notSpent := optInt(e.MoneyNotSpent)

	var first []huh.Field
	if e.Kind != models.KindRelapse {
		first = append(first,
			huh.NewSelect[int]().Title("Urge intensity").Options(cli.ScaleOptions()...).Value(&e.UrgeIntensity))
	}
	if e.Kind == models.KindUrgeResisted {
		first = append(first,
			huh.NewSelect[int]().Title("Resistance strength").Options(cli.ScaleOptions()...).Value(&e.ResistanceStrength),
			huh.NewInput().Title("Money not spent (naira)").Validate(cli.OptionalInt).Value(&notSpent))
	}
	if e.Kind == models.KindRelapse {
		first = append(first,
			huh.NewInput().Title("Amount lost (naira)").Validate(cli.OptionalInt).Value(&lost),
			huh.NewInput().Title("Amount won (naira)").Validate(cli.OptionalInt).Value(&won),
			huh.NewInput().Title("Duration (minutes)").Validate(cli.OptionalInt).Value(&duration))
	}

	form := huh.NewForm(
		huh.NewGroup(first...),
		huh.NewGroup(
			huh.NewInput().Title("Triggers (comma-separated)").Value(&triggers),
			huh.NewInput().Title("Coping strategies (comma-separated)").Value(&coping),
			huh.NewInput().Title("Mood afterwards").Value(&e.Mood),
			huh.NewText().Title("Notes").Value(&e.Notes),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	e.Triggers = cli.SplitList(triggers)
	e.CopingStrategies = cli.SplitList(coping)
	if e.Kind == models.KindRelapse {
		e.AmountLost = cli.ParseOptionalInt(lost)
		e.AmountWon = cli.ParseOptionalInt(won)
		e.DurationMin = cli.ParseOptionalInt(duration)
	}
	if e.Kind == models.KindUrgeResisted {
		e.MoneyNotSpent = cli.ParseOptionalInt(notSpent)
	}
	return nil
}

func optInt(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}

type ListCmd struct {
	cli.ListFlags
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	log, err := ctx.RecoveryLog()
	if err != nil {
		return err
	}
	entries := log.Entries(c.Filter())
	if len(entries) == 0 {
		fmt.Println("No recovery entries found.")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("#%d  %s %s  %s", e.ID, e.Date, e.Time, models.KindLabel(e.Kind))
		if e.UrgeIntensity > 0 {
			fmt.Printf("  urge %d/10", e.UrgeIntensity)
		}
		if e.AmountLost > 0 {
			fmt.Printf("  lost ₦%d", e.AmountLost)
		}
		if e.MoneyNotSpent > 0 {
			fmt.Printf("  saved ₦%d", e.MoneyNotSpent)
		}
		fmt.Println()
		if e.Notes != "" {
			fmt.Printf("     %s\n", e.Notes)
		}
	}
	return nil
}

type EditCmd struct {
	ID         int     `arg:"" help:"Entry id."`
	Urge       int     `help:"Urge intensity 1-10." default:"-1"`
	Resistance int     `help:"Resistance strength 1-10." default:"-1"`
	Saved      int     `help:"Money not spent (naira)." default:"-1"`
	Lost       int     `help:"Amount lost (naira)." default:"-1"`
	Mood       *string `help:"Replace mood."`
	Notes      *string `help:"Replace notes."`
}

func (c *EditCmd) Run(ctx *cli.Context) error {
	log, err := ctx.RecoveryLog()
	if err != nil {
		return err
	}
	entry, err := log.Get(c.ID)
	if err != nil {
		return err
	}

	// DaysClean keeps the value stamped at creation.
	if c.Urge >= 0 {
		entry.UrgeIntensity = c.Urge
	}
	if c.Resistance >= 0 {
		entry.ResistanceStrength = c.Resistance
	}
	if c.Saved >= 0 {
		entry.MoneyNotSpent = c.Saved
	}
	if c.Lost >= 0 {
		entry.AmountLost = c.Lost
	}
	if c.Mood != nil {
		entry.Mood = *c.Mood
	}
	if c.Notes != nil {
		entry.Notes = *c.Notes
	}

	if err := entry.Validate(); err != nil {
		return err
	}
	if _, err := log.Update(c.ID, entry); err != nil {
		return err
	}
	fmt.Printf("Updated recovery entry #%d\n", c.ID)
	return nil
}

type DeleteCmd struct {
	ID  int  `arg:"" help:"Entry id."`
	Yes bool `help:"Skip confirmation." short:"y"`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		ok, err := cli.Confirm(fmt.Sprintf("Delete recovery entry #%d?", c.ID))
		if err != nil || !ok {
			return err
		}
	}
	log, err := ctx.RecoveryLog()
	if err != nil {
		return err
	}
	if err := log.Remove(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted recovery entry #%d\n", c.ID)
	return nil
}

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	log, err := ctx.RecoveryLog()
	if err != nil {
		return err
	}
	s := stats.Recovery(log.All(), time.Now())

	cli.PrintTitle("Gambling Recovery")
	fmt.Println(cli.StatRow(
		cli.StatCard("Days Clean", fmt.Sprintf("%d", s.DaysClean)),
		cli.StatCard("Urges Resisted", fmt.Sprintf("%d", s.TotalResisted)),
		cli.StatCard("Resistance Rate", fmt.Sprintf("%.1f%%", s.ResistanceRate)),
	))

	net := cli.GoodStyle
	if s.Net < 0 {
		net = cli.AlertStyle
	}
	fmt.Println(cli.StatRow(
		cli.StatCard("Money Saved", fmt.Sprintf("₦%d", s.MoneySaved)),
		cli.StatCard("Money Lost", fmt.Sprintf("₦%d", s.MoneyLost)),
		cli.StatCard("Net Savings", net.Render(fmt.Sprintf("₦%d", s.Net))),
	))
	fmt.Printf("Relapses: %d  Close calls: %d  Avg urge intensity: %.1f/10\n",
		s.TotalRelapses, s.TotalCloseCalls, s.AvgUrgeIntensity)
	return nil
}

type ReportCmd struct {
	cli.ListFlags
	Output string `help:"Output file (default gambling-recovery-report-<date>.txt, \"-\" for stdout)." short:"o"`
}

func (c *ReportCmd) Run(ctx *cli.Context) error {
	log, err := ctx.RecoveryLog()
	if err != nil {
		return err
	}
	now := time.Now()
	text := report.Recovery(log.Entries(c.Filter()), c.PeriodValue(), now)
	path := c.Output
	if path == "" {
		path = report.Filename(constants.TrackerRecovery, now)
	}
	return cli.WriteOutput(path, []byte(text))
}

type ExportCmd struct {
	Output string `help:"Output file (default gambling-recovery-data-<date>.json, \"-\" for stdout)." short:"o"`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	log, err := ctx.RecoveryLog()
	if err != nil {
		return err
	}
	data, err := report.ExportJSON(log.All())
	if err != nil {
		return err
	}
	path := c.Output
	if path == "" {
		path = report.DataFilename(constants.TrackerRecovery, time.Now())
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
	incoming, err := report.DecodeArray[models.RecoveryEntry](data)
	if err != nil {
		return err
	}

	log, err := ctx.RecoveryLog()
	if err != nil {
		return err
	}
	added, err := log.Merge(incoming)
	if err != nil {
		return err
	}
	fmt.Printf("Imported %d new entries (%d skipped as duplicates)\n", added, len(incoming)-added)
	return nil
}

type HotlinesCmd struct{}

func (c *HotlinesCmd) Run(ctx *cli.Context) error {
	cli.PrintTitle("Emergency Hotlines")
	for _, h := range models.EmergencyHotlines {
		fmt.Printf("%s (%s): %s\n", h.Name, h.Country, h.Number)
	}
	return nil
}

type ClearCmd struct {
	Yes bool `help:"Skip confirmation." short:"y"`
}

func (c *ClearCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		ok, err := cli.Confirm("Delete ALL recovery entries? Sample data returns on next run.")
		if err != nil || !ok {
			return err
		}
	}
	log, err := ctx.RecoveryLog()
	if err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	if err := log.Clear(); err != nil {
		return err
	}
	fmt.Println("Cleared recovery entries.")
	return nil
}
