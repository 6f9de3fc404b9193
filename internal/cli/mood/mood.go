// Package mood implements the mood tracker commands.
package mood

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

type MoodCmd struct {
	Log    LogCmd    `cmd:"" help:"Log a mood entry."`
	List   ListCmd   `cmd:"" help:"List mood entries."`
	Edit   EditCmd   `cmd:"" help:"Edit a mood entry."`
	Delete DeleteCmd `cmd:"" help:"Delete a mood entry."`
	Stats  StatsCmd  `cmd:"" help:"Show mood statistics."`
	Report ReportCmd `cmd:"" help:"Write a plain-text mood report."`
	Export ExportCmd `cmd:"" help:"Export mood entries as JSON."`
	Import ImportCmd `cmd:"" help:"Import mood entries from a JSON export."`
	Clear  ClearCmd  `cmd:"" help:"Delete all mood entries."`
}

type LogCmd struct {
	Interactive bool   `help:"Fill the entry in an interactive form." short:"i"`
	Date        string `help:"Entry date (YYYY-MM-DD, default today)."`
	Time        string `help:"Entry time (HH:MM, default now)."`
	Mood        int    `help:"Mood score 1-10." default:"5"`
	Energy      int    `help:"Energy level 1-10." default:"5"`
	Stress      int    `help:"Stress level 1-10." default:"5"`
	Sleep       int    `help:"Sleep quality 1-10." default:"5"`
	Weather     string `help:"Weather: sunny, cloudy, rainy, windy." enum:"sunny,cloudy,rainy,windy" default:"sunny"`
	Activities  string `help:"Comma-separated activities."`
	Triggers    string `help:"Comma-separated triggers."`
	Symptoms    string `help:"Comma-separated symptoms."`
	Medications string `help:"Comma-separated medications taken."`
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

	entry := models.MoodEntry{
		Date:        date,
		Time:        tm,
		MoodScore:   c.Mood,
		Energy:      c.Energy,
		Stress:      c.Stress,
		Sleep:       c.Sleep,
		Weather:     models.Weather(c.Weather),
		Activities:  cli.SplitList(c.Activities),
		Triggers:    cli.SplitList(c.Triggers),
		Symptoms:    cli.SplitList(c.Symptoms),
		Medications: cli.SplitList(c.Medications),
		Notes:       c.Notes,
	}

	if c.Interactive {
		if err := moodForm(&entry); err != nil {
			return err
		}
	}

	opt := models.MoodOptionFor(entry.MoodScore)
	entry.MoodLabel = opt.Label
	entry.MoodEmoji = opt.Emoji

	if err := entry.Validate(); err != nil {
		return err
	}

	log, err := ctx.MoodLog()
	if err != nil {
		return err
	}
	saved, err := log.Add(entry)
	if err != nil {
		return err
	}
	fmt.Printf("Logged mood entry #%d: %s (%d/10) %s\n", saved.ID, saved.MoodLabel, saved.MoodScore, saved.MoodEmoji)
	return nil
}

// moodForm edits the entry in place via a huh form.
func moodForm(e *models.MoodEntry) error {
	scoreOptions := make([]huh.Option[int], len(models.MoodOptions))
	for i, opt := range models.MoodOptions {
		scoreOptions[i] = huh.NewOption(fmt.Sprintf("%s %s (%d)", opt.Emoji, opt.Label, opt.Score), opt.Score)
	}

	activities := strings.Join(e.Activities, ", ")
	triggers := strings.Join(e.Triggers, ", ")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().Title("How are you feeling?").Options(scoreOptions...).Value(&e.MoodScore),
			huh.NewSelect[int]().Title("Energy level").Options(cli.ScaleOptions()...).Value(&e.Energy),
			huh.NewSelect[int]().Title("Stress level").Options(cli.ScaleOptions()...).Value(&e.Stress),
			huh.NewSelect[int]().Title("Sleep quality").Options(cli.ScaleOptions()...).Value(&e.Sleep),
		),
		huh.NewGroup(
			huh.NewSelect[models.Weather]().Title("Weather").Options(
				huh.NewOption("Sunny", models.WeatherSunny),
				huh.NewOption("Cloudy", models.WeatherCloudy),
				huh.NewOption("Rainy", models.WeatherRainy),
				huh.NewOption("Windy", models.WeatherWindy),
			).Value(&e.Weather),
			huh.NewInput().Title("Activities (comma-separated)").Value(&activities),
			huh.NewInput().Title("Triggers (comma-separated)").Value(&triggers),
			huh.NewText().Title("Notes").Value(&e.Notes),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}
	e.Activities = cli.SplitList(activities)
	e.Triggers = cli.SplitList(triggers)
	return nil
}

type ListCmd struct {
	cli.ListFlags
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	log, err := ctx.MoodLog()
	if err != nil {
		return err
	}
	entries := log.Entries(c.Filter())
	if len(entries) == 0 {
		fmt.Println("No mood entries found.")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("#%d  %s %s  %s %s (%d/10)  energy %d  stress %d  sleep %d\n",
			e.ID, e.Date, e.Time, e.MoodEmoji, e.MoodLabel, e.MoodScore, e.Energy, e.Stress, e.Sleep)
		if e.Notes != "" {
			fmt.Printf("     %s\n", e.Notes)
		}
	}
	return nil
}

type EditCmd struct {
	ID     int     `arg:"" help:"Entry id."`
	Mood   int     `help:"Mood score 1-10." default:"-1"`
	Energy int     `help:"Energy level 1-10." default:"-1"`
	Stress int     `help:"Stress level 1-10." default:"-1"`
	Sleep  int     `help:"Sleep quality 1-10." default:"-1"`
	Notes  *string `help:"Replace notes."`
}

func (c *EditCmd) Run(ctx *cli.Context) error {
	log, err := ctx.MoodLog()
	if err != nil {
		return err
	}
	entry, err := log.Get(c.ID)
	if err != nil {
		return err
	}

	if c.Mood >= 0 {
		entry.MoodScore = c.Mood
		opt := models.MoodOptionFor(c.Mood)
		entry.MoodLabel = opt.Label
		entry.MoodEmoji = opt.Emoji
	}
	if c.Energy >= 0 {
		entry.Energy = c.Energy
	}
	if c.Stress >= 0 {
		entry.Stress = c.Stress
	}
	if c.Sleep >= 0 {
		entry.Sleep = c.Sleep
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
	fmt.Printf("Updated mood entry #%d\n", c.ID)
	return nil
}

type DeleteCmd struct {
	ID  int  `arg:"" help:"Entry id."`
	Yes bool `help:"Skip confirmation." short:"y"`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		ok, err := cli.Confirm(fmt.Sprintf("Delete mood entry #%d?", c.ID))
		if err != nil || !ok {
			return err
		}
	}
	log, err := ctx.MoodLog()
	if err != nil {
		return err
	}
	if err := log.Remove(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted mood entry #%d\n", c.ID)
	return nil
}

type StatsCmd struct {
	cli.ListFlags
}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	log, err := ctx.MoodLog()
	if err != nil {
		return err
	}
	entries := log.Entries(c.Filter())
	s := stats.Mood(entries)

	cli.PrintTitle("Mood  ·  " + c.PeriodValue().Label())
	fmt.Println(cli.StatRow(
		cli.StatCard("Average Mood", fmt.Sprintf("%.1f/10", s.AvgMood)),
		cli.StatCard("Energy", fmt.Sprintf("%.1f/10", s.AvgEnergy)),
		cli.StatCard("Stress", fmt.Sprintf("%.1f/10", s.AvgStress)),
		cli.StatCard("Trend", string(s.Trend)),
	))
	fmt.Printf("%d entries\n", s.Entries)
	return nil
}

type ReportCmd struct {
	cli.ListFlags
	Output string `help:"Output file (default <tracker>-report-<date>.txt, \"-\" for stdout)." short:"o"`
}

func (c *ReportCmd) Run(ctx *cli.Context) error {
	log, err := ctx.MoodLog()
	if err != nil {
		return err
	}
	now := time.Now()
	text := report.Mood(log.Entries(c.Filter()), c.PeriodValue(), now)

	path := c.Output
	if path == "" {
		path = report.Filename(constants.TrackerMood, now)
	}
	return cli.WriteOutput(path, []byte(text))
}

type ExportCmd struct {
	Output string `help:"Output file (default <tracker>-data-<date>.json, \"-\" for stdout)." short:"o"`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	log, err := ctx.MoodLog()
	if err != nil {
		return err
	}
	data, err := report.ExportJSON(log.All())
	if err != nil {
		return err
	}
	path := c.Output
	if path == "" {
		path = report.DataFilename(constants.TrackerMood, time.Now())
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
	incoming, err := report.DecodeArray[models.MoodEntry](data)
	if err != nil {
		return err
	}

	log, err := ctx.MoodLog()
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

type ClearCmd struct {
	Yes bool `help:"Skip confirmation." short:"y"`
}

func (c *ClearCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		ok, err := cli.Confirm("Delete ALL mood entries? Sample data returns on next run.")
		if err != nil || !ok {
			return err
		}
	}
	log, err := ctx.MoodLog()
	if err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	if err := log.Clear(); err != nil {
		return err
	}
	fmt.Println("Cleared mood entries.")
	return nil
}
