// Package meals implements the meal tracker commands.
package meals

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

type MealsCmd struct {
	Log    LogCmd    `cmd:"" help:"Log a meal."`
	List   ListCmd   `cmd:"" help:"List meal entries."`
	Edit   EditCmd   `cmd:"" help:"Edit a meal entry."`
	Delete DeleteCmd `cmd:"" help:"Delete a meal entry."`
	Stats  StatsCmd  `cmd:"" help:"Show meal statistics."`
	Report ReportCmd `cmd:"" help:"Write a plain-text meal report."`
	Export ExportCmd `cmd:"" help:"Export meal entries as JSON."`
	Import ImportCmd `cmd:"" help:"Import meal entries from a JSON export."`
	Clear  ClearCmd  `cmd:"" help:"Delete all meal entries."`
}

type LogCmd struct {
	Name        string `arg:"" help:"What was eaten."`
	Interactive bool   `help:"Fill the entry in an interactive form." short:"i"`
	Type        string `help:"Meal type: breakfast, lunch, dinner, snack." enum:"breakfast,lunch,dinner,snack" default:"snack"`
	Calories    int    `help:"Estimated calories."`
	Date        string `help:"Meal date (YYYY-MM-DD, default today)."`
	Time        string `help:"Meal time (HH:MM, default now)."`
	Tags        string `help:"Comma-separated tags (e.g. homemade, protein)."`
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

	entry := models.MealEntry{
		Date:     date,
		Time:     tm,
		Type:     models.MealType(c.Type),
		Name:     c.Name,
		Calories: c.Calories,
		Tags:     cli.SplitList(c.Tags),
		Notes:    c.Notes,
	}

	if c.Interactive {
		if err := mealForm(&entry); err != nil {
			return err
		}
	}
	if err := entry.Validate(); err != nil {
		return err
	}

	log, err := ctx.MealLog()
	if err != nil {
		return err
	}
	saved, err := log.Add(entry)
	if err != nil {
		return err
	}
	fmt.Printf("Logged %s #%d: %s\n", saved.Type, saved.ID, saved.Name)
	return nil
}

// mealForm edits the entry in place via a huh form.
func mealForm(e *models.MealEntry) error {
	typeOptions := make([]huh.Option[models.MealType], len(models.MealTypes))
	for i, t := range models.MealTypes {
		typeOptions[i] = huh.NewOption(string(t), t)
	}

	calories := ""
	if e.Calories > 0 {
		calories = strconv.Itoa(e.Calories)
	}
	tags := strings.Join(e.Tags, ", ")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("What did you eat?").Value(&e.Name),
			huh.NewSelect[models.MealType]().Title("Meal type").Options(typeOptions...).Value(&e.Type),
			huh.NewInput().Title("Estimated calories").Validate(cli.OptionalInt).Value(&calories),
			huh.NewInput().Title("Tags (comma-separated)").Value(&tags),
			huh.NewText().Title("Notes").Value(&e.Notes),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	e.Calories = cli.ParseOptionalInt(calories)
	e.Tags = cli.SplitList(tags)
	return nil
}

type ListCmd struct {
	cli.ListFlags
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	log, err := ctx.MealLog()
	if err != nil {
		return err
	}
	entries := log.Entries(c.Filter())
	if len(entries) == 0 {
		fmt.Println("No meal entries found.")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("#%d  %s %s  %-9s  %s", e.ID, e.Date, e.Time, e.Type, e.Name)
		if e.Calories > 0 {
			fmt.Printf("  (%d kcal)", e.Calories)
		}
		fmt.Println()
	}
	return nil
}

type EditCmd struct {
	ID       int     `arg:"" help:"Entry id."`
	Name     *string `help:"Replace the meal name."`
	Type     string  `help:"Meal type: breakfast, lunch, dinner, snack." enum:"breakfast,lunch,dinner,snack," default:""`
	Calories int     `help:"Estimated calories." default:"-1"`
	Notes    *string `help:"Replace notes."`
}

func (c *EditCmd) Run(ctx *cli.Context) error {
	log, err := ctx.MealLog()
	if err != nil {
		return err
	}
	entry, err := log.Get(c.ID)
	if err != nil {
		return err
	}
	if c.Name != nil {
		entry.Name = *c.Name
	}
	if c.Type != "" {
		entry.Type = models.MealType(c.Type)
	}
	if c.Calories >= 0 {
		entry.Calories = c.Calories
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
	fmt.Printf("Updated meal entry #%d\n", c.ID)
	return nil
}

type DeleteCmd struct {
	ID  int  `arg:"" help:"Entry id."`
	Yes bool `help:"Skip confirmation." short:"y"`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		ok, err := cli.Confirm(fmt.Sprintf("Delete meal entry #%d?", c.ID))
		if err != nil || !ok {
			return err
		}
	}
	log, err := ctx.MealLog()
	if err != nil {
		return err
	}
	if err := log.Remove(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted meal entry #%d\n", c.ID)
	return nil
}

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	log, err := ctx.MealLog()
	if err != nil {
		return err
	}
	s := stats.Meals(log.All(), time.Now())

	cli.PrintTitle("Meals")
	fmt.Println(cli.StatRow(
		cli.StatCard("Today", fmt.Sprintf("%d meals", s.TodayMeals)),
		cli.StatCard("Today's Calories", fmt.Sprintf("%d kcal", s.TodayCalories)),
		cli.StatCard("Avg Calories", fmt.Sprintf("%.1f", s.AvgCalories)),
	))
	for _, t := range models.MealTypes {
		fmt.Printf("%s: %d\n", t, s.ByType[t])
	}
	return nil
}

type ReportCmd struct {
	cli.ListFlags
	Output string `help:"Output file (default meals-report-<date>.txt, \"-\" for stdout)." short:"o"`
}

func (c *ReportCmd) Run(ctx *cli.Context) error {
	log, err := ctx.MealLog()
	if err != nil {
		return err
	}
	now := time.Now()
	text := report.Meals(log.Entries(c.Filter()), c.PeriodValue(), now)
	path := c.Output
	if path == "" {
		path = report.Filename(constants.TrackerMeals, now)
	}
	return cli.WriteOutput(path, []byte(text))
}

type ExportCmd struct {
	Output string `help:"Output file (default meals-data-<date>.json, \"-\" for stdout)." short:"o"`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	log, err := ctx.MealLog()
	if err != nil {
		return err
	}
	data, err := report.ExportJSON(log.All())
	if err != nil {
		return err
	}
	path := c.Output
	if path == "" {
		path = report.DataFilename(constants.TrackerMeals, time.Now())
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
	incoming, err := report.DecodeArray[models.MealEntry](data)
	if err != nil {
		return err
	}
	log, err := ctx.MealLog()
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
		ok, err := cli.Confirm("Delete ALL meal entries? Sample data returns on next run.")
		if err != nil || !ok {
			return err
		}
	}
	log, err := ctx.MealLog()
	if err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	if err := log.Clear(); err != nil {
		return err
	}
	fmt.Println("Cleared meal entries.")
	return nil
}
