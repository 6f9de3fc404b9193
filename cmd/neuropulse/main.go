package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/neuropulse/neuropulse/internal/cli"
	"github.com/neuropulse/neuropulse/internal/cli/chat"
	"github.com/neuropulse/neuropulse/internal/cli/meals"
	"github.com/neuropulse/neuropulse/internal/cli/meds"
	"github.com/neuropulse/neuropulse/internal/cli/mood"
	"github.com/neuropulse/neuropulse/internal/cli/recovery"
	"github.com/neuropulse/neuropulse/internal/cli/stims"
	"github.com/neuropulse/neuropulse/internal/cli/system"
	"github.com/neuropulse/neuropulse/internal/cli/vitals"
	"github.com/neuropulse/neuropulse/internal/constants"
	"github.com/neuropulse/neuropulse/internal/logger"
	"github.com/neuropulse/neuropulse/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Data    string `help:"Data directory." default:"${data_dir}"`
	Store   string `help:"Storage backend: json or sqlite." enum:"json,sqlite" default:"json"`
	Arvin   string `help:"Arvin chat backend URL." env:"NEUROPULSE_ARVIN_URL" default:"http://localhost:5000"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init   system.InitCmd   `cmd:"" help:"Initialize the data store with sample data."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Backup struct {
		Create  system.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    system.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore system.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage data backups."`

	Mood     mood.MoodCmd         `cmd:"" help:"Track mood, energy, stress, and sleep."`
	Meds     meds.MedsCmd         `cmd:"" help:"Track medications and dose adherence."`
	Recovery recovery.RecoveryCmd `cmd:"" help:"Track gambling recovery."`
	Stims    stims.StimsCmd       `cmd:"" help:"Track stimming."`
	Vitals   vitals.VitalsCmd     `cmd:"" help:"Track blood glucose and blood pressure."`
	Meals    meals.MealsCmd       `cmd:"" help:"Track meals."`
	Chat     chat.ChatCmd         `cmd:"" help:"Talk to Arvin, the support companion."`
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Terminal wellness companion: trackers for mood, meds, recovery, stimming, vitals, and meals, plus the Arvin support chat"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":  constants.Version,
			"data_dir": constants.DefaultDataPath,
		},
	)

	dataDir := expandHome(CLI.Data)
	if err := logger.Init(logger.Config{Debug: CLI.Debug, DataDir: dataDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not initialize logging: %v\n", err)
	}

	var backend storage.Backend
	var err error
	if CLI.Store == "sqlite" {
		backend, err = storage.NewSQLiteBackend(filepath.Join(dataDir, constants.AppName+".db"))
	} else {
		backend, err = storage.NewFileBackend(dataDir)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer backend.Close()

	appCtx := &cli.Context{
		Backend:  backend,
		DataDir:  dataDir,
		ArvinURL: CLI.Arvin,
		Debug:    CLI.Debug,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
