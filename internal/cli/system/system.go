// Package system implements init, doctor, and backup commands.
package system

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/neuropulse/neuropulse/internal/backup"
	"github.com/neuropulse/neuropulse/internal/cli"
	"github.com/neuropulse/neuropulse/internal/constants"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *cli.Context) error {
	// Opening every log materializes the seed datasets on first run.
	if _, err := ctx.MoodLog(); err != nil {
		return err
	}
	if _, err := ctx.MedsLog(); err != nil {
		return err
	}
	if _, err := ctx.DoseLog(); err != nil {
		return err
	}
	if _, err := ctx.RecoveryLog(); err != nil {
		return err
	}
	if _, err := ctx.StimTypeLog(); err != nil {
		return err
	}
	if _, err := ctx.StimEventLog(); err != nil {
		return err
	}
	if _, err := ctx.GlucoseLog(); err != nil {
		return err
	}
	if _, err := ctx.BPLog(); err != nil {
		return err
	}
	if _, err := ctx.MealLog(); err != nil {
		return err
	}
	fmt.Printf("Initialized data store at %s\n", ctx.Backend.Path())
	return nil
}

type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *cli.Context) error {
	pass := func(msg string) { fmt.Println(cli.GoodStyle.Render("✓ ") + msg) }
	warn := func(msg string) { fmt.Println(cli.WarnStyle.Render("! ") + msg) }
	fail := func(msg string) { fmt.Println(cli.AlertStyle.Render("✗ ") + msg) }

	cli.PrintTitle("NeuroPulse Doctor")

	// Backend reachable.
	keys, err := ctx.Backend.Keys()
	if err != nil {
		fail("data store unreachable: " + err.Error())
		return nil
	}
	pass(fmt.Sprintf("data store reachable at %s (%d keys)", ctx.Backend.Path(), len(keys)))

	// Every persisted value should be valid JSON. Corrupt values are not
	// fatal at runtime (seeds take over) but worth surfacing here.
	corrupt := 0
	for _, key := range keys {
		data, ok, err := ctx.Backend.Get(key)
		if err != nil || !ok {
			continue
		}
		if key == constants.KeyChatProfile {
			continue
		}
		if !json.Valid(data) {
			warn(fmt.Sprintf("key %s holds malformed JSON; sample data will replace it", key))
			corrupt++
		}
	}
	if corrupt == 0 {
		pass("all persisted data parses")
	}

	// Concurrent instances clobber each other's writes, warn about them.
	if procs, err := ps.Processes(); err == nil {
		running := 0
		for _, p := range procs {
			if strings.HasPrefix(p.Executable(), constants.AppName) {
				running++
			}
		}
		if running > 1 {
			warn(fmt.Sprintf("%d neuropulse processes running; last writer wins on shared data", running))
		} else {
			pass("no other neuropulse instance running")
		}
	}

	// Reports and exports default to the working directory.
	probe := filepath.Join(".", ".neuropulse-doctor")
	if err := os.WriteFile(probe, []byte("ok"), 0600); err != nil {
		warn("working directory not writable; use --output for reports")
	} else {
		os.Remove(probe)
		pass("working directory writable")
	}

	// Backups.
	mgr := backup.NewManager(ctx.Backend, ctx.DataDir)
	backups, err := mgr.List()
	if err != nil {
		warn("cannot list backups: " + err.Error())
	} else {
		pass(fmt.Sprintf("%d backups in %s", len(backups), mgr.Dir()))
	}
	return nil
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Backend, ctx.DataDir)
	path, err := mgr.Create()
	if err != nil {
		return err
	}
	fmt.Printf("Created backup %s\n", filepath.Base(path))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Backend, ctx.DataDir)
	backups, err := mgr.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}
	for _, b := range backups {
		fmt.Printf("%s  %s  (%d keys)\n", b.Timestamp.Format("2006-01-02 15:04"), filepath.Base(b.Path), b.Keys)
	}
	return nil
}

type BackupRestoreCmd struct {
	Name string `arg:"" help:"Backup name (as shown by backup list)."`
	Yes  bool   `help:"Skip confirmation." short:"y"`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Backend, ctx.DataDir)
	path := c.Name
	if !strings.Contains(path, string(os.PathSeparator)) {
		path = filepath.Join(mgr.Dir(), c.Name)
	}

	if !c.Yes {
		ok, err := cli.Confirm(fmt.Sprintf("Restore from %s? Current data is snapshotted first.", filepath.Base(path)))
		if err != nil || !ok {
			return err
		}
	}
	if err := mgr.Restore(path); err != nil {
		return err
	}
	fmt.Printf("Restored from %s\n", filepath.Base(path))
	return nil
}
