package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/neuropulse/neuropulse/internal/backup"
	"github.com/neuropulse/neuropulse/internal/constants"
	"github.com/neuropulse/neuropulse/internal/logger"
	"github.com/neuropulse/neuropulse/internal/models"
	"github.com/neuropulse/neuropulse/internal/storage"
)

// Context carries the backend and settings shared by every command.
type Context struct {
	Backend  storage.Backend
	DataDir  string
	ArvinURL string
	Debug    bool
}

// Logs are created on demand and opened eagerly, so commands read entries
// right after calling the accessor.

func openLog[E storage.Entry[E]](backend storage.Backend, key string, seed func() []E) (*storage.Log[E], error) {
	l := storage.NewLog(backend, key, seed)
	if err := l.Open(); err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", key, err)
	}
	return l, nil
}

func (c *Context) MoodLog() (*storage.Log[models.MoodEntry], error) {
	return openLog(c.Backend, constants.KeyMoodEntries, models.SeedMoodEntries)
}

func (c *Context) MedsLog() (*storage.Log[models.Medication], error) {
	return openLog(c.Backend, constants.KeyMedications, models.SeedMedications)
}

func (c *Context) DoseLog() (*storage.Log[models.DoseRecord], error) {
	return openLog(c.Backend, constants.KeyDoseHistory, models.SeedDoseHistory)
}

func (c *Context) RecoveryLog() (*storage.Log[models.RecoveryEntry], error) {
	return openLog(c.Backend, constants.KeyRecoveryEntries, models.SeedRecoveryEntries)
}

func (c *Context) StimTypeLog() (*storage.Log[models.StimType], error) {
	return openLog(c.Backend, constants.KeyStimTypes, models.SeedStimTypes)
}

func (c *Context) StimEventLog() (*storage.Log[models.StimEvent], error) {
	return openLog(c.Backend, constants.KeyStimLog, models.SeedStimEvents)
}

func (c *Context) GlucoseLog() (*storage.Log[models.GlucoseReading], error) {
	return openLog(c.Backend, constants.KeyGlucoseReadings, models.SeedGlucoseReadings)
}

func (c *Context) BPLog() (*storage.Log[models.BPReading], error) {
	return openLog(c.Backend, constants.KeyBPReadings, models.SeedBPReadings)
}

func (c *Context) MealLog() (*storage.Log[models.MealEntry], error) {
	return openLog(c.Backend, constants.KeyMealEntries, models.SeedMealEntries)
}

// UserID returns this installation's chat user id, generating and
// persisting a UUID on first use.
func (c *Context) UserID() (string, error) {
	data, ok, err := c.Backend.Get(constants.KeyChatProfile)
	if err != nil {
		return "", err
	}
	if ok && len(data) > 0 {
		id := string(data)
		if _, err := uuid.Parse(id); err == nil {
			return id, nil
		}
		logger.Warn("Discarding malformed chat profile", "value", id)
	}

	id := uuid.New().String()
	if err := c.Backend.Set(constants.KeyChatProfile, []byte(id)); err != nil {
		return "", fmt.Errorf("failed to persist chat profile: %w", err)
	}
	return id, nil
}

// Confirm asks a yes/no question. --yes style automation can bypass it by
// not calling this at all.
func Confirm(title string) (bool, error) {
	confirmed := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(title).Value(&confirmed),
	))
	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}

// PerformAutomaticBackup snapshots the data store after a mutation,
// logging instead of interrupting the user's workflow on failure.
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Backend, c.DataDir)
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// WriteOutput writes report or export content to the given path, falling
// back to stdout when path is "-".
func WriteOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
