package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/neuropulse/neuropulse/internal/constants"
	"github.com/neuropulse/neuropulse/internal/storage"
)

// ListFlags are the shared filter flags every tracker's list command takes.
type ListFlags struct {
	Search string `help:"Filter entries by free-text search." short:"s"`
	Period string `help:"Time window: all, week, or month." enum:"all,week,month" default:"all"`
}

// Filter converts the flags into a storage filter.
func (f ListFlags) Filter() storage.Filter {
	return storage.Filter{Search: f.Search, Period: storage.Period(f.Period)}
}

// PeriodValue returns the selected period.
func (f ListFlags) PeriodValue() storage.Period {
	return storage.Period(f.Period)
}

// DefaultDate fills an empty date flag with today, validating otherwise.
func DefaultDate(date string) (string, error) {
	if date == "" {
		return time.Now().Format(constants.DateFormat), nil
	}
	if _, err := time.Parse(constants.DateFormat, date); err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return date, nil
}

// DefaultTime fills an empty time flag with the current time.
func DefaultTime(t string) (string, error) {
	if t == "" {
		return time.Now().Format(constants.TimeFormat), nil
	}
	if _, err := time.Parse(constants.TimeFormat, t); err != nil {
		return "", fmt.Errorf("invalid time %q (expected HH:MM)", t)
	}
	return t, nil
}

// ReadFile loads an import payload.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// SplitList parses a comma-separated flag value into trimmed items.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
