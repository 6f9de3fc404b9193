// Package report renders plain-text tracker reports and handles JSON
// export and import of tracker data.
package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/neuropulse/neuropulse/internal/constants"
	"github.com/neuropulse/neuropulse/internal/stats"
)

// Filename returns the default report filename for a tracker, stamped with
// the current date. The names match what the web app downloads so files
// from both sort together.
func Filename(tracker constants.Tracker, now time.Time) string {
	date := now.Format(constants.DateFormat)
	switch tracker {
	case constants.TrackerMood:
		return fmt.Sprintf("neuropulse-mood-report-%s.txt", date)
	default:
		return fmt.Sprintf("%s-report-%s.txt", tracker, date)
	}
}

// DataFilename returns the default JSON export filename for a tracker.
func DataFilename(tracker constants.Tracker, now time.Time) string {
	date := now.Format(constants.DateFormat)
	switch tracker {
	case constants.TrackerMood:
		return fmt.Sprintf("neuropulse-mood-entries-%s.json", date)
	default:
		return fmt.Sprintf("%s-data-%s.json", tracker, date)
	}
}

// ExportJSON marshals v indented, the exact shape the web app produces.
func ExportJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize export: %w", err)
	}
	return append(data, '\n'), nil
}

// DecodeArray parses an import payload whose top level must be a JSON
// array of entries. Anything else is rejected before any merge happens.
func DecodeArray[E any](data []byte) ([]E, error) {
	trimmed := strings.TrimSpace(string(data))
	if !strings.HasPrefix(trimmed, "[") {
		return nil, fmt.Errorf("invalid import: expected a top-level JSON array")
	}
	var entries []E
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("invalid import: %w", err)
	}
	return entries, nil
}

func sep(c byte, n int) string { return strings.Repeat(string(c), n) }

// tagLines renders a tag frequency table one "tag: N times" row per line,
// or the empty message when there is nothing to show.
func tagLines(rows []stats.TagCount, empty string) string {
	if len(rows) == 0 {
		return empty
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = fmt.Sprintf("%s: %d times", r.Tag, r.Count)
	}
	return strings.Join(lines, "\n")
}

// joinOr joins items with ", ", or returns fallback for an empty list.
func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}

func orNone(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
