// Package periods turns a time-range selection and an injectable "now"
// into the three analysis windows (current, previous, trailing-12-month
// baseline) and assigns records to them by posting date.
package periods

import (
	"fmt"
	"math"
	"time"

	"github.com/orghire/pulse/internal/domain"
)

// Window is a bounded date range with its filtered record subsets.
// Records holds the subject subset when a subject filter is active;
// Market always holds the unfiltered set for the same range.
type Window struct {
	Start   time.Time
	End     time.Time
	Label   string
	Records []domain.JobRecord
	Market  []domain.JobRecord
}

// Days returns the window length in whole days.
func (w Window) Days() int {
	return int(math.Round(w.End.Sub(w.Start).Hours() / 24))
}

// Weeks returns the window length in weeks, rounded up.
func (w Window) Weeks() int {
	weeks := int(math.Ceil(float64(w.Days()) / 7.0))
	if weeks < 1 {
		weeks = 1
	}
	return weeks
}

// Windows bundles the three coexisting windows of one analysis run.
type Windows struct {
	Current   Window
	Previous  Window
	Baseline  Window
	TimeRange domain.TimeRange
	Subject   string
}

// dateLayouts accepted for posting dates, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses a posting date string. The boolean is false for
// malformed input; callers exclude such records rather than erroring.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Resolve computes the three windows for the requested range and fills
// them from the record set. A nil record list or unrecognized time range
// is a caller contract violation and fails fast; malformed record dates
// are dropped silently.
func Resolve(records []domain.JobRecord, timeRange domain.TimeRange, subject string, now time.Time) (*Windows, error) {
	if records == nil {
		return nil, fmt.Errorf("periods: nil record list")
	}
	if !timeRange.Valid() {
		return nil, fmt.Errorf("periods: unknown time range %q", timeRange)
	}

	currentStart := windowStart(now, timeRange)
	previousStart := windowStart(currentStart, timeRange)
	baselineStart := now.AddDate(-1, 0, 0)

	w := &Windows{
		Current:   Window{Start: currentStart, End: now, Label: timeRange.Label()},
		Previous:  Window{Start: previousStart, End: currentStart, Label: "the prior period"},
		Baseline:  Window{Start: baselineStart, End: now, Label: "the last 12 months"},
		TimeRange: timeRange,
		Subject:   subject,
	}

	for _, rec := range records {
		posted, ok := ParseDate(rec.PostingDate)
		if !ok {
			continue
		}
		assign(&w.Current, rec, posted, subject)
		assign(&w.Previous, rec, posted, subject)
		assign(&w.Baseline, rec, posted, subject)
	}

	return w, nil
}

// windowStart walks one range-duration back from the given end. Week
// ranges subtract exact days; month ranges use calendar months so the
// previous window stays equal-length and immediately adjacent.
func windowStart(end time.Time, timeRange domain.TimeRange) time.Time {
	switch timeRange {
	case domain.Range4Weeks:
		return end.AddDate(0, 0, -28)
	case domain.Range8Weeks:
		return end.AddDate(0, 0, -56)
	case domain.Range3Months:
		return end.AddDate(0, -3, 0)
	case domain.Range6Months:
		return end.AddDate(0, -6, 0)
	default: // Range12Months
		return end.AddDate(-1, 0, 0)
	}
}

// assign places a record into a window when its posting date falls in
// [start, end). Records always join the market set; the subject subset
// is filtered by agency when a subject is given.
func assign(w *Window, rec domain.JobRecord, posted time.Time, subject string) {
	if posted.Before(w.Start) || !posted.Before(w.End) {
		return
	}
	w.Market = append(w.Market, rec)
	if subject == "" || rec.Agency() == subject {
		w.Records = append(w.Records, rec)
	}
}
