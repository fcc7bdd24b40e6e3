package metrics

import (
	"github.com/orghire/pulse/internal/modules/periods"
	"github.com/orghire/pulse/pkg/formulas"
)

// Trend asymmetry threshold: the second half-period must differ from the
// first by more than 20% to leave "steady".
const trendThreshold = 0.20

// Volume computes posting counts, weekly velocity against the 12-month
// baseline, the weekly histogram and the half-over-half trend.
func (e *Engine) Volume(w *periods.Windows) VolumeMetrics {
	total := len(w.Current.Records)
	previous := len(w.Previous.Records)

	velocity := float64(total) / float64(w.Current.Weeks())
	baselineVelocity := float64(len(w.Baseline.Records)) / float64(w.Baseline.Weeks())

	weekly := weeklyHistogram(w.Current)

	return VolumeMetrics{
		Total:                  total,
		PreviousTotal:          previous,
		ChangePct:              formulas.PercentChange(float64(total), float64(previous)),
		WeeklyVelocity:         velocity,
		BaselineWeeklyVelocity: baselineVelocity,
		VelocityChangePct:      formulas.PercentChange(velocity, baselineVelocity),
		Weekly:                 weekly,
		PeakWeek:               peakWeek(weekly),
		Trend:                  trend(w.Current),
	}
}

// weeklyHistogram buckets the current window's postings into 7-day slots
// anchored at the window start.
func weeklyHistogram(w periods.Window) []WeekCount {
	weeks := w.Weeks()
	counts := make([]int, weeks)
	for _, rec := range w.Records {
		posted, ok := periods.ParseDate(rec.PostingDate)
		if !ok {
			continue
		}
		bucket := int(posted.Sub(w.Start).Hours() / 24 / 7)
		if bucket < 0 || bucket >= weeks {
			continue
		}
		counts[bucket]++
	}

	out := make([]WeekCount, weeks)
	for i, n := range counts {
		out[i] = WeekCount{
			WeekStart: w.Start.AddDate(0, 0, i*7).Format("2006-01-02"),
			Count:     n,
		}
	}
	return out
}

// peakWeek finds the busiest week; the earliest week wins ties.
func peakWeek(weekly []WeekCount) WeekCount {
	var peak WeekCount
	for _, wk := range weekly {
		if wk.Count > peak.Count {
			peak = wk
		}
	}
	return peak
}

// trend compares the first and second halves of the current window.
func trend(w periods.Window) string {
	mid := w.Start.Add(w.End.Sub(w.Start) / 2)
	first, second := 0, 0
	for _, rec := range w.Records {
		posted, ok := periods.ParseDate(rec.PostingDate)
		if !ok {
			continue
		}
		if posted.Before(mid) {
			first++
		} else {
			second++
		}
	}

	switch {
	case float64(second) > float64(first)*(1+trendThreshold):
		return TrendAccelerating
	case float64(second) < float64(first)*(1-trendThreshold):
		return TrendDecelerating
	}
	return TrendSteady
}
