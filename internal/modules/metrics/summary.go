package metrics

import (
	"fmt"

	"github.com/orghire/pulse/internal/modules/periods"
)

const (
	// The headline only mentions the period-over-period change when it
	// clears this magnitude.
	headlineChangePct = 5.0

	// Key-point gates.
	keyPointStaffShiftPts = 5.0
	keyPointFieldShiftPts = 5.0

	// Top-shift gate for the staff-mix fallback.
	topShiftStaffPts = 2.0
)

// Summary rolls the metric groups up into the executive summary.
func (e *Engine) Summary(
	w *periods.Windows,
	volume VolumeMetrics,
	workforce WorkforceMetrics,
	category CategoryMetrics,
	geographic GeographicMetrics,
	competitive CompetitiveMetrics,
	anomalyCount int,
) ExecutiveSummary {
	subjectLabel := w.Subject
	if subjectLabel == "" {
		subjectLabel = "the market"
	}

	return ExecutiveSummary{
		Headline:       headline(w.Current.Label, subjectLabel, volume),
		KeyPoints:      keyPoints(workforce, category, geographic, w),
		TopShift:       topShift(workforce, category),
		RankChangeNote: rankChangeNote(w.Subject, competitive),
		AnomalyCount:   anomalyCount,
		Total:          volume.Total,
		ChangePct:      volume.ChangePct,
	}
}

// headline builds the one-sentence summary. The change clause appears
// only when the magnitude clears the 5% gate.
func headline(period, subject string, volume VolumeMetrics) string {
	base := fmt.Sprintf("Over %s, %s posted %d positions", period, subject, volume.Total)

	change := volume.ChangePct
	switch {
	case change > headlineChangePct:
		return fmt.Sprintf("%s — up %.0f%% from the prior period.", base, change)
	case change < -headlineChangePct:
		return fmt.Sprintf("%s — down %.0f%% from the prior period.", base, -change)
	}
	return base + "."
}

// keyPoints appends each bullet only when its own magnitude gate passes.
func keyPoints(workforce WorkforceMetrics, category CategoryMetrics, geographic GeographicMetrics, w *periods.Windows) []string {
	var points []string

	staffShift := workforce.StaffRatio - workforce.PreviousStaffRatio
	if staffShift > keyPointStaffShiftPts || staffShift < -keyPointStaffShiftPts {
		points = append(points, fmt.Sprintf(
			"Staff share moved from %.1f%% to %.1f%%",
			workforce.PreviousStaffRatio, workforce.StaffRatio))
	}

	if len(category.FastestGrowing) > 0 {
		top := category.FastestGrowing[0]
		points = append(points, fmt.Sprintf(
			"Fastest-growing category: %s (%+.0f%%)", top.Category, top.ChangePct))
	}

	prevFieldRatio := previousFieldRatio(w)
	fieldShift := geographic.FieldRatio - prevFieldRatio
	if fieldShift > keyPointFieldShiftPts || fieldShift < -keyPointFieldShiftPts {
		points = append(points, fmt.Sprintf(
			"Field-based share moved from %.1f%% to %.1f%%",
			prevFieldRatio, geographic.FieldRatio))
	}

	return points
}

func previousFieldRatio(w *periods.Windows) float64 {
	return fieldRatio(w.Previous.Records)
}

// topShift picks the single most notable movement. Category growth wins
// over staff-mix change on ties.
func topShift(workforce WorkforceMetrics, category CategoryMetrics) string {
	if len(category.FastestGrowing) > 0 {
		return fmt.Sprintf("Growth in %s", category.FastestGrowing[0].Category)
	}
	staffShift := workforce.StaffRatio - workforce.PreviousStaffRatio
	if staffShift > topShiftStaffPts || staffShift < -topShiftStaffPts {
		return "Shift in staff mix"
	}
	return ""
}

// rankChangeNote reports rank movement on the subject view only.
func rankChangeNote(subject string, competitive CompetitiveMetrics) string {
	if subject == "" {
		return ""
	}
	switch change := competitive.Rank.Change; {
	case change > 0:
		return fmt.Sprintf("Market rank improved by %d (now #%d)", change, competitive.Rank.Current)
	case change < 0:
		return fmt.Sprintf("Market rank slipped by %d (now #%d)", -change, competitive.Rank.Current)
	}
	return ""
}
