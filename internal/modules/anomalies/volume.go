package anomalies

import (
	"fmt"

	"github.com/orghire/pulse/internal/domain"
	"github.com/orghire/pulse/internal/modules/grading"
	"github.com/orghire/pulse/internal/modules/periods"
	"github.com/orghire/pulse/pkg/formulas"
)

const (
	zScoreMedium = 2.0
	zScoreHigh   = 3.0

	// Location spikes need these extra guards on top of the z-score to
	// suppress small-sample noise.
	locationSpikeFactor = 2.5
	locationSpikeMin    = 5

	// Grade-tier shifts need a real swing, not a tiny base moving.
	tierSwingPts   = 10.0
	tierSwingMinAb = 3
)

// volumeAnomalies z-scores current per-category, per-location and
// per-tier counts against their own 12-month monthly distributions.
func (d *Detector) volumeAnomalies(w *periods.Windows) []Signal {
	var signals []Signal

	byCategory := func(r domain.JobRecord) string { return r.PrimaryCategory }
	byStation := func(r domain.JobRecord) string { return r.DutyStation }

	// Per-category spikes and collapses.
	catSeries := monthlySeries(w.Baseline, w.Current.Start, byCategory)
	for _, cat := range orderedKeys(w.Current.Records, byCategory) {
		count := countWhere(w.Current.Records, func(r domain.JobRecord) bool { return r.PrimaryCategory == cat })
		z := formulas.ZScore(float64(count), catSeries[cat])
		if sev, ok := zSeverity(z); ok {
			signals = append(signals, Signal{
				ID:          "volume-category-" + cat,
				Type:        TypeVolume,
				Severity:    sev,
				Title:       fmt.Sprintf("Unusual posting volume in %s", cat),
				Description: fmt.Sprintf("%d postings this period vs a 12-month monthly mean of %.1f", count, formulas.Mean(catSeries[cat])),
				Metric:      fmt.Sprintf("z=%.1f", z),
				Context:     "category volume vs 12-month baseline",
			})
		}
	}

	// Per-location spikes, with absolute and ratio guards.
	locSeries := monthlySeries(w.Baseline, w.Current.Start, byStation)
	for _, station := range orderedKeys(w.Current.Records, byStation) {
		count := countWhere(w.Current.Records, func(r domain.JobRecord) bool { return r.DutyStation == station })
		prev := countWhere(w.Previous.Records, func(r domain.JobRecord) bool { return r.DutyStation == station })
		if count < locationSpikeMin || float64(count) < locationSpikeFactor*float64(prev) {
			continue
		}
		z := formulas.ZScore(float64(count), locSeries[station])
		if sev, ok := zSeverity(z); ok {
			signals = append(signals, Signal{
				ID:          "volume-location-" + station,
				Type:        TypeVolume,
				Severity:    sev,
				Title:       fmt.Sprintf("Hiring spike in %s", station),
				Description: fmt.Sprintf("%d postings this period vs %d in the prior period", count, prev),
				Metric:      fmt.Sprintf("z=%.1f", z),
				Context:     "duty-station volume vs 12-month baseline",
			})
		}
	}

	// Per-tier shifts, gated on swing size and absolute count.
	signals = append(signals, d.tierShifts(w)...)
	return signals
}

func (d *Detector) tierShifts(w *periods.Windows) []Signal {
	currentTotal := float64(len(w.Current.Records))
	baselineTotal := float64(len(w.Baseline.Records))
	if currentTotal == 0 || baselineTotal == 0 {
		return nil
	}

	currentCounts := map[grading.Tier]int{}
	for _, rec := range w.Current.Records {
		currentCounts[grading.Classify(rec.UpGrade).Tier]++
	}
	baselineCounts := map[grading.Tier]int{}
	for _, rec := range w.Baseline.Records {
		baselineCounts[grading.Classify(rec.UpGrade).Tier]++
	}

	tierSeries := monthlySeries(w.Baseline, w.Current.Start, func(r domain.JobRecord) string {
		return string(grading.Classify(r.UpGrade).Tier)
	})

	var signals []Signal
	for _, tier := range grading.AllTiers() {
		count := currentCounts[tier]
		if count < tierSwingMinAb {
			continue
		}
		swing := formulas.Ratio(float64(count), currentTotal) -
			formulas.Ratio(float64(baselineCounts[tier]), baselineTotal)
		if swing < tierSwingPts && swing > -tierSwingPts {
			continue
		}
		z := formulas.ZScore(float64(count), tierSeries[string(tier)])
		sev := SeverityMedium
		if z >= zScoreHigh || z <= -zScoreHigh {
			sev = SeverityHigh
		}
		signals = append(signals, Signal{
			ID:          "volume-tier-" + string(tier),
			Type:        TypeVolume,
			Severity:    sev,
			Title:       fmt.Sprintf("Grade mix shift toward %s", tier),
			Description: fmt.Sprintf("%s now %+.1f points vs its 12-month share", tier, swing),
			Metric:      fmt.Sprintf("swing=%+.1fpts", swing),
			Context:     "grade-tier share vs 12-month baseline",
		})
	}
	return signals
}

// zSeverity maps a z-score onto a severity bucket.
func zSeverity(z float64) (Severity, bool) {
	abs := z
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs > zScoreHigh:
		return SeverityHigh, true
	case abs > zScoreMedium:
		return SeverityMedium, true
	}
	return "", false
}
