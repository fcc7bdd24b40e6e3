package anomalies

import (
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/orghire/pulse/internal/domain"
	"github.com/orghire/pulse/internal/modules/geography"
	"github.com/orghire/pulse/internal/modules/periods"
)

// maxSignals caps the ranked output.
const maxSignals = 15

// Detector runs the six detection families. Stateless after
// construction.
type Detector struct {
	log zerolog.Logger
}

// NewDetector builds an anomaly detector.
func NewDetector(log zerolog.Logger) *Detector {
	return &Detector{log: log.With().Str("component", "anomalies").Logger()}
}

// Detect runs every family over the resolved windows, pools the signals,
// sorts them by severity (ties keep detection order) and truncates to
// the first 15.
func (d *Detector) Detect(w *periods.Windows) []Signal {
	var signals []Signal
	signals = append(signals, d.volumeAnomalies(w)...)
	signals = append(signals, d.patternBreaks(w)...)
	signals = append(signals, d.competitorSignals(w)...)
	signals = append(signals, d.crossDimensional(w)...)
	signals = append(signals, d.timingAnomalies(w)...)
	signals = append(signals, d.gapSignals(w)...)

	sort.SliceStable(signals, func(i, j int) bool {
		return severityRank(signals[i].Severity) < severityRank(signals[j].Severity)
	})
	if len(signals) > maxSignals {
		signals = signals[:maxSignals]
	}

	d.log.Debug().Int("signals", len(signals)).Msg("anomaly detection complete")
	return signals
}

// monthlySeries buckets the historical part of the baseline (records
// posted before the cutoff, i.e. before the current window) into monthly
// counts per key. This is the distribution the z-scores run against; the
// current window must not contaminate its own history.
func monthlySeries(baseline periods.Window, cutoff time.Time, key func(domain.JobRecord) string) map[string][]float64 {
	startIdx := baseline.Start.Year()*12 + int(baseline.Start.Month()) - 1
	months := cutoff.Year()*12 + int(cutoff.Month()) - 1 - startIdx
	if months < 1 {
		months = 1
	}
	if months > 12 {
		months = 12
	}

	series := map[string][]float64{}
	for _, rec := range baseline.Records {
		k := key(rec)
		if k == "" {
			continue
		}
		posted, ok := periods.ParseDate(rec.PostingDate)
		if !ok || !posted.Before(cutoff) {
			continue
		}
		idx := posted.Year()*12 + int(posted.Month()) - 1 - startIdx
		if idx < 0 {
			idx = 0
		}
		if idx >= months {
			idx = months - 1
		}
		if _, seen := series[k]; !seen {
			series[k] = make([]float64, months)
		}
		series[k][idx]++
	}
	return series
}

// historicalBefore returns baseline records posted before the cutoff,
// i.e. the part of the trailing year that precedes the current window.
func historicalBefore(baseline periods.Window, cutoff time.Time) []domain.JobRecord {
	var out []domain.JobRecord
	for _, rec := range baseline.Records {
		posted, ok := periods.ParseDate(rec.PostingDate)
		if !ok || !posted.Before(cutoff) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// orderedKeys returns a record set's distinct keys in first-seen order,
// keeping family output deterministic.
func orderedKeys(records []domain.JobRecord, key func(domain.JobRecord) string) []string {
	seen := map[string]bool{}
	var out []string
	for _, rec := range records {
		k := key(rec)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// regionOfRecord resolves a record's macro-region, preferring the
// continent and falling back to the pre-computed region string.
func regionOfRecord(rec domain.JobRecord) geography.Region {
	region := geography.NormalizeRegion(rec.DutyContinent)
	if region == geography.RegionOther && rec.GeographicRegion != "" {
		region = geography.NormalizeRegion(rec.GeographicRegion)
	}
	return region
}

func countWhere(records []domain.JobRecord, pred func(domain.JobRecord) bool) int {
	n := 0
	for _, rec := range records {
		if pred(rec) {
			n++
		}
	}
	return n
}
