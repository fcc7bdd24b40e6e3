package metrics

import (
	"github.com/orghire/pulse/internal/modules/grading"
	"github.com/orghire/pulse/internal/modules/periods"
)

const (
	// Grade anomaly: a tier's current share must deviate from its
	// baseline share by more than 50% relative.
	gradeAnomalyDeviation = 0.50

	// Category staff-ratio table depth.
	workforceTopCategories = 5
)

// Workforce computes staff ratios, the tier distribution with
// period-over-period deltas, the per-category staff-ratio table and
// grade anomalies against the 12-month baseline.
func (e *Engine) Workforce(w *periods.Windows) WorkforceMetrics {
	currentShares := tierShares(w.Current.Records)
	previousShares := tierShares(w.Previous.Records)
	baselineShares := tierShares(w.Baseline.Records)
	currentCounts := tierCounts(w.Current.Records)
	previousCounts := tierCounts(w.Previous.Records)

	var tiers []TierShare
	var anomalies []TierShift
	for _, tier := range grading.AllTiers() {
		if currentCounts[tier] == 0 && previousCounts[tier] == 0 {
			continue
		}
		tiers = append(tiers, TierShare{
			Tier:  string(tier),
			Count: currentCounts[tier],
			Share: currentShares[tier],
			Delta: currentShares[tier] - previousShares[tier],
		})

		base := baselineShares[tier]
		if base > 0 {
			deviation := (currentShares[tier] - base) / base
			if deviation > gradeAnomalyDeviation || deviation < -gradeAnomalyDeviation {
				anomalies = append(anomalies, TierShift{
					Tier:              string(tier),
					CurrentShare:      currentShares[tier],
					BaselineShare:     base,
					RelativeDeviation: deviation,
				})
			}
		}
	}

	return WorkforceMetrics{
		StaffRatio:          staffRatio(w.Current.Records),
		PreviousStaffRatio:  staffRatio(w.Previous.Records),
		MarketStaffRatio:    staffRatio(w.Current.Market),
		Tiers:               tiers,
		CategoryStaffRatios: e.categoryStaffRatios(w),
		GradeAnomalies:      anomalies,
	}
}

// categoryStaffRatios builds the top-5-by-volume category table, each
// category compared against the market and the largest non-subject
// competitor posting in it.
func (e *Engine) categoryStaffRatios(w *periods.Windows) []CategoryStaffRatio {
	var out []CategoryStaffRatio
	for _, kc := range topN(countBy(w.Current.Records, byCategory), workforceTopCategories) {
		marketRecs := filterCategory(w.Current.Market, kc.Key)
		competitor, _ := topCompetitor(marketRecs, w.Subject)

		entry := CategoryStaffRatio{
			Category:         kc.Key,
			Count:            kc.Count,
			StaffRatio:       staffRatio(filterCategory(w.Current.Records, kc.Key)),
			MarketStaffRatio: staffRatio(marketRecs),
			TopCompetitor:    competitor,
		}
		if competitor != "" {
			entry.TopCompetitorStaffRatio = staffRatio(agencyRecords(marketRecs, competitor))
		}
		out = append(out, entry)
	}
	return out
}
