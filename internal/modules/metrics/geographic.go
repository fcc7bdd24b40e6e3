package metrics

import (
	"github.com/orghire/pulse/internal/domain"
	"github.com/orghire/pulse/internal/modules/geography"
	"github.com/orghire/pulse/internal/modules/grading"
	"github.com/orghire/pulse/internal/modules/periods"
	"github.com/orghire/pulse/pkg/formulas"
)

const (
	geographicTopLocations  = 10
	geographicTopRegions    = 8
	geographicTopCategories = 5
)

// Geographic computes the location-type distribution, top stations, new
// locations against the baseline, conflict-zone exposure, per-category
// field ratios, the junior/senior split per location type and the region
// breakdown.
func (e *Engine) Geographic(w *periods.Windows) GeographicMetrics {
	return GeographicMetrics{
		LocationTypes:       locationTypeShares(w.Current.Records, w.Previous.Records),
		FieldRatio:          fieldRatio(w.Current.Records),
		TopLocations:        topLocations(w),
		NewLocations:        newLocations(w),
		ConflictZone:        conflictZone(w),
		CategoryFieldRatios: e.categoryFieldRatios(w),
		SeniorityByLocation: seniorityByLocation(w.Current.Records),
		Regions:             regionBreakdown(w.Current.Records),
	}
}

func locationTypeCounts(records []domain.JobRecord) map[geography.LocationType]int {
	counts := map[geography.LocationType]int{}
	for _, rec := range records {
		counts[locate(rec).LocationType]++
	}
	return counts
}

// locationTypeShares builds the distribution over the four location
// types with period-over-period share deltas.
func locationTypeShares(current, previous []domain.JobRecord) []LocationTypeShare {
	curCounts := locationTypeCounts(current)
	prevCounts := locationTypeCounts(previous)
	curTotal := float64(len(current))
	prevTotal := float64(len(previous))

	out := make([]LocationTypeShare, 0, 4)
	for _, lt := range geography.AllLocationTypes() {
		share := formulas.Ratio(float64(curCounts[lt]), curTotal)
		prevShare := formulas.Ratio(float64(prevCounts[lt]), prevTotal)
		out = append(out, LocationTypeShare{
			Type:  string(lt),
			Count: curCounts[lt],
			Share: share,
			Delta: share - prevShare,
		})
	}
	return out
}

// topLocations ranks the current window's duty stations with their
// absolute change against the previous period.
func topLocations(w *periods.Windows) []LocationCount {
	prevCounts := map[string]int{}
	for _, kc := range countBy(w.Previous.Records, byStation) {
		prevCounts[kc.Key] = kc.Count
	}

	var out []LocationCount
	for _, kc := range topN(countBy(w.Current.Records, byStation), geographicTopLocations) {
		out = append(out, LocationCount{
			Station: kc.Key,
			Count:   kc.Count,
			Change:  kc.Count - prevCounts[kc.Key],
		})
	}
	return out
}

// newLocations lists stations hired in during the current window that
// never appeared earlier in the 12-month baseline.
func newLocations(w *periods.Windows) []string {
	historical := map[string]bool{}
	for _, rec := range w.Baseline.Records {
		posted, ok := periods.ParseDate(rec.PostingDate)
		if !ok || !posted.Before(w.Current.Start) {
			continue
		}
		historical[rec.DutyStation] = true
	}

	var out []string
	seen := map[string]bool{}
	for _, rec := range w.Current.Records {
		st := rec.DutyStation
		if st == "" || seen[st] || historical[st] {
			continue
		}
		seen[st] = true
		out = append(out, st)
	}
	return out
}

// conflictZone summarizes hiring at conflict-zone stations, comparing
// the staff mix there against the market's conflict-zone staff mix.
func conflictZone(w *periods.Windows) ConflictZoneMetrics {
	subset := conflictRecords(w.Current.Records)
	marketSubset := conflictRecords(w.Current.Market)
	return ConflictZoneMetrics{
		Count:            len(subset),
		Share:            formulas.Ratio(float64(len(subset)), float64(len(w.Current.Records))),
		StaffRatio:       staffRatio(subset),
		MarketStaffRatio: staffRatio(marketSubset),
	}
}

func conflictRecords(records []domain.JobRecord) []domain.JobRecord {
	var out []domain.JobRecord
	for _, rec := range records {
		if locate(rec).IsConflictZone {
			out = append(out, rec)
		}
	}
	return out
}

// categoryFieldRatios compares field exposure per top category against
// the market.
func (e *Engine) categoryFieldRatios(w *periods.Windows) []CategoryFieldRatio {
	var out []CategoryFieldRatio
	for _, kc := range topN(countBy(w.Current.Records, byCategory), geographicTopCategories) {
		out = append(out, CategoryFieldRatio{
			Category:         kc.Key,
			FieldRatio:       fieldRatio(filterCategory(w.Current.Records, kc.Key)),
			MarketFieldRatio: fieldRatio(filterCategory(w.Current.Market, kc.Key)),
		})
	}
	return out
}

// seniorityByLocation reports the junior/senior split per location type.
// Ratio is juniors per senior, 0 when no seniors are present.
func seniorityByLocation(records []domain.JobRecord) []LocationSeniority {
	junior := map[geography.LocationType]int{}
	senior := map[geography.LocationType]int{}
	for _, rec := range records {
		lt := locate(rec).LocationType
		grade := grading.Classify(rec.UpGrade)
		if grade.IsJunior() {
			junior[lt]++
		}
		if grade.IsSenior() {
			senior[lt]++
		}
	}

	var out []LocationSeniority
	for _, lt := range geography.AllLocationTypes() {
		if junior[lt] == 0 && senior[lt] == 0 {
			continue
		}
		ratio := 0.0
		if senior[lt] > 0 {
			ratio = float64(junior[lt]) / float64(senior[lt])
		}
		out = append(out, LocationSeniority{
			Type:        string(lt),
			JuniorCount: junior[lt],
			SeniorCount: senior[lt],
			Ratio:       ratio,
		})
	}
	return out
}

// regionBreakdown ranks macro-regions by current-window count.
func regionBreakdown(records []domain.JobRecord) []RegionCount {
	ranked := countBy(records, func(r domain.JobRecord) string {
		return string(regionOf(r))
	})
	total := float64(len(records))

	var out []RegionCount
	for _, kc := range topN(ranked, geographicTopRegions) {
		out = append(out, RegionCount{
			Region: kc.Key,
			Count:  kc.Count,
			Share:  formulas.Ratio(float64(kc.Count), total),
		})
	}
	return out
}
