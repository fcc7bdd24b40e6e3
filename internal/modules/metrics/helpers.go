package metrics

import (
	"sort"

	"github.com/orghire/pulse/internal/domain"
	"github.com/orghire/pulse/internal/modules/geography"
	"github.com/orghire/pulse/internal/modules/grading"
	"github.com/orghire/pulse/pkg/formulas"
)

// keyCount pairs a string key with its record count.
type keyCount struct {
	Key   string
	Count int
}

// countBy tallies records by key and returns them sorted by descending
// count. Ties keep first-seen order so output stays deterministic for a
// fixed input ordering.
func countBy(records []domain.JobRecord, key func(domain.JobRecord) string) []keyCount {
	counts := map[string]int{}
	var order []string
	for _, rec := range records {
		k := key(rec)
		if k == "" {
			continue
		}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}
	out := make([]keyCount, 0, len(order))
	for _, k := range order {
		out = append(out, keyCount{Key: k, Count: counts[k]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// topN truncates a ranked key list.
func topN(kc []keyCount, n int) []keyCount {
	if len(kc) > n {
		return kc[:n]
	}
	return kc
}

func byCategory(r domain.JobRecord) string { return r.PrimaryCategory }
func byAgency(r domain.JobRecord) string   { return r.Agency() }
func byStation(r domain.JobRecord) string  { return r.DutyStation }

// filterCategory returns the records in one category.
func filterCategory(records []domain.JobRecord, category string) []domain.JobRecord {
	var out []domain.JobRecord
	for _, rec := range records {
		if rec.PrimaryCategory == category {
			out = append(out, rec)
		}
	}
	return out
}

// agencyRecords filters a record set to one agency.
func agencyRecords(records []domain.JobRecord, agency string) []domain.JobRecord {
	var out []domain.JobRecord
	for _, rec := range records {
		if rec.Agency() == agency {
			out = append(out, rec)
		}
	}
	return out
}

// staffRatio is the percentage of records whose grade classifies as
// Staff. Empty input yields 0.
func staffRatio(records []domain.JobRecord) float64 {
	staff := 0
	for _, rec := range records {
		if grading.Classify(rec.UpGrade).StaffCategory == grading.CategoryStaff {
			staff++
		}
	}
	return formulas.Ratio(float64(staff), float64(len(records)))
}

// locate classifies a record's duty station, honoring the upstream
// conflict-zone flag when set.
func locate(rec domain.JobRecord) geography.Analysis {
	a := geography.Classify(rec.DutyStation, rec.DutyCountry, rec.DutyContinent)
	if rec.IsConflictZone {
		a.IsConflictZone = true
	}
	return a
}

// fieldRatio is the percentage of records at Field-type duty stations.
func fieldRatio(records []domain.JobRecord) float64 {
	field := 0
	for _, rec := range records {
		if locate(rec).LocationType == geography.LocationField {
			field++
		}
	}
	return formulas.Ratio(float64(field), float64(len(records)))
}

// regionOf resolves a record's macro-region, preferring the continent and
// falling back to the pre-computed geographic region string.
func regionOf(rec domain.JobRecord) geography.Region {
	region := geography.NormalizeRegion(rec.DutyContinent)
	if region == geography.RegionOther && rec.GeographicRegion != "" {
		region = geography.NormalizeRegion(rec.GeographicRegion)
	}
	return region
}

// topCompetitor returns the largest agency in the record set other than
// the subject, with its record count. Empty set yields ("", 0).
func topCompetitor(records []domain.JobRecord, subject string) (string, int) {
	for _, kc := range countBy(records, byAgency) {
		if kc.Key != subject {
			return kc.Key, kc.Count
		}
	}
	return "", 0
}

// rankOf returns the 1-based position of key in a ranked list, or
// len(list)+1 when the key is absent (absent subjects rank after every
// present agency).
func rankOf(ranked []keyCount, key string) int {
	for i, kc := range ranked {
		if kc.Key == key {
			return i + 1
		}
	}
	return len(ranked) + 1
}

// minExpOf picks the record's minimum-experience requirement, preferring
// the master's track. Nil means unknown and is excluded from averages.
func minExpOf(rec domain.JobRecord) (float64, bool) {
	if rec.MasterMinExp != nil {
		return *rec.MasterMinExp, true
	}
	if rec.BachelorMinExp != nil {
		return *rec.BachelorMinExp, true
	}
	return 0, false
}

// avgMinExp averages the known experience requirements in a record set.
func avgMinExp(records []domain.JobRecord) float64 {
	var vals []float64
	for _, rec := range records {
		if v, ok := minExpOf(rec); ok {
			vals = append(vals, v)
		}
	}
	return formulas.Mean(vals)
}

// avgWindowDays averages the positive application windows.
func avgWindowDays(records []domain.JobRecord) float64 {
	var vals []float64
	for _, rec := range records {
		if rec.ApplicationWindowDays > 0 {
			vals = append(vals, float64(rec.ApplicationWindowDays))
		}
	}
	return formulas.Mean(vals)
}

// tierShares computes the percentage share per consolidated-free tier.
func tierShares(records []domain.JobRecord) map[grading.Tier]float64 {
	counts := tierCounts(records)
	shares := make(map[grading.Tier]float64, len(counts))
	total := float64(len(records))
	for tier, n := range counts {
		shares[tier] = formulas.Ratio(float64(n), total)
	}
	return shares
}

func tierCounts(records []domain.JobRecord) map[grading.Tier]int {
	counts := map[grading.Tier]int{}
	for _, rec := range records {
		counts[grading.Classify(rec.UpGrade).Tier]++
	}
	return counts
}
