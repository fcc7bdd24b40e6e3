package metrics

import (
	"fmt"
	"sort"

	"github.com/orghire/pulse/internal/domain"
	"github.com/orghire/pulse/internal/modules/periods"
	"github.com/orghire/pulse/pkg/formulas"
)

const (
	// Key-difference gate: the staff or field gap must exceed 15
	// percentage points to be called out.
	keyDifferenceGapPts = 15.0

	competitivePositionsTop = 5
	competitorMoveMinNow    = 3
	competitorMoveMaxPrev   = 1
	competitorMovesCap      = 10
)

// Competitive computes the subject's market share, rank movement, peer
// table, category-mix correlations and category positions. The market
// view (no subject) returns the degenerate all-share structure.
func (e *Engine) Competitive(w *periods.Windows) CompetitiveMetrics {
	agencies := countBy(w.Current.Market, byAgency)

	if w.Subject == "" {
		return CompetitiveMetrics{
			MarketShare: 100.0,
			Rank:        RankMetrics{Current: 1, Previous: 1, TotalAgencies: len(agencies)},
		}
	}

	previousAgencies := countBy(w.Previous.Market, byAgency)
	currentRank := rankOf(agencies, w.Subject)
	previousRank := rankOf(previousAgencies, w.Subject)

	return CompetitiveMetrics{
		Subject:     w.Subject,
		MarketShare: formulas.Ratio(float64(len(w.Current.Records)), float64(len(w.Current.Market))),
		Rank: RankMetrics{
			Current:       currentRank,
			Previous:      previousRank,
			Change:        previousRank - currentRank,
			TotalAgencies: len(agencies),
		},
		Peers:              e.peerTable(w),
		Correlations:       e.peerCorrelations(w),
		CategoryPositions:  categoryPositions(w),
		NewCompetitorMoves: competitorMoves(w),
	}
}

// peerTable reports current-window footprints for the subject's static
// peer group, in the lookup's order.
func (e *Engine) peerTable(w *periods.Windows) []PeerStat {
	total := float64(len(w.Current.Market))
	var out []PeerStat
	for _, peer := range e.lookups.PeerGroups[w.Subject] {
		n := len(agencyRecords(w.Current.Market, peer))
		out = append(out, PeerStat{
			Agency: peer,
			Count:  n,
			Share:  formulas.Ratio(float64(n), total),
		})
	}
	return out
}

// peerCorrelations computes the Pearson correlation between each peer's
// category-share vector and the subject's, over the union of categories
// either party posts in, plus the single most telling profile gap.
func (e *Engine) peerCorrelations(w *periods.Windows) []CompetitorCorrelation {
	subjectRecs := w.Current.Records
	subjectShares := categoryShareMap(subjectRecs)
	subjectStaff := staffRatio(subjectRecs)
	subjectField := fieldRatio(subjectRecs)

	var out []CompetitorCorrelation
	for _, peer := range e.lookups.PeerGroups[w.Subject] {
		peerRecs := agencyRecords(w.Current.Market, peer)
		if len(peerRecs) == 0 {
			continue
		}
		peerShares := categoryShareMap(peerRecs)

		union := shareUnion(subjectShares, peerShares)
		x := make([]float64, 0, len(union))
		y := make([]float64, 0, len(union))
		for _, cat := range union {
			x = append(x, subjectShares[cat])
			y = append(y, peerShares[cat])
		}

		out = append(out, CompetitorCorrelation{
			Agency:        peer,
			R:             formulas.Correlation(x, y),
			KeyDifference: keyDifference(subjectStaff-staffRatio(peerRecs), subjectField-fieldRatio(peerRecs)),
		})
	}
	return out
}

// keyDifference picks the single largest of the staff and field gaps
// when it clears the threshold.
func keyDifference(staffGap, fieldGap float64) string {
	absStaff, absField := staffGap, fieldGap
	if absStaff < 0 {
		absStaff = -absStaff
	}
	if absField < 0 {
		absField = -absField
	}

	switch {
	case absStaff >= absField && absStaff > keyDifferenceGapPts:
		return fmt.Sprintf("staff ratio gap of %+.1f points", staffGap)
	case absField > absStaff && absField > keyDifferenceGapPts:
		return fmt.Sprintf("field ratio gap of %+.1f points", fieldGap)
	}
	return "similar hiring profile"
}

// categoryPositions reports the subject's rank and share against the
// leader in its top categories.
func categoryPositions(w *periods.Windows) []CategoryPosition {
	var out []CategoryPosition
	for _, kc := range topN(countBy(w.Current.Records, byCategory), competitivePositionsTop) {
		catRecs := filterCategory(w.Current.Market, kc.Key)
		catAgencies := countBy(catRecs, byAgency)
		catTotal := float64(len(catRecs))

		pos := CategoryPosition{
			Category: kc.Key,
			Rank:     rankOf(catAgencies, w.Subject),
			Share:    formulas.Ratio(float64(kc.Count), catTotal),
		}
		if len(catAgencies) > 0 {
			pos.Leader = catAgencies[0].Key
			pos.LeaderShare = formulas.Ratio(float64(catAgencies[0].Count), catTotal)
		}
		out = append(out, pos)
	}
	return out
}

// competitorMoves detects non-subject agencies pushing into a category
// they had at most a token presence in during the previous period.
func competitorMoves(w *periods.Windows) []CompetitorMove {
	previous := map[string]int{}
	for _, rec := range w.Previous.Market {
		previous[rec.Agency()+"\x00"+rec.PrimaryCategory]++
	}

	current := map[string]int{}
	var order []string
	for _, rec := range w.Current.Market {
		if rec.Agency() == w.Subject || rec.Agency() == "" || rec.PrimaryCategory == "" {
			continue
		}
		k := rec.Agency() + "\x00" + rec.PrimaryCategory
		if _, seen := current[k]; !seen {
			order = append(order, k)
		}
		current[k]++
	}

	var out []CompetitorMove
	for _, k := range order {
		cur := current[k]
		prev := previous[k]
		if cur < competitorMoveMinNow || prev > competitorMoveMaxPrev {
			continue
		}
		agency, category := splitKey(k)
		out = append(out, CompetitorMove{Agency: agency, Category: category, Current: cur, Previous: prev})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Current > out[j].Current })
	if len(out) > competitorMovesCap {
		out = out[:competitorMovesCap]
	}
	return out
}

// categoryShareMap computes each category's percentage share of a record
// set.
func categoryShareMap(records []domain.JobRecord) map[string]float64 {
	shares := map[string]float64{}
	total := float64(len(records))
	for _, kc := range countBy(records, byCategory) {
		shares[kc.Key] = formulas.Ratio(float64(kc.Count), total)
	}
	return shares
}

// shareUnion returns the sorted union of two share maps' categories.
func shareUnion(a, b map[string]float64) []string {
	seen := map[string]bool{}
	var out []string
	for cat := range a {
		if !seen[cat] {
			seen[cat] = true
			out = append(out, cat)
		}
	}
	for cat := range b {
		if !seen[cat] {
			seen[cat] = true
			out = append(out, cat)
		}
	}
	sort.Strings(out)
	return out
}

func splitKey(k string) (string, string) {
	for i := 0; i < len(k); i++ {
		if k[i] == 0 {
			return k[:i], k[i+1:]
		}
	}
	return k, ""
}
