package metrics

import (
	"sort"

	"github.com/orghire/pulse/internal/modules/periods"
	"github.com/orghire/pulse/pkg/formulas"
)

const (
	categoryTopN            = 10
	categoryRequirementsTop = 5
	categoryGrowthCap       = 5

	// Growth/decline gating: both conditions required, to suppress
	// noise from small base counts.
	growthMinRelativePct = 15.0
	growthMinAbsolute    = 2
)

// Category computes the top-category table with market ranks,
// growth/decline movers, concentration indices and the per-category
// requirements comparison.
func (e *Engine) Category(w *periods.Windows) CategoryMetrics {
	ranked := countBy(w.Current.Records, byCategory)
	marketRanked := countBy(w.Current.Market, byCategory)
	total := float64(len(w.Current.Records))

	var top []CategoryStat
	for _, kc := range topN(ranked, categoryTopN) {
		competitor, _ := topCompetitor(filterCategory(w.Current.Market, kc.Key), w.Subject)
		top = append(top, CategoryStat{
			Category:      kc.Key,
			DisplayName:   e.displayName(kc.Key),
			Count:         kc.Count,
			Share:         formulas.Ratio(float64(kc.Count), total),
			MarketRank:    rankOf(marketRanked, kc.Key),
			TopCompetitor: competitor,
		})
	}

	growing, declining := categoryMovers(w)

	shares := make([]float64, 0, len(ranked))
	for _, kc := range ranked {
		shares = append(shares, formulas.Ratio(float64(kc.Count), total))
	}
	top3 := 0.0
	for i, s := range shares {
		if i >= 3 {
			break
		}
		top3 += s
	}

	return CategoryMetrics{
		TopCategories:  top,
		FastestGrowing: growing,
		Declining:      declining,
		Herfindahl:     formulas.Herfindahl(shares),
		Top3Share:      top3,
		Requirements:   e.categoryRequirements(w),
	}
}

// categoryMovers finds categories passing both the relative and absolute
// change gates, ranked by magnitude.
func categoryMovers(w *periods.Windows) (growing, declining []CategoryChange) {
	current := map[string]int{}
	var order []string
	for _, kc := range countBy(w.Current.Records, byCategory) {
		current[kc.Key] = kc.Count
		order = append(order, kc.Key)
	}
	previous := map[string]int{}
	for _, kc := range countBy(w.Previous.Records, byCategory) {
		previous[kc.Key] = kc.Count
		if _, seen := current[kc.Key]; !seen {
			order = append(order, kc.Key)
		}
	}

	for _, cat := range order {
		cur, prev := current[cat], previous[cat]
		change := cur - prev
		if abs(change) < growthMinAbsolute || prev == 0 {
			continue
		}
		pct := formulas.PercentChange(float64(cur), float64(prev))
		switch {
		case pct >= growthMinRelativePct:
			growing = append(growing, CategoryChange{Category: cat, Current: cur, Previous: prev, Change: change, ChangePct: pct})
		case pct <= -growthMinRelativePct:
			declining = append(declining, CategoryChange{Category: cat, Current: cur, Previous: prev, Change: change, ChangePct: pct})
		}
	}

	sort.SliceStable(growing, func(i, j int) bool { return growing[i].ChangePct > growing[j].ChangePct })
	sort.SliceStable(declining, func(i, j int) bool { return declining[i].ChangePct < declining[j].ChangePct })
	if len(growing) > categoryGrowthCap {
		growing = growing[:categoryGrowthCap]
	}
	if len(declining) > categoryGrowthCap {
		declining = declining[:categoryGrowthCap]
	}
	return growing, declining
}

// categoryRequirements compares average minimum experience and
// application windows against the market for the top categories. Unknown
// values are excluded from the averages, never treated as zero.
func (e *Engine) categoryRequirements(w *periods.Windows) []CategoryRequirements {
	var out []CategoryRequirements
	for _, kc := range topN(countBy(w.Current.Records, byCategory), categoryRequirementsTop) {
		subjectRecs := filterCategory(w.Current.Records, kc.Key)
		marketRecs := filterCategory(w.Current.Market, kc.Key)
		out = append(out, CategoryRequirements{
			Category:            kc.Key,
			AvgMinExp:           avgMinExp(subjectRecs),
			MarketAvgMinExp:     avgMinExp(marketRecs),
			AvgWindowDays:       avgWindowDays(subjectRecs),
			MarketAvgWindowDays: avgWindowDays(marketRecs),
		})
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
