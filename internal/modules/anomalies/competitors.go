package anomalies

import (
	"fmt"

	"github.com/orghire/pulse/internal/domain"
	"github.com/orghire/pulse/internal/modules/periods"
	"github.com/orghire/pulse/pkg/formulas"
)

const (
	// Subject view: a competitor's volume spike.
	competitorSpikeFactor = 2.0
	competitorSpikeMin    = 10

	// Subject view: a competitor entering a subject-active category.
	competitorEntryMaxHist = 3
	competitorEntryMinNow  = 5

	// Market view: the single largest mover either way.
	marketGrowerPct    = 50.0
	marketGrowerMin    = 20
	marketDeclinerPct  = -40.0
	marketDeclinerPrev = 20
)

// competitorSignals detects competitor volume spikes and category
// entries on the subject view, and the single biggest grower and
// decliner on the market view.
func (d *Detector) competitorSignals(w *periods.Windows) []Signal {
	if w.Subject == "" {
		return d.marketMovers(w)
	}

	var signals []Signal
	byAgency := func(r domain.JobRecord) string { return r.Agency() }

	// Volume spikes per competitor.
	for _, agency := range orderedKeys(w.Current.Market, byAgency) {
		if agency == w.Subject {
			continue
		}
		count := countWhere(w.Current.Market, func(r domain.JobRecord) bool { return r.Agency() == agency })
		prev := countWhere(w.Previous.Market, func(r domain.JobRecord) bool { return r.Agency() == agency })
		if count < competitorSpikeMin || float64(count) < competitorSpikeFactor*float64(prev) {
			continue
		}
		signals = append(signals, Signal{
			ID:          "competitor-spike-" + agency,
			Type:        TypeCompetitor,
			Severity:    SeverityMedium,
			Title:       fmt.Sprintf("%s hiring surge", agency),
			Description: fmt.Sprintf("%s posted %d positions vs %d in the prior period", agency, count, prev),
			Metric:      fmt.Sprintf("%+.0f%%", formulas.PercentChange(float64(count), float64(prev))),
			Context:     "competitor volume vs prior period",
		})
	}

	// Entries into categories the subject is active in.
	signals = append(signals, d.competitorEntries(w)...)
	return signals
}

// competitorEntries flags competitors pushing into a subject-active
// category where they have almost no 12-month history.
func (d *Detector) competitorEntries(w *periods.Windows) []Signal {
	subjectCategories := map[string]bool{}
	for _, rec := range w.Current.Records {
		subjectCategories[rec.PrimaryCategory] = true
	}

	// Competitor history lives in the market baseline, not the subject
	// subset; only the pre-current part of the year counts as history.
	histMarket := map[string]int{}
	for _, rec := range w.Baseline.Market {
		posted, ok := periods.ParseDate(rec.PostingDate)
		if !ok || !posted.Before(w.Current.Start) {
			continue
		}
		histMarket[rec.Agency()+"\x00"+rec.PrimaryCategory]++
	}

	current := map[string]int{}
	var order []string
	for _, rec := range w.Current.Market {
		agency := rec.Agency()
		if agency == w.Subject || agency == "" || !subjectCategories[rec.PrimaryCategory] {
			continue
		}
		k := agency + "\x00" + rec.PrimaryCategory
		if _, seen := current[k]; !seen {
			order = append(order, k)
		}
		current[k]++
	}

	var signals []Signal
	for _, k := range order {
		if current[k] < competitorEntryMinNow || histMarket[k] >= competitorEntryMaxHist {
			continue
		}
		agency, category := splitPairKey(k)
		signals = append(signals, Signal{
			ID:          fmt.Sprintf("competitor-entry-%s-%s", agency, category),
			Type:        TypeCompetitor,
			Severity:    SeverityMedium,
			Title:       fmt.Sprintf("%s entering %s", agency, category),
			Description: fmt.Sprintf("%s posted %d positions in %s with only %d in the prior year", agency, current[k], category, histMarket[k]),
			Metric:      fmt.Sprintf("%d current vs %d historical", current[k], histMarket[k]),
			Context:     "competitor entry into a subject-active category",
		})
	}
	return signals
}

// marketMovers reports the single largest grower and decliner across
// the whole market when no subject filter is set.
func (d *Detector) marketMovers(w *periods.Windows) []Signal {
	byAgency := func(r domain.JobRecord) string { return r.Agency() }

	current := map[string]int{}
	for _, a := range orderedKeys(w.Current.Market, byAgency) {
		current[a] = countWhere(w.Current.Market, func(r domain.JobRecord) bool { return r.Agency() == a })
	}
	previous := map[string]int{}
	for _, a := range orderedKeys(w.Previous.Market, byAgency) {
		previous[a] = countWhere(w.Previous.Market, func(r domain.JobRecord) bool { return r.Agency() == a })
	}

	var growerAgency, declinerAgency string
	var growerPct, declinerPct float64
	for _, agency := range orderedKeys(w.Current.Market, byAgency) {
		pct := formulas.PercentChange(float64(current[agency]), float64(previous[agency]))
		if pct > marketGrowerPct && current[agency] >= marketGrowerMin && (growerAgency == "" || pct > growerPct) {
			growerAgency, growerPct = agency, pct
		}
	}
	for _, agency := range orderedKeys(w.Previous.Market, byAgency) {
		pct := formulas.PercentChange(float64(current[agency]), float64(previous[agency]))
		if pct < marketDeclinerPct && previous[agency] >= marketDeclinerPrev && (declinerAgency == "" || pct < declinerPct) {
			declinerAgency, declinerPct = agency, pct
		}
	}

	var signals []Signal
	if growerAgency != "" {
		signals = append(signals, Signal{
			ID:          "competitor-grower-" + growerAgency,
			Type:        TypeCompetitor,
			Severity:    SeverityMedium,
			Title:       fmt.Sprintf("%s is the market's fastest grower", growerAgency),
			Description: fmt.Sprintf("%s grew %+.0f%% to %d postings", growerAgency, growerPct, current[growerAgency]),
			Metric:      fmt.Sprintf("%+.0f%%", growerPct),
			Context:     "market-wide agency growth",
		})
	}
	if declinerAgency != "" {
		signals = append(signals, Signal{
			ID:          "competitor-decliner-" + declinerAgency,
			Type:        TypeCompetitor,
			Severity:    SeverityMedium,
			Title:       fmt.Sprintf("%s pulled back sharply", declinerAgency),
			Description: fmt.Sprintf("%s fell %.0f%% from %d postings", declinerAgency, -declinerPct, previous[declinerAgency]),
			Metric:      fmt.Sprintf("%+.0f%%", declinerPct),
			Context:     "market-wide agency decline",
		})
	}
	return signals
}

func splitPairKey(k string) (string, string) {
	for i := 0; i < len(k); i++ {
		if k[i] == 0 {
			return k[:i], k[i+1:]
		}
	}
	return k, ""
}
