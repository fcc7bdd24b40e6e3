package anomalies

import (
	"fmt"

	"github.com/orghire/pulse/internal/domain"
	"github.com/orghire/pulse/internal/modules/periods"
)

const (
	gapCategoryMinAgencies = 5
	gapRegionMinAgencies   = 3
)

// gapSignals (subject view only) finds categories and regions where
// peers are active and the subject is entirely absent. Region gaps
// additionally require absence across the whole 12-month baseline, not
// just the current window.
func (d *Detector) gapSignals(w *periods.Windows) []Signal {
	if w.Subject == "" {
		return nil
	}

	var signals []Signal
	signals = append(signals, d.categoryGaps(w)...)
	signals = append(signals, d.regionGaps(w)...)
	return signals
}

func (d *Detector) categoryGaps(w *periods.Windows) []Signal {
	subjectActive := map[string]bool{}
	for _, rec := range w.Current.Records {
		subjectActive[rec.PrimaryCategory] = true
	}

	agencies := map[string]map[string]bool{}
	var order []string
	for _, rec := range w.Current.Market {
		agency := rec.Agency()
		cat := rec.PrimaryCategory
		if agency == w.Subject || agency == "" || cat == "" {
			continue
		}
		if agencies[cat] == nil {
			agencies[cat] = map[string]bool{}
			order = append(order, cat)
		}
		agencies[cat][agency] = true
	}

	var signals []Signal
	for _, cat := range order {
		if subjectActive[cat] || len(agencies[cat]) < gapCategoryMinAgencies {
			continue
		}
		signals = append(signals, Signal{
			ID:          "gap-category-" + cat,
			Type:        TypeGap,
			Severity:    SeverityMedium,
			Title:       fmt.Sprintf("No presence in %s", cat),
			Description: fmt.Sprintf("%d other agencies are hiring in %s; %s has no postings", len(agencies[cat]), cat, w.Subject),
			Metric:      fmt.Sprintf("%d active agencies, 0 subject postings", len(agencies[cat])),
			Context:     "category coverage gap",
		})
	}
	return signals
}

func (d *Detector) regionGaps(w *periods.Windows) []Signal {
	region := func(rec domain.JobRecord) string {
		return string(regionOfRecord(rec))
	}

	subjectCurrent := map[string]bool{}
	for _, rec := range w.Current.Records {
		subjectCurrent[region(rec)] = true
	}
	subjectBaseline := map[string]bool{}
	for _, rec := range w.Baseline.Records {
		subjectBaseline[region(rec)] = true
	}

	agencies := map[string]map[string]bool{}
	var order []string
	for _, rec := range w.Current.Market {
		agency := rec.Agency()
		if agency == w.Subject || agency == "" {
			continue
		}
		reg := region(rec)
		if agencies[reg] == nil {
			agencies[reg] = map[string]bool{}
			order = append(order, reg)
		}
		agencies[reg][agency] = true
	}

	var signals []Signal
	for _, reg := range order {
		// Consecutive absence: nothing now and nothing across the year.
		if subjectCurrent[reg] || subjectBaseline[reg] || len(agencies[reg]) < gapRegionMinAgencies {
			continue
		}
		signals = append(signals, Signal{
			ID:          "gap-region-" + reg,
			Type:        TypeGap,
			Severity:    SeverityMedium,
			Title:       fmt.Sprintf("No presence in %s", reg),
			Description: fmt.Sprintf("%d other agencies are active in %s; %s posted nothing there all year", len(agencies[reg]), reg, w.Subject),
			Metric:      fmt.Sprintf("%d active agencies", len(agencies[reg])),
			Context:     "regional coverage gap",
		})
	}
	return signals
}
