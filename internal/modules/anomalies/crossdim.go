package anomalies

import (
	"fmt"
	"strings"

	"github.com/orghire/pulse/internal/domain"
	"github.com/orghire/pulse/internal/modules/geography"
	"github.com/orghire/pulse/internal/modules/grading"
	"github.com/orghire/pulse/internal/modules/periods"
)

const (
	// New combination: no history at all, meaningful current volume.
	comboNewMin = 3

	// Spiking combination: well above its historical monthly rate.
	comboSpikeFactor = 3.0
	comboSpikeMin    = 5

	// Senior concentration at a field station.
	seniorConcentrationMin = 3
	seniorStationMin       = 5
)

// comboKey is a (grade tier, location type, category) combination.
func comboKey(rec domain.JobRecord) string {
	tier := grading.Classify(rec.UpGrade).Tier
	lt := geography.Classify(rec.DutyStation, rec.DutyCountry, rec.DutyContinent).LocationType
	return strings.Join([]string{string(tier), string(lt), rec.PrimaryCategory}, " / ")
}

// crossDimensional flags rare tier x location-type x category
// combinations that are newly appearing or spiking, plus senior-grade
// concentration at field duty stations.
func (d *Detector) crossDimensional(w *periods.Windows) []Signal {
	historical := map[string]int{}
	for _, rec := range historicalBefore(w.Baseline, w.Current.Start) {
		historical[comboKey(rec)]++
	}

	current := map[string]int{}
	var order []string
	for _, rec := range w.Current.Records {
		k := comboKey(rec)
		if _, seen := current[k]; !seen {
			order = append(order, k)
		}
		current[k]++
	}

	days := w.Current.Days()
	if days < 1 {
		days = 1
	}

	var signals []Signal
	for _, k := range order {
		count := current[k]
		hist := historical[k]

		switch {
		case hist == 0 && count >= comboNewMin:
			signals = append(signals, Signal{
				ID:          "cross-new-" + k,
				Type:        TypeCrossDimensional,
				Severity:    SeverityMedium,
				Title:       fmt.Sprintf("New hiring combination: %s", k),
				Description: fmt.Sprintf("%d postings in a combination with no 12-month history", count),
				Metric:      fmt.Sprintf("%d current, 0 historical", count),
				Context:     "grade x location x category combination",
			})
		case count >= comboSpikeMin && monthlyEquivalent(count, days) > comboSpikeFactor*float64(hist)/12.0:
			signals = append(signals, Signal{
				ID:          "cross-spike-" + k,
				Type:        TypeCrossDimensional,
				Severity:    SeverityMedium,
				Title:       fmt.Sprintf("Spike in %s", k),
				Description: fmt.Sprintf("%d postings, over 3x the historical monthly rate", count),
				Metric:      fmt.Sprintf("%.1f/month vs %.1f/month", monthlyEquivalent(count, days), float64(hist)/12.0),
				Context:     "grade x location x category combination",
			})
		}
	}

	signals = append(signals, d.seniorFieldConcentration(w)...)
	return signals
}

// monthlyEquivalent normalizes a window count to a 30-day rate.
func monthlyEquivalent(count, days int) float64 {
	return float64(count) * 30.0 / float64(days)
}

// seniorFieldConcentration flags field stations with several executive
// or director level postings at once.
func (d *Detector) seniorFieldConcentration(w *periods.Windows) []Signal {
	totals := map[string]int{}
	senior := map[string]int{}
	var order []string
	for _, rec := range w.Current.Records {
		if geography.Classify(rec.DutyStation, rec.DutyCountry, rec.DutyContinent).LocationType != geography.LocationField {
			continue
		}
		st := rec.DutyStation
		if st == "" {
			continue
		}
		if _, seen := totals[st]; !seen {
			order = append(order, st)
		}
		totals[st]++
		tier := grading.Classify(rec.UpGrade).Tier
		if tier == grading.TierExecutive || tier == grading.TierDirector {
			senior[st]++
		}
	}

	var signals []Signal
	for _, st := range order {
		if senior[st] < seniorConcentrationMin || totals[st] < seniorStationMin {
			continue
		}
		signals = append(signals, Signal{
			ID:          "cross-senior-" + st,
			Type:        TypeCrossDimensional,
			Severity:    SeverityMedium,
			Title:       fmt.Sprintf("Senior-grade concentration in %s", st),
			Description: fmt.Sprintf("%d executive/director postings among %d at a field station", senior[st], totals[st]),
			Metric:      fmt.Sprintf("%d senior of %d", senior[st], totals[st]),
			Context:     "senior hiring at a field duty station",
		})
	}
	return signals
}
