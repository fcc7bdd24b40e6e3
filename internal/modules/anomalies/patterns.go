package anomalies

import (
	"fmt"

	"github.com/orghire/pulse/internal/domain"
	"github.com/orghire/pulse/internal/modules/geography"
	"github.com/orghire/pulse/internal/modules/grading"
	"github.com/orghire/pulse/internal/modules/periods"
	"github.com/orghire/pulse/pkg/formulas"
)

// Pattern break: a composition ratio swings more than 15 points against
// its 12-month baseline. Crossing the 50% line escalates to high.
const patternSwingPts = 15.0

// patternBreaks compares staff ratio, field ratio and top-3 category
// concentration against the trailing year.
func (d *Detector) patternBreaks(w *periods.Windows) []Signal {
	checks := []struct {
		id    string
		label string
		value func([]domain.JobRecord) float64
	}{
		{"pattern-staff-ratio", "staff ratio", patternStaffRatio},
		{"pattern-field-ratio", "field ratio", patternFieldRatio},
		{"pattern-category-concentration", "top-3 category concentration", patternTop3Concentration},
	}

	var signals []Signal
	for _, check := range checks {
		if len(w.Current.Records) == 0 || len(w.Baseline.Records) == 0 {
			continue
		}
		current := check.value(w.Current.Records)
		baseline := check.value(w.Baseline.Records)
		swing := current - baseline
		if swing < patternSwingPts && swing > -patternSwingPts {
			continue
		}

		sev := SeverityMedium
		inverted := (current-50)*(baseline-50) < 0
		if inverted {
			sev = SeverityHigh
		}

		signals = append(signals, Signal{
			ID:          check.id,
			Type:        TypePattern,
			Severity:    sev,
			Title:       fmt.Sprintf("Pattern break in %s", check.label),
			Description: fmt.Sprintf("%s moved from %.1f%% (12-month) to %.1f%%", check.label, baseline, current),
			Metric:      fmt.Sprintf("swing=%+.1fpts", swing),
			Context:     pickContext(inverted),
		})
	}
	return signals
}

func pickContext(inverted bool) string {
	if inverted {
		return "ratio crossed the 50% line"
	}
	return "current period vs 12-month baseline"
}

func patternStaffRatio(records []domain.JobRecord) float64 {
	staff := countWhere(records, func(r domain.JobRecord) bool {
		return grading.Classify(r.UpGrade).StaffCategory == grading.CategoryStaff
	})
	return formulas.Ratio(float64(staff), float64(len(records)))
}

func patternFieldRatio(records []domain.JobRecord) float64 {
	field := countWhere(records, func(r domain.JobRecord) bool {
		return geography.Classify(r.DutyStation, r.DutyCountry, r.DutyContinent).LocationType == geography.LocationField
	})
	return formulas.Ratio(float64(field), float64(len(records)))
}

func patternTop3Concentration(records []domain.JobRecord) float64 {
	counts := map[string]int{}
	var order []string
	for _, rec := range records {
		if rec.PrimaryCategory == "" {
			continue
		}
		if _, seen := counts[rec.PrimaryCategory]; !seen {
			order = append(order, rec.PrimaryCategory)
		}
		counts[rec.PrimaryCategory]++
	}

	// Top three counts without needing a full sort of the tail.
	top := []int{0, 0, 0}
	for _, cat := range order {
		n := counts[cat]
		for i := 0; i < 3; i++ {
			if n > top[i] {
				top[i], n = n, top[i]
			}
		}
	}
	return formulas.Ratio(float64(top[0]+top[1]+top[2]), float64(len(records)))
}
