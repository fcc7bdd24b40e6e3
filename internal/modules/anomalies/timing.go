package anomalies

import (
	"fmt"
	"time"

	"github.com/orghire/pulse/internal/domain"
	"github.com/orghire/pulse/internal/modules/periods"
	"github.com/orghire/pulse/pkg/formulas"
)

const (
	// Application windows outside (0, 365) days are data artifacts.
	windowDaysMax = 365

	urgencyWindowDays = 10
	urgencyRateMedium = 20.0
	urgencyRateHigh   = 30.0

	weekdaySkewPct = 30.0
)

// timingAnomalies flags compressed application windows, high-urgency
// posting rates and day-of-week skew.
func (d *Detector) timingAnomalies(w *periods.Windows) []Signal {
	var signals []Signal

	currentDays := validWindowDays(w.Current.Records)
	baselineDays := validWindowDays(w.Baseline.Records)

	// Mean window vs baseline mean minus one standard deviation.
	if len(currentDays) > 0 && len(baselineDays) > 1 {
		curMean := formulas.Mean(currentDays)
		baseMean := formulas.Mean(baselineDays)
		baseSD := formulas.StdDev(baselineDays)
		if curMean < baseMean-baseSD {
			signals = append(signals, Signal{
				ID:          "timing-window-compression",
				Type:        TypeTiming,
				Severity:    SeverityMedium,
				Title:       "Application windows are compressing",
				Description: fmt.Sprintf("Mean window of %.1f days vs a 12-month mean of %.1f", curMean, baseMean),
				Metric:      fmt.Sprintf("mean=%.1f threshold=%.1f", curMean, baseMean-baseSD),
				Context:     "mean application window vs baseline",
			})
		}
	}

	// High-urgency rate: short windows as a share of all postings.
	total := len(w.Current.Records)
	if total > 0 {
		urgent := countWhere(w.Current.Records, func(r domain.JobRecord) bool {
			return r.ApplicationWindowDays > 0 && r.ApplicationWindowDays < urgencyWindowDays
		})
		rate := formulas.Ratio(float64(urgent), float64(total))
		if rate > urgencyRateMedium {
			sev := SeverityMedium
			if rate > urgencyRateHigh {
				sev = SeverityHigh
			}
			signals = append(signals, Signal{
				ID:          "timing-urgency-rate",
				Type:        TypeTiming,
				Severity:    sev,
				Title:       "High share of urgent postings",
				Description: fmt.Sprintf("%.0f%% of postings close in under %d days", rate, urgencyWindowDays),
				Metric:      fmt.Sprintf("%.0f%%", rate),
				Context:     "short application windows",
			})
		}

		// Day-of-week skew on the fixed end-of-week posting day.
		fridays := countWhere(w.Current.Records, func(r domain.JobRecord) bool {
			posted, ok := periods.ParseDate(r.PostingDate)
			return ok && posted.Weekday() == time.Friday
		})
		fridayRate := formulas.Ratio(float64(fridays), float64(total))
		if fridayRate > weekdaySkewPct {
			signals = append(signals, Signal{
				ID:          "timing-friday-skew",
				Type:        TypeTiming,
				Severity:    SeverityMedium,
				Title:       "Postings cluster on Fridays",
				Description: fmt.Sprintf("%.0f%% of postings landed on a Friday", fridayRate),
				Metric:      fmt.Sprintf("%.0f%%", fridayRate),
				Context:     "day-of-week posting skew",
			})
		}
	}

	return signals
}

// validWindowDays collects application windows inside the sane range.
func validWindowDays(records []domain.JobRecord) []float64 {
	var out []float64
	for _, rec := range records {
		if rec.ApplicationWindowDays > 0 && rec.ApplicationWindowDays < windowDaysMax {
			out = append(out, float64(rec.ApplicationWindowDays))
		}
	}
	return out
}
