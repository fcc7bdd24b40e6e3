package narrative

import (
	"fmt"

	"github.com/orghire/pulse/internal/modules/metrics"
)

// Workforce renders the staff-composition narrative.
func (g *Generator) Workforce(subject string, wf metrics.WorkforceMetrics) Narrative {
	actor := actorName(subject)

	n := Narrative{
		Headline: fmt.Sprintf("%s is hiring at a %.0f%% staff ratio", actor, wf.StaffRatio),
	}

	// Period-over-period staff shift only when it moved enough to matter.
	shift := wf.StaffRatio - wf.PreviousStaffRatio
	if shift > staffShiftMinPts || shift < -staffShiftMinPts {
		direction := "up"
		if shift < 0 {
			direction = "down"
		}
		n.Body = append(n.Body, fmt.Sprintf("The staff ratio moved %s %.1f points from the prior period, to %.1f%%.",
			direction, abs(shift), wf.StaffRatio))
	}

	marketGap := wf.StaffRatio - wf.MarketStaffRatio
	if marketGap > staffShiftMinPts || marketGap < -staffShiftMinPts {
		comparative := "above"
		if marketGap < 0 {
			comparative = "below"
		}
		n.Body = append(n.Body, fmt.Sprintf("That is %.1f points %s the market's %.1f%% staff ratio.",
			abs(marketGap), comparative, wf.MarketStaffRatio))
	}

	if top, ok := largestTier(wf.Tiers); ok {
		n.Body = append(n.Body, fmt.Sprintf("%s is the largest grade tier at %.0f%% of postings.",
			top.Tier, top.Share))
		n.Highlights = append(n.Highlights, fmt.Sprintf("%s leads at %.0f%%", top.Tier, top.Share))
	}

	n.Highlights = append(n.Highlights, fmt.Sprintf("%.0f%% staff", wf.StaffRatio))

	for _, anomaly := range wf.GradeAnomalies {
		n.Callouts = append(n.Callouts, Callout{
			Type: CalloutWarning,
			Text: fmt.Sprintf("%s share is off its 12-month baseline (%.0f%% vs %.0f%%)",
				anomaly.Tier, anomaly.CurrentShare, anomaly.BaselineShare),
		})
	}

	return n
}

// largestTier picks the tier holding the biggest share. The tier table
// arrives in seniority order, not size order; ties keep the more senior
// entry.
func largestTier(tiers []metrics.TierShare) (metrics.TierShare, bool) {
	var top metrics.TierShare
	for _, tier := range tiers {
		if tier.Share > top.Share {
			top = tier
		}
	}
	return top, top.Count > 0
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
