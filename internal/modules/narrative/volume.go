package narrative

import (
	"fmt"

	"github.com/orghire/pulse/internal/modules/metrics"
)

// Volume renders the posting-volume narrative.
func (g *Generator) Volume(subject, period string, v metrics.VolumeMetrics) Narrative {
	actor := actorName(subject)

	n := Narrative{
		Headline: fmt.Sprintf("%s posting volume %s over %s", actor, pctPhrase(v.ChangePct), period),
	}

	n.Body = append(n.Body, fmt.Sprintf("%s posted %d %s over %s, compared with %d in the prior period.",
		actor, v.Total, plural(v.Total, "position", "positions"), period, v.PreviousTotal))

	if v.WeeklyVelocity > 0 {
		n.Body = append(n.Body, fmt.Sprintf("Weekly velocity is %.1f postings against a 12-month baseline of %.1f, a %s trend.",
			v.WeeklyVelocity, v.BaselineWeeklyVelocity, v.Trend))
	}
	if v.PeakWeek.Count > 0 {
		n.Body = append(n.Body, fmt.Sprintf("The busiest week began %s with %d postings.",
			v.PeakWeek.WeekStart, v.PeakWeek.Count))
	}

	n.Highlights = append(n.Highlights,
		fmt.Sprintf("%d postings", v.Total),
		fmt.Sprintf("%+.0f%% vs prior period", v.ChangePct),
		v.Trend,
	)

	switch {
	case v.ChangePct > surgeCalloutPct:
		n.Callouts = append(n.Callouts, Callout{Type: CalloutPositive, Text: "Significant hiring surge"})
	case v.ChangePct < -surgeCalloutPct:
		n.Callouts = append(n.Callouts, Callout{Type: CalloutWarning, Text: "Sharp hiring pullback"})
	}

	return n
}

// actorName names the entity the prose speaks about.
func actorName(subject string) string {
	if subject == "" {
		return "The market"
	}
	return subject
}
