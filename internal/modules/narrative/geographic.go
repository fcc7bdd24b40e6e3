package narrative

import (
	"fmt"
	"strings"

	"github.com/orghire/pulse/internal/modules/metrics"
)

// conflictCalloutPct is the conflict-zone share that earns a badge.
const conflictCalloutPct = 15.0

// Geographic renders the where-hiring-happens narrative.
func (g *Generator) Geographic(subject string, geo metrics.GeographicMetrics) Narrative {
	actor := actorName(subject)

	n := Narrative{
		Headline: fmt.Sprintf("%s places %.0f%% of postings in field locations", actor, geo.FieldRatio),
	}

	if len(geo.TopLocations) > 0 {
		top := geo.TopLocations[0]
		n.Body = append(n.Body, fmt.Sprintf("%s is the busiest duty station with %d %s (%+d vs the prior period).",
			top.Station, top.Count, plural(top.Count, "posting", "postings"), top.Change))
		n.Highlights = append(n.Highlights, fmt.Sprintf("%s: %d postings", top.Station, top.Count))
	}

	if len(geo.Regions) > 0 {
		top := geo.Regions[0]
		n.Body = append(n.Body, fmt.Sprintf("%s leads regionally at %.0f%% of postings.", top.Region, top.Share))
	}

	if geo.ConflictZone.Count > 0 {
		n.Body = append(n.Body, fmt.Sprintf("%d %s (%.0f%%) sit in conflict-affected duty stations.",
			geo.ConflictZone.Count, plural(geo.ConflictZone.Count, "posting", "postings"), geo.ConflictZone.Share))
	}

	n.Highlights = append(n.Highlights, fmt.Sprintf("%.0f%% field", geo.FieldRatio))

	if len(geo.NewLocations) > 0 {
		n.Callouts = append(n.Callouts, Callout{
			Type: CalloutInfo,
			Text: fmt.Sprintf("New duty %s: %s",
				plural(len(geo.NewLocations), "station", "stations"), strings.Join(geo.NewLocations, ", ")),
		})
	}
	if geo.ConflictZone.Share > conflictCalloutPct {
		n.Callouts = append(n.Callouts, Callout{
			Type: CalloutWarning,
			Text: fmt.Sprintf("Conflict-zone hiring at %.0f%% of postings", geo.ConflictZone.Share),
		})
	}

	return n
}
