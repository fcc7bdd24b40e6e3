package narrative

import (
	"fmt"

	"github.com/orghire/pulse/internal/modules/metrics"
)

// concentrationCalloutPct is the top-3 cumulative share that earns a
// concentration badge.
const concentrationCalloutPct = 60.0

// Category renders the what-gets-hired narrative.
func (g *Generator) Category(subject string, cat metrics.CategoryMetrics) Narrative {
	actor := actorName(subject)

	n := Narrative{}
	if len(cat.TopCategories) == 0 {
		n.Headline = fmt.Sprintf("%s has no categorized postings this period", actor)
		return n
	}

	top := cat.TopCategories[0]
	n.Headline = fmt.Sprintf("%s leads %s hiring at %.0f%% of postings", categoryLabel(top), actor, top.Share)

	n.Body = append(n.Body, fmt.Sprintf("%s accounts for %d %s, ranked #%d in the market.",
		categoryLabel(top), top.Count, plural(top.Count, "posting", "postings"), top.MarketRank))
	n.Body = append(n.Body, fmt.Sprintf("The top three categories cover %.0f%% of all postings.", cat.Top3Share))

	if len(cat.FastestGrowing) > 0 {
		mover := cat.FastestGrowing[0]
		n.Body = append(n.Body, fmt.Sprintf("%s %s, from %d to %d postings.",
			mover.Category, pctPhrase(mover.ChangePct), mover.Previous, mover.Current))
		n.Highlights = append(n.Highlights, fmt.Sprintf("%s %+.0f%%", mover.Category, mover.ChangePct))
	}
	if len(cat.Declining) > 0 {
		mover := cat.Declining[0]
		n.Body = append(n.Body, fmt.Sprintf("%s %s, from %d to %d postings.",
			mover.Category, pctPhrase(mover.ChangePct), mover.Previous, mover.Current))
	}

	n.Highlights = append(n.Highlights, fmt.Sprintf("Top 3 cover %.0f%%", cat.Top3Share))

	if cat.Top3Share > concentrationCalloutPct {
		n.Callouts = append(n.Callouts, Callout{
			Type: CalloutNeutral,
			Text: fmt.Sprintf("Demand is concentrated: top 3 categories hold %.0f%%", cat.Top3Share),
		})
	}

	return n
}

func categoryLabel(stat metrics.CategoryStat) string {
	if stat.DisplayName != "" {
		return stat.DisplayName
	}
	return stat.Category
}
