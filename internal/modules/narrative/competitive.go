package narrative

import (
	"fmt"

	"github.com/orghire/pulse/internal/modules/metrics"
)

// Competitive renders the market-position narrative. The market view
// (no subject) gets a one-line headline and no position prose.
func (g *Generator) Competitive(comp metrics.CompetitiveMetrics) Narrative {
	if comp.Subject == "" {
		return Narrative{
			Headline:   "Market-wide view: no subject selected",
			Highlights: []string{fmt.Sprintf("%d agencies active", comp.Rank.TotalAgencies)},
		}
	}

	n := Narrative{
		Headline: fmt.Sprintf("%s holds %.1f%% market share, ranked #%d of %d agencies",
			comp.Subject, comp.MarketShare, comp.Rank.Current, comp.Rank.TotalAgencies),
	}

	switch {
	case comp.Rank.Change > 0:
		n.Body = append(n.Body, fmt.Sprintf("%s climbed from #%d to #%d in the agency ranking.",
			comp.Subject, comp.Rank.Previous, comp.Rank.Current))
		n.Callouts = append(n.Callouts, Callout{
			Type: CalloutPositive,
			Text: fmt.Sprintf("Market rank improved by %d (now #%d)", comp.Rank.Change, comp.Rank.Current),
		})
	case comp.Rank.Change < 0:
		n.Body = append(n.Body, fmt.Sprintf("%s slipped from #%d to #%d in the agency ranking.",
			comp.Subject, comp.Rank.Previous, comp.Rank.Current))
		n.Callouts = append(n.Callouts, Callout{
			Type: CalloutNegative,
			Text: fmt.Sprintf("Market rank fell by %d (now #%d)", -comp.Rank.Change, comp.Rank.Current),
		})
	}

	if top, ok := largestPeer(comp.Peers); ok {
		n.Body = append(n.Body, fmt.Sprintf("%s is the largest peer with %d %s (%.1f%% share).",
			top.Agency, top.Count, plural(top.Count, "posting", "postings"), top.Share))
	}

	// Correlations only when the profiles genuinely track each other.
	for _, corr := range comp.Correlations {
		if corr.R < correlationMinAbs && corr.R > -correlationMinAbs {
			continue
		}
		n.Body = append(n.Body, fmt.Sprintf("%s's category mix correlates with %s's at r=%.2f; %s.",
			corr.Agency, comp.Subject, corr.R, corr.KeyDifference))
	}

	for _, move := range comp.NewCompetitorMoves {
		n.Body = append(n.Body, fmt.Sprintf("%s is pushing into %s with %d postings, up from %d.",
			move.Agency, move.Category, move.Current, move.Previous))
	}

	n.Highlights = append(n.Highlights,
		fmt.Sprintf("%.1f%% share", comp.MarketShare),
		fmt.Sprintf("Rank #%d", comp.Rank.Current),
	)

	return n
}

// largestPeer picks the peer with the most postings. The peer table
// arrives in lookup order, not size order; ties keep the earlier entry.
func largestPeer(peers []metrics.PeerStat) (metrics.PeerStat, bool) {
	var top metrics.PeerStat
	for _, peer := range peers {
		if peer.Count > top.Count {
			top = peer
		}
	}
	return top, top.Count > 0
}
