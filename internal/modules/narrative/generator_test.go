package narrative

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orghire/pulse/internal/modules/metrics"
)

func testGenerator() *Generator {
	return NewGenerator(zerolog.Nop())
}

func TestChangeVerbLadder(t *testing.T) {
	cases := []struct {
		pct  float64
		verb string
	}{
		{1.5, "held steady"},
		{-2.9, "held steady"},
		{7.0, "increased"},
		{-7.0, "decreased"},
		{18.0, "grew significantly"},
		{-18.0, "declined notably"},
		{40.0, "surged"},
		{-40.0, "dropped sharply"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.verb, changeVerb(tc.pct), "pct=%.1f", tc.pct)
	}
}

func TestVolume_SurgeCallout(t *testing.T) {
	g := testGenerator()

	n := g.Volume("WFP", "the last 4 weeks", metrics.VolumeMetrics{
		Total: 120, PreviousTotal: 100, ChangePct: 20.0,
		WeeklyVelocity: 30, BaselineWeeklyVelocity: 25, Trend: metrics.TrendSteady,
	})
	assert.Empty(t, n.Callouts, "20%% sits on the gate, not past it")

	n = g.Volume("WFP", "the last 4 weeks", metrics.VolumeMetrics{
		Total: 130, PreviousTotal: 100, ChangePct: 30.0,
		WeeklyVelocity: 32, BaselineWeeklyVelocity: 25, Trend: metrics.TrendAccelerating,
	})
	require.Len(t, n.Callouts, 1)
	assert.Equal(t, CalloutPositive, n.Callouts[0].Type)
	assert.Equal(t, "Significant hiring surge", n.Callouts[0].Text)
	assert.Contains(t, n.Headline, "surged")
	assert.Contains(t, n.Body[0], "posted 130 positions over the last 4 weeks")
}

func TestVolume_PullbackCallout(t *testing.T) {
	g := testGenerator()
	n := g.Volume("", "the last 8 weeks", metrics.VolumeMetrics{
		Total: 60, PreviousTotal: 100, ChangePct: -40.0, Trend: metrics.TrendDecelerating,
	})
	require.Len(t, n.Callouts, 1)
	assert.Equal(t, CalloutWarning, n.Callouts[0].Type)
	assert.Contains(t, n.Headline, "The market")
}

func TestWorkforce_StaffShiftGate(t *testing.T) {
	g := testGenerator()

	// A 1.5-point move stays out of the prose.
	n := g.Workforce("WFP", metrics.WorkforceMetrics{
		StaffRatio: 61.5, PreviousStaffRatio: 60.0, MarketStaffRatio: 61.0,
	})
	for _, sentence := range n.Body {
		assert.NotContains(t, sentence, "prior period")
	}

	n = g.Workforce("WFP", metrics.WorkforceMetrics{
		StaffRatio: 68.0, PreviousStaffRatio: 60.0, MarketStaffRatio: 55.0,
	})
	require.GreaterOrEqual(t, len(n.Body), 2)
	assert.Contains(t, n.Body[0], "moved up 8.0 points")
	assert.Contains(t, n.Body[1], "above the market")
}

func TestWorkforce_LargestTierByShare(t *testing.T) {
	g := testGenerator()

	// The tier table arrives in seniority order; the prose must name the
	// biggest share, not the most senior tier.
	n := g.Workforce("WFP", metrics.WorkforceMetrics{
		StaffRatio: 60, PreviousStaffRatio: 60, MarketStaffRatio: 60,
		Tiers: []metrics.TierShare{
			{Tier: "Executive", Count: 2, Share: 4},
			{Tier: "Mid-level Professional", Count: 40, Share: 80},
			{Tier: "Consultant", Count: 8, Share: 16},
		},
	})
	require.NotEmpty(t, n.Body)
	assert.Contains(t, n.Body[0], "Mid-level Professional is the largest grade tier at 80% of postings")
	assert.Contains(t, n.Highlights[0], "Mid-level Professional leads at 80%")

	// Zero-count tier tables produce no tier sentence at all.
	n = g.Workforce("WFP", metrics.WorkforceMetrics{
		StaffRatio: 0, PreviousStaffRatio: 0, MarketStaffRatio: 0,
		Tiers: []metrics.TierShare{{Tier: "Executive"}, {Tier: "Consultant"}},
	})
	assert.Empty(t, n.Body)
}

func TestWorkforce_GradeAnomalyCallout(t *testing.T) {
	g := testGenerator()
	n := g.Workforce("WFP", metrics.WorkforceMetrics{
		StaffRatio: 50, PreviousStaffRatio: 50, MarketStaffRatio: 50,
		GradeAnomalies: []metrics.TierShift{
			{Tier: "Executive", CurrentShare: 12, BaselineShare: 4, RelativeDeviation: 2.0},
		},
	})
	require.Len(t, n.Callouts, 1)
	assert.Equal(t, CalloutWarning, n.Callouts[0].Type)
	assert.Contains(t, n.Callouts[0].Text, "Executive")
}

func TestGeographic_NewLocationsAndConflict(t *testing.T) {
	g := testGenerator()
	n := g.Geographic("WFP", metrics.GeographicMetrics{
		FieldRatio:   45,
		TopLocations: []metrics.LocationCount{{Station: "Juba", Count: 12, Change: 4}},
		NewLocations: []string{"Goma", "Port Sudan"},
		ConflictZone: metrics.ConflictZoneMetrics{Count: 20, Share: 25},
		Regions:      []metrics.RegionCount{{Region: "Africa", Count: 30, Share: 50}},
	})

	require.Len(t, n.Callouts, 2)
	assert.Equal(t, CalloutInfo, n.Callouts[0].Type)
	assert.Contains(t, n.Callouts[0].Text, "Goma, Port Sudan")
	assert.Equal(t, CalloutWarning, n.Callouts[1].Type)
	assert.Contains(t, n.Body[0], "Juba")
}

func TestCategory_EmptyAndConcentration(t *testing.T) {
	g := testGenerator()

	n := g.Category("WFP", metrics.CategoryMetrics{})
	assert.Contains(t, n.Headline, "no categorized postings")
	assert.Empty(t, n.Body)

	n = g.Category("WFP", metrics.CategoryMetrics{
		TopCategories: []metrics.CategoryStat{
			{Category: "logistics", DisplayName: "Logistics & Supply Chain", Count: 40, Share: 40, MarketRank: 1},
		},
		Top3Share: 75,
		FastestGrowing: []metrics.CategoryChange{
			{Category: "health", Current: 12, Previous: 6, Change: 6, ChangePct: 100},
		},
	})
	assert.Contains(t, n.Headline, "Logistics & Supply Chain")
	require.Len(t, n.Callouts, 1)
	assert.Equal(t, CalloutNeutral, n.Callouts[0].Type)
}

func TestCompetitive_RankImprovementCallout(t *testing.T) {
	g := testGenerator()
	n := g.Competitive(metrics.CompetitiveMetrics{
		Subject:     "WFP",
		MarketShare: 14.2,
		Rank:        metrics.RankMetrics{Current: 3, Previous: 5, Change: 2, TotalAgencies: 12},
	})

	require.Len(t, n.Callouts, 1)
	assert.Equal(t, CalloutPositive, n.Callouts[0].Type)
	assert.Contains(t, n.Callouts[0].Text, "improved by 2")
	assert.Contains(t, n.Body[0], "climbed from #5 to #3")
}

func TestCompetitive_LargestPeerByCount(t *testing.T) {
	g := testGenerator()

	// Peers arrive in static lookup order; the prose must name the one
	// with the most postings.
	n := g.Competitive(metrics.CompetitiveMetrics{
		Subject:     "WFP",
		MarketShare: 10.0,
		Rank:        metrics.RankMetrics{Current: 2, Previous: 2, TotalAgencies: 5},
		Peers: []metrics.PeerStat{
			{Agency: "UNDP", Count: 2, Share: 1.0},
			{Agency: "UNICEF", Count: 50, Share: 25.0},
		},
	})
	require.NotEmpty(t, n.Body)
	assert.Contains(t, n.Body[0], "UNICEF is the largest peer with 50 postings (25.0% share)")

	// An all-zero peer table stays out of the prose.
	n = g.Competitive(metrics.CompetitiveMetrics{
		Subject: "WFP",
		Rank:    metrics.RankMetrics{Current: 1, Previous: 1, TotalAgencies: 1},
		Peers:   []metrics.PeerStat{{Agency: "UNDP"}},
	})
	assert.Empty(t, n.Body)
}

func TestCompetitive_RankDeclineAndCorrelationGate(t *testing.T) {
	g := testGenerator()
	n := g.Competitive(metrics.CompetitiveMetrics{
		Subject:     "WFP",
		MarketShare: 9.0,
		Rank:        metrics.RankMetrics{Current: 6, Previous: 4, Change: -2, TotalAgencies: 12},
		Correlations: []metrics.CompetitorCorrelation{
			{Agency: "UNDP", R: 0.3, KeyDifference: "similar hiring profile"},
			{Agency: "UNICEF", R: 0.8, KeyDifference: "staff ratio gap of +16.0 points"},
		},
	})

	require.Len(t, n.Callouts, 1)
	assert.Equal(t, CalloutNegative, n.Callouts[0].Type)

	joined := ""
	for _, sentence := range n.Body {
		joined += sentence + "\n"
	}
	assert.NotContains(t, joined, "UNDP", "r=0.3 stays below the inclusion gate")
	assert.Contains(t, joined, "UNICEF")
}

func TestCompetitive_MarketView(t *testing.T) {
	g := testGenerator()
	n := g.Competitive(metrics.CompetitiveMetrics{
		Rank: metrics.RankMetrics{TotalAgencies: 9},
	})
	assert.Contains(t, n.Headline, "no subject selected")
	assert.Empty(t, n.Body)
}
