package metrics

// Plain aggregate outputs of the metrics engine. Every struct here is a
// value computed once per analysis run, JSON-serializable, and never
// mutated after construction.

// Volume trend labels.
const (
	TrendAccelerating = "accelerating"
	TrendDecelerating = "decelerating"
	TrendSteady       = "steady"
)

// WeekCount is one bucket of the weekly posting histogram.
type WeekCount struct {
	WeekStart string `json:"week_start"`
	Count     int    `json:"count"`
}

// VolumeMetrics covers posting counts and velocity.
type VolumeMetrics struct {
	Total                  int         `json:"total"`
	PreviousTotal          int         `json:"previous_total"`
	ChangePct              float64     `json:"change_pct"`
	WeeklyVelocity         float64     `json:"weekly_velocity"`
	BaselineWeeklyVelocity float64     `json:"baseline_weekly_velocity"`
	VelocityChangePct      float64     `json:"velocity_change_pct"`
	Weekly                 []WeekCount `json:"weekly"`
	PeakWeek               WeekCount   `json:"peak_week"`
	Trend                  string      `json:"trend"`
}

// TierShare is one grade tier's slice of the current window.
type TierShare struct {
	Tier  string  `json:"tier"`
	Count int     `json:"count"`
	Share float64 `json:"share"`
	Delta float64 `json:"delta"`
}

// CategoryStaffRatio compares a category's staff mix against the market
// and the largest competitor in that category.
type CategoryStaffRatio struct {
	Category                string  `json:"category"`
	Count                   int     `json:"count"`
	StaffRatio              float64 `json:"staff_ratio"`
	MarketStaffRatio        float64 `json:"market_staff_ratio"`
	TopCompetitor           string  `json:"top_competitor"`
	TopCompetitorStaffRatio float64 `json:"top_competitor_staff_ratio"`
}

// TierShift flags a tier whose current share deviates sharply from its
// 12-month baseline share.
type TierShift struct {
	Tier              string  `json:"tier"`
	CurrentShare      float64 `json:"current_share"`
	BaselineShare     float64 `json:"baseline_share"`
	RelativeDeviation float64 `json:"relative_deviation"`
}

// WorkforceMetrics covers staff composition.
type WorkforceMetrics struct {
	StaffRatio          float64              `json:"staff_ratio"`
	PreviousStaffRatio  float64              `json:"previous_staff_ratio"`
	MarketStaffRatio    float64              `json:"market_staff_ratio"`
	Tiers               []TierShare          `json:"tiers"`
	CategoryStaffRatios []CategoryStaffRatio `json:"category_staff_ratios"`
	GradeAnomalies      []TierShift          `json:"grade_anomalies"`
}

// LocationTypeShare is one location type's slice of the current window.
type LocationTypeShare struct {
	Type  string  `json:"type"`
	Count int     `json:"count"`
	Share float64 `json:"share"`
	Delta float64 `json:"delta"`
}

// LocationCount is one duty station with its period-over-period change.
type LocationCount struct {
	Station string `json:"station"`
	Count   int    `json:"count"`
	Change  int    `json:"change"`
}

// ConflictZoneMetrics summarizes hiring in conflict-zone stations.
type ConflictZoneMetrics struct {
	Count            int     `json:"count"`
	Share            float64 `json:"share"`
	StaffRatio       float64 `json:"staff_ratio"`
	MarketStaffRatio float64 `json:"market_staff_ratio"`
}

// CategoryFieldRatio compares field exposure per category.
type CategoryFieldRatio struct {
	Category         string  `json:"category"`
	FieldRatio       float64 `json:"field_ratio"`
	MarketFieldRatio float64 `json:"market_field_ratio"`
}

// LocationSeniority reports the junior/senior split per location type.
type LocationSeniority struct {
	Type        string  `json:"type"`
	JuniorCount int     `json:"junior_count"`
	SeniorCount int     `json:"senior_count"`
	Ratio       float64 `json:"ratio"`
}

// RegionCount is one macro-region's slice of the current window.
type RegionCount struct {
	Region string  `json:"region"`
	Count  int     `json:"count"`
	Share  float64 `json:"share"`
}

// GeographicMetrics covers where hiring happens.
type GeographicMetrics struct {
	LocationTypes       []LocationTypeShare  `json:"location_types"`
	FieldRatio          float64              `json:"field_ratio"`
	TopLocations        []LocationCount      `json:"top_locations"`
	NewLocations        []string             `json:"new_locations"`
	ConflictZone        ConflictZoneMetrics  `json:"conflict_zone"`
	CategoryFieldRatios []CategoryFieldRatio `json:"category_field_ratios"`
	SeniorityByLocation []LocationSeniority  `json:"seniority_by_location"`
	Regions             []RegionCount        `json:"regions"`
}

// CategoryStat is one category with its market position.
type CategoryStat struct {
	Category      string  `json:"category"`
	DisplayName   string  `json:"display_name"`
	Count         int     `json:"count"`
	Share         float64 `json:"share"`
	MarketRank    int     `json:"market_rank"`
	TopCompetitor string  `json:"top_competitor"`
}

// CategoryChange is one category's period-over-period movement.
type CategoryChange struct {
	Category  string  `json:"category"`
	Current   int     `json:"current"`
	Previous  int     `json:"previous"`
	Change    int     `json:"change"`
	ChangePct float64 `json:"change_pct"`
}

// CategoryRequirements compares hiring requirements per category.
type CategoryRequirements struct {
	Category            string  `json:"category"`
	AvgMinExp           float64 `json:"avg_min_exp"`
	MarketAvgMinExp     float64 `json:"market_avg_min_exp"`
	AvgWindowDays       float64 `json:"avg_window_days"`
	MarketAvgWindowDays float64 `json:"market_avg_window_days"`
}

// CategoryMetrics covers what gets hired.
type CategoryMetrics struct {
	TopCategories  []CategoryStat         `json:"top_categories"`
	FastestGrowing []CategoryChange       `json:"fastest_growing"`
	Declining      []CategoryChange       `json:"declining"`
	Herfindahl     float64                `json:"herfindahl"`
	Top3Share      float64                `json:"top3_share"`
	Requirements   []CategoryRequirements `json:"requirements"`
}

// RankMetrics is the subject's position in the agency ranking.
type RankMetrics struct {
	Current       int `json:"current"`
	Previous      int `json:"previous"`
	Change        int `json:"change"`
	TotalAgencies int `json:"total_agencies"`
}

// PeerStat is one peer agency's current-window footprint.
type PeerStat struct {
	Agency string  `json:"agency"`
	Count  int     `json:"count"`
	Share  float64 `json:"share"`
}

// CompetitorCorrelation reports how closely a peer's category mix tracks
// the subject's.
type CompetitorCorrelation struct {
	Agency        string  `json:"agency"`
	R             float64 `json:"r"`
	KeyDifference string  `json:"key_difference"`
}

// CategoryPosition is the subject's standing inside one category.
type CategoryPosition struct {
	Category    string  `json:"category"`
	Rank        int     `json:"rank"`
	Share       float64 `json:"share"`
	Leader      string  `json:"leader"`
	LeaderShare float64 `json:"leader_share"`
}

// CompetitorMove is a competitor pushing into a category it barely
// touched in the previous period.
type CompetitorMove struct {
	Agency   string `json:"agency"`
	Category string `json:"category"`
	Current  int    `json:"current"`
	Previous int    `json:"previous"`
}

// CompetitiveMetrics covers the subject's market position. The market
// view (no subject) is degenerate: 100% share, rank 1, empty tables.
type CompetitiveMetrics struct {
	Subject            string                  `json:"subject"`
	MarketShare        float64                 `json:"market_share"`
	Rank               RankMetrics             `json:"rank"`
	Peers              []PeerStat              `json:"peers"`
	Correlations       []CompetitorCorrelation `json:"correlations"`
	CategoryPositions  []CategoryPosition      `json:"category_positions"`
	NewCompetitorMoves []CompetitorMove        `json:"new_competitor_moves"`
}

// ExecutiveSummary rolls the groups up into headline facts.
type ExecutiveSummary struct {
	Headline       string   `json:"headline"`
	KeyPoints      []string `json:"key_points"`
	TopShift       string   `json:"top_shift"`
	RankChangeNote string   `json:"rank_change_note"`
	AnomalyCount   int      `json:"anomaly_count"`
	Total          int      `json:"total"`
	ChangePct      float64  `json:"change_pct"`
}
