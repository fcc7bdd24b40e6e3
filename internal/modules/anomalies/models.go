// Package anomalies detects statistically unusual hiring signals across
// six detection families and ranks them by severity.
package anomalies

// Type is the detection family a signal came from.
type Type string

const (
	TypeVolume           Type = "volume"
	TypePattern          Type = "pattern"
	TypeCompetitor       Type = "competitor"
	TypeCrossDimensional Type = "cross-dimensional"
	TypeTiming           Type = "timing"
	TypeGap              Type = "gap"
)

// Severity orders signals in the output. Low severity exists but is not
// treated as critical anywhere.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// severityRank drives the output ordering: high first, then medium,
// then low. Ties preserve detection order.
func severityRank(s Severity) int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	}
	return 2
}

// Signal is one detected anomaly. Signals carry no mutable state and no
// references back into the input records.
type Signal struct {
	ID          string   `json:"id"`
	Type        Type     `json:"type"`
	Severity    Severity `json:"severity"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Metric      string   `json:"metric"`
	Context     string   `json:"context"`
}
