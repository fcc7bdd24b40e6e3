package narrative

// CalloutType classifies a badge.
type CalloutType string

const (
	CalloutPositive CalloutType = "positive"
	CalloutNegative CalloutType = "negative"
	CalloutNeutral  CalloutType = "neutral"
	CalloutWarning  CalloutType = "warning"
	CalloutInfo     CalloutType = "info"
)

// Callout is a short badge derived directly from metric values,
// independent of the body sentences.
type Callout struct {
	Type CalloutType `json:"type"`
	Text string      `json:"text"`
}

// Narrative is the rendered prose for one metric group. Purely derived;
// regenerated on every run.
type Narrative struct {
	Headline   string    `json:"headline"`
	Body       []string  `json:"body"`
	Highlights []string  `json:"highlights"`
	Callouts   []Callout `json:"callouts"`
}
