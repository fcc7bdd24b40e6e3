package narrative

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Word-choice ladder for percentage changes. Fixed buckets, no
// interpolation, so the same inputs always render the same prose.
const (
	steadyPct      = 3.0
	moderatePct    = 10.0
	significantPct = 25.0
)

// Inclusion gates: facts below these magnitudes stay out of the prose.
const (
	staffShiftMinPts  = 2.0
	correlationMinAbs = 0.5
	surgeCalloutPct   = 20.0
)

// Generator renders one Narrative per metric group. Stateless after
// construction.
type Generator struct {
	log zerolog.Logger
}

// NewGenerator builds a narrative generator.
func NewGenerator(log zerolog.Logger) *Generator {
	return &Generator{log: log.With().Str("component", "narrative").Logger()}
}

// changeVerb maps a signed percentage change onto the verb ladder.
func changeVerb(pct float64) string {
	abs := pct
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs < steadyPct:
		return "held steady"
	case abs < moderatePct && pct > 0:
		return "increased"
	case abs < moderatePct:
		return "decreased"
	case abs < significantPct && pct > 0:
		return "grew significantly"
	case abs < significantPct:
		return "declined notably"
	case pct > 0:
		return "surged"
	default:
		return "dropped sharply"
	}
}

// pctPhrase renders a change verb with its magnitude, e.g.
// "grew significantly (+18%)". Steady changes carry no number.
func pctPhrase(pct float64) string {
	verb := changeVerb(pct)
	if verb == "held steady" {
		return verb
	}
	return fmt.Sprintf("%s (%+.0f%%)", verb, pct)
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}
