// Package metrics computes the five metric groups and the executive
// summary from period-filtered record sets. Every group method is a pure
// function of its windows; the engine carries only the logger and the
// static lookup tables and is safe to share across runs.
package metrics

import (
	"github.com/rs/zerolog"
)

// Lookups are the static tables the engine reads but does not own: the
// peer-group map (subject -> peer agencies) and the category display
// dictionary (category id -> display name).
type Lookups struct {
	PeerGroups    map[string][]string
	CategoryNames map[string]string
}

// Engine computes metric groups. Stateless after construction.
type Engine struct {
	log     zerolog.Logger
	lookups Lookups
}

// NewEngine builds a metrics engine.
func NewEngine(log zerolog.Logger, lookups Lookups) *Engine {
	return &Engine{
		log:     log.With().Str("component", "metrics").Logger(),
		lookups: lookups,
	}
}

// displayName resolves a category id through the display dictionary,
// falling back to the raw id.
func (e *Engine) displayName(category string) string {
	if name, ok := e.lookups.CategoryNames[category]; ok {
		return name
	}
	return category
}
