// Package analysis orchestrates one full run: resolve windows, compute
// the five metric groups, detect anomalies, roll up the executive
// summary and render the narratives.
package analysis

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/orghire/pulse/internal/domain"
	"github.com/orghire/pulse/internal/modules/anomalies"
	"github.com/orghire/pulse/internal/modules/metrics"
	"github.com/orghire/pulse/internal/modules/narrative"
	"github.com/orghire/pulse/internal/modules/periods"
)

// Period describes the analyzed window in the report envelope.
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label"`
}

// Narratives holds one rendered narrative per metric group.
type Narratives struct {
	Volume      narrative.Narrative `json:"volume"`
	Workforce   narrative.Narrative `json:"workforce"`
	Geographic  narrative.Narrative `json:"geographic"`
	Category    narrative.Narrative `json:"category"`
	Competitive narrative.Narrative `json:"competitive"`
}

// Report is the full output of one analysis run. Plain data, fully
// JSON-serializable, no references back into the input records.
type Report struct {
	Subject     string                     `json:"subject,omitempty"`
	TimeRange   string                     `json:"time_range"`
	Period      Period                     `json:"period"`
	Volume      metrics.VolumeMetrics      `json:"volume"`
	Workforce   metrics.WorkforceMetrics   `json:"workforce"`
	Geographic  metrics.GeographicMetrics  `json:"geographic"`
	Category    metrics.CategoryMetrics    `json:"category"`
	Competitive metrics.CompetitiveMetrics `json:"competitive"`
	Summary     metrics.ExecutiveSummary   `json:"summary"`
	Anomalies   []anomalies.Signal         `json:"anomalies"`
	Narratives  Narratives                 `json:"narratives"`
}

// Service wires the pipeline stages together. Stateless after
// construction; safe for concurrent Run calls.
type Service struct {
	log       zerolog.Logger
	engine    *metrics.Engine
	detector  *anomalies.Detector
	generator *narrative.Generator
}

// NewService builds an analysis service around the static lookups.
func NewService(log zerolog.Logger, lookups metrics.Lookups) *Service {
	serviceLog := log.With().Str("component", "analysis").Logger()
	return &Service{
		log:       serviceLog,
		engine:    metrics.NewEngine(log, lookups),
		detector:  anomalies.NewDetector(log),
		generator: narrative.NewGenerator(log),
	}
}

// Run executes one full analysis over a record snapshot. The clock is
// injected so a fixed now always produces an identical report.
func (s *Service) Run(records []domain.JobRecord, timeRange domain.TimeRange, subject string, now time.Time) (*Report, error) {
	started := time.Now()

	w, err := periods.Resolve(records, timeRange, subject, now)
	if err != nil {
		return nil, fmt.Errorf("resolving windows: %w", err)
	}

	// The groups are pure functions of the windows, so they fan out
	// safely. None of them can fail; the errgroup keeps the join simple.
	var (
		volume      metrics.VolumeMetrics
		workforce   metrics.WorkforceMetrics
		geographic  metrics.GeographicMetrics
		category    metrics.CategoryMetrics
		competitive metrics.CompetitiveMetrics
	)
	var g errgroup.Group
	g.Go(func() error { volume = s.engine.Volume(w); return nil })
	g.Go(func() error { workforce = s.engine.Workforce(w); return nil })
	g.Go(func() error { geographic = s.engine.Geographic(w); return nil })
	g.Go(func() error { category = s.engine.Category(w); return nil })
	g.Go(func() error { competitive = s.engine.Competitive(w); return nil })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	signals := s.detector.Detect(w)
	summary := s.engine.Summary(w, volume, workforce, category, geographic, competitive, len(signals))

	report := &Report{
		Subject:   subject,
		TimeRange: string(timeRange),
		Period: Period{
			Start: w.Current.Start.Format("2006-01-02"),
			End:   w.Current.End.Format("2006-01-02"),
			Label: w.Current.Label,
		},
		Volume:      volume,
		Workforce:   workforce,
		Geographic:  geographic,
		Category:    category,
		Competitive: competitive,
		Summary:     summary,
		Anomalies:   signals,
		Narratives: Narratives{
			Volume:      s.generator.Volume(subject, w.Current.Label, volume),
			Workforce:   s.generator.Workforce(subject, workforce),
			Geographic:  s.generator.Geographic(subject, geographic),
			Category:    s.generator.Category(subject, category),
			Competitive: s.generator.Competitive(competitive),
		},
	}

	s.log.Info().
		Str("range", string(timeRange)).
		Str("subject", subject).
		Int("records", len(records)).
		Int("anomalies", len(signals)).
		Dur("took", time.Since(started)).
		Msg("analysis run complete")

	return report, nil
}
