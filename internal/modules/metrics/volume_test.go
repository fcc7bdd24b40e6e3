package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orghire/pulse/internal/domain"
)

func TestVolume_ChangeAndVelocity(t *testing.T) {
	e := testEngine()
	current := repeat(120, job("WFP", "logistics", "P-3", "Rome", 10))
	previous := repeat(100, job("WFP", "logistics", "P-3", "Rome", 40))
	w := makeWindows("", current, previous, nil)

	vol := e.Volume(w)
	assert.Equal(t, 120, vol.Total)
	assert.Equal(t, 100, vol.PreviousTotal)
	assert.InDelta(t, 20.0, vol.ChangePct, 1e-9)
	assert.InDelta(t, 30.0, vol.WeeklyVelocity, 1e-9, "120 postings over 4 weeks")
}

func TestVolume_TrendClassification(t *testing.T) {
	e := testEngine()

	// Heavily back-loaded window: 5 early, 20 late
	early := repeat(5, job("WFP", "health", "P-2", "Juba", 25))
	late := repeat(20, job("WFP", "health", "P-2", "Juba", 3))
	w := makeWindows("", many(early, late), nil, nil)
	assert.Equal(t, TrendAccelerating, e.Volume(w).Trend)

	// Front-loaded window decelerates
	w = makeWindows("", many(repeat(20, job("WFP", "health", "P-2", "Juba", 25)), repeat(5, job("WFP", "health", "P-2", "Juba", 3))), nil, nil)
	assert.Equal(t, TrendDecelerating, e.Volume(w).Trend)

	// Balanced halves stay steady
	w = makeWindows("", many(repeat(10, job("WFP", "health", "P-2", "Juba", 25)), repeat(10, job("WFP", "health", "P-2", "Juba", 3))), nil, nil)
	assert.Equal(t, TrendSteady, e.Volume(w).Trend)
}

func TestVolume_PeakWeekFirstWinsTies(t *testing.T) {
	e := testEngine()
	// Week 0 (days 28-22 ago) and week 3 (days 7-1 ago) both get 5 postings
	w := makeWindows("", many(
		repeat(5, job("WFP", "health", "P-2", "Juba", 26)),
		repeat(5, job("WFP", "health", "P-2", "Juba", 3)),
	), nil, nil)

	vol := e.Volume(w)
	assert.Equal(t, 5, vol.PeakWeek.Count)
	assert.Equal(t, vol.Weekly[0].WeekStart, vol.PeakWeek.WeekStart, "Earliest week wins the tie")
}

func TestVolume_WeeklyHistogramBuckets(t *testing.T) {
	e := testEngine()
	w := makeWindows("", []domain.JobRecord{
		job("WFP", "health", "P-2", "Juba", 26), // week 0
		job("WFP", "health", "P-2", "Juba", 15), // week 1
		job("WFP", "health", "P-2", "Juba", 15), // week 1
		job("WFP", "health", "P-2", "Juba", 2),  // week 3
	}, nil, nil)

	vol := e.Volume(w)
	assert.Len(t, vol.Weekly, 4)
	assert.Equal(t, 1, vol.Weekly[0].Count)
	assert.Equal(t, 2, vol.Weekly[1].Count)
	assert.Equal(t, 0, vol.Weekly[2].Count)
	assert.Equal(t, 1, vol.Weekly[3].Count)
}
