package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/orghire/pulse/internal/domain"
	"github.com/orghire/pulse/internal/modules/periods"
)

var testNow = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

func testEngine() *Engine {
	return NewEngine(zerolog.Nop(), Lookups{
		PeerGroups: map[string][]string{
			"WFP": {"UNDP", "UNICEF", "UNHCR"},
		},
		CategoryNames: map[string]string{
			"digital_technology": "Digital & Technology",
		},
	})
}

// job builds a posting n days before the test clock.
func job(agency, category, grade, station string, daysAgo int) domain.JobRecord {
	return domain.JobRecord{
		ID:              fmt.Sprintf("%s-%s-%d", agency, category, daysAgo),
		ShortAgency:     agency,
		PrimaryCategory: category,
		UpGrade:         grade,
		DutyStation:     station,
		PostingDate:     testNow.AddDate(0, 0, -daysAgo).Format("2006-01-02"),
	}
}

// repeat clones a record n times with distinct ids.
func repeat(n int, base domain.JobRecord) []domain.JobRecord {
	out := make([]domain.JobRecord, n)
	for i := range out {
		r := base
		r.ID = fmt.Sprintf("%s-%d", base.ID, i)
		out[i] = r
	}
	return out
}

// makeWindows assembles a Windows value the way the resolver would for a
// 4-week range, from full market slices.
func makeWindows(subject string, current, previous, baseline []domain.JobRecord) *periods.Windows {
	filter := func(recs []domain.JobRecord) []domain.JobRecord {
		if subject == "" {
			return append([]domain.JobRecord(nil), recs...)
		}
		var out []domain.JobRecord
		for _, r := range recs {
			if r.Agency() == subject {
				out = append(out, r)
			}
		}
		return out
	}

	curStart := testNow.AddDate(0, 0, -28)
	base := append(append([]domain.JobRecord{}, baseline...), append(current, previous...)...)
	return &periods.Windows{
		Current:   periods.Window{Start: curStart, End: testNow, Label: domain.Range4Weeks.Label(), Records: filter(current), Market: current},
		Previous:  periods.Window{Start: curStart.AddDate(0, 0, -28), End: curStart, Label: "the prior period", Records: filter(previous), Market: previous},
		Baseline:  periods.Window{Start: testNow.AddDate(-1, 0, 0), End: testNow, Label: "the last 12 months", Records: filter(base), Market: base},
		TimeRange: domain.Range4Weeks,
		Subject:   subject,
	}
}

func many(recs ...[]domain.JobRecord) []domain.JobRecord {
	var out []domain.JobRecord
	for _, r := range recs {
		out = append(out, r...)
	}
	return out
}

func TestMetrics_EmptyInputNeverPanics(t *testing.T) {
	e := testEngine()
	w := makeWindows("", nil, nil, nil)

	vol := e.Volume(w)
	if vol.ChangePct != 0 || vol.WeeklyVelocity != 0 {
		t.Fatalf("empty input must yield zeroes, got %+v", vol)
	}
	wf := e.Workforce(w)
	if wf.StaffRatio != 0 || wf.MarketStaffRatio != 0 {
		t.Fatalf("empty staff ratios must be 0, got %+v", wf)
	}
	geo := e.Geographic(w)
	if geo.FieldRatio != 0 {
		t.Fatalf("empty field ratio must be 0, got %v", geo.FieldRatio)
	}
	cat := e.Category(w)
	if cat.Herfindahl != 0 || cat.Top3Share != 0 {
		t.Fatalf("empty concentration must be 0, got %+v", cat)
	}
}
