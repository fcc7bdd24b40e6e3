package periods

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orghire/pulse/internal/domain"
)

var testNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func rec(id, agency, date string) domain.JobRecord {
	return domain.JobRecord{ID: id, ShortAgency: agency, PostingDate: date}
}

func TestResolve_ContiguousNonOverlapping(t *testing.T) {
	for _, tr := range []domain.TimeRange{
		domain.Range4Weeks, domain.Range8Weeks, domain.Range3Months,
		domain.Range6Months, domain.Range12Months,
	} {
		w, err := Resolve([]domain.JobRecord{}, tr, "", testNow)
		require.NoError(t, err)
		assert.Equal(t, w.Current.Start, w.Previous.End, "range %s: previous must end where current starts", tr)
		assert.True(t, w.Previous.Start.Before(w.Previous.End))
		assert.Equal(t, testNow, w.Current.End)
		assert.Equal(t, testNow.AddDate(-1, 0, 0), w.Baseline.Start, "baseline is always 12 months")
	}
}

func TestResolve_AssignsByPostingDate(t *testing.T) {
	records := []domain.JobRecord{
		rec("cur", "WFP", "2026-08-20"),
		rec("prev", "WFP", "2026-07-15"),
		rec("old", "WFP", "2025-10-01"),
		rec("ancient", "WFP", "2024-01-01"),
	}
	w, err := Resolve(records, domain.Range4Weeks, "", testNow)
	require.NoError(t, err)

	assert.Len(t, w.Current.Records, 1)
	assert.Equal(t, "cur", w.Current.Records[0].ID)
	assert.Len(t, w.Previous.Records, 1)
	assert.Equal(t, "prev", w.Previous.Records[0].ID)
	// Baseline spans 12 months and includes current, previous and old
	assert.Len(t, w.Baseline.Records, 3)
}

func TestResolve_MalformedDatesDroppedSilently(t *testing.T) {
	records := []domain.JobRecord{
		rec("good", "WFP", "2026-08-20"),
		rec("bad", "WFP", "not-a-date"),
		rec("empty", "WFP", ""),
	}
	w, err := Resolve(records, domain.Range4Weeks, "", testNow)
	require.NoError(t, err)
	assert.Len(t, w.Current.Records, 1)
	assert.Len(t, w.Baseline.Records, 1)
}

func TestResolve_SubjectSplit(t *testing.T) {
	records := []domain.JobRecord{
		rec("a", "WFP", "2026-08-20"),
		rec("b", "UNDP", "2026-08-21"),
		rec("c", "UNICEF", "2026-08-22"),
	}
	w, err := Resolve(records, domain.Range4Weeks, "WFP", testNow)
	require.NoError(t, err)

	assert.Len(t, w.Current.Records, 1, "subject subset filters by agency")
	assert.Len(t, w.Current.Market, 3, "market subset stays unfiltered")
}

func TestResolve_CallerContractViolations(t *testing.T) {
	_, err := Resolve(nil, domain.Range4Weeks, "", testNow)
	assert.Error(t, err, "nil record list is a caller bug")

	_, err = Resolve([]domain.JobRecord{}, domain.TimeRange("90d"), "", testNow)
	assert.Error(t, err, "unknown time range is a caller bug")
}

func TestParseDate_Layouts(t *testing.T) {
	for _, s := range []string{
		"2026-08-20",
		"2026-08-20T10:30:00Z",
		"2026-08-20 10:30:00",
	} {
		_, ok := ParseDate(s)
		assert.True(t, ok, "layout %q", s)
	}
	_, ok := ParseDate("20/08/2026")
	assert.False(t, ok)
}

func TestWindowWeeks(t *testing.T) {
	w := Window{Start: testNow.AddDate(0, 0, -28), End: testNow}
	assert.Equal(t, 4, w.Weeks())
	w = Window{Start: testNow.AddDate(0, 0, -30), End: testNow}
	assert.Equal(t, 5, w.Weeks(), "Partial weeks round up")
}
