// Package domain holds the core data model for the hiring-intelligence
// pipeline. Records are supplied by an external loading layer and are
// read-only inside the analytics core.
package domain

import (
	"fmt"
	"strings"
)

// TimeRange selects the duration of the current analysis window.
type TimeRange string

const (
	Range4Weeks   TimeRange = "4w"
	Range8Weeks   TimeRange = "8w"
	Range3Months  TimeRange = "3m"
	Range6Months  TimeRange = "6m"
	Range12Months TimeRange = "12m"
)

// Label returns the human-readable period label used in headlines.
func (r TimeRange) Label() string {
	switch r {
	case Range4Weeks:
		return "the last 4 weeks"
	case Range8Weeks:
		return "the last 8 weeks"
	case Range3Months:
		return "the last 3 months"
	case Range6Months:
		return "the last 6 months"
	case Range12Months:
		return "the last 12 months"
	}
	return string(r)
}

// Valid reports whether the time range is one of the recognized values.
func (r TimeRange) Valid() bool {
	switch r {
	case Range4Weeks, Range8Weeks, Range3Months, Range6Months, Range12Months:
		return true
	}
	return false
}

// ParseTimeRange validates a caller-supplied range selector.
func ParseTimeRange(s string) (TimeRange, error) {
	r := TimeRange(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("unknown time range %q (want 4w, 8w, 3m, 6m or 12m)", s)
	}
	return r, nil
}

// JobRecord is one normalized job posting. PostingDate stays a string
// here; the period resolver parses it and silently drops records whose
// dates cannot be parsed. Nullable numeric requirements use pointers so
// that "unknown" is distinguishable from zero and can be excluded from
// averages.
type JobRecord struct {
	ID                    string   `json:"id"`
	Title                 string   `json:"title"`
	PrimaryCategory       string   `json:"primary_category"`
	UpGrade               string   `json:"up_grade"`
	PostingDate           string   `json:"posting_date"`
	ApplicationWindowDays int      `json:"application_window_days"`
	DutyStation           string   `json:"duty_station"`
	DutyCountry           string   `json:"duty_country"`
	DutyContinent         string   `json:"duty_continent"`
	GeographicRegion      string   `json:"geographic_region"`
	LocationType          string   `json:"location_type"`
	ShortAgency           string   `json:"short_agency"`
	LongAgency            string   `json:"long_agency"`
	Archived              bool     `json:"archived"`
	IsActive              bool     `json:"is_active"`
	IsExpired             bool     `json:"is_expired"`
	IsConflictZone        bool     `json:"is_conflict_zone"`
	MasterMinExp          *float64 `json:"master_min_exp"`
	BachelorMinExp        *float64 `json:"bachelor_min_exp"`

	// Classification-quality metadata, read but never mutated here.
	ClassificationConfidence float64  `json:"classification_confidence"`
	IsAmbiguousCategory      bool     `json:"is_ambiguous_category"`
	EmergingTermsFound       []string `json:"emerging_terms_found"`
	HybridCategoryCandidate  string   `json:"hybrid_category_candidate"`
}

// Agency returns the record's subject identity, preferring the short
// agency code and falling back to the long name. Resolved here once so
// downstream code never re-implements the fallback.
func (r JobRecord) Agency() string {
	if r.ShortAgency != "" {
		return r.ShortAgency
	}
	return r.LongAgency
}

// CoerceArchived is the canonical truthiness rule for the archived field
// as it arrives from upstream loaders, which disagree on representation
// (bool, 0/1, "true"/"yes"). Anything other than an explicit affirmative
// is treated as not archived.
func CoerceArchived(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case int:
		return t != 0
	case float64:
		return t != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "1", "true", "yes", "y":
			return true
		}
	}
	return false
}
