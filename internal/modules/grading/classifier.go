// Package grading classifies raw job-grade strings into structured grade
// analyses: seniority tier, contract type, staff category and pyramid
// position. Classification is a pure function of the input string.
package grading

import (
	"regexp"
	"strings"
)

// Tier is a grade-seniority bucket.
type Tier string

const (
	TierExecutive     Tier = "Executive"
	TierDirector      Tier = "Director"
	TierSeniorProf    Tier = "Senior Professional"
	TierMidProf       Tier = "Mid Professional"
	TierEntryProf     Tier = "Entry Professional"
	TierSeniorSupport Tier = "Senior Support"
	TierMidSupport    Tier = "Mid Support"
	TierJuniorSupport Tier = "Junior Support"
	TierConsultant    Tier = "Consultant"
	TierIntern        Tier = "Intern"
	TierVolunteer     Tier = "Volunteer"
	TierOther         Tier = "Other"
)

// StaffCategory is the binary staff / non-staff split. Service agreement
// holders count as Non-Staff even when nationally employed.
type StaffCategory string

const (
	CategoryStaff    StaffCategory = "Staff"
	CategoryNonStaff StaffCategory = "Non-Staff"
)

// Contract types surfaced on the analysis.
const (
	ContractFixedTerm        = "Fixed-term Staff"
	ContractServiceAgreement = "Service Agreement"
	ContractConsultancy      = "Consultancy"
	ContractInternship       = "Internship"
	ContractVolunteer        = "UN Volunteer"
	ContractUnknown          = "Unknown"
)

// Pyramid positions: 0 sits outside the grade hierarchy, 1 is the base,
// 6 the apex.
const (
	PyramidOutside = 0
	PyramidBase    = 1
	PyramidApex    = 6
)

// Analysis is the structured result of classifying one grade string.
type Analysis struct {
	Tier            Tier          `json:"tier"`
	ContractType    string        `json:"contract_type"`
	StaffCategory   StaffCategory `json:"staff_category"`
	SeniorityLevel  int           `json:"seniority_level"`
	PyramidPosition int           `json:"pyramid_position"`
}

// Grade patterns, ordered by descending seniority. All patterns tolerate
// an optional hyphen between letter and number ("D-2" and "D2" match the
// same rule).
var (
	reExecutive  = regexp.MustCompile(`(?i)\b(USG|ASG|DSG)\b|UNDER[- ]SECRETARY|ASSISTANT[- ]SECRETARY|EXECUTIVE DIRECTOR|SECRETARY[- ]GENERAL|\bD-?2\b`)
	reDirector   = regexp.MustCompile(`(?i)\bD-?1\b`)
	reSeniorProf = regexp.MustCompile(`(?i)\bP-?5\b|\bSB-?5\b|\bIICA-?[34]\b`)
	reMidProf    = regexp.MustCompile(`(?i)\bP-?[34]\b|\bNO-?[C-E]\b|\bSB-?4\b|\bIICA-?2\b`)
	reEntryProf  = regexp.MustCompile(`(?i)\bP-?[12]\b|\bNO-?[AB]\b|\bSB-?3\b|\bIICA-?1\b`)
	reSupport    = regexp.MustCompile(`(?i)\bGS?-?([1-7])\b`)
	reConsultant = regexp.MustCompile(`(?i)CONSULT|\bIC\b|\bIC-?\d+\b|LICA|\bPSA\b|CONTRACTOR`)
	reVolunteer  = regexp.MustCompile(`(?i)\bUNV\b|VOLUNTEER`)

	// Service agreement bands keep their professional tier but are
	// Non-Staff contracts.
	reServiceAgreement = regexp.MustCompile(`(?i)\bSB-?[1-5]\b|\bIICA-?\d\b|LICA|\bPSA\b`)
)

// Classify maps a raw grade string to its Analysis. It is total: empty
// and unrecognized input yield the Other / Non-Staff default rather than
// an error, and the same string always yields the same analysis.
func Classify(raw string) Analysis {
	grade := strings.TrimSpace(raw)
	if grade == "" {
		return defaultAnalysis()
	}

	switch {
	case reExecutive.MatchString(grade):
		return Analysis{TierExecutive, ContractFixedTerm, CategoryStaff, 10, PyramidApex}
	case reDirector.MatchString(grade):
		return Analysis{TierDirector, ContractFixedTerm, CategoryStaff, 9, 5}
	case reSeniorProf.MatchString(grade):
		return professional(grade, TierSeniorProf, 8, 4)
	case reMidProf.MatchString(grade):
		return professional(grade, TierMidProf, 6, 3)
	case reEntryProf.MatchString(grade):
		return professional(grade, TierEntryProf, 4, 2)
	}

	if m := reSupport.FindStringSubmatch(grade); m != nil {
		switch m[1] {
		case "6", "7":
			return Analysis{TierSeniorSupport, ContractFixedTerm, CategoryStaff, 3, PyramidBase}
		case "4", "5":
			return Analysis{TierMidSupport, ContractFixedTerm, CategoryStaff, 2, PyramidBase}
		default:
			return Analysis{TierJuniorSupport, ContractFixedTerm, CategoryStaff, 1, PyramidBase}
		}
	}

	if isIntern(grade) {
		return Analysis{TierIntern, ContractInternship, CategoryNonStaff, 0, PyramidOutside}
	}

	switch {
	case reVolunteer.MatchString(grade):
		return Analysis{TierVolunteer, ContractVolunteer, CategoryNonStaff, 1, PyramidOutside}
	case reConsultant.MatchString(grade):
		contract := ContractConsultancy
		if reServiceAgreement.MatchString(grade) {
			contract = ContractServiceAgreement
		}
		return Analysis{TierConsultant, contract, CategoryNonStaff, 2, PyramidOutside}
	}

	return defaultAnalysis()
}

// professional resolves the contract split for professional-tier bands:
// P and NO grades are staff, SB/IICA bands are service agreements.
func professional(grade string, tier Tier, level, pyramid int) Analysis {
	if reServiceAgreement.MatchString(grade) {
		return Analysis{tier, ContractServiceAgreement, CategoryNonStaff, level, pyramid}
	}
	return Analysis{tier, ContractFixedTerm, CategoryStaff, level, pyramid}
}

// isIntern matches "intern"/"internship" while rejecting the "intern" in
// "international".
func isIntern(grade string) bool {
	g := strings.ToLower(grade)
	stripped := strings.ReplaceAll(g, "internation", "")
	return strings.Contains(stripped, "intern")
}

func defaultAnalysis() Analysis {
	return Analysis{TierOther, ContractUnknown, CategoryNonStaff, 0, PyramidOutside}
}

// ConsolidateTier collapses the three support sub-tiers into a single
// "Support" display label. Other tiers pass through unchanged.
func ConsolidateTier(t Tier) string {
	switch t {
	case TierSeniorSupport, TierMidSupport, TierJuniorSupport:
		return "Support"
	}
	return string(t)
}

// IsSenior reports whether the analysis sits at or above the P5 band.
func (a Analysis) IsSenior() bool {
	return a.SeniorityLevel >= 8
}

// IsJunior reports whether the analysis sits at or below the entry
// professional band while still being inside the hierarchy.
func (a Analysis) IsJunior() bool {
	return a.PyramidPosition > 0 && a.SeniorityLevel <= 4
}

// AllTiers lists every tier in descending seniority order, used by the
// metrics engine for stable iteration.
func AllTiers() []Tier {
	return []Tier{
		TierExecutive, TierDirector, TierSeniorProf, TierMidProf,
		TierEntryProf, TierSeniorSupport, TierMidSupport, TierJuniorSupport,
		TierConsultant, TierIntern, TierVolunteer, TierOther,
	}
}
