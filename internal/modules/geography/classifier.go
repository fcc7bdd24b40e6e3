// Package geography classifies duty stations into location types,
// macro-regions and risk flags using fixed lookup lists.
package geography

import (
	"strings"
)

// LocationType is the mutually exclusive station category. Every record
// resolves to exactly one of the four types; there is no unknown.
type LocationType string

const (
	LocationHeadquarters LocationType = "Headquarters"
	LocationRegionalHub  LocationType = "Regional Hub"
	LocationField        LocationType = "Field"
	LocationHomeBased    LocationType = "Home-based"
)

// Region is the normalized macro-region.
type Region string

const (
	RegionAfrica       Region = "Africa"
	RegionAsiaPacific  Region = "Asia-Pacific"
	RegionEurope       Region = "Europe"
	RegionLatinAmerica Region = "Latin America & Caribbean"
	RegionNorthAmerica Region = "North America"
	RegionArabStates   Region = "Arab States"
	RegionOther        Region = "Other"
)

// Analysis is the structured result for one (station, country, continent)
// triple.
type Analysis struct {
	LocationType   LocationType `json:"location_type"`
	Region         Region       `json:"region"`
	IsDACCountry   bool         `json:"is_dac_country"`
	IsConflictZone bool         `json:"is_conflict_zone"`
}

// Lookup lists. Matching is case-insensitive substring matching, and the
// precedence is strict: home-based keywords, then HQ cities, then
// regional hubs, then DAC countries, then Field.
var (
	homeBasedKeywords = []string{
		"home-based", "home based", "homebased", "remote", "telecommut",
		"work from home", "anywhere",
	}

	headquartersCities = []string{
		"new york", "geneva", "vienna", "rome", "paris", "london",
		"washington", "copenhagen", "bonn", "nairobi", "madrid",
		"montreal", "the hague", "brussels", "tokyo", "bern",
	}

	regionalHubCities = []string{
		"bangkok", "dakar", "johannesburg", "pretoria", "amman", "cairo",
		"panama city", "istanbul", "budapest", "kuala lumpur",
		"addis ababa", "santiago", "beirut", "suva", "almaty", "dubai",
	}

	dacCountries = []string{
		"united states", "united kingdom", "germany", "france", "japan",
		"canada", "australia", "netherlands", "sweden", "norway",
		"denmark", "switzerland", "italy", "spain", "belgium", "austria",
		"finland", "ireland", "luxembourg", "new zealand", "korea",
		"portugal", "greece", "iceland",
	}

	conflictZoneCountries = []string{
		"afghanistan", "yemen", "syria", "somalia", "south sudan",
		"sudan", "mali", "libya", "iraq", "ukraine",
		"democratic republic of the congo", "dr congo", "drc",
		"central african republic", "myanmar", "haiti", "burkina faso",
		"niger", "chad", "ethiopia",
	}
)

// Classify maps a duty-station triple to its Analysis. It is total and
// deterministic; the conflict-zone flag is derived from the country list
// independently of the location type.
func Classify(station, country, continent string) Analysis {
	st := strings.ToLower(strings.TrimSpace(station))
	co := strings.ToLower(strings.TrimSpace(country))

	return Analysis{
		LocationType:   classifyType(st, co),
		Region:         NormalizeRegion(continent),
		IsDACCountry:   matchesAny(co, dacCountries),
		IsConflictZone: matchesAny(co, conflictZoneCountries) || matchesAny(st, conflictZoneCountries),
	}
}

// classifyType applies the fixed precedence chain. DAC-country postings
// outside a known HQ or hub are never "Field"; they classify as
// Headquarters-type duty stations for pyramid purposes.
func classifyType(station, country string) LocationType {
	switch {
	case matchesAny(station, homeBasedKeywords):
		return LocationHomeBased
	case matchesAny(station, headquartersCities):
		return LocationHeadquarters
	case matchesAny(station, regionalHubCities):
		return LocationRegionalHub
	case matchesAny(country, dacCountries):
		return LocationHeadquarters
	}
	return LocationField
}

// NormalizeRegion folds freeform continent strings into the fixed region
// set. Unrecognized input maps to Other, never an error.
func NormalizeRegion(continent string) Region {
	c := strings.ToLower(strings.TrimSpace(continent))
	switch {
	case c == "":
		return RegionOther
	case strings.Contains(c, "middle east") || strings.Contains(c, "arab") || strings.Contains(c, "western asia"):
		return RegionArabStates
	case strings.Contains(c, "africa"):
		return RegionAfrica
	case strings.Contains(c, "asia") || strings.Contains(c, "oceania") || strings.Contains(c, "pacific"):
		return RegionAsiaPacific
	case strings.Contains(c, "europe"):
		return RegionEurope
	case strings.Contains(c, "latin") || strings.Contains(c, "south america") || strings.Contains(c, "caribbean") || strings.Contains(c, "central america"):
		return RegionLatinAmerica
	case strings.Contains(c, "north america"):
		return RegionNorthAmerica
	}
	return RegionOther
}

func matchesAny(value string, list []string) bool {
	if value == "" {
		return false
	}
	for _, entry := range list {
		if strings.Contains(value, entry) {
			return true
		}
	}
	return false
}

// AllLocationTypes lists the four types in display order for stable
// iteration in the metrics engine.
func AllLocationTypes() []LocationType {
	return []LocationType{
		LocationHeadquarters, LocationRegionalHub, LocationField, LocationHomeBased,
	}
}
