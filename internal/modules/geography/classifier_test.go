package geography

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_ExactlyOneLocationType(t *testing.T) {
	cases := []struct{ station, country, continent string }{
		{"Home-based", "", ""},
		{"Geneva", "Switzerland", "Europe"},
		{"Bangkok", "Thailand", "Asia"},
		{"Juba", "South Sudan", "Africa"},
		{"", "", ""},
		{"Oslo", "Norway", "Europe"},
	}
	valid := map[LocationType]bool{
		LocationHeadquarters: true, LocationRegionalHub: true,
		LocationField: true, LocationHomeBased: true,
	}
	for _, tc := range cases {
		a := Classify(tc.station, tc.country, tc.continent)
		assert.True(t, valid[a.LocationType], "station %q resolved to %q", tc.station, a.LocationType)
	}
}

func TestClassify_Precedence(t *testing.T) {
	// Home-based wins over everything else
	a := Classify("Remote / Home-based (Geneva)", "Switzerland", "Europe")
	assert.Equal(t, LocationHomeBased, a.LocationType)

	// HQ city wins over DAC country
	a = Classify("Geneva", "Switzerland", "Europe")
	assert.Equal(t, LocationHeadquarters, a.LocationType)

	// Hub city wins over country-level checks
	a = Classify("Bangkok", "Thailand", "Asia")
	assert.Equal(t, LocationRegionalHub, a.LocationType)

	// DAC country without a known city is never Field
	a = Classify("Oslo", "Norway", "Europe")
	assert.Equal(t, LocationHeadquarters, a.LocationType)
	assert.True(t, a.IsDACCountry)

	// Everything else is Field
	a = Classify("Juba", "South Sudan", "Africa")
	assert.Equal(t, LocationField, a.LocationType)
}

func TestClassify_ConflictZoneIndependent(t *testing.T) {
	a := Classify("Kabul", "Afghanistan", "Asia")
	assert.Equal(t, LocationField, a.LocationType)
	assert.True(t, a.IsConflictZone)

	// Conflict flag does not leak into non-conflict stations
	a = Classify("Nairobi", "Kenya", "Africa")
	assert.Equal(t, LocationHeadquarters, a.LocationType)
	assert.False(t, a.IsConflictZone)
}

func TestClassify_CaseInsensitive(t *testing.T) {
	assert.Equal(t, Classify("GENEVA", "SWITZERLAND", "EUROPE"), Classify("geneva", "switzerland", "europe"))
}

func TestNormalizeRegion(t *testing.T) {
	cases := map[string]Region{
		"Africa":            RegionAfrica,
		"Sub-Saharan Africa": RegionAfrica,
		"Asia":              RegionAsiaPacific,
		"Oceania":           RegionAsiaPacific,
		"Europe":            RegionEurope,
		"Latin America":     RegionLatinAmerica,
		"Caribbean":         RegionLatinAmerica,
		"North America":     RegionNorthAmerica,
		"Middle East":       RegionArabStates,
		"Western Asia":      RegionArabStates,
		"":                  RegionOther,
		"Antarctica":        RegionOther,
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeRegion(in), "continent %q", in)
	}
}
