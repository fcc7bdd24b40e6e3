package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeRange(t *testing.T) {
	r, err := ParseTimeRange(" 8W ")
	assert.NoError(t, err)
	assert.Equal(t, Range8Weeks, r)

	_, err = ParseTimeRange("90d")
	assert.Error(t, err, "Unrecognized range is a caller bug and must fail fast")
}

func TestAgencyFallback(t *testing.T) {
	assert.Equal(t, "WFP", JobRecord{ShortAgency: "WFP", LongAgency: "World Food Programme"}.Agency())
	assert.Equal(t, "World Food Programme", JobRecord{LongAgency: "World Food Programme"}.Agency())
	assert.Equal(t, "", JobRecord{}.Agency())
}

func TestCoerceArchived(t *testing.T) {
	assert.True(t, CoerceArchived(true))
	assert.True(t, CoerceArchived(1))
	assert.True(t, CoerceArchived(1.0))
	assert.True(t, CoerceArchived("Yes"))
	assert.False(t, CoerceArchived("0"))
	assert.False(t, CoerceArchived(nil))
	assert.False(t, CoerceArchived("archived")) // only explicit affirmatives count
}
