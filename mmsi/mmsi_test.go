package mmsi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aisdeck/mmsi"
)

func TestCountryKnownPrefix(t *testing.T) {
	name, iso2, ok := mmsi.Country(367533950)
	assert.True(t, ok)
	assert.Equal(t, "US", iso2)
	assert.Equal(t, "United States", name)
}

func TestCountryUnknownPrefixNotOK(t *testing.T) {
	name, iso2, ok := mmsi.Country(999999999)
	assert.False(t, ok)
	assert.Equal(t, "", iso2)
	assert.Equal(t, "", name)
}

func TestCountrySmallMMSI(t *testing.T) {
	_, iso2, ok := mmsi.Country(211)
	assert.True(t, ok)
	assert.Equal(t, "DE", iso2)
}
