package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aisdeck/aistype"
	"aisdeck/filter"
)

func TestHaversineKnownDistance(t *testing.T) {
	// San Francisco to Los Angeles, roughly 559 km great-circle.
	d := filter.Haversine(37.7749, -122.4194, 34.0522, -118.2437)
	assert.InDelta(t, 559, d, 15)
}

func TestMessageTypeFilter(t *testing.T) {
	f := filter.MessageTypeFilter(1, 2, 3)
	pos := &aistype.PositionReportA{Header: aistype.Header{Type: 1}}
	static := &aistype.StaticVoyageData{Header: aistype.Header{Type: 5}}

	assert.True(t, f(pos))
	assert.False(t, f(static))
}

func TestDistanceFilterKeepsNearAndDropsFar(t *testing.T) {
	f := filter.DistanceFilter(37.8, -122.4, 10)
	near := &aistype.PositionReportA{Header: aistype.Header{Type: 1}, Lat: 37.81, Lon: -122.41}
	far := &aistype.PositionReportA{Header: aistype.Header{Type: 1}, Lat: 10, Lon: 10}

	assert.True(t, f(near))
	assert.False(t, f(far))
}

func TestGridFilter(t *testing.T) {
	f := filter.GridFilter(30, -130, 40, -110)
	inside := &aistype.PositionReportA{Header: aistype.Header{Type: 1}, Lat: 37, Lon: -120}
	outside := &aistype.PositionReportA{Header: aistype.Header{Type: 1}, Lat: 0, Lon: 0}

	assert.True(t, f(inside))
	assert.False(t, f(outside))
}

func TestNoneFilterRequiresNonZeroFields(t *testing.T) {
	f := filter.NoneFilter("ShipName", "CallSign")
	complete := &aistype.StaticVoyageData{ShipName: "TESTSHIP", CallSign: "ABCD"}
	incomplete := &aistype.StaticVoyageData{ShipName: "TESTSHIP"}

	assert.True(t, f(complete))
	assert.False(t, f(incomplete))
}

func TestChainKeepsOnlyMessagesPassingEveryPredicate(t *testing.T) {
	chain := filter.NewChain(
		filter.MessageTypeFilter(1),
		filter.GridFilter(30, -130, 40, -110),
	)

	inGridType1 := &aistype.PositionReportA{Header: aistype.Header{Type: 1}, Lat: 35, Lon: -120}
	outGridType1 := &aistype.PositionReportA{Header: aistype.Header{Type: 1}, Lat: 0, Lon: 0}
	inGridType5 := &aistype.StaticVoyageData{Header: aistype.Header{Type: 5}}

	assert.True(t, chain.Keep(inGridType1))
	assert.False(t, chain.Keep(outGridType1))
	assert.False(t, chain.Keep(inGridType5))
}
