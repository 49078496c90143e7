package tracker_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aisdeck/aistype"
	"aisdeck/tracker"
)

func positionMsg(mmsi uint32, lat, lon float64) *aistype.PositionReportA {
	return &aistype.PositionReportA{
		Header: aistype.Header{Type: 1, MMSI: mmsi},
		Lat:    lat,
		Lon:    lon,
	}
}

func TestUpdateCreatesThenUpdatesTrack(t *testing.T) {
	var events []tracker.Event
	tr := tracker.New()
	tr.RegisterCallback(tracker.Created, func(track tracker.Track) { events = append(events, tracker.Created) })
	tr.RegisterCallback(tracker.Updated, func(track tracker.Track) { events = append(events, tracker.Updated) })

	tr.Update(positionMsg(367533950, 37.8, -122.4), 100)
	tr.Update(positionMsg(367533950, 37.9, -122.5), 200)

	track, ok := tr.Get(367533950)
	require.True(t, ok)
	assert.Equal(t, int64(200), track.LastSeen)
	assert.InDelta(t, 37.9, track.Lat, 1e-9)
	assert.Equal(t, []tracker.Event{tracker.Created, tracker.Updated}, events)
}

func TestLastSeenAdvancesMaxOnReorder(t *testing.T) {
	tr := tracker.New()
	tr.Update(positionMsg(1, 1, 1), 500)
	tr.Update(positionMsg(1, 2, 2), 100) // out of order, older timestamp

	track, ok := tr.Get(1)
	require.True(t, ok)
	assert.Equal(t, int64(500), track.LastSeen)
}

func TestCleanupFiresDeletedPastTTL(t *testing.T) {
	var deleted []uint32
	tr := tracker.New(tracker.WithTTL(10 * time.Second))
	tr.RegisterCallback(tracker.Deleted, func(track tracker.Track) { deleted = append(deleted, track.MMSI) })

	tr.Update(positionMsg(1, 1, 1), 0)
	tr.Cleanup(20)

	_, ok := tr.Get(1)
	assert.False(t, ok)
	assert.Equal(t, []uint32{1}, deleted)
}

func TestReindexThenInBoundsFindsTrackedPosition(t *testing.T) {
	tr := tracker.New()
	tr.Update(positionMsg(1, 37.8, -122.4), 1) // San Francisco
	tr.Update(positionMsg(2, 40.7, -74.0), 2)  // New York
	tr.Update(positionMsg(3, 35.6, 139.7), 3)  // Tokyo

	tr.Reindex()

	sf := [2]float64{37.8, -122.4}
	mmsis, err := tr.InBounds(sf, sf)
	require.NoError(t, err)
	require.Contains(t, mmsis, uint32(1))
	assert.NotContains(t, mmsis, uint32(2))
	assert.NotContains(t, mmsis, uint32(3))
}

func TestInBoundsReflectsLatestReindex(t *testing.T) {
	tr := tracker.New()
	tr.Update(positionMsg(1, 37.8, -122.4), 1)
	tr.Reindex()

	point := [2]float64{37.8, -122.4}
	mmsis, err := tr.InBounds(point, point)
	require.NoError(t, err)
	require.Contains(t, mmsis, uint32(1))

	// Move the track away and reindex; the old position should no
	// longer resolve to it.
	tr.Update(positionMsg(1, -33.9, 151.2), 2) // Sydney
	tr.Reindex()

	mmsis, err = tr.InBounds(point, point)
	require.NoError(t, err)
	assert.NotContains(t, mmsis, uint32(1))
}

func TestNLatestOrderedAndUnorderedAgree(t *testing.T) {
	unordered := tracker.New()
	for i := uint32(0); i < 20; i++ {
		unordered.Update(positionMsg(i, 0, 0), int64(i))
	}
	wantTop := unordered.NLatest(5)

	ordered := tracker.New(tracker.WithOrdered(true))
	for i := uint32(0); i < 20; i++ {
		ordered.Update(positionMsg(i, 0, 0), int64(i))
	}
	gotTop := ordered.NLatest(5)

	require.Len(t, gotTop, 5)
	require.Len(t, wantTop, 5)
	for i := range gotTop {
		assert.Equal(t, wantTop[i].MMSI, gotTop[i].MMSI)
	}
}
