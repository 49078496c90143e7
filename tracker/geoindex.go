package tracker

import (
	"fmt"

	"github.com/bbailey1024/geohash"
)

// geoEntry is one MMSI/geohash pair in a GeoIndex snapshot.
type geoEntry struct {
	MMSI    uint32
	Geohash uint64
}

// GeoIndex is a sorted-by-geohash snapshot of tracker state supporting
// bounding-box queries via binary search over the sorted geohash list.
type GeoIndex struct {
	list []geoEntry
}

// Generate rebuilds the index from the current track set.
func (gi *GeoIndex) Generate(tracks map[uint32]*Track) {
	list := make([]geoEntry, 0, len(tracks))
	for mmsi, t := range tracks {
		list = append(list, geoEntry{MMSI: mmsi, Geohash: t.Geohash})
	}
	quickSortGeohash(list, 0, len(list))
	gi.list = list
}

// BoundsInRange returns the [begin, end) index range of entries whose
// geohash falls within the bounding box's southwest/northeast corners.
func (gi *GeoIndex) BoundsInRange(sw, ne [2]float64) ([]uint32, error) {
	if len(gi.list) == 0 {
		return nil, fmt.Errorf("geo index is empty, bounds query cannot be performed")
	}

	bboxHashSW := geohash.EncodeInt(sw[0], sw[1])
	bboxHashNE := geohash.EncodeInt(ne[0], ne[1])

	begin := gi.binarySearchSW(bboxHashSW)
	end := gi.binarySearchNE(bboxHashNE)

	if begin > end || begin >= len(gi.list) {
		return nil, nil
	}

	mmsis := make([]uint32, 0, end-begin+1)
	for i := begin; i <= end && i < len(gi.list); i++ {
		mmsis = append(mmsis, gi.list[i].MMSI)
	}
	return mmsis, nil
}

func (gi *GeoIndex) binarySearchSW(bboxSW uint64) int {
	mid := len(gi.list) / 2
	top := len(gi.list)
	begin := 0

	for {
		if gi.list[mid].Geohash >= bboxSW {
			if mid-1 < 0 || gi.list[mid-1].Geohash < bboxSW {
				begin = mid
				break
			}
			top = mid
			mid = mid / 2
		} else {
			if mid+1 >= len(gi.list) || gi.list[mid+1].Geohash > bboxSW {
				begin = mid + 1
				break
			}
			mid = mid + ((top - mid) / 2)
		}
	}
	return begin
}

func (gi *GeoIndex) binarySearchNE(bboxNE uint64) int {
	mid := len(gi.list) / 2
	top := len(gi.list)
	end := 0

	for {
		if gi.list[mid].Geohash < bboxNE {
			if mid+1 >= len(gi.list) || gi.list[mid+1].Geohash > bboxNE {
				end = mid
				break
			}
			mid = mid + ((top - mid) / 2)
		} else {
			if mid-1 < 0 || gi.list[mid-1].Geohash < bboxNE {
				end = mid - 1
				break
			}
			top = mid
			mid = mid / 2
		}
	}
	return end
}

func quickSortGeohash(list []geoEntry, begin int, end int) {
	if end-begin <= 1 {
		return
	}

	pivot := end - 1
	swap := begin

	for i := begin; i < pivot; i++ {
		if list[i].Geohash < list[pivot].Geohash {
			list[i], list[swap] = list[swap], list[i]
			swap++
		}
	}

	list[pivot], list[swap] = list[swap], list[pivot]

	quickSortGeohash(list, begin, swap)
	quickSortGeohash(list, swap+1, end)
}
