// Package filter implements composable predicates over decoded AIS
// messages: AttributeFilter, NoneFilter, MessageTypeFilter,
// DistanceFilter, GridFilter, and Chain for combining them. Each
// predicate has type func(Message) bool; Chain runs a sequence of them
// in order.
package filter

import (
	"math"
	"reflect"

	"aisdeck/aistype"
)

// earthRadiusKM is the haversine formula's Earth radius.
const earthRadiusKM = 6371.0

// Predicate reports whether msg should be kept.
type Predicate func(aistype.Message) bool

// Haversine returns the great-circle distance in kilometers between two
// lat/lon points.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1, rlon1 := lat1*math.Pi/180, lon1*math.Pi/180
	rlat2, rlon2 := lat2*math.Pi/180, lon2*math.Pi/180
	dlon := rlon2 - rlon1
	dlat := rlat2 - rlat1
	a := math.Pow(math.Sin(dlat/2), 2) + math.Cos(rlat1)*math.Cos(rlat2)*math.Pow(math.Sin(dlon/2), 2)
	c := 2 * math.Asin(math.Sqrt(a))
	return earthRadiusKM * c
}

// IsInGrid reports whether (lat, lon) falls within the rectangle
// bounded by [latMin, latMax] x [lonMin, lonMax].
func IsInGrid(lat, lon, latMin, lonMin, latMax, lonMax float64) bool {
	return lat >= latMin && lat <= latMax && lon >= lonMin && lon <= lonMax
}

// AttributeFilter keeps messages for which fn returns true.
func AttributeFilter(fn func(aistype.Message) bool) Predicate {
	return Predicate(fn)
}

// NoneFilter keeps messages where every named field, looked up by name
// via reflection over the concrete message struct, is present and holds
// a non-zero value.
func NoneFilter(attrs ...string) Predicate {
	return func(msg aistype.Message) bool {
		v := reflect.Indirect(reflect.ValueOf(msg))
		if v.Kind() != reflect.Struct {
			return false
		}
		for _, attr := range attrs {
			f := v.FieldByName(attr)
			if !f.IsValid() || f.IsZero() {
				return false
			}
		}
		return true
	}
}

// MessageTypeFilter keeps messages whose MsgType() is one of types.
func MessageTypeFilter(types ...int) Predicate {
	set := make(map[int]struct{}, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}
	return func(msg aistype.Message) bool {
		_, ok := set[msg.MsgType()]
		return ok
	}
}

// DistanceFilter keeps messages without a position, and messages with
// one whose great-circle distance from (refLat, refLon) is strictly
// less than distanceKM.
func DistanceFilter(refLat, refLon, distanceKM float64) Predicate {
	return func(msg aistype.Message) bool {
		lat, lon, ok := position(msg)
		if !ok {
			return true
		}
		return Haversine(refLat, refLon, lat, lon) < distanceKM
	}
}

// GridFilter keeps messages without a position, and messages with one
// inside the given rectangle.
func GridFilter(latMin, lonMin, latMax, lonMax float64) Predicate {
	return func(msg aistype.Message) bool {
		lat, lon, ok := position(msg)
		if !ok {
			return true
		}
		return IsInGrid(lat, lon, latMin, lonMin, latMax, lonMax)
	}
}

// position extracts (lat, lon) from any message variant that carries a
// position.
func position(msg aistype.Message) (lat, lon float64, ok bool) {
	switch m := msg.(type) {
	case *aistype.PositionReportA:
		return m.Lat, m.Lon, true
	case *aistype.PositionReportB:
		return m.Lat, m.Lon, true
	case *aistype.PositionReportBExtended:
		return m.Lat, m.Lon, true
	case *aistype.SARAircraftPosition:
		return m.Lat, m.Lon, true
	case *aistype.BaseStationReport:
		return m.Lat, m.Lon, true
	case *aistype.AidToNavigationReport:
		return m.Lat, m.Lon, true
	case *aistype.LongRangeBroadcast:
		return m.Lat, m.Lon, true
	default:
		return 0, 0, false
	}
}

// Chain runs a sequence of predicates, keeping a message only if every
// predicate in order keeps it. Constructing a Chain with no predicates
// panics.
type Chain struct {
	predicates []Predicate
}

// NewChain builds a Chain from one or more predicates.
func NewChain(predicates ...Predicate) *Chain {
	if len(predicates) == 0 {
		panic("filter: at least one predicate required")
	}
	return &Chain{predicates: predicates}
}

// Keep reports whether msg passes every predicate in the chain.
func (c *Chain) Keep(msg aistype.Message) bool {
	for _, p := range c.predicates {
		if !p(msg) {
			return false
		}
	}
	return true
}

// Filter applies the chain to in, writing every kept message to the
// returned channel and closing it once in is drained.
func (c *Chain) Filter(in <-chan aistype.Message) <-chan aistype.Message {
	out := make(chan aistype.Message)
	go func() {
		defer close(out)
		for msg := range in {
			if c.Keep(msg) {
				out <- msg
			}
		}
	}()
	return out
}
