// Package tracker maintains per-MMSI aggregate AIS track state: the
// latest known position, speed, course and identity fields merged from
// a stream of decoded messages, with TTL-based expiry and CREATED/
// UPDATED/DELETED callbacks. Follows a map-of-state plus worker-pool
// update pattern, generalized from ship display state to a
// general-purpose Track, plus a ticker-driven TTL janitor goroutine.
package tracker

import (
	"container/list"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/bbailey1024/geohash"
	"github.com/google/uuid"

	"aisdeck/aistype"
)

// DefaultTTL matches a practical default.
const DefaultTTL = 10 * time.Minute

// Track is the merged, latest-known state for one MMSI.
type Track struct {
	MMSI        uint32
	LastSeen    int64
	Lat, Lon    float64
	Geohash     uint64
	Speed       float64
	Course      float64
	Heading     uint16
	ShipName    string
	CallSign    string
	Destination string
	Draught     float64
	ShipType    aistype.ShipType
	NavStatus   aistype.NavigationStatus
}

// Event identifies a track lifecycle transition.
type Event int

const (
	Created Event = iota
	Updated
	Deleted
)

func (e Event) String() string {
	switch e {
	case Created:
		return "created"
	case Updated:
		return "updated"
	case Deleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Callback receives a track snapshot for a registered event. A handle
// is returned by RegisterCallback so it can later be removed.
type Callback func(Track)

type registration struct {
	id uuid.UUID
	cb Callback
}

// Tracker maps mmsi -> Track.
type Tracker struct {
	mu      sync.RWMutex
	ordered bool
	ttl     time.Duration

	tracks map[uint32]*Track

	// order holds *Track in ascending LastSeen order when ordered is
	// true. Ordered-mode callers are expected to feed monotonically
	// increasing timestamps, so appending to the back keeps the
	// invariant without a full re-sort.
	order *list.List
	elems map[uint32]*list.Element

	callbacks map[Event][]registration

	geo GeoIndex

	Quit chan struct{}
	Done chan struct{}
}

// Option configures a new Tracker.
type Option func(*Tracker)

// WithOrdered enables the ordered-stream indexing mode, for callers
// that can guarantee monotonically increasing observation timestamps.
func WithOrdered(ordered bool) Option {
	return func(t *Tracker) { t.ordered = ordered }
}

// WithTTL overrides DefaultTTL.
func WithTTL(ttl time.Duration) Option {
	return func(t *Tracker) { t.ttl = ttl }
}

// New returns an empty Tracker.
func New(opts ...Option) *Tracker {
	t := &Tracker{
		ttl:       DefaultTTL,
		tracks:    make(map[uint32]*Track),
		order:     list.New(),
		elems:     make(map[uint32]*list.Element),
		callbacks: make(map[Event][]registration),
		Quit:      make(chan struct{}),
		Done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// RegisterCallback subscribes fn to event and returns a handle usable
// with Unregister. Callback errors must not corrupt tracker state;
// callers that need error handling should recover and report inside fn.
func (t *Tracker) RegisterCallback(event Event, fn Callback) uuid.UUID {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := uuid.New()
	t.callbacks[event] = append(t.callbacks[event], registration{id: id, cb: fn})
	return id
}

// Unregister removes a previously registered callback by its handle.
func (t *Tracker) Unregister(event Event, id uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	regs := t.callbacks[event]
	for i, r := range regs {
		if r.id == id {
			t.callbacks[event] = append(regs[:i], regs[i+1:]...)
			return
		}
	}
}

func (t *Tracker) fire(event Event, snapshot Track) {
	for _, r := range t.callbacks[event] {
		func() {
			defer func() { recover() }()
			r.cb(snapshot)
		}()
	}
}

// Update merges the fields carried by msg into the track for msg's
// MMSI, creating it if absent. timestamp is the caller-supplied
// observation time (unix seconds); LastSeen advances to
// max(existing, incoming) to tolerate re-orderings.
func (t *Tracker) Update(msg aistype.Message, timestamp int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	mmsi := msg.GetMMSI()
	tr, exists := t.tracks[mmsi]
	event := Updated
	if !exists {
		tr = &Track{MMSI: mmsi}
		t.tracks[mmsi] = tr
		event = Created
	}

	if timestamp > tr.LastSeen {
		tr.LastSeen = timestamp
	}

	mergeFields(tr, msg)

	if tr.Lat != 0 || tr.Lon != 0 {
		tr.Geohash = geohash.EncodeInt(tr.Lat, tr.Lon)
	}

	if t.ordered {
		t.touchOrder(mmsi)
	}

	snapshot := *tr
	t.fire(event, snapshot)
}

// touchOrder moves mmsi's list element to the back, reflecting its
// newly advanced LastSeen. Must be called with t.mu held.
func (t *Tracker) touchOrder(mmsi uint32) {
	if e, ok := t.elems[mmsi]; ok {
		t.order.MoveToBack(e)
		return
	}
	e := t.order.PushBack(mmsi)
	t.elems[mmsi] = e
}

// Get returns a copy of the track for mmsi, if present.
func (t *Tracker) Get(mmsi uint32) (Track, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	tr, ok := t.tracks[mmsi]
	if !ok {
		return Track{}, false
	}
	return *tr, true
}

// NLatest returns the k tracks with the greatest LastSeen. In ordered
// mode this is O(k); in unordered mode it sorts all tracks, O(N log N).
func (t *Tracker) NLatest(k int) []Track {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if k <= 0 {
		return nil
	}

	if t.ordered {
		out := make([]Track, 0, k)
		for e := t.order.Back(); e != nil && len(out) < k; e = e.Prev() {
			mmsi := e.Value.(uint32)
			out = append(out, *t.tracks[mmsi])
		}
		return out
	}

	all := make([]Track, 0, len(t.tracks))
	for _, tr := range t.tracks {
		all = append(all, *tr)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].LastSeen > all[j].LastSeen })
	if k > len(all) {
		k = len(all)
	}
	return all[:k]
}

// Cleanup removes tracks whose LastSeen is older than the TTL relative
// to now, firing DELETED for each. In ordered mode expired tracks sit
// at the front of the order list, so the scan is O(expired); unordered
// mode scans every track, O(N).
func (t *Tracker) Cleanup(now int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ttlSeconds := int64(t.ttl / time.Second)

	if t.ordered {
		for e := t.order.Front(); e != nil; {
			mmsi := e.Value.(uint32)
			tr := t.tracks[mmsi]
			if now-tr.LastSeen <= ttlSeconds {
				break
			}
			next := e.Next()
			t.order.Remove(e)
			delete(t.elems, mmsi)
			delete(t.tracks, mmsi)
			t.fire(Deleted, *tr)
			e = next
		}
		return
	}

	for mmsi, tr := range t.tracks {
		if now-tr.LastSeen > ttlSeconds {
			delete(t.tracks, mmsi)
			t.fire(Deleted, *tr)
		}
	}
}

// Run starts the TTL janitor loop, ticking Cleanup every interval until
// Quit is signaled.
func (t *Tracker) Run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-t.Quit:
			t.Done <- struct{}{}
			return
		case now := <-ticker.C:
			t.Cleanup(now.UTC().Unix())
		}
	}
}

// Reindex rebuilds the geohash bounding-box index from current track
// state. Callers query bounding boxes over a point-in-time snapshot;
// call Reindex again to refresh it. Takes the write lock because it
// mutates the shared GeoIndex that InBounds reads.
func (t *Tracker) Reindex() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.geo.Generate(t.tracks)
}

// InBounds returns the MMSIs whose last known position falls within
// the rectangle defined by its southwest and northeast corners, queried
// against Reindex's snapshot.
func (t *Tracker) InBounds(sw, ne [2]float64) ([]uint32, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.geo.BoundsInRange(sw, ne)
}

// Count returns the number of tracks currently held.
func (t *Tracker) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.tracks)
}

func mergeFields(tr *Track, msg aistype.Message) {
	switch m := msg.(type) {
	case *aistype.PositionReportA:
		tr.Lat, tr.Lon = m.Lat, m.Lon
		tr.Speed, tr.Course, tr.Heading = m.Speed, m.Course, m.Heading
		tr.NavStatus = m.Status
	case *aistype.PositionReportB:
		tr.Lat, tr.Lon = m.Lat, m.Lon
		tr.Speed, tr.Course, tr.Heading = m.Speed, m.Course, m.Heading
	case *aistype.PositionReportBExtended:
		tr.Lat, tr.Lon = m.Lat, m.Lon
		tr.Speed, tr.Course, tr.Heading = m.Speed, m.Course, m.Heading
		tr.ShipName, tr.ShipType = m.ShipName, m.ShipType
	case *aistype.SARAircraftPosition:
		tr.Lat, tr.Lon = m.Lat, m.Lon
		tr.Speed, tr.Course = m.Speed, m.Course
	case *aistype.StaticVoyageData:
		tr.ShipName, tr.CallSign = m.ShipName, m.CallSign
		tr.ShipType, tr.Destination, tr.Draught = m.ShipType, m.Destination, m.Draught
	case *aistype.StaticDataReport:
		if m.PartNo == 0 {
			tr.ShipName = m.ShipName
		} else {
			tr.CallSign, tr.ShipType = m.CallSign, m.ShipType
		}
	case *aistype.LongRangeBroadcast:
		tr.Lat, tr.Lon = m.Lat, m.Lon
		tr.Speed, tr.Course = m.Speed, m.Course
		tr.NavStatus = m.Status
	}
}

// Scoped runs fn with t's janitor goroutine started, and guarantees the
// janitor is stopped and drained before Scoped returns, even if fn
// returns an error.
func Scoped(t *Tracker, janitorInterval time.Duration, fn func(*Tracker) error) error {
	go t.Run(janitorInterval)
	defer func() {
		t.Quit <- struct{}{}
		<-t.Done
	}()

	if err := fn(t); err != nil {
		return fmt.Errorf("tracker scope failed: %w", err)
	}
	return nil
}
