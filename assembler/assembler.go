// Package assembler reassembles multi-fragment AIVDM/AIVDO sentences
// into a single decodable payload, and independently groups sentences
// that share a tag block "g:n/N/id" field.
package assembler

import (
	"container/list"

	"aisdeck/aiserr"
	"aisdeck/nmea"
)

// DefaultWindow is the default maximum number of in-flight fragment
// groups held at once
const DefaultWindow = 10000

// Assembled is a complete, reassembled multi-fragment (or single)
// sentence ready for AIS payload decoding.
type Assembled struct {
	Payload   string
	FillBits  int
	Channel   string
	Talker    string
	Type      string
	TagBlock  *nmea.TagBlock
	Gatehouse *nmea.Gatehouse
}

type groupKey struct {
	seqID   string
	channel string
}

type group struct {
	count  int
	slots  []*nmea.Sentence
	filled int
	elem   *list.Element
}

// Assembler owns the in-flight fragment table for exactly one stream.
// It is not safe for concurrent use: the core is single-threaded and
// the assembler is owned by one stream.
type Assembler struct {
	window      int
	groups      map[groupKey]*group
	order       *list.List // FIFO eviction order of groupKey
	pendingGate *nmea.Gatehouse
	tagGroups   map[string]*tagGroup
}

type tagGroup struct {
	total  int
	slots  []*nmea.Sentence
	filled int
}

// New returns an Assembler with the default eviction window.
func New() *Assembler {
	return NewWithWindow(DefaultWindow)
}

// NewWithWindow returns an Assembler with a custom eviction window.
func NewWithWindow(window int) *Assembler {
	return &Assembler{
		window:    window,
		groups:    make(map[groupKey]*group),
		order:     list.New(),
		tagGroups: make(map[string]*tagGroup),
	}
}

// NotifyGatehouse records a Gatehouse wrapper seen immediately before the
// next AIS sentence, so it can be attached once that sentence completes.
func (a *Assembler) NotifyGatehouse(gh *nmea.Gatehouse) {
	a.pendingGate = gh
}

// Add feeds one parsed sentence into the assembler. If the sentence
// completes a group (or is itself a single-fragment sentence), the
// completed Assembled value is returned with ok=true.
func (a *Assembler) Add(s *nmea.Sentence) (*Assembled, bool, error) {
	if s.IsSingle() {
		asm := &Assembled{
			Payload:   s.Payload,
			FillBits:  s.FillBits,
			Channel:   s.Channel,
			Talker:    s.Talker,
			Type:      s.Type,
			TagBlock:  s.TagBlock,
			Gatehouse: a.takeGatehouse(),
		}
		return asm, true, nil
	}

	key := groupKey{seqID: s.SeqID, channel: s.Channel}
	g, exists := a.groups[key]
	if !exists {
		g = &group{count: s.FragCount, slots: make([]*nmea.Sentence, s.FragCount)}
		g.elem = a.order.PushBack(key)
		a.groups[key] = g
		a.evictIfNeeded()
	}

	idx := s.FragIndex - 1
	if idx < 0 || idx >= len(g.slots) {
		return nil, false, aiserr.New(aiserr.KindInvalidNMEAMessage,
			"fragment index %d out of range for group of %d", s.FragIndex, g.count)
	}
	if existing := g.slots[idx]; existing != nil {
		if existing.Payload != s.Payload {
			return nil, false, aiserr.New(aiserr.KindInvalidNMEAMessage,
				"conflicting fragment payload at index %d for seq %q channel %q", s.FragIndex, s.SeqID, s.Channel)
		}
		return nil, false, nil
	}
	g.slots[idx] = s
	g.filled++

	if g.filled < g.count {
		return nil, false, nil
	}

	delete(a.groups, key)
	a.order.Remove(g.elem)

	payload := ""
	var lastFill int
	var tb *nmea.TagBlock
	for _, frag := range g.slots {
		payload += frag.Payload
		lastFill = frag.FillBits
		if frag.TagBlock != nil {
			tb = frag.TagBlock
		}
	}
	if payload == "" {
		return nil, false, aiserr.New(aiserr.KindMissingPayload, "assembled payload is empty")
	}

	asm := &Assembled{
		Payload:   payload,
		FillBits:  lastFill,
		Channel:   g.slots[0].Channel,
		Talker:    g.slots[0].Talker,
		Type:      g.slots[0].Type,
		TagBlock:  tb,
		Gatehouse: a.takeGatehouse(),
	}
	return asm, true, nil
}

func (a *Assembler) takeGatehouse() *nmea.Gatehouse {
	gh := a.pendingGate
	a.pendingGate = nil
	return gh
}

// evictIfNeeded drops the oldest in-flight group when the window is
// exceeded, bounding memory under lossy UDP conditions. Dropped groups
// are discarded silently
func (a *Assembler) evictIfNeeded() {
	for len(a.groups) > a.window {
		front := a.order.Front()
		if front == nil {
			return
		}
		key := front.Value.(groupKey)
		a.order.Remove(front)
		delete(a.groups, key)
	}
}

// AddTagGroup feeds a sentence that carries a tag block "g:n/N/id" field
// into the independent tag-block grouping queue. It returns the complete
// ordered slice once all N members of the group have arrived.
func (a *Assembler) AddTagGroup(s *nmea.Sentence) ([]*nmea.Sentence, bool) {
	if s.TagBlock == nil || s.TagBlock.Group == nil {
		return nil, false
	}
	g := s.TagBlock.Group
	tg, ok := a.tagGroups[g.ID]
	if !ok {
		tg = &tagGroup{total: g.Total, slots: make([]*nmea.Sentence, g.Total)}
		a.tagGroups[g.ID] = tg
	}
	idx := g.SentenceNum - 1
	if idx < 0 || idx >= len(tg.slots) {
		return nil, false
	}
	if tg.slots[idx] == nil {
		tg.slots[idx] = s
		tg.filled++
	}
	if tg.filled < tg.total {
		return nil, false
	}
	delete(a.tagGroups, g.ID)
	return tg.slots, true
}
