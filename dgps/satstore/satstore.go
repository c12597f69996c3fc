// Package satstore holds the most recent pseudorange correction received
// for each satellite, keyed by (satellite id, issue-of-data). One Store
// instance covers GPS (types 1 and 9, which share ephemeris IOD numbering);
// GLONASS (type 31) uses a second, independent instance.
package satstore

import (
	"log"
	"sort"
)

// DefaultRemoveOld is the number of bit ticks an entry may go unrefreshed
// before Cleanup evicts it.
const DefaultRemoveOld = 5000

// Entry is one satellite's most recently received correction.
type Entry struct {
	Scale       uint
	UDRE        uint
	PSC         float64
	RRC         float64
	Tick        uint64
	UpdateCount uint
}

type key struct {
	satID uint
	iod   uint
}

// Store is the (satid, iod) keyed correction table described in §4.7.
type Store struct {
	removeold uint64
	entries   map[key]Entry
	logger    *log.Logger
}

// New creates an empty Store that evicts entries older than removeold bit
// ticks. A nil logger disables the add/delete debug trace.
func New(removeold uint64, logger *log.Logger) *Store {
	return &Store{
		removeold: removeold,
		entries:   make(map[key]Entry),
		logger:    logger,
	}
}

func (s *Store) debugf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}

// Update sets or overwrites the entry at (satID, iod), incrementing its
// update counter (starting at 1 for a newly created entry).
func (s *Store) Update(satID uint, scale, udre uint, psc, rrc float64, iod uint, tick uint64, msgType uint) {
	k := key{satID, iod}
	existing, found := s.entries[k]
	count := uint(1)
	if found {
		count = existing.UpdateCount + 1
	} else {
		s.debugf("T%dDEBUG add %d (%d,%d)", msgType, tick, satID, iod)
	}
	s.entries[k] = Entry{
		Scale:       scale,
		UDRE:        udre,
		PSC:         psc,
		RRC:         rrc,
		Tick:        tick,
		UpdateCount: count,
	}
}

// Keys returns the store's keys in the order the decoder's store dump emits
// them: sorted by satellite id then by iod.
func (s *Store) Keys() []struct{ SatID, IOD uint } {
	keys := make([]struct{ SatID, IOD uint }, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, struct{ SatID, IOD uint }{k.satID, k.iod})
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].SatID != keys[j].SatID {
			return keys[i].SatID < keys[j].SatID
		}
		return keys[i].IOD < keys[j].IOD
	})
	return keys
}

// Get returns the entry at (satID, iod), if present.
func (s *Store) Get(satID, iod uint) (Entry, bool) {
	e, ok := s.entries[key{satID, iod}]
	return e, ok
}

// Len reports the number of entries currently stored.
func (s *Store) Len() int {
	return len(s.entries)
}

// Cleanup deletes every entry whose stored tick is older than
// tick - removeold.
func (s *Store) Cleanup(tick uint64, msgType uint) {
	threshold := int64(tick) - int64(s.removeold)
	for k, e := range s.entries {
		if int64(e.Tick) < threshold {
			s.debugf("T%dDEBUG del %d (%d,%d) %d", msgType, tick, k.satID, k.iod, e.UpdateCount)
			delete(s.entries, k)
		}
	}
}
