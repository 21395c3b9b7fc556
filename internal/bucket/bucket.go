package bucket

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/iur1nott/pagedhash/internal/model"
	"github.com/iur1nott/pagedhash/internal/overflow"
)

// Bucket - Represents a fixed capacity slot in a static hash table together with its overflow chain.
// The chain is kept as a flat list of segments, segment 0 (zero) being the head bucket and every following
// segment an overflow bucket of the same capacity. Segments only grow, they are never split or rehashed.
type Bucket struct {
	capacity int64
	segments [][]model.Entry
	members  mapset.Set[model.Entry]
}

// NewBucket - Returns a pointer to a new empty Bucket
//   - capacity is the max number of entries per segment, values lower than 1 are treated as 1
func NewBucket(capacity int64) *Bucket {
	capacity = max(1, capacity)

	return &Bucket{
		capacity: capacity,
		segments: [][]model.Entry{make([]model.Entry, 0, capacity)},
		members:  mapset.NewThreadUnsafeSet[model.Entry](),
	}
}

// Insert - Adds an entry to the chain unless an equal entry is already present anywhere in it.
// The entry lands in the last segment, a new overflow segment is chained if that one is full.
//
// It returns:
//   - inserted is false if the entry was already present
func (B *Bucket) Insert(entry model.Entry) (inserted bool) {
	if !B.members.Add(entry) {
		return
	}

	last := len(B.segments) - 1
	if int64(len(B.segments[last])) >= B.capacity {
		B.segments = append(B.segments, make([]model.Entry, 0, B.capacity))
		last++
	}
	B.segments[last] = append(B.segments[last], entry)
	inserted = true

	return
}

// Find - Searches the chain, head first, for the first entry with the given key.
// Every segment examined costs one unit, the head is always examined even when empty.
//
// It returns:
//   - entry is the matching entry if found
//   - segmentsVisited is the number of segments examined
//   - found is false if no segment held the key
func (B *Bucket) Find(key string) (entry model.Entry, segmentsVisited int64, found bool) {
	iter := B.Segments()
	for iter.HasNext() {
		entries, _ := iter.Next()
		for _, e := range entries {
			if e.Key == key {
				return e, iter.Visited(), true
			}
		}
	}

	segmentsVisited = iter.Visited()

	return
}

// CollisionCount - Returns the number of entries that were not first in their segment, summed over the chain
func (B *Bucket) CollisionCount() (collisions int64) {
	for _, s := range B.segments {
		collisions += max(0, int64(len(s))-1)
	}

	return
}

// OverflowSegmentCount - Returns the number of overflow segments chained after the head
func (B *Bucket) OverflowSegmentCount() int64 {
	return int64(len(B.segments) - 1)
}

// OverflowEntryCount - Returns the number of entries stored outside the head segment
func (B *Bucket) OverflowEntryCount() int64 {
	return B.Len() - int64(len(B.segments[0]))
}

// Len - Returns the number of entries in the whole chain
func (B *Bucket) Len() int64 {
	return int64(B.members.Cardinality())
}

// Capacity - Returns the max number of entries per segment
func (B *Bucket) Capacity() int64 {
	return B.capacity
}

// Segments - Returns an iterator over the chain's segments, head first
func (B *Bucket) Segments() *overflow.Segments {
	return overflow.NewSegments(B.segments)
}
