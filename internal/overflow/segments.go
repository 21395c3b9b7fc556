package overflow

import (
	"github.com/iur1nott/pagedhash/internal/model"
)

// Segments - Is used to iterate over the segments of a bucket chain one by one, head first.
type Segments struct {
	segments [][]model.Entry
	position int
}

// NewSegments - Returns a pointer to a new Segments iterator
//   - segments is the chain to walk, index 0 (zero) being the head segment
func NewSegments(segments [][]model.Entry) *Segments {

	return &Segments{
		segments: segments,
	}
}

// HasNext - Returns true if there are more segments to be fetched from a call to Next.
func (S *Segments) HasNext() bool {
	return S.position < len(S.segments)
}

// Next - Returns the next segment.
// It returns:
//   - entries is the next segment's entries, in insertion order.
//   - ok is false if there are no more segments when calling this function.
func (S *Segments) Next() (entries []model.Entry, ok bool) {
	if !S.HasNext() {
		return
	}

	entries = S.segments[S.position]
	ok = true
	S.position++

	return
}

// Visited - Returns the number of segments fetched so far
func (S *Segments) Visited() int64 {
	return int64(S.position)
}
