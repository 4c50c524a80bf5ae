package htm

import (
	"errors"
)

var ErrProximalSegment = errors.New("cells only own distal segments")

/*
Cell is one of the cells in a column. Its distal segments feed the temporal
phase, which lives outside this package. The pooling code only needs the
segments to pick a best cell.
*/
type Cell struct {
	Index      int
	Active     bool
	Predictive bool
	Learning   bool

	params   *SynapseParams
	segments []*Segment
}

func newCell(idx int, params *SynapseParams) Cell {
	return Cell{Index: idx, params: params}
}

//Returns the cell's distal segments
func (c *Cell) Segments() []*Segment {
	return c.segments
}

func (c *Cell) NumSegments() int {
	return len(c.segments)
}

//Creates and attaches a new empty distal segment
func (c *Cell) CreateSegment() *Segment {
	seg := NewSegment(true, c.params)
	c.segments = append(c.segments, seg)
	return seg
}

func (c *Cell) AddSegment(seg *Segment) error {
	if !seg.IsDistal() {
		return ErrProximalSegment
	}
	c.segments = append(c.segments, seg)
	return nil
}

/*
Returns the segment with the most firing synapses, provided it reaches
MinThreshold. Ties go to the earlier segment. Returns nil when no segment
matches.
*/
func (c *Cell) BestMatchingSegment(state ActivityState) (*Segment, int) {
	var best *Segment
	bestCount := c.params.MinThreshold - 1
	for _, seg := range c.segments {
		count := seg.NumFiring(state)
		if count > bestCount {
			best = seg
			bestCount = count
		}
	}
	if best == nil {
		return nil, 0
	}
	return best, bestCount
}
