package htm

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	//Decay of the duty cycle moving averages
	AvgScale = 0.995
	//Geometric boost growth for a column that never fires
	BoostGrowth = 1.05
)

//ColumnRef identifies a column by owning network and grid position.
type ColumnRef struct {
	Network uuid.UUID
	X       int
	Y       int
}

/*
Column is one competitive unit of the network. It owns a proximal segment
shared by all of its cells, and the per column pooling state. Neighborhood
queries go through the owning Htm, the column keeps no pointer back to it.
*/
type Column struct {
	X int
	Y int

	//Firing synapse count, boosted and gated during a step
	Overlap float64
	Boost   float64
	Active  bool

	DutyCycleMin     float64
	DutyCycleActive  float64
	DutyCycleOverlap float64

	//Number of steps this column has been active
	ActiveCount int

	network     uuid.UUID
	compression float64
	minOverlap  int
	cells       []Cell
	segment     *Segment
}

func newColumn(network uuid.UUID, x, y int, params *HtmParams) Column {
	col := Column{
		X:           x,
		Y:           y,
		Boost:       1,
		network:     network,
		compression: params.InputCompression,
		minOverlap:  params.MinOverlap,
		segment:     NewSegment(false, &params.Synapse),
	}
	col.cells = make([]Cell, params.CellsPerColumn)
	for i := range col.cells {
		col.cells[i] = newCell(i, &params.Synapse)
	}
	return col
}

func (c *Column) Ref() ColumnRef {
	return ColumnRef{Network: c.network, X: c.X, Y: c.Y}
}

//Columns are equal when they share a network and a position
func (c *Column) Equal(other *Column) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.Ref() == other.Ref()
}

func (c *Column) Segment() *Segment {
	return c.segment
}

func (c *Column) NumCells() int {
	return len(c.cells)
}

func (c *Column) Cell(idx int) *Cell {
	return &c.cells[idx]
}

func (c *Column) SynapsesFiring(input ActivityState) []int {
	return c.segment.SynapsesFiring(input)
}

func (c *Column) SynapsesConnected() []Synapse {
	return c.segment.SynapsesConnected()
}

func (c *Column) IncreasePermanences(amount float64) {
	c.segment.IncreasePermanences(amount)
}

//Sets Overlap to the number of firing proximal synapses
func (c *Column) ComputeOverlap(input ActivityState) int {
	count := c.segment.NumFiring(input)
	c.Overlap = float64(count)
	return count
}

//Zeroes an overlap under minOverlap, boosts the rest
func (c *Column) applyBoost() {
	if c.Overlap < float64(c.minOverlap) {
		c.Overlap = 0
	} else {
		c.Overlap *= c.Boost
	}
}

//Duty cycle after this step, based on Active
func (c *Column) NextDutyCycleActive() float64 {
	next := AvgScale * c.DutyCycleActive
	if c.Active {
		next += 1 - AvgScale
	}
	return next
}

//Overlap duty cycle after this step, based on Overlap
func (c *Column) NextDutyCycleOverlap() float64 {
	next := AvgScale * c.DutyCycleOverlap
	if c.Overlap > float64(c.minOverlap) {
		next += 1 - AvgScale
	}
	return next
}

/*
Boost for the next step. The branch order matters: the first branch also
covers an all zero neighborhood, which keeps the division in the last branch
safe.
*/
func (c *Column) NextBoost() float64 {
	if c.DutyCycleActive >= c.DutyCycleMin {
		return 1
	} else if c.DutyCycleActive == 0 {
		return c.Boost * BoostGrowth
	}
	return c.DutyCycleMin / c.DutyCycleActive
}

//Distance from the column, mapped to input space, to input x,y
func (c *Column) DistanceTo(x, y int) float64 {
	inputX := c.compression * float64(c.X)
	inputY := c.compression * float64(c.Y)
	return euclidean(float64(x), float64(y), inputX, inputY)
}

/*
Picks the cell whose best matching distal segment has the most firing
synapses; the lowest index wins ties. If no cell has a matching segment the
cell with the fewest segments is used, again lowest index first.
*/
func (c *Column) BestCell(state ActivityState) *Cell {
	var best *Cell
	bestCount := 0
	for i := range c.cells {
		seg, count := c.cells[i].BestMatchingSegment(state)
		if seg != nil && count > bestCount {
			best = &c.cells[i]
			bestCount = count
		}
	}
	if best != nil {
		return best
	}

	best = &c.cells[0]
	for i := 1; i < len(c.cells); i++ {
		if c.cells[i].NumSegments() < best.NumSegments() {
			best = &c.cells[i]
		}
	}
	return best
}

func (c *Column) String() string {
	return fmt.Sprintf("pos %v,%v; active? %v overlap %v boost %.3f synapses %v connected %v",
		c.X, c.Y, c.Active, c.Overlap, c.Boost, c.segment.Len(), c.segment.NumConnected())
}
