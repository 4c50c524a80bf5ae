package htm

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testColumn(x, y int) Column {
	p := NewHtmParams()
	return newColumn(uuid.New(), x, y, &p)
}

func TestNextBoostBranches(t *testing.T) {
	col := testColumn(0, 0)

	// pulling its weight
	col.Boost = 3
	col.DutyCycleActive = 0.2
	col.DutyCycleMin = 0.1
	assert.Equal(t, 1.0, col.NextBoost())

	// all zero neighborhood takes the first branch
	col.DutyCycleActive = 0
	col.DutyCycleMin = 0
	assert.Equal(t, 1.0, col.NextBoost())

	// never fired
	col.Boost = 2
	col.DutyCycleMin = 0.1
	assert.InDelta(t, 2.1, col.NextBoost(), 1e-12)

	// proportional
	col.DutyCycleActive = 0.025
	assert.InDelta(t, 4.0, col.NextBoost(), 1e-12)
}

func TestBoostGrowsWhileIdle(t *testing.T) {
	col := testColumn(0, 0)
	col.DutyCycleMin = 0.01

	prev := col.Boost
	for i := 0; i < 50; i++ {
		col.Boost = col.NextBoost()
		assert.True(t, col.Boost >= prev)
		assert.True(t, col.Boost >= 1)
		prev = col.Boost
	}
	assert.InDelta(t, math.Pow(BoostGrowth, 50), col.Boost, 1e-9)
}

func TestDutyCycleDecay(t *testing.T) {
	col := testColumn(0, 0)
	col.DutyCycleActive = 0.5
	col.Active = false
	assert.InDelta(t, 0.4975, col.NextDutyCycleActive(), 1e-15)

	col.Active = true
	assert.InDelta(t, 0.4975+0.005, col.NextDutyCycleActive(), 1e-12)
}

func TestDutyCycleOverlap(t *testing.T) {
	col := testColumn(0, 0)
	col.DutyCycleOverlap = 0.2

	// MinOverlap is 5, overlap has to be strictly above it
	col.Overlap = 5
	assert.InDelta(t, 0.199, col.NextDutyCycleOverlap(), 1e-12)

	col.Overlap = 6
	assert.InDelta(t, 0.204, col.NextDutyCycleOverlap(), 1e-12)
}

func TestApplyBoost(t *testing.T) {
	col := testColumn(0, 0)
	col.Boost = 1.5

	col.Overlap = 4
	col.applyBoost()
	assert.Equal(t, 0.0, col.Overlap)

	col.Overlap = 6
	col.applyBoost()
	assert.Equal(t, 9.0, col.Overlap)
}

func TestColumnDistanceTo(t *testing.T) {
	col := testColumn(2, 3)
	assert.Equal(t, 0.0, col.DistanceTo(2, 3))
	assert.Equal(t, 5.0, col.DistanceTo(5, 7))

	col.compression = 2
	assert.Equal(t, 0.0, col.DistanceTo(4, 6))
}

func TestColumnEquality(t *testing.T) {
	p := NewHtmParams()
	net := uuid.New()
	a := newColumn(net, 1, 2, &p)
	b := newColumn(net, 1, 2, &p)
	c := newColumn(net, 2, 1, &p)
	other := newColumn(uuid.New(), 1, 2, &p)

	b.Boost = 7
	b.Overlap = 3

	assert.True(t, a.Equal(&a))
	assert.True(t, a.Equal(&b))
	assert.True(t, b.Equal(&a))
	assert.False(t, a.Equal(&c))
	assert.False(t, a.Equal(&other))

	// same state, different network
	other.Boost = a.Boost
	other.Overlap = a.Overlap
	assert.False(t, other.Equal(&a))
	assert.False(t, a.Equal(nil))
}

func TestColumnCells(t *testing.T) {
	col := testColumn(0, 0)
	require.Equal(t, 3, col.NumCells())
	for i := 0; i < col.NumCells(); i++ {
		assert.Equal(t, i, col.Cell(i).Index)
	}
	assert.False(t, col.Segment().IsDistal())
}

func addFiringSegment(t *testing.T, cell *Cell, firing int, active fakeActivity) {
	seg := cell.CreateSegment()
	for i := 0; i < firing; i++ {
		src := CellRef(5, i, 0)
		active[src] = true
		require.NoError(t, seg.AddSynapse(NewSynapse(src, 0.5)))
	}
}

func TestBestCellMostFiring(t *testing.T) {
	col := testColumn(0, 0)
	active := fakeActivity{}

	addFiringSegment(t, col.Cell(0), 1, active)
	addFiringSegment(t, col.Cell(1), 3, active)
	addFiringSegment(t, col.Cell(2), 3, active)

	// ties go to the lowest index
	assert.Equal(t, 1, col.BestCell(active).Index)
}

func TestBestCellFewestSegments(t *testing.T) {
	col := testColumn(0, 0)
	none := fakeActivity{}

	col.Cell(0).CreateSegment()
	col.Cell(0).CreateSegment()
	col.Cell(1).CreateSegment()
	col.Cell(2).CreateSegment()

	assert.Equal(t, 1, col.BestCell(none).Index)

	empty := testColumn(0, 0)
	assert.Equal(t, 0, empty.BestCell(none).Index)
}

func TestCellBestMatchingSegment(t *testing.T) {
	col := testColumn(0, 0)
	cell := col.Cell(0)
	active := fakeActivity{}

	seg, count := cell.BestMatchingSegment(active)
	assert.Nil(t, seg)
	assert.Equal(t, 0, count)

	addFiringSegment(t, cell, 2, active)
	seg, count = cell.BestMatchingSegment(active)
	require.NotNil(t, seg)
	assert.Equal(t, 2, count)
	assert.True(t, seg.IsDistal())

	assert.Equal(t, ErrProximalSegment, cell.AddSegment(col.Segment()))
	assert.NoError(t, cell.AddSegment(NewSegment(true, cell.params)))
	assert.Equal(t, 2, cell.NumSegments())
}
