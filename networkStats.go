//
// Code related to network stats
//

package htm

import (
	"fmt"

	"github.com/zacg/floats"
	"github.com/zacg/go.matrix"
	"github.com/zacg/ints"
)

//Number of buckets in the permanence histogram
const PermanenceBuckets = 10

type SegmentStats struct {
	NumColumns        int
	NumSegments       int
	NumSynapses       int
	NumConnected      int
	NumDistalSegments int
	//Fraction of proximal synapses per permanence bucket of width 1/PermanenceBuckets
	PermanenceHistogram []float64
	AvgReceptiveField   float64
}

func (s *SegmentStats) ToString() string {
	result := "Segment stats: \n"
	result += fmt.Sprintf("NumColumns %v \n", s.NumColumns)
	result += fmt.Sprintf("NumSegments %v \n", s.NumSegments)
	result += fmt.Sprintf("NumSynapses %v \n", s.NumSynapses)
	result += fmt.Sprintf("NumConnected %v \n", s.NumConnected)
	result += fmt.Sprintf("NumDistalSegments %v \n", s.NumDistalSegments)
	result += fmt.Sprintf("PermanenceHistogram %v \n", s.PermanenceHistogram)
	result += fmt.Sprintf("AvgReceptiveField %v \n", s.AvgReceptiveField)
	return result
}

/*
Returns information about the distribution of segments, synapses and
permanence values across the network's proximal segments.
*/
func (h *Htm) CalcSegmentStats() (SegmentStats, error) {
	result := SegmentStats{}
	if !h.Initialized() {
		return result, ErrNotInitialized
	}

	hist := make([]float64, PermanenceBuckets)
	sp := h.params.Synapse
	permRange := sp.MaxPermanence - sp.MinPermanence

	for i := range h.columns {
		col := &h.columns[i]
		result.NumColumns++
		result.NumSegments++

		for _, syn := range col.segment.syns {
			result.NumSynapses++
			if syn.IsConnected(sp.ConnectedCutoff) {
				result.NumConnected++
			}
			bucket := int((syn.Permanence - sp.MinPermanence) / permRange * PermanenceBuckets)
			if bucket >= PermanenceBuckets {
				bucket = PermanenceBuckets - 1
			}
			hist[bucket]++
		}

		for j := range col.cells {
			result.NumDistalSegments += col.cells[j].NumSegments()
		}
	}
	result.NumSegments += result.NumDistalSegments

	if total := floats.Sum(hist); total > 0 {
		floats.DivConst(total, hist)
	}
	result.PermanenceHistogram = hist

	avg, err := h.AverageReceptiveFieldSize()
	if err != nil {
		return result, err
	}
	result.AvgReceptiveField = avg

	return result, nil
}

/*
Sparse snapshot of proximal permanences, one row per column (x major) and
one col per input cell (x*length + y). Duplicate synapses onto the same
input keep the highest permanence.
*/
func (h *Htm) PermanenceMatrix() (*matrix.SparseMatrix, error) {
	if !h.Initialized() {
		return nil, ErrNotInitialized
	}

	numInputs := h.input.Rows * h.input.Cols
	elms := make(map[int]float64)
	result := matrix.MakeSparseMatrix(elms, len(h.columns), numInputs)

	for i := range h.columns {
		for _, syn := range h.columns[i].segment.syns {
			inputIdx := syn.Source.X*h.input.Cols + syn.Source.Y
			if syn.Permanence > result.Get(i, inputIdx) {
				result.Set(i, inputIdx, syn.Permanence)
			}
		}
	}
	return result, nil
}

/*
Returns the n columns that have been active most often, most active first.
Columns with equal counts come back in no particular order.
*/
func (h *Htm) MostActiveColumns(n int) []*Column {
	counts := make([]int, len(h.columns))
	for i := range h.columns {
		counts[i] = h.columns[i].ActiveCount
	}
	inds := make([]int, len(counts))
	for i := range inds {
		inds[i] = i
	}
	ints.Argsort(counts, inds)

	if n > len(inds) {
		n = len(inds)
	}
	if n < 0 {
		n = 0
	}
	result := make([]*Column, 0, n)
	for i := len(inds) - 1; i >= len(inds)-n; i-- {
		result = append(result, &h.columns[inds[i]])
	}
	return result
}
