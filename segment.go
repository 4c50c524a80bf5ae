package htm

import (
	"errors"
	"fmt"
)

var ErrCapacity = errors.New("segment synapse capacity exceeded")

//Returned when adding a synapse to a full segment
type CapacityError struct {
	Capacity int
	Source   SourceRef
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("segment already holds %v synapses, cannot add source %v,%v",
		e.Capacity, e.Source.X, e.Source.Y)
}

func (e *CapacityError) Unwrap() error {
	return ErrCapacity
}

/*
Segment is one dendrite and the synapses it owns. A proximal segment
(distal == false) listens to input cells, a distal segment listens to other
cells. Duplicate sources are allowed and each one counts separately.
*/
type Segment struct {
	distal bool
	params *SynapseParams
	syns   []Synapse
}

//Creates a new empty segment
func NewSegment(distal bool, params *SynapseParams) *Segment {
	seg := new(Segment)
	seg.distal = distal
	seg.params = params
	seg.syns = make([]Synapse, 0, params.SynapsesPerSegment)
	return seg
}

func (seg *Segment) IsDistal() bool {
	return seg.distal
}

func (seg *Segment) Len() int {
	return len(seg.syns)
}

//Returns synapse at idx
func (seg *Segment) Synapse(idx int) Synapse {
	return seg.syns[idx]
}

//Returns a copy of the segment's synapses
func (seg *Segment) Synapses() []Synapse {
	result := make([]Synapse, len(seg.syns))
	copy(result, seg.syns)
	return result
}

/*
Appends syn to the segment. Permanence is clamped into the configured range.
Fails with a *CapacityError once MaxSynapsesPerSegment is reached.
*/
func (seg *Segment) AddSynapse(syn Synapse) error {
	if len(seg.syns) >= seg.params.MaxSynapsesPerSegment {
		return &CapacityError{Capacity: seg.params.MaxSynapsesPerSegment, Source: syn.Source}
	}
	syn.Permanence = clampFloat64(syn.Permanence, seg.params.MinPermanence, seg.params.MaxPermanence)
	seg.syns = append(seg.syns, syn)
	return nil
}

//Returns indices of synapses that are connected and see active sources
func (seg *Segment) SynapsesFiring(state ActivityState) []int {
	var result []int
	for idx := range seg.syns {
		if seg.syns[idx].IsFiring(seg.params.ConnectedCutoff, state) {
			result = append(result, idx)
		}
	}
	return result
}

func (seg *Segment) NumFiring(state ActivityState) int {
	count := 0
	for idx := range seg.syns {
		if seg.syns[idx].IsFiring(seg.params.ConnectedCutoff, state) {
			count++
		}
	}
	return count
}

//Returns the connected synapses
func (seg *Segment) SynapsesConnected() []Synapse {
	var result []Synapse
	for _, syn := range seg.syns {
		if syn.IsConnected(seg.params.ConnectedCutoff) {
			result = append(result, syn)
		}
	}
	return result
}

func (seg *Segment) NumConnected() int {
	count := 0
	for idx := range seg.syns {
		if seg.syns[idx].IsConnected(seg.params.ConnectedCutoff) {
			count++
		}
	}
	return count
}

//Raises every synapse's permanence by amount
func (seg *Segment) IncreasePermanences(amount float64) {
	for idx := range seg.syns {
		seg.syns[idx].IncreasePermanence(amount, seg.params.MaxPermanence)
	}
}

//Lowers every synapse's permanence by amount
func (seg *Segment) DecreasePermanences(amount float64) {
	for idx := range seg.syns {
		seg.syns[idx].DecreasePermanence(amount, seg.params.MinPermanence)
	}
}

/*
Learning rule for a winning column: synapses on active sources are raised by
PermanenceIncrement, all others are lowered by PermanenceDecrement.
*/
func (seg *Segment) AdaptPermanences(state ActivityState) {
	for idx := range seg.syns {
		syn := &seg.syns[idx]
		if state.IsActive(syn.Source) {
			syn.IncreasePermanence(seg.params.PermanenceIncrement, seg.params.MaxPermanence)
		} else {
			syn.DecreasePermanence(seg.params.PermanenceDecrement, seg.params.MinPermanence)
		}
	}
}
