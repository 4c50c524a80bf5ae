package htm

import (
	"fmt"
)

//Replaces the active input, the grid shape must match the network.
//Input cells handed out earlier see the new values.
func (h *Htm) UpdateInput(data [][]bool) error {
	m, err := NewDenseBinaryMatrixFromDense(data)
	if err != nil {
		return err
	}
	return h.UpdateInputMatrix(m)
}

func (h *Htm) UpdateInputMatrix(data *DenseBinaryMatrix) error {
	if !h.Initialized() {
		return ErrNotInitialized
	}
	if data == nil || !h.input.SameShape(data) {
		return fmt.Errorf("%w: expected %vx%v", ErrInputShape, h.width, h.length)
	}
	copy(h.input.entries, data.entries)
	return nil
}

/*
Step feeds data through one spatial pooling step and returns the active
columns.

	1. Overlap for every column from the current permanences, then boost.
	2. Inhibition for the whole grid, decided before any column changes.
	3. When learning, permanence, duty cycle and boost updates.
*/
func (h *Htm) Step(data [][]bool, learn bool) ([]*Column, error) {
	if err := h.UpdateInput(data); err != nil {
		return nil, err
	}
	return h.Compute(learn)
}

//Runs one step against the input already set on the network
func (h *Htm) Compute(learn bool) ([]*Column, error) {
	if !h.Initialized() {
		return nil, ErrNotInitialized
	}

	h.updateOverlaps()
	h.inhibitColumns()
	if learn {
		h.learn()
	}
	h.iteration++

	active := h.ColumnsActive()
	if h.params.Verbosity > 0 {
		fmt.Printf("iteration %v: %v of %v columns active\n", h.iteration, len(active), len(h.columns))
	}
	if h.params.Verbosity > 1 {
		for _, col := range active {
			fmt.Println(" ", col)
		}
	}
	return active, nil
}

//Phase 1, only reads permanences and input
func (h *Htm) updateOverlaps() {
	for i := range h.columns {
		h.columns[i].ComputeOverlap(h.input)
		h.columns[i].applyBoost()
	}
}

/*
Phase 2. A column wins when it has overlap and reaches the kth best overlap
of its neighborhood. Decisions are collected first so no column sees a
neighbor's new state.
*/
func (h *Htm) inhibitColumns() {
	active := make([]bool, len(h.columns))
	for i := range h.columns {
		col := &h.columns[i]
		minLocalActivity := h.KthNeighbor(col, h.params.DesiredLocalActivity).Overlap
		active[i] = col.Overlap > 0 && col.Overlap >= minLocalActivity
	}

	for i := range h.columns {
		h.columns[i].Active = active[i]
		if active[i] {
			h.columns[i].ActiveCount++
		}
	}
}

/*
Phase 3. Winners adapt their proximal synapses. Every column then takes its
dutyCycleMin from the previous step's neighborhood duty cycles, before any
duty cycle is updated.
*/
func (h *Htm) learn() {
	for i := range h.columns {
		if h.columns[i].Active {
			h.columns[i].segment.AdaptPermanences(h.input)
		}
	}

	minDutyCycles := make([]float64, len(h.columns))
	for i := range h.columns {
		minDutyCycles[i] = h.params.MinDutyCycleFraction * h.NeighborDutyCycleMax(&h.columns[i])
	}

	weakBump := 0.1 * h.params.Synapse.ConnectedCutoff
	for i := range h.columns {
		col := &h.columns[i]
		col.DutyCycleMin = minDutyCycles[i]
		col.DutyCycleActive = col.NextDutyCycleActive()
		col.Boost = col.NextBoost()
		col.DutyCycleOverlap = col.NextDutyCycleOverlap()
		if col.DutyCycleOverlap < col.DutyCycleMin {
			col.IncreasePermanences(weakBump)
		}
	}
}
