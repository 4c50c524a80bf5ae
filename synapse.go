package htm

/*
SourceRef addresses the thing a synapse listens to. Proximal synapses point
at the input cell (X, Y) and leave Cell at -1. Distal synapses point at cell
Cell of the column at (X, Y).
*/
type SourceRef struct {
	X    int
	Y    int
	Cell int
}

//Reference to the input cell at x,y
func InputRef(x, y int) SourceRef {
	return SourceRef{X: x, Y: y, Cell: -1}
}

//Reference to cell idx of the column at x,y
func CellRef(x, y, idx int) SourceRef {
	return SourceRef{X: x, Y: y, Cell: idx}
}

func (r SourceRef) IsInput() bool {
	return r.Cell < 0
}

//ActivityState reports whether a synapse source is currently active.
type ActivityState interface {
	IsActive(src SourceRef) bool
}

type Synapse struct {
	Source     SourceRef
	Permanence float64
}

func NewSynapse(src SourceRef, permanence float64) Synapse {
	return Synapse{Source: src, Permanence: permanence}
}

func (s *Synapse) IsConnected(cutoff float64) bool {
	return s.Permanence >= cutoff
}

//Connected and listening to an active source
func (s *Synapse) IsFiring(cutoff float64, state ActivityState) bool {
	return s.IsConnected(cutoff) && state.IsActive(s.Source)
}

//Raises permanence by amount, saturating at max
func (s *Synapse) IncreasePermanence(amount, max float64) {
	s.Permanence += amount
	if s.Permanence > max {
		s.Permanence = max
	}
}

//Lowers permanence by amount, saturating at min
func (s *Synapse) DecreasePermanence(amount, min float64) {
	s.Permanence -= amount
	if s.Permanence < min {
		s.Permanence = min
	}
}
