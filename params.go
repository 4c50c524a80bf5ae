package htm

import (
	"errors"
	"fmt"
)

var ErrInvalidParams = errors.New("invalid htm params")

/*
Params shared by every synapse and segment in a network. Permanences are
clamped to [MinPermanence, MaxPermanence] by every adjustment.
*/
type SynapseParams struct {
	//Number of synapses wired onto each proximal segment at initialization
	SynapsesPerSegment int
	//Hard limit on synapses per segment, adding beyond it is an error
	MaxSynapsesPerSegment int
	//A synapse is connected when its permanence is >= this value
	ConnectedCutoff     float64
	PermanenceIncrement float64
	PermanenceDecrement float64
	MinPermanence       float64
	MaxPermanence       float64
	//Minimum firing synapses for a distal segment to count as matching
	MinThreshold int
}

/*
Params for initializing an htm network. Copied into the network by NewHtm
and never modified afterwards.
*/
type HtmParams struct {
	//Half width of the square neighborhood used for inhibition
	InhibitionRadius int
	CellsPerColumn   int
	//Locality bias factor applied to a synapse whose input sits exactly
	//at the column's position
	InputBiasPeak float64
	//Std deviation of the locality bias, as a fraction of the longer input side
	InputBiasStdDev float64
	//Ratio mapping column coordinates into input coordinates
	InputCompression float64
	//Number of columns allowed to win inside one neighborhood
	DesiredLocalActivity int
	//Overlap below this is treated as no overlap
	MinOverlap int
	//dutyCycleMin is this fraction of the neighborhood's best active duty cycle
	MinDutyCycleFraction float64
	Seed                 int64
	Verbosity            int

	Synapse SynapseParams
}

func NewSynapseParams() SynapseParams {
	return SynapseParams{
		SynapsesPerSegment:    40,
		MaxSynapsesPerSegment: 128,
		ConnectedCutoff:       0.2,
		PermanenceIncrement:   0.05,
		PermanenceDecrement:   0.05,
		MinPermanence:         0.0,
		MaxPermanence:         1.0,
		MinThreshold:          1,
	}
}

//Returns default htm params
func NewHtmParams() HtmParams {
	return HtmParams{
		InhibitionRadius:     3,
		CellsPerColumn:       3,
		InputBiasPeak:        1.0,
		InputBiasStdDev:      0.25,
		InputCompression:     1.0,
		DesiredLocalActivity: 3,
		MinOverlap:           5,
		MinDutyCycleFraction: 0.01,
		Seed:                 42,
		Verbosity:            0,
		Synapse:              NewSynapseParams(),
	}
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidParams, fmt.Sprintf(format, args...))
}

func (sp SynapseParams) Validate() error {
	switch {
	case sp.SynapsesPerSegment <= 0:
		return invalid("synapses per segment must be > 0, was %v", sp.SynapsesPerSegment)
	case sp.MaxSynapsesPerSegment < sp.SynapsesPerSegment:
		return invalid("max synapses per segment %v is less than synapses per segment %v",
			sp.MaxSynapsesPerSegment, sp.SynapsesPerSegment)
	case sp.MinPermanence >= sp.MaxPermanence:
		return invalid("permanence range [%v, %v] is empty", sp.MinPermanence, sp.MaxPermanence)
	case sp.ConnectedCutoff <= sp.MinPermanence || sp.ConnectedCutoff > sp.MaxPermanence:
		return invalid("connected cutoff %v outside permanence range", sp.ConnectedCutoff)
	case sp.PermanenceIncrement <= 0 || sp.PermanenceDecrement < 0:
		return invalid("permanence increment must be > 0 and decrement >= 0")
	case sp.MinThreshold < 1:
		return invalid("min threshold must be >= 1, was %v", sp.MinThreshold)
	}
	return nil
}

func (p HtmParams) Validate() error {
	switch {
	case p.InhibitionRadius < 0:
		return invalid("inhibition radius must be >= 0, was %v", p.InhibitionRadius)
	case p.CellsPerColumn <= 0:
		return invalid("cells per column must be > 0, was %v", p.CellsPerColumn)
	case p.InputBiasPeak <= 0:
		return invalid("input bias peak must be > 0, was %v", p.InputBiasPeak)
	case p.InputBiasStdDev <= 0:
		return invalid("input bias std dev must be > 0, was %v", p.InputBiasStdDev)
	case p.InputCompression <= 0:
		return invalid("input compression must be > 0, was %v", p.InputCompression)
	case p.DesiredLocalActivity <= 0:
		return invalid("desired local activity must be > 0, was %v", p.DesiredLocalActivity)
	case p.MinOverlap < 0:
		return invalid("min overlap must be >= 0, was %v", p.MinOverlap)
	case p.MinDutyCycleFraction < 0 || p.MinDutyCycleFraction > 1:
		return invalid("min duty cycle fraction must be in [0, 1], was %v", p.MinDutyCycleFraction)
	}
	return p.Synapse.Validate()
}
