package htm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultParamsValid(t *testing.T) {
	p := NewHtmParams()
	assert.NoError(t, p.Validate())
	assert.Equal(t, 0.2, p.Synapse.ConnectedCutoff)
	assert.Equal(t, 5, p.MinOverlap)
}

func TestInvalidParams(t *testing.T) {
	cases := map[string]func(p *HtmParams){
		"radius":       func(p *HtmParams) { p.InhibitionRadius = -1 },
		"cells":        func(p *HtmParams) { p.CellsPerColumn = 0 },
		"bias peak":    func(p *HtmParams) { p.InputBiasPeak = 0 },
		"bias std dev": func(p *HtmParams) { p.InputBiasStdDev = -0.1 },
		"compression":  func(p *HtmParams) { p.InputCompression = 0 },
		"activity":     func(p *HtmParams) { p.DesiredLocalActivity = 0 },
		"min overlap":  func(p *HtmParams) { p.MinOverlap = -2 },
		"duty cycle":   func(p *HtmParams) { p.MinDutyCycleFraction = 1.5 },
		"synapses":     func(p *HtmParams) { p.Synapse.SynapsesPerSegment = 0 },
		"capacity":     func(p *HtmParams) { p.Synapse.MaxSynapsesPerSegment = 10 },
		"perm range":   func(p *HtmParams) { p.Synapse.MaxPermanence = 0 },
		"cutoff":       func(p *HtmParams) { p.Synapse.ConnectedCutoff = 1.5 },
		"increment":    func(p *HtmParams) { p.Synapse.PermanenceIncrement = 0 },
		"threshold":    func(p *HtmParams) { p.Synapse.MinThreshold = 0 },
	}

	for name, mutate := range cases {
		p := NewHtmParams()
		mutate(&p)
		err := p.Validate()
		assert.True(t, errors.Is(err, ErrInvalidParams), name)

		_, err = NewHtm(p)
		assert.Error(t, err, name)
	}
}
