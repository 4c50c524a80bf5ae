package encoders

import (
	"errors"
	"testing"

	"github.com/htm-community/spatialpool/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodicEncoding(t *testing.T) {
	p := NewScalerEncoderParams(3, 1, 8)
	p.N = 14
	p.Periodic = true

	e, err := NewScalerEncoder(p)
	require.NoError(t, err)

	cases := []struct {
		input    float64
		expected []int
	}{
		{1, []int{1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}},
		{2, []int{0, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
		{3, []int{0, 0, 0, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0}},
	}
	for _, c := range cases {
		encoded, err := e.Encode(c.input)
		require.NoError(t, err)
		assert.Equal(t, utils.Make1DBool(c.expected), encoded, "input %v", c.input)
	}

	_, err = e.Encode(8)
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestNonPeriodicEncoding(t *testing.T) {
	p := NewScalerEncoderParams(3, 0, 10)
	p.N = 13

	e, err := NewScalerEncoder(p)
	require.NoError(t, err)
	assert.Equal(t, 1.0, e.Resolution())

	encoded, err := e.Encode(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, utils.OnIndices(encoded))

	encoded, err = e.Encode(5)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 6, 7}, utils.OnIndices(encoded))

	encoded, err = e.Encode(10)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 11, 12}, utils.OnIndices(encoded))

	_, err = e.Encode(11)
	assert.True(t, errors.Is(err, ErrOutOfRange))

	e.ClipInput = true
	encoded, err = e.Encode(11)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 11, 12}, utils.OnIndices(encoded))
}

func TestInvalidParams(t *testing.T) {
	p := NewScalerEncoderParams(4, 0, 10)
	p.N = 20
	_, err := NewScalerEncoder(p)
	assert.True(t, errors.Is(err, ErrInvalidEncoder))

	p = NewScalerEncoderParams(3, 0, 10)
	p.N = 3
	_, err = NewScalerEncoder(p)
	assert.True(t, errors.Is(err, ErrInvalidEncoder))
}

func TestEncodeGrid(t *testing.T) {
	p := NewScalerEncoderParams(3, 0, 14)
	p.N = 16

	e, err := NewScalerEncoder(p)
	require.NoError(t, err)

	grid, err := e.EncodeGrid(0, 4)
	require.NoError(t, err)
	require.Len(t, grid, 4)
	assert.Equal(t, utils.Make1DBool([]int{1, 1, 1, 0}), grid[0])
	for _, row := range grid[1:] {
		assert.Equal(t, 0, utils.CountTrue(row))
	}

	_, err = e.EncodeGrid(0, 3)
	assert.Error(t, err)
}

func TestMultiEncoder(t *testing.T) {
	a, err := NewScalerEncoder(&ScalerEncoderParams{Width: 3, MinVal: 0, MaxVal: 10, N: 13})
	require.NoError(t, err)
	b, err := NewScalerEncoder(&ScalerEncoderParams{Width: 3, MinVal: 1, MaxVal: 8, N: 14, Periodic: true})
	require.NoError(t, err)

	enc := Encoder{Encoders: []ValueEncoder{a, b}}
	assert.Equal(t, 27, enc.Width())

	bits, err := enc.Encode([]float64{0, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 14, 15, 16}, utils.OnIndices(bits))

	_, err = enc.Encode([]float64{0})
	assert.True(t, errors.Is(err, ErrInputCount))
}
