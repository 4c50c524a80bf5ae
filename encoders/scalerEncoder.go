package encoders

import (
	"errors"
	"fmt"

	"github.com/htm-community/spatialpool/utils"
)

var (
	ErrInvalidEncoder = errors.New("invalid scaler encoder params")
	ErrOutOfRange     = errors.New("input out of encoder range")
	ErrInputCount     = errors.New("input count does not match encoder count")
)

/*
Width -- number of on bits, must be odd.

N -- the number of bits in the output. Must be greater than Width.

Periodic -- values wrap around MaxVal back to MinVal. Input must then be
in [MinVal, MaxVal).

ClipInput -- non periodic input outside the range is clipped instead of
returning ErrOutOfRange.
*/
type ScalerEncoderParams struct {
	Width     int
	MinVal    float64
	MaxVal    float64
	N         int
	Periodic  bool
	ClipInput bool
	Name      string
	Verbosity int
}

func NewScalerEncoderParams(width int, minVal, maxVal float64) *ScalerEncoderParams {
	p := new(ScalerEncoderParams)
	p.Width = width
	p.MinVal = minVal
	p.MaxVal = maxVal
	p.N = 0
	p.Name = "scaler"
	return p
}

/*
A scaler encoder encodes a numeric (floating point) value into an array
of bits. The output is 0's except for a contiguous block of 1's. The
location of this contiguous block varies continuously with the input value.
*/
type ScalerEncoder struct {
	ScalerEncoderParams

	halfWidth  int
	padding    int
	nInternal  int
	valRange   float64
	resolution float64
}

func NewScalerEncoder(p *ScalerEncoderParams) (*ScalerEncoder, error) {
	if p.Width <= 0 || p.Width%2 == 0 {
		return nil, fmt.Errorf("%w: width must be an odd positive number, was %v", ErrInvalidEncoder, p.Width)
	}
	if p.MaxVal <= p.MinVal {
		return nil, fmt.Errorf("%w: max %v must exceed min %v", ErrInvalidEncoder, p.MaxVal, p.MinVal)
	}
	if p.N <= p.Width {
		return nil, fmt.Errorf("%w: n %v must exceed width %v", ErrInvalidEncoder, p.N, p.Width)
	}

	se := new(ScalerEncoder)
	se.ScalerEncoderParams = *p
	se.halfWidth = p.Width / 2
	if !p.Periodic {
		se.padding = se.halfWidth
	}
	se.nInternal = p.N - 2*se.padding
	se.valRange = p.MaxVal - p.MinVal

	if p.Periodic {
		se.resolution = se.valRange / float64(se.nInternal)
	} else {
		se.resolution = se.valRange / float64(se.nInternal-1)
	}

	return se, nil
}

func (se *ScalerEncoder) GetWidth() int {
	return se.N
}

func (se *ScalerEncoder) GetName() string {
	return se.Name
}

func (se *ScalerEncoder) Resolution() float64 {
	return se.resolution
}

/* Return the bit offset of the first bit to be set in the encoder output.
For periodic encoders, this can be a negative number when the encoded output
wraps around. */
func (se *ScalerEncoder) getFirstOnBit(input float64) (int, error) {
	if se.Periodic {
		if input < se.MinVal || input >= se.MaxVal {
			return 0, fmt.Errorf("%w: %v not in periodic range [%v, %v)", ErrOutOfRange, input, se.MinVal, se.MaxVal)
		}
	} else if input < se.MinVal || input > se.MaxVal {
		if !se.ClipInput {
			return 0, fmt.Errorf("%w: %v not in range [%v, %v]", ErrOutOfRange, input, se.MinVal, se.MaxVal)
		}
		if se.Verbosity > 0 {
			fmt.Printf("Clipped input %v=%v to range %v - %v\n", se.Name, input, se.MinVal, se.MaxVal)
		}
		if input < se.MinVal {
			input = se.MinVal
		} else {
			input = se.MaxVal
		}
	}

	var centerbin int
	if se.Periodic {
		centerbin = int((input-se.MinVal)*float64(se.nInternal)/se.valRange) + se.padding
	} else {
		centerbin = int(((input-se.MinVal)+se.resolution/2)/se.resolution) + se.padding
	}

	return centerbin - se.halfWidth, nil
}

func (se *ScalerEncoder) Encode(input float64) ([]bool, error) {
	minbin, err := se.getFirstOnBit(input)
	if err != nil {
		return nil, err
	}

	output := make([]bool, se.N)
	maxbin := minbin + 2*se.halfWidth

	if se.Periodic {
		// Handle the edges by computing wrap-around
		if maxbin >= se.N {
			utils.FillSliceRangeBool(output, true, 0, maxbin-se.N+1)
			maxbin = se.N - 1
		}
		if minbin < 0 {
			utils.FillSliceRangeBool(output, true, se.N+minbin, se.N)
			minbin = 0
		}
	}

	utils.FillSliceRangeBool(output, true, minbin, maxbin+1)

	if se.Verbosity >= 2 {
		fmt.Println("input:", input)
		fmt.Printf("range: %v - %v \n", se.MinVal, se.MaxVal)
		fmt.Printf("n: %v width: %v resolution: %v \n", se.N, se.Width, se.resolution)
		fmt.Printf("output: %v \n", output)
	}

	return output, nil
}

//Encodes input and folds the bits row major into a rows x N/rows grid
func (se *ScalerEncoder) EncodeGrid(input float64, rows int) ([][]bool, error) {
	bits, err := se.Encode(input)
	if err != nil {
		return nil, err
	}
	return utils.Reshape2DBool(bits, rows)
}
