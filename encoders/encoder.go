package encoders

/*
A value encoder takes a value and encodes it with a partial sparse representation
of bits.
*/
type ValueEncoder interface {
	//Width in bits
	GetWidth() int
	Encode(input float64) ([]bool, error)
	GetName() string
}

//Encodes multivariable input by concatenating each encoder's output
type Encoder struct {
	Encoders []ValueEncoder
}

func (e *Encoder) Width() int {
	result := 0
	for _, val := range e.Encoders {
		result += val.GetWidth()
	}
	return result
}

//Encodes inputs[i] with Encoders[i]
func (e *Encoder) Encode(inputs []float64) ([]bool, error) {
	if len(inputs) != len(e.Encoders) {
		return nil, ErrInputCount
	}
	result := make([]bool, 0, e.Width())
	for i, enc := range e.Encoders {
		bits, err := enc.Encode(inputs[i])
		if err != nil {
			return nil, err
		}
		result = append(result, bits...)
	}
	return result, nil
}
