package utils

import (
	"errors"
	"fmt"
	"math"
)

var ErrReshape = errors.New("cannot reshape slice")

//Populates bool slice with specified value
func FillSliceBool(values []bool, value bool) {
	for i := range values {
		values[i] = value
	}
}

//Sets values[start:end] to value
func FillSliceRangeBool(values []bool, value bool, start, end int) {
	for i := start; i < end; i++ {
		values[i] = value
	}
}

//Returns number of on bits
func CountTrue(values []bool) int {
	count := 0
	for _, val := range values {
		if val {
			count++
		}
	}
	return count
}

//Returns "on" indices
func OnIndices(s []bool) []int {
	var result []int
	for idx, val := range s {
		if val {
			result = append(result, idx)
		}
	}
	return result
}

//Splits values row major into rows of equal length
func Reshape2DBool(values []bool, rows int) ([][]bool, error) {
	if rows < 1 || len(values)%rows != 0 {
		return nil, fmt.Errorf("%w: %v values into %v rows", ErrReshape, len(values), rows)
	}
	cols := len(values) / rows
	result := make([][]bool, rows)
	for r := range result {
		result[r] = make([]bool, cols)
		copy(result[r], values[r*cols:(r+1)*cols])
	}
	return result, nil
}

//Returns a rows x cols grid with every entry set to value
func Make2DBoolFilled(rows, cols int, value bool) [][]bool {
	result := make([][]bool, rows)
	for r := range result {
		result[r] = make([]bool, cols)
		FillSliceBool(result[r], value)
	}
	return result
}

//Helper for unit tests where int literals are easier
// to read
func Make2DBool(values [][]int) [][]bool {
	result := make([][]bool, len(values))

	for i, val := range values {
		result[i] = Make1DBool(val)
	}

	return result
}

func Make1DBool(values []int) []bool {
	result := make([]bool, len(values))
	for i, val := range values {
		result[i] = val == 1
	}
	return result
}

func RoundPrec(x float64, prec int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}

	sign := 1.0
	if x < 0 {
		sign = -1
		x *= -1
	}

	var rounder float64
	pow := math.Pow(10, float64(prec))
	intermed := x * pow
	_, frac := math.Modf(intermed)

	if frac >= 0.5 {
		rounder = math.Ceil(intermed)
	} else {
		rounder = math.Floor(intermed)
	}

	return rounder / pow * sign
}

//Compares a and b rounded to prec decimal places
func AlmostEqual(a, b float64, prec int) bool {
	return RoundPrec(a, prec) == RoundPrec(b, prec)
}
