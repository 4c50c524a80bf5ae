package htm

import (
	"bytes"
	"errors"
	"fmt"
)

var (
	ErrEmptyInput  = errors.New("input grid is empty")
	ErrRaggedInput = errors.New("input grid rows differ in length")
	ErrInputShape  = errors.New("input grid shape does not match network")
)

/*
DenseBinaryMatrix holds the active/inactive state of the raw input grid.
Row r, col c is the input cell at x=r, y=c. It implements ActivityState for
proximal synapses.
*/
type DenseBinaryMatrix struct {
	Rows    int
	Cols    int
	entries []bool
}

//Create new matrix of specified size, all entries off
func NewDenseBinaryMatrix(rows, cols int) *DenseBinaryMatrix {
	m := &DenseBinaryMatrix{}
	m.Rows = rows
	m.Cols = cols
	m.entries = make([]bool, rows*cols)
	return m
}

//Validates a rectangular, non empty shape
func checkShape(rows int, rowLen func(int) int) (int, error) {
	if rows < 1 {
		return 0, ErrEmptyInput
	}
	cols := rowLen(0)
	if cols < 1 {
		return 0, ErrEmptyInput
	}
	for r := 1; r < rows; r++ {
		if rowLen(r) != cols {
			return 0, fmt.Errorf("%w: row %v has %v entries, expected %v", ErrRaggedInput, r, rowLen(r), cols)
		}
	}
	return cols, nil
}

//Create matrix from specified dense bool grid
func NewDenseBinaryMatrixFromDense(values [][]bool) (*DenseBinaryMatrix, error) {
	cols, err := checkShape(len(values), func(r int) int { return len(values[r]) })
	if err != nil {
		return nil, err
	}

	m := NewDenseBinaryMatrix(len(values), cols)
	for r := 0; r < m.Rows; r++ {
		copy(m.entries[r*cols:(r+1)*cols], values[r])
	}
	return m, nil
}

// Creates a matrix from raw numeric input
// (any values greater than 0 are true)
func NewDenseBinaryMatrixFromFloats(values [][]float64) (*DenseBinaryMatrix, error) {
	cols, err := checkShape(len(values), func(r int) int { return len(values[r]) })
	if err != nil {
		return nil, err
	}

	m := NewDenseBinaryMatrix(len(values), cols)
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < cols; c++ {
			if values[r][c] > 0 {
				m.Set(r, c, true)
			}
		}
	}
	return m, nil
}

func (m *DenseBinaryMatrix) inBounds(row, col int) bool {
	return row >= 0 && row < m.Rows && col >= 0 && col < m.Cols
}

//Get value at row,col position
func (m *DenseBinaryMatrix) Get(row int, col int) bool {
	if !m.inBounds(row, col) {
		panic(fmt.Sprintf("position %v,%v out of bounds %vx%v", row, col, m.Rows, m.Cols))
	}
	return m.entries[row*m.Cols+col]
}

//Set value at row,col position
func (m *DenseBinaryMatrix) Set(row int, col int, value bool) {
	if !m.inBounds(row, col) {
		panic(fmt.Sprintf("position %v,%v out of bounds %vx%v", row, col, m.Rows, m.Cols))
	}
	m.entries[row*m.Cols+col] = value
}

//Input sources outside the grid are never active
func (m *DenseBinaryMatrix) IsActive(src SourceRef) bool {
	return m.inBounds(src.X, src.Y) && m.entries[src.X*m.Cols+src.Y]
}

//Fills every entry with val
func (m *DenseBinaryMatrix) Fill(val bool) {
	for i := range m.entries {
		m.entries[i] = val
	}
}

//Returns total true entries
func (m *DenseBinaryMatrix) TotalNonZeroCount() int {
	count := 0
	for _, val := range m.entries {
		if val {
			count++
		}
	}
	return count
}

func (m *DenseBinaryMatrix) SameShape(other *DenseBinaryMatrix) bool {
	return m.Rows == other.Rows && m.Cols == other.Cols
}

//Copys a matrix
func (m *DenseBinaryMatrix) Copy() *DenseBinaryMatrix {
	if m == nil {
		return nil
	}

	result := NewDenseBinaryMatrix(m.Rows, m.Cols)
	copy(result.entries, m.entries)
	return result
}

func (m *DenseBinaryMatrix) ToString() string {
	var buffer bytes.Buffer

	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			if m.Get(r, c) {
				buffer.WriteByte('1')
			} else {
				buffer.WriteByte('0')
			}
		}
		buffer.WriteByte('\n')
	}

	return buffer.String()
}

/*
InputCell is a read only view of one cell of the input grid. It is shared by
every synapse that references x,y and always reflects the current input.
*/
type InputCell struct {
	X    int
	Y    int
	grid *DenseBinaryMatrix
}

func (ic InputCell) IsActive() bool {
	return ic.grid.Get(ic.X, ic.Y)
}

func (ic InputCell) Ref() SourceRef {
	return InputRef(ic.X, ic.Y)
}
