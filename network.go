package htm

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/cznic/mathutil"
	"github.com/gonum/floats"
	"github.com/google/uuid"
)

var (
	ErrNotInitialized     = errors.New("htm input has not been initialized")
	ErrAlreadyInitialized = errors.New("htm input is already initialized")
)

/*
Htm is the network of columns. Columns live in one arena indexed
x*length + y; everything else refers to them by position.
*/
type Htm struct {
	params HtmParams
	id     uuid.UUID

	width      int
	length     int
	longerSide int
	columns    []Column
	input      *DenseBinaryMatrix

	rng       *rand.Rand
	iteration int
}

//Create new htm network, params are validated and copied
func NewHtm(params HtmParams) (*Htm, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	h := new(Htm)
	h.params = params
	h.id = uuid.New()
	h.rng = rand.New(rand.NewSource(params.Seed))
	return h, nil
}

func (h *Htm) Params() HtmParams {
	return h.params
}

func (h *Htm) ID() uuid.UUID {
	return h.id
}

func (h *Htm) Width() int {
	return h.width
}

func (h *Htm) Length() int {
	return h.length
}

func (h *Htm) Initialized() bool {
	return h.columns != nil
}

//Number of processing steps run so far
func (h *Htm) Iteration() int {
	return h.iteration
}

func (h *Htm) index(x, y int) int {
	return x*h.length + y
}

//Returns column at x,y or nil when out of the grid
func (h *Htm) Column(x, y int) *Column {
	if x < 0 || x >= h.width || y < 0 || y >= h.length {
		return nil
	}
	return &h.columns[h.index(x, y)]
}

//Returns a view over the whole column grid
func (h *Htm) Columns() ColumnView {
	return ColumnView{net: h, x0: 0, x1: h.width, y0: 0, y1: h.length}
}

//Returns the active columns in grid order
func (h *Htm) ColumnsActive() []*Column {
	var result []*Column
	for i := range h.columns {
		if h.columns[i].Active {
			result = append(result, &h.columns[i])
		}
	}
	return result
}

//Returns every cell of every column, column by column
func (h *Htm) Cells() []*Cell {
	result := make([]*Cell, 0, len(h.columns)*h.params.CellsPerColumn)
	for i := range h.columns {
		for j := range h.columns[i].cells {
			result = append(result, &h.columns[i].cells[j])
		}
	}
	return result
}

//Returns a view of the input cell at x,y
func (h *Htm) InputCell(x, y int) (InputCell, error) {
	if h.input == nil {
		return InputCell{}, ErrNotInitialized
	}
	if !h.input.inBounds(x, y) {
		return InputCell{}, fmt.Errorf("input cell %v,%v outside %vx%v", x, y, h.input.Rows, h.input.Cols)
	}
	return InputCell{X: x, Y: y, grid: h.input}, nil
}

//Current input state, proximal synapses are evaluated against it.
//Nil before InitializeInput.
func (h *Htm) Input() ActivityState {
	if h.input == nil {
		return nil
	}
	return h.input
}

//Cell activity for distal synapses
func (h *Htm) CellState() ActivityState {
	return cellState{h}
}

type cellState struct {
	h *Htm
}

func (cs cellState) IsActive(src SourceRef) bool {
	col := cs.h.Column(src.X, src.Y)
	if col == nil || src.Cell < 0 || src.Cell >= len(col.cells) {
		return false
	}
	return col.cells[src.Cell].Active
}

//Wires the network to a bool input grid, see InitializeInputMatrix
func (h *Htm) InitializeInput(data [][]bool) error {
	m, err := NewDenseBinaryMatrixFromDense(data)
	if err != nil {
		return err
	}
	return h.InitializeInputMatrix(m)
}

//Wires the network to a numeric input grid, values > 0 are active
func (h *Htm) InitializeInputValues(data [][]float64) error {
	m, err := NewDenseBinaryMatrixFromFloats(data)
	if err != nil {
		return err
	}
	return h.InitializeInputMatrix(m)
}

/*
Creates one column per input cell and wires every proximal segment with
SynapsesPerSegment synapses to uniformly chosen input cells. Initial
permanence is drawn around ConnectedCutoff and scaled by the locality bias,
so receptive fields cluster around each column's position with long sparse
tails. The network is only modified once wiring succeeds, and the grid
shape is fixed from then on: later calls return ErrAlreadyInitialized.
*/
func (h *Htm) InitializeInputMatrix(data *DenseBinaryMatrix) error {
	if data == nil || data.Rows < 1 || data.Cols < 1 {
		return ErrEmptyInput
	}
	if h.Initialized() {
		return fmt.Errorf("%w: grid is %vx%v", ErrAlreadyInitialized, h.width, h.length)
	}

	width, length := data.Rows, data.Cols
	columns := make([]Column, width*length)
	for x := 0; x < width; x++ {
		for y := 0; y < length; y++ {
			columns[x*length+y] = newColumn(h.id, x, y, &h.params)
		}
	}

	longerSide := mathutil.Max(width, length)
	if err := h.wireColumnsToInput(columns, width, length, longerSide); err != nil {
		return err
	}

	h.columns = columns
	h.width = width
	h.length = length
	h.longerSide = longerSide
	h.input = data.Copy()

	if h.params.Verbosity > 0 {
		fmt.Printf("initialized %vx%v columns with %v synapses each\n",
			width, length, h.params.Synapse.SynapsesPerSegment)
	}
	return nil
}

func (h *Htm) wireColumnsToInput(columns []Column, width, length, longerSide int) error {
	sp := h.params.Synapse
	for i := range columns {
		col := &columns[i]
		for s := 0; s < sp.SynapsesPerSegment; s++ {
			inputX := h.rng.Intn(width)
			inputY := h.rng.Intn(length)
			randPermanence := h.rng.NormFloat64()*sp.PermanenceIncrement*2 + sp.ConnectedCutoff
			bias := localityBias(col.DistanceTo(inputX, inputY), float64(longerSide),
				h.params.InputBiasPeak, h.params.InputBiasStdDev)
			syn := NewSynapse(InputRef(inputX, inputY), randPermanence*bias)
			if err := col.segment.AddSynapse(syn); err != nil {
				return fmt.Errorf("wiring column %v,%v: %w", col.X, col.Y, err)
			}
		}
	}
	return nil
}

//Locality bias for a column to input distance on the current input grid
func (h *Htm) LocalityBias(distance float64) float64 {
	return localityBias(distance, float64(h.longerSide), h.params.InputBiasPeak, h.params.InputBiasStdDev)
}

/*
ColumnView is an index based window onto the column grid. It never copies or
owns columns and can be iterated any number of times.
*/
type ColumnView struct {
	net    *Htm
	x0, x1 int
	y0, y1 int
}

func (v ColumnView) Len() int {
	return (v.x1 - v.x0) * (v.y1 - v.y0)
}

//Column i of the window, in x major order
func (v ColumnView) At(i int) *Column {
	span := v.y1 - v.y0
	return v.net.Column(v.x0+i/span, v.y0+i%span)
}

func (v ColumnView) Each(fn func(*Column)) {
	for x := v.x0; x < v.x1; x++ {
		for y := v.y0; y < v.y1; y++ {
			fn(&v.net.columns[v.net.index(x, y)])
		}
	}
}

/*
Returns the columns within InhibitionRadius of col on both axes, clipped to
the grid. The window always holds col itself, so a radius of 0 or a 1x1
grid gives col as its only neighbor.
*/
func (h *Htm) Neighbors(col *Column) ColumnView {
	r := h.params.InhibitionRadius
	return ColumnView{
		net: h,
		x0:  mathutil.Max(0, col.X-r),
		x1:  mathutil.Min(h.width, col.X+r+1),
		y0:  mathutil.Max(0, col.Y-r),
		y1:  mathutil.Min(h.length, col.Y+r+1),
	}
}

//Maximum active duty cycle in col's neighborhood
func (h *Htm) NeighborDutyCycleMax(col *Column) float64 {
	neighbors := h.Neighbors(col)
	dutyCycles := make([]float64, 0, neighbors.Len())
	neighbors.Each(func(c *Column) {
		dutyCycles = append(dutyCycles, c.DutyCycleActive)
	})
	return floats.Max(dutyCycles)
}

/*
Returns the neighbor with the kth highest overlap, k counted from 1. k is
clamped to the neighborhood, so a large k gives the lowest overlap. Equal
overlaps keep grid order.
*/
func (h *Htm) KthNeighbor(col *Column, k int) *Column {
	neighbors := h.Neighbors(col)
	sorted := make([]*Column, 0, neighbors.Len())
	neighbors.Each(func(c *Column) {
		sorted = append(sorted, c)
	})
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Overlap > sorted[j].Overlap
	})

	idx := mathutil.Min(mathutil.Max(k, 1), len(sorted)) - 1
	return sorted[idx]
}

/*
Mean distance between each column (in input space) and the inputs of its
connected synapses. Returns 0 when nothing is connected.
*/
func (h *Htm) AverageReceptiveFieldSize() (float64, error) {
	if !h.Initialized() {
		return 0, ErrNotInitialized
	}

	var radii []float64
	for i := range h.columns {
		col := &h.columns[i]
		for _, syn := range col.SynapsesConnected() {
			radii = append(radii, col.DistanceTo(syn.Source.X, syn.Source.Y))
		}
	}
	if len(radii) == 0 {
		return 0, nil
	}
	return floats.Sum(radii) / float64(len(radii)), nil
}
