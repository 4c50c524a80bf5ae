//
// Dense per column diagnostic grids
//

package htm

import (
	"github.com/skelterjohn/go.matrix"
)

//Builds a width x length matrix from a per column value
func (h *Htm) columnGrid(value func(*Column) float64) *matrix.DenseMatrix {
	grid := matrix.Zeros(h.width, h.length)
	for i := range h.columns {
		col := &h.columns[i]
		grid.Set(col.X, col.Y, value(col))
	}
	return grid
}

func (h *Htm) OverlapGrid() *matrix.DenseMatrix {
	return h.columnGrid(func(c *Column) float64 { return c.Overlap })
}

func (h *Htm) BoostGrid() *matrix.DenseMatrix {
	return h.columnGrid(func(c *Column) float64 { return c.Boost })
}

func (h *Htm) DutyCycleGrid() *matrix.DenseMatrix {
	return h.columnGrid(func(c *Column) float64 { return c.DutyCycleActive })
}

//1 where the column is active, 0 elsewhere
func (h *Htm) ActiveGrid() *matrix.DenseMatrix {
	return h.columnGrid(func(c *Column) float64 {
		if c.Active {
			return 1
		}
		return 0
	})
}
