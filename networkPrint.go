//
// Code related to network printing
//

package htm

import (
	"bytes"
	"fmt"
)

//Returns active columns as a grid of 1s and 0s, one row per x
func (h *Htm) ActiveColumnsString() string {
	var buffer bytes.Buffer
	for x := 0; x < h.width; x++ {
		for y := 0; y < h.length; y++ {
			if h.columns[h.index(x, y)].Active {
				buffer.WriteByte('1')
			} else {
				buffer.WriteByte('0')
			}
		}
		buffer.WriteByte('\n')
	}
	return buffer.String()
}

func (h *Htm) PrintActiveColumns() {
	fmt.Printf("Active columns at iteration %v\n", h.iteration)
	fmt.Print(h.ActiveColumnsString())
}

//Prints every column's pooling state
func (h *Htm) PrintColumns() {
	for i := range h.columns {
		col := &h.columns[i]
		fmt.Println(col)
		if h.params.Verbosity > 1 {
			fmt.Printf("\tduty cycles active %.4f overlap %.4f min %.4f\n",
				col.DutyCycleActive, col.DutyCycleOverlap, col.DutyCycleMin)
		}
	}
}

//Prints the segment stats summary
func (h *Htm) PrintSegmentStats() error {
	stats, err := h.CalcSegmentStats()
	if err != nil {
		return err
	}
	fmt.Print(stats.ToString())
	return nil
}
