// Package schematic draws circuits as box-drawing text.
package schematic

import (
	"fmt"
	"strings"

	"github.com/jeffreywbertke/DC/internal/circuit"
)

const (
	width  = 72
	height = 7

	top    = 0
	bottom = height - 1

	batteryX  = 4  // column of the battery's vertical wire
	wire      = 4  // length of a wire segment between series parts
	branchGap = 12 // columns between parallel branches
)

// Render draws c: the battery on the left, loads to the right, and the
// return wire along the bottom.
func Render(c circuit.Circuit) string {
	cv := newCanvas(width, height)
	comps := c.Components

	// Rails go down first; parts and junctions are drawn over them.
	var draw func() int
	switch {
	case c.Topology == circuit.Parallel:
		draw = func() int { return parallel(cv, batteryX+8, comps) }
	case c.Topology == circuit.Combination && len(comps) >= 3:
		draw = func() int { return parallel(cv, series(cv, batteryX+1, comps[:1]), comps[1:]) }
	default:
		draw = func() int {
			x := series(cv, batteryX+1, comps)
			cv.put(x, top, "┐")
			cv.vline(x, top+1, bottom)
			cv.put(x, bottom, "┘")
			return x
		}
	}

	right := draw()
	cv.hline(batteryX+1, right, top)
	cv.hline(batteryX+1, right, bottom)
	draw()
	battery(cv, c.Voltage)
	return cv.String()
}

func battery(cv *canvas, volts float64) {
	cv.put(batteryX, top, "┌")
	cv.put(batteryX, top+1, "│")
	cv.put(batteryX-1, top+2, "(+)")
	cv.put(batteryX-1, top+3, Volts(volts))
	cv.put(batteryX-1, top+4, "(-)")
	cv.put(batteryX, top+5, "│")
	cv.put(batteryX, bottom, "└")
}

// series draws comps as boxes along the top rail starting at x and returns
// the column just past the trailing wire.
func series(cv *canvas, x int, comps []circuit.Component) int {
	for _, comp := range comps {
		x += wire
		label := fmt.Sprintf("[%s %s]", comp.Label, Ohms(comp.Resistance))
		cv.put(x, top, label)
		x += len([]rune(label))
	}
	return x + wire
}

// parallel draws one vertical branch per component, the first at column x,
// and returns the column of the last branch.
func parallel(cv *canvas, x int, comps []circuit.Component) int {
	last := x + branchGap*(len(comps)-1)
	for i, comp := range comps {
		col := x + branchGap*i

		topJoint, bottomJoint := "┬", "┴"
		if col == last {
			topJoint, bottomJoint = "┐", "┘"
		}
		cv.put(col, top, topJoint)
		cv.vline(col, top+1, top+2)
		cv.put(col-1, top+2, "["+comp.Label+"]")
		cv.put(col-1, top+3, Ohms(comp.Resistance))
		cv.vline(col, top+4, bottom)
		cv.put(col, bottom, bottomJoint)
	}
	return last
}

// Ohms formats a resistance such as "30Ω".
func Ohms(r float64) string {
	return fmt.Sprintf("%gΩ", r)
}

// Volts formats a voltage such as "12V".
func Volts(v float64) string {
	return fmt.Sprintf("%gV", v)
}

// Summary is the strip of facts shown under a schematic.
type Summary struct {
	Source string
	Type   string
	Loads  string
}

// Summarize returns the Source/Type/Loads strip for c.
func Summarize(c circuit.Circuit) Summary {
	return Summary{
		Source: Volts(c.Voltage),
		Type:   strings.ToUpper(c.Topology.String()),
		Loads:  fmt.Sprintf("%d", len(c.Components)),
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("Source %s | Type %s | Loads %s", s.Source, s.Type, s.Loads)
}
