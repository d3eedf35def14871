package metrics

import "sort"

const newline = 0x000a

// LinesValue holds the start offsets of the lines of a text.
// Starts[0] is always 0; every newline starts a new line behind it, i.e.
// multiple consecutive newlines count as multiple empty lines.
type LinesValue struct {
	Starts []int
	length int
}

// LineCount returns the number of lines.
func (v LinesValue) LineCount() int {
	return len(v.Starts)
}

// Locate resolves a code-unit position to a zero-based line and column.
// Positions outside the measured text are clamped.
func (v LinesValue) Locate(pos int) (line, col int) {
	if len(v.Starts) == 0 {
		return 0, 0
	}
	if pos < 0 || pos > v.length {
		tracer().Debugf("metrics: position %d outside of text of length %d", pos, v.length)
		pos = max(0, min(pos, v.length))
	}
	line = sort.SearchInts(v.Starts, pos+1) - 1
	return line, pos - v.Starts[line]
}

// Line returns the range [start, end) of a line, excluding its newline.
func (v LinesValue) Line(line int) (start, end int) {
	if line < 0 || line >= len(v.Starts) {
		return 0, 0
	}
	start = v.Starts[line]
	if line+1 < len(v.Starts) {
		return start, v.Starts[line+1] - 1
	}
	return start, v.length
}

// LinesMetric indexes lines, delimited by U+000A.
type LinesMetric struct{}

// Lines creates a line metric.
func Lines() LinesMetric {
	return LinesMetric{}
}

// Apply indexes the lines of units.
func (LinesMetric) Apply(units []uint16) LinesValue {
	starts := make([]int, 1, 16)
	for i, c := range units {
		if c == newline {
			starts = append(starts, i+1)
		}
	}
	return LinesValue{Starts: starts, length: len(units)}
}
