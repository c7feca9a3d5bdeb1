package dds

import (
	"fmt"
	"sync"
)

// marker is one symbol of a concatenated pulse pattern.
type marker int8

const (
	// markerFree advances time by one unit step.
	markerFree marker = iota
	// markerX is an instantaneous X(π) pulse.
	markerX
	// markerY is an instantaneous Y(π) pulse.
	markerY
	// markerZ is an instantaneous Z(π) pulse.
	markerZ
)

func (m marker) String() string {
	switch m {
	case markerFree:
		return "-"
	case markerX:
		return "X"
	case markerY:
		return "Y"
	case markerZ:
		return "Z"
	default:
		return fmt.Sprintf("marker(%d)", int8(m))
	}
}

// maxPatternLength bounds the size of a concatenated pattern. Patterns grow
// geometrically with the concatenation order, so this is the effective
// limit on the order.
const maxPatternLength = 1 << 20

// patternCache memoizes patterns per kind and order. Cached slices are
// never handed out directly.
type patternCache struct {
	mu       sync.Mutex
	patterns map[patternKey][]marker
}

type patternKey struct {
	kind  patternKind
	order int
}

type patternKind int

const (
	patternX patternKind = iota
	patternXY
)

var patterns = &patternCache{patterns: make(map[patternKey][]marker)}

// get returns a copy of the pattern of the given kind and order, building
// missing orders by iterative doubling from the highest cached one.
func (c *patternCache) get(kind patternKind, order int) []marker {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.patterns[patternKey{kind, order}]; ok {
		return append([]marker(nil), p...)
	}

	start := 1
	var p []marker
	for o := order - 1; o >= 1; o-- {
		if cached, ok := c.patterns[patternKey{kind, o}]; ok {
			start, p = o+1, cached
			break
		}
	}

	for o := start; o <= order; o++ {
		switch {
		case o == 1 && kind == patternX:
			p = []marker{markerFree, markerX, markerFree, markerX}
		case o == 1:
			p = []marker{markerFree, markerX, markerFree, markerY, markerFree, markerX, markerFree, markerY}
		case kind == patternX:
			p = doubleX(p)
		default:
			p = doubleXY(p)
		}
		c.patterns[patternKey{kind, o}] = p
	}

	return append([]marker(nil), p...)
}

// doubleX builds C(n) = C(n-1) X C(n-1) X.
func doubleX(p []marker) []marker {
	out := make([]marker, 0, 2*len(p)+2)
	out = append(out, p...)
	out = append(out, markerX)
	out = append(out, p...)
	return append(out, markerX)
}

// doubleXY splices four copies of the previous pattern. The last symbol of
// the first and third copies is overwritten with Z, the last symbol of the
// second copy is dropped, and a Y closes the fourth copy unless it cancels
// against a Y already there.
func doubleXY(p []marker) []marker {
	n := len(p)
	out := make([]marker, 0, 4*n+1)

	out = append(out, p...)
	out[len(out)-1] = markerZ

	out = append(out, p[:n-1]...)

	out = append(out, p...)
	out[len(out)-1] = markerZ

	out = append(out, p...)
	out = append(out, markerY)

	if k := len(out); k >= 2 && out[k-1] == markerY && out[k-2] == markerY {
		out = out[:k-2]
	}

	return out
}

// xPatternLength returns the length of the X pattern of the given order
// without building it, or -1 once it exceeds maxPatternLength.
func xPatternLength(order int) int {
	n := 4
	for o := 2; o <= order; o++ {
		n = 2*n + 2
		if n > maxPatternLength {
			return -1
		}
	}
	return n
}

// xyPatternLength bounds the XY pattern length of the given order from
// above, or returns -1 once the bound exceeds maxPatternLength.
func xyPatternLength(order int) int {
	n := 8
	for o := 2; o <= order; o++ {
		n *= 4
		if n > maxPatternLength {
			return -1
		}
	}
	return n
}

// oddPulseTimes walks a pattern and returns, in increasing order, the unit
// step counts at which pulses of kind m occur an odd number of times.
// Pulses of other kinds are ignored.
func oddPulseTimes(pattern []marker, m marker) []int {
	var (
		out   []int
		step  int
		count int
	)

	flush := func() {
		if count%2 == 1 {
			out = append(out, step)
		}
		count = 0
	}

	for _, sym := range pattern {
		switch sym {
		case markerFree:
			flush()
			step++
		case m:
			count++
		}
	}
	flush()

	return out
}

func validateConcatenationOrder(duration float64, order int, length func(int) int) error {
	if order <= 0 {
		return &ArgumentError{
			Message: fmt.Sprintf("concatenation order must be above zero: %d", order),
			Fields:  map[string]any{"concatenation_order": order},
			Extras:  map[string]any{"duration": duration},
		}
	}
	if length(order) < 0 {
		return &ArgumentError{
			Message: "concatenation order is too large",
			Fields:  map[string]any{"concatenation_order": order},
			Extras:  map[string]any{"maximum_pattern_length": maxPatternLength},
		}
	}
	return nil
}
