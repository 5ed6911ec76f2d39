package life

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aldewereld/game-of-life/pkg/core"
)

const (
	// Dead is the empty cell state.
	Dead = 0
	// Alive is the state written by Mark and produced by births and survivals.
	Alive = 1
	// States is the number of discrete states reachable through Cycle.
	States = 9
	// OutOfBounds is returned by Get for coordinates outside the grid.
	OutOfBounds = -1
	// AutoHeight passed as the height to NewGrid yields a square grid.
	AutoHeight = -1
)

// ErrInvalidDimension reports a non-positive grid width or height.
var ErrInvalidDimension = errors.New("life: grid dimensions must be positive")

// Grid stores a toroidal 2D field of cell states in row-major order.
//
// Width and height are fixed at construction. Values are not range checked,
// so editing tools may store states outside [0, States).
type Grid struct {
	w, h int
	data []int
}

// NewGrid allocates a zeroed grid. A height of AutoHeight makes it square.
func NewGrid(width, height int) (*Grid, error) {
	if height == AutoHeight {
		height = width
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("new grid %dx%d: %w", width, height, ErrInvalidDimension)
	}
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("new grid %dx%d: too many cells: %w", width, height, ErrInvalidDimension)
	}
	return &Grid{w: width, h: height, data: make([]int, width*height)}, nil
}

// NewSquareGrid allocates a zeroed width×width grid.
func NewSquareGrid(width int) (*Grid, error) {
	return NewGrid(width, AutoHeight)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []int { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.w && y < g.h
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.w + g.w) % g.w
	y = (y%g.h + g.h) % g.h
	return x, y
}

// Get returns the state at column x, row y, or OutOfBounds when (x, y) lies
// outside the grid. Get never wraps.
func (g *Grid) Get(x, y int) int {
	if !g.InBounds(x, y) {
		return OutOfBounds
	}
	return g.data[g.Index(x, y)]
}

// Lookup is Get with an explicit ok flag instead of the sentinel.
func (g *Grid) Lookup(x, y int) (int, bool) {
	if !g.InBounds(x, y) {
		return 0, false
	}
	return g.data[g.Index(x, y)], true
}

// Set writes value at (x, y). Writes outside the grid are ignored.
func (g *Grid) Set(x, y, value int) {
	if !g.InBounds(x, y) {
		return
	}
	g.data[g.Index(x, y)] = value
}

// Mark sets (x, y) to Alive.
func (g *Grid) Mark(x, y int) { g.Set(x, y, Alive) }

// Cycle advances (x, y) to the next state modulo States and returns it.
// Out-of-bounds coordinates are left alone and report OutOfBounds.
func (g *Grid) Cycle(x, y int) int {
	if !g.InBounds(x, y) {
		return OutOfBounds
	}
	idx := g.Index(x, y)
	next := (g.data[idx] + 1) % States
	if next < 0 {
		next += States
	}
	g.data[idx] = next
	return next
}

// Neighbours returns the states of the eight cells around (x, y) with
// toroidal wrapping. Columns form the outer loop and rows the inner one,
// left to right and top to bottom, skipping (x, y) itself. On grids
// narrower or shorter than three cells the same cell can appear more than
// once. (x, y) itself is expected to lie inside the grid.
func (g *Grid) Neighbours(x, y int) [8]int {
	var out [8]int
	i := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := g.Wrap(x+dx, y+dy)
			out[i] = g.data[ny*g.w+nx]
			i++
		}
	}
	return out
}

// Population counts the cells holding a nonzero state.
func (g *Grid) Population() int {
	n := 0
	for _, v := range g.data {
		if v != Dead {
			n++
		}
	}
	return n
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Dead
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	data := make([]int, len(g.data))
	copy(data, g.data)
	return &Grid{w: g.w, h: g.h, data: data}
}

// String renders the grid as a ruled table, one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	rule := strings.Repeat("-", g.w*4)
	b.WriteString(rule)
	b.WriteByte('\n')
	for y := 0; y < g.h; y++ {
		b.WriteString("| ")
		for x := 0; x < g.w; x++ {
			b.WriteString(strconv.Itoa(g.data[g.Index(x, y)]))
			b.WriteString(" | ")
		}
		b.WriteByte('\n')
		b.WriteString(rule)
		b.WriteByte('\n')
	}
	return b.String()
}
