package core

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strings"
)

// ErrInvalidDimension is returned when a grid is created with a non-positive
// size or one whose cell count overflows int.
var ErrInvalidDimension = errors.New("invalid grid dimension")

// BitGrid stores a toroidal 2D grid of cells packed one bit per cell in
// row-major order. Cell (row, col) lives at bit index row*W+col, in byte
// index/8 at bit position index%8, least significant bit first.
type BitGrid struct {
	w, h int
	data []byte
}

// NewBitGrid allocates an all-dead grid with the given dimensions.
func NewBitGrid(w, h int) (*BitGrid, error) {
	if w <= 0 || h <= 0 || w > (math.MaxInt-7)/h {
		return nil, fmt.Errorf("new grid %dx%d: %w", w, h, ErrInvalidDimension)
	}
	return &BitGrid{w: w, h: h, data: make([]byte, (w*h+7)/8)}, nil
}

// Width returns the number of columns.
func (g *BitGrid) Width() int { return g.w }

// Height returns the number of rows.
func (g *BitGrid) Height() int { return g.h }

// Len returns the number of cells.
func (g *BitGrid) Len() int { return g.w * g.h }

// Bytes exposes the packed backing slice. Callers must treat it as read-only
// and must not hold on to it past the next mutation of the grid.
func (g *BitGrid) Bytes() []byte { return g.data }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *BitGrid) Wrap(row, col int) (int, int) {
	row = (row%g.h + g.h) % g.h
	col = (col%g.w + g.w) % g.w
	return row, col
}

// Index returns the bit index for the wrapped coordinates (row, col).
func (g *BitGrid) Index(row, col int) int {
	row, col = g.Wrap(row, col)
	return row*g.w + col
}

func maskIndex(idx int) (byte, int) {
	return 1 << uint(idx&7), idx >> 3
}

// Get reports whether the cell at (row, col) is alive.
func (g *BitGrid) Get(row, col int) bool {
	return g.Bit(g.Index(row, col))
}

// Set writes the cell at (row, col).
func (g *BitGrid) Set(row, col int, alive bool) {
	g.SetBit(g.Index(row, col), alive)
}

// Bit reads the cell at a bit index already in [0, Len()).
func (g *BitGrid) Bit(idx int) bool {
	mask, i := maskIndex(idx)
	return g.data[i]&mask != 0
}

// SetBit writes the cell at a bit index already in [0, Len()).
func (g *BitGrid) SetBit(idx int, alive bool) {
	mask, i := maskIndex(idx)
	if alive {
		g.data[i] |= mask
	} else {
		g.data[i] &^= mask
	}
}

// Toggle flips the cell at (row, col).
func (g *BitGrid) Toggle(row, col int) {
	mask, i := maskIndex(g.Index(row, col))
	g.data[i] ^= mask
}

// Clear kills every cell.
func (g *BitGrid) Clear() {
	clear(g.data)
}

// Population counts the live cells.
func (g *BitGrid) Population() int {
	n := 0
	for _, b := range g.data {
		n += bits.OnesCount8(b)
	}
	return n
}

// Equal reports whether both grids have the same size and cells.
func (g *BitGrid) Equal(o *BitGrid) bool {
	if g.w != o.w || g.h != o.h {
		return false
	}
	return string(g.data) == string(o.data)
}

// String draws the grid one row per line using ◼ for live and ◻ for dead cells.
func (g *BitGrid) String() string {
	var sb strings.Builder
	sb.Grow(g.h * (g.w*3 + 1))
	for row := 0; row < g.h; row++ {
		for col := 0; col < g.w; col++ {
			if g.Get(row, col) {
				sb.WriteRune('◼')
			} else {
				sb.WriteRune('◻')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
