package life

import (
	"bitlife/internal/core"
	"bitlife/internal/pattern"
)

// Life implements Conway's Game of Life on a packed-bit toroidal grid.
type Life struct {
	w, h int
	cur  *core.BitGrid
	nxt  *core.BitGrid
	gen  uint64
}

var _ core.Automaton = (*Life)(nil)

// New returns an all-dead Life simulation with the provided dimensions.
func New(w, h int) (*Life, error) {
	cur, err := core.NewBitGrid(w, h)
	if err != nil {
		return nil, err
	}
	nxt, _ := core.NewBitGrid(w, h)
	return &Life{w: w, h: h, cur: cur, nxt: nxt}, nil
}

// NewWithConfig builds a simulation from cfg and seeds it when cfg.Density > 0.
func NewWithConfig(cfg Config) (*Life, error) {
	l, err := New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	if cfg.Density > 0 {
		l.Randomize(cfg.Seed, cfg.Density)
	}
	return l, nil
}

// Width returns the number of columns.
func (l *Life) Width() int { return l.w }

// Height returns the number of rows.
func (l *Life) Height() int { return l.h }

// Generation returns the number of steps since construction or the last Reset.
func (l *Life) Generation() uint64 { return l.gen }

// Grid exposes the current generation.
func (l *Life) Grid() *core.BitGrid { return l.cur }

// View returns the packed bytes of the current generation. The slice aliases
// engine memory and is invalidated by the next Step, Reset or stamp.
func (l *Life) View() []byte { return l.cur.Bytes() }

// Population counts the live cells of the current generation.
func (l *Life) Population() int { return l.cur.Population() }

// Step advances the simulation by one generation.
func (l *Life) Step() {
	w, h := l.w, l.h
	cur, nxt := l.cur, l.nxt
	for row := 0; row < h; row++ {
		here := row * w
		for col := 0; col < w; col++ {
			n, west := cur.Wrap(row-1, col-1)
			s, east := cur.Wrap(row+1, col+1)
			north, south := n*w, s*w

			count := 0
			for _, idx := range [8]int{
				north + west, north + col, north + east,
				here + west, here + east,
				south + west, south + col, south + east,
			} {
				if cur.Bit(idx) {
					count++
				}
			}

			alive := cur.Bit(here + col)
			nxt.SetBit(here+col, count == 3 || (alive && count == 2))
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.gen++
}

// StepN advances n generations one Step at a time.
func (l *Life) StepN(n int) {
	for i := 0; i < n; i++ {
		l.Step()
	}
}

// Reset kills every cell and zeroes the generation counter.
func (l *Life) Reset() {
	l.cur.Clear()
	l.nxt.Clear()
	l.gen = 0
}

// Randomize replaces the board with a deterministic random fill and zeroes
// the generation counter.
func (l *Life) Randomize(seed int64, density float64) {
	l.Reset()
	core.NewRNG(seed).FillBits(l.cur, density)
}

// SeedStripes fills the board with the fixed i%2==0 || i%7==0 layout used by
// the benchmarks.
func (l *Life) SeedStripes() {
	l.Reset()
	for i := 0; i < l.cur.Len(); i++ {
		l.cur.SetBit(i, i%2 == 0 || i%7 == 0)
	}
}

// ToggleCell flips the cell at the wrapped coordinate.
func (l *Life) ToggleCell(row, col int) { pattern.ToggleCell(l.cur, row, col) }

// StampGlider ORs a glider into the board around (row, col).
func (l *Life) StampGlider(row, col int) { pattern.StampGlider(l.cur, row, col) }

// StampPulsar ORs a pulsar into the board around (row, col).
func (l *Life) StampPulsar(row, col int) { pattern.StampPulsar(l.cur, row, col) }

// StampPattern ORs an arbitrary pattern into the board around (row, col).
func (l *Life) StampPattern(p pattern.Pattern, row, col int) { pattern.Stamp(l.cur, p, row, col) }

// Stamp looks up a registered pattern by name and stamps it. It reports
// whether the pattern exists.
func (l *Life) Stamp(name string, row, col int) bool {
	p, ok := pattern.Lookup(name)
	if !ok {
		return false
	}
	pattern.Stamp(l.cur, p, row, col)
	return true
}
