// Package pattern stamps fixed multi-cell shapes into a BitGrid.
//
// Every write goes through the grid's toroidal wrapping, so anchors and
// offsets may lie anywhere. Stamping only ever sets cells; cells outside a
// pattern's offsets are left as they were.
package pattern

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"bitlife/internal/core"
)

// Offset is a cell position relative to a pattern's anchor.
type Offset struct {
	DRow, DCol int
}

// Pattern is a named set of live cells relative to an anchor.
type Pattern struct {
	Name  string
	Cells []Offset
}

// Stamp ORs the pattern's cells into g around (row, col).
func Stamp(g *core.BitGrid, p Pattern, row, col int) {
	for _, o := range p.Cells {
		g.Set(row+o.DRow, col+o.DCol, true)
	}
}

// ToggleCell flips a single cell.
func ToggleCell(g *core.BitGrid, row, col int) {
	g.Toggle(row, col)
}

// StampGlider inserts a south-east travelling glider centred on (row, col).
func StampGlider(g *core.BitGrid, row, col int) {
	Stamp(g, Glider, row, col)
}

// StampPulsar inserts a pulsar centred on (row, col).
func StampPulsar(g *core.BitGrid, row, col int) {
	Stamp(g, Pulsar, row, col)
}

var registry = map[string]Pattern{}

// Register adds a pattern under its name, replacing any previous entry.
func Register(p Pattern) {
	if p.Name == "" || len(p.Cells) == 0 {
		return
	}
	registry[p.Name] = p
}

// Lookup returns the registered pattern with the given name.
func Lookup(name string) (Pattern, bool) {
	p, ok := registry[name]
	return p, ok
}

// Names lists the registered pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var errEmptyPattern = errors.New("pattern has no live cells")

// Parse builds a pattern from plaintext rows where 'O' or '*' marks a live
// cell and '.' a dead one. The anchor is the centre of the bounding box.
func Parse(name string, rows ...string) (Pattern, error) {
	p := Pattern{Name: name}
	height := len(rows)
	width := 0
	for _, r := range rows {
		width = max(width, len(r))
	}
	for y, r := range rows {
		for x, ch := range r {
			switch ch {
			case 'O', '*':
				p.Cells = append(p.Cells, Offset{DRow: y - height/2, DCol: x - width/2})
			case '.', ' ':
			default:
				return Pattern{}, fmt.Errorf("parse %q row %d: unexpected %q", name, y, ch)
			}
		}
	}
	if len(p.Cells) == 0 {
		return Pattern{}, fmt.Errorf("parse %q: %w", name, errEmptyPattern)
	}
	return p, nil
}

// MustParse is like Parse but panics on error. It is meant for package-level
// pattern tables.
func MustParse(name string, rows ...string) Pattern {
	p, err := Parse(name, rows...)
	if err != nil {
		panic(err)
	}
	return p
}

// Format renders the pattern's bounding box in the plaintext form Parse reads.
func Format(p Pattern) string {
	if len(p.Cells) == 0 {
		return ""
	}
	minR, minC := p.Cells[0].DRow, p.Cells[0].DCol
	maxR, maxC := minR, minC
	for _, o := range p.Cells[1:] {
		minR, maxR = min(minR, o.DRow), max(maxR, o.DRow)
		minC, maxC = min(minC, o.DCol), max(maxC, o.DCol)
	}
	live := make(map[Offset]bool, len(p.Cells))
	for _, o := range p.Cells {
		live[o] = true
	}
	var sb strings.Builder
	for r := minR; r <= maxR; r++ {
		for c := minC; c <= maxC; c++ {
			if live[Offset{r, c}] {
				sb.WriteByte('O')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
