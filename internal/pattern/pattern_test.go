package pattern

import (
	"slices"
	"testing"

	"bitlife/internal/core"
)

func newGrid(t *testing.T, w, h int) *core.BitGrid {
	t.Helper()
	g, err := core.NewBitGrid(w, h)
	if err != nil {
		t.Fatalf("NewBitGrid: %v", err)
	}
	return g
}

func TestStampGliderAtOriginWraps(t *testing.T) {
	const w, h = 8, 6
	g := newGrid(t, w, h)
	g.Set(3, 3, true)

	StampGlider(g, 0, 0)

	want := map[[2]int]bool{
		{h - 1, 0}: true,
		{0, 1}:     true,
		{1, w - 1}: true,
		{1, 0}:     true,
		{1, 1}:     true,
		{3, 3}:     true, // pre-existing
	}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			if got := g.Get(row, col); got != want[[2]int{row, col}] {
				t.Fatalf("cell (%d,%d) alive=%v, want %v\n%s", row, col, got, want[[2]int{row, col}], g)
			}
		}
	}
}

func TestStampIsPureInsertion(t *testing.T) {
	g := newGrid(t, 20, 20)
	core.NewRNG(3).FillBits(g, 0.5)
	before := slices.Clone(g.Bytes())

	StampPulsar(g, 10, 10)

	after := g.Bytes()
	for i := range before {
		if before[i]&^after[i] != 0 {
			t.Fatalf("stamping cleared bits in byte %d: %08b -> %08b", i, before[i], after[i])
		}
	}
	for _, o := range Pulsar.Cells {
		if !g.Get(10+o.DRow, 10+o.DCol) {
			t.Fatalf("pulsar cell %+v not set", o)
		}
	}
}

func TestToggleCell(t *testing.T) {
	g := newGrid(t, 5, 5)
	ToggleCell(g, -1, 7)
	if !g.Get(4, 2) {
		t.Fatal("ToggleCell(-1, 7) should revive (4, 2)")
	}
	ToggleCell(g, 4, 2)
	if g.Population() != 0 {
		t.Fatal("second toggle should restore the dead cell")
	}
}

func TestPulsarShape(t *testing.T) {
	if len(Pulsar.Cells) != 48 {
		t.Fatalf("pulsar has %d cells, want 48", len(Pulsar.Cells))
	}
	live := map[Offset]bool{}
	for _, o := range Pulsar.Cells {
		if o.DRow < -6 || o.DRow > 6 || o.DCol < -6 || o.DCol > 6 {
			t.Fatalf("pulsar cell %+v outside 13x13 box", o)
		}
		live[o] = true
	}
	if len(live) != 48 {
		t.Fatalf("pulsar has duplicate cells")
	}
	for o := range live {
		for _, m := range []Offset{{-o.DRow, o.DCol}, {o.DRow, -o.DCol}, {o.DCol, o.DRow}} {
			if !live[m] {
				t.Fatalf("pulsar not symmetric: %+v present, %+v missing", o, m)
			}
		}
	}
}

func TestParseAndFormat(t *testing.T) {
	p, err := Parse("glider", ".O.", "..O", "OOO")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !slices.Equal(p.Cells, Glider.Cells) {
		t.Fatalf("parsed glider = %v, want %v", p.Cells, Glider.Cells)
	}
	if got, want := Format(p), ".O.\n..O\nOOO\n"; got != want {
		t.Fatalf("Format = %q, want %q", got, want)
	}

	if _, err := Parse("bad", "O?"); err == nil {
		t.Fatal("expected error for unknown glyph")
	}
	if _, err := Parse("empty", "...", ""); err == nil {
		t.Fatal("expected error for pattern without live cells")
	}
}

func TestRegistry(t *testing.T) {
	names := Names()
	for _, want := range []string{"blinker", "block", "glider", "pulsar"} {
		if !slices.Contains(names, want) {
			t.Fatalf("Names() = %v, missing %q", names, want)
		}
	}
	if !slices.IsSorted(names) {
		t.Fatalf("Names() not sorted: %v", names)
	}
	if _, ok := Lookup("nope"); ok {
		t.Fatal("Lookup of unknown pattern should fail")
	}
	p, ok := Lookup("glider")
	if !ok || p.Name != "glider" {
		t.Fatalf("Lookup(glider) = %+v, %v", p, ok)
	}
}
