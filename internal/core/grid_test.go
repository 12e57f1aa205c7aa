package core

import (
	"errors"
	"math"
	"testing"
)

func mustGrid(t *testing.T, w, h int) *BitGrid {
	t.Helper()
	g, err := NewBitGrid(w, h)
	if err != nil {
		t.Fatalf("NewBitGrid(%d, %d): %v", w, h, err)
	}
	return g
}

func TestNewBitGridRejectsBadDimensions(t *testing.T) {
	for _, size := range [][2]int{{0, 4}, {4, 0}, {0, 0}, {-3, 5}, {math.MaxInt, 2}, {math.MaxInt/3 + 1, 4}} {
		if _, err := NewBitGrid(size[0], size[1]); !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("NewBitGrid(%d, %d) err = %v, want ErrInvalidDimension", size[0], size[1], err)
		}
	}
}

func TestBitGridBufferLength(t *testing.T) {
	for w := 1; w <= 17; w++ {
		for h := 1; h <= 9; h++ {
			g := mustGrid(t, w, h)
			want := (w*h + 7) / 8
			if got := len(g.Bytes()); got != want {
				t.Fatalf("%dx%d: len(Bytes()) = %d, want %d", w, h, got, want)
			}
		}
	}
}

func TestBitGridLayoutIsLSBFirstRowMajor(t *testing.T) {
	g := mustGrid(t, 5, 3)
	g.Set(0, 0, true)
	g.Set(0, 3, true)
	g.Set(1, 4, true) // idx 9
	g.Set(2, 2, true) // idx 12

	got := g.Bytes()
	want := []byte{0b0000_1001, 0b0001_0010}
	if got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("Bytes() = %08b, want %08b", got, want)
	}
}

func TestBitGridWrapsCoordinates(t *testing.T) {
	g := mustGrid(t, 4, 3)
	g.Set(-1, -1, true)
	if !g.Get(2, 3) {
		t.Fatal("Set(-1,-1) should write the bottom-right cell")
	}
	if !g.Get(5, 7) || !g.Get(-4, -5) {
		t.Fatal("Get should wrap out of range coordinates")
	}
	row, col := g.Wrap(-7, 9)
	if row != 2 || col != 1 {
		t.Fatalf("Wrap(-7, 9) = (%d, %d), want (2, 1)", row, col)
	}
}

func TestBitGridToggleTwiceRestores(t *testing.T) {
	g := mustGrid(t, 7, 6)
	g.Set(3, 3, true)
	for row := -1; row <= 6; row++ {
		for col := -2; col <= 8; col++ {
			before := g.Get(row, col)
			g.Toggle(row, col)
			if g.Get(row, col) == before {
				t.Fatalf("Toggle(%d,%d) did not flip the cell", row, col)
			}
			g.Toggle(row, col)
			if g.Get(row, col) != before {
				t.Fatalf("double Toggle(%d,%d) changed the cell", row, col)
			}
		}
	}
	if g.Population() != 1 {
		t.Fatalf("population = %d, want 1", g.Population())
	}
}

func TestBitGridClearAndEqual(t *testing.T) {
	a := mustGrid(t, 9, 9)
	b := mustGrid(t, 9, 9)
	a.Set(4, 4, true)
	if a.Equal(b) {
		t.Fatal("grids with different cells reported equal")
	}
	a.Clear()
	if !a.Equal(b) {
		t.Fatal("cleared grid should equal a fresh grid")
	}
	if a.Equal(mustGrid(t, 9, 8)) {
		t.Fatal("grids of different sizes reported equal")
	}
}

func TestBitGridString(t *testing.T) {
	g := mustGrid(t, 3, 2)
	g.Set(0, 1, true)
	g.Set(1, 2, true)
	want := "◻◼◻\n◻◻◼\n"
	if got := g.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestFillBitsDeterministic(t *testing.T) {
	a := mustGrid(t, 32, 16)
	b := mustGrid(t, 32, 16)
	NewRNG(7).FillBits(a, 0.4)
	NewRNG(7).FillBits(b, 0.4)
	if !a.Equal(b) {
		t.Fatal("FillBits with the same seed produced different grids")
	}
	if a.Population() == 0 {
		t.Fatal("FillBits at density 0.4 produced an empty grid")
	}
	NewRNG(7).FillBits(a, 0)
	if a.Population() != 0 {
		t.Fatal("FillBits at density 0 should clear the grid")
	}
	NewRNG(7).FillBits(a, 1)
	if a.Population() != a.Len() {
		t.Fatal("FillBits at density 1 should fill the grid")
	}
}
