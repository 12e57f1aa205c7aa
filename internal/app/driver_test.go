package app

import (
	"flag"
	"slices"
	"testing"

	"bitlife/internal/life"
)

func newDriver(t *testing.T, w, h int) (*Driver, *life.Life) {
	t.Helper()
	sim, err := life.New(w, h)
	if err != nil {
		t.Fatalf("life.New: %v", err)
	}
	return NewDriver(sim, 1, 1, 0.3), sim
}

func TestAdvanceUsesSpeed(t *testing.T) {
	d, sim := newDriver(t, 16, 16)
	sim.StampGlider(4, 4)

	ref, _ := life.New(16, 16)
	ref.StampGlider(4, 4)

	d.SetSpeed(3)
	if ran := d.Advance(); ran != 3 {
		t.Fatalf("Advance ran %d generations, want 3", ran)
	}
	ref.StepN(3)
	if !slices.Equal(sim.View(), ref.View()) || sim.Generation() != 3 {
		t.Fatalf("driver state diverged from StepN(3), generation %d", sim.Generation())
	}
}

func TestSpeedIsClamped(t *testing.T) {
	d, _ := newDriver(t, 4, 4)
	if got := d.SetSpeed(0); got != 1 {
		t.Fatalf("SetSpeed(0) = %d, want 1", got)
	}
	if got := d.SetSpeed(MaxSpeed + 10); got != MaxSpeed {
		t.Fatalf("SetSpeed(too big) = %d, want %d", got, MaxSpeed)
	}
	if !d.SetIntParameter("speed", 5) || d.Speed() != 5 {
		t.Fatalf("SetIntParameter(speed, 5) left speed at %d", d.Speed())
	}
	if d.SetIntParameter("unknown", 5) {
		t.Fatal("SetIntParameter should reject unknown keys")
	}
}

func TestPauseAndSingleStep(t *testing.T) {
	d, sim := newDriver(t, 8, 8)
	d.SetSpeed(4)
	d.TogglePause()

	if ran := d.Advance(); ran != 0 || sim.Generation() != 0 {
		t.Fatalf("paused Advance ran %d generations", ran)
	}
	d.StepOnce()
	if ran := d.Advance(); ran != 1 || sim.Generation() != 1 {
		t.Fatalf("single step ran %d generations, generation %d", ran, sim.Generation())
	}
	if ran := d.Advance(); ran != 0 {
		t.Fatalf("single step request should be consumed, ran %d", ran)
	}
	d.Resume()
	if ran := d.Advance(); ran != 4 || sim.Generation() != 5 {
		t.Fatalf("resumed Advance ran %d, generation %d", ran, sim.Generation())
	}
}

func TestClickModifiers(t *testing.T) {
	d, sim := newDriver(t, 32, 32)

	d.Click(2, 2, 0)
	if !sim.Grid().Get(2, 2) || sim.Population() != 1 {
		t.Fatal("plain click should toggle one cell")
	}
	d.Click(2, 2, 0)
	if sim.Population() != 0 {
		t.Fatal("second plain click should toggle the cell back")
	}

	d.Click(8, 8, ModCtrl)
	if sim.Population() != 5 {
		t.Fatalf("ctrl click population = %d, want glider of 5", sim.Population())
	}
	d.Click(20, 20, ModAlt|ModShift)
	if sim.Population() != 10 {
		t.Fatalf("alt click should win over shift, population %d", sim.Population())
	}
	sim.Reset()
	d.Click(16, 16, ModShift)
	if sim.Population() != 48 {
		t.Fatalf("shift click population = %d, want pulsar of 48", sim.Population())
	}
}

func TestResetAndReseed(t *testing.T) {
	d, sim := newDriver(t, 20, 20)
	d.Reseed(99)
	first := slices.Clone(sim.View())
	if sim.Population() == 0 {
		t.Fatal("Reseed produced an empty board")
	}
	d.Advance()
	d.Reseed(99)
	if !slices.Equal(first, sim.View()) || sim.Generation() != 0 {
		t.Fatal("Reseed with the same seed should reproduce the board")
	}
	if d.Seed() != 99 {
		t.Fatalf("Seed() = %d, want 99", d.Seed())
	}
	d.Reset()
	if sim.Population() != 0 || sim.Generation() != 0 {
		t.Fatal("Reset should clear the board and generation")
	}
}

func TestCellAtClamps(t *testing.T) {
	d, _ := newDriver(t, 10, 5)
	cases := []struct {
		x, y, scale int
		row, col    int
	}{
		{0, 0, 3, 0, 0},
		{7, 4, 3, 1, 2},
		{1000, 1000, 3, 4, 9},
		{-5, -5, 3, 0, 0},
		{4, 4, 0, 4, 4},
	}
	for _, c := range cases {
		row, col := d.CellAt(c.x, c.y, c.scale)
		if row != c.row || col != c.col {
			t.Fatalf("CellAt(%d,%d,%d) = (%d,%d), want (%d,%d)", c.x, c.y, c.scale, row, col, c.row, c.col)
		}
	}
}

func TestParametersSnapshot(t *testing.T) {
	d, sim := newDriver(t, 8, 8)
	sim.StampGlider(3, 3)
	d.SetSpeed(2)
	d.Advance()
	d.TogglePause()

	snap := d.Parameters()
	for key, want := range map[string]string{
		"speed":      "2",
		"state":      "paused",
		"generation": "2",
		"population": "5",
	} {
		p, ok := snap.Lookup(key)
		if !ok || p.Value != want {
			t.Fatalf("parameter %q = %+v, want value %q", key, p, want)
		}
	}
}

func TestConfigFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{
		"-w", "40", "-h", "30", "-speed", "4", "-density", "0.2",
		"-pattern", "glider@5,6", "-pattern", "pulsar@ 20 , 20",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []Placement{{Name: "glider", Row: 5, Col: 6}, {Name: "pulsar", Row: 20, Col: 20}}
	if !slices.Equal(cfg.Patterns, want) {
		t.Fatalf("patterns = %v, want %v", cfg.Patterns, want)
	}
	lc := cfg.LifeConfig()
	if lc.Width != 40 || lc.Height != 30 || lc.Density != 0.2 || lc.Seed != 42 {
		t.Fatalf("LifeConfig = %+v", lc)
	}

	if err := fs.Parse([]string{"-pattern", "glider"}); err == nil {
		t.Fatal("expected error for placement without coordinates")
	}
}

func TestNewSimStampsPlacements(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Height = 32, 32
	cfg.Patterns = []Placement{{Name: "glider", Row: 4, Col: 4}, {Name: "block", Row: 20, Col: 20}}
	sim, err := NewSim(cfg)
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	if sim.Population() != 9 {
		t.Fatalf("population = %d, want 9", sim.Population())
	}

	cfg.Patterns = []Placement{{Name: "spaceship", Row: 1, Col: 1}}
	if _, err := NewSim(cfg); err == nil {
		t.Fatal("expected error for unknown pattern")
	}
	cfg.Width = 0
	if _, err := NewSim(cfg); err == nil {
		t.Fatal("expected error for zero width")
	}
}

func TestPatternFor(t *testing.T) {
	cases := map[Modifier]string{
		0:                  "",
		ModCtrl:            "glider",
		ModAlt:             "glider",
		ModShift:           "pulsar",
		ModCtrl | ModShift: "glider",
	}
	for mod, want := range cases {
		if got := PatternFor(mod); got != want {
			t.Fatalf("PatternFor(%b) = %q, want %q", mod, got, want)
		}
	}
}
