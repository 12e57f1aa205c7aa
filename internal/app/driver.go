package app

import (
	"fmt"
	"strconv"

	"bitlife/internal/core"
	"bitlife/internal/life"
)

// MaxSpeed caps the generations advanced per frame.
const MaxSpeed = 64

// Modifier records which keys were held during a click.
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModAlt
	ModShift
)

// NewSim builds the simulation described by cfg and stamps its start-up
// patterns.
func NewSim(cfg *Config) (*life.Life, error) {
	sim, err := life.NewWithConfig(cfg.LifeConfig())
	if err != nil {
		return nil, err
	}
	for _, p := range cfg.Patterns {
		if !sim.Stamp(p.Name, p.Row, p.Col) {
			return nil, fmt.Errorf("unknown pattern %q", p.Name)
		}
	}
	return sim, nil
}

// Driver paces an automaton: it advances speed generations per frame, handles
// pause and single-step requests and routes clicks to the pattern stamper.
// It must be used from a single goroutine.
type Driver struct {
	sim      core.Automaton
	speed    int
	paused   bool
	tickOnce bool
	seed     int64
	density  float64
	stats    *core.FrameStats
}

// NewDriver wraps sim. Reseeding uses density, falling back to 0.5 when zero.
func NewDriver(sim core.Automaton, speed int, seed int64, density float64) *Driver {
	if density <= 0 {
		density = 0.5
	}
	d := &Driver{sim: sim, seed: seed, density: density, stats: core.NewFrameStats()}
	d.SetSpeed(speed)
	return d
}

// Sim returns the driven automaton.
func (d *Driver) Sim() core.Automaton { return d.sim }

// Speed returns the generations advanced per frame.
func (d *Driver) Speed() int { return d.speed }

// SetSpeed clamps and stores the speed multiplier, returning the stored value.
func (d *Driver) SetSpeed(speed int) int {
	d.speed = speedControl.Clamp(speed)
	return d.speed
}

// Paused reports whether automatic stepping is suspended.
func (d *Driver) Paused() bool { return d.paused }

// TogglePause flips the paused state.
func (d *Driver) TogglePause() { d.paused = !d.paused }

// Resume clears the paused state.
func (d *Driver) Resume() { d.paused = false }

// StepOnce requests a single generation on the next Advance, even if paused.
func (d *Driver) StepOnce() { d.tickOnce = true }

// Advance runs one frame worth of generations and returns how many ran.
func (d *Driver) Advance() int {
	switch {
	case !d.paused:
		d.sim.StepN(d.speed)
		d.tickOnce = false
		return d.speed
	case d.tickOnce:
		d.sim.Step()
		d.tickOnce = false
		return 1
	}
	return 0
}

// PatternFor returns the pattern a click with mod stamps: ctrl or alt adds a
// glider, shift a pulsar. An empty name means the click toggles one cell.
func PatternFor(mod Modifier) string {
	switch {
	case mod&(ModCtrl|ModAlt) != 0:
		return "glider"
	case mod&ModShift != 0:
		return "pulsar"
	}
	return ""
}

// Click applies the interactive edit for a click on (row, col).
func (d *Driver) Click(row, col int, mod Modifier) {
	switch PatternFor(mod) {
	case "glider":
		d.sim.StampGlider(row, col)
	case "pulsar":
		d.sim.StampPulsar(row, col)
	default:
		d.sim.ToggleCell(row, col)
	}
}

// Reset clears the board.
func (d *Driver) Reset() {
	d.sim.Reset()
	d.tickOnce = false
}

// Reseed fills the board randomly from seed and remembers the seed.
func (d *Driver) Reseed(seed int64) {
	d.seed = seed
	d.sim.Randomize(seed, d.density)
	d.tickOnce = false
}

// Seed returns the last seed used for a random fill.
func (d *Driver) Seed() int64 { return d.seed }

// Frame records a rendered frame for the FPS statistics.
func (d *Driver) Frame() { d.stats.Tick() }

// Stats summarises the recent frame rate.
func (d *Driver) Stats() core.FrameSummary { return d.stats.Summary() }

// CellAt converts a screen position to grid coordinates at the given scale,
// clamping to the board.
func (d *Driver) CellAt(x, y, scale int) (row, col int) {
	if scale <= 0 {
		scale = 1
	}
	row = min(max(y/scale, 0), d.sim.Height()-1)
	col = min(max(x/scale, 0), d.sim.Width()-1)
	return row, col
}

var speedControl = core.ParameterControl{Key: "speed", Label: "Speed", Step: 1, Min: 1, Max: MaxSpeed}

// ParameterControls exposes the speed multiplier to the HUD.
func (d *Driver) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{speedControl}
}

// SetIntParameter updates a HUD-adjustable value.
func (d *Driver) SetIntParameter(key string, value int) bool {
	if key != speedControl.Key {
		return false
	}
	d.SetSpeed(value)
	return true
}

// Parameters snapshots the values shown on the HUD.
func (d *Driver) Parameters() core.ParameterSnapshot {
	state := "running"
	if d.paused {
		state = "paused"
	}
	fps := d.Stats()
	return core.ParameterSnapshot{Params: []core.Parameter{
		{Key: "speed", Label: "Speed", Value: strconv.Itoa(d.speed)},
		{Key: "state", Label: "State", Value: state},
		{Key: "generation", Label: "Generation", Value: strconv.FormatUint(d.sim.Generation(), 10)},
		{Key: "population", Label: "Population", Value: strconv.Itoa(d.sim.Population())},
		{Key: "fps", Label: "FPS", Value: strconv.FormatFloat(fps.Latest, 'f', 0, 64)},
		{Key: "fps_mean", Label: "FPS avg/100", Value: strconv.FormatFloat(fps.Mean, 'f', 0, 64)},
		{Key: "fps_min", Label: "FPS min/100", Value: strconv.FormatFloat(fps.Min, 'f', 0, 64)},
		{Key: "fps_max", Label: "FPS max/100", Value: strconv.FormatFloat(fps.Max, 'f', 0, 64)},
	}}
}
