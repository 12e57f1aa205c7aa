package core

// Automaton is the surface the frame driver and renderers consume from a
// packed-bit cellular automaton.
type Automaton interface {
	Width() int
	Height() int
	Generation() uint64
	Population() int

	Step()
	StepN(n int)
	Reset()
	Randomize(seed int64, density float64)

	// View returns the packed cell buffer. It is only valid until the next
	// mutating call.
	View() []byte

	ToggleCell(row, col int)
	StampGlider(row, col int)
	StampPulsar(row, col int)
	Stamp(name string, row, col int) bool
}
