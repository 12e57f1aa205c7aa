package pattern

// Glider moves one cell down and one cell right every four generations.
//
//	.O.
//	..O
//	OOO
var Glider = Pattern{
	Name: "glider",
	Cells: []Offset{
		{-1, 0},
		{0, 1},
		{1, -1}, {1, 0}, {1, 1},
	},
}

// Pulsar is the period-3 oscillator occupying a 13x13 box centred on the anchor.
var Pulsar = buildPulsar()

// Block is the 2x2 still life. Its anchor is the bottom-right cell.
var Block = MustParse("block",
	"OO",
	"OO",
)

// Blinker is the period-2 horizontal line of three.
var Blinker = MustParse("blinker", "OOO")

func buildPulsar() Pattern {
	fills := []int{-4, -3, -2, 2, 3, 4}
	bars := []int{-6, -1, 1, 6}
	p := Pattern{Name: "pulsar", Cells: make([]Offset, 0, 2*len(fills)*len(bars))}
	for _, dr := range bars {
		for _, dc := range fills {
			p.Cells = append(p.Cells, Offset{DRow: dr, DCol: dc})
		}
	}
	for _, dc := range bars {
		for _, dr := range fills {
			p.Cells = append(p.Cells, Offset{DRow: dr, DCol: dc})
		}
	}
	return p
}

func init() {
	for _, p := range []Pattern{Glider, Pulsar, Block, Blinker} {
		Register(p)
	}
}
