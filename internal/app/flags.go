package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"bitlife/internal/life"
)

// Placement asks for a named pattern to be stamped at start-up.
type Placement struct {
	Name     string
	Row, Col int
}

func (p Placement) String() string {
	return fmt.Sprintf("%s@%d,%d", p.Name, p.Row, p.Col)
}

// ParsePlacement reads the name@row,col form used by the -pattern flag.
func ParsePlacement(s string) (Placement, error) {
	name, at, ok := strings.Cut(s, "@")
	if !ok || name == "" {
		return Placement{}, fmt.Errorf("placement %q: want name@row,col", s)
	}
	rs, cs, ok := strings.Cut(at, ",")
	if !ok {
		return Placement{}, fmt.Errorf("placement %q: want name@row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return Placement{}, fmt.Errorf("placement %q row: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return Placement{}, fmt.Errorf("placement %q col: %w", s, err)
	}
	return Placement{Name: name, Row: row, Col: col}, nil
}

type placementList []Placement

func (l *placementList) String() string {
	parts := make([]string, len(*l))
	for i, p := range *l {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

func (l *placementList) Set(value string) error {
	p, err := ParsePlacement(value)
	if err != nil {
		return err
	}
	*l = append(*l, p)
	return nil
}

// Config represents the command-line parameters for the application.
type Config struct {
	Width   int
	Height  int
	Scale   int
	TPS     int
	Speed   int
	Seed    int64
	Density float64
	CPU     bool

	Patterns []Placement
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 256, Height: 256, Scale: 3, TPS: 60, Speed: 1, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Speed, "speed", c.Speed, "generations per tick")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fills")
	fs.Float64Var(&c.Density, "density", c.Density, "initial live cell probability (0 starts empty)")
	fs.BoolVar(&c.CPU, "cpu", c.CPU, "decode cells on the CPU instead of in a shader")
	fs.Var((*placementList)(&c.Patterns), "pattern", "stamp a pattern at start-up as name@row,col (repeatable)")
}

// LifeConfig converts the flags into a simulation config.
func (c *Config) LifeConfig() life.Config {
	lc := life.DefaultConfig()
	lc.Width = c.Width
	lc.Height = c.Height
	lc.Seed = c.Seed
	lc.Density = c.Density
	return lc
}
