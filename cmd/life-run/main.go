// Command life-run steps a board without a window and reports its progress.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"bitlife/internal/app"
	"bitlife/internal/core"
	"bitlife/internal/life"
	"bitlife/internal/pattern"
)

type options struct {
	gens    int
	every   int
	print   bool
	stripes bool
	paced   bool

	now func() time.Time
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("life-run: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	var opts options
	flag.IntVar(&opts.gens, "gens", 100, "generations to run")
	flag.IntVar(&opts.every, "every", 0, "report population every n generations (0 reports only the end)")
	flag.BoolVar(&opts.print, "print", false, "print the final board")
	flag.BoolVar(&opts.stripes, "stripes", false, "start from the fixed benchmark stripes instead of -density")
	flag.BoolVar(&opts.paced, "paced", false, "advance at -tps ticks per second instead of flat out")
	list := flag.Bool("list", false, "list the built-in patterns and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: life-run [flags] [w=N h=N seed=N density=F]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *list {
		listPatterns(os.Stdout)
		return
	}
	if err := applyBoardArgs(cfg, flag.Args()); err != nil {
		log.Fatal(err)
	}

	sim, err := app.NewSim(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if opts.stripes {
		sim.SeedStripes()
	}
	if err := run(sim, app.NewDriver(sim, cfg.Speed, cfg.Seed, cfg.Density), cfg.TPS, opts, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func listPatterns(w io.Writer) {
	for _, name := range pattern.Names() {
		p, _ := pattern.Lookup(name)
		fmt.Fprintf(w, "%s (%d cells)\n%s\n", name, len(p.Cells), pattern.Format(p))
	}
}

// applyBoardArgs replaces the board settings in cfg with key=value arguments.
// Keys missing from a non-empty argument list take the library defaults.
func applyBoardArgs(cfg *app.Config, args []string) error {
	if len(args) == 0 {
		return nil
	}
	kv := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return fmt.Errorf("board argument %q: want key=value", arg)
		}
		kv[key] = value
	}
	lc := life.FromMap(kv)
	cfg.Width, cfg.Height = lc.Width, lc.Height
	cfg.Seed, cfg.Density = lc.Seed, lc.Density
	return nil
}

// run advances the board until opts.gens generations have passed, speed
// generations per tick, writing population reports to w.
func run(sim *life.Life, d *app.Driver, tps int, opts options, w io.Writer) error {
	if opts.gens < 0 {
		return fmt.Errorf("negative generation count %d", opts.gens)
	}
	now := opts.now
	if now == nil {
		now = time.Now
	}
	var pacer *core.FixedStep
	if opts.paced {
		pacer = core.NewFixedStepClock(tps, now)
	}

	start := now()
	target := sim.Generation() + uint64(opts.gens)
	nextReport := sim.Generation() + uint64(opts.every)
	for sim.Generation() < target {
		ticks := 1
		if pacer != nil {
			if ticks = pacer.Due(); ticks == 0 {
				time.Sleep(pacer.Interval() / 4)
				continue
			}
		}
		for ; ticks > 0 && sim.Generation() < target; ticks-- {
			if remaining := int(target - sim.Generation()); remaining < d.Speed() {
				sim.StepN(remaining)
			} else {
				d.Advance()
			}
			d.Frame()
			if opts.every > 0 && sim.Generation() >= nextReport {
				fmt.Fprintf(w, "gen %d pop %d\n", sim.Generation(), sim.Population())
				nextReport += uint64(opts.every)
			}
		}
	}
	elapsed := now().Sub(start)

	rate := 0.0
	if elapsed > 0 {
		rate = float64(opts.gens) / elapsed.Seconds()
	}
	fmt.Fprintf(w, "done: %dx%d gen %d pop %d in %s (%.0f gen/s)\n",
		sim.Width(), sim.Height(), sim.Generation(), sim.Population(), elapsed.Round(time.Microsecond), rate)
	if opts.print {
		io.WriteString(w, sim.Grid().String())
	}
	return nil
}
