//go:build sdl

package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"runtime"
	"time"

	"bitlife/internal/app"
	"bitlife/internal/core"
	"bitlife/internal/render"

	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	// SDL calls must stay on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("life-sdl: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

// run owns the window for the lifetime of the loop so it is destroyed on
// every exit path, including render errors.
func run(cfg *app.Config) error {
	sim, err := app.NewSim(cfg)
	if err != nil {
		return err
	}
	driver := app.NewDriver(sim, cfg.Speed, cfg.Seed, cfg.Density)

	w, err := render.NewWindow("bitlife", cfg.Width, cfg.Height, cfg.Scale)
	if err != nil {
		return err
	}
	defer w.Destroy()

	pacer := core.NewFixedStep(cfg.TPS)
	lastTitle := time.Now()
	for {
		if quit := pollEvents(w, driver); quit {
			return nil
		}
		for n := pacer.Due(); n > 0; n-- {
			driver.Advance()
		}
		if err := w.Render(sim.View(), color.Black, color.White); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		driver.Frame()

		if time.Since(lastTitle) >= time.Second {
			s := driver.Stats()
			w.SetTitle(fmt.Sprintf("bitlife  gen %d  pop %d  x%d  fps %.0f (avg %.0f min %.0f max %.0f)",
				sim.Generation(), sim.Population(), driver.Speed(), s.Latest, s.Mean, s.Min, s.Max))
			lastTitle = time.Now()
		}
		sdl.Delay(1)
	}
}

// pollEvents drains the SDL queue and reports whether the user asked to quit.
func pollEvents(w *render.Window, d *app.Driver) bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true
		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
				continue
			}
			switch e.Keysym.Sym {
			case sdl.K_q, sdl.K_ESCAPE:
				return true
			case sdl.K_SPACE:
				d.TogglePause()
			case sdl.K_RETURN:
				d.Resume()
			case sdl.K_n:
				d.StepOnce()
			case sdl.K_r:
				d.Reset()
			case sdl.K_s:
				d.Reseed(time.Now().UnixNano())
			case sdl.K_UP, sdl.K_EQUALS:
				d.SetSpeed(d.Speed() + 1)
			case sdl.K_DOWN, sdl.K_MINUS:
				d.SetSpeed(d.Speed() - 1)
			}
		case *sdl.MouseButtonEvent:
			if e.Type != sdl.MOUSEBUTTONDOWN || e.Button != sdl.BUTTON_LEFT {
				continue
			}
			row, col := w.CellAt(e.X, e.Y)
			d.Click(row, col, modifiers(uint32(sdl.GetModState())))
		}
	}
	return false
}

func modifiers(state uint32) app.Modifier {
	var mod app.Modifier
	if state&uint32(sdl.KMOD_CTRL) != 0 {
		mod |= app.ModCtrl
	}
	if state&uint32(sdl.KMOD_ALT) != 0 {
		mod |= app.ModAlt
	}
	if state&uint32(sdl.KMOD_SHIFT) != 0 {
		mod |= app.ModShift
	}
	return mod
}
