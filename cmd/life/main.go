//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"bitlife/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("life: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := app.NewSim(cfg)
	if err != nil {
		log.Fatal(err)
	}
	driver := app.NewDriver(sim, cfg.Speed, cfg.Seed, cfg.Density)
	game := app.New(driver, cfg.Scale, cfg.CPU)

	ebiten.SetWindowTitle("bitlife: conway's game of life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale+app.HUDWidth, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
