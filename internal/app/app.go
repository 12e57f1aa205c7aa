//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"bitlife/internal/render"
	"bitlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width in pixels of the panel right of the board.
const HUDWidth = 220

// Game adapts a Driver to the ebiten.Game interface.
type Game struct {
	driver   *Driver
	renderer render.Renderer
	hud      *ui.HUD
	overlay  *ui.Overlay

	onColor  color.Color
	offColor color.Color

	scale int
}

// New constructs a Game for the provided driver. Unless cpu is set the board
// is decoded by the grid shader, falling back to CPU painting if the shader
// does not compile.
func New(d *Driver, scale int, cpu bool) *Game {
	if scale <= 0 {
		scale = 1
	}
	w, h := d.Sim().Width(), d.Sim().Height()
	var r render.Renderer
	if !cpu {
		sr, err := render.NewShaderRenderer(w, h)
		if err != nil {
			log.Printf("falling back to CPU rendering: %v", err)
		} else {
			r = sr
		}
	}
	if r == nil {
		r = render.NewGridPainter(w, h)
	}
	return &Game{
		driver:   d,
		renderer: r,
		hud:      ui.NewHUD(d, "Life", HUDWidth),
		overlay:  ui.NewOverlay(w, h, scale),
		onColor:  color.Black,
		offColor: color.White,
		scale:    scale,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.driver.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.driver.Resume()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.driver.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.driver.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.driver.Reseed(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.driver.SetSpeed(g.driver.Speed() + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.driver.SetSpeed(g.driver.Speed() - 1)
	}

	boardW := g.driver.Sim().Width() * g.scale
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if mx, my := ebiten.CursorPosition(); mx < boardW {
			row, col := g.driver.CellAt(mx, my, g.scale)
			g.driver.Click(row, col, heldModifiers())
		}
	}

	g.hud.Update(boardW)
	g.overlay.Update(PatternFor(heldModifiers()))
	g.driver.Advance()
	return nil
}

func heldModifiers() Modifier {
	var mod Modifier
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mod |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mod |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mod |= ModShift
	}
	return mod
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.driver.Sim().View(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.driver.Sim().Width()*g.scale, g.driver.Sim().Height()*g.scale)
	g.driver.Frame()
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.driver.Sim().Width()*g.scale + HUDWidth, g.driver.Sim().Height() * g.scale
}
