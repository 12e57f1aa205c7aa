//go:build ebiten

package ui

import (
	"image/color"

	"bitlife/internal/pattern"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay previews the pattern a click would stamp under the cursor.
type Overlay struct {
	w, h   int
	scale  int
	pixel  *ebiten.Image
	active pattern.Pattern
	show   bool
	row    int
	col    int
}

// NewOverlay constructs an overlay for a w*h board drawn at scale.
func NewOverlay(w, h, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{w: w, h: h, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update selects the previewed pattern by name and tracks the cursor cell.
// An empty or unknown name hides the preview.
func (o *Overlay) Update(name string) {
	o.show = false
	if name == "" {
		return
	}
	p, ok := pattern.Lookup(name)
	if !ok {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || mx >= o.w*o.scale || my >= o.h*o.scale {
		return
	}
	o.active = p
	o.row, o.col = my/o.scale, mx/o.scale
	o.show = true
}

// Draw paints translucent cells where the pattern would land, wrapping at the
// board edges like the stamp itself.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	tint := color.RGBA{R: 40, G: 120, B: 220, A: 140}
	for _, off := range o.active.Cells {
		row := ((o.row+off.DRow)%o.h + o.h) % o.h
		col := ((o.col+off.DCol)%o.w + o.w) % o.w
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(o.scale), float64(o.scale))
		op.GeoM.Translate(float64(col*o.scale), float64(row*o.scale))
		op.ColorScale.ScaleWithColor(tint)
		screen.DrawImage(o.pixel, op)
	}
}
