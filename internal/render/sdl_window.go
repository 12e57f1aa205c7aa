//go:build sdl

package render

import (
	"fmt"
	"image/color"

	"github.com/veandco/go-sdl2/sdl"
)

// Window is an SDL window that shows a packed bit grid through a streaming
// texture. All methods must run on the thread that called sdl.Init.
type Window struct {
	W, H     int32
	Scale    int32
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	pixels   []byte
}

// NewWindow initialises SDL video and opens a window for a w*h board drawn
// scale pixels per cell.
func NewWindow(title string, w, h, scale int) (*Window, error) {
	if scale <= 0 {
		scale = 1
	}
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}
	win := &Window{W: int32(w), H: int32(h), Scale: int32(scale), pixels: make([]byte, 4*w*h)}

	var err error
	win.window, err = sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		win.W*win.Scale, win.H*win.Scale, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.renderer, err = sdl.CreateRenderer(win.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	win.texture, err = win.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING, win.W, win.H)
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("create texture: %w", err)
	}
	return win, nil
}

// Render decodes bits into the streaming texture and presents a frame.
func (w *Window) Render(bits []byte, on, off color.Color) error {
	if len(bits) != int(w.W*w.H+7)/8 {
		return fmt.Errorf("render: got %d bytes for a %dx%d board", len(bits), w.W, w.H)
	}
	fillBitsRGBA(w.pixels, bits, int(w.W*w.H), on, off)

	dst, pitch, err := w.texture.Lock(nil)
	if err != nil {
		return fmt.Errorf("lock texture: %w", err)
	}
	row := int(w.W) * 4
	for y := 0; y < int(w.H); y++ {
		copy(dst[y*pitch:y*pitch+row], w.pixels[y*row:(y+1)*row])
	}
	w.texture.Unlock()

	if err := w.renderer.Clear(); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	if err := w.renderer.Copy(w.texture, nil, nil); err != nil {
		return fmt.Errorf("copy texture: %w", err)
	}
	w.renderer.Present()
	return nil
}

// SetTitle replaces the window title.
func (w *Window) SetTitle(title string) { w.window.SetTitle(title) }

// CellAt converts window pixel coordinates into a clamped grid cell.
func (w *Window) CellAt(x, y int32) (row, col int) {
	row = int(min(max(y/w.Scale, 0), w.H-1))
	col = int(min(max(x/w.Scale, 0), w.W-1))
	return row, col
}

// Destroy releases the SDL resources and shuts SDL down.
func (w *Window) Destroy() {
	if w.texture != nil {
		w.texture.Destroy()
	}
	if w.renderer != nil {
		w.renderer.Destroy()
	}
	if w.window != nil {
		w.window.Destroy()
	}
	sdl.Quit()
}
