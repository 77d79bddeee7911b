// Package output holds the external consumers of the engine's macroscopic
// field: an animated-GIF renderer of the speed field and a final-state
// writer. Both take plain slices plus dimensions and have no dependency on
// sim, mirroring the engine's one-way data flow.
package output

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
)

// Renderer accumulates paletted frames of the speed field and encodes them
// as an animated GIF. Speeds are mapped onto a blue gradient; solid cells
// draw black.
type Renderer struct {
	w, h    int
	scale   int // pixels per cell
	delay   int // hundredths of a second per frame
	norm    float64
	palette color.Palette
	frames  []*image.Paletted
	delays  []int
}

// NewRenderer sizes a renderer for a w×h grid. norm is the speed mapped to
// full brightness; anything faster saturates.
func NewRenderer(w, h, scale, delay int, norm float64) *Renderer {
	palette := make(color.Palette, 256)
	for i := 0; i < 256; i++ {
		intensity := float64(i) / 255.0
		palette[i] = color.RGBA{
			R: 0,
			G: uint8(intensity * 170),
			B: uint8(64 + intensity*191),
			A: 255,
		}
	}
	palette[255] = color.RGBA{A: 255} // solid cells

	return &Renderer{
		w: w, h: h,
		scale: scale, delay: delay,
		norm:    norm,
		palette: palette,
	}
}

// AddFrame renders one frame from the row-major speed field and solid mask.
func (r *Renderer) AddFrame(speed []float64, solid []bool) {
	img := image.NewPaletted(image.Rect(0, 0, r.w*r.scale, r.h*r.scale), r.palette)
	for y := 0; y < r.h; y++ {
		for x := 0; x < r.w; x++ {
			idx := y*r.w + x
			var colorIdx uint8
			if solid[idx] {
				colorIdx = 255
			} else {
				intensity := speed[idx] / r.norm
				if intensity > 1 {
					intensity = 1
				}
				colorIdx = uint8(intensity * 254)
			}
			for py := y * r.scale; py < (y+1)*r.scale; py++ {
				for px := x * r.scale; px < (x+1)*r.scale; px++ {
					img.SetColorIndex(px, py, colorIdx)
				}
			}
		}
	}
	r.frames = append(r.frames, img)
	r.delays = append(r.delays, r.delay)
}

// FrameCount returns the number of frames accumulated so far.
func (r *Renderer) FrameCount() int {
	return len(r.frames)
}

// SaveGIF encodes the accumulated frames to path, creating the parent
// directory if needed.
func (r *Renderer) SaveGIF(path string) error {
	if len(r.frames) == 0 {
		return fmt.Errorf("no frames to encode")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return gif.EncodeAll(f, &gif.GIF{
		Image: r.frames,
		Delay: r.delays,
	})
}
