// Package render provides the software rasterizer and its pixel targets.
package render

import (
	"image"
	"image/color"
	"slices"
)

// Framebuffer is an in-memory RGBA render target. It satisfies Target.
type Framebuffer struct {
	Width  int          // Width in pixels
	Height int          // Height in pixels
	Pixels []color.RGBA // Row-major, (0, 0) at the top left
}

var _ Target = (*Framebuffer)(nil)

// NewFramebuffer allocates a framebuffer of transparent black pixels.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]color.RGBA, width*height),
	}
}

// Size returns the framebuffer dimensions.
func (fb *Framebuffer) Size() (w, h int) {
	return fb.Width, fb.Height
}

// index maps (x, y) to a Pixels offset.
func (fb *Framebuffer) index(x, y int) (int, bool) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return 0, false
	}
	return y*fb.Width + x, true
}

// Clear fills every pixel with c.
func (fb *Framebuffer) Clear(c color.RGBA) {
	n := len(fb.Pixels)
	if n == 0 {
		return
	}
	fb.Pixels[0] = c
	for i := 1; i < n; i *= 2 {
		copy(fb.Pixels[i:], fb.Pixels[:i])
	}
}

// SetPixel sets (x, y) to c. Writes outside the buffer are dropped.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if i, ok := fb.index(x, y); ok {
		fb.Pixels[i] = c
	}
}

// GetPixel returns the color at (x, y), or transparent black outside the buffer.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if i, ok := fb.index(x, y); ok {
		return fb.Pixels[i]
	}
	return color.RGBA{}
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's algorithm.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Equal reports whether two framebuffers have the same size and pixels.
func (fb *Framebuffer) Equal(other *Framebuffer) bool {
	return fb.Width == other.Width && fb.Height == other.Height &&
		slices.Equal(fb.Pixels, other.Pixels)
}

// ToImage copies the framebuffer into a new image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for i, c := range fb.Pixels {
		o := i * 4
		img.Pix[o] = c.R
		img.Pix[o+1] = c.G
		img.Pix[o+2] = c.B
		img.Pix[o+3] = c.A
	}
	return img
}
