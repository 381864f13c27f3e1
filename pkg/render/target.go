package render

import (
	"image"
	"image/draw"
)

// Target is the pixel sink the rasterizer writes into.
// The rasterizer never calls SetPixel outside [0,w)×[0,h).
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
}

// ImageTarget adapts any draw.Image to a Target. Pixel (0, 0) is the
// top-left corner of the image bounds.
type ImageTarget struct {
	Img draw.Image
}

// NewImageTarget wraps img.
func NewImageTarget(img draw.Image) *ImageTarget {
	return &ImageTarget{Img: img}
}

// Size returns the image dimensions.
func (t *ImageTarget) Size() (w, h int) {
	b := t.Img.Bounds()
	return b.Dx(), b.Dy()
}

// SetPixel sets the pixel relative to the image origin.
func (t *ImageTarget) SetPixel(x, y int, c Color) {
	min := t.Img.Bounds().Min
	t.Img.Set(min.X+x, min.Y+y, c)
}

// NewRGBATarget allocates an RGBA image of the given size and wraps it.
func NewRGBATarget(w, h int) *ImageTarget {
	return NewImageTarget(image.NewRGBA(image.Rect(0, 0, w, h)))
}
