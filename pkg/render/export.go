package render

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/tiff"
)

// ErrFormat is returned when an output file extension is not supported.
var ErrFormat = errors.New("unsupported image format")

// JPEGQuality is the quality used for .jpg and .jpeg output.
const JPEGQuality = 90

// Scaled returns the framebuffer as an image with every pixel blown up to
// a scale x scale block. scale <= 1 returns the framebuffer unchanged.
func (fb *Framebuffer) Scaled(scale int) image.Image {
	img := fb.ToImage()
	if scale <= 1 {
		return img
	}
	return transform.Resize(img, fb.Width*scale, fb.Height*scale, transform.NearestNeighbor)
}

// SaveImage writes the framebuffer to path, choosing the encoder from the
// file extension (png, jpg, jpeg, bmp, tif, tiff).
func SaveImage(fb *Framebuffer, path string, scale int) error {
	img := fb.Scaled(scale)

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "png":
		return saveWith(path, img, imgio.PNGEncoder())
	case "jpg", "jpeg":
		return saveWith(path, img, imgio.JPEGEncoder(JPEGQuality))
	case "bmp":
		return saveWith(path, img, imgio.BMPEncoder())
	case "tif", "tiff":
		return saveWith(path, img, func(w io.Writer, im image.Image) error {
			return tiff.Encode(w, im, &tiff.Options{Compression: tiff.Deflate})
		})
	default:
		return fmt.Errorf("%w: %q", ErrFormat, filepath.Ext(path))
	}
}

func saveWith(path string, img image.Image, enc imgio.Encoder) error {
	if err := imgio.Save(path, img, enc); err != nil {
		return fmt.Errorf("save image %s: %w", path, err)
	}
	return nil
}

// LoadImage decodes an image previously written by SaveImage.
func LoadImage(path string) (image.Image, error) {
	if strings.EqualFold(filepath.Ext(path), ".tif") || strings.EqualFold(filepath.Ext(path), ".tiff") {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open image: %w", err)
		}
		defer f.Close()
		img, err := tiff.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decode tiff: %w", err)
		}
		return img, nil
	}
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	return img, nil
}
