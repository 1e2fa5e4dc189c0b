// Package pixel turns decoded raster images into a set/unset pixel grid.
//
// Glyph sheets are drawn dark on light: a pixel counts as set when it is
// fully opaque and at least one of its color channels is darker than
// Threshold. Light or (partially) transparent pixels are unset.
package pixel

import (
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	// imaging registers png, jpeg, gif, bmp and tiff.
	_ "golang.org/x/image/webp"
)

// Threshold is the 8-bit channel value below which a channel counts as dark.
const Threshold = 0x32

// Source is the read-only pixel grid consumed by the packer.
type Source interface {
	Width() uint32
	Height() uint32
	// IsPixelSet returns false for out of bounds coordinates.
	IsPixelSet(x, y uint32) bool
}

// IsSet applies the darkness/opacity threshold to a single color.
func IsSet(c color.Color) bool {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return n.A == 0xFF && (n.R < Threshold || n.G < Threshold || n.B < Threshold)
}

// FromImage thresholds src into a Bitmap. The bitmap origin is src's
// Bounds().Min.
func FromImage(src image.Image) *Bitmap {
	r := src.Bounds()
	dst := NewBitmap(uint32(r.Dx()), uint32(r.Dy()))

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if IsSet(src.At(x, y)) {
				dst.SetPixel(uint32(x-r.Min.X), uint32(y-r.Min.Y), true)
			}
		}
	}

	return dst
}

// Decode reads any registered raster format and thresholds it.
func Decode(r io.Reader) (*Bitmap, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "image decode failed")
	}
	return FromImage(img), nil
}
