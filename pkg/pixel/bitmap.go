package pixel

import (
	"image"
	"image/color"
)

// NewBitmap allocates a cleared 1 bit per pixel image.
func NewBitmap(width, height uint32) *Bitmap {
	stride := int((width + 7) / 8)
	return &Bitmap{
		pixels: make([]byte, stride*int(height)),
		stride: stride,
		width:  width,
		height: height,
	}
}

// Bitmap stores one bit per pixel, rows padded to whole bytes. Pixel x of a
// row lives at bit x%8 of byte x/8. It implements Source and image.Image.
type Bitmap struct {
	pixels []byte
	stride int
	width  uint32
	height uint32
}

func (b *Bitmap) Width() uint32 {
	return b.width
}

func (b *Bitmap) Height() uint32 {
	return b.height
}

// IsPixelSet reports false for coordinates outside the bitmap.
func (b *Bitmap) IsPixelSet(x, y uint32) bool {
	if x >= b.width || y >= b.height {
		return false
	}
	mask := byte(1) << (x % 8)
	return b.pixels[int(y)*b.stride+int(x/8)]&mask == mask
}

// SetPixel is a no-op outside the bitmap.
func (b *Bitmap) SetPixel(x, y uint32, set bool) {
	if x >= b.width || y >= b.height {
		return
	}
	i := int(y)*b.stride + int(x/8)
	mask := byte(1) << (x % 8)
	if set {
		b.pixels[i] |= mask
	} else {
		b.pixels[i] &^= mask
	}
}

// Bounds implements the image.Image interface.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(b.width), int(b.height))
}

// ColorModel implements the image.Image interface.
func (b *Bitmap) ColorModel() color.Model {
	return color.NRGBAModel
}

// At implements the image.Image interface. Set pixels are opaque black,
// everything else is transparent, so the result thresholds back to itself.
func (b *Bitmap) At(x, y int) color.Color {
	if x < 0 || y < 0 || !b.IsPixelSet(uint32(x), uint32(y)) {
		return color.NRGBA{}
	}
	return color.NRGBA{A: 0xFF}
}
