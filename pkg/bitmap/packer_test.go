package bitmap

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fontconv/pkg/pixel"
)

// fromRows builds a bitmap where '#' marks a set pixel.
func fromRows(rows ...string) *pixel.Bitmap {
	b := pixel.NewBitmap(uint32(len(rows[0])), uint32(len(rows)))
	for y, row := range rows {
		for x, c := range row {
			b.SetPixel(uint32(x), uint32(y), c == '#')
		}
	}
	return b
}

func filled(width, height uint32, set bool) *pixel.Bitmap {
	b := pixel.NewBitmap(width, height)
	for y := uint32(0); y < height; y++ {
		for x := uint32(0); x < width; x++ {
			b.SetPixel(x, y, set)
		}
	}
	return b
}

func TestMetricsValidate(t *testing.T) {
	tests := []struct {
		name    string
		metrics Metrics
		wantErr bool
	}{
		{"8x8", Metrics{Height: 8, Width: 8}, false},
		{"1x1", Metrics{Height: 1, Width: 1}, false},
		{"255x255", Metrics{Height: 255, Width: 255}, false},
		{"zero height", Metrics{Height: 0, Width: 8}, true},
		{"zero width", Metrics{Height: 8, Width: 0}, true},
		{"zero both", Metrics{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.metrics.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidMetrics))
			} else {
				assert.NoError(t, err)
			}
		})
	}

	_, err := NewPacker(Metrics{Height: 8}, Options{})
	assert.True(t, errors.Is(err, ErrInvalidMetrics))
}

func TestMetricsGridTruncates(t *testing.T) {
	m := Metrics{Height: 8, Width: 8}

	cols, rows := m.Grid(pixel.NewBitmap(17, 8))
	assert.Equal(t, uint32(2), cols)
	assert.Equal(t, uint32(1), rows)

	cols, rows = m.Grid(pixel.NewBitmap(7, 23))
	assert.Equal(t, uint32(0), cols)
	assert.Equal(t, uint32(2), rows)
	assert.Equal(t, 0, m.Glyphs(pixel.NewBitmap(7, 23)))
	assert.Equal(t, 6, m.Glyphs(pixel.NewBitmap(24, 16)))
}

func TestMetricsBytes(t *testing.T) {
	tests := []struct {
		width, height uint8
		perRow        int
		perGlyph      int
	}{
		{1, 1, 1, 1},
		{8, 8, 1, 8},
		{9, 16, 2, 32},
		{16, 2, 2, 4},
		{17, 3, 3, 9},
		{255, 1, 32, 32},
	}

	for _, tt := range tests {
		m := Metrics{Height: tt.height, Width: tt.width}
		assert.Equal(t, tt.perRow, m.BytesPerRow(), "%dx%d", tt.width, tt.height)
		assert.Equal(t, tt.perGlyph, m.BytesPerGlyph(), "%dx%d", tt.width, tt.height)
	}
}

func TestReverse(t *testing.T) {
	assert.Equal(t, byte(0x80), Reverse(0x01))
	assert.Equal(t, byte(0x0F), Reverse(0xF0))
	assert.Equal(t, byte(0b10110011), Reverse(0b11001101))
	assert.Equal(t, byte(0xFF), Reverse(0xFF))
	assert.Equal(t, byte(0x00), Reverse(0x00))

	for i := 0; i < 256; i++ {
		b := byte(i)
		assert.Equal(t, b, Reverse(Reverse(b)))
		for bit := 0; bit < 8; bit++ {
			assert.Equal(t, b>>bit&1, Reverse(b)>>(7-bit)&1)
		}
	}
}

func TestInvert(t *testing.T) {
	assert.Equal(t, byte(0x32), Invert(0xCD))
	for i := 0; i < 256; i++ {
		assert.Equal(t, byte(i), Invert(Invert(byte(i))))
	}
}

func TestOptionsFormat(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		in   byte
		want byte
	}{
		{"lsb", Options{}, 0xCD, 0xCD},
		{"msb", Options{BitNumbering: MSB}, 0xCD, 0xB3},
		{"lsb inverted", Options{InvertBits: true}, 0xCD, 0x32},
		{"msb inverted", Options{BitNumbering: MSB, InvertBits: true}, 0xCD, 0x4C},
		{"msb partial chunk", Options{BitNumbering: MSB}, 0xC0, 0x03},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.Format(tt.in))
		})
	}

	both := Options{BitNumbering: MSB, InvertBits: true}
	for i := 0; i < 256; i++ {
		assert.Equal(t, Invert(Reverse(byte(i))), both.Format(byte(i)))
	}
}

func TestPackerSolidGlyph(t *testing.T) {
	p, err := NewPacker(Metrics{Height: 8, Width: 8}, Options{})
	require.NoError(t, err)

	got := p.Glyph(filled(8, 8, true), 0, 0, nil)
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, got)

	got = p.Glyph(filled(8, 8, false), 0, 0, nil)
	assert.Equal(t, make([]byte, 8), got)
}

func TestPackerWideRow(t *testing.T) {
	src := fromRows("##..##.#..##")

	p, err := NewPacker(Metrics{Height: 1, Width: 12}, Options{})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xCD, 0xC0}, p.Row(src, 0, 0, 0, nil))

	p, err = NewPacker(Metrics{Height: 1, Width: 12}, Options{BitNumbering: MSB, InvertBits: true})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x4C, 0xFC}, p.Row(src, 0, 0, 0, nil))
}

func TestPackerGlyphOffsets(t *testing.T) {
	// two 2x2 glyphs per row, laid out as 4x4 pixels
	src := fromRows(
		"#...",
		"..#.",
		".#.#",
		"#..#",
	)

	p, err := NewPacker(Metrics{Height: 2, Width: 2}, Options{})
	require.NoError(t, err)

	assert.Equal(t, []byte{0x80, 0x00}, p.Glyph(src, 0, 0, nil))
	assert.Equal(t, []byte{0x00, 0x80}, p.Glyph(src, 1, 0, nil))
	assert.Equal(t, []byte{0x40, 0x80}, p.Glyph(src, 0, 1, nil))
	assert.Equal(t, []byte{0x40, 0x40}, p.Glyph(src, 1, 1, nil))

	// appending reuses the destination
	dst := p.Glyph(src, 0, 0, make([]byte, 0, 4))
	dst = p.Glyph(src, 1, 1, dst)
	assert.Equal(t, []byte{0x80, 0x00, 0x40, 0x40}, dst)
}

func TestPackerRowBitsRoundTrip(t *testing.T) {
	for width := 1; width <= 40; width++ {
		src := pixel.NewBitmap(uint32(width), 1)
		for x := 0; x < width; x++ {
			src.SetPixel(uint32(x), 0, (x*7+3)%5 < 2)
		}

		p, err := NewPacker(Metrics{Height: 1, Width: uint8(width)}, Options{})
		require.NoError(t, err)

		got := p.Row(src, 0, 0, 0, nil)
		require.Len(t, got, (width+7)/8, "width %d", width)

		for i := 0; i < len(got)*8; i++ {
			bit := got[i/8]&(0x80>>(i%8)) != 0
			if i < width {
				assert.Equal(t, src.IsPixelSet(uint32(i), 0), bit, "width %d pixel %d", width, i)
			} else {
				assert.False(t, bit, "width %d padding bit %d", width, i)
			}
		}
	}
}

func TestPackerReadsOutOfBoundsAsUnset(t *testing.T) {
	p, err := NewPacker(Metrics{Height: 2, Width: 8}, Options{})
	require.NoError(t, err)

	// glyph (1, 0) lies entirely outside a 4x1 image
	src := filled(4, 1, true)
	assert.Equal(t, []byte{0xF0, 0x00}, p.Glyph(src, 0, 0, nil))
	assert.Equal(t, []byte{0x00, 0x00}, p.Glyph(src, 1, 0, nil))
}
