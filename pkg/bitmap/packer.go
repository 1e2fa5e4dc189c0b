package bitmap

import (
	"github.com/samber/lo"

	"fontconv/pkg/pixel"
)

// NewPacker validates the metrics and returns a packer applying opts to
// every byte it produces.
func NewPacker(metrics Metrics, opts Options) (*Packer, error) {
	if err := metrics.Validate(); err != nil {
		return nil, err
	}

	return &Packer{
		metrics: metrics,
		opts:    opts,
	}, nil
}

type Packer struct {
	metrics Metrics
	opts    Options
}

func (p *Packer) Metrics() Metrics {
	return p.metrics
}

// Row appends the packed bytes of one pixel row of glyph (gx, gy) to dst.
//
// Each byte carries up to 8 consecutive pixels, the leftmost at 0x80. The
// final chunk of a row wider than 8 pixels keeps its unused low bits clear.
func (p *Packer) Row(src pixel.Source, gx, gy, row uint32, dst []byte) []byte {
	x := gx * uint32(p.metrics.Width)
	y := gy*uint32(p.metrics.Height) + row

	remaining := int(p.metrics.Width)
	for index := 0; remaining > 0; index++ {
		count := lo.Ternary(remaining < 8, remaining, 8)

		var b byte
		for bit := 0; bit < count; bit++ {
			if src.IsPixelSet(x+uint32(bit+8*index), y) {
				b |= 0x80 >> bit
			}
		}

		dst = append(dst, p.opts.Format(b))
		remaining -= count
	}

	return dst
}

// Glyph appends every row of glyph (gx, gy), top to bottom.
func (p *Packer) Glyph(src pixel.Source, gx, gy uint32, dst []byte) []byte {
	for row := uint32(0); row < uint32(p.metrics.Height); row++ {
		dst = p.Row(src, gx, gy, row, dst)
	}
	return dst
}
