// Package bitmap packs fixed-size glyph cells of a pixel grid into bytes.
package bitmap

import (
	"github.com/pkg/errors"

	"fontconv/pkg/pixel"
)

var ErrInvalidMetrics = errors.New("font height and width must be between 1 and 255")

// Metrics are the pixel dimensions of one glyph cell.
type Metrics struct {
	Height uint8
	Width  uint8
}

func (m Metrics) Validate() error {
	if m.Height == 0 || m.Width == 0 {
		return errors.Wrapf(ErrInvalidMetrics, "got %dx%d", m.Width, m.Height)
	}
	return nil
}

// Grid returns how many whole glyphs fit across and down src. Trailing
// pixels that do not fill a cell are ignored.
func (m Metrics) Grid(src pixel.Source) (cols, rows uint32) {
	return src.Width() / uint32(m.Width), src.Height() / uint32(m.Height)
}

func (m Metrics) Glyphs(src pixel.Source) int {
	cols, rows := m.Grid(src)
	return int(cols) * int(rows)
}

func (m Metrics) BytesPerRow() int {
	return (int(m.Width) + 7) / 8
}

func (m Metrics) BytesPerGlyph() int {
	return m.BytesPerRow() * int(m.Height)
}
