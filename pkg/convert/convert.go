// Package convert walks the glyph grid of an image and streams it out as
// source code.
package convert

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"fontconv/pkg/bitmap"
	"fontconv/pkg/format"
	"fontconv/pkg/pixel"
)

// TimestampLayout renders the creation time in the file header.
const TimestampLayout = "02/01/2006 at 15:04:05"

const DefaultArrayName = "font"

func New(metrics bitmap.Metrics, f format.Format, opts bitmap.Options, options ...Option) (*Converter, error) {
	packer, err := bitmap.NewPacker(metrics, opts)
	if err != nil {
		return nil, err
	}

	c := &Converter{
		packer: packer,
		format: f,
		// options
		name:   DefaultArrayName,
		now:    time.Now,
		logger: zap.NewNop(),
	}

	for _, opt := range options {
		opt(c)
	}

	return c, nil
}

type Converter struct {
	packer *bitmap.Packer
	format format.Format
	// options
	name    string
	now     func() time.Time
	logger  *zap.Logger
	tracker func(total int) Tracker
}

// Label names glyph index in the row comment.
func Label(index int) string {
	return fmt.Sprintf("Character 0x%02X (%d)", index, index)
}

// Convert writes the whole font to w. The first failed write aborts the run;
// whatever reached w before that is left in place.
func (c *Converter) Convert(src pixel.Source, w io.Writer) error {
	metrics := c.packer.Metrics()
	cols, rows := metrics.Grid(src)

	log := c.logger.With(
		zap.Stringer("format", c.format),
		zap.Uint32("cols", cols),
		zap.Uint32("rows", rows),
	)

	if dx, dy := src.Width()%uint32(metrics.Width), src.Height()%uint32(metrics.Height); dx != 0 || dy != 0 {
		log.With(
			zap.Uint32("width", src.Width()),
			zap.Uint32("height", src.Height()),
			zap.Uint32("dropped-cols", dx),
			zap.Uint32("dropped-rows", dy),
		).Warn("image is not a whole multiple of the font metrics, trailing pixels ignored")
	}

	var tracker Tracker = nopTracker{}
	if c.tracker != nil {
		tracker = c.tracker(metrics.Glyphs(src))
	}

	out := &writer{w: w}
	out.write(c.format.Begin(c.now().Format(TimestampLayout)))
	out.write(c.format.BeginArray(c.name))
	if out.err != nil {
		return errors.Wrap(out.err, "write header failed")
	}

	glyph := make([]byte, 0, metrics.BytesPerGlyph())
	index := 0
	for gy := uint32(0); gy < rows; gy++ {
		for gx := uint32(0); gx < cols; gx++ {
			glyph = c.packer.Glyph(src, gx, gy, glyph[:0])

			out.write(c.format.BeginArrayRow())
			for _, b := range glyph {
				out.write(c.format.Byte(b))
			}
			out.write(c.format.Comment(Label(index)))
			out.write(c.format.LineBreak())
			if out.err != nil {
				return errors.Wrapf(out.err, "write glyph %d failed", index)
			}

			_ = tracker.Add(1)
			index++
		}
	}

	out.write(c.format.EndArray())
	out.write(c.format.End())
	if out.err != nil {
		return errors.Wrap(out.err, "write footer failed")
	}

	_ = tracker.Finish()
	log.With(zap.Int("glyphs", index), zap.Int64("bytes", out.n)).Debug("converted")
	return nil
}

// writer drops every write after the first failure.
type writer struct {
	w   io.Writer
	n   int64
	err error
}

func (w *writer) write(s string) {
	if w.err != nil {
		return
	}
	n, err := io.WriteString(w.w, s)
	w.n += int64(n)
	w.err = err
}
