package convert

import (
	"time"

	"go.uber.org/zap"
)

type Option func(c *Converter)

func WithArrayName(name string) Option {
	return func(c *Converter) {
		if name != "" {
			c.name = name
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Converter) {
		c.now = now
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Converter) {
		c.logger = logger.With(zap.String("via", "converter"))
	}
}

// WithTracker reports progress once per glyph. newTracker receives the
// number of glyphs about to be written.
func WithTracker(newTracker func(total int) Tracker) Option {
	return func(c *Converter) {
		c.tracker = newTracker
	}
}

// Tracker is satisfied by *progressbar.ProgressBar.
type Tracker interface {
	Add(num int) error
	Finish() error
}

type nopTracker struct{}

func (nopTracker) Add(int) error { return nil }
func (nopTracker) Finish() error { return nil }
