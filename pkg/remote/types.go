package remote

// ConvertRequest carries an encoded glyph sheet and the conversion settings.
type ConvertRequest struct {
	Image  []byte
	Height uint8
	Width  uint8
	Format string
	MSB    bool
	Invert bool
	Name   string
}

type ConvertResponse struct {
	Source []byte
	Glyphs int
}
