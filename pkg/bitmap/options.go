package bitmap

// BitNumbering selects where the first pixel of a packed byte ends up.
type BitNumbering int

const (
	// LSB keeps the packed layout as is.
	LSB BitNumbering = iota
	// MSB mirrors every byte.
	MSB
)

func (n BitNumbering) String() string {
	switch n {
	case LSB:
		return "lsb"
	case MSB:
		return "msb"
	default:
		return "?"
	}
}

// Options are applied to every packed byte.
type Options struct {
	BitNumbering BitNumbering
	InvertBits   bool
}

// Format reorders b (MSB only), then inverts it (InvertBits only).
func (o Options) Format(b byte) byte {
	if o.BitNumbering == MSB {
		b = Reverse(b)
	}
	if o.InvertBits {
		b = Invert(b)
	}
	return b
}

// Reverse mirrors the bit order of b: bit 0 swaps with bit 7, 1 with 6 and
// so on.
func Reverse(b byte) byte {
	b = b>>4 | b<<4
	b = (b&0xCC)>>2 | (b&0x33)<<2
	b = (b&0xAA)>>1 | (b&0x55)<<1
	return b
}

func Invert(b byte) byte {
	return ^b
}
