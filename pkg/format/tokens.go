package format

import (
	"fmt"
)

// Begin is the file header.
func (f Format) Begin(timestamp string) string {
	switch f {
	case C:
		return fmt.Sprintf("//\n// Font Data\n// Created: %s\n//\n", timestamp)
	case Arduino:
		return fmt.Sprintf("//\n// Font Data\n// Created: %s\n//\n\n#include <Arduino.h>\n", timestamp)
	case PythonList, PythonBytes:
		return fmt.Sprintf("#\n# Font Data\n# Created: %s\n#\n", timestamp)
	default:
		return f.unknown()
	}
}

// BeginArray opens the byte container called name.
func (f Format) BeginArray(name string) string {
	switch f {
	case C:
		return fmt.Sprintf("\n\nconst unsigned char %s[] = {\n", name)
	case Arduino:
		return fmt.Sprintf("\n\nconst uint8_t %s[] PROGMEM = {\n", name)
	case PythonList:
		return fmt.Sprintf("\n\n%s = [\n", name)
	case PythonBytes:
		return fmt.Sprintf("\n\n%s = b'' \\\n", name)
	default:
		return f.unknown()
	}
}

// BeginArrayRow precedes the bytes of each glyph.
func (f Format) BeginArrayRow() string {
	switch f {
	case C, Arduino, PythonList:
		return "\t"
	case PythonBytes:
		// Python refuses to concatenate bytes and str literals, so every
		// row needs its own b prefix.
		return "\tb'"
	default:
		return f.unknown()
	}
}

func (f Format) Byte(b byte) string {
	switch f {
	case C, Arduino:
		return fmt.Sprintf("0x%02X,", b)
	case PythonList:
		return fmt.Sprintf("0x%02x,", b)
	case PythonBytes:
		return fmt.Sprintf("\\x%02x", b)
	default:
		return f.unknown()
	}
}

// Comment annotates a glyph row. Byte strings have no room for it, so the
// text is dropped and the quoted segment is closed instead.
func (f Format) Comment(text string) string {
	switch f {
	case C, Arduino:
		return " // " + text
	case PythonList:
		return " # " + text
	case PythonBytes:
		return "' \\"
	default:
		return f.unknown()
	}
}

func (f Format) LineBreak() string {
	switch f {
	case C, Arduino, PythonList, PythonBytes:
		return "\n"
	default:
		return f.unknown()
	}
}

func (f Format) EndArray() string {
	switch f {
	case C, Arduino:
		return "};\n"
	case PythonList:
		return "]\n"
	case PythonBytes:
		// terminates the trailing line continuation
		return "\tb''\n"
	default:
		return f.unknown()
	}
}

func (f Format) End() string {
	switch f {
	case C, Arduino, PythonList, PythonBytes:
		return "\n\n"
	default:
		return f.unknown()
	}
}
