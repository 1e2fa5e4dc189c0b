// Package format renders the structural tokens of the supported source code
// dialects around packed font bytes.
package format

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type Format int

const (
	C Format = iota
	Arduino
	PythonList
	PythonBytes
)

var ErrUnknownFormat = errors.New("unknown output format")

var names = [...]string{
	C:           "c",
	Arduino:     "arduino",
	PythonList:  "python-list",
	PythonBytes: "python-bytes",
}

// Names lists every accepted format name.
func Names() []string {
	return append([]string(nil), names[:]...)
}

func Parse(name string) (Format, error) {
	i := lo.IndexOf(names[:], strings.ToLower(strings.TrimSpace(name)))
	if i < 0 {
		return C, errors.Wrapf(ErrUnknownFormat, "%q (available: %s)", name, strings.Join(names[:], ", "))
	}
	return Format(i), nil
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(names) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return names[f]
}

// Set implements pflag.Value.
func (f *Format) Set(name string) error {
	v, err := Parse(name)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Type implements pflag.Value.
func (f *Format) Type() string {
	return "format"
}

func (f Format) unknown() string {
	panic(fmt.Sprintf("format: unhandled %s", f))
}
