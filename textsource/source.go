package textsource

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"unicode/utf16"
)

// Source produces a code-unit view of some text.
//
// If owned is true, units is a private copy the caller may keep.
// Otherwise units is borrowed from a live producer: it must not be retained
// beyond the current operation nor written to, and it may alias the
// destination of the operation.
type Source interface {
	CodeUnits() (units []uint16, owned bool)
}

type ownedUnits []uint16

func (o ownedUnits) CodeUnits() ([]uint16, bool) {
	return o, true
}

type borrowedUnits []uint16

func (b borrowedUnits) CodeUnits() ([]uint16, bool) {
	return b, false
}

// Empty is the zero-length source.
var Empty Source = ownedUnits(nil)

// String encodes a Go string as UTF-16. Invalid UTF-8 is replaced by U+FFFD.
func String(s string) Source {
	return ownedUnits(utf16.Encode([]rune(s)))
}

// Bytes encodes UTF-8 bytes as UTF-16.
func Bytes(p []byte) Source {
	return String(string(p))
}

// Units wraps code units without copying them. The result is a borrowed source.
func Units(units []uint16) Source {
	return borrowedUnits(units)
}

// Owned wraps code units the caller hands over.
func Owned(units []uint16) Source {
	return ownedUnits(units)
}

// Int formats an integer in decimal.
func Int(i int64) Source {
	return String(strconv.FormatInt(i, 10))
}

// Uint formats an unsigned integer in decimal.
func Uint(i uint64) Source {
	return String(strconv.FormatUint(i, 10))
}

// Float formats a number the way JavaScript's Number.toString does for
// finite values: plain decimal notation for magnitudes in [1e-7, 1e21),
// exponent notation otherwise.
func Float(f float64) Source {
	return String(formatFloat(f))
}

// Bool formats a boolean as "true" or "false".
func Bool(b bool) Source {
	return String(strconv.FormatBool(b))
}

// Stringer uses the String method of s.
func Stringer(s fmt.Stringer) Source {
	if s == nil {
		return Empty
	}
	return String(s.String())
}

// Encoded reads r to its end and decodes it from encoding.
// An empty encoding means UTF-8.
func Encoded(r io.Reader, encoding string) (Source, error) {
	ur, err := NewUnitReader(r, encoding)
	if err != nil {
		return Empty, err
	}
	units, err := ur.ReadAll()
	if err != nil {
		return Empty, err
	}
	return ownedUnits(units), nil
}

// File reads the contents of a file and decodes it from encoding.
func File(path string, encoding string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return Empty, err
	}
	defer f.Close()
	src, err := Encoded(f, encoding)
	if err != nil {
		return Empty, fmt.Errorf("textsource: reading %s: %w", path, err)
	}
	return src, nil
}

// Of resolves a value to a source. Sources are returned as they are;
// strings, byte slices, code-unit slices, booleans, numbers, fmt.Stringers
// and io.Readers (UTF-8) are converted. Anything else, including nil,
// yields Empty.
func Of(v any) Source {
	switch x := v.(type) {
	case nil:
		return Empty
	case Source:
		return x
	case string:
		return String(x)
	case []byte:
		return Bytes(x)
	case []uint16:
		return Units(x)
	case bool:
		return Bool(x)
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return Uint(uint64(x))
	case uint8:
		return Uint(uint64(x))
	case uint16:
		return Uint(uint64(x))
	case uint32:
		return Uint(uint64(x))
	case uint64:
		return Uint(x)
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	case fmt.Stringer:
		return Stringer(x)
	case io.Reader:
		src, err := Encoded(x, "")
		if err != nil {
			tracer().Errorf("textsource: cannot read source: %v", err)
			return Empty
		}
		return src
	}
	tracer().Debugf("textsource: value of type %T is not convertible to text", v)
	return Empty
}

// Len returns the number of code units src produces.
func Len(src Source) int {
	if src == nil {
		return 0
	}
	units, _ := src.CodeUnits()
	return len(units)
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	if a := math.Abs(f); a >= 1e-7 && a < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
