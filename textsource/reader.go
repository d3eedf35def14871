package textsource

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnknownEncoding is returned for encoding names htmlindex does not know.
var ErrUnknownEncoding = errors.New("textsource: unknown encoding")

const replacementChar = 0xfffd

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// aliases maps Node.js style encoding names to WHATWG labels.
var aliases = map[string]string{
	"":        "utf-8",
	"utf16le": "utf-16le",
	"ucs2":    "utf-16le",
	"ucs-2":   "utf-16le",
	"latin1":  "iso-8859-1",
	"binary":  "iso-8859-1",
}

// Lookup resolves an encoding name. Besides the WHATWG labels understood by
// htmlindex, the Node.js names "utf16le", "ucs2" and "latin1" are accepted.
// The empty name means UTF-8.
func Lookup(name string) (encoding.Encoding, error) {
	label := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := aliases[label]; ok {
		label = alias
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return enc, nil
}

// UnitReader decodes a byte stream into UTF-16 code units.
//
// Input in UTF-16LE is split into code units as it is, lone surrogates
// included. Any other encoding is decoded and re-encoded as UTF-16LE through
// a transform chain.
type UnitReader struct {
	r       io.Reader
	buf     []byte
	odd     []byte // a dangling byte from the previous read
	oddSave [1]byte
	eof     bool
}

// NewUnitReader wraps r, which delivers text in the named encoding.
func NewUnitReader(r io.Reader, encodingName string) (*UnitReader, error) {
	enc, err := Lookup(encodingName)
	if err != nil {
		return nil, err
	}
	ur := &UnitReader{}
	if isUTF16LE(enc) {
		ur.r = r
	} else {
		ur.r = transform.NewReader(r, transform.Chain(enc.NewDecoder(), utf16le.NewEncoder()))
	}
	return ur, nil
}

func isUTF16LE(enc encoding.Encoding) bool {
	name, err := htmlindex.Name(enc)
	return err == nil && name == "utf-16le"
}

// ReadUnits reads up to len(p) code units into p. It follows the io.Reader
// conventions: it returns io.EOF at the end of input, and a call may
// return fewer units than requested, zero included, without an error.
// A dangling byte at the end of input becomes U+FFFD.
func (ur *UnitReader) ReadUnits(p []uint16) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if ur.eof {
		return 0, io.EOF
	}
	want := 2 * len(p)
	if cap(ur.buf) < want {
		ur.buf = make([]byte, want)
	}
	b := ur.buf[:want]
	k := copy(b, ur.odd)
	ur.odd = nil
	n, err := ur.r.Read(b[k:])
	k += n
	units := k / 2
	for i := 0; i < units; i++ {
		p[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	if k%2 == 1 {
		ur.oddSave[0] = b[k-1]
		ur.odd = ur.oddSave[:]
	}
	if err == io.EOF {
		ur.eof = true
		if ur.odd != nil {
			// k is odd, hence units < len(p)
			p[units] = replacementChar
			units++
			ur.odd = nil
		}
	}
	return units, err
}

// ReadAll reads code units until the end of input.
func (ur *UnitReader) ReadAll() ([]uint16, error) {
	units := make([]uint16, 0, 512)
	chunk := make([]uint16, 512)
	for {
		n, err := ur.ReadUnits(chunk)
		units = append(units, chunk[:n]...)
		if err == io.EOF {
			return units, nil
		}
		if err != nil {
			return units, err
		}
	}
}

// EncodeUTF16LE serializes code units as UTF-16LE bytes.
func EncodeUTF16LE(units []uint16) []byte {
	p := make([]byte, 2*len(units))
	for i, c := range units {
		binary.LittleEndian.PutUint16(p[2*i:], c)
	}
	return p
}

// DecodeUTF16LE splits UTF-16LE bytes into code units. A dangling byte at
// the end becomes U+FFFD.
func DecodeUTF16LE(p []byte) []uint16 {
	units := make([]uint16, (len(p)+1)/2)
	for i := 0; i+1 < len(p); i += 2 {
		units[i/2] = binary.LittleEndian.Uint16(p[i:])
	}
	if len(p)%2 == 1 {
		units[len(units)-1] = replacementChar
	}
	return units
}
