package textbuilder

import (
	"errors"
	"io"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/npillmayer/textbuilder/textsource"
)

// Reader returns a reader for the UTF-8 bytes of the text. The reader
// reads the live content: changing the builder while reading is allowed,
// but the outcome is unspecified.
func (b *Builder) Reader() io.Reader {
	return &builderReader{cursor: b.NewCharCursor()}
}

type builderReader struct {
	cursor  *CharCursor
	pending []byte
	enc     [utf8.UTFMax]byte
}

func (br *builderReader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if len(br.pending) == 0 {
			r, ok := br.cursor.Next()
			if !ok {
				break
			}
			br.pending = br.enc[:utf8.EncodeRune(br.enc[:], r)]
		}
		k := copy(p[n:], br.pending)
		br.pending = br.pending[k:]
		n += k
	}
	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	return n, nil
}

// WriteTo writes a snapshot of the text to w, encoded as UTF-8. It
// implements io.WriterTo.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// ReadFrom appends UTF-8 text from r until EOF. It implements io.ReaderFrom.
// The number of bytes read is returned.
func (b *Builder) ReadFrom(r io.Reader) (int64, error) {
	return b.ReadEncoded(r, "")
}

// ReadEncoded appends text from r until EOF, decoding it from encoding. The
// number of bytes read is returned. On an error the text decoded so far
// stays appended.
func (b *Builder) ReadEncoded(r io.Reader, encoding string) (int64, error) {
	cr := &countingReader{r: r}
	ur, err := textsource.NewUnitReader(cr, encoding)
	if err != nil {
		return 0, err
	}
	buf := b.buffer()
	chunk := make([]uint16, readChunk)
	for {
		k, err := ur.ReadUnits(chunk)
		buf.Append(chunk[:k])
		if errors.Is(err, io.EOF) {
			return cr.n, nil
		}
		if err != nil {
			tracer().Errorf("textbuilder: reading input: %v", err)
			return cr.n, err
		}
	}
}

const readChunk = 4096

type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.n += int64(n)
	return n, err
}

// Write appends UTF-8 bytes. It implements io.Writer and never fails.
// An incomplete UTF-8 sequence at the end of p is appended as U+FFFD.
func (b *Builder) Write(p []byte) (int, error) {
	b.Append(textsource.Bytes(p))
	return len(p), nil
}

// WriteString appends s. It implements io.StringWriter and never fails.
func (b *Builder) WriteString(s string) (int, error) {
	b.Append(textsource.String(s))
	return len(s), nil
}

// WriteRune appends the UTF-16 encoding of r. It returns the length of the
// UTF-8 encoding of r, like strings.Builder does.
func (b *Builder) WriteRune(r rune) (int, error) {
	if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError {
		b.buffer().Append([]uint16{uint16(r1), uint16(r2)})
	} else {
		if !utf8.ValidRune(r) {
			r = utf8.RuneError
		}
		b.buffer().Append([]uint16{uint16(r)})
	}
	return utf8.RuneLen(r), nil
}
