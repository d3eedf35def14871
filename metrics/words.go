package metrics

// Kind classifies a span.
type Kind int8

const (
	Word   Kind = iota // a run of ASCII letters, possibly with digits
	Number             // a run of digits with at most one decimal point
	Wide               // a single code unit above U+007F
)

func (k Kind) String() string {
	switch k {
	case Word:
		return "word"
	case Number:
		return "number"
	case Wide:
		return "wide"
	}
	return "unknown"
}

// Span is a code-unit range descriptor inside a text.
//
// Pos is the start offset, Len is the span length in code units.
type Span struct {
	Pos  int
	Len  int
	Kind Kind
}

// WordsValue is the result of a word-counting pass.
type WordsValue struct {
	Spans []Span
}

// WordCount returns the number of recognized words, numbers and wide
// characters.
func (v WordsValue) WordCount() int {
	return len(v.Spans)
}

// CountOf returns the number of spans of a given kind.
func (v WordsValue) CountOf(kind Kind) int {
	n := 0
	for _, s := range v.Spans {
		if s.Kind == kind {
			n++
		}
	}
	return n
}

// Text concatenates the spans of v, cut out of units, in logical order.
// units has to be the text v was measured on.
func (v WordsValue) Text(units []uint16) []uint16 {
	total := 0
	for _, s := range v.Spans {
		total += s.Len
	}
	out := make([]uint16, 0, total)
	for _, s := range v.Spans {
		out = append(out, units[s.Pos:s.Pos+s.Len]...)
	}
	return out
}

// WordsMetric counts words.
type WordsMetric struct{}

// Words creates a word metric.
func Words() WordsMetric {
	return WordsMetric{}
}

type scanState int8

const (
	idle scanState = iota
	inWord
	inInteger
	atPoint // an integer followed by '.'
	inFraction
)

// Apply scans units for words.
//
// ASCII letters start or continue a word; a number directly followed by a
// letter continues as a word, unless it has a decimal point. Digits start
// a number. A single '.' inside a number starts its fraction. Any code
// unit above U+007F terminates the current token and is a span of kind
// Wide by itself. Every other code unit is a separator.
func (WordsMetric) Apply(units []uint16) WordsValue {
	spans := make([]Span, 0, 8)
	st, start := idle, 0
	emit := func(end int) {
		kind := Number
		if st == inWord {
			kind = Word
		}
		spans = append(spans, Span{Pos: start, Len: end - start, Kind: kind})
		st = idle
	}
	for i, c := range units {
		switch {
		case isDigit(c):
			switch st {
			case idle:
				st, start = inInteger, i
			case atPoint:
				st = inFraction
			}
		case isLetter(c):
			switch st {
			case idle:
				st, start = inWord, i
			case inInteger:
				st = inWord
			case atPoint, inFraction:
				emit(i)
				st, start = inWord, i
			}
		case c > 127:
			if st != idle {
				emit(i)
			}
			spans = append(spans, Span{Pos: i, Len: 1, Kind: Wide})
		default:
			switch {
			case st == idle:
			case st == inInteger && c == '.':
				st = atPoint
			default:
				emit(i)
			}
		}
	}
	if st != idle {
		emit(len(units))
	}
	return WordsValue{Spans: spans}
}

func isDigit(c uint16) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c uint16) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}
