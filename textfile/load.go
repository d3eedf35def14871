package textfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/textbuilder"
	"github.com/npillmayer/textbuilder/textsource"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

// ErrAlreadyLoaded is returned when Load is called for a second time.
var ErrAlreadyLoaded = errors.New("textfile: file already loaded")

// ErrNotRegular is returned when opening something else than a regular file.
var ErrNotRegular = errors.New("textfile: not a regular file")

// Options control loading of a file.
type Options struct {
	// Encoding names the encoding of the file, see textsource.Lookup.
	// Empty means UTF-8.
	Encoding string
	// FragmentSize is the number of code units per fragment. 0 selects a
	// size suitable for the size of the file.
	FragmentSize int
}

// Fragment is a piece of a file, decoded to code units.
type Fragment struct {
	Index  int      // sequence number, starting at 0
	Offset int      // code-unit offset of the fragment within the text
	Units  []uint16 // content of the fragment; must not be modified
}

// Loader loads a single text file.
type Loader struct {
	path     string
	info     os.FileInfo
	file     *os.File
	encoding string
	fragSize int
	cast     *caster.Caster // broadcaster for async file loading
	once     sync.Once
}

// Open opens a file, which must be a regular text file, for loading. The
// encoding is checked right away, decoding starts with Load.
func Open(name string, opts Options) (*Loader, error) {
	if _, err := textsource.Lookup(opts.Encoding); err != nil {
		return nil, err
	}
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	fragSize := opts.FragmentSize
	if fragSize <= 0 {
		fragSize = fragmentSize(fi.Size())
	}
	return &Loader{
		path:     name,
		info:     fi,
		file:     file,
		encoding: opts.Encoding,
		fragSize: fragSize,
		cast:     caster.New(nil), // we will broadcast messages when fragments are loaded
	}, nil
}

// fragmentSize chooses a default fragment size for a file of size bytes.
func fragmentSize(size int64) int {
	switch {
	case size < 64:
		return max(int(size), 1)
	case size < 1024:
		return 64
	case size < tenKb:
		return 256
	case size < hundredKb:
		return 512
	case size < oneMb:
		return twoKb
	}
	return sixKb
}

// FragmentSize returns the number of code units per fragment.
func (l *Loader) FragmentSize() int {
	return l.fragSize
}

// Subscribe returns a channel which receives every fragment as soon as
// it has been appended to the builder. The channel is closed after the
// last fragment or when ctx is done. Subscriptions have to be made before
// calling Load to receive all fragments.
func (l *Loader) Subscribe(ctx context.Context) <-chan Fragment {
	out := make(chan Fragment, 16)
	ch, ok := l.cast.Sub(ctx, 16)
	if !ok {
		close(out)
		return out
	}
	go func() {
		defer close(out)
		for m := range ch {
			frag, ok := m.(Fragment)
			if !ok {
				continue
			}
			select {
			case out <- frag:
			case <-ctx.Done():
				// keep Pub from blocking until the caster closes ch
				for range ch {
				}
				return
			}
		}
	}()
	return out
}

// Load decodes the file and returns a builder holding its text. Fragments
// are decoded on a separate goroutine and published to subscribers in file
// order. Load closes the file. If an I/O error occurs, the builder holds the
// text decoded up to the error and the error is returned.
func (l *Loader) Load() (*textbuilder.Builder, error) {
	first := false
	l.once.Do(func() { first = true })
	if !first {
		return nil, ErrAlreadyLoaded
	}
	defer l.file.Close()
	defer l.cast.Close()
	ur, err := textsource.NewUnitReader(l.file, l.encoding)
	if err != nil {
		return nil, err
	}
	b := textbuilder.New(nil, int(min(l.info.Size(), int64(maxInitialCap))))
	fragChan := make(chan Fragment, 4)
	var lastError error
	go func(ch chan<- Fragment) {
		// iterate over the file and decode fragments of text
		defer close(ch)
		offset := 0
		for index := 0; ; index++ {
			units, err := readFragment(ur, l.fragSize)
			if len(units) > 0 {
				ch <- Fragment{Index: index, Offset: offset, Units: units}
				offset += len(units)
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					lastError = fmt.Errorf("textfile: loading text fragment of %s: %w", l.path, err)
				}
				return
			}
		}
	}(fragChan)
	count := 0
	for frag := range fragChan {
		b.Append(textsource.Owned(frag.Units))
		l.cast.Pub(frag)
		count++
	}
	tracer().Debugf("textfile: loaded %s in %d fragments, %d code units", l.path, count, b.Len())
	return b, lastError
}

// Close releases the file of a loader which has not been loaded.
func (l *Loader) Close() error {
	first := false
	l.once.Do(func() { first = true })
	if !first {
		return nil
	}
	l.cast.Close()
	return l.file.Close()
}

const maxInitialCap = 16 * oneMb

// readFragment reads up to size code units, returning fewer only at the end
// of input or on an error.
func readFragment(ur *textsource.UnitReader, size int) ([]uint16, error) {
	units := make([]uint16, size)
	n := 0
	for n < size {
		k, err := ur.ReadUnits(units[n:])
		n += k
		if err != nil {
			return units[:n], err
		}
	}
	return units[:n], nil
}

// Load is a shortcut to load a file without subscribing to fragments.
func Load(name string, opts Options) (*textbuilder.Builder, error) {
	l, err := Open(name, opts)
	if err != nil {
		return nil, err
	}
	return l.Load()
}
