package formats

import (
	"io"

	"github.com/pkg/errors"
)

// Bounded-work ceilings from the resource model: every parser call
// must terminate within these limits regardless of what a malicious
// or corrupt input claims about its own size.
const (
	maxReadBudget = 64 * 1024
	maxSteps      = 1024
)

// Cursor is the byte reader abstraction every detector and parser is
// written against: absolute/relative seek, current position, and
// exact-N reads over a single underlying io.ReadSeeker. It is
// borrowed for the duration of one Detect+Extract call and never
// retained past that.
type Cursor struct {
	r     io.ReadSeeker
	size  int64
	read  int
	steps int
}

// NewCursor wraps a seekable source, pinning its size up front so
// footer probes (TGA) and box-length bounds checks (ISO-BMFF, JP2)
// don't need a second syscall mid-parse.
func NewCursor(r io.ReadSeeker) (*Cursor, error) {
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, errors.Wrap(err, "seeking to end to measure source")
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "rewinding source")
	}
	return &Cursor{r: r, size: size}, nil
}

// Size returns the total byte length of the underlying source.
func (c *Cursor) Size() int64 { return c.size }

// Pos returns the current absolute offset.
func (c *Cursor) Pos() (int64, error) {
	return c.r.Seek(0, io.SeekCurrent)
}

// SeekAbs seeks to an absolute offset from the start of the source.
func (c *Cursor) SeekAbs(offset int64) error {
	if offset < 0 || offset > c.size {
		return io.ErrUnexpectedEOF
	}
	_, err := c.r.Seek(offset, io.SeekStart)
	return err
}

// SeekRel seeks relative to the current position.
func (c *Cursor) SeekRel(delta int64) error {
	_, err := c.r.Seek(delta, io.SeekCurrent)
	return err
}

// SeekFromEnd seeks relative to the end of the source; delta is
// typically negative (e.g. -18 for the TGA footer probe).
func (c *Cursor) SeekFromEnd(delta int64) error {
	_, err := c.r.Seek(delta, io.SeekEnd)
	return err
}

// ReadExact reads exactly n bytes, failing on short read (EOF) or on
// exceeding the cumulative read budget for this parse call.
func (c *Cursor) ReadExact(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrInvalidData
	}
	c.read += n
	if c.read > maxReadBudget {
		return nil, ErrBudgetExceeded
	}
	buf := make([]byte, n)
	if n == 0 {
		return buf, nil
	}
	if _, err := io.ReadFull(c.r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Step charges one unit against the box/marker/entry visit ceiling.
// Parsers call it once per loop iteration of a box tree, marker
// stream, or tag table walk.
func (c *Cursor) Step() error {
	c.steps++
	if c.steps > maxSteps {
		return errors.New("formats: too many boxes, markers, or entries visited")
	}
	return nil
}

// PeekPrefix reads up to n bytes from the current position without
// permanently advancing it; used by the detector to grow its magic-byte
// window lazily. A short read at EOF is not an error: it returns
// whatever bytes were available.
func (c *Cursor) PeekPrefix(n int) ([]byte, error) {
	pos, err := c.Pos()
	if err != nil {
		return nil, err
	}
	avail := c.size - pos
	if int64(n) > avail {
		n = int(avail)
	}
	if n <= 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(c.r, buf); err != nil {
		return nil, err
	}
	if _, err := c.r.Seek(pos, io.SeekStart); err != nil {
		return nil, err
	}
	return buf, nil
}
