package formats

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// box describes one ISO-BMFF/JP2-style length-prefixed record: a
// 4-byte big-endian length, a 4-byte type tag, and a payload. A length
// of 1 signals a 64-bit extended length follows the type; a length of
// 0 means "extends to end of file".
type box struct {
	typ       string
	dataStart int64
	end       int64
}

// readBox reads one box header at the Cursor's current position and
// returns its type and payload bounds, without consuming the payload.
func readBox(c *Cursor, containerEnd int64) (box, error) {
	start, err := c.Pos()
	if err != nil {
		return box{}, err
	}

	length32, err := c.ReadU32(binary.BigEndian)
	if err != nil {
		return box{}, err
	}
	typ, err := c.ReadTag(4)
	if err != nil {
		return box{}, err
	}

	headerLen := int64(8)
	var length int64
	switch length32 {
	case 0:
		length = containerEnd - start
	case 1:
		length64, err := c.ReadU64(binary.BigEndian)
		if err != nil {
			return box{}, err
		}
		length = int64(length64)
		headerLen = 16
	default:
		length = int64(length32)
	}

	if length < headerLen || start+length > containerEnd {
		return box{}, errors.Errorf("box %q has invalid length %d", typ, length)
	}

	return box{typ: typ, dataStart: start + headerLen, end: start + length}, nil
}

// findChildBox scans the sibling boxes between [start, end) for the
// first one whose type matches want, bounded by the shared
// box/marker/entry step ceiling.
func findChildBox(c *Cursor, start, end int64, want string) (box, error) {
	pos := start
	for pos < end {
		if err := c.Step(); err != nil {
			return box{}, err
		}
		if err := c.SeekAbs(pos); err != nil {
			return box{}, err
		}
		b, err := readBox(c, end)
		if err != nil {
			return box{}, err
		}
		if b.typ == want {
			return b, nil
		}
		pos = b.end
	}
	return box{}, errors.Errorf("box %q not found", want)
}
