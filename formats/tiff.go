package formats

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

const (
	tiffTagImageWidth  = 0x0100
	tiffTagImageLength = 0x0101
	tiffTypeShort      = 3
	tiffTypeLong       = 4
)

// parseTIFF walks the first IFD looking for the ImageWidth and
// ImageLength tags, switching integer byte order mid-parse based on
// the "II"/"MM" mark at the start of the file. This same 12-byte
// tag/type/count/value entry layout is what EXIF sub-IFDs use, but
// here only the two dimension tags are extracted.
func parseTIFF(c *Cursor) (*Result, error) {
	mark, err := c.ReadExact(2)
	if err != nil {
		return nil, err
	}
	var order binary.ByteOrder
	switch string(mark) {
	case "II":
		order = binary.LittleEndian
	case "MM":
		order = binary.BigEndian
	default:
		return nil, errors.Errorf("invalid TIFF byte order mark: %q", mark)
	}

	magic, err := c.ReadU16(order)
	if err != nil {
		return nil, err
	}
	if magic != 42 {
		return nil, errors.Errorf("invalid TIFF magic number: %d", magic)
	}

	ifdOffset, err := c.ReadU32(order)
	if err != nil {
		return nil, err
	}
	if err := c.SeekAbs(int64(ifdOffset)); err != nil {
		return nil, err
	}

	entryCount, err := c.ReadU16(order)
	if err != nil {
		return nil, err
	}

	var width, height uint32
	haveWidth, haveHeight := false, false

	for i := 0; i < int(entryCount); i++ {
		if err := c.Step(); err != nil {
			return nil, err
		}
		tag, err := c.ReadU16(order)
		if err != nil {
			return nil, err
		}
		entryType, err := c.ReadU16(order)
		if err != nil {
			return nil, err
		}
		if _, err := c.ReadU32(order); err != nil { // count, unused for scalar tags
			return nil, err
		}
		valueBytes, err := c.ReadExact(4)
		if err != nil {
			return nil, err
		}

		if tag != tiffTagImageWidth && tag != tiffTagImageLength {
			continue
		}
		value, err := decodeTIFFScalar(valueBytes, entryType, order)
		if err != nil {
			return nil, err
		}
		if tag == tiffTagImageWidth {
			width, haveWidth = value, true
		} else {
			height, haveHeight = value, true
		}
	}

	if !haveWidth || !haveHeight {
		return nil, errors.New("missing ImageWidth or ImageLength tag")
	}

	result := newResult(FormatTIFF)
	result.Width = width
	result.Height = height
	return result, nil
}

// decodeTIFFScalar interprets an in-place IFD entry value (SHORT or
// LONG, the only two types ImageWidth/ImageLength ever use).
func decodeTIFFScalar(raw []byte, entryType uint16, order binary.ByteOrder) (uint32, error) {
	switch entryType {
	case tiffTypeShort:
		return uint32(order.Uint16(raw[0:2])), nil
	case tiffTypeLong:
		return order.Uint32(raw), nil
	default:
		return 0, errors.Errorf("unsupported IFD entry type: %d", entryType)
	}
}
