package formats

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// parseDIB reads a standalone (prefixless) Device-Independent Bitmap
// header from the very start of the stream.
func parseDIB(c *Cursor) (*Result, error) {
	if err := c.SeekAbs(0); err != nil {
		return nil, err
	}
	return decodeDIB(c)
}

// decodeDIB reads the DIB header at the Cursor's current position,
// handling both the 12-byte BITMAPCOREHEADER and the 40-byte-or-larger
// BITMAPINFOHEADER family (BITMAPV4HEADER, BITMAPV5HEADER, ...), all of
// which share the same leading width/height layout.
func decodeDIB(c *Cursor) (*Result, error) {
	headerSize, err := c.ReadU32(binary.LittleEndian)
	if err != nil {
		return nil, err
	}

	result := newResult(FormatDIB)

	switch {
	case headerSize == 12:
		width, err := c.ReadU16(binary.LittleEndian)
		if err != nil {
			return nil, err
		}
		height, err := c.ReadU16(binary.LittleEndian)
		if err != nil {
			return nil, err
		}
		result.Width = uint32(width)
		result.Height = uint32(height)

	case headerSize >= 40:
		width, err := c.ReadI32(binary.LittleEndian)
		if err != nil {
			return nil, err
		}
		height, err := c.ReadI32(binary.LittleEndian)
		if err != nil {
			return nil, err
		}
		if width < 0 {
			return nil, errors.Errorf("negative width: %d", width)
		}
		result.Width = uint32(width)
		if height < 0 {
			height = -height
		}
		result.Height = uint32(height)

	default:
		return nil, errors.Errorf("unsupported DIB header size: %d", headerSize)
	}

	return result, nil
}
