package formats

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

const exrMaxAttrTokenLen = 256

// parseEXR walks the OpenEXR attribute list that follows the 8-byte
// magic+version header, looking for the "dataWindow" box2i attribute
// that carries the pixel bounds.
func parseEXR(c *Cursor) (*Result, error) {
	if err := c.SeekAbs(8); err != nil {
		return nil, err
	}

	for {
		if err := c.Step(); err != nil {
			return nil, err
		}

		name, err := readNullTerminated(c, exrMaxAttrTokenLen)
		if err != nil {
			return nil, err
		}
		if len(name) == 0 {
			break
		}

		attrType, err := readNullTerminated(c, exrMaxAttrTokenLen)
		if err != nil {
			return nil, err
		}

		size, err := c.ReadU32(binary.LittleEndian)
		if err != nil {
			return nil, err
		}

		if name == "dataWindow" {
			if attrType != "box2i" || size != 16 {
				return nil, errors.Errorf("malformed dataWindow attribute: type=%s size=%d", attrType, size)
			}
			xMin, err := c.ReadI32(binary.LittleEndian)
			if err != nil {
				return nil, err
			}
			yMin, err := c.ReadI32(binary.LittleEndian)
			if err != nil {
				return nil, err
			}
			xMax, err := c.ReadI32(binary.LittleEndian)
			if err != nil {
				return nil, err
			}
			yMax, err := c.ReadI32(binary.LittleEndian)
			if err != nil {
				return nil, err
			}
			result := newResult(FormatEXR)
			result.Width = uint32(xMax - xMin + 1)
			result.Height = uint32(yMax - yMin + 1)
			return result, nil
		}

		if _, err := c.ReadExact(int(size)); err != nil {
			return nil, err
		}
	}

	return nil, errors.New("dataWindow attribute not found")
}

// readNullTerminated reads bytes up to a NUL terminator (exclusive),
// bounded by max to prevent an unterminated stream from exhausting the
// read budget one byte at a time.
func readNullTerminated(c *Cursor, max int) (string, error) {
	buf := make([]byte, 0, 16)
	for i := 0; i < max; i++ {
		b, err := c.ReadU8()
		if err != nil {
			return "", err
		}
		if b == 0 {
			return string(buf), nil
		}
		buf = append(buf, b)
	}
	return "", errors.New("attribute name/type exceeds maximum length")
}
