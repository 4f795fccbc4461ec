package formats

import "encoding/binary"

// parseTGA reads width/height from the fixed image-specification
// offset, regardless of whether the optional v2 footer was present
// during detection.
func parseTGA(c *Cursor) (*Result, error) {
	if err := c.SeekAbs(12); err != nil {
		return nil, err
	}
	width, err := c.ReadU16(binary.LittleEndian)
	if err != nil {
		return nil, err
	}
	height, err := c.ReadU16(binary.LittleEndian)
	if err != nil {
		return nil, err
	}
	result := newResult(FormatTGA)
	result.Width = uint32(width)
	result.Height = uint32(height)
	return result, nil
}
