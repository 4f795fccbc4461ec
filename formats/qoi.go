package formats

import "encoding/binary"

// parseQOI reads the width/height pair that follows the 4-byte "qoif"
// signature.
func parseQOI(c *Cursor) (*Result, error) {
	if err := c.SeekAbs(4); err != nil {
		return nil, err
	}
	width, err := c.ReadU32(binary.BigEndian)
	if err != nil {
		return nil, err
	}
	height, err := c.ReadU32(binary.BigEndian)
	if err != nil {
		return nil, err
	}
	result := newResult(FormatQOI)
	result.Width = width
	result.Height = height
	return result, nil
}
