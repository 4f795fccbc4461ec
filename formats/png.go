package formats

import "encoding/binary"

// parsePNG reads IHDR, the first chunk after the 8-byte signature, at
// its fixed offset of 16 bytes into the stream.
func parsePNG(c *Cursor) (*Result, error) {
	if err := c.SeekAbs(16); err != nil {
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
	result := newResult(FormatPNG)
	result.Width = width
	result.Height = height
	return result, nil
}
