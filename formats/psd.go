package formats

import "encoding/binary"

// parsePSD reads the PSD file header's height/width pair (in that
// order: PSD stores height before width, unlike most of its peers).
func parsePSD(c *Cursor) (*Result, error) {
	if err := c.SeekAbs(14); err != nil {
		return nil, err
	}
	height, err := c.ReadU32(binary.BigEndian)
	if err != nil {
		return nil, err
	}
	width, err := c.ReadU32(binary.BigEndian)
	if err != nil {
		return nil, err
	}
	result := newResult(FormatPSD)
	result.Width = width
	result.Height = height
	return result, nil
}
