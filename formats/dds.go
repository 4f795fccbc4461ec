package formats

import "encoding/binary"

// parseDDS reads the DDS_HEADER's height/width pair (in that order)
// at its fixed 12-byte offset, past the "DDS " magic and the header
// size and flags fields.
func parseDDS(c *Cursor) (*Result, error) {
	if err := c.SeekAbs(12); err != nil {
		return nil, err
	}
	height, err := c.ReadU32(binary.LittleEndian)
	if err != nil {
		return nil, err
	}
	width, err := c.ReadU32(binary.LittleEndian)
	if err != nil {
		return nil, err
	}
	result := newResult(FormatDDS)
	result.Width = width
	result.Height = height
	return result, nil
}
