package formats

import "encoding/binary"

// parseICO reports the dimensions of the first directory entry only;
// see the Open Question in DESIGN.md about multi-entry selection.
func parseICO(c *Cursor) (*Result, error) {
	if err := c.SeekAbs(4); err != nil {
		return nil, err
	}
	if _, err := c.ReadU16(binary.LittleEndian); err != nil { // entry count, unused
		return nil, err
	}
	width, err := c.ReadU8()
	if err != nil {
		return nil, err
	}
	height, err := c.ReadU8()
	if err != nil {
		return nil, err
	}

	result := newResult(FormatICO)
	if width == 0 {
		result.Width = 256
	} else {
		result.Width = uint32(width)
	}
	if height == 0 {
		result.Height = 256
	} else {
		result.Height = uint32(height)
	}
	return result, nil
}
