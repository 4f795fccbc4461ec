package formats

import "encoding/binary"

// parsePCX reads the PCX header's image bounding box (xmin, ymin,
// xmax, ymax) at its fixed 4-byte offset and derives width/height from
// it.
func parsePCX(c *Cursor) (*Result, error) {
	if err := c.SeekAbs(4); err != nil {
		return nil, err
	}
	xmin, err := c.ReadU16(binary.LittleEndian)
	if err != nil {
		return nil, err
	}
	ymin, err := c.ReadU16(binary.LittleEndian)
	if err != nil {
		return nil, err
	}
	xmax, err := c.ReadU16(binary.LittleEndian)
	if err != nil {
		return nil, err
	}
	ymax, err := c.ReadU16(binary.LittleEndian)
	if err != nil {
		return nil, err
	}
	result := newResult(FormatPCX)
	result.Width = uint32(xmax-xmin) + 1
	result.Height = uint32(ymax-ymin) + 1
	return result, nil
}
