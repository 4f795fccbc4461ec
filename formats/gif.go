package formats

import "encoding/binary"

// parseGIF reads the Logical Screen Descriptor's width/height fields,
// which sit immediately after the 6-byte "GIF87a"/"GIF89a" signature.
func parseGIF(c *Cursor) (*Result, error) {
	if err := c.SeekAbs(6); err != nil {
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
	result := newResult(FormatGIF)
	result.Width = uint32(width)
	result.Height = uint32(height)
	return result, nil
}
