package formats

import "encoding/binary"

// parseVTF reads the width/height pair from the Valve Texture Format
// header at its fixed 16-byte offset.
func parseVTF(c *Cursor) (*Result, error) {
	if err := c.SeekAbs(16); err != nil {
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
	result := newResult(FormatVTF)
	result.Width = uint32(width)
	result.Height = uint32(height)
	return result, nil
}
