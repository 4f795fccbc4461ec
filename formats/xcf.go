package formats

import "encoding/binary"

// parseXCF reads width/height immediately following the GIMP XCF
// signature and version string, at a fixed 14-byte offset.
func parseXCF(c *Cursor) (*Result, error) {
	if err := c.SeekAbs(14); err != nil {
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
	result := newResult(FormatXCF)
	result.Width = width
	result.Height = height
	return result, nil
}
