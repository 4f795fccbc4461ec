package formats

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// parseJP2 handles both JPEG 2000 variants: the boxed JP2 file format
// (walk to jp2h > ihdr) and the raw codestream (read the SIZ marker
// segment directly after SOC).
func parseJP2(c *Cursor) (*Result, error) {
	if err := c.SeekAbs(0); err != nil {
		return nil, err
	}
	prefix, err := c.PeekPrefix(4)
	if err != nil {
		return nil, err
	}
	if len(prefix) == 4 && prefix[0] == 0xFF && prefix[1] == 0x4F && prefix[2] == 0xFF && prefix[3] == 0x51 {
		return parseJP2Codestream(c)
	}
	return parseJP2Boxes(c)
}

// parseJP2Boxes walks the top-level box list for the jp2h header
// superbox, then its ihdr child, which carries height/width.
func parseJP2Boxes(c *Cursor) (*Result, error) {
	end := c.Size()
	jp2h, err := findChildBox(c, 0, end, "jp2h")
	if err != nil {
		return nil, err
	}
	ihdr, err := findChildBox(c, jp2h.dataStart, jp2h.end, "ihdr")
	if err != nil {
		return nil, err
	}
	if err := c.SeekAbs(ihdr.dataStart); err != nil {
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
	result := newResult(FormatJP2)
	result.Width = width
	result.Height = height
	return result, nil
}

// parseJP2Codestream reads the SIZ marker segment that follows a raw
// codestream's SOC marker, and reports the image area (Xsiz-XOsiz,
// Ysiz-YOsiz) rather than the full reference grid.
func parseJP2Codestream(c *Cursor) (*Result, error) {
	markers, err := c.ReadExact(4)
	if err != nil {
		return nil, err
	}
	if markers[0] != 0xFF || markers[1] != 0x4F || markers[2] != 0xFF || markers[3] != 0x51 {
		return nil, errors.New("missing SOC/SIZ markers")
	}
	if _, err := c.ReadU16(binary.BigEndian); err != nil { // segment length
		return nil, err
	}
	if _, err := c.ReadU16(binary.BigEndian); err != nil { // Rsiz
		return nil, err
	}
	xsiz, err := c.ReadU32(binary.BigEndian)
	if err != nil {
		return nil, err
	}
	ysiz, err := c.ReadU32(binary.BigEndian)
	if err != nil {
		return nil, err
	}
	xosiz, err := c.ReadU32(binary.BigEndian)
	if err != nil {
		return nil, err
	}
	yosiz, err := c.ReadU32(binary.BigEndian)
	if err != nil {
		return nil, err
	}
	result := newResult(FormatJP2)
	result.Width = xsiz - xosiz
	result.Height = ysiz - yosiz
	return result, nil
}
