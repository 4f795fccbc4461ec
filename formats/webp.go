package formats

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// parseWEBP reads the 4-byte chunk FourCC at offset 12 (right after the
// RIFF/WEBP headers) and dispatches to the matching sub-chunk parser.
func parseWEBP(c *Cursor) (*Result, error) {
	if err := c.SeekAbs(12); err != nil {
		return nil, err
	}
	fourCC, err := c.ReadTag(4)
	if err != nil {
		return nil, err
	}

	switch fourCC {
	case "VP8 ":
		return parseVP8(c)
	case "VP8L":
		return parseVP8L(c)
	case "VP8X":
		return parseVP8X(c)
	default:
		return nil, errors.Errorf("unsupported WebP chunk type: %q", fourCC)
	}
}

// parseVP8 reads the simple lossy bitstream's key frame header, which
// carries 14-bit width/height fields after a 3-byte frame tag and the
// 0x9D 0x01 0x2A start code.
func parseVP8(c *Cursor) (*Result, error) {
	if _, err := c.ReadU32(binary.BigEndian); err != nil { // chunk size, unused
		return nil, err
	}
	if _, err := c.ReadExact(3); err != nil { // frame tag
		return nil, err
	}
	startCode, err := c.ReadExact(3)
	if err != nil {
		return nil, err
	}
	if startCode[0] != 0x9D || startCode[1] != 0x01 || startCode[2] != 0x2A {
		return nil, errors.New("invalid VP8 key frame start code")
	}
	width, err := c.ReadU16(binary.LittleEndian)
	if err != nil {
		return nil, err
	}
	height, err := c.ReadU16(binary.LittleEndian)
	if err != nil {
		return nil, err
	}
	result := newResult(FormatWEBP)
	result.Width = uint32(width & 0x3FFF)
	result.Height = uint32(height & 0x3FFF)
	return result, nil
}

// parseVP8L reads the lossless bitstream's packed 14-bit dimension
// fields following its 1-byte 0x2F signature.
func parseVP8L(c *Cursor) (*Result, error) {
	if _, err := c.ReadU32(binary.BigEndian); err != nil { // chunk size, unused
		return nil, err
	}
	sig, err := c.ReadU8()
	if err != nil {
		return nil, err
	}
	if sig != 0x2F {
		return nil, errors.Errorf("invalid VP8L signature byte: 0x%02X", sig)
	}
	value, err := c.ReadU32(binary.LittleEndian)
	if err != nil {
		return nil, err
	}
	result := newResult(FormatWEBP)
	result.Width = (value & 0x3FFF) + 1
	result.Height = ((value >> 14) & 0x3FFF) + 1
	return result, nil
}

// parseVP8X reads the extended format's 24-bit width_minus_one and
// height_minus_one fields after its flags and reserved bytes.
func parseVP8X(c *Cursor) (*Result, error) {
	if _, err := c.ReadU32(binary.BigEndian); err != nil { // chunk size, unused
		return nil, err
	}
	if _, err := c.ReadExact(4); err != nil { // flags + 3 reserved bytes
		return nil, err
	}
	widthMinusOne, err := c.ReadU24(binary.LittleEndian)
	if err != nil {
		return nil, err
	}
	heightMinusOne, err := c.ReadU24(binary.LittleEndian)
	if err != nil {
		return nil, err
	}
	result := newResult(FormatWEBP)
	result.Width = widthMinusOne + 1
	result.Height = heightMinusOne + 1
	return result, nil
}
