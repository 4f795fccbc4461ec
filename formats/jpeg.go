package formats

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// parseJPEG walks the marker stream after the SOI marker until it
// finds a Start-Of-Frame segment, which carries the frame's
// height/width fields.
func parseJPEG(c *Cursor) (*Result, error) {
	soi, err := c.ReadExact(2)
	if err != nil {
		return nil, err
	}
	if soi[0] != 0xFF || soi[1] != 0xD8 {
		return nil, errors.New("missing SOI marker")
	}

	for {
		if err := c.Step(); err != nil {
			return nil, err
		}

		marker, err := nextMarker(c)
		if err != nil {
			return nil, err
		}

		if isSOFMarker(marker) {
			segLen, err := c.ReadU16(binary.BigEndian)
			if err != nil {
				return nil, err
			}
			if segLen < 7 {
				return nil, errors.Errorf("SOF segment too short: %d", segLen)
			}
			if _, err := c.ReadExact(1); err != nil { // precision
				return nil, err
			}
			height, err := c.ReadU16(binary.BigEndian)
			if err != nil {
				return nil, err
			}
			width, err := c.ReadU16(binary.BigEndian)
			if err != nil {
				return nil, err
			}
			result := newResult(FormatJPEG)
			result.Width = uint32(width)
			result.Height = uint32(height)
			return result, nil
		}

		if isNoPayloadMarker(marker) {
			continue
		}

		segLen, err := c.ReadU16(binary.BigEndian)
		if err != nil {
			return nil, err
		}
		if segLen < 2 {
			return nil, errors.Errorf("invalid segment length: %d", segLen)
		}
		if err := c.SeekRel(int64(segLen - 2)); err != nil {
			return nil, err
		}
	}
}

// nextMarker scans forward to the next 0xFF byte and returns the
// marker byte that follows, skipping any 0xFF fill bytes in between.
func nextMarker(c *Cursor) (byte, error) {
	for {
		b, err := c.ReadU8()
		if err != nil {
			return 0, err
		}
		if b != 0xFF {
			continue
		}
		m, err := c.ReadU8()
		if err != nil {
			return 0, err
		}
		for m == 0xFF {
			m, err = c.ReadU8()
			if err != nil {
				return 0, err
			}
		}
		return m, nil
	}
}

func isSOFMarker(m byte) bool {
	if m < 0xC0 || m > 0xCF {
		return false
	}
	switch m {
	case 0xC4, 0xC8, 0xCC:
		return false
	default:
		return true
	}
}

func isNoPayloadMarker(m byte) bool {
	if m >= 0xD0 && m <= 0xD7 {
		return true
	}
	return m == 0xD8 || m == 0xD9 || m == 0x01
}
