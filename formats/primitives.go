package formats

import "encoding/binary"

// Primitive decoders read fixed-width integers off a Cursor with an
// explicit byte order, so endianness is a parameter rather than
// something baked into a type (TIFF switches byte order mid-parse).

func (c *Cursor) ReadU8() (uint8, error) {
	b, err := c.ReadExact(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *Cursor) ReadU16(order binary.ByteOrder) (uint16, error) {
	b, err := c.ReadExact(2)
	if err != nil {
		return 0, err
	}
	return order.Uint16(b), nil
}

func (c *Cursor) ReadU32(order binary.ByteOrder) (uint32, error) {
	b, err := c.ReadExact(4)
	if err != nil {
		return 0, err
	}
	return order.Uint32(b), nil
}

func (c *Cursor) ReadU64(order binary.ByteOrder) (uint64, error) {
	b, err := c.ReadExact(8)
	if err != nil {
		return 0, err
	}
	return order.Uint64(b), nil
}

func (c *Cursor) ReadI16(order binary.ByteOrder) (int16, error) {
	v, err := c.ReadU16(order)
	return int16(v), err
}

func (c *Cursor) ReadI32(order binary.ByteOrder) (int32, error) {
	v, err := c.ReadU32(order)
	return int32(v), err
}

// ReadU24 reads a 3-byte unsigned integer (used by WebP's VP8X
// dimension fields) in either byte order.
func (c *Cursor) ReadU24(order binary.ByteOrder) (uint32, error) {
	b, err := c.ReadExact(3)
	if err != nil {
		return 0, err
	}
	if order == binary.BigEndian {
		return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]), nil
	}
	return uint32(b[2])<<16 | uint32(b[1])<<8 | uint32(b[0]), nil
}

// ReadTag reads n raw bytes and returns them as a string, bounded by
// the same read budget as every other primitive. Used for FourCC-style
// ASCII tags (box types, chunk types, signatures).
func (c *Cursor) ReadTag(n int) (string, error) {
	b, err := c.ReadExact(n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
