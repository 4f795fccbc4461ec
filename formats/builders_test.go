package formats

import "encoding/binary"

// Builders construct minimal, byte-accurate headers for each format's
// golden round-trip case. Each returns the smallest stream Detect and
// the matching parser need; padding fields irrelevant to dimension
// extraction are left zeroed rather than populated realistically.

func be32(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

func le32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func be16(v uint16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, v)
	return b
}

func le16(v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return b
}

func le24(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16)}
}

// isobmffBox wraps payload in a standard 4-byte-length + 4-byte-type
// box header, used by both the ISO-BMFF family and JP2's boxed form.
func isobmffBox(typ string, payload []byte) []byte {
	b := make([]byte, 0, 8+len(payload))
	b = append(b, be32(uint32(8+len(payload)))...)
	b = append(b, []byte(typ)...)
	b = append(b, payload...)
	return b
}

var goldenBuilders = map[string]func(w, h uint32) []byte{
	"png": func(w, h uint32) []byte {
		buf := append([]byte{}, pngSignature...)
		buf = append(buf, be32(13)...) // IHDR chunk length, unread
		buf = append(buf, []byte("IHDR")...)
		buf = append(buf, be32(w)...)
		buf = append(buf, be32(h)...)
		buf = append(buf, 0, 8, 2, 0, 0) // depth, color type, compression, filter, interlace
		return buf
	},
	"gif": func(w, h uint32) []byte {
		buf := append([]byte{}, []byte("GIF89a")...)
		buf = append(buf, le16(uint16(w))...)
		buf = append(buf, le16(uint16(h))...)
		buf = append(buf, 0, 0, 0) // packed fields, bg color index, aspect ratio
		return buf
	},
	"bmpBottomUp": func(w, h uint32) []byte {
		return buildBMP(int32(w), int32(h))
	},
	"bmpTopDown": func(w, h uint32) []byte {
		return buildBMP(int32(w), -int32(h))
	},
	"dibCore": func(w, h uint32) []byte {
		buf := le32(12)
		buf = append(buf, le16(uint16(w))...)
		buf = append(buf, le16(uint16(h))...)
		buf = append(buf, 1, 0, 8, 0) // planes, bit count
		return buf
	},
	"jpegBaseline": func(w, h uint32) []byte {
		buf := []byte{0xFF, 0xD8, 0xFF, 0xC0}
		buf = append(buf, be16(17)...) // segment length
		buf = append(buf, 8)           // precision
		buf = append(buf, be16(uint16(h))...)
		buf = append(buf, be16(uint16(w))...)
		buf = append(buf, 3) // component count
		buf = append(buf, 1, 0x22, 0, 2, 0x11, 1, 3, 0x11, 1)
		return buf
	},
	"webpVP8X": func(w, h uint32) []byte {
		buf := append([]byte{}, []byte("RIFF")...)
		buf = append(buf, le32(0)...) // file size, unread
		buf = append(buf, []byte("WEBP")...)
		buf = append(buf, []byte("VP8X")...)
		buf = append(buf, be32(10)...) // chunk size, unread
		buf = append(buf, 0, 0, 0, 0)  // flags + reserved
		buf = append(buf, le24(w-1)...)
		buf = append(buf, le24(h-1)...)
		return buf
	},
	"webpVP8": func(w, h uint32) []byte {
		buf := append([]byte{}, []byte("RIFF")...)
		buf = append(buf, le32(0)...)
		buf = append(buf, []byte("WEBP")...)
		buf = append(buf, []byte("VP8 ")...)
		buf = append(buf, be32(10)...) // chunk size, unread
		buf = append(buf, 0, 0, 0)     // frame tag
		buf = append(buf, 0x9D, 0x01, 0x2A)
		buf = append(buf, le16(uint16(w)&0x3FFF)...)
		buf = append(buf, le16(uint16(h)&0x3FFF)...)
		return buf
	},
	"webpVP8L": func(w, h uint32) []byte {
		buf := append([]byte{}, []byte("RIFF")...)
		buf = append(buf, le32(0)...)
		buf = append(buf, []byte("WEBP")...)
		buf = append(buf, []byte("VP8L")...)
		buf = append(buf, be32(5)...) // chunk size, unread
		buf = append(buf, 0x2F)
		value := (w - 1) | ((h - 1) << 14)
		buf = append(buf, le32(value)...)
		return buf
	},
	"qoi": func(w, h uint32) []byte {
		buf := append([]byte{}, []byte("qoif")...)
		buf = append(buf, be32(w)...)
		buf = append(buf, be32(h)...)
		buf = append(buf, 4, 0) // channels, colorspace
		return buf
	},
	"tiffLE": func(w, h uint32) []byte { return buildTIFF(binary.LittleEndian, "II", w, h) },
	"tiffBE": func(w, h uint32) []byte { return buildTIFF(binary.BigEndian, "MM", w, h) },
	"pcx": func(w, h uint32) []byte {
		buf := []byte{0x0A, 5, 5, 8}
		buf = append(buf, le16(0)...)
		buf = append(buf, le16(0)...)
		buf = append(buf, le16(uint16(w-1))...)
		buf = append(buf, le16(uint16(h-1))...)
		return buf
	},
	"ico": func(w, h uint32) []byte {
		buf := []byte{0, 0, 1, 0}
		buf = append(buf, le16(1)...) // entry count
		buf = append(buf, byte(w), byte(h))
		return buf
	},
	"icoZero": func(w, h uint32) []byte {
		buf := []byte{0, 0, 1, 0}
		buf = append(buf, le16(1)...)
		buf = append(buf, 0, 0)
		return buf
	},
	"dds": func(w, h uint32) []byte {
		buf := append([]byte{}, []byte("DDS ")...)
		buf = append(buf, le32(124)...) // header size, unread
		buf = append(buf, le32(0)...)   // flags, unread
		buf = append(buf, le32(h)...)
		buf = append(buf, le32(w)...)
		return buf
	},
	"psd": func(w, h uint32) []byte {
		buf := append([]byte{}, []byte("8BPS")...)
		buf = append(buf, be16(1)...)
		buf = append(buf, make([]byte, 6)...) // reserved
		buf = append(buf, be16(3)...)         // channels
		buf = append(buf, be32(h)...)
		buf = append(buf, be32(w)...)
		return buf
	},
	"xcf": func(w, h uint32) []byte {
		buf := append([]byte{}, []byte("gimp xcf ")...)
		buf = append(buf, []byte("v011")...)
		buf = append(buf, 0)
		buf = append(buf, be32(w)...)
		buf = append(buf, be32(h)...)
		return buf
	},
	"vtf": func(w, h uint32) []byte {
		buf := append([]byte{}, []byte("VTF\x00")...)
		buf = append(buf, le32(7)...) // version major, unread
		buf = append(buf, le32(1)...) // version minor, unread
		buf = append(buf, le32(80)...) // header size, unread
		buf = append(buf, le16(uint16(w))...)
		buf = append(buf, le16(uint16(h))...)
		return buf
	},
	"exr": func(w, h uint32) []byte {
		buf := append([]byte{}, exrSignature...)
		buf = append(buf, le32(2)...) // version, unread
		buf = append(buf, []byte("dataWindow\x00")...)
		buf = append(buf, []byte("box2i\x00")...)
		buf = append(buf, le32(16)...)
		buf = append(buf, int32le(0)...)
		buf = append(buf, int32le(0)...)
		buf = append(buf, int32le(int32(w-1))...)
		buf = append(buf, int32le(int32(h-1))...)
		return buf
	},
	"avif": func(w, h uint32) []byte { return buildISOBMFF("avif", w, h) },
	"heic": func(w, h uint32) []byte { return buildISOBMFF("heic", w, h) },
	"jp2Codestream": func(w, h uint32) []byte {
		buf := []byte{0xFF, 0x4F, 0xFF, 0x51}
		buf = append(buf, be16(38)...) // segment length, unread
		buf = append(buf, be16(0)...)  // Rsiz, unread
		buf = append(buf, be32(w)...)
		buf = append(buf, be32(h)...)
		buf = append(buf, be32(0)...) // XOsiz
		buf = append(buf, be32(0)...) // YOsiz
		return buf
	},
	"jp2Boxed": func(w, h uint32) []byte {
		sigBox := isobmffBox("jP  ", []byte{0x0D, 0x0A, 0x87, 0x0A})
		ftypBox := isobmffBox("ftyp", append([]byte("jp2 "), make([]byte, 8)...))
		ihdrContent := append(be32(h), be32(w)...)
		ihdrContent = append(ihdrContent, make([]byte, 6)...) // numcomps, bpc, c, unkc, ipr
		jp2hBox := isobmffBox("jp2h", isobmffBox("ihdr", ihdrContent))
		buf := append([]byte{}, sigBox...)
		buf = append(buf, ftypBox...)
		buf = append(buf, jp2hBox...)
		return buf
	},
}

func buildBMP(width, height int32) []byte {
	buf := []byte("BM")
	buf = append(buf, le32(0)...) // file size, unread
	buf = append(buf, le32(0)...) // reserved
	buf = append(buf, le32(54)...) // pixel data offset, unread
	buf = append(buf, le32(40)...) // DIB header size
	buf = append(buf, le32Signed(width)...)
	buf = append(buf, le32Signed(height)...)
	return buf
}

func le32Signed(v int32) []byte { return le32(uint32(v)) }

func int32le(v int32) []byte { return le32(uint32(v)) }

func buildTIFF(order binary.ByteOrder, mark string, w, h uint32) []byte {
	u16 := func(v uint16) []byte {
		b := make([]byte, 2)
		order.PutUint16(b, v)
		return b
	}
	u32 := func(v uint32) []byte {
		b := make([]byte, 4)
		order.PutUint32(b, v)
		return b
	}
	entry := func(tag uint16, value uint32) []byte {
		b := u16(tag)
		b = append(b, u16(3)...) // SHORT
		b = append(b, u32(1)...) // count
		val := u16(uint16(value))
		b = append(b, val...)
		b = append(b, 0, 0) // pad value field to 4 bytes
		return b
	}

	buf := append([]byte{}, []byte(mark)...)
	buf = append(buf, u16(42)...)
	buf = append(buf, u32(8)...) // IFD offset
	buf = append(buf, u16(2)...) // entry count
	buf = append(buf, entry(tiffTagImageWidth, w)...)
	buf = append(buf, entry(tiffTagImageLength, h)...)
	return buf
}

func buildISOBMFF(majorBrand string, w, h uint32) []byte {
	ftypPayload := append([]byte(majorBrand), 0, 0, 0, 0) // minor version
	ftypBox := isobmffBox("ftyp", ftypPayload)

	ispeContent := append([]byte{0, 0, 0, 0}, be32(w)...) // full box version+flags
	ispeContent = append(ispeContent, be32(h)...)
	ispeBox := isobmffBox("ispe", ispeContent)
	ipcoBox := isobmffBox("ipco", ispeBox)
	iprpBox := isobmffBox("iprp", ipcoBox)
	metaContent := append([]byte{0, 0, 0, 0}, iprpBox...) // full box version+flags
	metaBox := isobmffBox("meta", metaContent)

	buf := append([]byte{}, ftypBox...)
	buf = append(buf, metaBox...)
	return buf
}
