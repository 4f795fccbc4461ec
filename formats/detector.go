package formats

import (
	"bytes"
	"encoding/binary"
)

var (
	pngSignature  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	qoiSignature  = []byte("qoif")
	psdSignature  = []byte("8BPS")
	xcfSignature  = []byte("gimp xcf ")
	exrSignature  = []byte{0x76, 0x2F, 0x31, 0x01}
	vtfSignature  = []byte("VTF\x00")
	ddsSignature  = []byte("DDS ")
	jp2Signature  = []byte{0x00, 0x00, 0x00, 0x0C, 0x6A, 0x50, 0x20, 0x20, 0x0D, 0x0A, 0x87, 0x0A}
	jp2Codestream = []byte{0xFF, 0x4F, 0xFF, 0x51}
	icoSignature  = []byte{0x00, 0x00, 0x01, 0x00}
	tgaFooter     = []byte("TRUEVISION-XFILE.\x00")
	tiffLE        = []byte{0x49, 0x49, 0x2A, 0x00}
	tiffBE        = []byte{0x4D, 0x4D, 0x00, 0x2A}
)

var isobmffBrandTable = map[string]Format{
	"avif": FormatAVIF,
	"avis": FormatAVIF,
	"heic": FormatHEIC,
	"heix": FormatHEIC,
	"heim": FormatHEIC,
	"heis": FormatHEIC,
	"mif1": FormatHEIF,
	"msf1": FormatHEIF,
	"heif": FormatHEIF,
}

var dibHeaderSizes = map[uint32]bool{
	12: true, 40: true, 52: true, 56: true, 64: true, 108: true, 124: true,
}

var pcxEncodings = map[byte]bool{0: true, 2: true, 3: true, 4: true, 5: true}

// Detect classifies a seekable source into a Format using the fixed
// priority order of signature tests below. Overlapping prefixes (the
// ISO-BMFF family, TIFF vs. raw bitmap headers) are resolved by trying
// the strongest, most specific magic first and falling back to the
// weakest, prefixless heuristics (TGA, DIB) last.
func Detect(c *Cursor) (Format, error) {
	prefix, err := c.PeekPrefix(32)
	if err != nil {
		return FormatUnknown, err
	}

	if bytes.HasPrefix(prefix, pngSignature) {
		return FormatPNG, nil
	}
	if bytes.HasPrefix(prefix, qoiSignature) {
		return FormatQOI, nil
	}
	if len(prefix) >= 6 && string(prefix[0:3]) == "GIF" &&
		(prefix[3] == '8') && (prefix[4] == '7' || prefix[4] == '9') && prefix[5] == 'a' {
		return FormatGIF, nil
	}
	if len(prefix) >= 2 && prefix[0] == 'B' && prefix[1] == 'M' {
		return FormatBMP, nil
	}
	if bytes.HasPrefix(prefix, psdSignature) {
		return FormatPSD, nil
	}
	if bytes.HasPrefix(prefix, xcfSignature) {
		return FormatXCF, nil
	}
	if bytes.HasPrefix(prefix, exrSignature) {
		return FormatEXR, nil
	}
	if bytes.HasPrefix(prefix, vtfSignature) {
		return FormatVTF, nil
	}
	if bytes.HasPrefix(prefix, ddsSignature) {
		return FormatDDS, nil
	}
	if len(prefix) >= 8 && string(prefix[4:8]) == "ftyp" {
		return detectISOBMFF(c)
	}
	if len(prefix) >= 12 && string(prefix[0:4]) == "RIFF" && string(prefix[8:12]) == "WEBP" {
		return FormatWEBP, nil
	}
	if len(prefix) >= 3 && prefix[0] == 0xFF && prefix[1] == 0xD8 && prefix[2] == 0xFF {
		return FormatJPEG, nil
	}
	if bytes.HasPrefix(prefix, jp2Signature) || bytes.HasPrefix(prefix, jp2Codestream) {
		return FormatJP2, nil
	}
	if bytes.HasPrefix(prefix, tiffLE) || bytes.HasPrefix(prefix, tiffBE) {
		return FormatTIFF, nil
	}
	if len(prefix) >= 3 && prefix[0] == 0x0A &&
		pcxEncodings[prefix[2]] && prefix[1] <= 5 {
		return FormatPCX, nil
	}
	if bytes.HasPrefix(prefix, icoSignature) {
		return FormatICO, nil
	}
	if isTGA, err := probeTGAFooter(c); err != nil {
		return FormatUnknown, err
	} else if isTGA {
		return FormatTGA, nil
	}
	if len(prefix) >= 4 {
		headerSize := binary.LittleEndian.Uint32(prefix[0:4])
		if dibHeaderSizes[headerSize] {
			return FormatDIB, nil
		}
	}
	return FormatUnknown, nil
}

// detectISOBMFF classifies the ISO-BMFF derivatives that share a
// `ftyp` box at offset 4: AVIF, HEIC, and HEIF. It reads the major
// brand and then the compatible-brands list out to the end of the
// ftyp box, since some encoders only advertise the real brand there.
func detectISOBMFF(c *Cursor) (Format, error) {
	if err := c.SeekAbs(0); err != nil {
		return FormatUnknown, err
	}
	boxLen, err := c.ReadU32(binary.BigEndian)
	if err != nil {
		return FormatUnknown, err
	}
	if err := c.SeekRel(4); err != nil { // skip over the "ftyp" tag we already matched
		return FormatUnknown, err
	}
	if boxLen < 16 || int64(boxLen) > c.Size() {
		return FormatUnknown, nil
	}

	majorBrand, err := c.ReadTag(4)
	if err != nil {
		return FormatUnknown, err
	}
	if f, ok := isobmffBrandTable[majorBrand]; ok {
		return f, nil
	}

	if err := c.SeekRel(4); err != nil { // skip minor version
		return FormatUnknown, err
	}
	remaining := int64(boxLen) - 16
	for remaining >= 4 {
		if err := c.Step(); err != nil {
			return FormatUnknown, err
		}
		brand, err := c.ReadTag(4)
		if err != nil {
			return FormatUnknown, err
		}
		if f, ok := isobmffBrandTable[brand]; ok {
			return f, nil
		}
		remaining -= 4
	}
	return FormatUnknown, nil
}

// probeTGAFooter looks for the optional TGA v2 footer signature in the
// last 18 bytes of the source. TGA carries no leading magic, so this
// is the only reliable (if heuristic) test available.
func probeTGAFooter(c *Cursor) (bool, error) {
	if c.Size() < 18 {
		return false, nil
	}
	if err := c.SeekFromEnd(-18); err != nil {
		return false, err
	}
	footer, err := c.ReadExact(18)
	if err != nil {
		return false, err
	}
	return bytes.Equal(footer, tgaFooter), nil
}
