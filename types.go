package imgdim

import "imgdim/formats"

// Format identifies which of the supported container formats a
// stream was classified as.
type Format = formats.Format

// The full set of recognized container formats. AVIF, HEIC, and HEIF
// are distinct tags derived from the same ISO-BMFF brand field; JP2
// covers both the boxed JPEG 2000 file format and the raw codestream.
const (
	FormatAVIF Format = formats.FormatAVIF
	FormatBMP  Format = formats.FormatBMP
	FormatDDS  Format = formats.FormatDDS
	FormatDIB  Format = formats.FormatDIB
	FormatGIF  Format = formats.FormatGIF
	FormatHEIC Format = formats.FormatHEIC
	FormatHEIF Format = formats.FormatHEIF
	FormatICO  Format = formats.FormatICO
	FormatJPEG Format = formats.FormatJPEG
	FormatJP2  Format = formats.FormatJP2
	FormatEXR  Format = formats.FormatEXR
	FormatPCX  Format = formats.FormatPCX
	FormatPNG  Format = formats.FormatPNG
	FormatPSD  Format = formats.FormatPSD
	FormatQOI  Format = formats.FormatQOI
	FormatTGA  Format = formats.FormatTGA
	FormatTIFF Format = formats.FormatTIFF
	FormatVTF  Format = formats.FormatVTF
	FormatWEBP Format = formats.FormatWEBP
	FormatXCF  Format = formats.FormatXCF
)

// ImageInfo is the (width, height, format) triple returned for every
// successfully parsed image. Width and Height are reported in pixels
// and always fit in a 32-bit unsigned range.
type ImageInfo struct {
	Width  uint32
	Height uint32
	Format Format
}

func fromResult(r *formats.Result) *ImageInfo {
	return &ImageInfo{Width: r.Width, Height: r.Height, Format: r.Format}
}
