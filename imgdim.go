// Package imgdim extracts pixel width, height, and container format
// from an image's header bytes without decoding the image itself. It
// recognizes AVIF, BMP, DDS, DIB, GIF, HEIC, HEIF, ICO, JPEG, JP2, EXR,
// PCX, PNG, PSD, QOI, TGA, TIFF, VTF, WEBP, and XCF.
package imgdim

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"

	"imgdim/formats"
)

// GetImageSize inspects source, which must be a file path (string), an
// in-memory buffer ([]byte), or an io.ReadSeeker, and returns its
// dimensions and format. It does not decode pixel data, and reads at
// most a bounded prefix of the stream to do its work.
func GetImageSize(source interface{}) (*ImageInfo, error) {
	switch v := source.(type) {
	case string:
		return GetImageSizeFromPath(v)
	case []byte:
		return GetImageSizeFromBuffer(v)
	case io.ReadSeeker:
		return GetImageSizeFromReader(v)
	default:
		return nil, errors.Errorf("imgdim: unsupported source type %T", source)
	}
}

// GetImageSizeFromPath opens path and extracts its dimensions.
func GetImageSizeFromPath(path string) (*ImageInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "imgdim: opening source")
	}
	defer f.Close()

	return GetImageSizeFromReader(f)
}

// GetImageSizeFromBuffer extracts dimensions from an in-memory image.
func GetImageSizeFromBuffer(data []byte) (*ImageInfo, error) {
	return GetImageSizeFromReader(bytes.NewReader(data))
}

// GetImageSizeFromReader extracts dimensions from any seekable stream.
// The returned error is ErrUnsupportedFormat if no signature matched,
// or a *ParseError if the format was identified but its header could
// not be decoded.
func GetImageSizeFromReader(r io.ReadSeeker) (*ImageInfo, error) {
	result, err := formats.Parse(r)
	if err != nil {
		return nil, err
	}
	return fromResult(result), nil
}
