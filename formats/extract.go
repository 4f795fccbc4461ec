package formats

import (
	"io"

	"github.com/pkg/errors"
)

// parser maps a positioned Cursor to the dimensions its format's
// header encodes, or a parse error.
type parser func(c *Cursor) (*Result, error)

var parserTable = map[Format]parser{
	FormatAVIF: func(c *Cursor) (*Result, error) { return parseISOBMFF(c, FormatAVIF) },
	FormatBMP:  parseBMP,
	FormatDDS:  parseDDS,
	FormatDIB:  parseDIB,
	FormatGIF:  parseGIF,
	FormatHEIC: func(c *Cursor) (*Result, error) { return parseISOBMFF(c, FormatHEIC) },
	FormatHEIF: func(c *Cursor) (*Result, error) { return parseISOBMFF(c, FormatHEIF) },
	FormatICO:  parseICO,
	FormatJPEG: parseJPEG,
	FormatJP2:  parseJP2,
	FormatEXR:  parseEXR,
	FormatPCX:  parsePCX,
	FormatPNG:  parsePNG,
	FormatPSD:  parsePSD,
	FormatQOI:  parseQOI,
	FormatTGA:  parseTGA,
	FormatTIFF: parseTIFF,
	FormatVTF:  parseVTF,
	FormatWEBP: parseWEBP,
	FormatXCF:  parseXCF,
}

// Parse runs detection followed by the matched parser over a single
// seekable source and returns the packaged (width, height, format)
// triple. It is the sole entry point the façade calls into.
func Parse(r io.ReadSeeker) (*Result, error) {
	c, err := NewCursor(r)
	if err != nil {
		return nil, err
	}

	format, err := Detect(c)
	if err != nil {
		return nil, errors.Wrap(err, "detecting format")
	}
	if format == FormatUnknown {
		return nil, ErrUnsupportedFormat
	}

	return Extract(format, c)
}

// Extract invokes the parser registered for format, normalizing any
// lower-level I/O failure into a ParseError tagged with that format.
func Extract(format Format, c *Cursor) (*Result, error) {
	p, ok := parserTable[format]
	if !ok {
		return nil, ErrUnsupportedFormat
	}
	if err := c.SeekAbs(0); err != nil {
		return nil, newParseError(format, err)
	}

	result, err := p(c)
	if err != nil {
		return nil, newParseError(format, err)
	}
	if result.Width == 0 || result.Height == 0 {
		return nil, newParseError(format, errors.Errorf("zero dimension: %dx%d", result.Width, result.Height))
	}
	return result, nil
}
