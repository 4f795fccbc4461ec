package formats

// parseBMP skips the 14-byte BITMAPFILEHEADER and delegates to the DIB
// header parser positioned right after it.
func parseBMP(c *Cursor) (*Result, error) {
	if err := c.SeekAbs(14); err != nil {
		return nil, err
	}
	result, err := decodeDIB(c)
	if err != nil {
		return nil, err
	}
	result.Format = FormatBMP
	return result, nil
}
