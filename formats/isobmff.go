package formats

import "encoding/binary"

// parseISOBMFF resolves the shared AVIF/HEIC/HEIF box tree:
// meta > iprp > ipco > ispe. It reports the first ImageSpatialExtents
// property encountered rather than resolving the primary item through
// pitm/ipma association.
func parseISOBMFF(c *Cursor, format Format) (*Result, error) {
	end := c.Size()

	meta, err := findChildBox(c, 0, end, "meta")
	if err != nil {
		return nil, err
	}
	metaContentStart := meta.dataStart + 4 // meta is a full box: skip version+flags

	iprp, err := findChildBox(c, metaContentStart, meta.end, "iprp")
	if err != nil {
		return nil, err
	}
	ipco, err := findChildBox(c, iprp.dataStart, iprp.end, "ipco")
	if err != nil {
		return nil, err
	}
	ispe, err := findChildBox(c, ipco.dataStart, ipco.end, "ispe")
	if err != nil {
		return nil, err
	}

	if err := c.SeekAbs(ispe.dataStart + 4); err != nil { // ispe is a full box too
		return nil, err
	}
	width, err := c.ReadU32(binary.BigEndian)
	if err != nil {
		return nil, err
	}
	height, err := c.ReadU32(binary.BigEndian)
	if err != nil {
		return nil, err
	}

	result := newResult(format)
	result.Width = width
	result.Height = height
	return result, nil
}
