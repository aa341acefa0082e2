/*
Package pixel implements the pixel format registry and encoder.

An image is encoded as a flat byte sequence in one of a closed set of
formats used by VGLite and similar embedded graphics libraries. The 16-bit
565 formats are packed with truncating shifts and stored little-endian, low
byte first; the 24- and 32-bit formats store one byte per channel in the
order the format name spells out.
*/
package pixel

import (
	"errors"
	"sort"
)

// Format identifies one of the supported pixel formats.
type Format int

const (
	RGB565 Format = iota
	BGR565
	ARGB8888
	RGBA8888
	RGB888
	BGR888
)

// ErrUnsupported is returned when a format identifier is outside the
// supported set.
var ErrUnsupported = errors.New("pixel: unsupported format")

type descriptor struct {
	identifier    string
	bytesPerPixel int
	constant      string
	description   string
	put           func(dst []byte, r, g, b, a uint8)
}

var descriptors = [...]descriptor{
	RGB565:   {"rgb565", 2, "VG_LITE_RGB565", "RGB565 (16-bit, 5-6-5)", putRGB565},
	BGR565:   {"bgr565", 2, "VG_LITE_BGR565", "BGR565 (16-bit, 5-6-5)", putBGR565},
	ARGB8888: {"argb8888", 4, "VG_LITE_ARGB8888", "ARGB8888 (32-bit, 8-8-8-8)", putARGB8888},
	RGBA8888: {"rgba8888", 4, "VG_LITE_RGBA8888", "RGBA8888 (32-bit, 8-8-8-8)", putRGBA8888},
	RGB888:   {"rgb888", 3, "VG_LITE_RGB888", "RGB888 (24-bit, 8-8-8)", putRGB888},
	BGR888:   {"bgr888", 3, "VG_LITE_BGR888", "BGR888 (24-bit, 8-8-8)", putBGR888},
}

// Lookup maps a format identifier such as "bgr565" to its Format. It
// returns ErrUnsupported for any identifier outside the supported set.
func Lookup(identifier string) (Format, error) {
	for f, d := range descriptors {
		if d.identifier == identifier {
			return Format(f), nil
		}
	}
	return 0, ErrUnsupported
}

// Identifiers returns the supported format identifiers in sorted order.
func Identifiers() []string {
	ids := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		ids = append(ids, d.identifier)
	}
	sort.Strings(ids)
	return ids
}

func (f Format) valid() bool {
	return f >= 0 && int(f) < len(descriptors)
}

// String returns the format identifier.
func (f Format) String() string {
	if !f.valid() {
		return "unknown"
	}
	return descriptors[f].identifier
}

// BytesPerPixel returns the encoded size of one pixel.
func (f Format) BytesPerPixel() int {
	return descriptors[f].bytesPerPixel
}

// Constant returns the symbolic format constant used in generated headers.
func (f Format) Constant() string {
	return descriptors[f].constant
}

// Description returns the human-readable format description.
func (f Format) Description() string {
	return descriptors[f].description
}
