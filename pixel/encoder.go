package pixel

import (
	"errors"
	"image"
)

// ErrBounds is returned when an image has no pixels to encode.
var ErrBounds = errors.New("pixel: image has empty bounds")

// Encode converts m to a flat byte sequence in the given format. Pixels are
// emitted in row-major order, top row first, leftmost pixel first, so the
// result is exactly Dx*Dy*BytesPerPixel bytes.
func Encode(m *image.NRGBA, f Format) ([]byte, error) {
	if !f.valid() {
		return nil, ErrUnsupported
	}

	b := m.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, ErrBounds
	}

	// Select the per-pixel strategy once; the hot loop below never
	// consults the format again.
	d := descriptors[f]

	out := make([]byte, w*h*d.bytesPerPixel)
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		o := m.PixOffset(b.Min.X, y)
		row := m.Pix[o : o+w*4]
		for x := 0; x < w*4; x += 4 {
			d.put(out[i:], row[x], row[x+1], row[x+2], row[x+3])
			i += d.bytesPerPixel
		}
	}

	return out, nil
}

// pack565 packs three channels into a 16-bit 5-6-5 word. Channels are
// truncated, not rounded: 5-bit fields keep the top five bits of the
// incoming 8-bit value and the 6-bit field keeps the top six.
func pack565(hi, mid, lo uint8) uint16 {
	return (uint16(hi>>3)&0x1f)<<11 | (uint16(mid>>2)&0x3f)<<5 | (uint16(lo>>3) & 0x1f)
}

// The 565 formats store the packed word little-endian, low byte first.

func putRGB565(dst []byte, r, g, b, _ uint8) {
	v := pack565(r, g, b)
	dst[0] = byte(v)
	dst[1] = byte(v >> 8)
}

func putBGR565(dst []byte, r, g, b, _ uint8) {
	v := pack565(b, g, r)
	dst[0] = byte(v)
	dst[1] = byte(v >> 8)
}

func putARGB8888(dst []byte, r, g, b, a uint8) {
	dst[0], dst[1], dst[2], dst[3] = a, r, g, b
}

func putRGBA8888(dst []byte, r, g, b, a uint8) {
	dst[0], dst[1], dst[2], dst[3] = r, g, b, a
}

func putRGB888(dst []byte, r, g, b, _ uint8) {
	dst[0], dst[1], dst[2] = r, g, b
}

func putBGR888(dst []byte, r, g, b, _ uint8) {
	dst[0], dst[1], dst[2] = b, g, r
}
