/*
Package header renders encoded pixel data as a C header file.

The generated header is self-describing: alongside the pixel array it
defines width, height, stride, format and size macros derived from the
image name, so the artifact can be dropped into a VGLite-style build
without any companion file. The text layout is a fixed contract; in
particular the array body wraps at the image stride so each source line
corresponds to one scanline.
*/
package header

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/shriram-m/image-to-c-array/pixel"
)

const (
	indent  = "    "
	byteSep = ", "
	rowSep  = ",\n"
	hexByte = "0x%02X"

	// macroColumn is the width of the macro name field after the prefix,
	// keeping the value column aligned across all generated defines.
	macroColumn = 23

	// defaultAlign is the byte alignment applied to the pixel array unless
	// the including code defines the attribute macro first.
	defaultAlign = 128
)

// Image is one encoded image ready to be rendered as a header.
type Image struct {
	Source string // original filename, recorded in the leading comment
	Name   string // raw symbol name; sanitized into the macro prefix and array name
	Format pixel.Format
	Width  int
	Height int
	Pix    []byte // encoded pixel data, Width*Height*BytesPerPixel bytes
}

// Encode writes img to w as a C header file.
func Encode(w io.Writer, img *Image) error {
	if img.Width <= 0 || img.Height <= 0 {
		return errors.New("header: image has no pixels")
	}

	stride := img.Width * img.Format.BytesPerPixel()
	if len(img.Pix) != stride*img.Height {
		return fmt.Errorf("header: pixel data is %d bytes, want %d", len(img.Pix), stride*img.Height)
	}

	prefix := MacroPrefix(img.Name)
	array := ArrayName(img.Name)

	// bufio.Writer latches the first write error and reports it from the
	// final Flush, so intermediate errors need no individual checks.
	b := bufio.NewWriter(w)

	fmt.Fprintf(b, "/*\n * Auto-generated C header file for image: %s\n", img.Source)
	fmt.Fprintf(b, " * Format: %s\n", img.Format.Description())
	fmt.Fprintf(b, " * Dimensions: %dx%d pixels\n", img.Width, img.Height)
	fmt.Fprintf(b, " * Generated by img2c\n */\n\n")

	fmt.Fprintf(b, "#ifndef %s_IMG\n#define %s_IMG\n\n", prefix, prefix)

	fmt.Fprintf(b, "#ifndef %s_IMG_ATTRIBUTE\n", prefix)
	define(b, prefix, "_IMG_ATTRIBUTE", fmt.Sprintf("__attribute__((aligned(%d)))", defaultAlign))
	fmt.Fprintf(b, "#endif /* %s_IMG_ATTRIBUTE */\n\n", prefix)

	define(b, prefix, "_IMG_WIDTH", fmt.Sprintf("(%d)", img.Width))
	define(b, prefix, "_IMG_HEIGHT", fmt.Sprintf("(%d)", img.Height))
	define(b, prefix, "_IMG_BYTES_PER_PIXEL", fmt.Sprintf("(%d)", img.Format.BytesPerPixel()))
	define(b, prefix, "_IMG_STRIDE", fmt.Sprintf("(%s_IMG_WIDTH * %s_IMG_BYTES_PER_PIXEL)", prefix, prefix))
	define(b, prefix, "_IMG_FORMAT", fmt.Sprintf("(%s)", img.Format.Constant()))
	define(b, prefix, "_IMG_PIXEL_DATA", fmt.Sprintf("((unsigned char*) %s_img_map)", array))
	define(b, prefix, "_IMG_PIXEL_DATA_SIZE", fmt.Sprintf("(%s_IMG_WIDTH * %s_IMG_HEIGHT * %s_IMG_BYTES_PER_PIXEL)", prefix, prefix, prefix))

	fmt.Fprintf(b, "\nconst %s_IMG_ATTRIBUTE uint8_t %s_img_map[] =\n{\n", prefix, array)

	for o := 0; o < len(img.Pix); o += stride {
		if o > 0 {
			b.WriteString(rowSep)
		}
		row(b, img.Pix[o:o+stride])
	}

	fmt.Fprintf(b, "\n};\n\n#endif /* %s_IMG */\n", prefix)

	return b.Flush()
}

func define(b *bufio.Writer, prefix, name, value string) {
	fmt.Fprintf(b, "#define %s%-*s%s\n", prefix, macroColumn, name, value)
}

func row(b *bufio.Writer, data []byte) {
	b.WriteString(indent)
	for i, v := range data {
		if i > 0 {
			b.WriteString(byteSep)
		}
		fmt.Fprintf(b, hexByte, v)
	}
}
