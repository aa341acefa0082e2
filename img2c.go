/*
Package img2c converts decoded raster images into C header files containing
the pixel data as a static byte array, in one of a closed set of embedded
pixel formats.
*/
package img2c

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"

	"github.com/shriram-m/image-to-c-array/header"
	"github.com/shriram-m/image-to-c-array/pixel"
)

// Conversion failures, one per failure mode. Each is terminal for the
// conversion that hit it; nothing is retried.
var (
	ErrInputNotFound = errors.New("input file not found")
	ErrDecode        = errors.New("cannot decode image")
	ErrWrite         = errors.New("cannot write header")
)

// Converter turns image files into C header files. The zero value is not
// usable; construct one with New.
type Converter struct {
	cache  *Cache
	logger *logrus.Logger
}

// New returns a Converter. cache may be nil, in which case batch
// conversions never skip unchanged inputs.
func New(cache *Cache, logger *logrus.Logger) *Converter {
	return &Converter{
		cache:  cache,
		logger: logger,
	}
}

// Result summarizes one completed conversion.
type Result struct {
	Output string
	Format pixel.Format
	Width  int
	Height int
	Size   int // total pixel data bytes
}

// OutputPath derives the default header path for an input image: the same
// path with the extension replaced by ".h".
func OutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".h"
}

// Convert reads the image at input, encodes it in format f and writes a C
// header file to output. Either a complete header is written or none: on a
// failed write the output file is removed.
func (c *Converter) Convert(input, output string, f pixel.Format) (*Result, error) {
	if info, err := os.Stat(input); err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, input)
	}

	m, err := imaging.Open(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, input, err)
	}

	// Clone always yields an 8-bit NRGBA grid regardless of the decoded
	// color model, which is exactly what the encoder consumes.
	grid := imaging.Clone(m)

	data, err := pixel.Encode(grid, f)
	if err != nil {
		return nil, err
	}

	base := filepath.Base(input)
	img := &header.Image{
		Source: base,
		Name:   strings.TrimSuffix(base, filepath.Ext(base)),
		Format: f,
		Width:  grid.Rect.Dx(),
		Height: grid.Rect.Dy(),
		Pix:    data,
	}

	// Render fully in memory first so a rendering problem can never leave
	// a truncated artifact behind.
	var buf bytes.Buffer
	if err := header.Encode(&buf, img); err != nil {
		return nil, err
	}

	if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
		os.Remove(output)
		return nil, fmt.Errorf("%w: %s: %v", ErrWrite, output, err)
	}

	c.logger.WithFields(logrus.Fields{
		"input":  input,
		"output": output,
		"format": f.String(),
	}).Debug("converted")

	return &Result{
		Output: output,
		Format: f,
		Width:  img.Width,
		Height: img.Height,
		Size:   len(data),
	}, nil
}
