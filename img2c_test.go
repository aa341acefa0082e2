package img2c

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shriram-m/image-to-c-array/pixel"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func writePNG(t *testing.T, file string, m image.Image) {
	t.Helper()

	f, err := os.Create(file)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, png.Encode(f, m))
}

func testImage() *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	m.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	m.SetNRGBA(1, 0, color.NRGBA{0, 255, 0, 128})
	return m
}

func singleColorImage() *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	m.SetNRGBA(0, 0, color.NRGBA{255, 255, 255, 255})
	return m
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "logo.h", OutputPath("logo.png"))
	assert.Equal(t, filepath.Join("a", "b.h"), OutputPath(filepath.Join("a", "b.jpeg")))
	assert.Equal(t, "noext.h", OutputPath("noext"))
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "test-logo.png")
	output := filepath.Join(dir, "test-logo.h")
	writePNG(t, input, testImage())

	c := New(nil, testLogger())
	result, err := c.Convert(input, output, pixel.RGB565)
	require.NoError(t, err)

	assert.Equal(t, output, result.Output)
	assert.Equal(t, 2, result.Width)
	assert.Equal(t, 1, result.Height)
	assert.Equal(t, 4, result.Size)
	assert.Equal(t, pixel.RGB565, result.Format)

	b, err := os.ReadFile(output)
	require.NoError(t, err)
	text := string(b)

	assert.Contains(t, text, "#ifndef TEST_LOGO_IMG")
	assert.Contains(t, text, "(VG_LITE_RGB565)")
	assert.Contains(t, text, "const TEST_LOGO_IMG_ATTRIBUTE uint8_t test_logo_img_map[] =")
	assert.Contains(t, text, "0x00, 0xF8, 0xE0, 0x07")
}

func TestConvertInputNotFound(t *testing.T) {
	c := New(nil, testLogger())
	_, err := c.Convert(filepath.Join(t.TempDir(), "missing.png"), "out.h", pixel.BGR565)
	assert.ErrorIs(t, err, ErrInputNotFound)
}

func TestConvertDecodeFailure(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "broken.png")
	require.NoError(t, os.WriteFile(input, []byte("not an image"), 0644))

	c := New(nil, testLogger())
	_, err := c.Convert(input, filepath.Join(dir, "broken.h"), pixel.BGR565)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestConvertWriteFailure(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "test-logo.png")
	writePNG(t, input, testImage())

	output := filepath.Join(dir, "no", "such", "dir", "out.h")

	c := New(nil, testLogger())
	_, err := c.Convert(input, output, pixel.BGR565)
	assert.ErrorIs(t, err, ErrWrite)

	_, err = os.Stat(output)
	assert.True(t, os.IsNotExist(err))
}

// The header records one source line per scanline, so an HxW image body has
// exactly H data lines.
func TestConvertRowPerScanline(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "tall.png")
	writePNG(t, input, image.NewNRGBA(image.Rect(0, 0, 3, 5)))

	c := New(nil, testLogger())
	result, err := c.Convert(input, filepath.Join(dir, "tall.h"), pixel.ARGB8888)
	require.NoError(t, err)
	assert.Equal(t, 3*5*4, result.Size)

	b, err := os.ReadFile(result.Output)
	require.NoError(t, err)

	lines := 0
	for _, line := range strings.Split(string(b), "\n") {
		if strings.HasPrefix(line, "    0x") {
			lines++
		}
	}
	assert.Equal(t, 5, lines)
}
