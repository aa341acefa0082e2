package pixel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tables := []struct {
		identifier string
		format     Format
	}{
		{"rgb565", RGB565},
		{"bgr565", BGR565},
		{"argb8888", ARGB8888},
		{"rgba8888", RGBA8888},
		{"rgb888", RGB888},
		{"bgr888", BGR888},
	}

	for _, table := range tables {
		t.Run(table.identifier, func(t *testing.T) {
			f, err := Lookup(table.identifier)
			require.NoError(t, err)
			assert.Equal(t, table.format, f)
			assert.Equal(t, table.identifier, f.String())
		})
	}
}

func TestLookupUnsupported(t *testing.T) {
	for _, identifier := range []string{"", "rgb", "RGB565", "yuv422", "rgb565 "} {
		_, err := Lookup(identifier)
		assert.ErrorIs(t, err, ErrUnsupported)
	}
}

func TestIdentifiers(t *testing.T) {
	assert.Equal(t, []string{"argb8888", "bgr565", "bgr888", "rgb565", "rgb888", "rgba8888"}, Identifiers())
}

func TestBytesPerPixel(t *testing.T) {
	tables := []struct {
		format Format
		bpp    int
	}{
		{RGB565, 2},
		{BGR565, 2},
		{ARGB8888, 4},
		{RGBA8888, 4},
		{RGB888, 3},
		{BGR888, 3},
	}

	for _, table := range tables {
		assert.Equal(t, table.bpp, table.format.BytesPerPixel(), table.format.String())
	}
}

func TestConstant(t *testing.T) {
	assert.Equal(t, "VG_LITE_BGR565", BGR565.Constant())
	assert.Equal(t, "VG_LITE_RGBA8888", RGBA8888.Constant())
}
