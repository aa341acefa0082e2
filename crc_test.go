package img2c

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCRCFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "check.bin")
	require.NoError(t, os.WriteFile(file, []byte("123456789"), 0644))

	crc, err := crcFile(file)
	require.NoError(t, err)
	assert.Equal(t, "CBF43926", crc)
}

func TestCRCFileMissing(t *testing.T) {
	_, err := crcFile(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
