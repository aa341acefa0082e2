package img2c

import (
	"fmt"
	"hash/crc32"
	"io"
	"os"
)

// crcFile returns the CRC-32 (IEEE) of the file contents as an 8-character
// uppercase hex string, the key used by the conversion cache.
func crcFile(file string) (string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := crc32.NewIEEE()
	if _, err = io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%.*X", crc32.Size<<1, h.Sum(nil)), nil
}
