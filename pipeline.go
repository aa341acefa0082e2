package img2c

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/shriram-m/image-to-c-array/pixel"
)

const numWorkers = 4

// imageExts lists the input extensions the batch walker picks up. Decoding
// is still format-sniffed; this only filters the walk.
var imageExts = map[string]struct{}{
	".bmp":  {},
	".gif":  {},
	".jpeg": {},
	".jpg":  {},
	".png":  {},
	".tif":  {},
	".tiff": {},
	".webp": {},
}

func (c *Converter) findImages(ctx context.Context, base string) (<-chan string, <-chan error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up
			// fighting with things like Spotlight, etc.
			if info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !info.Mode().IsRegular() {
				return nil
			}

			if _, ok := imageExts[strings.ToLower(filepath.Ext(file))]; !ok {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc
}

// batchOutputPath mirrors the input's location relative to base under
// outDir, with the extension replaced by ".h". An empty outDir puts the
// header next to its input.
func batchOutputPath(base, outDir, input string) (string, error) {
	if outDir == "" {
		return OutputPath(input), nil
	}

	rel, err := filepath.Rel(base, input)
	if err != nil {
		return "", err
	}

	output := filepath.Join(outDir, OutputPath(rel))
	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return "", err
	}
	return output, nil
}

func (c *Converter) imageWorker(base, outDir string, f pixel.Format, in <-chan string) <-chan error {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			output, err := batchOutputPath(base, outDir, file)
			if err != nil {
				errc <- err
				return
			}

			crc := ""
			if c.cache != nil {
				if crc, err = crcFile(file); err != nil {
					errc <- err
					return
				}

				cached, err := c.cache.FindCRC(file, f.String())
				if err != nil {
					errc <- err
					return
				}

				if cached == crc {
					if _, err := os.Stat(output); err == nil {
						c.logger.Debugf("skipping \"%s\", unchanged", file)
						continue
					}
				}
			}

			if _, err := c.Convert(file, output, f); err != nil {
				errc <- err
				return
			}

			if c.cache != nil {
				if err := c.cache.Store(file, f.String(), crc); err != nil {
					errc <- err
					return
				}
			}
		}
	}()
	return errc
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Batch converts every image under path to format f. Conversions run on a
// small worker pool; each file owns its own pixel data so the workers need
// no coordination beyond the input channel.
func (c *Converter) Batch(path, outDir string, f pixel.Format) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc := c.findImages(ctx, dir)
	errcList = append(errcList, errc)

	for i := 0; i < numWorkers; i++ {
		errcList = append(errcList, c.imageWorker(dir, outDir, f, files))
	}

	return waitForPipeline(errcList...)
}
