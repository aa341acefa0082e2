package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	_ "golang.org/x/image/webp"

	img2c "github.com/shriram-m/image-to-c-array"
	"github.com/shriram-m/image-to-c-array/pixel"
)

const defaultDB = "img2c.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func lookupFormat(c *cli.Context) (pixel.Format, error) {
	f, err := pixel.Lookup(c.String("format"))
	if err != nil {
		return 0, fmt.Errorf("%v: %q (supported: %s)", err, c.String("format"), strings.Join(pixel.Identifiers(), ", "))
	}
	return f, nil
}

func printSummary(input string, r *img2c.Result) {
	fmt.Printf("✓ Successfully converted '%s' to '%s'\n", input, r.Output)
	fmt.Printf("  Format: %s\n", r.Format.Description())
	fmt.Printf("  Dimensions: %dx%d\n", r.Width, r.Height)
	fmt.Printf("  Bytes per pixel: %d\n", r.Format.BytesPerPixel())
	fmt.Printf("  Total data size: %d bytes\n", r.Size)
}

func fail(err error) error {
	return cli.Exit(fmt.Sprintf("✗ Error: %v", err), 1)
}

func main() {
	app := cli.NewApp()

	app.Name = "img2c"
	app.Usage = "Convert images to C header files with pixel data arrays"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	formatFlag := func() cli.Flag {
		return &cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   "bgr565",
			Usage:   "output pixel format: " + strings.Join(pixel.Identifiers(), ", "),
		}
	}

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "convert",
			Usage:     "Convert a single image to a C header file",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				formatFlag(),
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "output header path (default: input with .h extension)",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				f, err := lookupFormat(c)
				if err != nil {
					return fail(err)
				}

				input := c.Args().First()
				output := c.String("output")
				if output == "" {
					output = img2c.OutputPath(input)
				}

				conv := img2c.New(nil, newLogger(c))
				result, err := conv.Convert(input, output, f)
				if err != nil {
					return fail(err)
				}

				printSummary(input, result)
				return nil
			},
		},
		{
			Name:      "batch",
			Usage:     "Convert every image under a directory",
			ArgsUsage: "DIRECTORY",
			Flags: []cli.Flag{
				formatFlag(),
				&cli.StringFlag{
					Name:    "output-dir",
					Aliases: []string{"o"},
					Usage:   "mirror headers under this directory instead of next to each input",
				},
				&cli.StringFlag{
					Name:  "db",
					Value: filepath.Join(cwd, defaultDB),
					Usage: "path to the conversion cache (empty disables it)",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				f, err := lookupFormat(c)
				if err != nil {
					return fail(err)
				}

				var cache *img2c.Cache
				if file := c.String("db"); file != "" {
					if cache, err = img2c.OpenCache(file); err != nil {
						return fail(err)
					}
					defer cache.Close()
				}

				conv := img2c.New(cache, newLogger(c))
				if err := conv.Batch(c.Args().First(), c.String("output-dir"), f); err != nil {
					return fail(err)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
