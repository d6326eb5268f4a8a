package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/bodgit/bif"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newConverter(c *cli.Context) *bif.Converter {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	conv := bif.New(logger)
	conv.Overwrite = c.Bool("force")
	conv.Strict = c.Bool("strict")
	conv.MaxColors = c.Int("colors")
	conv.Workers = c.Int("workers")

	return conv
}

func convert(fn func(*bif.Converter, string, string) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		if c.NArg() < 2 {
			cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
		}

		if err := fn(newConverter(c), c.Args().Get(0), c.Args().Get(1)); err != nil {
			return cli.Exit(err, 1)
		}

		return nil
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "bif"
	app.Usage = "BIF image conversion utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
		&cli.BoolFlag{
			Name:    "force",
			Aliases: []string{"f"},
			Usage:   "overwrite existing output files",
		},
		&cli.BoolFlag{
			Name:    "strict",
			EnvVars: []string{"BIF_STRICT"},
			Usage:   "fail on a data block without [/data]",
		},
		&cli.IntFlag{
			Name:    "colors",
			Aliases: []string{"c"},
			EnvVars: []string{"BIF_COLORS"},
			Usage:   "maximum number of colors when writing BIF, 0 for no limit",
		},
		&cli.IntFlag{
			Name:    "workers",
			Aliases: []string{"w"},
			EnvVars: []string{"BIF_WORKERS"},
			Value:   10,
			Usage:   "number of concurrent conversions for batch",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "topng",
			Usage:       "Convert a BIF file to PNG",
			Description: "",
			ArgsUsage:   "BIF PNG",
			Action:      convert((*bif.Converter).BIFToPNG),
		},
		{
			Name:        "tobif",
			Usage:       "Convert a PNG, GIF, JPEG or TIFF file to BIF",
			Description: "",
			ArgsUsage:   "IMAGE BIF",
			Action:      convert((*bif.Converter).PNGToBIF),
		},
		{
			Name:        "batch",
			Usage:       "Convert every matching file under a directory",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "to",
					Value: "png",
					Usage: "output format, png or bif",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				var direction bif.Direction
				switch c.String("to") {
				case "png":
					direction = bif.ToPNG
				case "bif":
					direction = bif.ToBIF
				default:
					return cli.Exit(fmt.Sprintf("unknown output format \"%s\"", c.String("to")), 1)
				}

				if err := newConverter(c).Batch(c.Args().First(), direction); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
