package main

import (
	"errors"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"

	"github.com/eddiexyang/bmp2coe"
	"github.com/urfave/cli/v2"
)

const defaultInput = "block.bmp"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newConverter(c *cli.Context) *bmp2coe.Converter {
	var w io.Writer = io.Discard
	if c.Bool("verbose") {
		w = os.Stderr
	}
	return bmp2coe.New(bmp2coe.NewLogger(w, c.Bool("verbose")))
}

var errTooManyArgs = errors.New("too many arguments, expected [INPUT [OUTPUT]]")

// resolvePaths returns the image to read and the COE file to write for the
// given positional arguments.
func resolvePaths(args []string) (string, string, error) {
	if len(args) > 2 {
		return "", "", errTooManyArgs
	}

	input := defaultInput
	if len(args) > 0 {
		input = args[0]
	}

	output := bmp2coe.OutputPath(input)
	if len(args) > 1 {
		output = args[1]
	}

	return input, output, nil
}

func convert(c *cli.Context) error {
	input, output, err := resolvePaths(c.Args().Slice())
	if err != nil {
		return cli.Exit(err, 1)
	}

	if err := newConverter(c).Convert(input, output); err != nil {
		return cli.Exit(err, 1)
	}

	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "bmp2coe"
	app.Usage = "Convert bitmap images to COE memory initialization files"
	app.Version = "1.0.0"
	app.ArgsUsage = "[INPUT [OUTPUT]]"
	app.Description = "Converts INPUT, block.bmp by default, to OUTPUT which defaults to INPUT with a .coe extension. " +
		"An INPUT named like a command runs that command instead. Use \"bmp2coe convert scan\" to convert a file named scan."

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = convert

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Convert a single image",
			Description: "Converts INPUT, block.bmp by default, to OUTPUT which defaults to INPUT with a .coe extension.",
			ArgsUsage:   "[INPUT [OUTPUT]]",
			Action:      convert,
		},
		{
			Name:        "scan",
			Usage:       "Convert every bitmap under a directory",
			Description: "Walks DIRECTORY, skipping hidden files and directories, and writes a .coe file next to every .bmp file found.",
			ArgsUsage:   "DIRECTORY",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "workers",
					EnvVars: []string{"BMP2COE_WORKERS"},
					Value:   bmp2coe.DefaultWorkers,
					Usage:   "number of concurrent conversions",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				if err := newConverter(c).Scan(c.Args().First(), c.Int("workers")); err != nil {
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
