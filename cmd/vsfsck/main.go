// Command vsfsck audits a VSFS image file for consistency and, with
// --fix, repairs what it can.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli/v2"

	"github.com/dargueta/vsfsck/checks"
	"github.com/dargueta/vsfsck/image"
	"github.com/dargueta/vsfsck/report"
)

func main() {
	app := &cli.App{
		Name:      "vsfsck",
		Usage:     "Check and repair a VSFS image's metadata consistency",
		ArgsUsage: "<image-path>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "fix",
				Usage: "repair findings in place and write the image back",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "print only section banners and summaries, not individual findings",
			},
			&cli.StringFlag{
				Name:  "report-csv",
				Usage: "additionally write every finding to `PATH` as CSV",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	args := c.Args().Slice()
	fix := c.Bool("fix")
	// Flag parsing stops at the first positional argument, so a --fix
	// written after the image path arrives here as a second argument.
	if len(args) == 2 && args[1] == "--fix" {
		fix = true
		args = args[:1]
	}
	if len(args) != 1 {
		return cli.Exit(fmt.Sprintf("Usage: %s <file_system_image> [--fix]", c.App.Name), 1)
	}

	imagePath := args[0]

	img, file, err := image.OpenImageFile(imagePath, fix)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	printer := &report.Printer{Out: os.Stdout, Quiet: c.Bool("quiet")}
	printer.Banner(imagePath, fix)

	result := checks.Run(img, fix)
	printer.Report(result)

	// Accumulate every operation still outstanding once the audit itself
	// is done -- the write-back, the CSV report, and closing the file --
	// instead of aborting on the first one that fails, since a reader
	// still wants to know about all of them.
	var errs *multierror.Error

	if fix {
		if err := img.WriteBack(file); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	if csvPath := c.String("report-csv"); csvPath != "" {
		if err := report.WriteCSV(csvPath, result); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	if err := file.Close(); err != nil {
		errs = multierror.Append(errs, err)
	}

	if errs.ErrorOrNil() != nil {
		return cli.Exit(errs.Error(), 1)
	}
	return nil
}
