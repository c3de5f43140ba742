package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli/v2"
	"github.com/viant/uicover/analyzer"
	"github.com/viant/uicover/inspector"
	"github.com/viant/uicover/report"
)

// ScanCommand returns the scan CLI command.
func ScanCommand() *cli.Command {
	return &cli.Command{
		Name:      "scan",
		Usage:     "Scan component files without following imports",
		ArgsUsage: "FILE...",
		Flags: append(projectFlags(),
			&cli.BoolFlag{
				Name:  "all",
				Usage: "Record files outside of the views directory",
			},
		),
		Action: runScan,
	}
}

func runScan(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("at least one file is required", 2)
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	anAnalyzer, err := newAnalyzer(cfg)
	if err != nil {
		return err
	}
	options := cfg.CollectorOptions()
	if c.Bool("all") {
		options = append(options, analyzer.WithParentPath(""))
	}
	collector := anAnalyzer.Collector(options...)
	factory := inspector.NewFactory(nil)
	var errs *multierror.Error
	for _, file := range c.Args().Slice() {
		location, err := filepath.Abs(file)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		aFile, err := factory.InspectFile(c.Context, location)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		if err = collector.RecordFile(location, aFile.Markup, aFile.Logic); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", file, err))
		}
	}
	if format := strings.ToLower(cfg.Report.Format); format == report.FormatYAML || format == report.FormatJSON {
		if err := report.Encode(c.App.Writer, collector.Finalize(), format); err != nil {
			return err
		}
		return errs.ErrorOrNil()
	}
	index := collector.Index()
	for _, path := range index.Paths() {
		usage := index[path]
		fmt.Fprintf(c.App.Writer, "%s\n", path)
		for _, name := range usage.Names() {
			fmt.Fprintf(c.App.Writer, "  %-40s %d\n", name, usage[name])
		}
	}
	return errs.ErrorOrNil()
}
