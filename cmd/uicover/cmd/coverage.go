package cmd

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"github.com/viant/uicover/analyzer"
	"github.com/viant/uicover/report"
)

// CoverageCommand returns the coverage CLI command.
func CoverageCommand() *cli.Command {
	return &cli.Command{
		Name:  "coverage",
		Usage: "Analyze router pages and report component coverage",
		Flags: append(projectFlags(),
			&cli.BoolFlag{
				Name:  "show-usage",
				Usage: "Include per component usage ranking",
			},
			&cli.StringFlag{
				Name:  "visit-scope",
				Usage: "Visited set scope: page counts shared children once per page, run counts them once",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored text output",
			},
		),
		Action: runCoverage,
	}
}

func runCoverage(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	anAnalyzer, err := newAnalyzer(cfg)
	if err != nil {
		return err
	}
	result, err := anAnalyzer.Run(c.Context)
	if err != nil {
		if errors.Is(err, analyzer.ErrRouterNotFound) {
			return cli.Exit(err.Error(), 2)
		}
		logrus.Debug(analyzer.ErrorStack(err))
		return err
	}
	return report.Write(c.App.Writer, result.Statistics, cfg.Report.Format, report.Options{
		Library:   cfg.Name,
		ShowUsage: cfg.Report.ShowUsage,
		MaxListed: cfg.Report.MaxListed,
		Color:     !c.Bool("no-color"),
	})
}
