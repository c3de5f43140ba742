package cmd

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"github.com/viant/afs"
	"github.com/viant/uicover/analyzer"
	"github.com/viant/uicover/config"
	"github.com/viant/uicover/inspector/repository"
)

// NewApp returns the uicover CLI application
func NewApp() *cli.App {
	return &cli.App{
		Name:  "uicover",
		Usage: "Measure component library coverage of application pages",
		Description: `Reads the router configuration to find real pages, walks every page
component and the components it imports, and counts library component
references found in markup tags and in call expressions.

Example:
  uicover coverage --root ./shop --component cx-button --component cx-tag`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level: trace, debug, info, warn, error",
				Value:   "warn",
				EnvVars: []string{"UICOVER_LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			_ = godotenv.Load()
			level, err := logrus.ParseLevel(c.String("log-level"))
			if err != nil {
				return err
			}
			logrus.SetLevel(level)
			return nil
		},
		Commands: []*cli.Command{
			CoverageCommand(),
			PagesCommand(),
			ScanCommand(),
		},
	}
}

func projectFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML configuration file",
			EnvVars: []string{"UICOVER_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "root",
			Aliases: []string{"r"},
			Usage:   "Project root, detected from the working directory when omitted",
			EnvVars: []string{"UICOVER_ROOT"},
		},
		&cli.StringFlag{
			Name:    "router",
			Usage:   "Router file relative to the project root",
			EnvVars: []string{"UICOVER_ROUTER"},
		},
		&cli.StringSliceFlag{
			Name:  "component",
			Usage: "Tracked component name, repeatable; all matched names are tracked when omitted",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format: text, yaml, json",
		},
	}
}

// loadConfig builds configuration from the optional config file and command line flags; defaults are applied last,
// so a root left out of both is detected from the working directory
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := &config.Config{}
	location := c.String("config")
	if location == "" {
		if _, err := os.Stat(config.DefaultFile); err == nil {
			location = config.DefaultFile
		}
	}
	if location != "" {
		loaded, err := config.Read(c.Context, afs.New(), location)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if root := c.String("root"); root != "" {
		cfg.Root = root
	} else if cfg.Root == "" {
		cfg.Root = detectRoot()
	}
	if router := c.String("router"); router != "" {
		cfg.Router = router
	}
	if components := c.StringSlice("component"); len(components) > 0 {
		cfg.Components = components
	}
	if format := c.String("format"); format != "" {
		cfg.Report.Format = format
	}
	if c.IsSet("show-usage") {
		cfg.Report.ShowUsage = c.Bool("show-usage")
	}
	if scope := c.String("visit-scope"); scope != "" {
		cfg.VisitScope = scope
	}
	if err := cfg.Init(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func detectRoot() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	project, err := repository.New().DetectProject(wd)
	if err != nil {
		return wd
	}
	logrus.WithField("type", project.Type).Debugf("detected project %s at %s", project.Name, project.RootPath)
	return project.RootPath
}

func newAnalyzer(cfg *config.Config) (*analyzer.Analyzer, error) {
	options, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	options = append(options, analyzer.WithLogger(logrus.WithField("project", filepath.Base(cfg.Root))))
	return analyzer.New(options...), nil
}
