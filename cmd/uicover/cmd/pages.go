package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
	"github.com/viant/uicover/analyzer"
	"github.com/viant/uicover/report"
	"gopkg.in/yaml.v3"
)

// PagesCommand returns the pages CLI command.
func PagesCommand() *cli.Command {
	return &cli.Command{
		Name:   "pages",
		Usage:  "List pages discovered in the router",
		Flags:  projectFlags(),
		Action: runPages,
	}
}

func runPages(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	anAnalyzer, err := newAnalyzer(cfg)
	if err != nil {
		return err
	}
	pages, err := anAnalyzer.DiscoverPages(c.Context, anAnalyzer.RouterURL())
	if err != nil {
		if errors.Is(err, analyzer.ErrRouterNotFound) {
			return cli.Exit(err.Error(), 2)
		}
		return err
	}
	switch strings.ToLower(cfg.Report.Format) {
	case report.FormatYAML:
		return yaml.NewEncoder(c.App.Writer).Encode(pages.Sorted())
	case report.FormatJSON:
		return json.NewEncoder(c.App.Writer).Encode(pages.Sorted())
	}
	for _, page := range pages.Sorted() {
		fmt.Fprintln(c.App.Writer, page)
	}
	return nil
}
