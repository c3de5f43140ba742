// Package report renders coverage statistics
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/colorstring"
	"github.com/viant/uicover/analyzer/stats"
	"gopkg.in/yaml.v3"
)

const (
	// FormatText selects the human readable report
	FormatText = "text"
	// FormatYAML selects YAML encoded statistics
	FormatYAML = "yaml"
	// FormatJSON selects JSON encoded statistics
	FormatJSON = "json"
)

// Options represents text report options
type Options struct {
	Library   string
	ShowUsage bool
	MaxListed int
	Color     bool
}

// Encode writes statistics in a structured format
func Encode(w io.Writer, s *stats.Statistics, format string) error {
	switch strings.ToLower(format) {
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(s); err != nil {
			return err
		}
		return encoder.Close()
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(s)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// Write renders statistics using format, text format uses opts
func Write(w io.Writer, s *stats.Statistics, format string, opts Options) error {
	if format == "" || strings.EqualFold(format, FormatText) {
		return Text(w, s, opts)
	}
	return Encode(w, s, format)
}

// Text writes a human readable coverage report
func Text(w io.Writer, s *stats.Statistics, opts Options) error {
	p := &printer{w: w, colorize: colorstring.Colorize{
		Colors:  colorstring.DefaultColors,
		Disable: !opts.Color,
		Reset:   true,
	}}
	library := opts.Library
	if library == "" {
		library = "component library"
	}
	rule := strings.Repeat("=", 80)
	p.println(rule)
	p.printf("[bold]%s coverage of router pages", library)
	p.println(rule)
	p.printf("Pages:               %d", s.TotalPages)
	p.printf("Pages with usage:    [green]%d", s.PagesWithUsage)
	p.printf("Pages without usage: [yellow]%d", s.PagesWithoutUsage)
	p.printf("Page coverage:       [green]%s", s.CoverageString())

	if opts.ShowUsage && len(s.Ranking) > 0 {
		p.section("Component usage")
		total := s.ProjectUsage.Total()
		for _, entry := range s.Ranking {
			share := 0.0
			if total > 0 {
				share = float64(entry.Count) / float64(total) * 100
			}
			p.printf("  [blue]%-40s[reset] %6d  %6.2f%%", entry.Name, entry.Count, share)
		}
	}

	if len(s.TrackedComponents) > 0 {
		p.section("Tracked components")
		used := s.UsedComponents()
		p.printf("  used:   %d", len(used))
		p.printf("  unused: %d", len(s.UnusedComponents))
		p.printf("  usage rate: [green]%.2f%%", s.ComponentUsageRate)
		for _, name := range s.UnusedComponents {
			p.printf("  [yellow]- %s", name)
		}
	}

	var with, without []string
	for _, page := range s.FileUsage.Paths() {
		if len(s.FileUsage[page]) == 0 {
			without = append(without, page)
			continue
		}
		with = append(with, page)
	}
	if len(with) > 0 {
		p.section("Pages using components")
		for i, page := range with {
			usage := s.FileUsage[page]
			p.printf("%3d. %s", i+1, page)
			p.printf("     %s (%d uses)", strings.Join(usage.Names(), ", "), usage.Total())
		}
	}
	if len(without) > 0 {
		p.section(fmt.Sprintf("Pages without components (%d)", len(without)))
		listed := without
		if opts.MaxListed > 0 && len(listed) > opts.MaxListed {
			listed = listed[:opts.MaxListed]
		}
		for i, page := range listed {
			p.printf("%3d. %s", i+1, page)
		}
		if rest := len(without) - len(listed); rest > 0 {
			p.printf("     ... %d more", rest)
		}
	}
	p.println(rule)
	return p.err
}

type printer struct {
	w        io.Writer
	colorize colorstring.Colorize
	err      error
}

func (p *printer) println(line string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, p.colorize.Color(line))
}

func (p *printer) printf(format string, args ...interface{}) {
	p.println(fmt.Sprintf(format, args...))
}

func (p *printer) section(title string) {
	p.println("")
	p.printf("[bold]%s", title)
	p.println(strings.Repeat("-", 80))
}
