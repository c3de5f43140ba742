// Package config loads analysis settings from YAML files
package config

import (
	"context"
	"fmt"
	"strings"

	"dario.cat/mergo"
	"github.com/viant/afs"
	"github.com/viant/uicover/analyzer"
	"gopkg.in/yaml.v3"
)

const (
	// VisitScopePage creates a fresh visited set for every page
	VisitScopePage = "page"
	// VisitScopeRun shares one visited set across the whole run
	VisitScopeRun = "run"

	// DefaultFile is the conventional configuration file name
	DefaultFile = "uicover.yaml"
)

// Config represents analysis settings
type Config struct {
	Name        string           `yaml:"name,omitempty"`
	Root        string           `yaml:"root,omitempty"`
	Router      string           `yaml:"router,omitempty"`
	Views       string           `yaml:"views,omitempty"`
	Extensions  []string         `yaml:"extensions,omitempty"`
	Prefix      string           `yaml:"prefix,omitempty"`
	TagPattern  string           `yaml:"tagPattern,omitempty"`
	CallPattern string           `yaml:"callPattern,omitempty"`
	Components  []string         `yaml:"components,omitempty"`
	Aliases     []analyzer.Alias `yaml:"aliases,omitempty"`
	VisitScope  string           `yaml:"visitScope,omitempty"`
	CacheSize   int              `yaml:"cacheSize,omitempty"`
	ExcludeDirs []string         `yaml:"excludeDirs,omitempty"`
	Report      Report           `yaml:"report,omitempty"`
}

// Report represents report rendering settings
type Report struct {
	Format    string `yaml:"format,omitempty"`
	ShowUsage bool   `yaml:"showUsage,omitempty"`
	MaxListed int    `yaml:"maxListed,omitempty"`
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Name:        analyzer.DefaultLibrary,
		Root:        ".",
		Router:      analyzer.DefaultRouter,
		Views:       analyzer.DefaultParentPath,
		Extensions:  analyzer.DefaultExtensions(),
		Prefix:      analyzer.DefaultPrefix,
		Aliases:     analyzer.DefaultAliases(),
		VisitScope:  VisitScopePage,
		CacheSize:   analyzer.DefaultCacheSize,
		ExcludeDirs: []string{"node_modules"},
		Report: Report{
			Format:    "text",
			MaxListed: 20,
		},
	}
}

// Load reads configuration from URL, unset fields take default values
func Load(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	ret, err := Read(ctx, fs, URL)
	if err != nil {
		return nil, err
	}
	if err = ret.Init(); err != nil {
		return nil, err
	}
	return ret, nil
}

// Read reads configuration from URL without applying defaults, so callers can tell unset fields apart
func Read(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	if fs == nil {
		fs = afs.New()
	}
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", URL, err)
	}
	return decode(data)
}

// Parse decodes YAML configuration and applies defaults
func Parse(data []byte) (*Config, error) {
	ret, err := decode(data)
	if err != nil {
		return nil, err
	}
	if err = ret.Init(); err != nil {
		return nil, err
	}
	return ret, nil
}

func decode(data []byte) (*Config, error) {
	ret := &Config{}
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return ret, nil
}

// Init fills unset fields with defaults and validates the result
func (c *Config) Init() error {
	if err := mergo.Merge(c, Default()); err != nil {
		return err
	}
	return c.Validate()
}

// Validate checks configuration consistency
func (c *Config) Validate() error {
	switch c.VisitScope {
	case VisitScopePage, VisitScopeRun:
	default:
		return fmt.Errorf("unsupported visitScope: %q, expected %s or %s", c.VisitScope, VisitScopePage, VisitScopeRun)
	}
	switch strings.ToLower(c.Report.Format) {
	case "text", "yaml", "json":
	default:
		return fmt.Errorf("unsupported report format: %q", c.Report.Format)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("invalid cacheSize: %d", c.CacheSize)
	}
	return nil
}

// Scanner returns reference scanner for configured prefix and patterns
func (c *Config) Scanner() (*analyzer.Scanner, error) {
	return analyzer.NewScanner(c.Prefix, c.TagPattern, c.CallPattern)
}

// Options returns analyzer options matching the configuration
func (c *Config) Options() ([]analyzer.Option, error) {
	scanner, err := c.Scanner()
	if err != nil {
		return nil, err
	}
	options := []analyzer.Option{
		analyzer.WithRoot(c.Root),
		analyzer.WithRouter(c.Router),
		analyzer.WithAliases(c.Aliases...),
		analyzer.WithExtensions(c.Extensions...),
		analyzer.WithScanner(scanner),
		analyzer.WithCacheSize(c.CacheSize),
	}
	if len(c.Components) > 0 {
		options = append(options, analyzer.WithComponents(c.Components...))
	}
	if c.VisitScope == VisitScopeRun {
		options = append(options, analyzer.WithRunScopedVisits())
	}
	return options, nil
}

// CollectorOptions returns incremental collector options matching the configuration
func (c *Config) CollectorOptions() []analyzer.CollectorOption {
	return []analyzer.CollectorOption{
		analyzer.WithParentPath(c.Views),
		analyzer.WithExcludeDirs(c.ExcludeDirs...),
	}
}
