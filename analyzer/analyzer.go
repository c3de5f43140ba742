package analyzer

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"github.com/viant/uicover/analyzer/stats"
	"github.com/viant/uicover/inspector"
)

// Analyzer measures component library coverage of router pages
type Analyzer struct {
	fs              afs.Service
	root            string
	router          string
	aliases         []Alias
	extensions      []string
	components      []string
	scanner         *Scanner
	factory         *inspector.Factory
	runScopedVisits bool
	cacheSize       int
	logger          *logrus.Entry
}

// Result represents a standalone run outcome
type Result struct {
	Statistics *stats.Statistics `yaml:"statistics" json:"statistics"`
	Pages      []string          `yaml:"pages" json:"pages"`
	Warnings   []error           `yaml:"-" json:"-"`
}

// Warning returns all warnings combined into one error, or nil
func (r *Result) Warning() error {
	if len(r.Warnings) == 0 {
		return nil
	}
	return multierror.Append(nil, r.Warnings...)
}

func emptyResult() *Result {
	return &Result{Statistics: stats.Empty(), Pages: []string{}}
}

// New creates an analyzer
func New(opts ...Option) *Analyzer {
	ret := &Analyzer{
		root:      ".",
		router:    DefaultRouter,
		cacheSize: DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	if ret.scanner == nil {
		ret.scanner = DefaultScanner()
	}
	if ret.factory == nil {
		ret.factory = inspector.NewFactory(nil)
	}
	if ret.logger == nil {
		ret.logger = logrus.WithField("component", "analyzer")
	}
	return ret
}

// Resolver returns path resolver for the supplied project root
func (a *Analyzer) Resolver(rootDir string) *Resolver {
	return NewResolver(localRoot(rootDir), a.aliases, a.extensions...)
}

// Collector returns an incremental collector sharing analyzer resolver, scanner and tracked components
func (a *Analyzer) Collector(opts ...CollectorOption) *Collector {
	options := []CollectorOption{WithTracked(a.components...), WithCollectorLogger(a.logger.WithField("mode", "incremental"))}
	return NewCollector(a.Resolver(a.root), a.scanner, append(options, opts...)...)
}

// Run reads the configured router and analyzes the configured project root
func (a *Analyzer) Run(ctx context.Context) (*Result, error) {
	routerText, err := a.readRouter(ctx, a.RouterURL())
	if err != nil {
		return emptyResult(), err
	}
	return a.RunStandalone(ctx, routerText, a.root)
}

// DiscoverPages reads router file and returns discovered pages
func (a *Analyzer) DiscoverPages(ctx context.Context, routerURL string) (stats.PageSet, error) {
	routerText, err := a.readRouter(ctx, routerURL)
	if err != nil {
		return stats.PageSet{}, err
	}
	return DiscoverPages(routerText, a.Resolver(a.root), a.routerDir()), nil
}

// RunStandalone discovers pages in routerText, walks each page under rootDir and aggregates usage.
// An empty router yields zero state statistics with ErrRouterNotFound; a cancelled run returns partial statistics with the context error.
func (a *Analyzer) RunStandalone(ctx context.Context, routerText, rootDir string) (*Result, error) {
	if strings.TrimSpace(routerText) == "" {
		return emptyResult(), fmt.Errorf("empty router source: %w", ErrRouterNotFound)
	}
	if rootDir == "" {
		rootDir = a.root
	}
	resolver := a.Resolver(rootDir)
	pages := DiscoverPages(routerText, resolver, a.routerDir())
	logger := a.logger.WithField("root", rootDir)
	logger.Infof("discovered %d pages", len(pages))

	walker, err := NewWalker(a.fs, baseURL(rootDir), resolver, a.scanner, a.factory, a.cacheSize)
	if err != nil {
		return emptyResult(), err
	}
	var warnings *multierror.Error
	walker.SetAllowList(NewAllowList(a.components...))
	walker.SetLogger(logger)
	walker.SetWarner(func(err error) {
		warnings = multierror.Append(warnings, err)
	})

	index := stats.FileIndex{}
	distinct := stats.FileIndex{}
	var pageFiles stats.FileIndex
	if a.runScopedVisits {
		walker.SetScanListener(func(path string, own stats.Usage) {
			pageFiles.Record(path, own)
		})
	}
	var runErr error
	for _, page := range pages.Sorted() {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}
		pageFiles = stats.FileIndex{}
		usage := walker.Walk(ctx, page, VisitedSet{})
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}
		index.Record(page, usage)
		for path, own := range pageFiles {
			distinct.Record(path, own)
		}
	}
	result := &Result{
		Statistics: Aggregate(pages, index, a.components...),
		Pages:      pages.Sorted(),
	}
	if a.runScopedVisits {
		Recount(result.Statistics, distinct, a.components...)
	}
	if warnings != nil {
		result.Warnings = warnings.WrappedErrors()
	}
	logger.WithFields(logrus.Fields{
		"pages":    result.Statistics.TotalPages,
		"coverage": result.Statistics.CoverageString(),
		"warnings": len(result.Warnings),
	}).Info("analysis completed")
	return result, runErr
}

func (a *Analyzer) readRouter(ctx context.Context, routerURL string) (string, error) {
	exists, err := a.fs.Exists(ctx, routerURL)
	if err != nil || !exists {
		return "", fmt.Errorf("%s: %w", routerURL, ErrRouterNotFound)
	}
	data, err := a.fs.DownloadWithURL(ctx, routerURL)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %w", routerURL, ErrRouterNotFound, withStackTrace(err))
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("%s is empty: %w", routerURL, ErrRouterNotFound)
	}
	return string(data), nil
}

// RouterURL returns configured router location
func (a *Analyzer) RouterURL() string {
	if isURL(a.router) || filepath.IsAbs(a.router) {
		return a.router
	}
	return url.Join(baseURL(a.root), a.router)
}

// routerDir returns canonical directory of the router, used to resolve relative page imports
func (a *Analyzer) routerDir() string {
	router := toSlash(a.router)
	if isURL(router) || isAbsolute(router) {
		if relative, ok := NewResolver(localRoot(a.root), nil).relativize(router); ok {
			router = relative
		} else {
			router = DefaultRouter
		}
	}
	return path.Dir(path.Clean(router))
}

func localRoot(rootDir string) string {
	if rootDir == "" || isURL(rootDir) {
		return ""
	}
	absolute, err := filepath.Abs(rootDir)
	if err != nil {
		return ""
	}
	return absolute
}

// baseURL returns rootDir as absolute location
func baseURL(rootDir string) string {
	if absolute := localRoot(rootDir); absolute != "" {
		return absolute
	}
	return rootDir
}

func isURL(location string) bool {
	return strings.Contains(location, "://")
}
