package analyzer

import (
	"context"
	"path"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"
	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"github.com/viant/uicover/analyzer/stats"
	"github.com/viant/uicover/inspector"
	"github.com/viant/uicover/inspector/graph"
)

// DefaultCacheSize is the default number of parsed components kept in memory
const DefaultCacheSize = 512

// VisitedSet tracks canonical paths already entered during a traversal
type VisitedSet map[string]struct{}

// Visit marks path as visited and reports whether it was not visited before
func (v VisitedSet) Visit(aPath string) bool {
	if _, ok := v[aPath]; ok {
		return false
	}
	v[aPath] = struct{}{}
	return true
}

// Warner receives recoverable per file failures
type Warner func(err error)

// Walker recursively scans a component and every component it imports
type Walker struct {
	fs       afs.Service
	baseURL  string
	resolver *Resolver
	scanner  *Scanner
	allowed  AllowList
	factory  *inspector.Factory
	cache    *lru.Cache[string, *graph.File]
	warn     Warner
	onScan   func(path string, own stats.Usage)
	logger   *logrus.Entry
}

// NewWalker creates a walker reading files relative to baseURL
func NewWalker(fs afs.Service, baseURL string, resolver *Resolver, scanner *Scanner, factory *inspector.Factory, cacheSize int) (*Walker, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, *graph.File](cacheSize)
	if err != nil {
		return nil, withStackTrace(err)
	}
	if fs == nil {
		fs = afs.New()
	}
	if factory == nil {
		factory = inspector.NewFactory(nil)
	}
	if scanner == nil {
		scanner = DefaultScanner()
	}
	return &Walker{
		fs:       fs,
		baseURL:  baseURL,
		resolver: resolver,
		scanner:  scanner,
		factory:  factory,
		cache:    cache,
		warn:     func(error) {},
		onScan:   func(string, stats.Usage) {},
		logger:   logrus.WithField("component", "walker"),
	}, nil
}

// SetAllowList restricts counted component names
func (w *Walker) SetAllowList(allowed AllowList) {
	w.allowed = allowed
}

// SetWarner sets recoverable failure callback
func (w *Walker) SetWarner(warn Warner) {
	if warn != nil {
		w.warn = warn
	}
}

// SetScanListener sets callback receiving each visited file own usage, before children are merged
func (w *Walker) SetScanListener(listener func(path string, own stats.Usage)) {
	if listener != nil {
		w.onScan = listener
	}
}

// SetLogger sets walker logger
func (w *Walker) SetLogger(logger *logrus.Entry) {
	if logger != nil {
		w.logger = logger
	}
}

// Walk returns usage of entry merged with usage of every component reachable from it.
// A path already in visited contributes nothing, which breaks import cycles.
func (w *Walker) Walk(ctx context.Context, entry string, visited VisitedSet) stats.Usage {
	usage := stats.Usage{}
	if ctx.Err() != nil {
		return usage
	}
	if !visited.Visit(entry) {
		w.logger.WithField("path", entry).Debug("already visited")
		return usage
	}
	aFile, err := w.load(ctx, entry)
	if err != nil {
		w.report(err)
		return usage
	}
	own := w.scanner.Scan(aFile.Markup, aFile.Logic, w.allowed)
	w.onScan(entry, own)
	usage.Merge(own)
	dir := path.Dir(entry)
	for _, importPath := range aFile.ImportPaths() {
		child, err := w.resolver.Resolve(importPath, dir)
		if err != nil {
			w.logger.WithField("path", entry).WithField("import", importPath).Trace(err)
			continue
		}
		if exists, err := w.fs.Exists(ctx, w.url(child)); err != nil || !exists {
			w.report(newFileError(ErrFileUnavailable, child, err))
			continue
		}
		usage.Merge(w.Walk(ctx, child, visited))
	}
	w.logger.WithFields(logrus.Fields{"path": entry, "components": usage.Total()}).Debug("scanned")
	return usage
}

// load reads and splits a component, reusing the cached parse when content did not change
func (w *Walker) load(ctx context.Context, canonical string) (*graph.File, error) {
	URL := w.url(canonical)
	src, err := w.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, newFileError(ErrFileUnavailable, canonical, err)
	}
	hash := graph.Hash(src)
	if cached, ok := w.cache.Get(canonical); ok && cached.Hash == hash {
		return cached, nil
	}
	aFile, err := w.factory.InspectSource(ctx, canonical, src)
	if err != nil {
		return nil, newFileError(ErrParseFailure, canonical, err)
	}
	w.cache.Add(canonical, aFile)
	return aFile, nil
}

func (w *Walker) report(err error) {
	w.logger.Warn(err)
	w.warn(err)
}

func (w *Walker) url(canonical string) string {
	if w.baseURL == "" {
		return canonical
	}
	return url.Join(w.baseURL, canonical)
}
