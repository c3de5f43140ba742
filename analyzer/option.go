package analyzer

import (
	"github.com/sirupsen/logrus"
	"github.com/viant/afs"
	"github.com/viant/uicover/inspector"
)

// DefaultRouter is the router location relative to the project root
const DefaultRouter = "src/router/index.ts"

type Option func(*Analyzer)

// WithFS sets file system service used to read router and component files
func WithFS(fs afs.Service) Option {
	return func(a *Analyzer) {
		a.fs = fs
	}
}

// WithRoot sets project root path or URL
func WithRoot(root string) Option {
	return func(a *Analyzer) {
		a.root = root
	}
}

// WithRouter sets router file location, relative to the project root or absolute
func WithRouter(router string) Option {
	return func(a *Analyzer) {
		a.router = router
	}
}

// WithAliases replaces import path aliases
func WithAliases(aliases ...Alias) Option {
	return func(a *Analyzer) {
		a.aliases = aliases
	}
}

// WithExtensions sets recognized component file extensions (e.g. .vue, .svelte)
func WithExtensions(extensions ...string) Option {
	return func(a *Analyzer) {
		a.extensions = extensions
	}
}

// WithComponents restricts tracking to listed component names and enables unused component reporting
func WithComponents(names ...string) Option {
	return func(a *Analyzer) {
		a.components = append(a.components, names...)
	}
}

// WithScanner sets reference scanner
func WithScanner(scanner *Scanner) Option {
	return func(a *Analyzer) {
		a.scanner = scanner
	}
}

// WithInspectorFactory sets component inspector factory
func WithInspectorFactory(factory *inspector.Factory) Option {
	return func(a *Analyzer) {
		a.factory = factory
	}
}

// WithRunScopedVisits counts every file once per run in project usage; page coverage still uses each page transitive usage
func WithRunScopedVisits() Option {
	return func(a *Analyzer) {
		a.runScopedVisits = true
	}
}

// WithCacheSize sets number of parsed components kept in memory
func WithCacheSize(size int) Option {
	return func(a *Analyzer) {
		a.cacheSize = size
	}
}

// WithLogger sets analyzer logger
func WithLogger(logger *logrus.Entry) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}
