package analyzer

import (
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/viant/uicover/analyzer/stats"
)

// DefaultParentPath limits incremental recording to page sources
const DefaultParentPath = "src/views"

// Collector accumulates per file usage as files are processed by a build pass
type Collector struct {
	mux         sync.Mutex
	resolver    *Resolver
	scanner     *Scanner
	components  []string
	allowed     AllowList
	parentPath  string
	excludeDirs []string
	pages       stats.PageSet
	index       stats.FileIndex
	logger      *logrus.Entry
}

// CollectorOption represents collector option
type CollectorOption func(*Collector)

// WithPages restricts aggregation to router discovered pages
func WithPages(pages stats.PageSet) CollectorOption {
	return func(c *Collector) {
		c.pages = pages
	}
}

// WithParentPath records only files under parent path; empty records everything
func WithParentPath(parentPath string) CollectorOption {
	return func(c *Collector) {
		c.parentPath = strings.Trim(toSlash(parentPath), "/")
	}
}

// WithExcludeDirs skips files having any of supplied directory names in their path
func WithExcludeDirs(dirs ...string) CollectorOption {
	return func(c *Collector) {
		c.excludeDirs = dirs
	}
}

// WithTracked sets tracked component names
func WithTracked(names ...string) CollectorOption {
	return func(c *Collector) {
		c.components = names
		c.allowed = NewAllowList(names...)
	}
}

// WithCollectorLogger sets collector logger
func WithCollectorLogger(logger *logrus.Entry) CollectorOption {
	return func(c *Collector) {
		c.logger = logger
	}
}

// NewCollector creates a collector
func NewCollector(resolver *Resolver, scanner *Scanner, opts ...CollectorOption) *Collector {
	if resolver == nil {
		resolver = NewResolver("", nil)
	}
	if scanner == nil {
		scanner = DefaultScanner()
	}
	ret := &Collector{
		resolver:    resolver,
		scanner:     scanner,
		parentPath:  DefaultParentPath,
		excludeDirs: []string{"node_modules"},
		index:       stats.FileIndex{},
		logger:      logrus.WithField("component", "collector"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// RecordFile scans supplied regions and records them under the canonical path of aPath.
// A path recorded earlier keeps its first usage; filtered out paths are ignored.
func (c *Collector) RecordFile(aPath, markup, logic string) error {
	canonical, err := c.resolver.Canonical(aPath)
	if err != nil {
		return err
	}
	if !c.accepts(canonical) {
		c.logger.WithField("path", canonical).Trace("skipped")
		return nil
	}
	usage := c.scanner.Scan(markup, logic, c.allowed)
	c.mux.Lock()
	defer c.mux.Unlock()
	if !c.index.Record(canonical, usage) {
		c.logger.WithField("path", canonical).Debug("already recorded")
	}
	return nil
}

// Finalize aggregates recorded files over pages, or over every recorded file when no pages were supplied
func (c *Collector) Finalize() *stats.Statistics {
	c.mux.Lock()
	defer c.mux.Unlock()
	pages := c.pages
	if pages == nil {
		pages = stats.NewPageSet(c.index.Paths()...)
	}
	return Aggregate(pages, c.index, c.components...)
}

// Index returns a copy of recorded usage
func (c *Collector) Index() stats.FileIndex {
	c.mux.Lock()
	defer c.mux.Unlock()
	return c.index.Clone()
}

// Reset clears recorded usage
func (c *Collector) Reset() {
	c.mux.Lock()
	defer c.mux.Unlock()
	c.index = stats.FileIndex{}
}

func (c *Collector) accepts(canonical string) bool {
	segments := strings.Split(canonical, "/")
	for _, segment := range segments[:len(segments)-1] {
		for _, excluded := range c.excludeDirs {
			if segment == excluded {
				return false
			}
		}
	}
	if c.parentPath == "" || c.parentPath == "." {
		return true
	}
	return strings.HasPrefix(canonical, c.parentPath+"/")
}
