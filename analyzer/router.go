package analyzer

import (
	"regexp"

	"github.com/viant/uicover/analyzer/stats"
)

// lazyPageExpr matches `component: () => import("...")`, tolerating a leading bundler magic comment
var lazyPageExpr = regexp.MustCompile(`component:\s*\(\)\s*=>\s*import\(\s*(?:/\*.*?\*/\s*)?["']([^"']+)["']\s*\)`)

// DiscoverPages returns canonical paths of lazily imported route components.
// Matches that do not resolve to a component file are skipped.
func DiscoverPages(routerText string, resolver *Resolver, routerDir string) stats.PageSet {
	pages := stats.PageSet{}
	if routerText == "" {
		return pages
	}
	if resolver == nil {
		resolver = NewResolver("", nil)
	}
	for _, match := range lazyPageExpr.FindAllStringSubmatch(routerText, -1) {
		page, err := resolver.Resolve(match[1], routerDir)
		if err != nil {
			continue
		}
		pages.Add(page)
	}
	return pages
}
