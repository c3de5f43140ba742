package stats

import "sort"

// PageSet is the set of canonical paths reachable as top-level pages
type PageSet map[string]struct{}

// NewPageSet creates a page set with supplied paths
func NewPageSet(paths ...string) PageSet {
	result := make(PageSet, len(paths))
	for _, path := range paths {
		result.Add(path)
	}
	return result
}

// Add adds path to the set
func (p PageSet) Add(path string) {
	p[path] = struct{}{}
}

// Has reports whether path is a page
func (p PageSet) Has(path string) bool {
	_, ok := p[path]
	return ok
}

// Sorted returns pages in lexical order
func (p PageSet) Sorted() []string {
	result := make([]string, 0, len(p))
	for path := range p {
		result = append(result, path)
	}
	sort.Strings(result)
	return result
}
