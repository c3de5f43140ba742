package graph

import "strings"

// File represents a single-file component split into its regions
type File struct {
	Path    string   // Canonical file path
	Kind    string   // Component kind, e.g. vue or svelte
	Lang    string   // Logic region language (js, ts)
	Markup  string   // Rendered structure region
	Logic   string   // Behavioral code region
	Imports []Import // Imports declared in the logic region
	Hash    uint64   // Content hash of the raw source
}

// Import represents an import declared by a component
type Import struct {
	Name string // Local name (may be empty for side effect imports)
	Path string // Import path as written
}

// HasMarkup returns true if file has a non blank markup region
func (f *File) HasMarkup() bool {
	return strings.TrimSpace(f.Markup) != ""
}

// HasLogic returns true if file has a non blank logic region
func (f *File) HasLogic() bool {
	return strings.TrimSpace(f.Logic) != ""
}

// ImportPaths returns distinct import paths in declaration order
func (f *File) ImportPaths() []string {
	var result []string
	seen := make(map[string]bool, len(f.Imports))
	for _, imp := range f.Imports {
		if seen[imp.Path] {
			continue
		}
		seen[imp.Path] = true
		result = append(result, imp.Path)
	}
	return result
}

// AddImport adds an import unless the same name/path pair is already present
func (f *File) AddImport(name, path string) {
	for _, imp := range f.Imports {
		if imp.Name == name && imp.Path == path {
			return
		}
	}
	f.Imports = append(f.Imports, Import{Name: name, Path: path})
}
