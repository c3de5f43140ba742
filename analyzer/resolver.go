package analyzer

import (
	"fmt"
	"path"
	"sort"
	"strings"
)

// Alias rewrites an import prefix to a project relative directory
type Alias struct {
	Prefix string `yaml:"prefix" json:"prefix"`
	Target string `yaml:"target" json:"target"`
}

// DefaultAliases returns the conventional Vue project aliases
func DefaultAliases() []Alias {
	return []Alias{
		{Prefix: "@/views/", Target: "src/views/"},
		{Prefix: "@views/", Target: "src/views/"},
		{Prefix: "@components/", Target: "src/components/"},
		{Prefix: "@/", Target: "src/"},
	}
}

// DefaultExtensions returns recognized component file extensions
func DefaultExtensions() []string {
	return []string{".vue"}
}

// Resolver normalizes import specifiers into canonical project relative paths
type Resolver struct {
	root       string
	aliases    []Alias
	extensions []string
}

// NewResolver creates a resolver; root is an optional absolute project root used to relativize absolute paths
func NewResolver(root string, aliases []Alias, extensions ...string) *Resolver {
	if aliases == nil {
		aliases = DefaultAliases()
	}
	if len(extensions) == 0 {
		extensions = DefaultExtensions()
	}
	sorted := make([]Alias, len(aliases))
	copy(sorted, aliases)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Prefix) > len(sorted[j].Prefix)
	})
	ret := &Resolver{aliases: sorted}
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		ret.extensions = append(ret.extensions, ext)
	}
	if root != "" {
		ret.root = strings.TrimSuffix(toSlash(root), "/")
		if ret.root == "" {
			ret.root = "/"
		}
	}
	return ret
}

// Extensions returns recognized component extensions
func (r *Resolver) Extensions() []string {
	return r.extensions
}

// IsComponent reports whether path ends with a recognized component extension
func (r *Resolver) IsComponent(aPath string) bool {
	lower := strings.ToLower(aPath)
	for _, ext := range r.extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// Resolve converts raw import specifier into a canonical path; empty baseDir means no base
func (r *Resolver) Resolve(raw, baseDir string) (string, error) {
	specifier := toSlash(strings.TrimSpace(raw))
	if specifier == "" {
		return "", fmt.Errorf("empty path: %w", ErrInvalidInput)
	}
	var resolved string
	if target, ok := r.expandAlias(specifier); ok {
		resolved = target
	} else if isRelative(specifier) {
		if baseDir == "" {
			return "", fmt.Errorf("relative path %q without base directory: %w", raw, ErrInvalidInput)
		}
		base, err := r.Canonical(baseDir)
		if err != nil {
			return "", err
		}
		resolved = path.Join(base, specifier)
	} else {
		resolved = specifier
	}
	canonical, err := r.Canonical(resolved)
	if err != nil {
		return "", err
	}
	if !r.IsComponent(canonical) {
		return "", fmt.Errorf("%s: %w", raw, ErrNotAComponentFile)
	}
	return canonical, nil
}

// Canonical normalizes an already real path (project relative or absolute within root)
func (r *Resolver) Canonical(aPath string) (string, error) {
	aPath = toSlash(strings.TrimSpace(aPath))
	if aPath == "" {
		return "", fmt.Errorf("empty path: %w", ErrInvalidInput)
	}
	if isAbsolute(aPath) {
		relative, ok := r.relativize(aPath)
		if !ok {
			return "", fmt.Errorf("path %q is outside of project root: %w", aPath, ErrInvalidInput)
		}
		aPath = relative
	}
	cleaned := path.Clean(aPath)
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("path %q escapes project root: %w", aPath, ErrInvalidInput)
	}
	return cleaned, nil
}

func (r *Resolver) expandAlias(specifier string) (string, bool) {
	for _, alias := range r.aliases {
		if alias.Prefix != "" && strings.HasPrefix(specifier, alias.Prefix) {
			return alias.Target + specifier[len(alias.Prefix):], true
		}
	}
	return "", false
}

func (r *Resolver) relativize(absolute string) (string, bool) {
	if r.root == "" {
		return "", false
	}
	absolute = path.Clean(absolute)
	root := path.Clean(r.root)
	if absolute == root {
		return ".", true
	}
	prefix := root
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	if !strings.HasPrefix(absolute, prefix) {
		return "", false
	}
	return absolute[len(prefix):], true
}

func toSlash(aPath string) string {
	return strings.ReplaceAll(aPath, `\`, "/")
}

func isRelative(specifier string) bool {
	return specifier == "." || specifier == ".." ||
		strings.HasPrefix(specifier, "./") || strings.HasPrefix(specifier, "../")
}

func isAbsolute(aPath string) bool {
	if strings.HasPrefix(aPath, "/") {
		return true
	}
	// windows drive letter, e.g. C:/project
	return len(aPath) > 2 && aPath[1] == ':' && aPath[2] == '/'
}
