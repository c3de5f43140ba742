package analyzer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/viant/uicover/analyzer/stats"
)

const (
	// DefaultPrefix is the tag prefix of the tracked component library
	DefaultPrefix = "cx"
	// DefaultLibrary is the name of the tracked component library
	DefaultLibrary = "chuxin-ui-mobile"
)

// AllowList restricts counting to listed component names; an empty list tracks every name
type AllowList map[string]struct{}

// NewAllowList creates an allow list, blank names are ignored
func NewAllowList(names ...string) AllowList {
	result := AllowList{}
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			result[name] = struct{}{}
		}
	}
	return result
}

// Allows reports whether name should be counted
func (a AllowList) Allows(name string) bool {
	if len(a) == 0 {
		return true
	}
	_, ok := a[name]
	return ok
}

// Scanner extracts library component references from markup and logic regions
type Scanner struct {
	tagExpr  *regexp.Regexp
	callExpr *regexp.Regexp
}

// TagPattern returns the markup pattern for a kebab-case library prefix
func TagPattern(prefix string) string {
	return `<(` + regexp.QuoteMeta(strings.ToLower(prefix)) + `-[a-z0-9-]+)`
}

// CallPattern returns the logic pattern matching upper and title case prefix variants followed by a call
func CallPattern(prefix string) string {
	upper := regexp.QuoteMeta(strings.ToUpper(prefix))
	title := regexp.QuoteMeta(titleCase(prefix))
	if upper == title {
		return `(` + upper + `[A-Z][a-zA-Z]*)\(`
	}
	return `(` + upper + `[A-Z][a-zA-Z]*|` + title + `[A-Z][a-zA-Z]*)\(`
}

// NewScanner creates a scanner for prefix; non empty tagPattern or callPattern override the derived ones.
// The first capture group of each pattern is the component name.
func NewScanner(prefix, tagPattern, callPattern string) (*Scanner, error) {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if tagPattern == "" {
		tagPattern = TagPattern(prefix)
	}
	if callPattern == "" {
		callPattern = CallPattern(prefix)
	}
	tagExpr, err := compilePattern(tagPattern)
	if err != nil {
		return nil, err
	}
	callExpr, err := compilePattern(callPattern)
	if err != nil {
		return nil, err
	}
	return &Scanner{tagExpr: tagExpr, callExpr: callExpr}, nil
}

// DefaultScanner returns scanner for the default library prefix
func DefaultScanner() *Scanner {
	return &Scanner{
		tagExpr:  regexp.MustCompile(TagPattern(DefaultPrefix)),
		callExpr: regexp.MustCompile(CallPattern(DefaultPrefix)),
	}
}

// Scan counts tag references in markup and call references in logic
func (s *Scanner) Scan(markup, logic string, allowed AllowList) stats.Usage {
	usage := stats.Usage{}
	count(usage, s.tagExpr, markup, allowed)
	count(usage, s.callExpr, logic, allowed)
	return usage
}

func count(usage stats.Usage, expr *regexp.Regexp, text string, allowed AllowList) {
	if text == "" {
		return
	}
	for _, match := range expr.FindAllStringSubmatch(text, -1) {
		if len(match) < 2 || match[1] == "" {
			continue
		}
		if allowed.Allows(match[1]) {
			usage.Add(match[1], 1)
		}
	}
}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	expr, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w: %w", pattern, ErrInvalidInput, err)
	}
	if expr.NumSubexp() < 1 {
		return nil, fmt.Errorf("pattern %q has no capture group: %w", pattern, ErrInvalidInput)
	}
	return expr, nil
}

func titleCase(prefix string) string {
	runes := []rune(strings.ToLower(prefix))
	if len(runes) == 0 {
		return ""
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
