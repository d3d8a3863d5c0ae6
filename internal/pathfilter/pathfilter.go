// Package pathfilter decides which files of a target directory may be
// patched.
package pathfilter

import (
	"path"
	"regexp"
	"strings"

	"github.com/taigrr/webchat-preview/internal/types"
)

var (
	defaultIgnored = []string{
		".git/**",
		"node_modules/**",
		"**/node_modules/**",
		"dist/**",
	}
	defaultExtensions = []string{".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx", ".css"}
)

// PathFilter rejects build output and dependencies, and admits only
// source files the patcher knows how to edit.
type PathFilter struct {
	ignored    []*regexp.Regexp
	extensions map[string]bool
}

// New creates a PathFilter from the defaults plus config.
func New(config *types.PathFilterConfig) *PathFilter {
	patterns := defaultIgnored
	extensions := defaultExtensions
	if config != nil {
		patterns = append(append([]string{}, patterns...), config.IgnoredPatterns...)
		extensions = append(append([]string{}, extensions...), config.AllowedExtensions...)
	}

	pf := &PathFilter{extensions: make(map[string]bool, len(extensions))}
	for _, pattern := range patterns {
		pf.ignored = append(pf.ignored, globToRegexp(pattern))
	}
	for _, ext := range extensions {
		pf.extensions[strings.ToLower(ext)] = true
	}
	return pf
}

// globToRegexp anchors a glob: "**" spans directories, "*" and "?" do not.
func globToRegexp(pattern string) *regexp.Regexp {
	expr := regexp.QuoteMeta(toSlash(pattern))
	expr = strings.ReplaceAll(expr, `\*\*`, ".*")
	expr = strings.ReplaceAll(expr, `\*`, "[^/]*")
	expr = strings.ReplaceAll(expr, `\?`, "[^/]")
	return regexp.MustCompile("^" + expr + "$")
}

func toSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

// IsAllowed reports whether path may be read and rewritten.
func (pf *PathFilter) IsAllowed(p string) bool {
	p = toSlash(p)
	for _, re := range pf.ignored {
		if re.MatchString(p) {
			return false
		}
	}

	base := path.Base(p)
	ext := path.Ext(base)
	if ext == "" || ext == base || strings.HasSuffix(p, "/") {
		return false
	}
	return pf.extensions[strings.ToLower(ext)]
}
