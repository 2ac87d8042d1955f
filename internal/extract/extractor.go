// Package extract turns raw repository files into component records.
//
// Extraction is a pure function of the file item and its content: the
// same inputs always produce the same record. Classification logic is
// kept as ordered rule tables (see rules.go) so it can be unit-tested
// in isolation from network concerns.
package extract

import (
	"fmt"
	"path"
	"regexp"
	"sort"
	"strings"
)

// FileItem is one raw file discovered by a crawl.
type FileItem struct {
	// Name is the file's base name including extension.
	Name string

	// Path is the repository-relative path.
	Path string

	// Size is the file size in bytes.
	Size int64

	// SourceURL is the human-facing URL of the file.
	SourceURL string
}

// Record is the structured representation of one component source file.
// Immutable once constructed.
type Record struct {
	// Name is the filename with its extension stripped. Unique within
	// one crawl.
	Name string

	// Category is the classified component category. Never empty.
	Category string

	// Description is a short human-readable summary. Never empty.
	Description string

	// Tags are satisfied content predicates, deduplicated and sorted.
	Tags []string

	// Dependencies are external module specifiers, deduplicated and
	// sorted. Relative and runtime-builtin specifiers are excluded.
	Dependencies []string

	// Code is the raw file content.
	Code string

	// Path is the repository-relative path.
	Path string

	// Size is the file size in bytes.
	Size int64

	// SourceURL is the human-facing URL of the file.
	SourceURL string
}

var (
	importRe  = regexp.MustCompile(`(?m)^\s*import\s+(?:type\s+)?(?:[^'"]*?\bfrom\s+)?['"]([^'"]+)['"]`)
	requireRe = regexp.MustCompile(`require\(\s*['"]([^'"]+)['"]\s*\)`)

	docBlockRe    = regexp.MustCompile(`(?s)/\*\*(.*?)\*/`)
	lineCommentRe = regexp.MustCompile(`(?m)^\s*//\s*(.+)$`)
)

// Extractor builds component records from raw files.
type Extractor struct {
	library string
}

// NewExtractor creates an extractor. The library name is used in
// synthesized descriptions when a file carries no comments.
func NewExtractor(library string) *Extractor {
	if library == "" {
		library = "the component library"
	}
	return &Extractor{library: library}
}

// Extract classifies one file into a Record. Deterministic for
// identical inputs.
func (e *Extractor) Extract(item FileItem, content string) Record {
	name := strings.TrimSuffix(item.Name, path.Ext(item.Name))

	return Record{
		Name:         name,
		Category:     classify(name, content),
		Description:  e.describe(name, content),
		Tags:         extractTags(content),
		Dependencies: extractDependencies(content),
		Code:         content,
		Path:         item.Path,
		Size:         item.Size,
		SourceURL:    item.SourceURL,
	}
}

// classify resolves the category: name keywords first, then content
// structural markers, then the default.
func classify(name, content string) string {
	lowerName := strings.ToLower(name)
	for _, rule := range categoryRules {
		if strings.Contains(lowerName, rule.Keyword) {
			return rule.Category
		}
	}

	lowerContent := strings.ToLower(content)
	for _, rule := range contentRules {
		for _, marker := range rule.Markers {
			if strings.Contains(lowerContent, marker) {
				return rule.Category
			}
		}
	}

	return DefaultCategory
}

// describe derives a description: the first text line of a /** */ doc
// block, else the first // comment, else a synthesized fallback.
func (e *Extractor) describe(name, content string) string {
	if m := docBlockRe.FindStringSubmatch(content); m != nil {
		for _, line := range strings.Split(m[1], "\n") {
			line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "*"))
			if line == "" || strings.HasPrefix(line, "@") {
				continue
			}
			return line
		}
	}

	if m := lineCommentRe.FindStringSubmatch(content); m != nil {
		if text := strings.TrimSpace(m[1]); text != "" {
			return text
		}
	}

	return fmt.Sprintf("%s component from %s", name, e.library)
}

// extractTags evaluates every tag predicate against the content and
// returns the satisfied tags as a sorted set.
func extractTags(content string) []string {
	lower := strings.ToLower(content)

	var tags []string
	for _, rule := range tagRules {
		for _, marker := range rule.Markers {
			if strings.Contains(lower, marker) {
				tags = append(tags, rule.Tag)
				break
			}
		}
	}

	sort.Strings(tags)
	return tags
}

// extractDependencies scans import and require declarations for external
// module specifiers. Relative paths and runtime builtins are excluded;
// the result is a sorted set.
func extractDependencies(content string) []string {
	seen := make(map[string]struct{})

	collect := func(matches [][]string) {
		for _, m := range matches {
			spec := m[1]
			if spec == "" || strings.HasPrefix(spec, ".") || strings.HasPrefix(spec, "node:") {
				continue
			}
			seen[spec] = struct{}{}
		}
	}
	collect(importRe.FindAllStringSubmatch(content, -1))
	collect(requireRe.FindAllStringSubmatch(content, -1))

	deps := make([]string, 0, len(seen))
	for spec := range seen {
		deps = append(deps, spec)
	}
	sort.Strings(deps)
	return deps
}
