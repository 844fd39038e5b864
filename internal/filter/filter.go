// Package filter implements the project list filtering used by the
// index page and the dev server API: a case-insensitive substring
// match over title and description, intersected with an optional tag.
package filter

import (
	"sort"
	"strings"

	"github.com/luis-eduardo-ferreira-galvao/portfolio/internal/content"
)

// Query is the current filter state. The zero value matches everything.
type Query struct {
	Text string // substring matched against title and description
	Tag  string // exact tag match; empty means no tag filter
}

// Apply returns the ordered subsequence of projects matching q. Both
// conditions must hold: the text matches title or description
// case-insensitively (empty text matches all), and the project carries
// the tag when one is set. The query text is matched verbatim, spaces
// included. The input order is preserved; no match yields an empty
// slice.
func Apply(projects []content.Project, q Query) []content.Project {
	needle := strings.ToLower(q.Text)

	matched := make([]content.Project, 0, len(projects))
	for _, p := range projects {
		if needle != "" && !matchesText(p, needle) {
			continue
		}
		if q.Tag != "" && !p.HasTag(q.Tag) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

func matchesText(p content.Project, needle string) bool {
	return strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle)
}

// Tags returns the sorted distinct union of all project tags.
func Tags(projects []content.Project) []string {
	set := make(map[string]struct{})
	for _, p := range projects {
		for _, t := range p.Tags {
			set[t] = struct{}{}
		}
	}

	tags := make([]string, 0, len(set))
	for t := range set {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}
