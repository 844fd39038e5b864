package filter

import (
	"testing"

	"github.com/luis-eduardo-ferreira-galvao/portfolio/internal/content"
)

func projects() []content.Project {
	return []content.Project{
		{Slug: "foo", Title: "Foo", Description: "a go service", Tags: []string{"go"}},
		{Slug: "bar", Title: "Bar", Description: "a rust tool", Tags: []string{"rust"}},
		{Slug: "baz", Title: "Baz Dashboard", Description: "frontend for Foo", Tags: []string{"go", "web"}},
	}
}

func slugs(ps []content.Project) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Slug
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestApplyEmptyQueryReturnsAll(t *testing.T) {
	got := Apply(projects(), Query{})
	if !equal(slugs(got), []string{"foo", "bar", "baz"}) {
		t.Errorf("got %v, want all projects in order", slugs(got))
	}
}

func TestApplyTextMatchesTitleOrDescription(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"foo", []string{"foo", "baz"}},   // title of foo, description of baz
		{"FOO", []string{"foo", "baz"}},   // case-insensitive
		{"rust", []string{"bar"}},         // description only
		{"dashboard", []string{"baz"}},    // title only
		{"nonexistent", []string{}},       // no match
	}
	for _, tt := range tests {
		got := Apply(projects(), Query{Text: tt.text})
		if !equal(slugs(got), tt.want) {
			t.Errorf("Apply(text=%q) = %v, want %v", tt.text, slugs(got), tt.want)
		}
	}
}

// Whitespace in the query is part of the needle: padding must not be
// stripped into a broader match, and interior spaces must match
// literally.
func TestApplyWhitespaceIsSignificant(t *testing.T) {
	ps := []content.Project{
		{Slug: "django", Title: "Django", Description: "web framework"},
		{Slug: "svc", Title: "Foo", Description: "a go service"},
	}

	if got := Apply(ps, Query{Text: " go"}); len(got) != 1 || got[0].Slug != "svc" {
		t.Errorf("Apply(text=%q) = %v, want [svc]", " go", slugs(got))
	}
	if got := Apply(ps, Query{Text: "  django  "}); len(got) != 0 {
		t.Errorf("Apply(text=%q) = %v, want empty", "  django  ", slugs(got))
	}
	if got := Apply(ps, Query{Text: "go service"}); len(got) != 1 || got[0].Slug != "svc" {
		t.Errorf("Apply(text=%q) = %v, want [svc]", "go service", slugs(got))
	}
}

func TestApplyTagIntersection(t *testing.T) {
	got := Apply(projects(), Query{Tag: "go"})
	if !equal(slugs(got), []string{"foo", "baz"}) {
		t.Errorf("tag=go: got %v, want [foo baz]", slugs(got))
	}

	got = Apply(projects(), Query{Text: "dashboard", Tag: "go"})
	if !equal(slugs(got), []string{"baz"}) {
		t.Errorf("text+tag: got %v, want [baz]", slugs(got))
	}

	got = Apply(projects(), Query{Text: "rust", Tag: "go"})
	if len(got) != 0 {
		t.Errorf("disjoint text+tag: got %v, want empty", slugs(got))
	}
}

func TestApplySelectedTagScenario(t *testing.T) {
	ps := []content.Project{
		{Slug: "foo", Title: "Foo", Tags: []string{"go"}},
		{Slug: "bar", Title: "Bar", Tags: []string{"rust"}},
	}
	got := Apply(ps, Query{Text: "", Tag: "go"})
	if len(got) != 1 || got[0].Title != "Foo" {
		t.Errorf("got %v, want [Foo]", slugs(got))
	}
}

func TestApplyNoMatchReturnsEmptyNonNil(t *testing.T) {
	got := Apply(projects(), Query{Text: "zzz"})
	if got == nil {
		t.Error("Apply should return an empty slice, not nil")
	}
	if len(got) != 0 {
		t.Errorf("got %v, want empty", slugs(got))
	}
}

func TestTagsUnionSorted(t *testing.T) {
	got := Tags(projects())
	want := []string{"go", "rust", "web"}
	if !equal(got, want) {
		t.Errorf("Tags = %v, want %v", got, want)
	}
}

// Filtering by each tag individually, then with no tag, must together
// recover the whole project list.
func TestPerTagFiltersCoverAllProjects(t *testing.T) {
	ps := projects()
	covered := make(map[string]bool)
	for _, tag := range Tags(ps) {
		for _, p := range Apply(ps, Query{Tag: tag}) {
			covered[p.Slug] = true
		}
	}
	all := Apply(ps, Query{})
	if len(all) != len(ps) {
		t.Fatalf("no-tag filter returned %d of %d", len(all), len(ps))
	}
	for _, p := range ps {
		if !covered[p.Slug] {
			t.Errorf("project %s not covered by any tag filter", p.Slug)
		}
	}
}

func TestTagsEmptyInput(t *testing.T) {
	if got := Tags(nil); len(got) != 0 {
		t.Errorf("Tags(nil) = %v, want empty", got)
	}
}
