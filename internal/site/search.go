package site

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/luis-eduardo-ferreira-galvao/portfolio/internal/content"
)

// SearchEntry represents a single searchable project in the site's
// search index.
type SearchEntry struct {
	Path    string   `json:"path"`
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Tags    []string `json:"tags"`
	Content string   `json:"content"`
}

// maxIndexedContent caps the indexed body size per project.
const maxIndexedContent = 2000

// BuildSearchIndex converts the project list into search entries. The
// body markdown is flattened to a single line and truncated.
func BuildSearchIndex(projects []content.Project) []SearchEntry {
	entries := make([]SearchEntry, 0, len(projects))
	for _, p := range projects {
		body := strings.Join(strings.Fields(p.Body), " ")
		if len(body) > maxIndexedContent {
			body = body[:maxIndexedContent]
		}
		entries = append(entries, SearchEntry{
			Path:    "projects/" + p.Slug + ".html",
			Title:   p.Title,
			Summary: p.Description,
			Tags:    p.Tags,
			Content: body,
		})
	}
	return entries
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
