package content

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const frontMatterDelim = "---"

// frontMatter is the raw YAML header of a project file, before
// validation and date parsing.
type frontMatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Date        string   `yaml:"date"`
	Tags        []string `yaml:"tags"`
	HeroImage   string   `yaml:"heroImage"`
	OGImage     string   `yaml:"ogImage"`
	GitHubURL   string   `yaml:"githubUrl"`
	LiveURL     string   `yaml:"liveUrl"`
	Featured    bool     `yaml:"featured"`
}

// dateFormats are the accepted front-matter date layouts, tried in order.
var dateFormats = []string{"2006-01-02", time.RFC3339}

// ParseProject parses a project document: a YAML front-matter block
// delimited by "---" lines, followed by a markdown body. The slug is
// taken from the caller (derived from the filename).
func ParseProject(slug, sourcePath string, raw []byte) (Project, error) {
	fmRaw, body, err := splitFrontMatter(string(raw))
	if err != nil {
		return Project{}, fmt.Errorf("%s: %w", sourcePath, err)
	}

	var fm frontMatter
	if err := yaml.Unmarshal([]byte(fmRaw), &fm); err != nil {
		return Project{}, fmt.Errorf("%s: parsing front-matter: %w", sourcePath, err)
	}

	p := Project{
		Slug:        slug,
		Title:       fm.Title,
		Description: fm.Description,
		Tags:        fm.Tags,
		HeroImage:   fm.HeroImage,
		OGImage:     fm.OGImage,
		GitHubURL:   fm.GitHubURL,
		LiveURL:     fm.LiveURL,
		Featured:    fm.Featured,
		Body:        body,
		SourcePath:  sourcePath,
	}

	if fm.Date != "" {
		date, err := parseDate(fm.Date)
		if err != nil {
			return Project{}, &ValidationError{Path: sourcePath, Field: "date", Reason: err.Error()}
		}
		p.Date = date
	}

	if err := p.validate(); err != nil {
		return Project{}, err
	}
	return p, nil
}

// splitFrontMatter separates the YAML header from the markdown body.
// The document must open with a "---" line and contain a closing one.
func splitFrontMatter(doc string) (header, body string, err error) {
	doc = strings.TrimPrefix(doc, "\ufeff")
	lines := strings.SplitAfter(doc, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r\n") != frontMatterDelim {
		return "", "", fmt.Errorf("missing front-matter: document must start with %q", frontMatterDelim)
	}

	var b strings.Builder
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r\n") == frontMatterDelim {
			return b.String(), strings.Join(lines[i+1:], ""), nil
		}
		b.WriteString(lines[i])
	}
	return "", "", fmt.Errorf("unterminated front-matter: closing %q not found", frontMatterDelim)
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q (want YYYY-MM-DD)", s)
}
