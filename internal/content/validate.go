package content

import (
	"fmt"
	"net/url"
)

// ValidationError reports a single malformed front-matter field. The
// build surfaces it verbatim, so it names both the file and the field.
type ValidationError struct {
	Path   string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: field %q: %s", e.Path, e.Field, e.Reason)
}

// validate checks the schema rules for project front-matter: title,
// description, date, and tags are required; githubUrl and liveUrl must
// be absolute URLs when present.
func (p Project) validate() error {
	if p.Title == "" {
		return &ValidationError{Path: p.SourcePath, Field: "title", Reason: "required"}
	}
	if p.Description == "" {
		return &ValidationError{Path: p.SourcePath, Field: "description", Reason: "required"}
	}
	if p.Date.IsZero() {
		return &ValidationError{Path: p.SourcePath, Field: "date", Reason: "required"}
	}
	if len(p.Tags) == 0 {
		return &ValidationError{Path: p.SourcePath, Field: "tags", Reason: "required"}
	}
	for i, tag := range p.Tags {
		if tag == "" {
			return &ValidationError{Path: p.SourcePath, Field: "tags", Reason: fmt.Sprintf("entry %d is empty", i)}
		}
	}
	if err := checkURL(p.GitHubURL); err != nil {
		return &ValidationError{Path: p.SourcePath, Field: "githubUrl", Reason: err.Error()}
	}
	if err := checkURL(p.LiveURL); err != nil {
		return &ValidationError{Path: p.SourcePath, Field: "liveUrl", Reason: err.Error()}
	}
	return nil
}

// checkURL accepts the empty string (optional field) and otherwise
// requires an absolute http(s) URL.
func checkURL(s string) error {
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid URL %q: must be absolute http(s)", s)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid URL %q: missing host", s)
	}
	return nil
}
