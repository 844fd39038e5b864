package content

import "time"

// Project is a single portfolio project, authored as a markdown file
// with YAML front-matter under the content directory. Projects are
// immutable once loaded.
type Project struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Tags        []string  `json:"tags"`
	HeroImage   string    `json:"hero_image,omitempty"`
	OGImage     string    `json:"og_image,omitempty"`
	GitHubURL   string    `json:"github_url,omitempty"`
	LiveURL     string    `json:"live_url,omitempty"`
	Featured    bool      `json:"featured"`

	// Body is the markdown below the front-matter, rendered on the
	// project's detail page.
	Body string `json:"-"`

	// SourcePath is the file the project was loaded from, relative to
	// the content directory. Used in validation error messages.
	SourcePath string `json:"-"`
}

// HasTag reports whether the project carries the given tag.
func (p Project) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Certificate is one entry of the certificates list, supplied whole to
// the carousel.
type Certificate struct {
	ID          int    `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Issuer      string `json:"issuer" yaml:"issuer"`
	Description string `json:"description" yaml:"description"`
	Date        string `json:"date" yaml:"date"`
	Image       string `json:"image,omitempty" yaml:"image"`
	Link        string `json:"link,omitempty" yaml:"link"`
}
