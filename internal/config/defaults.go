package config

// Social-preview image dimensions follow the Open Graph convention
// used by the major link-preview scrapers.
const (
	DefaultOGWidth   = 1200
	DefaultOGHeight  = 630
	DefaultOGQuality = 82
)

// DefaultExcludes are glob patterns skipped when scanning content.
var DefaultExcludes = []string{
	"**/draft-*.md",
	"**/*.tmp",
	"**/.DS_Store",
}

// DefaultConfig returns a Config with sensible defaults for a freshly
// initialized site.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Title:   "Portfolio",
			BaseURL: "http://localhost:8080",
		},
		Content: ContentConfig{
			Dir:     "content",
			Include: []string{"**"},
			Exclude: DefaultExcludes,
		},
		Output: OutputConfig{
			Dir: "public",
		},
		Images: ImagesConfig{
			SourceDir: "assets/og",
			OutputDir: "og",
			Width:     DefaultOGWidth,
			Height:    DefaultOGHeight,
			Quality:   DefaultOGQuality,
		},
		Serve: ServeConfig{
			Port: 8080,
		},
	}
}
