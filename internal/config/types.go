package config

// Config is the top-level site configuration, corresponding to
// portfolio.yml.
type Config struct {
	Site    SiteConfig    `yaml:"site" koanf:"site"`
	Content ContentConfig `yaml:"content" koanf:"content"`
	Output  OutputConfig  `yaml:"output" koanf:"output"`
	Images  ImagesConfig  `yaml:"images" koanf:"images"`
	Serve   ServeConfig   `yaml:"serve" koanf:"serve"`
}

// SiteConfig holds the site-wide metadata rendered into every page.
type SiteConfig struct {
	Title       string `yaml:"title" koanf:"title"`
	Author      string `yaml:"author" koanf:"author"`
	Description string `yaml:"description" koanf:"description"`
	BaseURL     string `yaml:"base_url" koanf:"base_url"`
}

// ContentConfig controls where content is read from.
type ContentConfig struct {
	Dir     string   `yaml:"dir" koanf:"dir"`
	Include []string `yaml:"include" koanf:"include"`
	Exclude []string `yaml:"exclude" koanf:"exclude"`
}

// OutputConfig controls where the generated site is written.
type OutputConfig struct {
	Dir string `yaml:"dir" koanf:"dir"`
}

// ImagesConfig holds the social-preview image pipeline settings.
type ImagesConfig struct {
	SourceDir string `yaml:"source_dir" koanf:"source_dir"`
	OutputDir string `yaml:"output_dir" koanf:"output_dir"` // relative to Output.Dir
	Width     int    `yaml:"width" koanf:"width"`
	Height    int    `yaml:"height" koanf:"height"`
	Quality   int    `yaml:"quality" koanf:"quality"`
}

// ServeConfig holds dev server settings.
type ServeConfig struct {
	Port     int  `yaml:"port" koanf:"port"`
	AllowAll bool `yaml:"allow_all" koanf:"allow_all"` // allow all CORS origins
}
