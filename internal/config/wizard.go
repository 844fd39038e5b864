package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to the given path and
// scaffolds the content directories.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome! Let's set up your portfolio site.")
	fmt.Println()

	cfg := DefaultConfig()

	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: cfg.Site.Title,
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("title must not be empty")
			}
			return nil
		},
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}
	cfg.Site.Title = strings.TrimSpace(title)

	authorPrompt := promptui.Prompt{
		Label:   "Author name",
		Default: "",
	}
	author, err := authorPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("author: %w", err)
	}
	cfg.Site.Author = strings.TrimSpace(author)

	baseURLPrompt := promptui.Prompt{
		Label:   "Base URL (where the site will be published)",
		Default: cfg.Site.BaseURL,
	}
	baseURL, err := baseURLPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("base URL: %w", err)
	}
	cfg.Site.BaseURL = strings.TrimSpace(baseURL)

	portPrompt := promptui.Prompt{
		Label:   "Dev server port",
		Default: strconv.Itoa(cfg.Serve.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("port must be a number in [1, 65535]")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Serve.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, err
	}
	if err := Scaffold(cfg); err != nil {
		return nil, err
	}

	fmt.Println()
	fmt.Printf("Configuration written to %s\n", path)
	fmt.Printf("Add projects under %s and run `portfolio build`.\n", filepath.Join(cfg.Content.Dir, "projects"))
	return cfg, nil
}

// Scaffold creates the content and asset directories the build expects.
func Scaffold(cfg *Config) error {
	dirs := []string{
		filepath.Join(cfg.Content.Dir, "projects"),
		cfg.Images.SourceDir,
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	certPath := filepath.Join(cfg.Content.Dir, "certificates.yml")
	if _, err := os.Stat(certPath); os.IsNotExist(err) {
		if err := os.WriteFile(certPath, []byte(certificatesStub), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", certPath, err)
		}
	}
	return nil
}

const certificatesStub = `# Certificates shown in the coverflow carousel.
certificates: []
`
