package content

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/luis-eduardo-ferreira-galvao/portfolio/internal/walker"
)

// Library is the fully loaded, validated site content. It is built
// once per load and read-only afterwards.
type Library struct {
	Projects     []Project
	Certificates []Certificate

	// Files are the raw walker entries for everything under the
	// content dir, kept for change detection by the watcher.
	Files []walker.FileInfo
}

// LoadConfig controls where content is read from.
type LoadConfig struct {
	ContentDir string
	Include    []string // extra include globs for the project walk
	Exclude    []string // exclude globs, e.g. "**/draft-*.md"
}

const (
	projectsSubdir   = "projects"
	certificatesFile = "certificates.yml"
)

// Load reads all projects and certificates under cfg.ContentDir.
// Projects failing schema validation abort the load with a
// field-identifying error. The result is sorted newest-first by date,
// with featured projects ahead of the rest.
func Load(cfg LoadConfig) (*Library, error) {
	files, err := walker.Walk(walker.Config{
		RootDir: cfg.ContentDir,
		Include: cfg.Include,
		Exclude: cfg.Exclude,
	})
	if err != nil {
		return nil, fmt.Errorf("scanning content: %w", err)
	}

	lib := &Library{Files: files}

	for _, f := range files {
		if !strings.HasPrefix(f.RelPath, projectsSubdir+"/") || !strings.HasSuffix(f.RelPath, ".md") {
			continue
		}
		raw, err := os.ReadFile(f.Path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.RelPath, err)
		}
		slug := slugFromPath(f.RelPath)
		p, err := ParseProject(slug, f.RelPath, raw)
		if err != nil {
			return nil, err
		}
		lib.Projects = append(lib.Projects, p)
	}

	if err := checkSlugs(lib.Projects); err != nil {
		return nil, err
	}
	sortProjects(lib.Projects)

	certs, err := LoadCertificates(filepath.Join(cfg.ContentDir, certificatesFile))
	if err != nil {
		return nil, err
	}
	lib.Certificates = certs

	return lib, nil
}

// slugFromPath derives a project slug from its file name.
func slugFromPath(relPath string) string {
	base := filepath.Base(relPath)
	return strings.TrimSuffix(base, ".md")
}

// checkSlugs rejects duplicate slugs, which would collide on output paths.
func checkSlugs(projects []Project) error {
	seen := make(map[string]string, len(projects))
	for _, p := range projects {
		if prev, ok := seen[p.Slug]; ok {
			return fmt.Errorf("duplicate project slug %q (%s and %s)", p.Slug, prev, p.SourcePath)
		}
		seen[p.Slug] = p.SourcePath
	}
	return nil
}

// sortProjects orders featured projects first, then newest-first by
// date, with slug as a stable tiebreaker.
func sortProjects(projects []Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		if projects[i].Featured != projects[j].Featured {
			return projects[i].Featured
		}
		if !projects[i].Date.Equal(projects[j].Date) {
			return projects[i].Date.After(projects[j].Date)
		}
		return projects[i].Slug < projects[j].Slug
	})
}
