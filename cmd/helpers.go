package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/luis-eduardo-ferreira-galvao/portfolio/internal/buildcache"
	"github.com/luis-eduardo-ferreira-galvao/portfolio/internal/config"
	"github.com/luis-eduardo-ferreira-galvao/portfolio/internal/content"
	"github.com/luis-eduardo-ferreira-galvao/portfolio/internal/images"
	"github.com/luis-eduardo-ferreira-galvao/portfolio/internal/progress"
	"github.com/luis-eduardo-ferreira-galvao/portfolio/internal/site"
)

// cacheDir holds the build cache next to the config file.
const cacheDir = ".portfolio"

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `portfolio init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// loadContent loads the content library per the config.
func loadContent(cfg *config.Config) (*content.Library, error) {
	return content.Load(content.LoadConfig{
		ContentDir: cfg.Content.Dir,
		Include:    cfg.Content.Include,
		Exclude:    cfg.Content.Exclude,
	})
}

// openCache opens the incremental build cache under .portfolio/.
func openCache() (*buildcache.DB, error) {
	return buildcache.Open(filepath.Join(cacheDir, "cache.db"))
}

func siteMeta(cfg *config.Config) site.Meta {
	return site.Meta{
		Title:       cfg.Site.Title,
		Author:      cfg.Site.Author,
		Description: cfg.Site.Description,
		BaseURL:     cfg.Site.BaseURL,
	}
}

func imageOptions(cfg *config.Config, keepGoing, force bool) images.Options {
	return images.Options{
		SourceDir: cfg.Images.SourceDir,
		OutputDir: filepath.Join(cfg.Output.Dir, cfg.Images.OutputDir),
		Width:     cfg.Images.Width,
		Height:    cfg.Images.Height,
		Quality:   cfg.Images.Quality,
		KeepGoing: keepGoing,
		Force:     force,
		Verbose:   verbose,
	}
}

// buildSummary reports what one full build produced.
type buildSummary struct {
	Library *content.Library
	Pages   int
	Images  int
	Elapsed time.Duration
}

// runFullBuild runs the whole pipeline: load content, convert images,
// generate the site, and record the build in the cache. cache may be
// nil to skip incremental state entirely.
func runFullBuild(cfg *config.Config, cache *buildcache.DB, reporter progress.Reporter) (*buildSummary, error) {
	start := time.Now()

	lib, err := loadContent(cfg)
	if err != nil {
		return nil, err
	}

	var buildID string
	if cache != nil {
		if buildID, err = cache.StartBuild(start); err != nil {
			return nil, err
		}
	}

	imgRes, err := images.Run(imageOptions(cfg, false, false), cache, reporter)
	if err != nil {
		return nil, err
	}

	gen, err := site.NewGenerator(siteMeta(cfg), cfg.Output.Dir)
	if err != nil {
		return nil, err
	}
	pages, err := gen.Generate(lib)
	if err != nil {
		return nil, err
	}

	finish := time.Now()
	if cache != nil {
		if err := cache.FinishBuild(buildID, finish, pages, imgRes.Converted); err != nil {
			return nil, err
		}
	}

	err = gen.WriteManifest(site.Manifest{
		BuildID:      buildID,
		BuiltAt:      finish.UTC(),
		Pages:        pages,
		Images:       imgRes.Converted + imgRes.Skipped,
		Projects:     len(lib.Projects),
		Certificates: len(lib.Certificates),
	})
	if err != nil {
		return nil, err
	}

	return &buildSummary{
		Library: lib,
		Pages:   pages,
		Images:  imgRes.Converted,
		Elapsed: finish.Sub(start),
	}, nil
}
