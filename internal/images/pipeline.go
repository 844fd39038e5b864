// Package images implements the build-time social-preview pipeline:
// every image in the source directory is cover-cropped to the Open
// Graph canvas and encoded as WebP into the output directory.
package images

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"github.com/luis-eduardo-ferreira-galvao/portfolio/internal/buildcache"
	"github.com/luis-eduardo-ferreira-galvao/portfolio/internal/progress"
	"github.com/luis-eduardo-ferreira-galvao/portfolio/internal/walker"
)

// Options controls one pipeline run.
type Options struct {
	SourceDir string
	OutputDir string
	Width     int
	Height    int
	Quality   int

	// KeepGoing converts the remaining files after a per-file failure
	// instead of aborting the batch.
	KeepGoing bool

	// Force reconverts files even when the cache says they are
	// unchanged.
	Force bool

	Verbose bool
}

// Result summarizes a pipeline run.
type Result struct {
	Converted int
	Skipped   int // unchanged per the build cache
	Failed    []error
}

// Run converts every file under opts.SourceDir sequentially. A missing
// or empty source directory is not an error: the pipeline logs and
// reports nothing to do. The first per-file failure aborts the batch
// unless KeepGoing is set; partially written output is left in place.
// cache may be nil, in which case every file is converted.
func Run(opts Options, cache *buildcache.DB, reporter progress.Reporter) (Result, error) {
	var res Result

	files, err := walker.Walk(walker.Config{RootDir: opts.SourceDir})
	if err != nil {
		return res, fmt.Errorf("scanning %s: %w", opts.SourceDir, err)
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "og: no source images in %s, nothing to do\n", opts.SourceDir)
		return res, nil
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return res, fmt.Errorf("creating %s: %w", opts.OutputDir, err)
	}

	if reporter == nil {
		reporter = progress.Silent{}
	}
	reporter.Start("Converting images", len(files))
	defer reporter.Finish()

	for i, f := range files {
		reporter.Update(i+1, f.RelPath)

		outPath := filepath.Join(opts.OutputDir, OutputName(f.RelPath))

		if cache != nil && !opts.Force {
			ok, err := cache.UpToDate(f.RelPath, f.ContentHash)
			if err != nil {
				return res, err
			}
			if ok {
				if _, statErr := os.Stat(outPath); statErr == nil {
					res.Skipped++
					continue
				}
				// Cache says converted but output is gone: redo it.
			}
		}

		if err := convert(f.Path, outPath, opts); err != nil {
			err = fmt.Errorf("converting %s: %w", f.RelPath, err)
			if !opts.KeepGoing {
				return res, err
			}
			res.Failed = append(res.Failed, err)
			continue
		}

		if cache != nil {
			if err := cache.MarkConverted(f.RelPath, f.ContentHash, outPath); err != nil {
				return res, err
			}
		}
		res.Converted++

		if opts.Verbose {
			fmt.Fprintf(os.Stderr, "og: %s -> %s\n", f.RelPath, outPath)
		}
	}

	if len(res.Failed) > 0 {
		return res, fmt.Errorf("og: %d of %d images failed", len(res.Failed), len(files))
	}
	return res, nil
}

// OutputName maps a source image path to its output file name: the
// source extension is stripped and .webp appended. Subdirectories are
// flattened away, matching the flat output layout pages link against.
func OutputName(relPath string) string {
	base := filepath.Base(relPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".webp"
}

// convert cover-crops the source image to the target canvas and
// encodes it as lossy WebP.
func convert(srcPath, outPath string, opts Options) error {
	img, err := imaging.Open(srcPath, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("decoding: %w", err)
	}

	// Cover fit: fill the canvas, cropping overflow around the center.
	fitted := imaging.Fill(img, opts.Width, opts.Height, imaging.Center, imaging.Lanczos)

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	if err := webp.Encode(out, fitted, &webp.Options{Quality: float32(opts.Quality)}); err != nil {
		return fmt.Errorf("encoding webp: %w", err)
	}
	return nil
}
