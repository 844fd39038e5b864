package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/luis-eduardo-ferreira-galvao/portfolio/internal/progress"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the static site into the output directory",
	Long: `Loads and validates all content, converts social-preview images, and
writes the complete static site. Image conversion is incremental: files
unchanged since the previous build are skipped.`,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cache, err := openCache()
	if err != nil {
		return err
	}
	defer cache.Close()

	summary, err := runFullBuild(cfg, cache, progress.NewReporter())
	if err != nil {
		return err
	}

	fmt.Printf("Built %d pages (%d projects, %d certificates, %d images converted) in %s\n",
		summary.Pages, len(summary.Library.Projects), len(summary.Library.Certificates),
		summary.Images, summary.Elapsed.Round(time.Millisecond))
	return nil
}
