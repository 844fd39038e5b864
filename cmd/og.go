package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/luis-eduardo-ferreira-galvao/portfolio/internal/images"
	"github.com/luis-eduardo-ferreira-galvao/portfolio/internal/progress"
)

var ogCmd = &cobra.Command{
	Use:   "og",
	Short: "Convert social-preview images without rebuilding the site",
	Long: `Runs only the image pipeline: every image under the source directory is
cover-cropped to the Open Graph canvas and encoded as WebP. Unchanged
files are skipped unless --force is given.`,
	RunE: runOG,
}

func init() {
	ogCmd.Flags().Bool("keep-going", false, "convert remaining files after a failure instead of aborting")
	ogCmd.Flags().Bool("force", false, "reconvert files even when unchanged")
	rootCmd.AddCommand(ogCmd)
}

func runOG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	keepGoing, _ := cmd.Flags().GetBool("keep-going")
	force, _ := cmd.Flags().GetBool("force")

	cache, err := openCache()
	if err != nil {
		return err
	}
	defer cache.Close()

	res, err := images.Run(imageOptions(cfg, keepGoing, force), cache, progress.NewReporter())
	for _, fail := range res.Failed {
		fmt.Fprintf(os.Stderr, "Error: %v\n", fail)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Converted %d images, %d unchanged\n", res.Converted, res.Skipped)
	return nil
}
