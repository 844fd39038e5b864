package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate config and content without building",
	Long: `Loads the config and every content file and reports the first schema
violation: missing front-matter fields, bad dates, invalid URLs, or
duplicate project slugs. Exits non-zero when anything is wrong.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	lib, err := loadContent(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("OK: %d projects, %d certificates\n", len(lib.Projects), len(lib.Certificates))
	return nil
}
