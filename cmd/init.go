package cmd

import (
	"github.com/spf13/cobra"

	"github.com/luis-eduardo-ferreira-galvao/portfolio/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up a new portfolio site with an interactive wizard",
	Long:  `Runs an interactive wizard that writes portfolio.yml and scaffolds the content directories.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
