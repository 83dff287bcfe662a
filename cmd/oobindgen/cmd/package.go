package cmd

import (
	"github.com/cwbudde/go-oobind/internal/driver"
	"github.com/spf13/cobra"
)

var packageCmd = &cobra.Command{
	Use:   "package",
	Short: "Generate, compile, test, and package each backend's output",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runPipeline(driver.ActionPackage)
	},
}

func init() {
	rootCmd.AddCommand(packageCmd)
}
