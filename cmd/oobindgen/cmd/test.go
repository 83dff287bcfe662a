package cmd

import (
	"github.com/cwbudde/go-oobind/internal/driver"
	"github.com/spf13/cobra"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Generate, compile, and run each backend's test suite",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runPipeline(driver.ActionTest)
	},
}

func init() {
	rootCmd.AddCommand(testCmd)
}
