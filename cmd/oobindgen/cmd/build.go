package cmd

import (
	"github.com/cwbudde/go-oobind/internal/driver"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate, then compile each backend's output",
	Long: `Generate the binding sources and then invoke the external toolchain's
compile step for each backend. Without --toolchain-cmd the compile step is
skipped with a notice, since the native toolchains (msbuild, mvn) are
external collaborators.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runPipeline(driver.ActionBuild)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
