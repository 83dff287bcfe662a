package cmd

import (
	"github.com/cwbudde/go-oobind/internal/driver"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate binding source trees",
	Long: `Generate the C header and managed wrapper sources for every selected
backend. Each backend's output subtree is wiped before regeneration.

Examples:
  # Generate all backends into ./generated
  oobindgen generate

  # Only the C header and C# bindings, custom output root
  oobindgen generate -b c -b csharp -o out`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runPipeline(driver.ActionGenerate)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
