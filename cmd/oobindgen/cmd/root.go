package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	outputDir    string
	backendNames []string
	platforms    []string
	extraFiles   []string
	toolchainCmd string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "oobindgen",
	Short: "Cross-language binding generator for C-ABI native libraries",
	Long: `go-oobind generates idiomatic host-language wrappers (C#, Java, plus the
canonical C header) from a programmatic, validated schema of a native
library's API.

The schema is authored in Go against the builder API; there is no textual
IDL. This binary drives the pipeline for the built-in example schema:

  schema -> LibraryBuilder -> Library -> backend generators -> source tree

Real projects embed the builder and driver packages and register their own
schema the same way.`,
	Version: Version,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", "generated", "output directory root")
	rootCmd.PersistentFlags().StringSliceVarP(&backendNames, "backend", "b", nil, "backends to run (c, csharp, java); default all")
	rootCmd.PersistentFlags().StringSliceVar(&platforms, "platform", nil, "native shared-object platforms to reference")
	rootCmd.PersistentFlags().StringSliceVar(&extraFiles, "extra-file", nil, "extra files copied into each generated tree")
	rootCmd.PersistentFlags().StringVar(&toolchainCmd, "toolchain-cmd", "", "external toolchain command for build/test/package steps")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
