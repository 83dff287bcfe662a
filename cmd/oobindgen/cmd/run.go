package cmd

import (
	"fmt"

	"github.com/cwbudde/go-oobind/internal/driver"
	"github.com/cwbudde/go-oobind/internal/examplelib"
)

// runPipeline builds the example schema and drives every selected backend
// down to action.
func runPipeline(action driver.Action) error {
	lib, err := examplelib.BuildLib()
	if err != nil {
		return fmt.Errorf("building schema: %w", err)
	}
	cfg := driver.Config{
		OutputDir:    outputDir,
		Backends:     backendNames,
		Platforms:    platforms,
		ExtraFiles:   extraFiles,
		ToolchainCmd: toolchainCmd,
		Verbose:      verbose,
	}
	log := driver.NewLogger(verbose)
	return driver.Run(lib, cfg, action, log)
}
