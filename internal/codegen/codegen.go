// Package codegen defines the contract every backend generator satisfies
// and the shared configuration the driver hands to each one. Concrete
// backends live in the cheader, csharp and java subpackages.
package codegen

import (
	"fmt"

	"github.com/cwbudde/go-oobind/internal/model"
)

// Config is the per-invocation configuration a backend receives. Backends
// write only beneath OutputDir and never share mutable state with each
// other.
type Config struct {
	// OutputDir is the root beneath which the backend creates its
	// <language>/<library.name>/ tree.
	OutputDir string
	// Platforms names the native shared-object platforms the generated
	// build files should reference.
	Platforms []string
	// ExtraFiles are copied verbatim into the generated tree.
	ExtraFiles []string
	// ToolchainCmd overrides the external toolchain invoked by Build,
	// Test and Package. Empty means those steps are skipped.
	ToolchainCmd string
}

// Backend is the uniform capability set the driver dispatches over.
// Generate walks the immutable library once in statement order; Build,
// Test and Package shell out to the target toolchain. The C header backend
// has no toolchain steps and always returns ErrToolchainSkipped from them.
type Backend interface {
	Name() string
	Generate(lib *model.Library, cfg Config) error
	Build(cfg Config) error
	Test(cfg Config) error
	Package(cfg Config) error
}

// EmissionError wraps a failure that occurred while writing generated
// output. Partial output may remain on disk; the driver wipes the target
// directory before regeneration.
type EmissionError struct {
	Backend string
	Path    string
	Err     error
}

func (e *EmissionError) Error() string {
	return fmt.Sprintf("%s: emitting %s: %v", e.Backend, e.Path, e.Err)
}

func (e *EmissionError) Unwrap() error { return e.Err }
