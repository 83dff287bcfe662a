package codegen

import (
	"fmt"
	"os"
	"os/exec"
)

// ErrToolchainSkipped is returned by RunToolchain when no toolchain command
// is configured. The driver reports the step as skipped rather than failed.
var ErrToolchainSkipped = fmt.Errorf("toolchain step skipped: no --toolchain-cmd configured")

// RunToolchain invokes the configured external toolchain in dir with the
// given arguments, streaming its output. The native toolchains (msbuild,
// mvn) are external collaborators; without an explicit override the step is
// skipped, never silently pretended successful.
func RunToolchain(cfg Config, dir string, args ...string) error {
	if cfg.ToolchainCmd == "" {
		return ErrToolchainSkipped
	}
	cmd := exec.Command(cfg.ToolchainCmd, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %v: %w", cfg.ToolchainCmd, args, err)
	}
	return nil
}
