// Package driver orchestrates the backend pipeline: resolve backend names,
// wipe each backend's output subtree, generate, then optionally run the
// external toolchain steps. Backends run serially; they write to disjoint
// directories and share no mutable state.
package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cwbudde/go-oobind/internal/codegen"
	"github.com/cwbudde/go-oobind/internal/codegen/cheader"
	"github.com/cwbudde/go-oobind/internal/codegen/csharp"
	"github.com/cwbudde/go-oobind/internal/codegen/java"
	"github.com/cwbudde/go-oobind/internal/model"
)

// Config selects what to run and where to write. Backends lists backend
// names; empty means all registered backends.
type Config struct {
	OutputDir    string
	Backends     []string
	Platforms    []string
	ExtraFiles   []string
	ToolchainCmd string
	Verbose      bool
}

// Action is how far down the generate/build/test/package chain to go. Each
// action implies the ones before it.
type Action int

const (
	ActionGenerate Action = iota
	ActionBuild
	ActionTest
	ActionPackage
)

// Logger writes driver diagnostics to stderr. Infof is suppressed unless
// verbose; Errorf always prints.
type Logger struct {
	w       io.Writer
	verbose bool
}

func NewLogger(verbose bool) *Logger {
	return &Logger{w: os.Stderr, verbose: verbose}
}

func (l *Logger) Infof(format string, args ...any) {
	if l.verbose {
		fmt.Fprintf(l.w, format+"\n", args...)
	}
}

func (l *Logger) Errorf(format string, args ...any) {
	fmt.Fprintf(l.w, "Error: "+format+"\n", args...)
}

// registry maps backend names to constructors. Dispatch is a fixed table;
// no dynamic registration exists.
func registry() map[string]codegen.Backend {
	return map[string]codegen.Backend{
		"c":      cheader.New(),
		"csharp": csharp.New(),
		"java":   java.New(),
	}
}

// BackendNames returns the registered backend names in emission order.
func BackendNames() []string {
	return []string{"c", "csharp", "java"}
}

func resolve(names []string) ([]codegen.Backend, error) {
	reg := registry()
	if len(names) == 0 {
		names = BackendNames()
	}
	out := make([]codegen.Backend, 0, len(names))
	for _, n := range names {
		b, ok := reg[n]
		if !ok {
			return nil, fmt.Errorf("unknown backend %q", n)
		}
		out = append(out, b)
	}
	return out, nil
}

// Run executes action for every selected backend against lib. Each
// backend's output subtree is wiped before regeneration so stale partial
// output never survives.
func Run(lib *model.Library, cfg Config, action Action, log *Logger) error {
	backends, err := resolve(cfg.Backends)
	if err != nil {
		return err
	}
	gencfg := codegen.Config{
		OutputDir:    cfg.OutputDir,
		Platforms:    cfg.Platforms,
		ExtraFiles:   cfg.ExtraFiles,
		ToolchainCmd: cfg.ToolchainCmd,
	}
	for _, b := range backends {
		sub := filepath.Join(cfg.OutputDir, b.Name())
		if err := os.RemoveAll(sub); err != nil {
			return fmt.Errorf("wiping %s: %w", sub, err)
		}
		log.Infof("%s: generating into %s", b.Name(), sub)
		if err := b.Generate(lib, gencfg); err != nil {
			return err
		}
		if err := copyExtraFiles(cfg.ExtraFiles, filepath.Join(sub, lib.Name)); err != nil {
			return err
		}
		steps := []struct {
			name string
			min  Action
			run  func(codegen.Config) error
		}{
			{"build", ActionBuild, b.Build},
			{"test", ActionTest, b.Test},
			{"package", ActionPackage, b.Package},
		}
		for _, step := range steps {
			if action < step.min {
				break
			}
			log.Infof("%s: %s", b.Name(), step.name)
			if err := step.run(gencfg); err != nil {
				if errors.Is(err, codegen.ErrToolchainSkipped) {
					log.Infof("%s: %s skipped", b.Name(), step.name)
					continue
				}
				return fmt.Errorf("%s %s: %w", b.Name(), step.name, err)
			}
		}
	}
	return nil
}

func copyExtraFiles(files []string, dir string) error {
	for _, src := range files {
		data, err := os.ReadFile(src)
		if err != nil {
			return fmt.Errorf("extra file %s: %w", src, err)
		}
		dst := filepath.Join(dir, filepath.Base(src))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return err
		}
	}
	return nil
}
