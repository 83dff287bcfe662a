// Package csharp emits C# wrappers over the C ABI: P/Invoke declarations,
// sequential-layout struct adapters, callback interface trampolines, and
// disposable class wrappers. The generated tree roots at
// <output>/csharp/<library.name>/ with one file per public type.
package csharp

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cwbudde/go-oobind/internal/codegen"
	"github.com/cwbudde/go-oobind/internal/codegen/format"
	"github.com/cwbudde/go-oobind/internal/model"
)

type Backend struct{}

func New() *Backend { return &Backend{} }

func (b *Backend) Name() string { return "csharp" }

func outputDir(cfg codegen.Config, lib *model.Library) string {
	return filepath.Join(cfg.OutputDir, "csharp", lib.Name)
}

// file renders one source file through render and writes it beneath dir. A
// license block always precedes the body.
func (b *Backend) file(lib *model.Library, dir, name string, render func(f *format.Writer) error) error {
	var buf bytes.Buffer
	f := format.New(&buf, format.BraceNamespace)
	err := f.License(lib.License)
	if err == nil {
		err = render(f)
	}
	if err != nil {
		return &codegen.EmissionError{Backend: b.Name(), Path: name, Err: err}
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return &codegen.EmissionError{Backend: b.Name(), Path: path, Err: err}
	}
	return nil
}

func (b *Backend) Generate(lib *model.Library, cfg codegen.Config) error {
	dir := outputDir(cfg, lib)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &codegen.EmissionError{Backend: b.Name(), Path: dir, Err: err}
	}
	for _, st := range lib.Statements {
		var err error
		switch st.Kind {
		case model.StmtEnumDef:
			e := st.Enum
			err = b.file(lib, dir, e.Name+".cs", func(f *format.Writer) error {
				return writeEnum(f, lib, e)
			})
		case model.StmtStructDef:
			s := st.Struct
			err = b.file(lib, dir, s.Name+".cs", func(f *format.Writer) error {
				return writeStruct(f, lib, s)
			})
		case model.StmtInterfaceDef:
			i := st.Interface
			err = b.file(lib, dir, i.Name+".cs", func(f *format.Writer) error {
				return writeInterface(f, lib, i)
			})
		case model.StmtIteratorDef:
			it := st.Iterator
			err = b.file(lib, dir, it.Name+".cs", func(f *format.Writer) error {
				return writeIterator(f, lib, it)
			})
		case model.StmtClassDef:
			c := st.Class
			err = b.file(lib, dir, c.Name+".cs", func(f *format.Writer) error {
				return writeClass(f, lib, c)
			})
		}
		if err != nil {
			return err
		}
	}
	return b.file(lib, dir, "NativeFunctions.cs", func(f *format.Writer) error {
		return writeNativeFunctions(f, lib)
	})
}

func (b *Backend) Build(cfg codegen.Config) error {
	return codegen.RunToolchain(cfg, filepath.Join(cfg.OutputDir, "csharp"), "build")
}

func (b *Backend) Test(cfg codegen.Config) error {
	return codegen.RunToolchain(cfg, filepath.Join(cfg.OutputDir, "csharp"), "test")
}

func (b *Backend) Package(cfg codegen.Config) error {
	return codegen.RunToolchain(cfg, filepath.Join(cfg.OutputDir, "csharp"), "pack")
}
