// Package cheader emits the canonical C ABI header every managed backend
// interoperates against. The header is a single file declaring enum
// constants, plain-data structures, interface structs (function pointers
// plus the opaque arg slot), iterator prototypes, and one prototype per
// native function, all in library statement order.
package cheader

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/go-oobind/internal/codegen"
	"github.com/cwbudde/go-oobind/internal/codegen/format"
	"github.com/cwbudde/go-oobind/internal/model"
)

// Backend emits the C header. It has no toolchain steps of its own; the
// header is consumed by the native build, which is an external
// collaborator.
type Backend struct{}

func New() *Backend { return &Backend{} }

func (b *Backend) Name() string { return "c" }

// OutputPath returns the header location beneath cfg.OutputDir for lib.
func OutputPath(cfg codegen.Config, lib *model.Library) string {
	return filepath.Join(cfg.OutputDir, "c", lib.Name, lib.Name+".h")
}

func (b *Backend) Generate(lib *model.Library, cfg codegen.Config) error {
	var buf bytes.Buffer
	if err := Render(&buf, lib); err != nil {
		return &codegen.EmissionError{Backend: b.Name(), Path: lib.Name + ".h", Err: err}
	}
	path := OutputPath(cfg, lib)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &codegen.EmissionError{Backend: b.Name(), Path: path, Err: err}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return &codegen.EmissionError{Backend: b.Name(), Path: path, Err: err}
	}
	return nil
}

func (b *Backend) Build(cfg codegen.Config) error   { return codegen.ErrToolchainSkipped }
func (b *Backend) Test(cfg codegen.Config) error    { return codegen.ErrToolchainSkipped }
func (b *Backend) Package(cfg codegen.Config) error { return codegen.ErrToolchainSkipped }

// Render writes the complete header text for lib.
func Render(w *bytes.Buffer, lib *model.Library) error {
	f := format.New(w, format.BraceNamespace)
	if err := f.License(lib.License); err != nil {
		return err
	}

	guard := codegen.ToMacro(lib.Name) + "_H"
	for _, line := range []string{
		"#ifndef " + guard,
		"#define " + guard,
		"",
		"#include <stdbool.h>",
		"#include <stdint.h>",
		"",
		"#ifdef __cplusplus",
		"extern \"C\" {",
		"#endif",
	} {
		if line == "" {
			if err := f.Newline(); err != nil {
				return err
			}
			continue
		}
		if err := f.Writeln(line); err != nil {
			return err
		}
	}

	for _, st := range lib.Statements {
		if err := f.Newline(); err != nil {
			return err
		}
		var err error
		switch st.Kind {
		case model.StmtEnumDef:
			err = writeEnum(f, st.Enum)
		case model.StmtStructDef:
			err = writeStruct(f, st.Struct)
		case model.StmtInterfaceDef:
			err = writeInterface(f, lib, st.Interface)
		case model.StmtIteratorDef:
			err = writeIterator(f, st.Iterator)
		case model.StmtClassDecl:
			err = f.Writeln(fmt.Sprintf("struct %s;", st.ClassDecl.Name))
		case model.StmtClassDef:
			// The class body's functions were already emitted as
			// native function statements; nothing extra appears in C.
			err = f.Writeln(fmt.Sprintf("// class %s", st.Class.Name))
		case model.StmtNativeFunctionDef:
			err = writeFunction(f, st.Function)
		}
		if err != nil {
			return err
		}
	}

	for _, line := range []string{
		"",
		"#ifdef __cplusplus",
		"}",
		"#endif",
		"",
		"#endif // " + guard,
	} {
		if line == "" {
			if err := f.Newline(); err != nil {
				return err
			}
			continue
		}
		if err := f.Writeln(line); err != nil {
			return err
		}
	}
	return nil
}

// CType renders the C spelling of t: fixed-width scalars map directly,
// strings are const char*, durations travel as integer counts (double for
// fractional seconds), enums are plain int, and every opaque reference is a
// named struct pointer.
func CType(t model.Type) string {
	switch t.Kind() {
	case model.KindBool:
		return "bool"
	case model.KindUint8:
		return "uint8_t"
	case model.KindSint8:
		return "int8_t"
	case model.KindUint16:
		return "uint16_t"
	case model.KindSint16:
		return "int16_t"
	case model.KindUint32:
		return "uint32_t"
	case model.KindSint32:
		return "int32_t"
	case model.KindUint64:
		return "uint64_t"
	case model.KindSint64:
		return "int64_t"
	case model.KindFloat:
		return "float"
	case model.KindDouble:
		return "double"
	case model.KindString:
		return "const char*"
	case model.KindDuration:
		if t.DurationUnit() == model.SecondsFloat {
			return "double"
		}
		return "uint64_t"
	case model.KindEnum:
		return "int"
	case model.KindStruct:
		return "struct " + string(t.StructID())
	case model.KindStructRef:
		return "struct " + string(t.StructID()) + "*"
	case model.KindClassRef:
		return "struct " + string(t.ClassID()) + "*"
	case model.KindInterface:
		return "struct " + string(t.InterfaceID())
	case model.KindIterator:
		return "struct " + string(t.IteratorID()) + "*"
	default:
		return "void"
	}
}

func cReturn(t *model.Type) string {
	if t == nil {
		return "void"
	}
	return CType(*t)
}

func writeEnum(f *format.Writer, e model.Enum) error {
	if e.Doc != "" {
		if err := f.Writeln("// " + e.Doc); err != nil {
			return err
		}
	}
	prefix := codegen.ToMacro(e.Name)
	for i, v := range e.Variants {
		if err := f.Writeln(fmt.Sprintf("#define %s_%s %d", prefix, codegen.ToMacro(v.Name), i)); err != nil {
			return err
		}
	}
	return nil
}

func writeStruct(f *format.Writer, s model.Struct) error {
	if s.Doc != "" {
		if err := f.Writeln("// " + s.Doc); err != nil {
			return err
		}
	}
	if err := f.Writeln("struct " + s.Name); err != nil {
		return err
	}
	return f.BlockedWith(";", func() error {
		for _, field := range s.Fields {
			if err := f.Writeln(fmt.Sprintf("%s %s;", CType(field.Type), field.Name)); err != nil {
				return err
			}
		}
		return nil
	})
}

// callbackParams renders a callback's C parameter list; the interface's arg
// parameter renders as void* regardless of its (ignored) schema type.
func callbackParams(ifc model.Interface, cb model.CallbackFunction) string {
	parts := make([]string, 0, len(cb.Parameters))
	for _, p := range cb.Parameters {
		if p.Name == ifc.ArgName {
			parts = append(parts, "void* "+p.Name)
			continue
		}
		parts = append(parts, CType(p.Type)+" "+p.Name)
	}
	return strings.Join(parts, ", ")
}

func writeInterface(f *format.Writer, lib *model.Library, ifc model.Interface) error {
	if ifc.Doc != "" {
		if err := f.Writeln("// " + ifc.Doc); err != nil {
			return err
		}
	}
	if err := f.Writeln("struct " + ifc.Name); err != nil {
		return err
	}
	return f.BlockedWith(";", func() error {
		for _, el := range ifc.Elements {
			switch el.Kind {
			case model.ElementCallback:
				cb := el.Callback
				line := fmt.Sprintf("%s (*%s)(%s);", cReturn(cb.ReturnType), cb.Name, callbackParams(ifc, cb))
				if err := f.Writeln(line); err != nil {
					return err
				}
			case model.ElementDestroy:
				if err := f.Writeln(fmt.Sprintf("void (*%s)(void* %s);", el.Name, ifc.ArgName)); err != nil {
					return err
				}
			case model.ElementArg:
				if err := f.Writeln(fmt.Sprintf("void* %s;", el.Name)); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func writeIterator(f *format.Writer, it model.Iterator) error {
	if it.Doc != "" {
		if err := f.Writeln("// " + it.Doc); err != nil {
			return err
		}
	}
	if err := f.Writeln(fmt.Sprintf("struct %s;", it.Name)); err != nil {
		return err
	}
	return f.Writeln(fmt.Sprintf("struct %s* %s(struct %s* it);", string(it.Item), it.Next, it.Name))
}

func writeFunction(f *format.Writer, fn model.NativeFunction) error {
	if fn.Doc != "" {
		if err := f.Writeln("// " + fn.Doc); err != nil {
			return err
		}
	}
	parts := make([]string, 0, len(fn.Parameters))
	for _, p := range fn.Parameters {
		parts = append(parts, CType(p.Type)+" "+p.Name)
	}
	return f.Writeln(fmt.Sprintf("%s %s(%s);", cReturn(fn.ReturnType), fn.Name, strings.Join(parts, ", ")))
}
