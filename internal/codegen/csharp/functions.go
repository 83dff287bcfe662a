package csharp

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-oobind/internal/codegen/format"
	"github.com/cwbudde/go-oobind/internal/model"
)

func nativeReturn(t *model.Type) string {
	if t == nil {
		return "void"
	}
	return MapType(*t).Native
}

func managedReturn(t *model.Type) string {
	if t == nil {
		return "void"
	}
	return MapType(*t).Managed
}

func nativeParams(fn model.NativeFunction) string {
	parts := make([]string, 0, len(fn.Parameters))
	for _, p := range fn.Parameters {
		parts = append(parts, MapType(p.Type).NativeParam()+" "+p.Name)
	}
	return strings.Join(parts, ", ")
}

// writeNativeFunctions emits the single internal class of DllImport
// declarations every wrapper calls through: one entry per registered native
// function plus one per iterator next function.
func writeNativeFunctions(f *format.Writer, lib *model.Library) error {
	if err := usings(f); err != nil {
		return err
	}
	return f.Namespaced(lib.Name, func() error {
		if err := f.Writeln("internal static class NativeFunctions"); err != nil {
			return err
		}
		return f.Blocked(func() error {
			first := true
			emit := func(ret, name, params string) error {
				if !first {
					if err := f.Newline(); err != nil {
						return err
					}
				}
				first = false
				if err := f.Writeln(fmt.Sprintf("[DllImport(\"%s\")]", lib.Name)); err != nil {
					return err
				}
				return f.Writeln(fmt.Sprintf("internal static extern %s %s(%s);", ret, name, params))
			}
			for _, fn := range lib.Functions() {
				if err := emit(nativeReturn(fn.ReturnType), fn.Name, nativeParams(fn)); err != nil {
					return err
				}
			}
			for _, it := range lib.Iterators() {
				if err := emit("IntPtr", it.Next, "IntPtr it"); err != nil {
					return err
				}
			}
			return nil
		})
	})
}
