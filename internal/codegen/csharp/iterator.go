package csharp

import (
	"fmt"

	"github.com/cwbudde/go-oobind/internal/codegen/format"
	"github.com/cwbudde/go-oobind/internal/model"
)

// writeIterator emits the adapter over the opaque native iterator handle.
// Each Next lazily marshals one item; a null pointer from the native side
// ends the sequence for good — the iterator is finite and non-restartable.
func writeIterator(f *format.Writer, lib *model.Library, it model.Iterator) error {
	if err := usings(f); err != nil {
		return err
	}
	item := string(it.Item)
	return f.Namespaced(lib.Name, func() error {
		if err := summary(f, it.Doc); err != nil {
			return err
		}
		if err := f.Writeln("public sealed class " + it.Name); err != nil {
			return err
		}
		return f.Blocked(func() error {
			if err := f.Writeln("internal IntPtr self;"); err != nil {
				return err
			}
			if err := f.Newline(); err != nil {
				return err
			}
			if err := f.Writeln(fmt.Sprintf("internal %s(IntPtr self)", it.Name)); err != nil {
				return err
			}
			if err := f.Blocked(func() error {
				return f.Writeln("this.self = self;")
			}); err != nil {
				return err
			}
			if err := f.Newline(); err != nil {
				return err
			}
			if err := f.Writeln(fmt.Sprintf("public %s? Next()", item)); err != nil {
				return err
			}
			return f.Blocked(func() error {
				if err := f.Writeln(fmt.Sprintf("var ptr = NativeFunctions.%s(this.self);", it.Next)); err != nil {
					return err
				}
				if err := f.Writeln("if (ptr == IntPtr.Zero) return null;"); err != nil {
					return err
				}
				return f.Writeln(fmt.Sprintf("return %sNative.FromNative(Marshal.PtrToStructure<%sNative>(ptr));", item, item))
			})
		})
	})
}
