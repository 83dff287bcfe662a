package java

import (
	"fmt"

	"github.com/cwbudde/go-oobind/internal/codegen/format"
	"github.com/cwbudde/go-oobind/internal/model"
)

// writeIterator emits the adapter over the opaque native iterator handle.
// next lazily marshals one item per call and returns null once the native
// side is exhausted; the sequence is finite and non-restartable.
func writeIterator(f *format.Writer, lib *model.Library, it model.Iterator) error {
	item := string(it.Item)
	return f.Namespaced(lib.Name, func() error {
		if err := imports(f); err != nil {
			return err
		}
		if err := javadoc(f, it.Doc); err != nil {
			return err
		}
		if err := f.Writeln("public final class " + it.Name); err != nil {
			return err
		}
		return f.Blocked(func() error {
			if err := f.Writeln("Pointer self;"); err != nil {
				return err
			}
			if err := f.Newline(); err != nil {
				return err
			}
			if err := f.Writeln(it.Name + "(Pointer self)"); err != nil {
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
			if err := f.Writeln(fmt.Sprintf("public %s next()", item)); err != nil {
				return err
			}
			return f.Blocked(func() error {
				if err := f.Writeln(fmt.Sprintf("Pointer ptr = NativeFunctions.INSTANCE.%s(this.self);", it.Next)); err != nil {
					return err
				}
				if err := f.Writeln("if (ptr == null) return null;"); err != nil {
					return err
				}
				return f.Writeln(fmt.Sprintf("return new %s(ptr);", item))
			})
		})
	})
}
