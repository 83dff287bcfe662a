package java

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-oobind/internal/codegen/format"
	"github.com/cwbudde/go-oobind/internal/model"
)

func nativeParams(fn model.NativeFunction) string {
	parts := make([]string, 0, len(fn.Parameters))
	for _, p := range fn.Parameters {
		parts = append(parts, MapType(p.Type).Native+" "+p.Name)
	}
	return strings.Join(parts, ", ")
}

// writeNativeFunctions emits the JNA library interface every wrapper calls
// through: one method per registered native function plus one per iterator
// next function. Loading is eager; a missing shared object fails at class
// initialization rather than first call.
func writeNativeFunctions(f *format.Writer, lib *model.Library) error {
	return f.Namespaced(lib.Name, func() error {
		if err := imports(f); err != nil {
			return err
		}
		if err := f.Writeln("interface NativeFunctions extends com.sun.jna.Library"); err != nil {
			return err
		}
		return f.Blocked(func() error {
			if err := f.Writeln(fmt.Sprintf("NativeFunctions INSTANCE = Native.load(\"%s\", NativeFunctions.class);", lib.Name)); err != nil {
				return err
			}
			for _, fn := range lib.Functions() {
				if err := f.Newline(); err != nil {
					return err
				}
				if err := f.Writeln(fmt.Sprintf("%s %s(%s);", nativeReturn(fn.ReturnType), fn.Name, nativeParams(fn))); err != nil {
					return err
				}
			}
			for _, it := range lib.Iterators() {
				if err := f.Newline(); err != nil {
					return err
				}
				if err := f.Writeln(fmt.Sprintf("Pointer %s(Pointer it);", it.Next)); err != nil {
					return err
				}
			}
			return nil
		})
	})
}
