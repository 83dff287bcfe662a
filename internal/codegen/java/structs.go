package java

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-oobind/internal/codegen/format"
	"github.com/cwbudde/go-oobind/internal/model"
)

// writeStruct emits a JNA Structure with the C field order pinned by
// getFieldOrder, plus the ByValue/ByReference views JNA needs to pass it
// across the ABI either way.
func writeStruct(f *format.Writer, lib *model.Library, s model.Struct) error {
	return f.Namespaced(lib.Name, func() error {
		if err := imports(f); err != nil {
			return err
		}
		if err := javadoc(f, s.Doc); err != nil {
			return err
		}
		if err := f.Writeln("public class " + s.Name + " extends Structure"); err != nil {
			return err
		}
		return f.Blocked(func() error {
			for _, field := range s.Fields {
				if err := javadoc(f, field.Doc); err != nil {
					return err
				}
				m := MapType(field.Type)
				if err := f.Writeln(fmt.Sprintf("public %s %s;", m.FieldType(), field.Name)); err != nil {
					return err
				}
			}

			if err := f.Newline(); err != nil {
				return err
			}
			if err := f.Writeln("public " + s.Name + "()"); err != nil {
				return err
			}
			if err := f.Blocked(func() error { return nil }); err != nil {
				return err
			}

			if err := f.Newline(); err != nil {
				return err
			}
			if err := f.Writeln(s.Name + "(Pointer p)"); err != nil {
				return err
			}
			if err := f.Blocked(func() error {
				if err := f.Writeln("super(p);"); err != nil {
					return err
				}
				return f.Writeln("read();")
			}); err != nil {
				return err
			}

			if err := f.Newline(); err != nil {
				return err
			}
			if err := f.Writeln("@Override"); err != nil {
				return err
			}
			if err := f.Writeln("protected java.util.List<String> getFieldOrder()"); err != nil {
				return err
			}
			if err := f.Blocked(func() error {
				names := make([]string, 0, len(s.Fields))
				for _, field := range s.Fields {
					names = append(names, "\""+field.Name+"\"")
				}
				return f.Writeln("return java.util.Arrays.asList(" + strings.Join(names, ", ") + ");")
			}); err != nil {
				return err
			}

			if err := f.Newline(); err != nil {
				return err
			}
			if err := f.Writeln("public static class ByValue extends " + s.Name + " implements Structure.ByValue"); err != nil {
				return err
			}
			if err := f.Blocked(func() error { return nil }); err != nil {
				return err
			}

			if err := f.Newline(); err != nil {
				return err
			}
			if err := f.Writeln("public static class ByReference extends " + s.Name + " implements Structure.ByReference"); err != nil {
				return err
			}
			if err := f.Blocked(func() error { return nil }); err != nil {
				return err
			}

			if err := f.Newline(); err != nil {
				return err
			}
			if err := f.Writeln("ByValue byValue()"); err != nil {
				return err
			}
			return f.Blocked(func() error {
				if err := f.Writeln("ByValue copy = new ByValue();"); err != nil {
					return err
				}
				for _, field := range s.Fields {
					if err := f.Writeln(fmt.Sprintf("copy.%s = this.%s;", field.Name, field.Name)); err != nil {
						return err
					}
				}
				return f.Writeln("return copy;")
			})
		})
	})
}
