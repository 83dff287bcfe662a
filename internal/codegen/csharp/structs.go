package csharp

import (
	"fmt"

	"github.com/cwbudde/go-oobind/internal/codegen/format"
	"github.com/cwbudde/go-oobind/internal/model"
)

// writeStruct emits the public value type plus its sequential-layout native
// twin. The twin's field types match the C layout bit-for-bit; ToNative and
// FromNative convert field by field.
func writeStruct(f *format.Writer, lib *model.Library, s model.Struct) error {
	if err := usings(f); err != nil {
		return err
	}
	return f.Namespaced(lib.Name, func() error {
		if err := summary(f, s.Doc); err != nil {
			return err
		}
		if err := f.Writeln("public struct " + s.Name); err != nil {
			return err
		}
		if err := f.Blocked(func() error {
			for _, field := range s.Fields {
				if err := summary(f, field.Doc); err != nil {
					return err
				}
				m := MapType(field.Type)
				if err := f.Writeln(fmt.Sprintf("public %s %s;", m.Managed, field.Name)); err != nil {
					return err
				}
			}
			return nil
		}); err != nil {
			return err
		}

		if err := f.Newline(); err != nil {
			return err
		}

		if err := f.Writeln("[StructLayout(LayoutKind.Sequential)]"); err != nil {
			return err
		}
		if err := f.Writeln("internal struct " + s.Name + "Native"); err != nil {
			return err
		}
		return f.Blocked(func() error {
			for _, field := range s.Fields {
				m := MapType(field.Type)
				if err := f.Writeln(fmt.Sprintf("internal %s %s;", m.Native, field.Name)); err != nil {
					return err
				}
			}

			if err := f.Newline(); err != nil {
				return err
			}
			if err := f.Writeln(fmt.Sprintf("internal static %sNative ToNative(%s value)", s.Name, s.Name)); err != nil {
				return err
			}
			if err := f.Blocked(func() error {
				if err := f.Writeln(fmt.Sprintf("var native = new %sNative();", s.Name)); err != nil {
					return err
				}
				for _, field := range s.Fields {
					m := MapType(field.Type)
					expr := m.ToNativeExpr("value." + field.Name)
					if err := f.Writeln(fmt.Sprintf("native.%s = %s;", field.Name, expr)); err != nil {
						return err
					}
				}
				return f.Writeln("return native;")
			}); err != nil {
				return err
			}

			if err := f.Newline(); err != nil {
				return err
			}
			if err := f.Writeln(fmt.Sprintf("internal static %s FromNative(%sNative native)", s.Name, s.Name)); err != nil {
				return err
			}
			return f.Blocked(func() error {
				if err := f.Writeln(fmt.Sprintf("var value = new %s();", s.Name)); err != nil {
					return err
				}
				for _, field := range s.Fields {
					m := MapType(field.Type)
					expr := m.FromNativeExpr("native." + field.Name)
					if err := f.Writeln(fmt.Sprintf("value.%s = %s;", field.Name, expr)); err != nil {
						return err
					}
				}
				return f.Writeln("return value;")
			})
		})
	})
}
