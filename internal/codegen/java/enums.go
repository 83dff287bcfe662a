package java

import (
	"github.com/cwbudde/go-oobind/internal/codegen/format"
	"github.com/cwbudde/go-oobind/internal/model"
)

func imports(f *format.Writer) error {
	for _, line := range []string{
		"import com.sun.jna.Callback;",
		"import com.sun.jna.Native;",
		"import com.sun.jna.Pointer;",
		"import com.sun.jna.Structure;",
	} {
		if err := f.Writeln(line); err != nil {
			return err
		}
	}
	return f.Newline()
}

func javadoc(f *format.Writer, doc string) error {
	if doc == "" {
		return nil
	}
	if err := f.Writeln("/**"); err != nil {
		return err
	}
	if err := f.Writeln(" * " + doc); err != nil {
		return err
	}
	return f.Writeln(" */")
}

// writeEnum emits a Java enum whose ordinal is the ABI integer value, with
// explicit toNative/fromNative helpers so the positional contract is
// visible at every call site.
func writeEnum(f *format.Writer, lib *model.Library, e model.Enum) error {
	return f.Namespaced(lib.Name, func() error {
		if err := javadoc(f, e.Doc); err != nil {
			return err
		}
		if err := f.Writeln("public enum " + e.Name); err != nil {
			return err
		}
		return f.Blocked(func() error {
			for i, v := range e.Variants {
				if err := javadoc(f, v.Doc); err != nil {
					return err
				}
				sep := ","
				if i == len(e.Variants)-1 {
					sep = ";"
				}
				if err := f.Writeln(v.Name + sep); err != nil {
					return err
				}
			}
			if err := f.Newline(); err != nil {
				return err
			}
			if err := f.Writeln("int toNative()"); err != nil {
				return err
			}
			if err := f.Blocked(func() error {
				return f.Writeln("return this.ordinal();")
			}); err != nil {
				return err
			}
			if err := f.Newline(); err != nil {
				return err
			}
			if err := f.Writeln("static " + e.Name + " fromNative(int value)"); err != nil {
				return err
			}
			return f.Blocked(func() error {
				return f.Writeln("return " + e.Name + ".values()[value];")
			})
		})
	})
}
