package java

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-oobind/internal/codegen/format"
	"github.com/cwbudde/go-oobind/internal/model"
)

func managedParams(fn model.NativeFunction, skipReceiver bool) string {
	params := fn.Parameters
	if skipReceiver {
		params = params[1:]
	}
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, MapType(p.Type).Managed+" "+p.Name)
	}
	return strings.Join(parts, ", ")
}

// callNative emits the marshalled invocation of fn, binding the raw result
// to _result when the function returns a value.
func callNative(f *format.Writer, fn model.NativeFunction, receiver string) error {
	params := fn.Parameters
	args := make([]string, 0, len(params))
	if receiver != "" {
		args = append(args, receiver)
		params = params[1:]
	}
	for _, p := range params {
		args = append(args, MapType(p.Type).ToNativeExpr(p.Name))
	}
	call := fmt.Sprintf("NativeFunctions.INSTANCE.%s(%s)", fn.Name, strings.Join(args, ", "))
	if fn.ReturnType == nil {
		return f.Writeln(call + ";")
	}
	return f.Writeln(fmt.Sprintf("%s _result = %s;", nativeReturn(fn.ReturnType), call))
}

func returnConverted(f *format.Writer, t *model.Type) error {
	if t == nil {
		return nil
	}
	return f.Writeln("return " + MapType(*t).FromNativeExpr("_result") + ";")
}

// writeClass emits an AutoCloseable wrapper around the opaque native
// handle. close invokes the native destructor exactly once; further use of
// the handle is undefined.
func writeClass(f *format.Writer, lib *model.Library, c model.Class) error {
	return f.Namespaced(lib.Name, func() error {
		if err := imports(f); err != nil {
			return err
		}
		if err := javadoc(f, c.Doc); err != nil {
			return err
		}
		decl := "public final class " + c.Name
		if c.Destructor != nil {
			decl += " implements AutoCloseable"
		}
		if err := f.Writeln(decl); err != nil {
			return err
		}
		return f.Blocked(func() error {
			if err := f.Writeln("Pointer self;"); err != nil {
				return err
			}
			if err := f.Newline(); err != nil {
				return err
			}
			if err := f.Writeln(c.Name + "(Pointer self)"); err != nil {
				return err
			}
			if err := f.Blocked(func() error {
				return f.Writeln("this.self = self;")
			}); err != nil {
				return err
			}

			for i, ctor := range c.Constructors {
				if err := f.Newline(); err != nil {
					return err
				}
				if err := javadoc(f, ctor.Function.Doc); err != nil {
					return err
				}
				if i == 0 {
					if err := f.Writeln(fmt.Sprintf("public %s(%s)", c.Name, managedParams(ctor.Function, false))); err != nil {
						return err
					}
					if err := f.Blocked(func() error {
						if err := callNative(f, ctor.Function, ""); err != nil {
							return err
						}
						return f.Writeln("this.self = _result;")
					}); err != nil {
						return err
					}
					continue
				}
				if err := f.Writeln(fmt.Sprintf("public static %s %s(%s)", c.Name, ctor.Name, managedParams(ctor.Function, false))); err != nil {
					return err
				}
				if err := f.Blocked(func() error {
					if err := callNative(f, ctor.Function, ""); err != nil {
						return err
					}
					return f.Writeln(fmt.Sprintf("return new %s(_result);", c.Name))
				}); err != nil {
					return err
				}
			}

			if c.Destructor != nil {
				if err := f.Newline(); err != nil {
					return err
				}
				if err := f.Writeln("@Override"); err != nil {
					return err
				}
				if err := f.Writeln("public void close()"); err != nil {
					return err
				}
				if err := f.Blocked(func() error {
					if err := f.Writeln("if (this.self == null) return;"); err != nil {
						return err
					}
					if err := f.Writeln(fmt.Sprintf("NativeFunctions.INSTANCE.%s(this.self);", c.Destructor.Name)); err != nil {
						return err
					}
					return f.Writeln("this.self = null;")
				}); err != nil {
					return err
				}
			}

			for _, m := range c.Methods {
				if err := f.Newline(); err != nil {
					return err
				}
				if err := javadoc(f, m.Function.Doc); err != nil {
					return err
				}
				sig := fmt.Sprintf("public %s %s(%s)", managedReturn(m.Function.ReturnType), m.Name, managedParams(m.Function, true))
				if err := f.Writeln(sig); err != nil {
					return err
				}
				if err := f.Blocked(func() error {
					if err := callNative(f, m.Function, "this.self"); err != nil {
						return err
					}
					return returnConverted(f, m.Function.ReturnType)
				}); err != nil {
					return err
				}
			}
			return nil
		})
	})
}
