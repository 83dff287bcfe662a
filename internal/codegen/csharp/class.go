package csharp

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-oobind/internal/codegen/format"
	"github.com/cwbudde/go-oobind/internal/model"
)

// managedParams renders a host-facing parameter list, skipping the leading
// receiver parameter when skipReceiver is set.
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

// callNative emits the marshalled invocation of fn, assigning the raw
// result to _result when the function returns a value. receiver, when
// non-empty, is passed as the first native argument in place of the
// function's first declared parameter.
func callNative(f *format.Writer, fn model.NativeFunction, receiver string) error {
	params := fn.Parameters
	args := make([]string, 0, len(params))
	if receiver != "" {
		args = append(args, receiver)
		params = params[1:]
	}
	for _, p := range params {
		m := MapType(p.Type)
		// Strings ride the runtime's parameter marshalling directly.
		if m.Managed == "string" {
			args = append(args, p.Name)
			continue
		}
		args = append(args, m.ToNativeExpr(p.Name))
	}
	call := fmt.Sprintf("NativeFunctions.%s(%s)", fn.Name, strings.Join(args, ", "))
	if fn.ReturnType == nil {
		return f.Writeln(call + ";")
	}
	return f.Writeln("var _result = " + call + ";")
}

func returnConverted(f *format.Writer, t *model.Type) error {
	if t == nil {
		return nil
	}
	return f.Writeln("return " + MapType(*t).FromNativeExpr("_result") + ";")
}

// writeClass emits a disposable wrapper holding the opaque native handle.
// The first schema constructor becomes the C# constructor; any further
// constructors become static factories under their host names. Disposal
// invokes the native destructor exactly once; further use of the handle is
// undefined.
func writeClass(f *format.Writer, lib *model.Library, c model.Class) error {
	if err := usings(f); err != nil {
		return err
	}
	return f.Namespaced(lib.Name, func() error {
		if err := summary(f, c.Doc); err != nil {
			return err
		}
		decl := "public sealed class " + c.Name
		if c.Destructor != nil {
			decl += " : IDisposable"
		}
		if err := f.Writeln(decl); err != nil {
			return err
		}
		return f.Blocked(func() error {
			if err := f.Writeln("internal IntPtr self;"); err != nil {
				return err
			}
			if err := f.Newline(); err != nil {
				return err
			}
			if err := f.Writeln(fmt.Sprintf("internal %s(IntPtr self)", c.Name)); err != nil {
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
				if err := summary(f, ctor.Function.Doc); err != nil {
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
				if err := f.Writeln("public void Dispose()"); err != nil {
					return err
				}
				if err := f.Blocked(func() error {
					if err := f.Writeln("if (this.self == IntPtr.Zero) return;"); err != nil {
						return err
					}
					if err := f.Writeln(fmt.Sprintf("NativeFunctions.%s(this.self);", c.Destructor.Name)); err != nil {
						return err
					}
					return f.Writeln("this.self = IntPtr.Zero;")
				}); err != nil {
					return err
				}
			}

			for _, m := range c.Methods {
				if err := f.Newline(); err != nil {
					return err
				}
				if err := summary(f, m.Function.Doc); err != nil {
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
