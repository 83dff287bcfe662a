package csharp

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-oobind/internal/codegen/format"
	"github.com/cwbudde/go-oobind/internal/model"
)

// cbNativeParams renders a callback's native signature; the interface's
// opaque arg parameter is always an IntPtr.
func cbNativeParams(ifc model.Interface, cb model.CallbackFunction) string {
	parts := make([]string, 0, len(cb.Parameters))
	for _, p := range cb.Parameters {
		if p.Name == ifc.ArgName {
			parts = append(parts, "IntPtr "+p.Name)
			continue
		}
		parts = append(parts, MapType(p.Type).Native+" "+p.Name)
	}
	return strings.Join(parts, ", ")
}

func cbManagedParams(ifc model.Interface, cb model.CallbackFunction) string {
	parts := make([]string, 0, len(cb.Parameters))
	for _, p := range cb.Parameters {
		if p.Name == ifc.ArgName {
			continue
		}
		parts = append(parts, MapType(p.Type).Managed+" "+p.Name)
	}
	return strings.Join(parts, ", ")
}

// writeInterface emits the public interface plus the sequential-layout
// native adapter that bridges it to the C ABI: one delegate field per
// callback, one for destroy, and the opaque arg slot holding the
// unmanaged-heap inner-data record. The delegates live in the adapter
// struct itself, which native code owns via the arg pointer, so the
// runtime cannot reclaim the trampolines while the interface is alive. The
// destroy trampoline is the sole release point of the inner record.
func writeInterface(f *format.Writer, lib *model.Library, ifc model.Interface) error {
	if err := usings(f); err != nil {
		return err
	}
	return f.Namespaced(lib.Name, func() error {
		if err := summary(f, ifc.Doc); err != nil {
			return err
		}
		if err := f.Writeln("public interface " + ifc.Name); err != nil {
			return err
		}
		if err := f.Blocked(func() error {
			for _, cb := range ifc.Callbacks() {
				if err := summary(f, cb.Doc); err != nil {
					return err
				}
				sig := fmt.Sprintf("%s %s(%s);", managedReturn(cb.ReturnType), cb.Name, cbManagedParams(ifc, cb))
				if err := f.Writeln(sig); err != nil {
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
		if err := f.Writeln(fmt.Sprintf("internal struct %sNativeAdapter", ifc.Name)); err != nil {
			return err
		}
		return f.Blocked(func() error {
			// Delegate types, one per function-pointer slot.
			for _, el := range ifc.Elements {
				switch el.Kind {
				case model.ElementCallback:
					cb := el.Callback
					sig := fmt.Sprintf("private delegate %s %s_delegate(%s);", nativeReturn(cb.ReturnType), cb.Name, cbNativeParams(ifc, cb))
					if err := f.Writeln(sig); err != nil {
						return err
					}
				case model.ElementDestroy:
					if err := f.Writeln(fmt.Sprintf("private delegate void %s_delegate(IntPtr %s);", el.Name, ifc.ArgName)); err != nil {
						return err
					}
				}
			}

			if err := f.Newline(); err != nil {
				return err
			}

			// Marshalled fields, in ABI order.
			for _, el := range ifc.Elements {
				switch el.Kind {
				case model.ElementCallback:
					if err := f.Writeln(fmt.Sprintf("private %s_delegate %s;", el.Callback.Name, el.Callback.Name)); err != nil {
						return err
					}
				case model.ElementDestroy:
					if err := f.Writeln(fmt.Sprintf("private %s_delegate %s;", el.Name, el.Name)); err != nil {
						return err
					}
				case model.ElementArg:
					if err := f.Writeln(fmt.Sprintf("private IntPtr %s;", el.Name)); err != nil {
						return err
					}
				}
			}

			if err := f.Newline(); err != nil {
				return err
			}

			// Constructor: roots the trampolines in the struct and moves
			// the inner record onto the unmanaged heap.
			if err := f.Writeln(fmt.Sprintf("internal %sNativeAdapter(%s impl)", ifc.Name, ifc.Name)); err != nil {
				return err
			}
			if err := f.Blocked(func() error {
				if err := f.Writeln("var inner = new InnerData();"); err != nil {
					return err
				}
				if err := f.Writeln("inner.impl = impl;"); err != nil {
					return err
				}
				if err := f.Newline(); err != nil {
					return err
				}
				for _, el := range ifc.Elements {
					switch el.Kind {
					case model.ElementCallback:
						name := el.Callback.Name
						if err := f.Writeln(fmt.Sprintf("this.%s = %sNativeAdapter.%s_cb;", name, ifc.Name, name)); err != nil {
							return err
						}
					case model.ElementDestroy:
						if err := f.Writeln(fmt.Sprintf("this.%s = %sNativeAdapter.%s_cb;", el.Name, ifc.Name, el.Name)); err != nil {
							return err
						}
					case model.ElementArg:
						if err := f.Writeln(fmt.Sprintf("this.%s = Marshal.AllocHGlobal(Marshal.SizeOf(inner));", el.Name)); err != nil {
							return err
						}
						if err := f.Writeln(fmt.Sprintf("Marshal.StructureToPtr(inner, this.%s, false);", el.Name)); err != nil {
							return err
						}
					}
				}
				return nil
			}); err != nil {
				return err
			}

			// Static trampolines.
			for _, el := range ifc.Elements {
				switch el.Kind {
				case model.ElementCallback:
					if err := f.Newline(); err != nil {
						return err
					}
					if err := writeTrampoline(f, ifc, el.Callback); err != nil {
						return err
					}
				case model.ElementDestroy:
					if err := f.Newline(); err != nil {
						return err
					}
					if err := f.Writeln(fmt.Sprintf("internal static void %s_cb(IntPtr %s)", el.Name, ifc.ArgName)); err != nil {
						return err
					}
					if err := f.Blocked(func() error {
						if err := f.Writeln(fmt.Sprintf("Marshal.DestroyStructure<InnerData>(%s);", ifc.ArgName)); err != nil {
							return err
						}
						return f.Writeln(fmt.Sprintf("Marshal.FreeHGlobal(%s);", ifc.ArgName))
					}); err != nil {
						return err
					}
				}
			}

			if err := f.Newline(); err != nil {
				return err
			}

			if err := f.Writeln("[StructLayout(LayoutKind.Sequential)]"); err != nil {
				return err
			}
			if err := f.Writeln("internal struct InnerData"); err != nil {
				return err
			}
			return f.Blocked(func() error {
				return f.Writeln(fmt.Sprintf("public %s impl;", ifc.Name))
			})
		})
	})
}

// writeTrampoline emits the static C-compatible function for cb: recover
// the inner record, unmarshal parameters, dispatch to the implementation,
// marshal the result back.
func writeTrampoline(f *format.Writer, ifc model.Interface, cb model.CallbackFunction) error {
	if err := f.Writeln(fmt.Sprintf("internal static %s %s_cb(%s)", nativeReturn(cb.ReturnType), cb.Name, cbNativeParams(ifc, cb))); err != nil {
		return err
	}
	return f.Blocked(func() error {
		if err := f.Writeln(fmt.Sprintf("var _inner = Marshal.PtrToStructure<InnerData>(%s);", ifc.ArgName)); err != nil {
			return err
		}
		args := make([]string, 0, len(cb.Parameters))
		for _, p := range cb.Parameters {
			if p.Name == ifc.ArgName {
				continue
			}
			m := MapType(p.Type)
			if m.FromNative == nil {
				args = append(args, p.Name)
				continue
			}
			if err := f.Writeln(fmt.Sprintf("var _%s = %s;", p.Name, m.FromNativeExpr(p.Name))); err != nil {
				return err
			}
			args = append(args, "_"+p.Name)
		}
		call := fmt.Sprintf("_inner.impl.%s(%s)", cb.Name, strings.Join(args, ", "))
		if cb.ReturnType == nil {
			return f.Writeln(call + ";")
		}
		m := MapType(*cb.ReturnType)
		if m.ToNative == nil {
			return f.Writeln("return " + call + ";")
		}
		if err := f.Writeln("var _result = " + call + ";"); err != nil {
			return err
		}
		return f.Writeln("return " + m.ToNativeExpr("_result") + ";")
	})
}
