package java

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-oobind/internal/codegen/format"
	"github.com/cwbudde/go-oobind/internal/model"
)

func cbNativeParams(ifc model.Interface, cb model.CallbackFunction) string {
	parts := make([]string, 0, len(cb.Parameters))
	for _, p := range cb.Parameters {
		if p.Name == ifc.ArgName {
			parts = append(parts, "Pointer "+p.Name)
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

// writeInterface emits the public callback interface: each callback method
// minus the destroy function, with the opaque arg parameter dropped from
// every signature.
func writeInterface(f *format.Writer, lib *model.Library, ifc model.Interface) error {
	return f.Namespaced(lib.Name, func() error {
		if err := javadoc(f, ifc.Doc); err != nil {
			return err
		}
		if err := f.Writeln("public interface " + ifc.Name); err != nil {
			return err
		}
		return f.Blocked(func() error {
			for _, cb := range ifc.Callbacks() {
				if err := javadoc(f, cb.Doc); err != nil {
					return err
				}
				sig := fmt.Sprintf("%s %s(%s);", managedReturn(cb.ReturnType), cb.Name, cbManagedParams(ifc, cb))
				if err := f.Writeln(sig); err != nil {
					return err
				}
			}
			return nil
		})
	})
}

// writeAdapter emits the JNA Structure whose layout matches the C interface
// struct: one Callback field per function-pointer slot plus the opaque arg.
// The arg carries a registry token rather than a raw heap pointer (the JVM
// owns the implementation object, so the inner record lives in a static
// registry keyed by the token); the destroy trampoline removes the entry
// exactly once when native code releases the interface. The Callback
// objects are rooted in the adapter fields, which JNA pins for as long as
// native code holds the struct.
func writeAdapter(f *format.Writer, lib *model.Library, ifc model.Interface) error {
	return f.Namespaced(lib.Name, func() error {
		if err := imports(f); err != nil {
			return err
		}
		if err := f.Writeln(fmt.Sprintf("class %sNativeAdapter extends Structure", ifc.Name)); err != nil {
			return err
		}
		return f.Blocked(func() error {
			// One Callback subtype per function-pointer slot.
			for _, el := range ifc.Elements {
				switch el.Kind {
				case model.ElementCallback:
					cb := el.Callback
					if err := f.Writeln(fmt.Sprintf("public interface %s_callback extends Callback", cb.Name)); err != nil {
						return err
					}
					if err := f.Blocked(func() error {
						return f.Writeln(fmt.Sprintf("%s invoke(%s);", nativeReturn(cb.ReturnType), cbNativeParams(ifc, cb)))
					}); err != nil {
						return err
					}
					if err := f.Newline(); err != nil {
						return err
					}
				case model.ElementDestroy:
					if err := f.Writeln(fmt.Sprintf("public interface %s_callback extends Callback", el.Name)); err != nil {
						return err
					}
					if err := f.Blocked(func() error {
						return f.Writeln(fmt.Sprintf("void invoke(Pointer %s);", ifc.ArgName))
					}); err != nil {
						return err
					}
					if err := f.Newline(); err != nil {
						return err
					}
				}
			}

			// Marshalled fields, in ABI order.
			for _, el := range ifc.Elements {
				switch el.Kind {
				case model.ElementCallback:
					if err := f.Writeln(fmt.Sprintf("public %s_callback %s;", el.Callback.Name, el.Callback.Name)); err != nil {
						return err
					}
				case model.ElementDestroy:
					if err := f.Writeln(fmt.Sprintf("public %s_callback %s;", el.Name, el.Name)); err != nil {
						return err
					}
				case model.ElementArg:
					if err := f.Writeln(fmt.Sprintf("public Pointer %s;", el.Name)); err != nil {
						return err
					}
				}
			}

			if err := f.Newline(); err != nil {
				return err
			}
			if err := f.Writeln("private static final java.util.concurrent.atomic.AtomicLong nextToken = new java.util.concurrent.atomic.AtomicLong(1);"); err != nil {
				return err
			}
			if err := f.Writeln(fmt.Sprintf("private static final java.util.concurrent.ConcurrentHashMap<Long, %s> registry = new java.util.concurrent.ConcurrentHashMap<>();", ifc.Name)); err != nil {
				return err
			}

			if err := f.Newline(); err != nil {
				return err
			}
			if err := f.Writeln(fmt.Sprintf("%sNativeAdapter(%s impl)", ifc.Name, ifc.Name)); err != nil {
				return err
			}
			if err := f.Blocked(func() error {
				if err := f.Writeln("long token = nextToken.getAndIncrement();"); err != nil {
					return err
				}
				if err := f.Writeln("registry.put(token, impl);"); err != nil {
					return err
				}
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
						if err := f.Writeln(fmt.Sprintf("this.%s = new %s_callback()", el.Name, el.Name)); err != nil {
							return err
						}
						if err := f.BlockedWith(";", func() error {
							if err := f.Writeln(fmt.Sprintf("public void invoke(Pointer %s)", ifc.ArgName)); err != nil {
								return err
							}
							return f.Blocked(func() error {
								return f.Writeln(fmt.Sprintf("registry.remove(Pointer.nativeValue(%s));", ifc.ArgName))
							})
						}); err != nil {
							return err
						}
					case model.ElementArg:
						if err := f.Newline(); err != nil {
							return err
						}
						if err := f.Writeln(fmt.Sprintf("this.%s = new Pointer(token);", el.Name)); err != nil {
							return err
						}
					}
				}
				return nil
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
				names := make([]string, 0, len(ifc.Elements))
				for _, el := range ifc.Elements {
					switch el.Kind {
					case model.ElementCallback:
						names = append(names, "\""+el.Callback.Name+"\"")
					default:
						names = append(names, "\""+el.Name+"\"")
					}
				}
				return f.Writeln("return java.util.Arrays.asList(" + strings.Join(names, ", ") + ");")
			}); err != nil {
				return err
			}

			if err := f.Newline(); err != nil {
				return err
			}
			if err := f.Writeln(fmt.Sprintf("public static class ByValue extends %sNativeAdapter implements Structure.ByValue", ifc.Name)); err != nil {
				return err
			}
			return f.Blocked(func() error {
				if err := f.Writeln(fmt.Sprintf("ByValue(%s impl)", ifc.Name)); err != nil {
					return err
				}
				return f.Blocked(func() error {
					return f.Writeln("super(impl);")
				})
			})
		})
	})
}

// writeTrampoline emits the anonymous Callback bridging one slot: recover
// the implementation from the registry, unmarshal parameters, dispatch,
// marshal the result back.
func writeTrampoline(f *format.Writer, ifc model.Interface, cb model.CallbackFunction) error {
	if err := f.Writeln(fmt.Sprintf("this.%s = new %s_callback()", cb.Name, cb.Name)); err != nil {
		return err
	}
	return f.BlockedWith(";", func() error {
		if err := f.Writeln(fmt.Sprintf("public %s invoke(%s)", nativeReturn(cb.ReturnType), cbNativeParams(ifc, cb))); err != nil {
			return err
		}
		return f.Blocked(func() error {
			if err := f.Writeln(fmt.Sprintf("%s _inner = registry.get(Pointer.nativeValue(%s));", ifc.Name, ifc.ArgName)); err != nil {
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
				if err := f.Writeln(fmt.Sprintf("%s _%s = %s;", m.Managed, p.Name, m.FromNativeExpr(p.Name))); err != nil {
					return err
				}
				args = append(args, "_"+p.Name)
			}
			call := fmt.Sprintf("_inner.%s(%s)", cb.Name, strings.Join(args, ", "))
			if cb.ReturnType == nil {
				return f.Writeln(call + ";")
			}
			m := MapType(*cb.ReturnType)
			if m.ToNative == nil {
				return f.Writeln("return " + call + ";")
			}
			if err := f.Writeln(fmt.Sprintf("%s _result = %s;", m.Managed, call)); err != nil {
				return err
			}
			return f.Writeln("return " + m.ToNativeExpr("_result") + ";")
		})
	})
}
