package csharp

import (
	"fmt"

	"github.com/cwbudde/go-oobind/internal/model"
)

// TypeMap is the per-Type marshalling recipe the backend consults instead
// of switching on Kind at every emission site. Native is the spelling used
// in DllImport signatures and sequential-layout adapters, Managed the
// spelling of the public API, and the two converters wrap an expression on
// its way across the boundary (nil means identity).
type TypeMap struct {
	Native     string
	Managed    string
	ToNative   func(expr string) string
	FromNative func(expr string) string
}

// NativeParam returns the spelling used for a parameter of this type in a
// DllImport declaration. Strings ride the runtime's LPStr marshalling on
// the way in; everything else uses the layout spelling.
func (m TypeMap) NativeParam() string {
	if m.Managed == "string" {
		return "[MarshalAs(UnmanagedType.LPStr)] string"
	}
	return m.Native
}

// ToNativeExpr applies the to-native conversion, or returns expr unchanged.
func (m TypeMap) ToNativeExpr(expr string) string {
	if m.ToNative == nil {
		return expr
	}
	return m.ToNative(expr)
}

// FromNativeExpr applies the from-native conversion, or returns expr
// unchanged.
func (m TypeMap) FromNativeExpr(expr string) string {
	if m.FromNative == nil {
		return expr
	}
	return m.FromNative(expr)
}

func identity(native, managed string) TypeMap {
	return TypeMap{Native: native, Managed: managed}
}

// MapType returns the marshalling recipe for t. The same Type always yields
// the same recipe; this is what keeps ABI rendering consistent across runs.
func MapType(t model.Type) TypeMap {
	switch t.Kind() {
	case model.KindBool:
		return TypeMap{
			Native:     "byte",
			Managed:    "bool",
			ToNative:   func(e string) string { return fmt.Sprintf("Convert.ToByte(%s)", e) },
			FromNative: func(e string) string { return fmt.Sprintf("%s != 0", e) },
		}
	case model.KindUint8:
		return identity("byte", "byte")
	case model.KindSint8:
		return identity("sbyte", "sbyte")
	case model.KindUint16:
		return identity("ushort", "ushort")
	case model.KindSint16:
		return identity("short", "short")
	case model.KindUint32:
		return identity("uint", "uint")
	case model.KindSint32:
		return identity("int", "int")
	case model.KindUint64:
		return identity("ulong", "ulong")
	case model.KindSint64:
		return identity("long", "long")
	case model.KindFloat:
		return identity("float", "float")
	case model.KindDouble:
		return identity("double", "double")
	case model.KindString:
		return TypeMap{
			Native:     "IntPtr",
			Managed:    "string",
			ToNative:   func(e string) string { return fmt.Sprintf("Marshal.StringToHGlobalAnsi(%s)", e) },
			FromNative: func(e string) string { return fmt.Sprintf("Marshal.PtrToStringAnsi(%s)", e) },
		}
	case model.KindDuration:
		switch t.DurationUnit() {
		case model.Seconds:
			return TypeMap{
				Native:     "ulong",
				Managed:    "TimeSpan",
				ToNative:   func(e string) string { return fmt.Sprintf("(ulong)%s.TotalSeconds", e) },
				FromNative: func(e string) string { return fmt.Sprintf("TimeSpan.FromSeconds(%s)", e) },
			}
		case model.SecondsFloat:
			return TypeMap{
				Native:     "double",
				Managed:    "TimeSpan",
				ToNative:   func(e string) string { return fmt.Sprintf("%s.TotalSeconds", e) },
				FromNative: func(e string) string { return fmt.Sprintf("TimeSpan.FromSeconds(%s)", e) },
			}
		default:
			return TypeMap{
				Native:     "ulong",
				Managed:    "TimeSpan",
				ToNative:   func(e string) string { return fmt.Sprintf("(ulong)%s.TotalMilliseconds", e) },
				FromNative: func(e string) string { return fmt.Sprintf("TimeSpan.FromMilliseconds(%s)", e) },
			}
		}
	case model.KindEnum:
		name := string(t.EnumID())
		return TypeMap{
			Native:     "int",
			Managed:    name,
			ToNative:   func(e string) string { return fmt.Sprintf("(int)%s", e) },
			FromNative: func(e string) string { return fmt.Sprintf("(%s)%s", name, e) },
		}
	case model.KindStruct:
		name := string(t.StructID())
		return TypeMap{
			Native:     name + "Native",
			Managed:    name,
			ToNative:   func(e string) string { return fmt.Sprintf("%sNative.ToNative(%s)", name, e) },
			FromNative: func(e string) string { return fmt.Sprintf("%sNative.FromNative(%s)", name, e) },
		}
	case model.KindStructRef:
		// By-opaque-handle: the host sees only the pointer.
		return identity("IntPtr", "IntPtr")
	case model.KindClassRef:
		name := string(t.ClassID())
		return TypeMap{
			Native:     "IntPtr",
			Managed:    name,
			ToNative:   func(e string) string { return fmt.Sprintf("%s.self", e) },
			FromNative: func(e string) string { return fmt.Sprintf("new %s(%s)", name, e) },
		}
	case model.KindInterface:
		name := string(t.InterfaceID())
		return TypeMap{
			Native:   name + "NativeAdapter",
			Managed:  name,
			ToNative: func(e string) string { return fmt.Sprintf("new %sNativeAdapter(%s)", name, e) },
		}
	case model.KindIterator:
		name := string(t.IteratorID())
		return TypeMap{
			Native:     "IntPtr",
			Managed:    name,
			ToNative:   func(e string) string { return fmt.Sprintf("%s.self", e) },
			FromNative: func(e string) string { return fmt.Sprintf("new %s(%s)", name, e) },
		}
	default:
		return identity("IntPtr", "IntPtr")
	}
}
