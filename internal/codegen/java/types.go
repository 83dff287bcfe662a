package java

import (
	"fmt"

	"github.com/cwbudde/go-oobind/internal/model"
)

// TypeMap is the per-Type marshalling recipe for the JNA backend. Native is
// the spelling used in the JNA library interface, Managed the public API
// spelling, and Field the spelling of a JNA Structure field of this type.
// The converters wrap an expression crossing the boundary (nil means
// identity).
type TypeMap struct {
	Native     string
	Managed    string
	Field      string
	ToNative   func(expr string) string
	FromNative func(expr string) string
}

func (m TypeMap) FieldType() string {
	if m.Field != "" {
		return m.Field
	}
	return m.Native
}

func (m TypeMap) ToNativeExpr(expr string) string {
	if m.ToNative == nil {
		return expr
	}
	return m.ToNative(expr)
}

func (m TypeMap) FromNativeExpr(expr string) string {
	if m.FromNative == nil {
		return expr
	}
	return m.FromNative(expr)
}

func identity(native, managed string) TypeMap {
	return TypeMap{Native: native, Managed: managed}
}

// MapType returns the marshalling recipe for t. Unsigned integers map to
// the signed Java type of the same width; the native side only ever sees
// the fixed-width bit pattern, so the ABI is unaffected.
func MapType(t model.Type) TypeMap {
	switch t.Kind() {
	case model.KindBool:
		return TypeMap{
			Native:     "byte",
			Managed:    "boolean",
			ToNative:   func(e string) string { return fmt.Sprintf("(byte)(%s ? 1 : 0)", e) },
			FromNative: func(e string) string { return fmt.Sprintf("%s != 0", e) },
		}
	case model.KindUint8, model.KindSint8:
		return identity("byte", "byte")
	case model.KindUint16, model.KindSint16:
		return identity("short", "short")
	case model.KindUint32, model.KindSint32:
		return identity("int", "int")
	case model.KindUint64, model.KindSint64:
		return identity("long", "long")
	case model.KindFloat:
		return identity("float", "float")
	case model.KindDouble:
		return identity("double", "double")
	case model.KindString:
		// JNA copies const char* returns into a fresh String.
		return identity("String", "String")
	case model.KindDuration:
		switch t.DurationUnit() {
		case model.Seconds:
			return TypeMap{
				Native:     "long",
				Managed:    "java.time.Duration",
				ToNative:   func(e string) string { return fmt.Sprintf("%s.getSeconds()", e) },
				FromNative: func(e string) string { return fmt.Sprintf("java.time.Duration.ofSeconds(%s)", e) },
			}
		case model.SecondsFloat:
			return TypeMap{
				Native:     "double",
				Managed:    "java.time.Duration",
				ToNative:   func(e string) string { return fmt.Sprintf("%s.toNanos() / 1e9", e) },
				FromNative: func(e string) string { return fmt.Sprintf("java.time.Duration.ofNanos((long)(%s * 1e9))", e) },
			}
		default:
			return TypeMap{
				Native:     "long",
				Managed:    "java.time.Duration",
				ToNative:   func(e string) string { return fmt.Sprintf("%s.toMillis()", e) },
				FromNative: func(e string) string { return fmt.Sprintf("java.time.Duration.ofMillis(%s)", e) },
			}
		}
	case model.KindEnum:
		name := string(t.EnumID())
		return TypeMap{
			Native:     "int",
			Managed:    name,
			ToNative:   func(e string) string { return fmt.Sprintf("%s.toNative()", e) },
			FromNative: func(e string) string { return fmt.Sprintf("%s.fromNative(%s)", name, e) },
		}
	case model.KindStruct:
		name := string(t.StructID())
		return TypeMap{
			Native:   name + ".ByValue",
			Managed:  name,
			Field:    name,
			ToNative: func(e string) string { return fmt.Sprintf("%s.byValue()", e) },
		}
	case model.KindStructRef:
		return identity("Pointer", "Pointer")
	case model.KindClassRef:
		name := string(t.ClassID())
		return TypeMap{
			Native:     "Pointer",
			Managed:    name,
			ToNative:   func(e string) string { return fmt.Sprintf("%s.self", e) },
			FromNative: func(e string) string { return fmt.Sprintf("new %s(%s)", name, e) },
		}
	case model.KindInterface:
		name := string(t.InterfaceID())
		return TypeMap{
			Native:   name + "NativeAdapter.ByValue",
			Managed:  name,
			Field:    name + "NativeAdapter",
			ToNative: func(e string) string { return fmt.Sprintf("new %sNativeAdapter.ByValue(%s)", name, e) },
		}
	case model.KindIterator:
		name := string(t.IteratorID())
		return TypeMap{
			Native:     "Pointer",
			Managed:    name,
			ToNative:   func(e string) string { return fmt.Sprintf("%s.self", e) },
			FromNative: func(e string) string { return fmt.Sprintf("new %s(%s)", name, e) },
		}
	default:
		return identity("Pointer", "Pointer")
	}
}

func nativeReturn(t *model.Type) string {
	if t == nil {
		return "void"
	}
	return MapType(*t).Native
}

func managedReturn(t *model.Type) string {
	if t == nil {
		return "void"
	}
	return MapType(*t).Managed
}
