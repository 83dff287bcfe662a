package model

// Kind discriminates the closed set of type variants a Type can carry.
type Kind int

const (
	KindBool Kind = iota
	KindUint8
	KindSint8
	KindUint16
	KindSint16
	KindUint32
	KindSint32
	KindUint64
	KindSint64
	KindFloat
	KindDouble
	KindString
	KindDuration
	KindEnum
	KindStruct
	KindStructRef
	KindClassRef
	KindInterface
	KindIterator
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "Bool"
	case KindUint8:
		return "Uint8"
	case KindSint8:
		return "Sint8"
	case KindUint16:
		return "Uint16"
	case KindSint16:
		return "Sint16"
	case KindUint32:
		return "Uint32"
	case KindSint32:
		return "Sint32"
	case KindUint64:
		return "Uint64"
	case KindSint64:
		return "Sint64"
	case KindFloat:
		return "Float"
	case KindDouble:
		return "Double"
	case KindString:
		return "String"
	case KindDuration:
		return "Duration"
	case KindEnum:
		return "Enum"
	case KindStruct:
		return "Struct"
	case KindStructRef:
		return "StructRef"
	case KindClassRef:
		return "ClassRef"
	case KindInterface:
		return "Interface"
	case KindIterator:
		return "Iterator"
	default:
		return "Unknown"
	}
}

// DurationUnit distinguishes the three ways a native duration is represented.
type DurationUnit int

const (
	Millis DurationUnit = iota
	Seconds
	SecondsFloat
)

func (u DurationUnit) String() string {
	switch u {
	case Millis:
		return "Millis"
	case Seconds:
		return "Seconds"
	case SecondsFloat:
		return "SecondsFloat"
	default:
		return "Unknown"
	}
}

// EnumID, StructID, ClassID, InterfaceID and IteratorID identify a
// declaration by its globally-unique name. Because top-level names are
// unique across all kinds, the name alone is a stable, comparable identity.
type (
	EnumID      string
	StructID    string
	ClassID     string
	InterfaceID string
	IteratorID  string
)

// Type is a tagged variant over the closed set of legal parameter/return
// types. Zero value is the Bool primitive; always construct via one of the
// functions below.
type Type struct {
	kind Kind
	unit DurationUnit
	enum EnumID
	strc StructID
	cls  ClassID
	ifc  InterfaceID
	iter IteratorID
}

func Bool() Type     { return Type{kind: KindBool} }
func Uint8() Type    { return Type{kind: KindUint8} }
func Sint8() Type    { return Type{kind: KindSint8} }
func Uint16() Type   { return Type{kind: KindUint16} }
func Sint16() Type   { return Type{kind: KindSint16} }
func Uint32() Type   { return Type{kind: KindUint32} }
func Sint32() Type   { return Type{kind: KindSint32} }
func Uint64() Type   { return Type{kind: KindUint64} }
func Sint64() Type   { return Type{kind: KindSint64} }
func Float() Type    { return Type{kind: KindFloat} }
func Double() Type   { return Type{kind: KindDouble} }
func StringT() Type  { return Type{kind: KindString} }
func Duration(unit DurationUnit) Type {
	return Type{kind: KindDuration, unit: unit}
}
func EnumType(id EnumID) Type           { return Type{kind: KindEnum, enum: id} }
func StructType(id StructID) Type       { return Type{kind: KindStruct, strc: id} }
func StructRefType(id StructID) Type    { return Type{kind: KindStructRef, strc: id} }
func ClassRefType(id ClassID) Type      { return Type{kind: KindClassRef, cls: id} }
func InterfaceType(id InterfaceID) Type { return Type{kind: KindInterface, ifc: id} }
func IteratorType(id IteratorID) Type   { return Type{kind: KindIterator, iter: id} }

func (t Type) Kind() Kind                 { return t.kind }
func (t Type) DurationUnit() DurationUnit { return t.unit }
func (t Type) EnumID() EnumID             { return t.enum }
func (t Type) StructID() StructID         { return t.strc }
func (t Type) ClassID() ClassID           { return t.cls }
func (t Type) InterfaceID() InterfaceID   { return t.ifc }
func (t Type) IteratorID() IteratorID     { return t.iter }

// IsPrimitive reports whether t is one of the fixed-width scalar kinds that
// require no marshalling adapter beyond a direct value copy.
func (t Type) IsPrimitive() bool {
	switch t.kind {
	case KindBool, KindUint8, KindSint8, KindUint16, KindSint16,
		KindUint32, KindSint32, KindUint64, KindSint64, KindFloat, KindDouble:
		return true
	default:
		return false
	}
}

// RequiresMarshalling reports whether converting a value of t across the ABI
// boundary needs more than a bitwise copy: strings, durations, structs,
// interfaces and iterators all do; plain primitives and enums do not.
func (t Type) RequiresMarshalling() bool {
	switch t.kind {
	case KindString, KindDuration, KindStruct, KindStructRef, KindInterface, KindIterator:
		return true
	default:
		return false
	}
}

// ConversionKind names the shape of marshalling code a backend must emit for
// t. Two Types with equal Kind (and, where relevant, equal unit/id) always
// yield the same ConversionKind — this is what keeps ABI rendering
// consistent across runs and across backends.
type ConversionKind int

const (
	ConversionIdentity ConversionKind = iota
	ConversionValueBoxing
	ConversionString
	ConversionDuration
	ConversionEnumIntegral
	ConversionClassHandle
	ConversionStructByValue
	ConversionStructOpaque
	ConversionInterfaceAdapter
	ConversionIteratorAdapter
)

func (t Type) ConversionKind() ConversionKind {
	switch t.kind {
	case KindBool, KindUint8, KindSint8, KindUint16, KindSint16,
		KindUint32, KindSint32, KindUint64, KindSint64, KindFloat, KindDouble:
		return ConversionIdentity
	case KindString:
		return ConversionString
	case KindDuration:
		return ConversionDuration
	case KindEnum:
		return ConversionEnumIntegral
	case KindClassRef:
		return ConversionClassHandle
	case KindStruct:
		return ConversionStructByValue
	case KindStructRef:
		return ConversionStructOpaque
	case KindInterface:
		return ConversionInterfaceAdapter
	case KindIterator:
		return ConversionIteratorAdapter
	default:
		return ConversionValueBoxing
	}
}
