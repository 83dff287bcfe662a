package model

// Library is the immutable root aggregate produced by LibraryBuilder.Build.
// Its Statements slice is the single source of emission order: every
// backend walks Statements once, in order, and never needs to consult the
// lookup indexes below for anything except resolving a reference found
// inside another statement.
//
// Library is never constructed directly outside this package; use
// NewLibrary, which is exported for the builder package to call after it
// has finished validating everything.
type Library struct {
	Name        string
	Version     Version
	License     []string
	Description string
	Statements  []Statement

	enums      map[EnumID]Enum
	structs    map[StructID]Struct
	interfaces map[InterfaceID]Interface
	iterators  map[IteratorID]Iterator
	classes    map[ClassID]Class
	functions  map[string]NativeFunction
}

// NewLibrary indexes statements by declaration name and returns the
// resulting Library. Callers (the builder) are responsible for having
// already validated referential closure, ordering, and uniqueness; this
// constructor performs no validation of its own.
func NewLibrary(name string, version Version, license []string, description string, statements []Statement) *Library {
	lib := &Library{
		Name:        name,
		Version:     version,
		License:     license,
		Description: description,
		Statements:  statements,
		enums:       make(map[EnumID]Enum),
		structs:     make(map[StructID]Struct),
		interfaces:  make(map[InterfaceID]Interface),
		iterators:   make(map[IteratorID]Iterator),
		classes:     make(map[ClassID]Class),
		functions:   make(map[string]NativeFunction),
	}
	for _, st := range statements {
		switch st.Kind {
		case StmtEnumDef:
			lib.enums[st.Enum.ID()] = st.Enum
		case StmtStructDef:
			lib.structs[st.Struct.ID()] = st.Struct
		case StmtInterfaceDef:
			lib.interfaces[st.Interface.ID()] = st.Interface
		case StmtIteratorDef:
			lib.iterators[st.Iterator.ID()] = st.Iterator
		case StmtClassDef:
			lib.classes[st.Class.ID()] = st.Class
		case StmtNativeFunctionDef:
			lib.functions[st.Function.Name] = st.Function
		}
	}
	return lib
}

func (l *Library) Enum(id EnumID) (Enum, bool)             { e, ok := l.enums[id]; return e, ok }
func (l *Library) Struct(id StructID) (Struct, bool)       { s, ok := l.structs[id]; return s, ok }
func (l *Library) Interface(id InterfaceID) (Interface, bool) {
	i, ok := l.interfaces[id]
	return i, ok
}
func (l *Library) Iterator(id IteratorID) (Iterator, bool) { i, ok := l.iterators[id]; return i, ok }
func (l *Library) Class(id ClassID) (Class, bool)          { c, ok := l.classes[id]; return c, ok }
func (l *Library) Function(name string) (NativeFunction, bool) {
	f, ok := l.functions[name]
	return f, ok
}

// Classes returns every defined class in statement order.
func (l *Library) Classes() []Class {
	var out []Class
	for _, st := range l.Statements {
		if st.Kind == StmtClassDef {
			out = append(out, st.Class)
		}
	}
	return out
}

// Enums returns every enum in statement order.
func (l *Library) Enums() []Enum {
	var out []Enum
	for _, st := range l.Statements {
		if st.Kind == StmtEnumDef {
			out = append(out, st.Enum)
		}
	}
	return out
}

// Structs returns every struct in statement order.
func (l *Library) Structs() []Struct {
	var out []Struct
	for _, st := range l.Statements {
		if st.Kind == StmtStructDef {
			out = append(out, st.Struct)
		}
	}
	return out
}

// Interfaces returns every interface in statement order.
func (l *Library) Interfaces() []Interface {
	var out []Interface
	for _, st := range l.Statements {
		if st.Kind == StmtInterfaceDef {
			out = append(out, st.Interface)
		}
	}
	return out
}

// Iterators returns every iterator in statement order.
func (l *Library) Iterators() []Iterator {
	var out []Iterator
	for _, st := range l.Statements {
		if st.Kind == StmtIteratorDef {
			out = append(out, st.Iterator)
		}
	}
	return out
}

// Functions returns every registered native function in statement order,
// including functions later attached to a class as constructors, methods,
// or destructors.
func (l *Library) Functions() []NativeFunction {
	var out []NativeFunction
	for _, st := range l.Statements {
		if st.Kind == StmtNativeFunctionDef {
			out = append(out, st.Function)
		}
	}
	return out
}
