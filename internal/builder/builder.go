package builder

import "github.com/cwbudde/go-oobind/internal/model"

// LibraryBuilder incrementally constructs a model.Library, validating every
// addition as it happens. It is single-use: a second call to Build after a
// first successful one returns BuilderAlreadyConsumed.
type LibraryBuilder struct {
	name        string
	version     model.Version
	license     []string
	description string
	statements  []model.Statement

	names           map[string]bool // global name uniqueness, all kinds
	declaredClasses map[model.ClassID]bool
	definedClasses  map[model.ClassID]bool
	definedEnums    map[model.EnumID]bool
	declaredStructs map[model.StructID]bool
	definedStructs  map[model.StructID]bool
	definedIfaces   map[model.InterfaceID]bool
	definedIters    map[model.IteratorID]bool

	structFields map[model.StructID][]model.StructField // for recursion checks

	built bool
}

// New starts building a library with the given name and version.
func New(name string, version model.Version) *LibraryBuilder {
	return &LibraryBuilder{
		name:            name,
		version:         version,
		names:           make(map[string]bool),
		declaredClasses: make(map[model.ClassID]bool),
		definedClasses:  make(map[model.ClassID]bool),
		definedEnums:    make(map[model.EnumID]bool),
		declaredStructs: make(map[model.StructID]bool),
		definedStructs:  make(map[model.StructID]bool),
		definedIfaces:   make(map[model.InterfaceID]bool),
		definedIters:    make(map[model.IteratorID]bool),
		structFields:    make(map[model.StructID][]model.StructField),
	}
}

// Description sets the library's human-readable description.
func (b *LibraryBuilder) Description(d string) error {
	if b.built {
		return &BindingError{Kind: BuilderAlreadyConsumed, Name: b.name}
	}
	b.description = d
	return nil
}

// License sets the library's license text, one entry per line.
func (b *LibraryBuilder) License(lines []string) error {
	if b.built {
		return &BindingError{Kind: BuilderAlreadyConsumed, Name: b.name}
	}
	b.license = append([]string(nil), lines...)
	return nil
}

func (b *LibraryBuilder) reserveName(name string) error {
	if b.built {
		return &BindingError{Kind: BuilderAlreadyConsumed, Name: name}
	}
	if b.names[name] {
		return errNameUsed(name)
	}
	b.names[name] = true
	return nil
}

// resolveType reports an UnknownReference error if t refers to a
// declaration that does not yet exist in the builder's registry. Enums,
// by-value structs, interfaces and iterators must already be fully
// defined; a StructRef may also name a struct reserved with DeclareStruct,
// and classes need only be declared.
func (b *LibraryBuilder) resolveType(t model.Type) error {
	switch t.Kind() {
	case model.KindEnum:
		if !b.definedEnums[t.EnumID()] {
			return errUnknownRef(string(t.EnumID()), "enum")
		}
	case model.KindStruct:
		if !b.definedStructs[t.StructID()] {
			return errUnknownRef(string(t.StructID()), "struct")
		}
	case model.KindStructRef:
		if !b.definedStructs[t.StructID()] && !b.declaredStructs[t.StructID()] {
			return errUnknownRef(string(t.StructID()), "struct")
		}
	case model.KindClassRef:
		if !b.declaredClasses[t.ClassID()] {
			return errUnknownRef(string(t.ClassID()), "class")
		}
	case model.KindInterface:
		if !b.definedIfaces[t.InterfaceID()] {
			return errUnknownRef(string(t.InterfaceID()), "interface")
		}
	case model.KindIterator:
		if !b.definedIters[t.IteratorID()] {
			return errUnknownRef(string(t.IteratorID()), "iterator")
		}
	}
	return nil
}

// DeclareClass records an opaque handle for a not-yet-defined class.
func (b *LibraryBuilder) DeclareClass(name string) (model.ClassDecl, error) {
	if err := b.reserveName(name); err != nil {
		return model.ClassDecl{}, err
	}
	decl := model.ClassDecl{Name: name}
	b.declaredClasses[decl.ID()] = true
	b.statements = append(b.statements, model.Statement{Kind: model.StmtClassDecl, ClassDecl: decl})
	return decl, nil
}

// DeclareNativeFunction starts building a native function that is recorded
// as a top-level statement. The resulting function may afterwards be
// attached to a class as a constructor, destructor or method.
func (b *LibraryBuilder) DeclareNativeFunction(name string) *FunctionBuilder {
	return newFunctionBuilder(b, name, true)
}

// Build validates that every declared class has been defined and returns
// the resulting immutable Library. The builder may not be used again.
func (b *LibraryBuilder) Build() (*model.Library, error) {
	if b.built {
		return nil, &BindingError{Kind: BuilderAlreadyConsumed, Name: b.name}
	}
	for id := range b.declaredClasses {
		if !b.definedClasses[id] {
			return nil, &BindingError{Kind: ClassNotDefined, Name: string(id)}
		}
	}
	b.built = true
	return model.NewLibrary(b.name, b.version, b.license, b.description, b.statements), nil
}
