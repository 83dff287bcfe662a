package builder

import "github.com/cwbudde/go-oobind/internal/model"

// StructBuilder builds a single Struct: field names must be unique within
// the struct, field types must already resolve, and by-value containment
// must not form a cycle.
type StructBuilder struct {
	lb         *LibraryBuilder
	name       string
	doc        string
	fields     []model.StructField
	fieldNames map[string]bool
	err        error
}

// DeclareStruct reserves name as a struct identity without requiring its
// fields yet. It lets another struct hold a StructRef (opaque, by-handle)
// to this one before DefineStruct completes it — by-value Struct fields
// still require the referenced struct to be fully defined, which is what
// keeps by-value containment acyclic.
func (b *LibraryBuilder) DeclareStruct(name string) (model.StructID, error) {
	if err := b.reserveName(name); err != nil {
		return "", err
	}
	id := model.StructID(name)
	b.declaredStructs[id] = true
	return id, nil
}

// DefineStruct starts building the fields of a struct. name may have been
// previously reserved with DeclareStruct, or may be fresh.
func (b *LibraryBuilder) DefineStruct(name string) *StructBuilder {
	return &StructBuilder{lb: b, name: name, fieldNames: make(map[string]bool)}
}

// Doc sets the struct's documentation string.
func (s *StructBuilder) Doc(d string) *StructBuilder {
	s.doc = d
	return s
}

// Add appends a field. name must be unique within this struct and t must
// already resolve in the enclosing LibraryBuilder.
func (s *StructBuilder) Add(name string, t model.Type, doc string) *StructBuilder {
	if s.err != nil {
		return s
	}
	if s.fieldNames[name] {
		s.err = &BindingError{Kind: DuplicateField, Name: name, Detail: "struct " + s.name}
		return s
	}
	if err := s.lb.resolveType(t); err != nil {
		s.err = err
		return s
	}
	s.fieldNames[name] = true
	s.fields = append(s.fields, model.StructField{Name: name, Type: t, Doc: doc})
	return s
}

// Build finalizes the struct and appends a StructDef statement.
func (s *StructBuilder) Build() (model.StructID, error) {
	if s.err != nil {
		return "", s.err
	}
	id := model.StructID(s.name)
	if s.lb.definedStructs[id] {
		return "", errNameUsed(s.name)
	}
	if err := s.lb.checkRecursiveStruct(id, s.fields); err != nil {
		return "", err
	}
	if !s.lb.declaredStructs[id] {
		if err := s.lb.reserveName(s.name); err != nil {
			return "", err
		}
	}
	st := model.Struct{Name: s.name, Doc: s.doc, Fields: s.fields}
	s.lb.definedStructs[id] = true
	s.lb.structFields[id] = s.fields
	s.lb.statements = append(s.lb.statements, model.Statement{Kind: model.StmtStructDef, Struct: st})
	return id, nil
}

// checkRecursiveStruct walks the by-value containment graph rooted at the
// struct currently being defined (id, with candidate fields) and fails if
// it would ever reach id again. Because a by-value Struct field can only
// name an already-fully-defined struct (resolveType enforces this), a true
// cycle cannot arise through normal use of the builder API; this check
// exists to make that invariant explicit and to catch it immediately,
// rather than relying on the impossibility of construction order alone.
func (b *LibraryBuilder) checkRecursiveStruct(id model.StructID, fields []model.StructField) error {
	visited := make(map[model.StructID]bool)
	var walk func(model.StructID) error
	walk = func(cur model.StructID) error {
		if visited[cur] {
			return nil
		}
		visited[cur] = true
		for _, f := range b.structFields[cur] {
			if f.Type.Kind() != model.KindStruct {
				continue
			}
			nested := f.Type.StructID()
			if nested == id {
				return &BindingError{Kind: RecursiveStruct, Name: string(id), Detail: "via " + string(cur)}
			}
			if err := walk(nested); err != nil {
				return err
			}
		}
		return nil
	}
	for _, f := range fields {
		if f.Type.Kind() != model.KindStruct {
			continue
		}
		nested := f.Type.StructID()
		if nested == id {
			return &BindingError{Kind: RecursiveStruct, Name: string(id)}
		}
		if err := walk(nested); err != nil {
			return err
		}
	}
	return nil
}
