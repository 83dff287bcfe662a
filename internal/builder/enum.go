package builder

import "github.com/cwbudde/go-oobind/internal/model"

// EnumBuilder builds a single Enum: variant names must be unique and the
// variant list must be non-empty.
type EnumBuilder struct {
	lb           *LibraryBuilder
	name         string
	doc          string
	variants     []model.EnumVariant
	variantNames map[string]bool
	err          error
}

// DefineEnum starts building an enum with the given name.
func (b *LibraryBuilder) DefineEnum(name string) *EnumBuilder {
	return &EnumBuilder{lb: b, name: name, variantNames: make(map[string]bool)}
}

// Doc sets the enum's documentation string.
func (e *EnumBuilder) Doc(d string) *EnumBuilder {
	e.doc = d
	return e
}

// Push appends a variant. Its positional index among all Push calls becomes
// its ABI integer value.
func (e *EnumBuilder) Push(name, doc string) *EnumBuilder {
	if e.err != nil {
		return e
	}
	if e.variantNames[name] {
		e.err = &BindingError{Kind: DuplicateVariant, Name: name, Detail: "enum " + e.name}
		return e
	}
	e.variantNames[name] = true
	e.variants = append(e.variants, model.EnumVariant{Name: name, Doc: doc})
	return e
}

// Build finalizes the enum, requiring at least one variant, and appends an
// EnumDef statement.
func (e *EnumBuilder) Build() (model.EnumID, error) {
	if e.err != nil {
		return "", e.err
	}
	if len(e.variants) == 0 {
		return "", &BindingError{Kind: EmptyEnum, Name: e.name}
	}
	if err := e.lb.reserveName(e.name); err != nil {
		return "", err
	}
	enum := model.Enum{Name: e.name, Doc: e.doc, Variants: e.variants}
	e.lb.definedEnums[enum.ID()] = true
	e.lb.statements = append(e.lb.statements, model.Statement{Kind: model.StmtEnumDef, Enum: enum})
	return enum.ID(), nil
}
