package builder

import "github.com/cwbudde/go-oobind/internal/model"

// FunctionBuilder builds a single NativeFunction signature: parameter names
// must be unique within the signature and every parameter/return type must
// already resolve in the enclosing LibraryBuilder.
type FunctionBuilder struct {
	lb         *LibraryBuilder
	name       string
	doc        string
	params     []model.Parameter
	paramNames map[string]bool
	returnType *model.Type
	standalone bool
	err        error
}

func newFunctionBuilder(lb *LibraryBuilder, name string, standalone bool) *FunctionBuilder {
	return &FunctionBuilder{lb: lb, name: name, paramNames: make(map[string]bool), standalone: standalone}
}

// Doc sets the function's documentation string.
func (f *FunctionBuilder) Doc(d string) *FunctionBuilder {
	f.doc = d
	return f
}

// Param appends a parameter. name must be unique within this signature and
// t must refer to an already-resolvable type.
func (f *FunctionBuilder) Param(name string, t model.Type, doc string) *FunctionBuilder {
	if f.err != nil {
		return f
	}
	if f.paramNames[name] {
		f.err = &BindingError{Kind: DuplicateField, Name: name, Detail: "duplicate parameter in " + f.name}
		return f
	}
	if err := f.lb.resolveType(t); err != nil {
		f.err = err
		return f
	}
	f.paramNames[name] = true
	f.params = append(f.params, model.Parameter{Name: name, Type: t, Doc: doc})
	return f
}

// ReturnType sets the function's return type. Omit the call entirely for a
// void-returning function.
func (f *FunctionBuilder) ReturnType(t model.Type) *FunctionBuilder {
	if f.err != nil {
		return f
	}
	if err := f.lb.resolveType(t); err != nil {
		f.err = err
		return f
	}
	rt := t
	f.returnType = &rt
	return f
}

// Build finalizes the function and reserves its name globally. A standalone
// builder (the only kind DeclareNativeFunction creates) also appends a
// top-level NativeFunctionDef statement; a function later attached to a
// class keeps that statement, and the ClassDef carries a copy of it.
func (f *FunctionBuilder) Build() (model.NativeFunction, error) {
	if f.err != nil {
		return model.NativeFunction{}, f.err
	}
	if err := f.lb.reserveName(f.name); err != nil {
		return model.NativeFunction{}, err
	}
	fn := model.NativeFunction{Name: f.name, Doc: f.doc, Parameters: f.params, ReturnType: f.returnType}
	if f.standalone {
		f.lb.statements = append(f.lb.statements, model.Statement{Kind: model.StmtNativeFunctionDef, Function: fn})
	}
	return fn, nil
}
