package builder

import "github.com/cwbudde/go-oobind/internal/model"

// ClassBuilder attaches a body (destructor, constructors, methods) to a
// previously-declared class. Every attached native function must satisfy
// the receiver/return rules: constructors return ClassRef of the owning
// class, methods take it as their first parameter, and the destructor takes
// exactly that one parameter and returns void.
type ClassBuilder struct {
	lb           *LibraryBuilder
	decl         model.ClassDecl
	doc          string
	destructor   *model.NativeFunction
	constructors []model.ClassConstructor
	methods      []model.ClassMethod
	err          error
}

// DefineClass starts attaching a body to decl. The declaration must exist
// and must not already have been defined.
func (b *LibraryBuilder) DefineClass(decl model.ClassDecl) *ClassBuilder {
	cb := &ClassBuilder{lb: b, decl: decl}
	if !b.declaredClasses[decl.ID()] {
		cb.err = errUnknownRef(decl.Name, "class was never declared")
		return cb
	}
	if b.definedClasses[decl.ID()] {
		cb.err = &BindingError{Kind: ClassAlreadyDefined, Name: decl.Name}
	}
	return cb
}

// Doc sets the class's documentation string.
func (c *ClassBuilder) Doc(d string) *ClassBuilder {
	c.doc = d
	return c
}

// isReceiver reports whether t is ClassRef of the class being defined.
func (c *ClassBuilder) isReceiver(t model.Type) bool {
	return t.Kind() == model.KindClassRef && t.ClassID() == c.decl.ID()
}

// Destructor attaches the native function that releases an instance. It
// must take exactly one parameter, the class handle, and return void. A
// class has at most one destructor.
func (c *ClassBuilder) Destructor(fn model.NativeFunction) *ClassBuilder {
	if c.err != nil {
		return c
	}
	if c.destructor != nil {
		c.err = &BindingError{Kind: BadDestructorSignature, Name: fn.Name, Detail: "class " + c.decl.Name + " already has a destructor"}
		return c
	}
	if len(fn.Parameters) != 1 || !c.isReceiver(fn.Parameters[0].Type) || fn.ReturnType != nil {
		c.err = &BindingError{Kind: BadDestructorSignature, Name: fn.Name, Detail: "must take one " + c.decl.Name + " handle and return void"}
		return c
	}
	d := fn
	c.destructor = &d
	return c
}

// Constructor attaches a native function returning a new instance handle.
func (c *ClassBuilder) Constructor(name string, fn model.NativeFunction) *ClassBuilder {
	if c.err != nil {
		return c
	}
	if fn.ReturnType == nil || !c.isReceiver(*fn.ReturnType) {
		c.err = &BindingError{Kind: BadConstructorReturn, Name: fn.Name, Detail: "must return a " + c.decl.Name + " handle"}
		return c
	}
	c.constructors = append(c.constructors, model.ClassConstructor{Name: name, Function: fn})
	return c
}

// Method attaches a native function whose first parameter is the instance
// handle; the generated wrapper supplies that parameter implicitly.
func (c *ClassBuilder) Method(name string, fn model.NativeFunction) *ClassBuilder {
	if c.err != nil {
		return c
	}
	if len(fn.Parameters) == 0 || !c.isReceiver(fn.Parameters[0].Type) {
		c.err = &BindingError{Kind: BadMethodReceiver, Name: fn.Name, Detail: "first parameter must be a " + c.decl.Name + " handle"}
		return c
	}
	c.methods = append(c.methods, model.ClassMethod{Name: name, Function: fn})
	return c
}

// Build finalizes the class body and appends a ClassDef statement. The
// ClassDecl statement recorded by DeclareClass necessarily precedes it.
func (c *ClassBuilder) Build() (model.ClassID, error) {
	if c.err != nil {
		return "", c.err
	}
	if c.lb.built {
		return "", &BindingError{Kind: BuilderAlreadyConsumed, Name: c.decl.Name}
	}
	if c.lb.definedClasses[c.decl.ID()] {
		return "", &BindingError{Kind: ClassAlreadyDefined, Name: c.decl.Name}
	}
	cls := model.Class{
		Name:         c.decl.Name,
		Doc:          c.doc,
		Destructor:   c.destructor,
		Constructors: c.constructors,
		Methods:      c.methods,
	}
	c.lb.definedClasses[cls.ID()] = true
	c.lb.statements = append(c.lb.statements, model.Statement{Kind: model.StmtClassDef, Class: cls})
	return cls.ID(), nil
}
