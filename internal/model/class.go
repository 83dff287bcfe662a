package model

// ClassConstructor pairs a host-facing name with the native function that
// implements it. Name is always supplied by the schema author; classes
// with several constructors give each a distinct host name (e.g. "New" vs
// "NewWithCapacity").
type ClassConstructor struct {
	Name     string
	Function NativeFunction
}

// ClassMethod pairs a host-facing method name with the native function that
// implements it. The native function's first parameter is always the class
// handle; the host-facing method drops that parameter from
// its own signature, since the generated wrapper supplies it implicitly
// from the instance.
type ClassMethod struct {
	Name     string
	Function NativeFunction
}

// Class is a fully-resolved class definition: a unique name, at most one
// destructor, any number of constructors, and any number of methods. A
// Class is only ever produced by completing a prior ClassDecl with the same
// name; the two-phase declare/define split lets constructors and methods
// reference the class's own ClassRef type before the body exists.
type Class struct {
	Name         string
	Doc          string
	Destructor   *NativeFunction
	Constructors []ClassConstructor
	Methods      []ClassMethod
}

func (c Class) ID() ClassID { return ClassID(c.Name) }
