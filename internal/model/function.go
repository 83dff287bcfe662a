package model

// Parameter is one named, typed, documented argument of a native function
// signature (free function, constructor, method, destructor, or callback).
type Parameter struct {
	Name string
	Type Type
	Doc  string
}

// NativeFunction is a fully-resolved function signature: a unique name, an
// ordered list of parameters with unique names, an optional return type
// (nil means void), and documentation. It may stand alone (a free function)
// or be attached to a Class as a constructor, destructor, or method.
type NativeFunction struct {
	Name       string
	Doc        string
	Parameters []Parameter
	ReturnType *Type // nil means void
}

// ParamNamed returns the parameter with the given name and true, or the
// zero Parameter and false.
func (f NativeFunction) ParamNamed(name string) (Parameter, bool) {
	for _, p := range f.Parameters {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}
