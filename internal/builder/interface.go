package builder

import "github.com/cwbudde/go-oobind/internal/model"

// InterfaceBuilder builds a single Interface: exactly one Arg, exactly one
// DestroyFunction, at least one Callback, and every callback's parameter
// list must include the Arg by name.
type InterfaceBuilder struct {
	lb          *LibraryBuilder
	name        string
	doc         string
	elements    []model.InterfaceElement
	argName     string
	destroyName string
	haveArg     bool
	haveDestroy bool
	err         error
}

// DefineInterface starts building a callback interface with the given name.
func (b *LibraryBuilder) DefineInterface(name string) *InterfaceBuilder {
	return &InterfaceBuilder{lb: b, name: name}
}

// Doc sets the interface's documentation string.
func (i *InterfaceBuilder) Doc(d string) *InterfaceBuilder {
	i.doc = d
	return i
}

// Arg declares the single opaque user-data parameter name threaded through
// every callback.
func (i *InterfaceBuilder) Arg(name string) *InterfaceBuilder {
	if i.err != nil {
		return i
	}
	if i.haveArg {
		i.err = &BindingError{Kind: BadInterfaceShape, Name: i.name, Detail: "more than one arg"}
		return i
	}
	i.haveArg = true
	i.argName = name
	i.elements = append(i.elements, model.InterfaceElement{Kind: model.ElementArg, Name: name})
	return i
}

// Destroy declares the single native function invoked to release the
// interface's opaque state.
func (i *InterfaceBuilder) Destroy(name string) *InterfaceBuilder {
	if i.err != nil {
		return i
	}
	if i.haveDestroy {
		i.err = &BindingError{Kind: BadInterfaceShape, Name: i.name, Detail: "more than one destroy function"}
		return i
	}
	i.haveDestroy = true
	i.destroyName = name
	i.elements = append(i.elements, model.InterfaceElement{Kind: model.ElementDestroy, Name: name})
	return i
}

// Callback appends a callback method. Its parameter list must contain the
// interface's Arg by name; the types of the remaining parameters are
// resolved at Build time, once the arg name is known and can be exempted
// (the arg parameter is opaque and carries no schema type).
func (i *InterfaceBuilder) Callback(cb model.CallbackFunction) *InterfaceBuilder {
	if i.err != nil {
		return i
	}
	i.elements = append(i.elements, model.InterfaceElement{Kind: model.ElementCallback, Callback: cb})
	return i
}

// Build validates interface well-formedness and appends an InterfaceDef
// statement.
func (i *InterfaceBuilder) Build() (model.InterfaceID, error) {
	if i.err != nil {
		return "", i.err
	}
	if !i.haveArg || !i.haveDestroy {
		return "", &BindingError{Kind: BadInterfaceShape, Name: i.name, Detail: "requires exactly one arg and one destroy function"}
	}
	callbacks := 0
	for _, el := range i.elements {
		if el.Kind == model.ElementCallback {
			callbacks++
			hasArg := false
			for _, p := range el.Callback.Parameters {
				if p.Name == i.argName {
					hasArg = true
					continue
				}
				if err := i.lb.resolveType(p.Type); err != nil {
					return "", err
				}
			}
			if cb := el.Callback; cb.ReturnType != nil {
				if err := i.lb.resolveType(*cb.ReturnType); err != nil {
					return "", err
				}
			}
			if !hasArg {
				return "", &BindingError{
					Kind:   BadInterfaceShape,
					Name:   i.name,
					Detail: "callback " + el.Callback.Name + " does not reference arg " + i.argName,
				}
			}
		}
	}
	if callbacks == 0 {
		return "", &BindingError{Kind: BadInterfaceShape, Name: i.name, Detail: "requires at least one callback"}
	}
	if err := i.lb.reserveName(i.name); err != nil {
		return "", err
	}
	ifc := model.Interface{
		Name:        i.name,
		Doc:         i.doc,
		Elements:    i.elements,
		DestroyName: i.destroyName,
		ArgName:     i.argName,
	}
	i.lb.definedIfaces[ifc.ID()] = true
	i.lb.statements = append(i.lb.statements, model.Statement{Kind: model.StmtInterfaceDef, Interface: ifc})
	return ifc.ID(), nil
}
