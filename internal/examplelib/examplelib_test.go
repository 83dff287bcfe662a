package examplelib

import (
	"reflect"
	"testing"

	"github.com/cwbudde/go-oobind/internal/model"
)

// resolves walks every reference inside t and fails the test if it does not
// land on a declaration of lib.
func resolves(t *testing.T, lib *model.Library, typ model.Type, where string) {
	t.Helper()
	switch typ.Kind() {
	case model.KindEnum:
		if _, ok := lib.Enum(typ.EnumID()); !ok {
			t.Errorf("%s: dangling enum reference %s", where, typ.EnumID())
		}
	case model.KindStruct, model.KindStructRef:
		if _, ok := lib.Struct(typ.StructID()); !ok {
			t.Errorf("%s: dangling struct reference %s", where, typ.StructID())
		}
	case model.KindClassRef:
		if _, ok := lib.Class(typ.ClassID()); !ok {
			t.Errorf("%s: dangling class reference %s", where, typ.ClassID())
		}
	case model.KindInterface:
		if _, ok := lib.Interface(typ.InterfaceID()); !ok {
			t.Errorf("%s: dangling interface reference %s", where, typ.InterfaceID())
		}
	case model.KindIterator:
		if _, ok := lib.Iterator(typ.IteratorID()); !ok {
			t.Errorf("%s: dangling iterator reference %s", where, typ.IteratorID())
		}
	}
}

func TestReferentialClosure(t *testing.T) {
	lib, err := BuildLib()
	if err != nil {
		t.Fatal(err)
	}
	for _, fn := range lib.Functions() {
		for _, p := range fn.Parameters {
			resolves(t, lib, p.Type, fn.Name)
		}
		if fn.ReturnType != nil {
			resolves(t, lib, *fn.ReturnType, fn.Name)
		}
	}
	for _, s := range lib.Structs() {
		for _, f := range s.Fields {
			resolves(t, lib, f.Type, s.Name+"."+f.Name)
		}
	}
	for _, it := range lib.Iterators() {
		if _, ok := lib.Struct(it.Item); !ok {
			t.Errorf("iterator %s: dangling item struct %s", it.Name, it.Item)
		}
	}
	for _, ifc := range lib.Interfaces() {
		for _, cb := range ifc.Callbacks() {
			for _, p := range cb.Parameters {
				if p.Name == ifc.ArgName {
					continue
				}
				resolves(t, lib, p.Type, ifc.Name+"."+cb.Name)
			}
		}
	}
}

func TestClassInvariants(t *testing.T) {
	lib, err := BuildLib()
	if err != nil {
		t.Fatal(err)
	}
	classes := lib.Classes()
	if len(classes) == 0 {
		t.Fatal("example library defines no classes")
	}
	for _, c := range classes {
		if c.Destructor != nil {
			d := *c.Destructor
			if len(d.Parameters) != 1 || d.ReturnType != nil {
				t.Errorf("%s: destructor signature violated", c.Name)
			} else if pt := d.Parameters[0].Type; pt.Kind() != model.KindClassRef || pt.ClassID() != c.ID() {
				t.Errorf("%s: destructor does not take the class handle", c.Name)
			}
		}
		for _, ctor := range c.Constructors {
			rt := ctor.Function.ReturnType
			if rt == nil || rt.Kind() != model.KindClassRef || rt.ClassID() != c.ID() {
				t.Errorf("%s: constructor %s does not return the class handle", c.Name, ctor.Name)
			}
		}
		for _, m := range c.Methods {
			if len(m.Function.Parameters) == 0 {
				t.Errorf("%s: method %s has no receiver", c.Name, m.Name)
				continue
			}
			if pt := m.Function.Parameters[0].Type; pt.Kind() != model.KindClassRef || pt.ClassID() != c.ID() {
				t.Errorf("%s: method %s first parameter is not the class handle", c.Name, m.Name)
			}
		}
	}
}

func TestInterfaceInvariants(t *testing.T) {
	lib, err := BuildLib()
	if err != nil {
		t.Fatal(err)
	}
	for _, ifc := range lib.Interfaces() {
		args, destroys, callbacks := 0, 0, 0
		for _, el := range ifc.Elements {
			switch el.Kind {
			case model.ElementArg:
				args++
			case model.ElementDestroy:
				destroys++
			case model.ElementCallback:
				callbacks++
				found := false
				for _, p := range el.Callback.Parameters {
					if p.Name == ifc.ArgName {
						found = true
					}
				}
				if !found {
					t.Errorf("%s.%s does not reference arg %s", ifc.Name, el.Callback.Name, ifc.ArgName)
				}
			}
		}
		if args != 1 || destroys != 1 || callbacks < 1 {
			t.Errorf("%s: shape = (%d args, %d destroys, %d callbacks)", ifc.Name, args, destroys, callbacks)
		}
	}
}

func TestClassDeclarationPrecedesDefinition(t *testing.T) {
	lib, err := BuildLib()
	if err != nil {
		t.Fatal(err)
	}
	declared := map[model.ClassID]bool{}
	for _, st := range lib.Statements {
		switch st.Kind {
		case model.StmtClassDecl:
			declared[st.ClassDecl.ID()] = true
		case model.StmtClassDef:
			if !declared[st.Class.ID()] {
				t.Errorf("class %s defined before its declaration", st.Class.Name)
			}
		}
	}
}

// Building the same schema twice must yield structurally equal libraries.
func TestBuildIsDeterministic(t *testing.T) {
	first, err := BuildLib()
	if err != nil {
		t.Fatal(err)
	}
	second, err := BuildLib()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("two builds of the same schema are not structurally equal")
	}
}
