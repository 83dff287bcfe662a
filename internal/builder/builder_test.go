package builder

import (
	"errors"
	"testing"

	"github.com/cwbudde/go-oobind/internal/model"
)

func kindOf(t *testing.T, err error) ErrorKind {
	t.Helper()
	var be *BindingError
	if !errors.As(err, &be) {
		t.Fatalf("expected *BindingError, got %T: %v", err, err)
	}
	return be.Kind
}

func TestBuilderErrors(t *testing.T) {
	tests := []struct {
		name string
		run  func(b *LibraryBuilder) error
		want ErrorKind
	}{
		{
			name: "duplicate top-level name",
			run: func(b *LibraryBuilder) error {
				if _, err := b.DeclareClass("Thing"); err != nil {
					return err
				}
				_, err := b.DeclareClass("Thing")
				return err
			},
			want: NameAlreadyUsed,
		},
		{
			name: "name collision across kinds",
			run: func(b *LibraryBuilder) error {
				if _, err := b.DeclareClass("Thing"); err != nil {
					return err
				}
				_, err := b.DefineEnum("Thing").Push("A", "").Build()
				return err
			},
			want: NameAlreadyUsed,
		},
		{
			name: "undeclared class used in signature",
			run: func(b *LibraryBuilder) error {
				_, err := b.DeclareNativeFunction("ghost_poke").
					Param("instance", model.ClassRefType("Ghost"), "").
					Build()
				return err
			},
			want: UnknownReference,
		},
		{
			name: "struct field of unknown enum",
			run: func(b *LibraryBuilder) error {
				_, err := b.DefineStruct("S").
					Add("color", model.EnumType("Color"), "").
					Build()
				return err
			},
			want: UnknownReference,
		},
		{
			name: "empty enum",
			run: func(b *LibraryBuilder) error {
				_, err := b.DefineEnum("Hollow").Build()
				return err
			},
			want: EmptyEnum,
		},
		{
			name: "duplicate variant",
			run: func(b *LibraryBuilder) error {
				_, err := b.DefineEnum("Color").Push("Red", "").Push("Red", "").Build()
				return err
			},
			want: DuplicateVariant,
		},
		{
			name: "duplicate struct field",
			run: func(b *LibraryBuilder) error {
				_, err := b.DefineStruct("S").
					Add("x", model.Uint8(), "").
					Add("x", model.Uint8(), "").
					Build()
				return err
			},
			want: DuplicateField,
		},
		{
			name: "duplicate parameter",
			run: func(b *LibraryBuilder) error {
				_, err := b.DeclareNativeFunction("f").
					Param("a", model.Uint8(), "").
					Param("a", model.Uint8(), "").
					Build()
				return err
			},
			want: DuplicateField,
		},
		{
			name: "interface without destroy",
			run: func(b *LibraryBuilder) error {
				_, err := b.DefineInterface("L").
					Arg("arg").
					Callback(model.CallbackFunction{Name: "on_x", Parameters: []model.Parameter{{Name: "arg"}}}).
					Build()
				return err
			},
			want: BadInterfaceShape,
		},
		{
			name: "interface without callbacks",
			run: func(b *LibraryBuilder) error {
				_, err := b.DefineInterface("L").
					Arg("arg").
					Destroy("on_destroy").
					Build()
				return err
			},
			want: BadInterfaceShape,
		},
		{
			name: "interface with two args",
			run: func(b *LibraryBuilder) error {
				_, err := b.DefineInterface("L").
					Arg("arg").
					Arg("arg2").
					Destroy("on_destroy").
					Callback(model.CallbackFunction{Name: "on_x", Parameters: []model.Parameter{{Name: "arg"}}}).
					Build()
				return err
			},
			want: BadInterfaceShape,
		},
		{
			name: "callback missing arg parameter",
			run: func(b *LibraryBuilder) error {
				_, err := b.DefineInterface("L").
					Arg("arg").
					Destroy("on_destroy").
					Callback(model.CallbackFunction{Name: "on_x", Parameters: []model.Parameter{{Name: "value", Type: model.Uint8()}}}).
					Build()
				return err
			},
			want: BadInterfaceShape,
		},
		{
			name: "iterator over unknown struct",
			run: func(b *LibraryBuilder) error {
				_, err := b.DefineIterator("It", "it_next", "Nope")
				return err
			},
			want: UnknownReference,
		},
		{
			name: "define class never declared",
			run: func(b *LibraryBuilder) error {
				_, err := b.DefineClass(model.ClassDecl{Name: "Ghost"}).Build()
				return err
			},
			want: UnknownReference,
		},
		{
			name: "constructor with wrong return",
			run: func(b *LibraryBuilder) error {
				decl, err := b.DeclareClass("C")
				if err != nil {
					return err
				}
				fn, err := b.DeclareNativeFunction("c_new").ReturnType(model.Uint32()).Build()
				if err != nil {
					return err
				}
				_, err = b.DefineClass(decl).Constructor("New", fn).Build()
				return err
			},
			want: BadConstructorReturn,
		},
		{
			name: "method without receiver",
			run: func(b *LibraryBuilder) error {
				decl, err := b.DeclareClass("C")
				if err != nil {
					return err
				}
				fn, err := b.DeclareNativeFunction("c_poke").Param("x", model.Uint8(), "").Build()
				if err != nil {
					return err
				}
				_, err = b.DefineClass(decl).Method("Poke", fn).Build()
				return err
			},
			want: BadMethodReceiver,
		},
		{
			name: "destructor with extra parameter",
			run: func(b *LibraryBuilder) error {
				decl, err := b.DeclareClass("C")
				if err != nil {
					return err
				}
				fn, err := b.DeclareNativeFunction("c_destroy").
					Param("instance", model.ClassRefType(decl.ID()), "").
					Param("force", model.Bool(), "").
					Build()
				if err != nil {
					return err
				}
				_, err = b.DefineClass(decl).Destructor(fn).Build()
				return err
			},
			want: BadDestructorSignature,
		},
		{
			name: "destructor returning a value",
			run: func(b *LibraryBuilder) error {
				decl, err := b.DeclareClass("C")
				if err != nil {
					return err
				}
				fn, err := b.DeclareNativeFunction("c_destroy").
					Param("instance", model.ClassRefType(decl.ID()), "").
					ReturnType(model.Bool()).
					Build()
				if err != nil {
					return err
				}
				_, err = b.DefineClass(decl).Destructor(fn).Build()
				return err
			},
			want: BadDestructorSignature,
		},
		{
			name: "class defined twice",
			run: func(b *LibraryBuilder) error {
				decl, err := b.DeclareClass("C")
				if err != nil {
					return err
				}
				if _, err := b.DefineClass(decl).Build(); err != nil {
					return err
				}
				_, err = b.DefineClass(decl).Build()
				return err
			},
			want: ClassAlreadyDefined,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New("test", model.Version{Major: 1})
			err := tt.run(b)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if got := kindOf(t, err); got != tt.want {
				t.Errorf("error kind = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildFailsOnUndefinedClass(t *testing.T) {
	b := New("test", model.Version{Major: 1})
	if _, err := b.DeclareClass("Dangling"); err != nil {
		t.Fatal(err)
	}
	_, err := b.Build()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if got := kindOf(t, err); got != ClassNotDefined {
		t.Errorf("error kind = %v, want ClassNotDefined", got)
	}
}

func TestBuilderIsSingleUse(t *testing.T) {
	b := New("test", model.Version{Major: 1})
	if _, err := b.Build(); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Build(); kindOf(t, err) != BuilderAlreadyConsumed {
		t.Error("second Build did not report BuilderAlreadyConsumed")
	}
	if err := b.Description("late"); kindOf(t, err) != BuilderAlreadyConsumed {
		t.Error("mutation after Build did not report BuilderAlreadyConsumed")
	}
}

// A failed operation must leave no trace: the name stays free and no
// statement is appended.
func TestFailedOperationIsAllOrNothing(t *testing.T) {
	b := New("test", model.Version{Major: 1})
	if _, err := b.DefineEnum("Color").Push("Red", "").Push("Red", "").Build(); err == nil {
		t.Fatal("expected duplicate variant error")
	}
	if _, err := b.DefineEnum("Color").Push("Red", "").Push("Green", "").Build(); err != nil {
		t.Fatalf("name was not released after failed build: %v", err)
	}
	lib, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	if len(lib.Statements) != 1 {
		t.Errorf("expected exactly one statement, got %d", len(lib.Statements))
	}
}

func TestStatementOrderIsInsertionOrder(t *testing.T) {
	b := New("test", model.Version{Major: 1})
	if _, err := b.DefineEnum("Color").Push("Red", "").Build(); err != nil {
		t.Fatal(err)
	}
	if _, err := b.DefineStruct("Item").Add("index", model.Uint16(), "").Build(); err != nil {
		t.Fatal(err)
	}
	decl, err := b.DeclareClass("Widget")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.DefineClass(decl).Build(); err != nil {
		t.Fatal(err)
	}
	lib, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	want := []model.StatementKind{
		model.StmtEnumDef,
		model.StmtStructDef,
		model.StmtClassDecl,
		model.StmtClassDef,
	}
	if len(lib.Statements) != len(want) {
		t.Fatalf("statement count = %d, want %d", len(lib.Statements), len(want))
	}
	for i, k := range want {
		if lib.Statements[i].Kind != k {
			t.Errorf("statement %d kind = %v, want %v", i, lib.Statements[i].Kind, k)
		}
	}
}

// By-value self-containment is unreachable through the public API (a
// by-value field requires its struct to be fully defined first), so the
// recursion check is exercised directly against a seeded containment
// graph.
func TestCheckRecursiveStruct(t *testing.T) {
	b := New("test", model.Version{Major: 1})
	b.structFields["B"] = []model.StructField{{Name: "a", Type: model.StructType("A")}}
	err := b.checkRecursiveStruct("A", []model.StructField{{Name: "b", Type: model.StructType("B")}})
	if err == nil {
		t.Fatal("expected recursive struct error")
	}
	if got := kindOf(t, err); got != RecursiveStruct {
		t.Errorf("error kind = %v, want RecursiveStruct", got)
	}

	b.structFields["D"] = []model.StructField{{Name: "x", Type: model.Uint8()}}
	if err := b.checkRecursiveStruct("C", []model.StructField{{Name: "d", Type: model.StructType("D")}}); err != nil {
		t.Errorf("acyclic containment rejected: %v", err)
	}
}

func TestDirectSelfContainmentRejected(t *testing.T) {
	b := New("test", model.Version{Major: 1})
	_, err := b.DefineStruct("A").Add("self", model.StructType("A"), "").Build()
	if err == nil {
		t.Fatal("expected error for self-containment")
	}
	// Through the public API this surfaces as UnknownReference, because a
	// by-value field can only name an already-defined struct.
	if got := kindOf(t, err); got != UnknownReference {
		t.Errorf("error kind = %v, want UnknownReference", got)
	}
}

func TestOpaqueStructRefBeforeDefinition(t *testing.T) {
	b := New("test", model.Version{Major: 1})
	id, err := b.DeclareStruct("Node")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.DefineStruct("Edge").
		Add("peer", model.StructRefType(id), "").
		Build(); err != nil {
		t.Fatalf("opaque reference to declared struct rejected: %v", err)
	}
	if _, err := b.DefineStruct("Node").Add("x", model.Uint8(), "").Build(); err != nil {
		t.Fatal(err)
	}
}
