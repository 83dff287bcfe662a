// Package examplelib builds the "foo" schema: a small library exercising
// every model entity (enums, structures, durations, strings, classes,
// callback interfaces, iterators). The driver generates bindings for it,
// and the backend tests pin its emitted output.
package examplelib

import (
	"github.com/cwbudde/go-oobind/internal/builder"
	"github.com/cwbudde/go-oobind/internal/model"
)

// BuildLib constructs and validates the example library.
func BuildLib() (*model.Library, error) {
	b := builder.New("foo", model.Version{Major: 1, Minor: 2, Patch: 3})
	if err := b.Description("Foo is an interesting lib"); err != nil {
		return nil, err
	}
	if err := b.License([]string{
		"foo v1.2.3",
		"Copyright (C) 2020 Automatak LLC",
		"",
		"This is my custom license.",
		"These views are not even my own. They belong to nobody.",
		"  - Frumious Scadateer (@scadateer)",
	}); err != nil {
		return nil, err
	}

	for _, define := range []func(*builder.LibraryBuilder) error{
		defineEnums,
		defineStructure,
		defineIterator,
		defineDuration,
		defineStrings,
		defineCallback,
		defineRuntime,
	} {
		if err := define(b); err != nil {
			return nil, err
		}
	}

	return b.Build()
}

func defineEnums(b *builder.LibraryBuilder) error {
	if _, err := b.DefineEnum("Color").
		Doc("Color selection").
		Push("Red", "The color of blood").
		Push("Green", "The color of grass").
		Push("Blue", "The color of the ocean").
		Build(); err != nil {
		return err
	}
	_, err := b.DefineEnum("State").
		Doc("Observable state of a monitored value").
		Push("Idle", "Nothing happening").
		Push("Active", "Value is changing").
		Push("Faulted", "Value source failed").
		Build()
	return err
}

func defineStructure(b *builder.LibraryBuilder) error {
	if _, err := b.DefineStruct("Item").
		Doc("One element produced by an iterator").
		Add("index", model.Uint16(), "Position of the item").
		Add("value", model.Uint32(), "Payload of the item").
		Build(); err != nil {
		return err
	}
	_, err := b.DefineStruct("Settings").
		Doc("Marshalling exercise across every field conversion").
		Add("enabled", model.Bool(), "Feature toggle").
		Add("label", model.StringT(), "Display name").
		Add("retryDelay", model.Duration(model.Millis), "Delay between retries").
		Add("color", model.EnumType("Color"), "Preferred color").
		Add("item", model.StructType("Item"), "Nested by-value struct").
		Build()
	return err
}

func defineIterator(b *builder.LibraryBuilder) error {
	if _, err := b.DefineIterator("ItemIter", "item_iter_next", "Item"); err != nil {
		return err
	}
	_, err := b.DeclareNativeFunction("item_iter_create").
		Doc("Creates an iterator yielding count synthetic items").
		Param("count", model.Uint16(), "Number of items to yield").
		ReturnType(model.IteratorType("ItemIter")).
		Build()
	return err
}

func defineDuration(b *builder.LibraryBuilder) error {
	if _, err := b.DeclareNativeFunction("duration_ms_echo").
		Param("value", model.Duration(model.Millis), "").
		ReturnType(model.Duration(model.Millis)).
		Build(); err != nil {
		return err
	}
	if _, err := b.DeclareNativeFunction("duration_s_echo").
		Param("value", model.Duration(model.Seconds), "").
		ReturnType(model.Duration(model.Seconds)).
		Build(); err != nil {
		return err
	}
	_, err := b.DeclareNativeFunction("duration_sf_echo").
		Param("value", model.Duration(model.SecondsFloat), "").
		ReturnType(model.Duration(model.SecondsFloat)).
		Build()
	return err
}

func defineStrings(b *builder.LibraryBuilder) error {
	decl, err := b.DeclareClass("StringClass")
	if err != nil {
		return err
	}
	newFn, err := b.DeclareNativeFunction("string_new").
		Doc("Creates an empty string holder").
		ReturnType(model.ClassRefType(decl.ID())).
		Build()
	if err != nil {
		return err
	}
	destroyFn, err := b.DeclareNativeFunction("string_destroy").
		Param("instance", model.ClassRefType(decl.ID()), "").
		Build()
	if err != nil {
		return err
	}
	echoFn, err := b.DeclareNativeFunction("string_echo").
		Doc("Stores value and returns the stored copy").
		Param("instance", model.ClassRefType(decl.ID()), "").
		Param("value", model.StringT(), "String to store").
		ReturnType(model.StringT()).
		Build()
	if err != nil {
		return err
	}
	_, err = b.DefineClass(decl).
		Doc("Holds a single native string").
		Constructor("New", newFn).
		Destructor(destroyFn).
		Method("Echo", echoFn).
		Build()
	return err
}

func defineCallback(b *builder.LibraryBuilder) error {
	if _, err := b.DefineInterface("Listener").
		Doc("Receives state change notifications").
		Callback(model.CallbackFunction{
			Name: "on_change",
			Doc:  "Invoked on every state transition",
			Parameters: []model.Parameter{
				{Name: "value", Type: model.EnumType("State")},
				{Name: "arg"},
			},
		}).
		Destroy("on_destroy").
		Arg("arg").
		Build(); err != nil {
		return err
	}
	_, err := b.DeclareNativeFunction("configure_listener").
		Doc("Installs the listener; native code releases it via on_destroy").
		Param("listener", model.InterfaceType("Listener"), "").
		Build()
	return err
}

// defineRuntime models the opaque native runtime: construct and destroy
// only, no methods. Destroying it from inside one of its own callbacks is
// a native-side contract violation the generated code does not defend
// against.
func defineRuntime(b *builder.LibraryBuilder) error {
	decl, err := b.DeclareClass("Runtime")
	if err != nil {
		return err
	}
	newFn, err := b.DeclareNativeFunction("runtime_new").
		Doc("Creates a runtime with the given number of worker threads").
		Param("threads", model.Uint16(), "Worker thread count, zero for default").
		ReturnType(model.ClassRefType(decl.ID())).
		Build()
	if err != nil {
		return err
	}
	destroyFn, err := b.DeclareNativeFunction("runtime_destroy").
		Param("instance", model.ClassRefType(decl.ID()), "").
		Build()
	if err != nil {
		return err
	}
	_, err = b.DefineClass(decl).
		Doc("Opaque handle to the native runtime").
		Constructor("New", newFn).
		Destructor(destroyFn).
		Build()
	return err
}
