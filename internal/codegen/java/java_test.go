package java

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/go-oobind/internal/codegen"
	"github.com/cwbudde/go-oobind/internal/examplelib"
	"github.com/gkampitakis/go-snaps/snaps"
)

func generate(t *testing.T) string {
	t.Helper()
	lib, err := examplelib.BuildLib()
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	if err := New().Generate(lib, codegen.Config{OutputDir: dir}); err != nil {
		t.Fatal(err)
	}
	return filepath.Join(dir, "java", "foo")
}

func readFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestEveryFileIsInLibraryPackage(t *testing.T) {
	dir := generate(t)
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) == 0 {
		t.Fatal("no files generated")
	}
	for _, e := range entries {
		content := readFile(t, dir, e.Name())
		if !strings.HasPrefix(content, "// foo v1.2.3\n") {
			t.Errorf("%s does not start with the license block", e.Name())
		}
		if !strings.Contains(content, "package foo;") {
			t.Errorf("%s is not in package foo", e.Name())
		}
	}
}

func TestEnumFile(t *testing.T) {
	content := readFile(t, generate(t), "Color.java")
	for _, want := range []string{
		"public enum Color",
		"return this.ordinal();",
		"return Color.values()[value];",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("Color.java missing %q", want)
		}
	}
	// Ordinal carries the ABI value, so declaration order is the contract.
	red := strings.Index(content, "Red,")
	green := strings.Index(content, "Green,")
	blue := strings.Index(content, "Blue;")
	if !(red >= 0 && red < green && green < blue) {
		t.Error("variants not emitted in positional order")
	}
	snaps.MatchSnapshot(t, content)
}

func TestClassFile(t *testing.T) {
	content := readFile(t, generate(t), "StringClass.java")
	for _, want := range []string{
		"public final class StringClass implements AutoCloseable",
		"Pointer self;",
		"public StringClass()",
		"public void close()",
		"NativeFunctions.INSTANCE.string_destroy(this.self);",
		"public String Echo(String value)",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("StringClass.java missing %q", want)
		}
	}
	snaps.MatchSnapshot(t, content)
}

// The adapter must carry exactly one Callback field per callback plus one
// for destroy, and a single opaque arg slot, in ABI order.
func TestInterfaceAdapterShape(t *testing.T) {
	dir := generate(t)
	iface := readFile(t, dir, "Listener.java")
	if !strings.Contains(iface, "public interface Listener") ||
		!strings.Contains(iface, "void on_change(State value);") {
		t.Error("public interface shape wrong")
	}

	content := readFile(t, dir, "ListenerNativeAdapter.java")
	if got := strings.Count(content, "extends Callback"); got != 2 {
		t.Errorf("callback type count = %d, want 2 (one callback + destroy)", got)
	}
	for _, want := range []string{
		"class ListenerNativeAdapter extends Structure",
		"public on_change_callback on_change;",
		"public on_destroy_callback on_destroy;",
		"public Pointer arg;",
		"registry.put(token, impl);",
		"this.arg = new Pointer(token);",
		"registry.remove(Pointer.nativeValue(arg));",
		"return java.util.Arrays.asList(\"on_change\", \"on_destroy\", \"arg\");",
		"public static class ByValue extends ListenerNativeAdapter implements Structure.ByValue",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("ListenerNativeAdapter.java missing %q", want)
		}
	}
	snaps.MatchSnapshot(t, content)
}

func TestIteratorFile(t *testing.T) {
	content := readFile(t, generate(t), "ItemIter.java")
	for _, want := range []string{
		"public final class ItemIter",
		"public Item next()",
		"if (ptr == null) return null;",
		"return new Item(ptr);",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("ItemIter.java missing %q", want)
		}
	}
	snaps.MatchSnapshot(t, content)
}

func TestStructFile(t *testing.T) {
	content := readFile(t, generate(t), "Item.java")
	for _, want := range []string{
		"public class Item extends Structure",
		"public short index;",
		"public int value;",
		"return java.util.Arrays.asList(\"index\", \"value\");",
		"public static class ByValue extends Item implements Structure.ByValue",
		"public static class ByReference extends Item implements Structure.ByReference",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("Item.java missing %q", want)
		}
	}
	snaps.MatchSnapshot(t, content)
}

func TestNativeFunctionsFile(t *testing.T) {
	content := readFile(t, generate(t), "NativeFunctions.java")
	for _, want := range []string{
		"interface NativeFunctions extends com.sun.jna.Library",
		"NativeFunctions INSTANCE = Native.load(\"foo\", NativeFunctions.class);",
		"Pointer string_new();",
		"void string_destroy(Pointer instance);",
		"String string_echo(Pointer instance, String value);",
		"void configure_listener(ListenerNativeAdapter.ByValue listener);",
		"Pointer item_iter_next(Pointer it);",
		"long duration_ms_echo(long value);",
		"double duration_sf_echo(double value);",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("NativeFunctions.java missing %q", want)
		}
	}
	snaps.MatchSnapshot(t, content)
}
