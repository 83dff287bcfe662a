package csharp

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
	return filepath.Join(dir, "csharp", "foo")
}

func readFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestEveryFileCarriesLicense(t *testing.T) {
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
	}
}

func TestEnumFile(t *testing.T) {
	content := readFile(t, generate(t), "Color.cs")
	for _, want := range []string{"public enum Color", "Red = 0,", "Green = 1,", "Blue = 2,"} {
		if !strings.Contains(content, want) {
			t.Errorf("Color.cs missing %q", want)
		}
	}
	snaps.MatchSnapshot(t, content)
}

func TestClassFile(t *testing.T) {
	content := readFile(t, generate(t), "StringClass.cs")
	for _, want := range []string{
		"public sealed class StringClass : IDisposable",
		"internal IntPtr self;",
		"public StringClass()",
		"public void Dispose()",
		"NativeFunctions.string_destroy(this.self);",
		"public string Echo(string value)",
		"Marshal.PtrToStringAnsi(_result)",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("StringClass.cs missing %q", want)
		}
	}
	snaps.MatchSnapshot(t, content)
}

// The adapter must carry exactly one function-pointer slot per callback
// plus one for destroy, and a single opaque arg slot.
func TestInterfaceAdapterShape(t *testing.T) {
	content := readFile(t, generate(t), "Listener.cs")
	if got := strings.Count(content, "private delegate "); got != 2 {
		t.Errorf("delegate type count = %d, want 2 (one callback + destroy)", got)
	}
	if got := strings.Count(content, "private IntPtr arg;"); got != 1 {
		t.Errorf("opaque arg slot count = %d, want 1", got)
	}
	for _, want := range []string{
		"public interface Listener",
		"void on_change(State value);",
		"[StructLayout(LayoutKind.Sequential)]",
		"internal struct ListenerNativeAdapter",
		"this.arg = Marshal.AllocHGlobal(Marshal.SizeOf(inner));",
		"internal static void on_change_cb(int value, IntPtr arg)",
		"var _inner = Marshal.PtrToStructure<InnerData>(arg);",
		"_inner.impl.on_change(_value);",
		"internal static void on_destroy_cb(IntPtr arg)",
		"Marshal.DestroyStructure<InnerData>(arg);",
		"Marshal.FreeHGlobal(arg);",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("Listener.cs missing %q", want)
		}
	}
	snaps.MatchSnapshot(t, content)
}

func TestIteratorFile(t *testing.T) {
	content := readFile(t, generate(t), "ItemIter.cs")
	for _, want := range []string{
		"public sealed class ItemIter",
		"public Item? Next()",
		"if (ptr == IntPtr.Zero) return null;",
		"ItemNative.FromNative(Marshal.PtrToStructure<ItemNative>(ptr))",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("ItemIter.cs missing %q", want)
		}
	}
	snaps.MatchSnapshot(t, content)
}

func TestStructFile(t *testing.T) {
	content := readFile(t, generate(t), "Settings.cs")
	for _, want := range []string{
		"public struct Settings",
		"public bool enabled;",
		"public TimeSpan retryDelay;",
		"internal struct SettingsNative",
		"native.enabled = Convert.ToByte(value.enabled);",
		"value.retryDelay = TimeSpan.FromMilliseconds(native.retryDelay);",
		"native.item = ItemNative.ToNative(value.item);",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("Settings.cs missing %q", want)
		}
	}
	snaps.MatchSnapshot(t, content)
}

func TestNativeFunctionsFile(t *testing.T) {
	content := readFile(t, generate(t), "NativeFunctions.cs")
	for _, want := range []string{
		"[DllImport(\"foo\")]",
		"internal static extern IntPtr string_new();",
		"internal static extern void string_destroy(IntPtr instance);",
		"internal static extern IntPtr string_echo(IntPtr instance, [MarshalAs(UnmanagedType.LPStr)] string value);",
		"internal static extern void configure_listener(ListenerNativeAdapter listener);",
		"internal static extern IntPtr item_iter_next(IntPtr it);",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("NativeFunctions.cs missing %q", want)
		}
	}
	snaps.MatchSnapshot(t, content)
}
