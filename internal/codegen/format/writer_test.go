package format

import (
	"errors"
	"strings"
	"testing"
)

func TestWritelnIndents(t *testing.T) {
	var sb strings.Builder
	f := New(&sb, BraceNamespace)
	if err := f.Writeln("a"); err != nil {
		t.Fatal(err)
	}
	if err := f.Blocked(func() error {
		return f.Writeln("b")
	}); err != nil {
		t.Fatal(err)
	}
	want := "a\n{\n    b\n}\n"
	if sb.String() != want {
		t.Errorf("output = %q, want %q", sb.String(), want)
	}
}

func TestNestedBlocks(t *testing.T) {
	var sb strings.Builder
	f := New(&sb, BraceNamespace)
	err := f.Blocked(func() error {
		return f.Blocked(func() error {
			return f.Writeln("deep")
		})
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n    {\n        deep\n    }\n}\n"
	if sb.String() != want {
		t.Errorf("output = %q, want %q", sb.String(), want)
	}
}

func TestWriteContinuesLine(t *testing.T) {
	var sb strings.Builder
	f := New(&sb, BraceNamespace)
	if err := f.Write("int f("); err != nil {
		t.Fatal(err)
	}
	if err := f.Write("void"); err != nil {
		t.Fatal(err)
	}
	if err := f.Write(");"); err != nil {
		t.Fatal(err)
	}
	if err := f.Writeln("next"); err != nil {
		t.Fatal(err)
	}
	want := "int f(void);\nnext\n"
	if sb.String() != want {
		t.Errorf("output = %q, want %q", sb.String(), want)
	}
}

// The indent level must return to its enter depth even when the body
// fails, so later emission is not skewed by an abandoned scope.
func TestBlockedRestoresIndentOnError(t *testing.T) {
	var sb strings.Builder
	f := New(&sb, BraceNamespace)
	boom := errors.New("boom")
	err := f.Blocked(func() error {
		if err := f.Writeln("before"); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want boom", err)
	}
	if err := f.Writeln("after"); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(sb.String(), "after\n") || strings.Contains(sb.String(), "    after") {
		t.Errorf("indent not restored after failed block: %q", sb.String())
	}
}

func TestBlockedWithTrailer(t *testing.T) {
	var sb strings.Builder
	f := New(&sb, BraceNamespace)
	if err := f.Writeln("struct Item"); err != nil {
		t.Fatal(err)
	}
	if err := f.BlockedWith(";", func() error {
		return f.Writeln("uint16_t index;")
	}); err != nil {
		t.Fatal(err)
	}
	want := "struct Item\n{\n    uint16_t index;\n};\n"
	if sb.String() != want {
		t.Errorf("output = %q, want %q", sb.String(), want)
	}
}

func TestNamespacedStyles(t *testing.T) {
	tests := []struct {
		name  string
		style NamespaceStyle
		want  string
	}{
		{"brace", BraceNamespace, "namespace foo\n{\n    x\n}\n"},
		{"package", PackageNamespace, "package foo;\n\nx\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			f := New(&sb, tt.style)
			err := f.Namespaced("foo", func() error {
				return f.Writeln("x")
			})
			if err != nil {
				t.Fatal(err)
			}
			if sb.String() != tt.want {
				t.Errorf("output = %q, want %q", sb.String(), tt.want)
			}
		})
	}
}

func TestLicenseBlock(t *testing.T) {
	var sb strings.Builder
	f := New(&sb, BraceNamespace)
	if err := f.License([]string{"foo v1", "", "custom"}); err != nil {
		t.Fatal(err)
	}
	want := "// foo v1\n//\n// custom\n\n"
	if sb.String() != want {
		t.Errorf("output = %q, want %q", sb.String(), want)
	}
}

func TestEmptyLicenseEmitsNothing(t *testing.T) {
	var sb strings.Builder
	f := New(&sb, BraceNamespace)
	if err := f.License(nil); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "" {
		t.Errorf("output = %q, want empty", sb.String())
	}
}
