package cheader

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/go-oobind/internal/builder"
	"github.com/cwbudde/go-oobind/internal/codegen"
	"github.com/cwbudde/go-oobind/internal/examplelib"
	"github.com/cwbudde/go-oobind/internal/model"
	"github.com/gkampitakis/go-snaps/snaps"
)

func emptyLib(t *testing.T) *model.Library {
	t.Helper()
	b := builder.New("foo", model.Version{Major: 1, Minor: 2, Patch: 3})
	if err := b.License([]string{"foo v1.2.3", "Copyright (C) 2020 Automatak LLC"}); err != nil {
		t.Fatal(err)
	}
	lib, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return lib
}

func render(t *testing.T, lib *model.Library) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Render(&buf, lib); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestEmptyLibraryHeader(t *testing.T) {
	header := render(t, emptyLib(t))
	if !strings.Contains(header, "// foo v1.2.3") {
		t.Error("license block missing")
	}
	if !strings.Contains(header, "#ifndef FOO_H") || !strings.Contains(header, "#include <stdint.h>") {
		t.Error("standard prologue missing")
	}
	if strings.Contains(header, ");") {
		t.Error("empty library emitted a function prototype")
	}
	snaps.MatchSnapshot(t, header)
}

func TestSingleEnumHeader(t *testing.T) {
	b := builder.New("foo", model.Version{Major: 1, Minor: 2, Patch: 3})
	if _, err := b.DefineEnum("Color").
		Push("Red", "").Push("Green", "").Push("Blue", "").
		Build(); err != nil {
		t.Fatal(err)
	}
	lib, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	header := render(t, lib)
	for _, want := range []string{
		"#define COLOR_RED 0",
		"#define COLOR_GREEN 1",
		"#define COLOR_BLUE 2",
	} {
		if !strings.Contains(header, want) {
			t.Errorf("header missing %q", want)
		}
	}
	snaps.MatchSnapshot(t, header)
}

func TestExampleLibraryHeader(t *testing.T) {
	lib, err := examplelib.BuildLib()
	if err != nil {
		t.Fatal(err)
	}
	header := render(t, lib)

	for _, want := range []string{
		"struct StringClass;",
		"struct StringClass* string_new();",
		"void string_destroy(struct StringClass* instance);",
		"const char* string_echo(struct StringClass* instance, const char* value);",
		"struct ItemIter;",
		"struct Item* item_iter_next(struct ItemIter* it);",
		"uint64_t duration_ms_echo(uint64_t value);",
		"double duration_sf_echo(double value);",
		"void configure_listener(struct Listener listener);",
		"void (*on_destroy)(void* arg);",
		"void* arg;",
	} {
		if !strings.Contains(header, want) {
			t.Errorf("header missing %q", want)
		}
	}
	snaps.MatchSnapshot(t, header)
}

// The order of emitted declarations must equal statement order.
func TestHeaderPreservesStatementOrder(t *testing.T) {
	lib, err := examplelib.BuildLib()
	if err != nil {
		t.Fatal(err)
	}
	header := render(t, lib)
	markers := []string{
		"COLOR_RED",
		"STATE_IDLE",
		"struct Item\n",
		"struct Settings\n",
		"struct ItemIter;",
		"item_iter_create",
		"duration_ms_echo",
		"string_new",
		"struct Listener\n",
		"configure_listener",
		"runtime_new",
	}
	last := -1
	for _, m := range markers {
		idx := strings.Index(header, m)
		if idx < 0 {
			t.Fatalf("marker %q not found", m)
		}
		if idx < last {
			t.Errorf("marker %q emitted out of statement order", m)
		}
		last = idx
	}
}

// Regenerating into an empty output directory twice must produce
// byte-identical files.
func TestGenerateIsIdempotent(t *testing.T) {
	lib, err := examplelib.BuildLib()
	if err != nil {
		t.Fatal(err)
	}
	b := New()
	read := func(dir string) []byte {
		t.Helper()
		cfg := codegen.Config{OutputDir: dir}
		if err := b.Generate(lib, cfg); err != nil {
			t.Fatal(err)
		}
		data, err := os.ReadFile(OutputPath(cfg, lib))
		if err != nil {
			t.Fatal(err)
		}
		return data
	}
	first := read(t.TempDir())
	second := read(t.TempDir())
	if !bytes.Equal(first, second) {
		t.Error("two generations produced different bytes")
	}
	if filepath.Base(OutputPath(codegen.Config{OutputDir: "x"}, lib)) != "foo.h" {
		t.Error("unexpected header file name")
	}
}
