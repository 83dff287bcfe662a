// Package format provides the line-oriented printer every backend emits
// through. The block and namespace combinators are the only way a backend
// opens or closes a brace, which mechanically keeps indentation balanced
// even when a body returns an error partway through.
package format

import (
	"io"
	"strings"
)

// NamespaceStyle selects how Namespaced wraps a body for the target
// language.
type NamespaceStyle int

const (
	// BraceNamespace emits "namespace <name>" followed by an indented
	// brace block (C#).
	BraceNamespace NamespaceStyle = iota
	// PackageNamespace emits "package <name>;" followed by the body at
	// the current indent level (Java).
	PackageNamespace
)

// Writer is an indented line printer over an io.Writer. All emission goes
// through Writeln, Newline and Write; Blocked, Indented and Namespaced are
// the only scope combinators.
type Writer struct {
	w      io.Writer
	style  NamespaceStyle
	indent int
	inLine bool
}

// New returns a Writer emitting to w with the given namespace style. Each
// indent level is four spaces.
func New(w io.Writer, style NamespaceStyle) *Writer {
	return &Writer{w: w, style: style}
}

func (f *Writer) raw(s string) error {
	_, err := io.WriteString(f.w, s)
	return err
}

func (f *Writer) endLine() error {
	if !f.inLine {
		return nil
	}
	f.inLine = false
	return f.raw("\n")
}

// Writeln terminates any line left open by Write, then emits the current
// indent, s, and a newline.
func (f *Writer) Writeln(s string) error {
	if err := f.endLine(); err != nil {
		return err
	}
	if err := f.raw(strings.Repeat("    ", f.indent)); err != nil {
		return err
	}
	if err := f.raw(s); err != nil {
		return err
	}
	return f.raw("\n")
}

// Newline emits a blank line, first terminating any line left open by
// Write.
func (f *Writer) Newline() error {
	if err := f.endLine(); err != nil {
		return err
	}
	return f.raw("\n")
}

// Write appends s to the current line without indent or newline. The line
// stays open until the next Writeln or Newline.
func (f *Writer) Write(s string) error {
	f.inLine = true
	return f.raw(s)
}

// Blocked emits an opening brace, runs body one indent level deeper, and
// emits the closing brace. The indent level is restored and the closing
// brace is emitted even when body returns an error.
func (f *Writer) Blocked(body func() error) error {
	return f.BlockedWith("", body)
}

// BlockedWith is Blocked with trailer appended to the closing brace, for
// constructs like C's "};".
func (f *Writer) BlockedWith(trailer string, body func() error) error {
	if err := f.Writeln("{"); err != nil {
		return err
	}
	f.indent++
	err := body()
	f.indent--
	closeErr := f.Writeln("}" + trailer)
	if err != nil {
		return err
	}
	return closeErr
}

// Indented runs body one indent level deeper without emitting braces. The
// indent level is restored even when body returns an error.
func (f *Writer) Indented(body func() error) error {
	f.indent++
	err := body()
	f.indent--
	return err
}

// Namespaced wraps body in the target language's namespace or package
// construct for name, per the Writer's style.
func (f *Writer) Namespaced(name string, body func() error) error {
	switch f.style {
	case PackageNamespace:
		if err := f.Writeln("package " + name + ";"); err != nil {
			return err
		}
		if err := f.Newline(); err != nil {
			return err
		}
		return body()
	default:
		if err := f.Writeln("namespace " + name); err != nil {
			return err
		}
		return f.Blocked(body)
	}
}

// License renders lines as a leading line-comment block. An empty slice
// emits nothing.
func (f *Writer) License(lines []string) error {
	for _, line := range lines {
		text := "//"
		if line != "" {
			text += " " + line
		}
		if err := f.Writeln(text); err != nil {
			return err
		}
	}
	if len(lines) > 0 {
		return f.Newline()
	}
	return nil
}
