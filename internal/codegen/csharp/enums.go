package csharp

import (
	"fmt"

	"github.com/cwbudde/go-oobind/internal/codegen/format"
	"github.com/cwbudde/go-oobind/internal/model"
)

func usings(f *format.Writer) error {
	if err := f.Writeln("using System;"); err != nil {
		return err
	}
	if err := f.Writeln("using System.Runtime.InteropServices;"); err != nil {
		return err
	}
	return f.Newline()
}

func summary(f *format.Writer, doc string) error {
	if doc == "" {
		return nil
	}
	if err := f.Writeln("/// <summary>"); err != nil {
		return err
	}
	if err := f.Writeln("/// " + doc); err != nil {
		return err
	}
	return f.Writeln("/// </summary>")
}

func writeEnum(f *format.Writer, lib *model.Library, e model.Enum) error {
	if err := usings(f); err != nil {
		return err
	}
	return f.Namespaced(lib.Name, func() error {
		if err := summary(f, e.Doc); err != nil {
			return err
		}
		if err := f.Writeln("public enum " + e.Name); err != nil {
			return err
		}
		return f.Blocked(func() error {
			for i, v := range e.Variants {
				if err := summary(f, v.Doc); err != nil {
					return err
				}
				if err := f.Writeln(fmt.Sprintf("%s = %d,", v.Name, i)); err != nil {
					return err
				}
			}
			return nil
		})
	})
}
