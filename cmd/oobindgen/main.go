package main

import (
	"os"

	"github.com/cwbudde/go-oobind/cmd/oobindgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
