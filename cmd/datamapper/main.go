// Package main provides the CLI entrypoint for datamapper.
//
// datamapper works on mapping descriptions between message schemas:
//   - validates that every mandatory target field is mapped
//   - synthesizes example XML documents for data types
//   - lists the elements a data type exposes
//   - compiles mapping expressions into placeholder form
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
