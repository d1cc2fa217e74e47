// Package main provides the acorgdb CLI application.
// acorgdb gives read-only access to antigen, serum, and experiment
// records and derives antigen gene sequences.
package main

import (
	"github.com/acorg/acorgdb/cmd"
)

func main() {
	cmd.Execute()
}
