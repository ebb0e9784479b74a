// Command snc compiles Sn source files to x86-64 System-V assembly.
package main

import (
	"fmt"
	"os"

	"github.com/sn-lang/snc/cmd/snc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
