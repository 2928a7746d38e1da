// Command sol25 runs SOL25 programs whose AST has already been parsed
// into XML.
package main

import (
	"fmt"
	"os"

	"github.com/mjezek/sol25interp/cmd/sol25/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
