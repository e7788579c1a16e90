// Command ara-parse is a thin CLI front end over the Ara parser core,
// grounded in the teacher's cmd/php-go but rebuilt on a cobra command tree
// (SPEC_FULL.md's AMBIENT STACK).
package main

import (
	"os"

	"github.com/ara-lang/ara-parser/cmd/ara-parse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
