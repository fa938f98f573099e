// ThreadLens - Crash Thread Inspector
//
// ThreadLens summarizes the threads of a crash event: which frame each
// thread was in, which source file, and which thread crashed.
package main

import (
	"os"

	"github.com/threadlens/threadlens/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
