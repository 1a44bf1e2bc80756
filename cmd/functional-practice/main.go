// Command functional-practice walks through each function shape provided by
// the functional package, one subcommand per shape.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
