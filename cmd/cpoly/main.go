// Command cpoly is a calculator for complex-coefficient polynomials.
package main

import (
	"github.com/jonathanmweiss/go-cpoly/cmd/cpoly/cmd"
)

func main() {
	cmd.Execute()
}
