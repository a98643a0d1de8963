// Command parloopctl demonstrates the parallel loop/reduce engine by
// running the scenarios that motivate its design: squares, sum reduction,
// non-commutative combine, strided loops, and nested invocation.
package main

import "github.com/antineutrino2/jtk/cmd/parloopctl/cmd"

func main() {
	cmd.Execute()
}
