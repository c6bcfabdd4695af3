// Command samplns is the driver front-end: it reads a feature-model
// source and an initial feasible sample, runs the LNS optimizer, and
// writes the resulting sample back out.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:]))
}
