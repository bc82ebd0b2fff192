// Command lvmat runs a single matrix job described by an INI file.
//
// Usage:
//
//	lvmat job.ini
//
// The job reads a whitespace table (see package matrixio), applies one
// operation (determinant, invert, transpose, rotate90, rotate180, flipx,
// flipy, pow) and prints the result to stdout or to [output] path.
package main

import (
	"log"
	"os"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatal("Expects exactly one argument: the job config file.")
	}

	cfg, err := ReadConfig(os.Args[1])
	if err != nil {
		log.Fatal(err.Error())
	}

	if err := execute(cfg, os.Stdout); err != nil {
		log.Fatal(err.Error())
	}
}
