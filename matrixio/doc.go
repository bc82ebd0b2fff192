// Package matrixio reads and writes square matrices as whitespace-separated
// text tables: one matrix row per line, '#' starting a comment line, blank
// lines ignored.
//
// ReadFile delegates column parsing to github.com/phil-mansfield/table and
// transposes its column-major result into rows; Read parses any io.Reader.
// Both hand the rows to matrix.NewFromBuffer, so shape errors surface as the
// matrix package sentinels.
package matrixio
