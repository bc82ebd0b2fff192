// Package lvmath is a small dense linear algebra toolkit for square matrices.
//
// Everything lives in three subpackages:
//
//	approx/   — tolerance-based float64 comparison (absolute epsilon or ULP distance)
//	matrix/   — the N×N Matrix type: elementwise math, flips and rotations,
//	            determinant, in-place inversion, products and powers
//	matrixio/ — whitespace table reader and writer
//
// The lvmat command (cmd/lvmat) runs one matrix job described by an INI file.
//
// Quick example:
//
//	m, _ := matrix.NewCopyOf([][]float64{{4, 7}, {2, 6}})
//	fmt.Println(m.Determinant()) // 10
//	if m.Invert() != nil {
//		fmt.Print(m) // [0.6, -0.7]\n[-0.2, 0.4]
//	}
package lvmath
