package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvmath/matrix"
)

// ExampleMatrix_Invert inverts a 2×2 matrix in place and shows the singular sentinel.
func ExampleMatrix_Invert() {
	m, _ := matrix.NewCopyOf([][]float64{{4, 7}, {2, 6}})
	if m.Invert() != nil {
		fmt.Printf("[%.1f %.1f]\n[%.1f %.1f]\n", m.At(0, 0), m.At(0, 1), m.At(1, 0), m.At(1, 1))
	}

	s, _ := matrix.NewCopyOf([][]float64{{1, 2}, {2, 4}})
	if s.Invert() == nil {
		fmt.Println("not invertible")
	}

	// Output:
	// [0.6 -0.7]
	// [-0.2 0.4]
	// not invertible
}

// ExampleMatrix_Determinant computes a 7×7 determinant by Gauss–Jordan elimination.
func ExampleMatrix_Determinant() {
	m, _ := matrix.NewCopyOf([][]float64{
		{1, 6, 5, 9, 8, 7, -6},
		{-8, 9, 7, 1, 0, -4, 9},
		{9, -8, 2, 0, -8, 4, 6},
		{1, 5, -6, -8, 7, 5, 1},
		{0, 0, 2, -8, 5, 4, 0},
		{0, 0, 0, 9, 7, 8, -6},
		{9, -8, 7, -6, 5, -4, 3},
	})
	fmt.Printf("%.0f\n", m.Determinant())

	// Output:
	// -20319088
}

// ExampleNewFromBuffer shows that the matrix and the caller share one buffer.
func ExampleNewFromBuffer() {
	buf := [][]float64{{1, 2}, {3, 4}}
	m, _ := matrix.NewFromBuffer(buf)

	m.Transpose().Scale(10)
	fmt.Println(buf)

	// Output:
	// [[10 30] [20 40]]
}

// ExampleMatrix_Rotate90Clockwise chains geometric transforms.
func ExampleMatrix_Rotate90Clockwise() {
	m, _ := matrix.NewCopyOf([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	fmt.Print(m.Rotate90Clockwise())

	// Output:
	// [7, 4, 1]
	// [8, 5, 2]
	// [9, 6, 3]
}
