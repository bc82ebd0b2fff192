// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddSubDivide checks the three matrix-operand kernels and chaining.
func TestAddSubDivide(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustRows(t, [][]float64{{10, 20}, {30, 40}})

	require.Same(t, a, a.Add(b))
	requireBitEqual(t, [][]float64{{11, 22}, {33, 44}}, a)

	a.Sub(b)
	requireBitEqual(t, [][]float64{{1, 2}, {3, 4}}, a)

	b.Divide(a)
	requireBitEqual(t, [][]float64{{10, 10}, {10, 10}}, b)
}

// TestAddThenSubRoundTrip checks A.add(B).sub(B) ≈ A on random data.
func TestAddThenSubRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{1, 2, 5, 16} {
		orig := randomRows(rng, n)
		a := mustRows(t, orig)
		b := mustRows(t, randomRows(rng, n))

		a.Add(b).Sub(b)
		requireCellsClose(t, orig, a, tolCmp)
	}
}

// TestValueVariants checks the N²-scalar overloads.
func TestValueVariants(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})

	m.AddValues(1, 1, 1, 1)
	requireBitEqual(t, [][]float64{{2, 3}, {4, 5}}, m)

	m.SubValues(2, 3, 4, 5)
	requireBitEqual(t, [][]float64{{0, 0}, {0, 0}}, m)

	m.AddValues(8, 6, 4, 2).DivideValues(2, 2, 2, 2)
	requireBitEqual(t, [][]float64{{4, 3}, {2, 1}}, m)
}

// TestIncompatibleOperandIsNoOp checks the silent no-op policy for every binary kernel.
func TestIncompatibleOperandIsNoOp(t *testing.T) {
	ragged, err := matrix.NewFromBuffer([][]float64{{1, 1}, {1, 1}})
	require.NoError(t, err)
	ragged.Rows()[1] = []float64{1} // caller broke the shape after construction

	operands := map[string]*matrix.Matrix{
		"nil":        nil,
		"smaller":    mustNew(t, 1),
		"larger":     mustNew(t, 3, matrix.WithFill(1)),
		"non-square": ragged,
	}
	for name, o := range operands {
		t.Run(name, func(t *testing.T) {
			m := mustRows(t, [][]float64{{1, 2}, {3, 4}})
			before := m.String()

			require.Same(t, m, m.Add(o))
			require.Same(t, m, m.Sub(o))
			require.Same(t, m, m.Divide(o))
			require.Same(t, m, m.Mul(o))
			require.Equal(t, before, m.String())
		})
	}

	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	before := m.String()
	m.AddValues(1, 2, 3)
	m.SubValues()
	m.DivideValues(1, 2, 3, 4, 5)
	require.Equal(t, before, m.String())
}

// TestScaleAndApply checks scaling and the function-based specializations.
func TestScaleAndApply(t *testing.T) {
	m := mustRows(t, [][]float64{{1, -2}, {3, -4}})
	m.Scale(-0.5)
	requireBitEqual(t, [][]float64{{-0.5, 1}, {-1.5, 2}}, m)

	cases := []struct {
		name string
		op   func(*matrix.Matrix) *matrix.Matrix
		f    func(float64) float64
	}{
		{"Abs", (*matrix.Matrix).Abs, math.Abs},
		{"Negate", (*matrix.Matrix).Negate, func(v float64) float64 { return -v }},
		{"Sin", (*matrix.Matrix).Sin, math.Sin},
		{"Cos", (*matrix.Matrix).Cos, math.Cos},
		{"Tan", (*matrix.Matrix).Tan, math.Tan},
		{"Floor", (*matrix.Matrix).Floor, math.Floor},
		{"Ceil", (*matrix.Matrix).Ceil, math.Ceil},
		{"Round", (*matrix.Matrix).Round, math.Round},
		{"Sqrt", (*matrix.Matrix).Sqrt, math.Sqrt},
		{"Square", (*matrix.Matrix).Square, func(v float64) float64 { return v * v }},
		{"Exp", (*matrix.Matrix).Exp, math.Exp},
		{"Log", (*matrix.Matrix).Log, math.Log},
	}
	src := [][]float64{{0.25, 1.5}, {2.75, 4}}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := mustRows(t, src)
			require.Same(t, m, tc.op(m))
			for i := range src {
				for j := range src[i] {
					assert.Equal(t, tc.f(src[i][j]), m.At(i, j))
				}
			}
		})
	}
}

// TestMulAndPow checks the product kernels against exact integer fixtures.
func TestMulAndPow(t *testing.T) {
	m := mustRows(t, pow5Rows)
	require.Same(t, m, m.Pow(4))
	requireBitEqual(t, pow5Fourth, m)

	sq := mustRows(t, pow5Rows)
	sq.Mul(sq).Mul(sq) // M² then M²·M²
	requireBitEqual(t, pow5Fourth, sq)

	one := mustRows(t, pow5Rows).Pow(1)
	requireBitEqual(t, pow5Rows, one)

	require.True(t, mustRows(t, pow5Rows).Pow(0).IsIdentity())

	neg := mustRows(t, pow5Rows).Pow(-2)
	requireBitEqual(t, pow5Rows, neg)
}

// TestMulPreservesAliasing ensures the product lands in the caller's buffer.
func TestMulPreservesAliasing(t *testing.T) {
	buf := [][]float64{{1, 2}, {3, 4}}
	m, err := matrix.NewFromBuffer(buf)
	require.NoError(t, err)

	m.Mul(mustRows(t, [][]float64{{0, 1}, {1, 0}}))
	require.Equal(t, [][]float64{{2, 1}, {4, 3}}, buf)
}
