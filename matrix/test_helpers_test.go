// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities shared by the tests.
//   • Keep random data seeded so every run sees the same matrices.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/stretchr/testify/require"
)

// tolCmp is the tolerance used when comparing results of floating-point kernels.
const tolCmp = 1e-9

// det7Rows is a 7×7 integer fixture with det = -20319088.
var det7Rows = [][]float64{
	{1, 6, 5, 9, 8, 7, -6},
	{-8, 9, 7, 1, 0, -4, 9},
	{9, -8, 2, 0, -8, 4, 6},
	{1, 5, -6, -8, 7, 5, 1},
	{0, 0, 2, -8, 5, 4, 0},
	{0, 0, 0, 9, 7, 8, -6},
	{9, -8, 7, -6, 5, -4, 3},
}

const det7Value = -20319088.0

// pow5Rows is a 5×5 fixture (det = -756); pow5Fourth is its exact fourth power.
var (
	pow5Rows = [][]float64{
		{2, -1, 0, 3, 1},
		{1, 4, -2, 0, 5},
		{0, 3, 1, -1, 2},
		{-3, 0, 2, 5, -1},
		{4, 1, -1, 2, 0},
	}
	pow5Fourth = [][]float64{
		{-621, 261, 291, 3, -69},
		{-222, -120, 319, 1409, -163},
		{392, -55, -84, 985, 141},
		{128, 566, -260, -429, 452},
		{-630, 129, 361, 413, -118},
	}
)

const pow5Det = -756.0

// cloneRows deep-copies a fixture so tests never mutate shared package data.
func cloneRows(src [][]float64) [][]float64 {
	out := make([][]float64, len(src))
	for i := range src {
		out[i] = append([]float64(nil), src[i]...)
	}

	return out
}

// mustNew ALLOCATES an n×n matrix or fails the test.
func mustNew(tb testing.TB, n int, opts ...matrix.Option) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.New(n, opts...)
	require.NoError(tb, err)

	return m
}

// mustRows builds a matrix from a private copy of rows or fails the test.
func mustRows(tb testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.NewCopyOf(rows, opts...)
	require.NoError(tb, err)

	return m
}

// randomRows returns an n×n buffer with values in [-1, 1) from a seeded source.
func randomRows(rng *rand.Rand, n int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*2 - 1
		}
	}

	return rows
}

// randomInvertible returns a strictly diagonally dominant (hence non-singular) matrix.
func randomInvertible(tb testing.TB, rng *rand.Rand, n int, opts ...matrix.Option) *matrix.Matrix {
	tb.Helper()
	rows := randomRows(rng, n)
	for i := range rows {
		rows[i][i] += float64(n) + 1
	}

	return mustRows(tb, rows, opts...)
}

// requireCellsClose compares every cell of got against want within delta.
func requireCellsClose(tb testing.TB, want [][]float64, got *matrix.Matrix, delta float64) {
	tb.Helper()
	require.Equal(tb, len(want), got.Size(), "size mismatch")
	for i := range want {
		for j := range want[i] {
			require.InDeltaf(tb, want[i][j], got.At(i, j), delta, "cell (%d,%d)", i, j)
		}
	}
}

// requireBitEqual compares every cell for exact (bit-level) equality.
func requireBitEqual(tb testing.TB, want [][]float64, got *matrix.Matrix) {
	tb.Helper()
	require.Equal(tb, len(want), got.Size(), "size mismatch")
	for i := range want {
		for j := range want[i] {
			require.Equalf(tb, math.Float64bits(want[i][j]), math.Float64bits(got.At(i, j)), "cell (%d,%d)", i, j)
		}
	}
}

// sequential returns an n×n buffer holding 0, 1, ..., n²-1 in row-major order.
func sequential(n int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = float64(i*n + j)
		}
	}

	return rows
}
