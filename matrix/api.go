// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin entry points that never mutate their inputs and report
//     failures as sentinel errors instead of the fail-soft conventions of the
//     in-place methods.
//   - Each facade copies, then delegates to the canonical in-place method.
//
// AI-Hints:
//   - Use the in-place methods in hot loops; use facades at API boundaries
//     where an error is easier to handle than a nil or a silent no-op.

package matrix

// NewIdentity returns the n×n identity. Alias of New(n) for discoverability.
func NewIdentity(n int, opts ...Option) (*Matrix, error) { return New(n, opts...) }

// NewFilled returns an n×n matrix with every cell set to v.
func NewFilled(n int, v float64, opts ...Option) (*Matrix, error) {
	return New(n, append(opts, WithFill(v))...)
}

// IdentityLike returns the identity with the size and tolerance of m.
func IdentityLike(m *Matrix) (*Matrix, error) {
	if m == nil {
		return nil, matrixErrorf(opIdentityLike, ErrNilMatrix)
	}

	return New(m.n, withTol(m.tol))
}

// DeterminantOf returns det(m), rejecting nil.
// Complexity: O(n³).
func DeterminantOf(m *Matrix) (float64, error) {
	if m == nil {
		return 0, matrixErrorf(opDeterminant, ErrNilMatrix)
	}

	return m.Determinant(), nil
}

// Inverse returns m⁻¹ as a new Matrix; m is not modified.
//
// Errors:
//   - ErrNilMatrix for a nil m.
//   - ErrSingular when Invert reports the matrix is not invertible.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse(m *Matrix) (*Matrix, error) {
	if m == nil {
		return nil, matrixErrorf(opInverse, ErrNilMatrix)
	}
	inv := m.Copy().Invert()
	if inv == nil {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	return inv, nil
}

// Product returns a × b as a new Matrix; operands are not modified.
//
// Errors:
//   - ErrNilMatrix if either operand is nil.
//   - ErrDimensionMismatch if the sizes differ.
func Product(a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opProduct, ErrNilMatrix)
	}
	if !a.compatible(b) {
		return nil, matrixErrorf(opProduct, ErrDimensionMismatch)
	}

	return a.Copy().Mul(b), nil
}
