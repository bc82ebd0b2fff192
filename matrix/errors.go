// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Constructors and facades return these sentinels (optionally wrapped via
// matrixErrorf); tests match them with errors.Is. Runtime operations on a
// constructed Matrix never return errors: they follow the fail-soft policy
// (NaN reads, ignored writes, silent no-ops, nil from Invert).

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that a requested size is not positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrEmptyBuffer is returned when a backing buffer has no rows.
	ErrEmptyBuffer = errors.New("matrix: empty buffer")

	// ErrNonSquare signals a backing buffer whose row length differs from its row count.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Matrix was passed to a facade.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDimensionMismatch is returned by facades combining matrices of different sizes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular is returned by facades when the matrix has no inverse.
	ErrSingular = errors.New("matrix: singular matrix")
)

// Operation tags used when wrapping sentinels.
const (
	opNew          = "New"
	opNewFromBuf   = "NewFromBuffer"
	opNewCopyOf    = "NewCopyOf"
	opInverse      = "Inverse"
	opDeterminant  = "DeterminantOf"
	opIdentityLike = "IdentityLike"
	opProduct      = "Product"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Callers must only pass a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
