// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for options and private kernels.
// Compiled only with the tests of this package; production builds never see it.

// OptionsSnapshot is a read-only view of the internal Options.
type OptionsSnapshot struct {
	Fill    float64
	HasFill bool
	Tol     Tolerance
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly like the constructors do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Fill: o.fill, HasFill: o.hasFill, Tol: o.tol}
}

// FactorizePermutation_TestOnly runs the in-place elimination and returns the permutation.
func FactorizePermutation_TestOnly(a [][]float64) []int {
	return factorize(a)
}
