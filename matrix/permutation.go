// SPDX-License-Identifier: MIT

package matrix

// permutation maps a logical row position to a physical row of the buffer.
// Inversion reorders rows through it instead of moving row data.
type permutation []int

// identityPermutation returns [0, 1, ..., n-1].
func identityPermutation(n int) permutation {
	p := make(permutation, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// swap exchanges the physical rows behind logical positions i and j.
func (p permutation) swap(i, j int) { p[i], p[j] = p[j], p[i] }
