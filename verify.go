// verify.go - branch-free comparison and conditional move, used by the
// KEM decapsulation path so that the implicit-rejection branch leaves
// no timing signal.
//
// To the extent possible under law, the authors have waived all
// copyright and related or neighboring rights to this software, using
// the Creative Commons "CC0" public domain dedication. See
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// eqCT reports whether a and b are equal, in time independent of where
// they first differ. a and b must have the same length.
func eqCT(a, b []byte) bool {
	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return (diff|-diff)>>7 == 0
}

// cmov copies x into r when b is 1, and leaves r unchanged when b is 0,
// without branching on b.
func cmov(r, x []byte, b byte) {
	mask := -b
	for i := range r {
		r[i] ^= mask & (r[i] ^ x[i])
	}
}
