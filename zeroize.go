// zeroize.go - best-effort scrubbing of secret buffers.
//
// To the extent possible under law, the authors have waived all
// copyright and related or neighboring rights to this software, using
// the Creative Commons "CC0" public domain dedication. See
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// zeroize overwrites b with zero bytes in place.
func zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// zeroizePoly overwrites a polynomial's coefficients with zero.
func zeroizePoly(p *poly) {
	for i := range p.coeffs {
		p.coeffs[i] = 0
	}
}

// zeroizePolyVec overwrites every polynomial in a vector with zero.
func zeroizePolyVec(v *polyVec) {
	for i := range v.vec {
		zeroizePoly(&v.vec[i])
	}
}
