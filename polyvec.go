// polyvec.go - a rank-k vector of polynomials, the building block for
// module-LWE secrets, errors, and public keys.
//
// To the extent possible under law, the authors have waived all
// copyright and related or neighboring rights to this software, using
// the Creative Commons "CC0" public domain dedication. See
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

type polyVec struct {
	vec [k]poly
}

// Equal reports whether v and o have identical reduced coefficients.
func (v *polyVec) Equal(o *polyVec) bool {
	for i := range v.vec {
		if !v.vec[i].Equal(&o.vec[i]) {
			return false
		}
	}
	return true
}

// reduce applies Barrett reduction to every coefficient of every
// polynomial in v.
func (v *polyVec) reduce() {
	for i := range v.vec {
		v.vec[i].reduce()
	}
}

// add computes v = a + b element-wise.
func (v *polyVec) add(a, b *polyVec) {
	for i := range v.vec {
		v.vec[i].add(&a.vec[i], &b.vec[i])
	}
}

// ntt applies the forward transform to every element of v.
func (v *polyVec) ntt() {
	for i := range v.vec {
		v.vec[i].ntt()
	}
}

// invntt applies the inverse transform to every element of v.
func (v *polyVec) invntt() {
	for i := range v.vec {
		v.vec[i].invntt()
	}
}

// toBytes serializes v at 12 bits per coefficient, polynomial by
// polynomial.
func (v *polyVec) toBytes(r []byte) {
	for i := range v.vec {
		v.vec[i].toBytes(r[i*polyBytes:])
	}
}

// fromBytes is the inverse of toBytes.
func (v *polyVec) fromBytes(a []byte) {
	for i := range v.vec {
		v.vec[i].fromBytes(a[i*polyBytes:])
	}
}

// compress serializes v at du=10 bits per coefficient, the lossy
// encoding used for the ciphertext's u component.
func (v *polyVec) compress(r []byte) {
	var t [4]uint16

	for i := range v.vec {
		for j := 0; j < n/4; j++ {
			for c := 0; c < 4; c++ {
				u := v.vec[i].coeffs[4*j+c]
				u += (u >> 15) & q
				t[c] = uint16((uint32(u)<<10+q/2)/q) & 0x3ff
			}

			off := i*(du*n/8) + 5*j
			r[off+0] = byte(t[0])
			r[off+1] = byte(t[0]>>8) | byte(t[1]<<2)
			r[off+2] = byte(t[1]>>6) | byte(t[2]<<4)
			r[off+3] = byte(t[2]>>4) | byte(t[3]<<6)
			r[off+4] = byte(t[3] >> 2)
		}
	}
}

// decompress is the approximate inverse of compress.
func (v *polyVec) decompress(a []byte) {
	var t [4]uint16

	for i := range v.vec {
		for j := 0; j < n/4; j++ {
			off := i*(du*n/8) + 5*j
			t[0] = uint16(a[off+0]) | uint16(a[off+1])<<8
			t[1] = uint16(a[off+1])>>2 | uint16(a[off+2])<<6
			t[2] = uint16(a[off+2])>>4 | uint16(a[off+3])<<4
			t[3] = uint16(a[off+3])>>6 | uint16(a[off+4])<<2

			for c := 0; c < 4; c++ {
				v.vec[i].coeffs[4*j+c] = int16((uint32(t[c]&0x3ff)*q + 512) >> 10)
			}
		}
	}
}

// basemulAcc computes p = sum_i a[i]*b[i] in the NTT domain, reducing
// once at the end rather than after every term.
func (p *poly) basemulAcc(a, b *polyVec) {
	var t poly
	p.basemulMontgomery(&a.vec[0], &b.vec[0])
	for i := 1; i < k; i++ {
		t.basemulMontgomery(&a.vec[i], &b.vec[i])
		p.add(p, &t)
	}
	p.reduce()
}
