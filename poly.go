// poly.go - elements of the ring Z_q[X]/(X^n + 1).
//
// To the extent possible under law, the authors have waived all
// copyright and related or neighboring rights to this software, using
// the Creative Commons "CC0" public domain dedication. See
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import "github.com/google/go-cmp/cmp"

// poly represents coeffs[0] + X*coeffs[1] + ... + X^(n-1)*coeffs[n-1].
// Coefficients may transiently lie outside [0, q) between reductions.
type poly struct {
	coeffs [n]int16
}

// reducedCopy returns a copy of p with every coefficient passed through
// barrettReduce and then csubq.
func (p *poly) reducedCopy() poly {
	r := *p
	for i := range r.coeffs {
		r.coeffs[i] = csubq(barrettReduce(r.coeffs[i]))
	}
	return r
}

// Equal reports whether p and o have identical reduced coefficients.
// Used by property tests rather than by any cryptographic operation.
func (p *poly) Equal(o *poly) bool {
	a, b := p.reducedCopy(), o.reducedCopy()
	return cmp.Equal(a.coeffs, b.coeffs)
}

// reduce applies Barrett reduction to every coefficient.
func (p *poly) reduce() {
	for i := range p.coeffs {
		p.coeffs[i] = barrettReduce(p.coeffs[i])
	}
}

// csubq conditionally subtracts q from every coefficient, bringing
// values in [0, 2q) down into [0, q).
func (p *poly) csubq() {
	for i := range p.coeffs {
		p.coeffs[i] = csubq(p.coeffs[i])
	}
}

// add computes p = a + b.
func (p *poly) add(a, b *poly) {
	for i := range p.coeffs {
		p.coeffs[i] = a.coeffs[i] + b.coeffs[i]
	}
}

// sub computes p = a - b.
func (p *poly) sub(a, b *poly) {
	for i := range p.coeffs {
		p.coeffs[i] = a.coeffs[i] - b.coeffs[i]
	}
}

// compress serializes p into polyCompressedBytes bytes at 4 bits per
// coefficient (dv=4), the lossy encoding used for the ciphertext's v
// component.
func (p *poly) compress(r []byte) {
	var t [8]byte

	for i := 0; i < n/8; i++ {
		for j := 0; j < 8; j++ {
			u := p.coeffs[8*i+j]
			u += (u >> 15) & q
			d0 := (uint32(u) << 4) + 1665
			d0 = (d0 * 80635) >> 28
			t[j] = byte(d0 & 0xf)
		}

		r[4*i+0] = t[0] | (t[1] << 4)
		r[4*i+1] = t[2] | (t[3] << 4)
		r[4*i+2] = t[4] | (t[5] << 4)
		r[4*i+3] = t[6] | (t[7] << 4)
	}
}

// decompress is the approximate inverse of compress.
func (p *poly) decompress(a []byte) {
	for i := 0; i < n/8; i++ {
		b := a[4*i : 4*i+4]
		p.coeffs[8*i+0] = int16((uint32(b[0]&0x0f)*q + 8) >> 4)
		p.coeffs[8*i+1] = int16((uint32(b[0]>>4)*q + 8) >> 4)
		p.coeffs[8*i+2] = int16((uint32(b[1]&0x0f)*q + 8) >> 4)
		p.coeffs[8*i+3] = int16((uint32(b[1]>>4)*q + 8) >> 4)
		p.coeffs[8*i+4] = int16((uint32(b[2]&0x0f)*q + 8) >> 4)
		p.coeffs[8*i+5] = int16((uint32(b[2]>>4)*q + 8) >> 4)
		p.coeffs[8*i+6] = int16((uint32(b[3]&0x0f)*q + 8) >> 4)
		p.coeffs[8*i+7] = int16((uint32(b[3]>>4)*q + 8) >> 4)
	}
}

// toBytes serializes p at 12 bits per coefficient.
func (p *poly) toBytes(r []byte) {
	for i := 0; i < n/2; i++ {
		t0 := p.coeffs[2*i]
		t1 := p.coeffs[2*i+1]

		t0 += (t0 >> 15) & q
		t1 += (t1 >> 15) & q

		r[3*i+0] = byte(t0 & 0xff)
		r[3*i+1] = byte((t0 >> 8) | ((t1 & 0x0f) << 4))
		r[3*i+2] = byte(t1 >> 4)
	}
}

// fromBytes is the inverse of toBytes.
func (p *poly) fromBytes(a []byte) {
	for i := 0; i < n/2; i++ {
		p.coeffs[2*i] = int16(uint16(a[3*i+0])|uint16(a[3*i+1])<<8) & 0x0fff
		p.coeffs[2*i+1] = int16(uint16(a[3*i+1])>>4|uint16(a[3*i+2])<<4) & 0x0fff
	}
}

// fromMsg expands a SymBytes message into a polynomial whose
// coefficients are 0 or (q+1)/2 depending on each message bit.
func (p *poly) fromMsg(msg []byte) {
	for i := 0; i < indcpaMsgBytes; i++ {
		for j := 0; j < 8; j++ {
			mask := -int16((msg[i] >> uint(j)) & 1)
			p.coeffs[8*i+j] = mask & ((q + 1) / 2)
		}
	}
}

// toMsg collapses a polynomial back into a SymBytes message, rounding
// each coefficient to the nearer of 0 or (q+1)/2.
func (p *poly) toMsg(msg []byte) {
	for i := 0; i < indcpaMsgBytes; i++ {
		msg[i] = 0
		for j := 0; j < 8; j++ {
			t := int32(p.coeffs[8*i+j])
			t += (t >> 15) & q
			t <<= 1
			t += 1665
			t = (t * 80635) >> 28
			t &= 1
			msg[i] |= byte(t << uint(j))
		}
	}
}

// getNoise samples p from the centered binomial distribution using the
// SHAKE-256 PRF keyed by seed and nonce, per the eta of this profile
// (eta1 == eta2 == 2, so a single buffer size serves both callers).
func (p *poly) getNoise(seed []byte, nonce byte) {
	const noiseBytes = 2 * n / 4

	var extSeed [SymBytes + 1]byte
	copy(extSeed[:], seed)
	extSeed[SymBytes] = nonce

	var buf [noiseBytes]byte
	shake256(buf[:], extSeed[:])

	cbd2(p, buf[:])
}

// ntt applies the forward transform in place, followed by a Barrett
// reduction pass.
func (p *poly) ntt() {
	ntt(&p.coeffs)
	p.reduce()
}

// invntt applies the inverse transform in place, leaving results in
// the Montgomery domain (matching invNTT's built-in 1/128 folding).
func (p *poly) invntt() {
	invNTT(&p.coeffs)
}

// tomont multiplies every coefficient by 2^32 mod q, converting plain
// values into the Montgomery domain.
func (p *poly) tomont() {
	const f = int16(1353) // 2^32 mod q, reduced a second time to fit Montgomery form.
	for i := range p.coeffs {
		p.coeffs[i] = montgomeryReduce(int32(p.coeffs[i]) * int32(f))
	}
}

// basemulMontgomery computes p = a*b in the NTT domain, where
// multiplication happens independently within each of the 128
// irreducible degree-2 factors.
func (p *poly) basemulMontgomery(a, b *poly) {
	for i := 0; i < n/4; i++ {
		zeta := zetas[64+i]

		var r0, a0, b0 [2]int16
		a0[0], a0[1] = a.coeffs[4*i], a.coeffs[4*i+1]
		b0[0], b0[1] = b.coeffs[4*i], b.coeffs[4*i+1]
		basemul(&r0, &a0, &b0, zeta)
		p.coeffs[4*i], p.coeffs[4*i+1] = r0[0], r0[1]

		var r1, a1, b1 [2]int16
		a1[0], a1[1] = a.coeffs[4*i+2], a.coeffs[4*i+3]
		b1[0], b1[1] = b.coeffs[4*i+2], b.coeffs[4*i+3]
		basemul(&r1, &a1, &b1, -zeta)
		p.coeffs[4*i+2], p.coeffs[4*i+3] = r1[0], r1[1]
	}
}
