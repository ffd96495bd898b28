// reduce.go - Montgomery, Barrett, and conditional-subtraction reduction.
//
// To the extent possible under law, the authors have waived all
// copyright and related or neighboring rights to this software, using
// the Creative Commons "CC0" public domain dedication. See
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

const (
	qinv = -3327 // inverse_mod(q, 2^16), signed: q*qinv == 1 mod 2^16.
	rlog = 16
)

// montgomeryReduce computes r congruent to a * 2^-16 (mod q), with
// r in (-q, q). Used after every multiplication carried out in the
// Montgomery domain (NTT butterflies, basemul).
func montgomeryReduce(a int32) int16 {
	t := int16(int32(int16(a)) * qinv)
	return int16((a - int32(t)*q) >> rlog)
}

// barrettReduce computes r congruent to a (mod q), with r in (-q/2, q/2].
func barrettReduce(a int16) int16 {
	const v = ((1 << 26) + q/2) / q

	t := int16((int32(v)*int32(a) + (1 << 25)) >> 26)
	t *= q
	return a - t
}

// csubq conditionally subtracts q: if a >= q it returns a-q, otherwise
// it returns a unchanged, so inputs in [0, 2q) land in [0, q). Branch-free, so the result is
// independent of whether a secret-dependent subtraction occurred.
func csubq(a int16) int16 {
	a -= q
	a += (a >> 15) & q
	return a
}
