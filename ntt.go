// ntt.go - the incomplete Number-Theoretic Transform over Z_q[X]/(X^256+1).
//
// Because X^256+1 does not split completely into linear factors mod q,
// the transform stops one level early and leaves 128 irreducible
// degree-2 factors; basemul multiplies within each of those factors.
//
// To the extent possible under law, the authors have waived all
// copyright and related or neighboring rights to this software, using
// the Creative Commons "CC0" public domain dedication. See
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// zetas holds the 128 powers of the primitive 256th root of unity used
// by the forward and inverse transforms, pre-converted into the
// Montgomery domain and stored in bit-reversed order.
var zetas = [128]int16{
	-1044, -758, -359, -1517, 1493, 1422, 287, 202,
	-171, 622, 1577, 182, 962, -1202, -1474, 1468,
	573, -1325, 264, 383, -829, 1458, -1602, -130,
	-681, 1017, 732, 608, -1542, 411, -205, -1571,
	1223, 652, -552, 1015, -1293, 1491, -282, -1544,
	516, -8, -320, -666, -1618, -1162, 126, 1469,
	-853, -90, -271, 830, 107, -1421, -247, -951,
	-398, 961, -1508, -725, 448, -1065, 677, -1275,
	-1103, 430, 555, 843, -1251, 871, 1550, 105,
	422, 587, 177, -235, -291, -460, 1574, 1653,
	-246, 778, 1159, -147, -777, 1483, -602, 1119,
	-1590, 644, -872, 349, 418, 329, -156, -75,
	817, 1097, 603, 610, 1322, -1285, -1465, 384,
	-1215, -136, 1218, -1335, -874, 220, -1187, -1659,
	-1185, -1530, -1278, 794, -1510, -854, -870, 478,
	-108, -308, 996, 991, 958, -1460, 1522, 1628,
}

// fqmul multiplies two elements and reduces the product back to the
// Montgomery domain.
func fqmul(a, b int16) int16 {
	return montgomeryReduce(int32(a) * int32(b))
}

// ntt computes the in-place forward Cooley-Tukey transform of r. r is
// assumed to be in normal order; the result is in bit-reversed order.
func ntt(r *[n]int16) {
	k := 1
	for length := 128; length >= 2; length >>= 1 {
		for start := 0; start < 256; start += 2 * length {
			zeta := zetas[k]
			k++
			for j := start; j < start+length; j++ {
				t := fqmul(zeta, r[j+length])
				r[j+length] = r[j] - t
				r[j] = r[j] + t
			}
		}
	}
}

// invNTT computes the in-place inverse Gentleman-Sande transform of r,
// taking r from bit-reversed order back to normal order and folding in
// the final multiplication by 1/128 in the Montgomery domain.
func invNTT(r *[n]int16) {
	const f = 1441 // mont^2 / 128

	k := 127
	for length := 2; length <= 128; length <<= 1 {
		for start := 0; start < 256; start += 2 * length {
			zeta := zetas[k]
			k--
			for j := start; j < start+length; j++ {
				t := r[j]
				r[j] = barrettReduce(t + r[j+length])
				r[j+length] = r[j+length] - t
				r[j+length] = fqmul(zeta, r[j+length])
			}
		}
	}

	for j := 0; j < n; j++ {
		r[j] = fqmul(r[j], f)
	}
}

// basemul multiplies two degree-1 polynomials modulo (X^2 - zeta), the
// irreducible factor NTT domain coefficients pair up under.
func basemul(r, a, b *[2]int16, zeta int16) {
	r[0] = fqmul(a[1], b[1])
	r[0] = fqmul(r[0], zeta)
	r[0] += fqmul(a[0], b[0])

	r[1] = fqmul(a[0], b[1])
	r[1] += fqmul(a[1], b[0])
}
